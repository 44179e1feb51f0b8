package main

import "github.com/greyhillman/IncrementalReadingConverter/cmd"

func main() {
	cmd.Execute()
}
