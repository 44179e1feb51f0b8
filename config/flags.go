package config

import (
	"fmt"
	"slices"
	"strings"
)

// Enum is a pflag.Value restricted to a fixed set of strings.
type Enum struct {
	value   *string
	allowed []string
}

// NewEnum returns an Enum writing into p.
func NewEnum(p *string, allowed ...string) *Enum {
	return &Enum{value: p, allowed: allowed}
}

func (e *Enum) String() string {
	if e.value == nil {
		return ""
	}
	return *e.value
}

// Set accepts only the allowed values.
func (e *Enum) Set(v string) error {
	if !slices.Contains(e.allowed, v) {
		return fmt.Errorf("must be one of %s", strings.Join(e.allowed, "|"))
	}
	*e.value = v
	return nil
}

func (e *Enum) Type() string {
	return strings.Join(e.allowed, "|")
}
