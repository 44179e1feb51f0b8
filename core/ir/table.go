package ir

// Table has an optional header row, body rows and an optional footer row.
type Table struct {
	Header *TableRow
	Body   []TableRow
	Footer *TableRow
}

// TableRow is an ordered sequence of cells.
type TableRow struct {
	Cells []TableCell
}

// TableCell wraps the text of one cell.
type TableCell struct {
	Text TextBlock
}

// NewRow returns a row with one plain cell per string.
func NewRow(cells ...string) TableRow {
	row := TableRow{Cells: make([]TableCell, 0, len(cells))}
	for _, c := range cells {
		row.Cells = append(row.Cells, TableCell{Text: PlainText(c)})
	}
	return row
}

// AddRow appends a body row.
func (t *Table) AddRow(row TableRow) {
	t.Body = append(t.Body, row)
}

// SetHeader sets the header row.
func (t *Table) SetHeader(row TableRow) {
	t.Header = &row
}

// SetFooter sets the footer row.
func (t *Table) SetFooter(row TableRow) {
	t.Footer = &row
}
