package build

import (
	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
	"github.com/greyhillman/IncrementalReadingConverter/core/tree"
)

// convertTable converts the children of a table element.
//
// The first thead row becomes the header and the first tfoot row the
// footer. Any further head rows are placed before the body rows and any
// further foot rows after them.
func (b *IRBuilder) convertTable(children tree.Nodes) (*ir.Table, error) {
	table := &ir.Table{}
	var head, body, foot []ir.TableRow

	for _, c := range children {
		if isBlank(c) {
			continue
		}
		el, ok := c.(*tree.Element)
		if !ok {
			return nil, &UnrecognizedElementError{Tag: "#text", Parent: "table"}
		}
		switch el.Tag {
		case "caption", "colgroup", "col":
			continue
		case "tr":
			row, err := b.convertRow(el.Children)
			if err != nil {
				return nil, err
			}
			body = append(body, row)
		case "thead", "tbody", "tfoot":
			rows, err := b.convertRows(el.Tag, el.Children)
			if err != nil {
				return nil, err
			}
			switch el.Tag {
			case "thead":
				if table.Header == nil && len(rows) > 0 {
					table.SetHeader(rows[0])
					rows = rows[1:]
				}
				head = append(head, rows...)
			case "tfoot":
				if table.Footer == nil && len(rows) > 0 {
					table.SetFooter(rows[0])
					rows = rows[1:]
				}
				foot = append(foot, rows...)
			default:
				body = append(body, rows...)
			}
		default:
			return nil, &UnrecognizedElementError{Tag: el.Tag, Parent: "table"}
		}
	}

	for _, rows := range [][]ir.TableRow{head, body, foot} {
		for _, row := range rows {
			table.AddRow(row)
		}
	}
	return table, nil
}

// convertRows converts the tr children of a row group.
func (b *IRBuilder) convertRows(group string, children tree.Nodes) ([]ir.TableRow, error) {
	var rows []ir.TableRow
	for _, c := range children {
		if isBlank(c) {
			continue
		}
		el, ok := c.(*tree.Element)
		if !ok {
			return nil, &UnrecognizedElementError{Tag: "#text", Parent: group}
		}
		if el.Tag != "tr" {
			return nil, &UnrecognizedElementError{Tag: el.Tag, Parent: group}
		}
		row, err := b.convertRow(el.Children)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (b *IRBuilder) convertRow(children tree.Nodes) (ir.TableRow, error) {
	var row ir.TableRow
	for _, c := range children {
		if isBlank(c) {
			continue
		}
		el, ok := c.(*tree.Element)
		if !ok {
			return ir.TableRow{}, &UnrecognizedElementError{Tag: "#text", Parent: "tr"}
		}
		if el.Tag != "td" && el.Tag != "th" {
			return ir.TableRow{}, &UnrecognizedElementError{Tag: el.Tag, Parent: "tr"}
		}
		row.Cells = append(row.Cells, ir.TableCell{Text: b.convertTextBlock(el.Children)})
	}
	return row, nil
}
