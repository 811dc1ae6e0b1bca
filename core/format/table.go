package format

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cqlgo/core"
)

func formatTable(res *core.Result, termWidth int) string {
	if !res.HasRows {
		return msgQueryOK
	}
	if len(res.Rows) == 0 {
		return msgEmptyResult
	}
	if len(res.Columns) == 0 {
		return msgNoColumns
	}

	headers := make([]string, len(res.Columns))
	for i, col := range res.Columns {
		headers[i] = col.Name
	}

	cells := make([][]string, len(res.Rows))
	for i, row := range res.Rows {
		cells[i] = make([]string, len(row))
		for j, val := range row {
			cells[i][j] = val.Display()
		}
	}

	widths := allocateWidths(headers, cells, termWidth)

	var headerRow table.Row
	for i, h := range headers {
		headerRow = append(headerRow, truncate(h, widths[i]))
	}

	var tableRows []table.Row
	for _, row := range cells {
		var tr table.Row
		for j, cell := range row {
			if j < len(widths) {
				cell = truncate(cell, widths[j])
			}
			tr = append(tr, cell)
		}
		tableRows = append(tableRows, tr)
	}

	t := table.NewWriter()
	t.AppendHeader(headerRow)
	t.AppendRows(tableRows)
	t.SetStyle(table.StyleLight)
	t.Style().Format = table.FormatOptions{
		Footer: text.FormatDefault,
		Header: text.FormatDefault,
		Row:    text.FormatDefault,
	}
	render := t.Render()

	return render + fmt.Sprintf("\n%d row(s) returned\n", len(res.Rows))
}
