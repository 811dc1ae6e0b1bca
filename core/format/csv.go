package format

import (
	"bytes"
	"encoding/csv"

	"cqlgo/core"
)

func formatCSV(res *core.Result) (string, error) {
	if !res.HasRows {
		return "", nil
	}

	data := make([][]string, 0, len(res.Rows)+1)

	header := make([]string, len(res.Columns))
	for i, col := range res.Columns {
		header[i] = col.Name
	}
	data = append(data, header)

	for _, row := range res.Rows {
		csvRow := make([]string, 0, len(row))
		for _, val := range row {
			csvRow = append(csvRow, val.Display())
		}
		data = append(data, csvRow)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(data); err != nil {
		return "", core.WrapError(core.ErrQuery, err, "csv serialization")
	}
	if err := w.Error(); err != nil {
		return "", core.WrapError(core.ErrQuery, err, "csv serialization")
	}

	return buf.String(), nil
}
