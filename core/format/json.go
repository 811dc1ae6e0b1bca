package format

import (
	"encoding/json"

	"cqlgo/core"
)

type jsonDocument struct {
	Rows  []map[string]any `json:"rows"`
	Count int              `json:"count"`
}

// statusOKDocument is the compact acknowledgment for results that carry
// no row set at all.
const statusOKDocument = `{"status":"ok","rows":[]}`

func formatJSON(res *core.Result) (string, error) {
	if !res.HasRows {
		return statusOKDocument, nil
	}

	rows := make([]map[string]any, 0, len(res.Rows))
	for _, row := range res.Rows {
		record := make(map[string]any, len(row))
		for i, val := range row {
			if i < len(res.Columns) {
				record[res.Columns[i].Name] = val.JSON()
			}
		}
		rows = append(rows, record)
	}

	out, err := json.MarshalIndent(jsonDocument{Rows: rows, Count: len(res.Rows)}, "", "  ")
	if err != nil {
		return "", core.WrapError(core.ErrQuery, err, "json serialization")
	}

	return string(out), nil
}
