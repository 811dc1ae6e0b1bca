// Package format turns drained results into table, JSON or CSV text.
package format

import (
	"strings"

	"cqlgo/core"
)

// Kind selects the output format.
type Kind int

const (
	KindTable Kind = iota
	KindJSON
	KindCSV
)

func (k Kind) String() string {
	switch k {
	case KindJSON:
		return "json"
	case KindCSV:
		return "csv"
	default:
		return "table"
	}
}

// ParseKind matches a format name case-insensitively. Unknown names
// report ok=false and fall back to table, the documented default.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "table":
		return KindTable, true
	case "json":
		return KindJSON, true
	case "csv":
		return KindCSV, true
	default:
		return KindTable, false
	}
}

// Canned messages for degenerate results. The row-set-absent case is
// distinct from a present-but-empty row set.
const (
	msgQueryOK     = "Query OK (no results)"
	msgEmptyResult = "Empty result set"
	msgNoColumns   = "No columns in result"
)

// Format renders a result. Only table mode consumes the terminal width;
// JSON and CSV are width-independent. It never fails for a well-formed
// result: the only error path is the JSON encoder, surfaced as a query
// error.
func Format(res *core.Result, kind Kind, termWidth int) (string, error) {
	switch kind {
	case KindJSON:
		return formatJSON(res)
	case KindCSV:
		return formatCSV(res)
	default:
		return formatTable(res, termWidth), nil
	}
}
