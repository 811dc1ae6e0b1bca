package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Display renders a value the way it appears in table and CSV cells.
// Total over the variant set: unknown kinds fall back to a debug form
// instead of failing.
func (v Value) Display() string {
	switch v.Kind {
	case KindNull:
		return "NULL"
	case KindAscii, KindText:
		return v.Text
	case KindBoolean:
		return strconv.FormatBool(v.Boolean)
	case KindInt:
		return strconv.FormatInt(int64(v.Int32), 10)
	case KindBigInt:
		return strconv.FormatInt(v.Int64, 10)
	case KindFloat:
		return strconv.FormatFloat(float64(v.Float32), 'g', -1, 32)
	case KindDouble:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case KindUUID, KindTimeUUID:
		return v.UUID.String()
	case KindTimestamp:
		return v.Time.String()
	case KindList:
		return "[" + joinDisplay(v.Elems) + "]"
	case KindSet:
		return "{" + joinDisplay(v.Elems) + "}"
	case KindMap:
		parts := make([]string, 0, len(v.Entries))
		for _, e := range v.Entries {
			parts = append(parts, e.Key.Display()+": "+e.Val.Display())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", v.Raw)
	}
}

func joinDisplay(elems []Value) string {
	parts := make([]string, 0, len(elems))
	for _, e := range elems {
		parts = append(parts, e.Display())
	}
	return strings.Join(parts, ", ")
}

// JSON renders a value as a plain Go value suitable for encoding/json.
// Numbers keep their source width so float precision is preserved by
// the encoder. Maps become an array of {"key","value"} pairs because
// CQL map keys are not necessarily strings.
func (v Value) JSON() any {
	switch v.Kind {
	case KindNull:
		return nil
	case KindAscii, KindText:
		return v.Text
	case KindBoolean:
		return v.Boolean
	case KindInt:
		return v.Int32
	case KindBigInt:
		return v.Int64
	case KindFloat:
		return v.Float32
	case KindDouble:
		return v.Float64
	case KindUUID, KindTimeUUID:
		return v.UUID.String()
	case KindTimestamp:
		return v.Time.String()
	case KindList, KindSet:
		elems := make([]any, 0, len(v.Elems))
		for _, e := range v.Elems {
			elems = append(elems, e.JSON())
		}
		return elems
	case KindMap:
		entries := make([]any, 0, len(v.Entries))
		for _, e := range v.Entries {
			entries = append(entries, map[string]any{
				"key":   e.Key.JSON(),
				"value": e.Val.JSON(),
			})
		}
		return entries
	default:
		return fmt.Sprintf("%v", v.Raw)
	}
}
