package format_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cqlgo/core"
	"cqlgo/core/format"
	"cqlgo/core/mock"
)

func TestParseKind(t *testing.T) {
	testCases := []struct {
		name   string
		in     string
		want   format.Kind
		wantOK bool
	}{
		{name: "table", in: "table", want: format.KindTable, wantOK: true},
		{name: "json upper", in: "JSON", want: format.KindJSON, wantOK: true},
		{name: "csv padded", in: " csv ", want: format.KindCSV, wantOK: true},
		{name: "unknown falls back", in: "xml", want: format.KindTable, wantOK: false},
		{name: "empty falls back", in: "", want: format.KindTable, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := format.ParseKind(tc.in)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestFormatTableCannedMessages(t *testing.T) {
	noRowSet := &core.Result{}
	out, err := format.Format(noRowSet, format.KindTable, 80)
	require.NoError(t, err)
	assert.Equal(t, "Query OK (no results)", out)

	empty := &core.Result{
		Columns: []core.Column{{Name: "id"}},
		HasRows: true,
	}
	out, err = format.Format(empty, format.KindTable, 80)
	require.NoError(t, err)
	assert.Equal(t, "Empty result set", out)

	noColumns := &core.Result{
		Rows:    []core.Row{{core.NewInt(1)}},
		HasRows: true,
	}
	out, err = format.Format(noColumns, format.KindTable, 80)
	require.NoError(t, err)
	assert.Equal(t, "No columns in result", out)
}

func TestFormatTable(t *testing.T) {
	res := mock.NewResult([]string{"id", "name"}, 2)

	out, err := format.Format(res, format.KindTable, 120)
	require.NoError(t, err)

	assert.Contains(t, out, "id")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "cell_0_0")
	assert.Contains(t, out, "cell_1_1")
	assert.True(t, strings.HasSuffix(out, "2 row(s) returned\n"))
}

func TestFormatTableTruncatesWideCells(t *testing.T) {
	long := strings.Repeat("x", 300)
	res := &core.Result{
		Columns: []core.Column{{Name: "c"}},
		Rows:    []core.Row{{core.NewText(long)}},
		HasRows: true,
	}

	out, err := format.Format(res, format.KindTable, 40)
	require.NoError(t, err)

	assert.NotContains(t, out, long)
	assert.Contains(t, out, "...")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, runewidth.StringWidth(line), 40)
	}
}

func TestFormatJSONNoRowSet(t *testing.T) {
	out, err := format.Format(&core.Result{}, format.KindJSON, 80)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"ok","rows":[]}`, out)
}

func TestFormatJSON(t *testing.T) {
	res := &core.Result{
		Columns: []core.Column{{Name: "id"}, {Name: "name"}},
		Rows: []core.Row{
			{core.NewInt(1), core.NewText("alpha")},
			{core.NewInt(2), core.Null()},
		},
		HasRows: true,
	}

	out, err := format.Format(res, format.KindJSON, 80)
	require.NoError(t, err)

	// pretty-printed
	assert.Contains(t, out, "\n  ")

	var doc struct {
		Rows  []map[string]any `json:"rows"`
		Count int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, 2, doc.Count)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, float64(1), doc.Rows[0]["id"])
	assert.Equal(t, "alpha", doc.Rows[0]["name"])
	assert.Nil(t, doc.Rows[1]["name"])
}

func TestFormatJSONZeroRows(t *testing.T) {
	res := &core.Result{
		Columns: []core.Column{{Name: "id"}},
		HasRows: true,
	}

	out, err := format.Format(res, format.KindJSON, 80)
	require.NoError(t, err)

	var doc struct {
		Rows  []any `json:"rows"`
		Count int   `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Empty(t, doc.Rows)
	assert.Equal(t, 0, doc.Count)
}

func TestFormatCSVNoRowSet(t *testing.T) {
	out, err := format.Format(&core.Result{}, format.KindCSV, 80)
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestFormatCSV(t *testing.T) {
	res := &core.Result{
		Columns: []core.Column{{Name: "id"}, {Name: "note"}},
		Rows: []core.Row{
			{core.NewInt(1), core.NewText("plain")},
			{core.NewInt(2), core.NewText(`with,comma and "quote"`)},
			{core.NewInt(3), core.Null()},
		},
		HasRows: true,
	}

	out, err := format.Format(res, format.KindCSV, 80)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(res.Rows)+1)
	assert.Equal(t, "id,note", lines[0])
	assert.Equal(t, "1,plain", lines[1])
	assert.Equal(t, `2,"with,comma and ""quote"""`, lines[2])
	assert.Equal(t, "3,NULL", lines[3])
}
