// Package mock provides a scripted Executor for tests.
package mock

import (
	"context"
	"fmt"
	"strings"

	"cqlgo/core"
)

var _ core.Executor = (*Executor)(nil)

// Executor answers statements from a script. Unscripted statements get
// the default result (a row-set-absent acknowledgment unless overridden).
type Executor struct {
	config *executorConfig
	calls  []string
}

func NewExecutor(opts ...ExecutorOption) *Executor {
	config := &executorConfig{
		results:       make(map[string]*core.Result),
		errs:          make(map[string]error),
		defaultResult: &core.Result{},
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Executor{config: config}
}

func (e *Executor) Execute(_ context.Context, statement string) (*core.Result, error) {
	key := strings.TrimSpace(statement)
	e.calls = append(e.calls, key)

	if err, ok := e.config.errs[key]; ok {
		return nil, err
	}
	if res, ok := e.config.results[key]; ok {
		return res, nil
	}
	return e.config.defaultResult, nil
}

// Calls returns every statement received, trimmed, in order.
func (e *Executor) Calls() []string {
	return e.calls
}

// NewResult builds a schemaful result with generated row values in form
// of "cell_<row>_<col>" text cells.
func NewResult(columns []string, rowCount int) *core.Result {
	res := &core.Result{HasRows: true}
	for _, name := range columns {
		res.Columns = append(res.Columns, core.Column{Name: name})
	}
	for i := 0; i < rowCount; i++ {
		row := make(core.Row, 0, len(columns))
		for j := range columns {
			row = append(row, core.NewText(fmt.Sprintf("cell_%d_%d", i, j)))
		}
		res.Rows = append(res.Rows, row)
	}
	return res
}

// TextRows builds a single-text-column result from the given values,
// shaped like the system_schema name listings.
func TextRows(column string, values ...string) *core.Result {
	res := &core.Result{
		Columns: []core.Column{{Name: column}},
		HasRows: true,
	}
	for _, v := range values {
		res.Rows = append(res.Rows, core.Row{core.NewText(v)})
	}
	return res
}
