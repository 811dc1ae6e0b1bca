package repl

import (
	"context"
	"sync"

	"cqlgo/core"
)

const (
	keyspacesQuery = "SELECT keyspace_name FROM system_schema.keyspaces"
	tablesQuery    = "SELECT keyspace_name, table_name FROM system_schema.tables"
)

// SchemaCache holds keyspace and table names for completion. Refresh is
// best effort: a failed metadata query leaves the previous snapshot in
// place.
type SchemaCache struct {
	mu        sync.RWMutex
	keyspaces []string
	tables    []string
	keyspace  string
}

func NewSchemaCache() *SchemaCache {
	return &SchemaCache{}
}

func (c *SchemaCache) Refresh(ctx context.Context, exec core.Executor) {
	if res, err := exec.Execute(ctx, keyspacesQuery); err == nil {
		c.mu.Lock()
		c.keyspaces = textColumn(res, 0)
		c.mu.Unlock()
	}
	if res, err := exec.Execute(ctx, tablesQuery); err == nil {
		c.mu.Lock()
		c.tables = textColumn(res, 1)
		c.mu.Unlock()
	}
}

func textColumn(res *core.Result, index int) []string {
	var out []string
	for _, row := range res.Rows {
		if index >= len(row) {
			continue
		}
		if v := row[index]; v.Kind == core.KindText || v.Kind == core.KindAscii {
			out = append(out, v.Text)
		}
	}
	return out
}

func (c *SchemaCache) Keyspaces() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keyspaces
}

func (c *SchemaCache) Tables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tables
}

func (c *SchemaCache) CurrentKeyspace() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.keyspace
}

func (c *SchemaCache) SetCurrentKeyspace(keyspace string) {
	c.mu.Lock()
	c.keyspace = keyspace
	c.mu.Unlock()
}
