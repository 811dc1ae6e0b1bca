package repl

import (
	"fmt"
	"strings"
)

// DescribeStatement expands a describe shortcut into the metadata query
// it stands for. Unrecognized describe forms are passed through with a
// terminator appended so the server reports them. Identifiers are
// spliced as text, which matches cqlsh-style usage but means names are
// not escaped.
func DescribeStatement(line string) string {
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ";"))

	if line == `\dk` {
		return "SELECT keyspace_name FROM system_schema.keyspaces;"
	}
	if line == `\dt` {
		return "SELECT keyspace_name, table_name FROM system_schema.tables;"
	}
	if rest, ok := strings.CutPrefix(line, `\dt `); ok {
		return fmt.Sprintf("SELECT table_name FROM system_schema.tables WHERE keyspace_name = '%s';", strings.TrimSpace(rest))
	}

	fields := strings.Fields(line)
	if len(fields) >= 1 && fields[0] == "describe" {
		switch {
		case len(fields) == 2 && fields[1] == "cluster":
			return "SELECT * FROM system.local;"
		case len(fields) == 2 && fields[1] == "keyspaces":
			return "SELECT keyspace_name FROM system_schema.keyspaces;"
		case len(fields) == 3 && fields[1] == "keyspace":
			return fmt.Sprintf("SELECT * FROM system_schema.keyspaces WHERE keyspace_name = '%s';", fields[2])
		case len(fields) == 3 && fields[1] == "table":
			return fmt.Sprintf("SELECT * FROM system_schema.columns WHERE table_name = '%s';", fields[2])
		case len(fields) == 3 && fields[1] == "tables":
			return fmt.Sprintf("SELECT table_name FROM system_schema.tables WHERE keyspace_name = '%s';", fields[2])
		}
	}

	return line + ";"
}

// isDescribe reports whether a line should take the describe path
// instead of statement accumulation.
func isDescribe(line string) bool {
	line = strings.TrimSpace(line)
	if strings.HasPrefix(line, `\d`) {
		return true
	}
	return line == "describe" || strings.HasPrefix(line, "describe ")
}
