package repl

import "strings"

// cqlKeywords is the fixed completion vocabulary: reserved words, clause
// markers and the common type names.
var cqlKeywords = []string{
	"SELECT", "INSERT", "UPDATE", "DELETE", "TRUNCATE",
	"FROM", "WHERE", "SET", "VALUES", "INTO",
	"ORDER BY", "GROUP BY", "LIMIT", "ALLOW FILTERING",
	"CREATE", "ALTER", "DROP", "USE",
	"KEYSPACE", "TABLE", "INDEX", "TYPE", "MATERIALIZED VIEW",
	"WITH", "AND", "PRIMARY KEY", "CLUSTERING ORDER",
	"TEXT", "INT", "BIGINT", "FLOAT", "DOUBLE", "BOOLEAN",
	"UUID", "TIMEUUID", "TIMESTAMP", "DATE", "TIME", "BLOB",
	"COUNTER", "DECIMAL", "VARINT",
	"LIST", "MAP", "TUPLE", "FROZEN",
	"IF", "EXISTS", "NOT EXISTS", "AS", "IN", "DISTINCT",
	"COUNT", "TOKEN", "TTL", "WRITETIME",
	"DESCRIBE", "DESC", "KEYSPACES", "TABLES", "TYPES",
	"BEGIN", "BATCH", "APPLY", "UNLOGGED",
	"CONSISTENCY", "GRANT", "REVOKE", "PERMISSIONS",
}

// Candidates returns completion strings for the word immediately before
// the cursor. Keywords always participate; keyspace and table names join
// in when a nearby clause marker suggests them. The three sources are
// concatenated, not mutually exclusive. An empty word before the cursor
// yields no candidates.
func Candidates(line string, pos int, keywords, keyspaces, tables []string) []string {
	if pos > len(line) {
		pos = len(line)
	}
	before := line[:pos]
	last := lastWord(before)
	if last == "" {
		return nil
	}

	upperBefore := strings.ToUpper(before)
	upperLast := strings.ToUpper(last)

	var out []string
	for _, kw := range keywords {
		if strings.HasPrefix(strings.ToUpper(kw), upperLast) {
			out = append(out, kw)
		}
	}
	if strings.Contains(upperBefore, "USE ") || strings.Contains(upperBefore, "KEYSPACE ") {
		for _, ks := range keyspaces {
			if strings.HasPrefix(strings.ToUpper(ks), upperLast) {
				out = append(out, ks)
			}
		}
	}
	if strings.Contains(upperBefore, "FROM ") || strings.Contains(upperBefore, "INTO ") || strings.Contains(upperBefore, "TABLE ") {
		for _, tbl := range tables {
			if strings.HasPrefix(strings.ToUpper(tbl), upperLast) {
				out = append(out, tbl)
			}
		}
	}
	return out
}

func lastWord(s string) string {
	i := strings.LastIndexAny(s, " \t")
	return s[i+1:]
}
