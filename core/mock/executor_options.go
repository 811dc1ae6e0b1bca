package mock

import (
	"strings"

	"cqlgo/core"
)

type executorConfig struct {
	results       map[string]*core.Result
	errs          map[string]error
	defaultResult *core.Result
}

type ExecutorOption func(*executorConfig)

// ExecutorWithResult scripts a result for an exact (trimmed) statement.
func ExecutorWithResult(statement string, res *core.Result) ExecutorOption {
	return func(c *executorConfig) {
		c.results[strings.TrimSpace(statement)] = res
	}
}

// ExecutorWithError scripts a failure for an exact (trimmed) statement.
func ExecutorWithError(statement string, err error) ExecutorOption {
	return func(c *executorConfig) {
		c.errs[strings.TrimSpace(statement)] = err
	}
}

// ExecutorWithDefault replaces the fallback result for unscripted
// statements.
func ExecutorWithDefault(res *core.Result) ExecutorOption {
	return func(c *executorConfig) {
		c.defaultResult = res
	}
}
