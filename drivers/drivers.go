// Package drivers holds the execution collaborators that speak to a
// cluster on behalf of the session.
package drivers

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"cqlgo/core"
)

var (
	errNoValidTypeAliases   = errors.New("no valid type aliases provided")
	ErrUnsupportedTypeAlias = errors.New("no driver registered for provided type alias")
)

// Driver extends the executor contract with lifecycle and keyspace
// tracking for the interactive session.
type Driver interface {
	core.Executor
	Keyspace() string
	Close()
}

// Config carries everything needed to reach a cluster. TLS and auth
// settings are passed through to the underlying driver untouched.
type Config struct {
	Hosts     []string
	Port      int
	Username  string
	Password  string
	Keyspace  string
	SSL       bool
	SSLCACert string
	SSLVerify bool
}

// creator creates a new driver instance
type creator func(cfg Config, log *logrus.Logger) (Driver, error)

// registeredCreators holds implemented driver types - specific drivers
// register themselves in their init functions.
var registeredCreators = make(map[string]creator)

// register registers a new driver by submitting a creator ("new") function
func register(creator creator, aliases ...string) error {
	if len(aliases) < 1 {
		return errNoValidTypeAliases
	}

	invalidCount := 0
	for _, al := range aliases {
		if al == "" {
			invalidCount++
			continue
		}
		registeredCreators[al] = creator
	}

	if invalidCount == len(aliases) {
		return errNoValidTypeAliases
	}

	return nil
}

// Connect builds the driver registered under the given type alias.
func Connect(typ string, cfg Config, log *logrus.Logger) (Driver, error) {
	creator, ok := registeredCreators[typ]
	if !ok {
		return nil, ErrUnsupportedTypeAlias
	}

	driver, err := creator(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("creator: %w", err)
	}

	return driver, nil
}
