// Package testhelpers provides helpers for integration tests.
package testhelpers

import (
	"context"
	"fmt"
	"net"
	"os/exec"
	"strconv"

	"github.com/sirupsen/logrus"
	tc "github.com/testcontainers/testcontainers-go"
	tccassandra "github.com/testcontainers/testcontainers-go/modules/cassandra"

	"cqlgo/drivers"
)

// GetContainerProvider returns the container provider type to use for the tests.
// If we detect podman is available, we use it, otherwise we use docker.
func GetContainerProvider() tc.ProviderType {
	if _, err := exec.LookPath("podman"); err == nil {
		fmt.Println("Podman detected. Remember to set TESTCONTAINERS_RYUK_CONTAINER_PRIVILEGED=true;")
		return tc.ProviderPodman
	}
	return tc.ProviderDocker
}

type CassandraContainer struct {
	*tccassandra.CassandraContainer
	Host   string
	Port   int
	Driver drivers.Driver
}

// NewCassandraContainer starts a single-node cluster and connects a
// driver to it.
func NewCassandraContainer(ctx context.Context) (*CassandraContainer, error) {
	ctr, err := tccassandra.RunContainer(
		ctx,
		tc.WithImage("cassandra:4.1"),
		tc.CustomizeRequest(tc.GenericContainerRequest{
			ProviderType: GetContainerProvider(),
		}),
	)
	if err != nil {
		return nil, err
	}

	hostPort, err := ctr.ConnectionHost(ctx)
	if err != nil {
		return nil, err
	}
	host, portStr, err := net.SplitHostPort(hostPort)
	if err != nil {
		return nil, err
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	container := &CassandraContainer{
		CassandraContainer: ctr,
		Host:               host,
		Port:               port,
	}

	driver, err := container.NewDriver("")
	if err != nil {
		return nil, err
	}
	container.Driver = driver

	return container, nil
}

// NewDriver connects another driver to the container, optionally bound
// to a keyspace.
func (c *CassandraContainer) NewDriver(keyspace string) (drivers.Driver, error) {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)

	return drivers.Connect("cassandra", drivers.Config{
		Hosts:    []string{c.Host},
		Port:     c.Port,
		Keyspace: keyspace,
	}, log)
}
