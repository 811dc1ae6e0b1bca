package integration

import (
	"context"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tsuite "github.com/stretchr/testify/suite"

	"cqlgo/core"
	"cqlgo/core/format"
	th "cqlgo/tests/testhelpers"
)

// CassandraTestSuite exercises the driver and the formatters against a
// real single-node cluster.
type CassandraTestSuite struct {
	tsuite.Suite
	ctr *th.CassandraContainer
	ctx context.Context
}

// TestCassandraTestSuite is the entrypoint for go test.
//
// testify/suite can't handle parallel tests, see
// https://github.com/stretchr/testify/issues/934
func TestCassandraTestSuite(t *testing.T) {
	tsuite.Run(t, new(CassandraTestSuite))
}

func (suite *CassandraTestSuite) SetupSuite() {
	suite.ctx = context.Background()
	ctr, err := th.NewCassandraContainer(suite.ctx)
	if err != nil {
		log.Fatal(err)
	}
	suite.ctr = ctr

	statements := []string{
		`CREATE KEYSPACE IF NOT EXISTS testdata
			WITH replication = {'class': 'SimpleStrategy', 'replication_factor': 1};`,
		`CREATE TABLE IF NOT EXISTS testdata.accounts (
			id int PRIMARY KEY,
			name text,
			active boolean,
			balance double,
			tags set<text>,
			scores list<int>,
			attrs map<text, text>
		);`,
		`INSERT INTO testdata.accounts (id, name, active, balance, tags, scores, attrs)
			VALUES (1, 'alice', true, 10.5, {'admin'}, [3, 1], {'team': 'core'});`,
		`INSERT INTO testdata.accounts (id, name) VALUES (2, 'bob');`,
	}
	for _, stmt := range statements {
		if _, err := ctr.Driver.Execute(suite.ctx, stmt); err != nil {
			log.Fatal(err)
		}
	}
}

func (suite *CassandraTestSuite) TeardownSuite() {
	suite.ctr.Driver.Close()
	if err := suite.ctr.Terminate(suite.ctx); err != nil {
		suite.T().Logf("failed to terminate container: %s", err)
	}
}

func (suite *CassandraTestSuite) TestShouldErrorInvalidQuery() {
	t := suite.T()

	_, err := suite.ctr.Driver.Execute(suite.ctx, "not valid cql;")
	require.Error(t, err)

	var cerr *core.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, core.ErrQuery, cerr.Kind)
}

func (suite *CassandraTestSuite) TestShouldAcknowledgeWrites() {
	t := suite.T()

	res, err := suite.ctr.Driver.Execute(suite.ctx,
		"INSERT INTO testdata.accounts (id, name) VALUES (3, 'carol');")
	require.NoError(t, err)

	assert.False(t, res.HasRows)

	out, err := format.Format(res, format.KindTable, 80)
	require.NoError(t, err)
	assert.Equal(t, "Query OK (no results)", out)
}

func (suite *CassandraTestSuite) TestShouldReturnTypedRows() {
	t := suite.T()

	res, err := suite.ctr.Driver.Execute(suite.ctx,
		"SELECT id, name, active, balance, tags, scores, attrs FROM testdata.accounts WHERE id = 1;")
	require.NoError(t, err)

	require.True(t, res.HasRows)
	require.Len(t, res.Rows, 1)
	require.Len(t, res.Columns, 7)

	row := res.Rows[0]
	assert.Equal(t, core.NewInt(1), row[0])
	assert.Equal(t, core.NewText("alice"), row[1])
	assert.Equal(t, core.NewBoolean(true), row[2])
	assert.Equal(t, core.NewDouble(10.5), row[3])

	assert.Equal(t, core.KindSet, row[4].Kind)
	assert.Equal(t, "{admin}", row[4].Display())
	assert.Equal(t, "[3, 1]", row[5].Display())
	assert.Equal(t, "{team: core}", row[6].Display())
}

func (suite *CassandraTestSuite) TestShouldReportNullCells() {
	t := suite.T()

	res, err := suite.ctr.Driver.Execute(suite.ctx,
		"SELECT name, balance, tags FROM testdata.accounts WHERE id = 2;")
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	row := res.Rows[0]
	assert.Equal(t, core.NewText("bob"), row[0])
	assert.Equal(t, core.Null(), row[1])
	assert.Equal(t, core.Null(), row[2])
}

func (suite *CassandraTestSuite) TestShouldSwitchKeyspace() {
	t := suite.T()

	driver, err := suite.ctr.NewDriver("")
	require.NoError(t, err)
	defer driver.Close()

	res, err := driver.Execute(suite.ctx, "USE testdata;")
	require.NoError(t, err)
	assert.False(t, res.HasRows)
	assert.Equal(t, "testdata", driver.Keyspace())

	res, err = driver.Execute(suite.ctx, "SELECT id FROM accounts WHERE id = 1;")
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
}

func (suite *CassandraTestSuite) TestShouldListSchemaMetadata() {
	t := suite.T()

	res, err := suite.ctr.Driver.Execute(suite.ctx,
		"SELECT keyspace_name FROM system_schema.keyspaces;")
	require.NoError(t, err)

	var names []string
	for _, row := range res.Rows {
		names = append(names, row[0].Display())
	}
	assert.Contains(t, names, "testdata")
}

func (suite *CassandraTestSuite) TestShouldFormatResultEndToEnd() {
	t := suite.T()

	res, err := suite.ctr.Driver.Execute(suite.ctx,
		"SELECT id, name FROM testdata.accounts WHERE id = 1;")
	require.NoError(t, err)

	tableOut, err := format.Format(res, format.KindTable, 120)
	require.NoError(t, err)
	assert.Contains(t, tableOut, "alice")
	assert.True(t, strings.HasSuffix(tableOut, "1 row(s) returned\n"))

	jsonOut, err := format.Format(res, format.KindJSON, 120)
	require.NoError(t, err)
	assert.Contains(t, jsonOut, `"name": "alice"`)
	assert.Contains(t, jsonOut, `"count": 1`)

	csvOut, err := format.Format(res, format.KindCSV, 120)
	require.NoError(t, err)
	assert.Equal(t, "id,name\n1,alice\n", csvOut)
}
