package drivers

import (
	"context"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/gocql/gocql"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cqlgo/core"
)

// Register driver
func init() {
	c := func(cfg Config, log *logrus.Logger) (Driver, error) {
		return NewCassandra(cfg, log)
	}
	_ = register(c, "cassandra", "cql", "scylla")
}

var _ Driver = (*Cassandra)(nil)

// Cassandra executes statements over gocql. One session is held at a
// time; USE rebuilds it because gocql fixes the keyspace at session
// creation.
type Cassandra struct {
	cfg      Config
	log      *logrus.Logger
	session  *gocql.Session
	keyspace string
}

func NewCassandra(cfg Config, log *logrus.Logger) (*Cassandra, error) {
	c := &Cassandra{cfg: cfg, log: log}
	if err := c.connect(cfg.Keyspace); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Cassandra) connect(keyspace string) error {
	cluster := gocql.NewCluster(c.cfg.Hosts...)
	if c.cfg.Port != 0 {
		cluster.Port = c.cfg.Port
	}
	if keyspace != "" {
		cluster.Keyspace = keyspace
	}
	if c.cfg.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: c.cfg.Username,
			Password: c.cfg.Password,
		}
	}
	if c.cfg.SSL {
		cluster.SslOpts = &gocql.SslOptions{
			CaPath:                 c.cfg.SSLCACert,
			EnableHostVerification: c.cfg.SSLVerify,
		}
	}

	c.log.WithFields(logrus.Fields{
		"hosts":    c.cfg.Hosts,
		"port":     cluster.Port,
		"keyspace": keyspace,
		"ssl":      c.cfg.SSL,
	}).Info("connecting to cluster")

	session, err := cluster.CreateSession()
	if err != nil {
		return core.WrapError(core.ErrConnection, err, "connect to %v", c.cfg.Hosts)
	}

	if c.session != nil {
		c.session.Close()
	}
	c.session = session
	c.keyspace = keyspace
	return nil
}

// Execute runs one statement and drains the result. USE is dispatched
// here rather than sent to the server: it swaps the active keyspace and
// answers with a row-set-absent acknowledgment.
func (c *Cassandra) Execute(ctx context.Context, statement string) (*core.Result, error) {
	stmt := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(statement), ";"))
	if stmt == "" {
		return &core.Result{}, nil
	}

	if len(stmt) > 4 && strings.EqualFold(stmt[:4], "use ") {
		keyspace := strings.Trim(strings.TrimSpace(stmt[4:]), `"'`)
		if err := c.connect(keyspace); err != nil {
			return nil, err
		}
		c.log.WithField("keyspace", keyspace).Info("switched keyspace")
		return &core.Result{}, nil
	}

	c.log.WithField("statement", stmt).Debug("executing statement")

	iter := c.session.Query(stmt).WithContext(ctx).Iter()
	cols := iter.Columns()
	if len(cols) == 0 {
		// write acknowledgment, no row set
		if err := iter.Close(); err != nil {
			return nil, core.WrapError(core.ErrQuery, err, "execute %q", stmt)
		}
		return &core.Result{}, nil
	}

	res := &core.Result{HasRows: true}
	for _, col := range cols {
		res.Columns = append(res.Columns, core.Column{Name: col.Name})
	}

	// Double-pointer scan targets so the driver can report NULL cells.
	targets := make([]any, len(cols))
	for i, col := range cols {
		targets[i] = reflect.New(reflect.TypeOf(col.TypeInfo.New())).Interface()
	}

	for iter.Scan(targets...) {
		row := make(core.Row, len(cols))
		for i := range targets {
			ptr := reflect.ValueOf(targets[i]).Elem()
			if ptr.IsNil() {
				row[i] = core.Null()
				continue
			}
			val := convertValue(ptr.Elem().Interface())
			if cols[i].TypeInfo.Type() == gocql.TypeSet && val.Kind == core.KindList {
				val.Kind = core.KindSet
			}
			row[i] = val
		}
		res.Rows = append(res.Rows, row)
	}
	if err := iter.Close(); err != nil {
		return nil, core.WrapError(core.ErrQuery, err, "execute %q", stmt)
	}

	return res, nil
}

func (c *Cassandra) Keyspace() string {
	return c.keyspace
}

func (c *Cassandra) Close() {
	if c.session != nil {
		c.session.Close()
	}
}

// convertValue maps a native driver value onto the tagged variant.
// Collections recurse; anything unrecognized lands in the opaque
// fallback so conversion is total.
func convertValue(v any) core.Value {
	switch t := v.(type) {
	case nil:
		return core.Null()
	case string:
		return core.NewText(t)
	case bool:
		return core.NewBoolean(t)
	case int:
		return core.NewInt(int32(t))
	case int8:
		return core.NewInt(int32(t))
	case int16:
		return core.NewInt(int32(t))
	case int32:
		return core.NewInt(t)
	case int64:
		return core.NewBigInt(t)
	case float32:
		return core.NewFloat(t)
	case float64:
		return core.NewDouble(t)
	case time.Time:
		return core.NewTimestamp(t)
	case gocql.UUID:
		u, err := uuid.FromBytes(t.Bytes())
		if err != nil {
			return core.NewOther(t)
		}
		if u.Version() == 1 {
			return core.NewTimeUUID(u)
		}
		return core.NewUUID(u)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		elems := make([]core.Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elems = append(elems, convertValue(rv.Index(i).Interface()))
		}
		return core.NewList(elems...)
	case reflect.Map:
		entries := make([]core.MapEntry, 0, rv.Len())
		mi := rv.MapRange()
		for mi.Next() {
			entries = append(entries, core.MapEntry{
				Key: convertValue(mi.Key().Interface()),
				Val: convertValue(mi.Value().Interface()),
			})
		}
		// map iteration order is random; pin it down for rendering
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Key.Display() < entries[j].Key.Display()
		})
		return core.NewMap(entries...)
	default:
		return core.NewOther(v)
	}
}
