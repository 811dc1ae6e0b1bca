package core

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ValueKind enumerates the CQL value variants the renderers understand.
// KindOther is the fallback arm for anything a driver hands over that is
// not in this list; rendering stays total because of it.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindAscii
	KindText
	KindBoolean
	KindInt
	KindBigInt
	KindFloat
	KindDouble
	KindUUID
	KindTimeUUID
	KindTimestamp
	KindList
	KindSet
	KindMap
	KindOther
)

type (
	// Value is one typed cell of a result. Collection kinds nest to
	// arbitrary depth. The zero value is the SQL-style NULL.
	Value struct {
		Kind ValueKind

		Text    string
		Boolean bool
		Int32   int32
		Int64   int64
		Float32 float32
		Float64 float64
		UUID    uuid.UUID
		Time    time.Time
		// Elems holds list and set elements.
		Elems []Value
		// Entries holds map entries in a stable order.
		Entries []MapEntry
		// Raw is the payload of KindOther.
		Raw any
	}

	// MapEntry is a single key/value pair of a CQL map. Keys are full
	// values themselves and are not necessarily text.
	MapEntry struct {
		Key Value
		Val Value
	}
)

type (
	// Column describes one column of a result set.
	Column struct {
		Name string
	}

	// Row is an ordered sequence of cells, aligned positionally with
	// the result's columns.
	Row []Value

	// Result is a drained query result. HasRows distinguishes a result
	// carrying a (possibly empty) row set from a plain write
	// acknowledgment with no row set at all.
	Result struct {
		Columns []Column
		Rows    []Row
		HasRows bool
	}
)

// Executor runs one statement against the cluster and returns the
// drained result. Implementations block until the server answers.
type Executor interface {
	Execute(ctx context.Context, statement string) (*Result, error)
}

func Null() Value                    { return Value{Kind: KindNull} }
func NewAscii(s string) Value        { return Value{Kind: KindAscii, Text: s} }
func NewText(s string) Value         { return Value{Kind: KindText, Text: s} }
func NewBoolean(b bool) Value        { return Value{Kind: KindBoolean, Boolean: b} }
func NewInt(i int32) Value           { return Value{Kind: KindInt, Int32: i} }
func NewBigInt(i int64) Value        { return Value{Kind: KindBigInt, Int64: i} }
func NewFloat(f float32) Value       { return Value{Kind: KindFloat, Float32: f} }
func NewDouble(f float64) Value      { return Value{Kind: KindDouble, Float64: f} }
func NewUUID(u uuid.UUID) Value      { return Value{Kind: KindUUID, UUID: u} }
func NewTimeUUID(u uuid.UUID) Value  { return Value{Kind: KindTimeUUID, UUID: u} }
func NewTimestamp(t time.Time) Value { return Value{Kind: KindTimestamp, Time: t} }
func NewList(elems ...Value) Value   { return Value{Kind: KindList, Elems: elems} }
func NewSet(elems ...Value) Value    { return Value{Kind: KindSet, Elems: elems} }
func NewMap(entries ...MapEntry) Value {
	return Value{Kind: KindMap, Entries: entries}
}
func NewOther(raw any) Value { return Value{Kind: KindOther, Raw: raw} }
