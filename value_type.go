// Copyright (c) 2012-present The upper.io/db authors. All rights reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the
// "Software"), to deal in the Software without restriction, including
// without limitation the rights to use, copy, modify, merge, publish,
// distribute, sublicense, and/or sell copies of the Software, and to
// permit persons to whom the Software is furnished to do so, subject to
// the following conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
// LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
// OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
// WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package returning

import (
	"strings"
	"time"
)

// Kind is the scalar kind of a value.
type Kind uint8

// Scalar kinds.
const (
	// KindAny is used when the kind is not known in advance, values are decoded
	// as whatever the driver returns.
	KindAny Kind = iota
	// KindNone marks expressions that do not produce a value (DEFAULT, for
	// instance); they can't be returned.
	KindNone

	KindInteger
	KindFloat
	KindText
	KindBool
	KindTime
	KindBytes
	KindJSON
	KindUUID

	// One-dimensional arrays.
	KindTextArray
	KindIntegerArray
)

var kindNames = map[Kind]string{
	KindAny:     "any",
	KindNone:    "none",
	KindInteger: "integer",
	KindFloat:   "float",
	KindText:    "text",
	KindBool:    "bool",
	KindTime:    "time",
	KindBytes:   "bytes",
	KindJSON:    "json",
	KindUUID:    "uuid",

	KindTextArray:    "text[]",
	KindIntegerArray: "integer[]",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ValueType is the semantic type of a returned value.
type ValueType struct {
	Kind     Kind
	Nullable bool
}

func (vt ValueType) String() string {
	if vt.Nullable {
		return vt.Kind.String() + "?"
	}
	return vt.Kind.String()
}

// kindOfSQLType guesses the kind produced by a cast to the given SQL type.
func kindOfSQLType(sqlType string) Kind {
	t := strings.ToLower(strings.TrimSpace(sqlType))
	if elem := strings.TrimSuffix(t, "[]"); elem != t {
		switch kindOfSQLType(elem) {
		case KindText:
			return KindTextArray
		case KindInteger:
			return KindIntegerArray
		}
		return KindAny
	}
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	switch t {
	case "int", "int2", "int4", "int8", "integer", "smallint", "bigint", "serial", "bigserial":
		return KindInteger
	case "real", "float", "float4", "float8", "double precision", "numeric", "decimal":
		return KindFloat
	case "text", "varchar", "char", "character varying", "citext", "name":
		return KindText
	case "bool", "boolean":
		return KindBool
	case "date", "time", "timestamp", "timestamptz", "timestamp with time zone", "timestamp without time zone":
		return KindTime
	case "bytea", "blob":
		return KindBytes
	case "json", "jsonb":
		return KindJSON
	case "uuid":
		return KindUUID
	}
	return KindAny
}

// kindOfValue maps Go literals to kinds.
func kindOfValue(v interface{}) Kind {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KindInteger
	case float32, float64:
		return KindFloat
	case string:
		return KindText
	case bool:
		return KindBool
	case time.Time:
		return KindTime
	case []byte:
		return KindBytes
	}
	return KindAny
}
