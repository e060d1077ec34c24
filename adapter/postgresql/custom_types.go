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

package postgresql

import (
	"database/sql/driver"

	"github.com/jackc/pgtype"
)

// JSONB represents a PostgreSQL's JSONB value:
// https://www.postgresql.org/docs/current/datatype-json.html. It can be used
// as an argument and as a scan destination.
type JSONB struct {
	V interface{}
}

// Scan satisfies the sql.Scanner interface.
func (j *JSONB) Scan(src interface{}) error {
	t := &pgtype.JSONB{}
	if err := t.Scan(src); err != nil {
		return err
	}
	if j.V == nil {
		j.V = t.Get()
		return nil
	}
	return t.AssignTo(&j.V)
}

// Value satisfies the driver.Valuer interface.
func (j JSONB) Value() (driver.Value, error) {
	t := &pgtype.JSONB{}
	if err := t.Set(j.V); err != nil {
		return nil, err
	}
	return t.Value()
}

// Get returns the decoded document.
func (j *JSONB) Get() interface{} {
	return j.V
}

// pgArray is the part of the pgtype array types used to move values in and
// out of the text array format.
type pgArray interface {
	Set(src interface{}) error
	Scan(src interface{}) error
	AssignTo(dst interface{}) error
	Value() (driver.Value, error)
}

func encodeArray(t pgArray, v interface{}) (driver.Value, error) {
	if err := t.Set(v); err != nil {
		return nil, err
	}
	return t.Value()
}

// decodeArray scans src into dst, a NULL array leaves dst untouched.
func decodeArray(t pgArray, src interface{}, dst interface{}) (null bool, err error) {
	if src == nil {
		return true, nil
	}
	if err := t.Scan(src); err != nil {
		return false, err
	}
	return false, t.AssignTo(dst)
}

// StringArray is the scan target of text[] returning columns. It can also be
// passed as an argument.
type StringArray []string

// Value satisfies the driver.Valuer interface.
func (a StringArray) Value() (driver.Value, error) {
	return encodeArray(&pgtype.TextArray{}, []string(a))
}

// Scan satisfies the sql.Scanner interface.
func (a *StringArray) Scan(src interface{}) error {
	d := []string{}
	null, err := decodeArray(&pgtype.TextArray{}, src, &d)
	if err != nil {
		return err
	}
	if null {
		*a = nil
		return nil
	}
	*a = d
	return nil
}

// Get returns the elements as a []string, or nil for NULL.
func (a *StringArray) Get() interface{} {
	if *a == nil {
		return nil
	}
	return []string(*a)
}

// Int64Array is the scan target of integer[] returning columns.
type Int64Array []int64

// Value satisfies the driver.Valuer interface.
func (a Int64Array) Value() (driver.Value, error) {
	return encodeArray(&pgtype.Int8Array{}, []int64(a))
}

// Scan satisfies the sql.Scanner interface.
func (a *Int64Array) Scan(src interface{}) error {
	d := []int64{}
	null, err := decodeArray(&pgtype.Int8Array{}, src, &d)
	if err != nil {
		return err
	}
	if null {
		*a = nil
		return nil
	}
	*a = d
	return nil
}

// Get returns the elements as a []int64, or nil for NULL.
func (a *Int64Array) Get() interface{} {
	if *a == nil {
		return nil
	}
	return []int64(*a)
}
