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

package exql

import (
	"strings"
)

// Statement represents different kinds of SQL statements.
type Statement struct {
	Type
	With         Fragment
	Table        Fragment
	Columns      Fragment
	Values       Fragment
	ColumnValues Fragment
	From         Fragment
	Using        Fragment
	Where        Fragment
	Returning    Fragment

	SQL string
}

var _ = Fragment(&Statement{})

type statementT struct {
	With         string
	Table        string
	Columns      string
	Values       string
	ColumnValues string
	From         string
	Using        string
	Where        string
	Returning    string
}

// Hash returns a unique identifier for the struct.
func (s *Statement) Hash() uint64 {
	if s == nil {
		return hashNil
	}
	return quickHash(
		FragmentType_Statement,
		s.Type,
		s.With,
		s.Table,
		s.Columns,
		s.Values,
		s.ColumnValues,
		s.From,
		s.Using,
		s.Where,
		s.Returning,
		s.SQL,
	)
}

// Compile transforms the Statement into an equivalent SQL query.
func (s *Statement) Compile(layout *Template) (compiled string, err error) {
	if s.Type == SQL {
		// No need to hit the cache.
		return s.SQL, nil
	}

	if z, ok := layout.Read(s); ok {
		return z, nil
	}

	data := statementT{}

	if data.With, err = compileOrEmpty(layout, s.With); err != nil {
		return "", err
	}
	if data.Table, err = compileOrEmpty(layout, s.Table); err != nil {
		return "", err
	}
	if data.Columns, err = compileOrEmpty(layout, s.Columns); err != nil {
		return "", err
	}
	if data.Values, err = compileOrEmpty(layout, s.Values); err != nil {
		return "", err
	}
	if data.ColumnValues, err = compileOrEmpty(layout, s.ColumnValues); err != nil {
		return "", err
	}
	if data.From, err = compileOrEmpty(layout, s.From); err != nil {
		return "", err
	}
	if data.Using, err = compileOrEmpty(layout, s.Using); err != nil {
		return "", err
	}
	if data.Where, err = compileOrEmpty(layout, s.Where); err != nil {
		return "", err
	}
	if data.Returning, err = compileOrEmpty(layout, s.Returning); err != nil {
		return "", err
	}

	var text string
	switch s.Type {
	case Insert:
		text = layout.InsertLayout
	case Update:
		text = layout.UpdateLayout
	case Delete:
		text = layout.DeleteLayout
	default:
		return "", ErrUnknownTemplateType
	}
	if text == "" {
		return "", ErrUnsupportedFragment
	}

	compiled = strings.TrimSpace(mustParse(text, data))

	layout.Write(s, compiled)
	return
}

// RawSQL represents a raw SQL statement.
func RawSQL(s string) *Statement {
	return &Statement{
		Type: SQL,
		SQL:  s,
	}
}
