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
	"github.com/upper/returning/internal/exql"
)

// Column describes a column of a returning list: its alias, its value type
// and the tables it depends on. Columns are immutable.
type Column struct {
	alias    string
	typ      ValueType
	tables   []string
	fragment exql.Fragment

	// skipTableCheck is set for dynamic columns added with AddNTC.
	skipTableCheck bool
}

// Alias returns the name of the column in the result set.
func (c Column) Alias() string {
	return c.alias
}

// Type returns the value type of the column.
func (c Column) Type() ValueType {
	return c.typ
}

// Tables returns the tables the column depends on.
func (c Column) Tables() []string {
	return append([]string(nil), c.tables...)
}

func (c Column) field() Field {
	return Field{Name: c.alias, Type: c.typ}
}

func fragmentsOf(columns []Column) []exql.Fragment {
	if len(columns) == 0 {
		return nil
	}
	f := make([]exql.Fragment, len(columns))
	for i := range columns {
		f[i] = columns[i].fragment
	}
	return f
}
