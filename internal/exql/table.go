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

// Table represents a SQL table, "name", "schema.name", "name AS alias" and
// "name alias" are accepted.
type Table struct {
	Name string
}

var _ = Fragment(&Table{})

type tableT struct {
	Name  string
	Alias string
}

// TableWithName creates an returns a Table with the given name.
func TableWithName(name string) *Table {
	return &Table{Name: name}
}

// Hash returns a unique identifier for the struct.
func (t *Table) Hash() uint64 {
	if t == nil {
		return hashNil
	}
	return quickHash(FragmentType_Table, t.Name)
}

// Compile transforms a table struct into a SQL chunk.
func (t *Table) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(t); ok {
		return z, nil
	}

	name, alias := SplitTableName(t.Name)

	col, err := ColumnWithName(name).Compile(layout)
	if err != nil {
		return "", err
	}

	data := tableT{Name: col}
	if alias != "" {
		data.Alias = layout.Quote(alias)
	}

	compiled = mustParse(layout.TableAliasLayout, data)

	layout.Write(t, compiled)
	return
}

// Tables represents a comma separated list of tables.
type Tables struct {
	Tables []Fragment
}

var _ = Fragment(&Tables{})

// JoinTables creates a Tables list from the given names.
func JoinTables(names ...string) *Tables {
	t := &Tables{Tables: make([]Fragment, len(names))}
	for i := range names {
		t.Tables[i] = TableWithName(names[i])
	}
	return t
}

// Hash returns a unique identifier for the struct.
func (t *Tables) Hash() uint64 {
	if t == nil {
		return hashNil
	}
	return quickHash(FragmentType_Tables, t.Tables)
}

// Compile transforms the list into a SQL chunk.
func (t *Tables) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(t); ok {
		return z, nil
	}

	out := make([]string, len(t.Tables))
	for i := range t.Tables {
		if out[i], err = t.Tables[i].Compile(layout); err != nil {
			return "", err
		}
	}
	compiled = strings.Join(out, layout.IdentifierSeparator)

	layout.Write(t, compiled)
	return
}
