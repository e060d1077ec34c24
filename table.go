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
	"fmt"

	"github.com/upper/returning/internal/exql"
)

// DerivedTable is the returning projection of a statement, wrapped as a named
// relation that can be placed in the WITH clause of another statement.
type DerivedTable struct {
	name     string
	backend  *Backend
	shape    RowShape
	fragment *exql.CTE
	args     []interface{}
}

// Name returns the alias of the derived table.
func (t *DerivedTable) Name() string {
	return t.name
}

// Shape returns the row shape of the derived table.
func (t *DerivedTable) Shape() RowShape {
	return t.shape
}

// Fields returns every column of the derived table with its type, dynamic
// columns are reported as nullable text.
func (t *DerivedTable) Fields() []Field {
	fields := t.shape.Fields()
	if d, ok := t.shape.(*DynamicShape); ok {
		for _, name := range d.DynamicNames() {
			fields = append(fields, Field{Name: name, Type: dynamicFieldType})
		}
	}
	return fields
}

// C returns a reference to a column of the derived table.
func (t *DerivedTable) C(name string) (Expr, error) {
	for _, f := range t.Fields() {
		if f.Name == name {
			e := C(t.name + "." + name)
			e.typ = f.Type
			return e, nil
		}
	}
	return Expr{}, fmt.Errorf("%w: %q in %q", ErrUnknownColumn, name, t.name)
}

// Compile renders the derived table definition, like
// `"alias" AS (INSERT ... RETURNING ...)`.
func (t *DerivedTable) Compile() (string, []interface{}, error) {
	query, err := t.backend.compile(t.fragment)
	if err != nil {
		return "", nil, err
	}
	return t.backend.Placeholders(query), append([]interface{}(nil), t.args...), nil
}
