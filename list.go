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

// List is the returning column list of a statement: a fixed set of columns
// declared with Statement.Returning followed by the columns appended with Add
// or AddNTC, in insertion order.
type List struct {
	stmt    *Statement
	static  []Column
	dynamic []Column
}

// Add appends a column to the dynamic part of the list. The expression must
// pass every consistency check, including the known table check. On error the
// list is left unchanged and the statement is marked as inconsistent.
func (l *List) Add(e Expr) error {
	return l.add(e, true)
}

// AddNTC works like Add but skips the known table check, for columns whose
// tables are made available by other means.
func (l *List) AddNTC(e Expr) error {
	return l.add(e, false)
}

func (l *List) add(e Expr, tableCheck bool) error {
	b := l.stmt.backend

	if !b.DynamicCapable() {
		return l.stmt.fail(&CapabilityError{Backend: b.Name(), Operation: "dynamic returning columns"})
	}

	col, err := checkColumn(b, l.stmt.knownTables(), l.aliases(), e, tableCheck)
	if err != nil {
		return l.stmt.fail(err)
	}

	l.dynamic = append(l.dynamic, col)
	return nil
}

// IsEmpty reports whether no dynamic columns were added.
func (l *List) IsEmpty() bool {
	return l == nil || len(l.dynamic) == 0
}

// ColumnCount returns the number of columns in the list at the time of the
// call.
func (l *List) ColumnCount() int {
	if l == nil {
		return 0
	}
	return len(l.static) + len(l.dynamic)
}

// DynamicNames returns the aliases of the dynamic columns, in insertion order.
func (l *List) DynamicNames() []string {
	if l == nil {
		return nil
	}
	names := make([]string, len(l.dynamic))
	for i := range l.dynamic {
		names[i] = l.dynamic[i].alias
	}
	return names
}

// Columns returns the columns declared with Statement.Returning.
func (l *List) Columns() []Column {
	if l == nil {
		return nil
	}
	return append([]Column(nil), l.static...)
}

// DynamicColumns returns the columns appended with Add and AddNTC.
func (l *List) DynamicColumns() []Column {
	if l == nil {
		return nil
	}
	return append([]Column(nil), l.dynamic...)
}

// Compile renders the RETURNING clause, an empty list renders to an empty
// string.
func (l *List) Compile() (string, error) {
	if l == nil {
		return "", nil
	}
	return l.stmt.backend.compile(l.fragment())
}

func (l *List) fragment() *exql.Returning {
	return &exql.Returning{
		Columns: fragmentsOf(l.static),
		Dynamic: fragmentsOf(l.dynamic),
	}
}

func (l *List) aliases() map[string]struct{} {
	taken := make(map[string]struct{}, len(l.static)+len(l.dynamic))
	for i := range l.static {
		taken[l.static[i].alias] = struct{}{}
	}
	for i := range l.dynamic {
		taken[l.dynamic[i].alias] = struct{}{}
	}
	return taken
}

// check verifies that the tables of every table-checked column are known.
func (l *List) check(known knownTables) error {
	if l == nil {
		return nil
	}
	for _, c := range l.static {
		if err := checkTables(known, c.alias, c.tables); err != nil {
			return err
		}
	}
	for _, c := range l.dynamic {
		if c.skipTableCheck {
			continue
		}
		if err := checkTables(known, c.alias, c.tables); err != nil {
			return err
		}
	}
	return nil
}

// clone copies the list for the given statement, the dynamic columns are
// copied too.
func (l *List) clone(stmt *Statement) *List {
	if l == nil {
		return nil
	}
	return &List{
		stmt:    stmt,
		static:  append([]Column(nil), l.static...),
		dynamic: append([]Column(nil), l.dynamic...),
	}
}

func newList(stmt *Statement, exprs []Expr) (*List, error) {
	b := stmt.backend
	known := stmt.knownTables()

	l := &List{stmt: stmt, static: make([]Column, 0, len(exprs))}
	taken := make(map[string]struct{}, len(exprs))

	for _, e := range exprs {
		col, err := checkColumn(b, known, taken, e, true)
		if err != nil {
			return nil, err
		}
		taken[col.alias] = struct{}{}
		l.static = append(l.static, col)
	}

	return l, nil
}
