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

var splitTable = exql.SplitTableName

// Statement is an INSERT, UPDATE or DELETE statement that may report a
// projection of the affected rows with RETURNING.
//
// A statement starts without returning columns. Returning moves it, exactly
// once, into a state where it has a returning list that can be grown with
// List.Add and List.AddNTC on backends that allow it.
type Statement struct {
	backend *Backend
	typ     StatementType
	table   string

	with    []*DerivedTable
	columns []string
	rows    [][]interface{}
	set     []assignment
	from    []string
	using   []string
	where   []condition

	returning *List

	err error
}

type assignment struct {
	column string
	value  interface{}
}

type condition struct {
	sql  string
	args []interface{}
}

// Insert creates an INSERT statement for the given table.
func Insert(b *Backend, table string) *Statement {
	return newStatement(b, InsertStatement, table)
}

// Update creates an UPDATE statement for the given table.
func Update(b *Backend, table string) *Statement {
	return newStatement(b, UpdateStatement, table)
}

// Delete creates a DELETE statement for the given table.
func Delete(b *Backend, table string) *Statement {
	return newStatement(b, DeleteStatement, table)
}

func newStatement(b *Backend, t StatementType, table string) *Statement {
	return &Statement{backend: b, typ: t, table: table}
}

// Type returns the type of the statement.
func (s *Statement) Type() StatementType {
	return s.typ
}

// Backend returns the backend the statement was built for.
func (s *Statement) Backend() *Backend {
	return s.backend
}

// With prepends a derived table to the statement, the table alias becomes a
// known table.
func (s *Statement) With(t *DerivedTable) *Statement {
	if t == nil {
		s.fail(fmt.Errorf("%w: nil derived table", ErrUnsupportedClause))
		return s
	}
	if t.backend != s.backend {
		s.fail(fmt.Errorf("%w: derived table %q was built for another backend", ErrUnsupportedClause, t.name))
		return s
	}
	s.with = append(s.with, t)
	return s
}

// Columns sets the columns of an INSERT statement.
func (s *Statement) Columns(columns ...string) *Statement {
	if !s.expect("columns", InsertStatement) {
		return s
	}
	s.columns = append(s.columns, columns...)
	return s
}

// Values appends a row of values to an INSERT statement. Values that are
// Expr are rendered in place, other values are passed as arguments.
func (s *Statement) Values(values ...interface{}) *Statement {
	if !s.expect("values", InsertStatement) {
		return s
	}
	if len(s.columns) > 0 && len(values) != len(s.columns) {
		s.fail(fmt.Errorf("%w: expecting %d values, got %d", ErrMissingValues, len(s.columns), len(values)))
		return s
	}
	s.rows = append(s.rows, append([]interface{}(nil), values...))
	return s
}

// Set appends an assignment to an UPDATE statement.
func (s *Statement) Set(column string, value interface{}) *Statement {
	if !s.expect("set", UpdateStatement) {
		return s
	}
	s.set = append(s.set, assignment{column: column, value: value})
	return s
}

// From adds tables to the FROM clause of an UPDATE statement.
func (s *Statement) From(tables ...string) *Statement {
	if !s.expect("from", UpdateStatement) {
		return s
	}
	s.from = append(s.from, tables...)
	return s
}

// Using adds tables to the USING clause of a DELETE statement.
func (s *Statement) Using(tables ...string) *Statement {
	if !s.expect("using", DeleteStatement) {
		return s
	}
	s.using = append(s.using, tables...)
	return s
}

// Where adds a raw condition, conditions are joined with AND.
func (s *Statement) Where(cond string, args ...interface{}) *Statement {
	if !s.expect("where", UpdateStatement, DeleteStatement) {
		return s
	}
	s.where = append(s.where, condition{sql: cond, args: args})
	return s
}

func (s *Statement) expect(clause string, types ...StatementType) bool {
	for _, t := range types {
		if s.typ == t {
			return true
		}
	}
	s.fail(fmt.Errorf("%w: %s on %s", ErrUnsupportedClause, clause, s.typ))
	return false
}

// Returning sets the returning columns of the statement. It can only be
// called once per statement. Zero expressions are accepted by backends that
// allow adding columns later.
func (s *Statement) Returning(exprs ...Expr) (*List, error) {
	if s.returning != nil {
		return nil, ErrReturningAlreadySet
	}
	if s.err != nil {
		return nil, s.Err()
	}

	b := s.backend
	if !b.SupportsReturning(s.typ) {
		return nil, s.fail(&CapabilityError{Backend: b.Name(), Operation: "RETURNING on " + s.typ.String()})
	}
	if len(exprs) == 0 && !b.DynamicCapable() {
		return nil, s.fail(&CapabilityError{Backend: b.Name(), Operation: "empty returning list"})
	}

	l, err := newList(s, exprs)
	if err != nil {
		return nil, s.fail(err)
	}

	s.returning = l
	return l, nil
}

// ReturningColumns returns the returning list, or nil if Returning was never
// called.
func (s *Statement) ReturningColumns() *List {
	return s.returning
}

// HasReturning reports whether the statement has a returning list.
func (s *Statement) HasReturning() bool {
	return s.returning != nil
}

// ColumnCount returns the number of returning columns at the time of the
// call.
func (s *Statement) ColumnCount() int {
	return s.returning.ColumnCount()
}

// DynamicNames returns the names of the dynamic returning columns.
func (s *Statement) DynamicNames() []string {
	return s.returning.DynamicNames()
}

// Shape returns the row shape of the statement at the time of the call.
func (s *Statement) Shape() RowShape {
	return s.returning.Shape()
}

// Err returns the first error recorded while building the statement.
func (s *Statement) Err() error {
	if s.err != nil && isBuildError(s.err) {
		return fmt.Errorf("%w: %w", ErrInconsistentStatement, s.err)
	}
	return s.err
}

// Check verifies that the statement is consistent: no build error was
// recorded and every table checked returning column refers to known tables.
// A failed check marks the statement as inconsistent.
func (s *Statement) Check() error {
	if s.err != nil {
		return s.Err()
	}
	if err := s.returning.check(s.knownTables()); err != nil {
		s.fail(err)
		return s.Err()
	}
	return nil
}

// Compile renders the statement into a query with native placeholders and
// its arguments.
func (s *Statement) Compile() (string, []interface{}, error) {
	if err := s.Check(); err != nil {
		return "", nil, err
	}

	stmt, args := s.build()

	query, err := s.backend.compile(stmt)
	if err != nil {
		return "", nil, err
	}

	return s.backend.Placeholders(query), args, nil
}

// String returns the compiled query, or an empty string if the statement
// can't be compiled.
func (s *Statement) String() string {
	query, _, err := s.Compile()
	if err != nil {
		LC().Debugf("unable to compile statement: %v", err)
		return ""
	}
	return query
}

// Arguments returns the arguments of the statement, in query order.
func (s *Statement) Arguments() []interface{} {
	_, args := s.build()
	return args
}

// AsTable wraps the statement into a derived table that other statements can
// refer to by alias. The statement must be consistent and have returning
// columns.
func (s *Statement) AsTable(alias string) (*DerivedTable, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	if s.returning.ColumnCount() == 0 {
		return nil, ErrNoReturningColumns
	}
	if !exql.IsIdentifier(alias) {
		return nil, fmt.Errorf("%w: %q", exql.ErrInvalidIdentifier, alias)
	}

	stmt, args := s.build()

	return &DerivedTable{
		name:     alias,
		backend:  s.backend,
		shape:    s.returning.Shape(),
		fragment: &exql.CTE{Alias: alias, Statement: stmt},
		args:     args,
	}, nil
}

// Clone returns a copy of the statement, including a copy of its dynamic
// returning columns.
func (s *Statement) Clone() *Statement {
	c := s.copy()
	c.returning = s.returning.clone(c)
	return c
}

// Move returns a statement that takes over the returning list of s. The
// dynamic columns of s are left empty.
func (s *Statement) Move() *Statement {
	m := s.copy()
	if l := s.returning; l != nil {
		l.stmt = m
		m.returning = l
		s.returning = &List{stmt: s, static: append([]Column(nil), l.static...)}
	}
	return m
}

func (s *Statement) copy() *Statement {
	c := &Statement{
		backend: s.backend,
		typ:     s.typ,
		table:   s.table,
		with:    append([]*DerivedTable(nil), s.with...),
		columns: append([]string(nil), s.columns...),
		set:     append([]assignment(nil), s.set...),
		from:    append([]string(nil), s.from...),
		using:   append([]string(nil), s.using...),
		where:   append([]condition(nil), s.where...),
		err:     s.err,
	}
	if s.rows != nil {
		c.rows = make([][]interface{}, len(s.rows))
		for i := range s.rows {
			c.rows[i] = append([]interface{}(nil), s.rows[i]...)
		}
	}
	return c
}

func (s *Statement) fail(err error) error {
	if s.err == nil {
		s.err = err
		LC().Debugf("statement on %q marked as inconsistent: %v", s.table, err)
	}
	return err
}

func (s *Statement) knownTables() knownTables {
	known := make(knownTables)
	known.add(s.table)
	known.add(s.from...)
	known.add(s.using...)
	for _, t := range s.with {
		known.add(t.name)
	}
	return known
}

// build assembles the statement fragment and its arguments.
func (s *Statement) build() (*exql.Statement, []interface{}) {
	var args []interface{}

	stmt := &exql.Statement{
		Type:  s.typ.exqlType(),
		Table: exql.TableWithName(s.table),
	}

	if len(s.with) > 0 {
		ctes := make([]exql.Fragment, len(s.with))
		for i, t := range s.with {
			ctes[i] = t.fragment
			args = append(args, t.args...)
		}
		stmt.With = exql.JoinColumns(ctes...)
	}

	switch s.typ {
	case InsertStatement:
		if len(s.columns) > 0 {
			columns := make([]exql.Fragment, len(s.columns))
			for i := range s.columns {
				columns[i] = exql.ColumnWithName(s.columns[i])
			}
			stmt.Columns = exql.JoinColumns(columns...)
		}
		if len(s.rows) > 0 {
			groups := make([]*exql.Values, len(s.rows))
			for i, row := range s.rows {
				values := make([]exql.Fragment, len(row))
				for j := range row {
					values[j], args = valueFragment(row[j], args)
				}
				groups[i] = exql.NewValueGroup(values...)
			}
			stmt.Values = exql.JoinValueGroups(groups...)
		}
	case UpdateStatement:
		assignments := make([]exql.Fragment, len(s.set))
		for i, a := range s.set {
			var value exql.Fragment
			value, args = valueFragment(a.value, args)
			assignments[i] = &exql.ColumnValue{Column: exql.ColumnWithName(a.column), Value: value}
		}
		stmt.ColumnValues = exql.JoinColumnValues(assignments...)
		if len(s.from) > 0 {
			stmt.From = exql.JoinTables(s.from...)
		}
	case DeleteStatement:
		if len(s.using) > 0 {
			stmt.Using = exql.JoinTables(s.using...)
		}
	}

	if len(s.where) > 0 {
		conds := make([]exql.Fragment, len(s.where))
		for i, c := range s.where {
			conds[i] = exql.RawValue(c.sql)
			args = append(args, c.args...)
		}
		stmt.Where = exql.WhereConditions(conds...)
	}

	if s.returning != nil {
		stmt.Returning = s.returning.fragment()
	}

	return stmt, args
}

func valueFragment(v interface{}, args []interface{}) (exql.Fragment, []interface{}) {
	if e, ok := v.(Expr); ok {
		return e.fragment, args
	}
	return exql.RawValue("?"), append(args, v)
}
