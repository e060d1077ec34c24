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
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"
)

// Querier runs queries that return rows. *sql.DB, *sql.Tx and *sql.Conn
// satisfy it.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Preparer creates prepared statements.
type Preparer interface {
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
}

// Execer runs queries without returning rows.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Run executes the statement and returns its returning rows. The row shape is
// resolved when Run is called, columns added afterwards are not part of the
// result.
func (s *Statement) Run(ctx context.Context, q Querier) (*Result, error) {
	query, args, err := s.Compile()
	if err != nil {
		return nil, err
	}
	if !s.HasReturning() {
		return nil, ErrNoReturningColumns
	}

	shape := s.Shape()

	status := &QueryStatus{Backend: s.backend.Name(), Query: query, Args: args, Start: time.Now(), Context: ctx}
	rows, err := q.QueryContext(ctx, query, args...)
	status.Err = err
	logQueryStatus(status)
	if err != nil {
		return nil, err
	}

	return newResult(rows, shape, s.backend), nil
}

// Exec executes the statement and discards its returning rows, if any.
func (s *Statement) Exec(ctx context.Context, e Execer) (sql.Result, error) {
	query, args, err := s.Compile()
	if err != nil {
		return nil, err
	}

	status := &QueryStatus{Backend: s.backend.Name(), Query: query, Args: args, Start: time.Now(), Context: ctx}
	res, err := e.ExecContext(ctx, query, args...)
	if err == nil {
		if n, rerr := res.RowsAffected(); rerr == nil {
			status.RowsAffected = &n
		}
	}
	status.Err = err
	logQueryStatus(status)

	return res, err
}

// Prepare creates a prepared statement. The returning list must be complete
// when Prepare is called.
func (s *Statement) Prepare(ctx context.Context, p Preparer) (*Prepared, error) {
	query, args, err := s.Compile()
	if err != nil {
		return nil, err
	}
	if !s.HasReturning() {
		return nil, ErrNoReturningColumns
	}

	status := &QueryStatus{Backend: s.backend.Name(), Query: query, Start: time.Now(), Context: ctx}
	stmt, err := p.PrepareContext(ctx, query)
	status.Err = err
	logQueryStatus(status)
	if err != nil {
		return nil, err
	}

	return &Prepared{
		stmt:    stmt,
		query:   query,
		args:    args,
		shape:   s.Shape(),
		backend: s.backend,
	}, nil
}

// Prepared is a prepared statement together with the row shape of its
// returning list.
type Prepared struct {
	stmt    *sql.Stmt
	query   string
	args    []interface{}
	shape   RowShape
	backend *Backend
}

// Run executes the prepared statement. When no arguments are given the
// arguments of the statement are used.
func (p *Prepared) Run(ctx context.Context, args ...interface{}) (*Result, error) {
	if len(args) == 0 {
		args = p.args
	}

	status := &QueryStatus{Backend: p.backend.Name(), Query: p.query, Args: args, Start: time.Now(), Context: ctx}
	rows, err := p.stmt.QueryContext(ctx, args...)
	status.Err = err
	logQueryStatus(status)
	if err != nil {
		return nil, err
	}

	return newResult(rows, p.shape, p.backend), nil
}

// Shape returns the row shape of the prepared statement.
func (p *Prepared) Shape() RowShape {
	return p.shape
}

// DynamicNames returns the names of the dynamic columns of the prepared
// statement.
func (p *Prepared) DynamicNames() []string {
	if d, ok := p.shape.(*DynamicShape); ok {
		return d.DynamicNames()
	}
	return nil
}

// Close closes the prepared statement.
func (p *Prepared) Close() error {
	return p.stmt.Close()
}

// Result iterates over the rows returned by a statement.
type Result struct {
	rows    *sql.Rows
	shape   RowShape
	backend *Backend
	fields  []Field
	index   map[string]int

	checked bool
	row     *Row
	err     error
}

func newResult(rows *sql.Rows, shape RowShape, b *Backend) *Result {
	fields := shape.Fields()
	if d, ok := shape.(*DynamicShape); ok {
		for _, name := range d.dynamic {
			fields = append(fields, Field{Name: name, Type: dynamicFieldType})
		}
	}

	index := make(map[string]int, len(fields))
	for i := range fields {
		index[fields[i].Name] = i
	}

	return &Result{rows: rows, shape: shape, backend: b, fields: fields, index: index}
}

// Shape returns the row shape used to decode the rows.
func (r *Result) Shape() RowShape {
	return r.shape
}

// Next prepares the next row for reading with Row.
func (r *Result) Next() bool {
	if r.err != nil {
		return false
	}
	if !r.rows.Next() {
		return false
	}

	row, err := r.scan()
	if err != nil {
		r.err = err
		return false
	}

	r.row = row
	return true
}

// Row returns the current row.
func (r *Result) Row() *Row {
	return r.row
}

// Err returns the error found while iterating, if any.
func (r *Result) Err() error {
	if r.err != nil {
		return r.err
	}
	return r.rows.Err()
}

// Close closes the underlying rows.
func (r *Result) Close() error {
	return r.rows.Close()
}

// All reads every remaining row and closes the result.
func (r *Result) All() ([]*Row, error) {
	defer r.Close()

	var rows []*Row
	for r.Next() {
		rows = append(rows, r.row)
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Result) scan() (*Row, error) {
	if !r.checked {
		columns, err := r.rows.Columns()
		if err != nil {
			return nil, err
		}
		if len(columns) != len(r.fields) {
			return nil, fmt.Errorf("%w: expecting %d columns, got %d", ErrShapeMismatch, len(r.fields), len(columns))
		}
		r.checked = true
	}

	dest := make([]interface{}, len(r.fields))
	for i := range r.fields {
		dest[i] = r.backend.ScanTarget(r.fields[i].Type)
	}

	if err := r.rows.Scan(dest...); err != nil {
		return nil, err
	}

	values := make([]interface{}, len(dest))
	for i := range dest {
		v, err := scannedValue(dest[i])
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", r.fields[i].Name, err)
		}
		if v == nil && !r.fields[i].Type.Nullable {
			return nil, fmt.Errorf("%w: %q", ErrUnexpectedNull, r.fields[i].Name)
		}
		values[i] = v
	}

	return &Row{values: values, fields: r.fields, index: r.index}, nil
}

// valueGetter is satisfied by the pgtype types and by adapter scan targets
// that decode values by themselves.
type valueGetter interface {
	Get() interface{}
}

// scannedValue unwraps a scan destination into a plain value, nil stands for
// NULL.
func scannedValue(dest interface{}) (interface{}, error) {
	switch v := dest.(type) {
	case valueGetter:
		return v.Get(), nil
	case driver.Valuer:
		return v.Value()
	case *[]byte:
		if *v == nil {
			return nil, nil
		}
		return append([]byte(nil), (*v)...), nil
	case *interface{}:
		if b, ok := (*v).([]byte); ok {
			return append([]byte(nil), b...), nil
		}
		return *v, nil
	}
	return dest, nil
}

// Row is a decoded result row.
type Row struct {
	values []interface{}
	fields []Field
	index  map[string]int
}

// Len returns the number of columns.
func (r *Row) Len() int {
	return len(r.values)
}

// At returns the value at the given position.
func (r *Row) At(i int) interface{} {
	return r.values[i]
}

// Get returns the value of the named column.
func (r *Row) Get(name string) (interface{}, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return r.values[i], nil
}

// Names returns the column names, in result set order.
func (r *Row) Names() []string {
	names := make([]string, len(r.fields))
	for i := range r.fields {
		names[i] = r.fields[i].Name
	}
	return names
}

// Map returns the row as a map of column names to values.
func (r *Row) Map() map[string]interface{} {
	m := make(map[string]interface{}, len(r.values))
	for i := range r.fields {
		m[r.fields[i].Name] = r.values[i]
	}
	return m
}
