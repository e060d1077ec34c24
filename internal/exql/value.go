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
	"fmt"
)

// Values represents a group of values, like "(?, ?, ?)".
type Values struct {
	Values []Fragment
}

var _ = Fragment(&Values{})

// NewValueGroup creates and returns an array of values.
func NewValueGroup(v ...Fragment) *Values {
	return &Values{Values: v}
}

// Hash returns a unique identifier for the struct.
func (vs *Values) Hash() uint64 {
	if vs == nil {
		return hashNil
	}
	return quickHash(FragmentType_Values, vs.Values)
}

// Compile transforms the Values into an equivalent SQL representation.
func (vs *Values) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(vs); ok {
		return z, nil
	}

	inner, err := joinFragments(layout, vs.Values, layout.ValueSeparator)
	if err != nil {
		return "", err
	}
	compiled = "(" + inner + ")"

	layout.Write(vs, compiled)
	return
}

// ValueGroups represents an array of value groups.
type ValueGroups struct {
	Values []*Values
}

var _ = Fragment(&ValueGroups{})

// JoinValueGroups creates a new *ValueGroups object.
func JoinValueGroups(values ...*Values) *ValueGroups {
	return &ValueGroups{Values: values}
}

// Hash returns a unique identifier for the struct.
func (vg *ValueGroups) Hash() uint64 {
	if vg == nil {
		return hashNil
	}
	fragments := make([]Fragment, len(vg.Values))
	for i := range vg.Values {
		fragments[i] = vg.Values[i]
	}
	return quickHash(FragmentType_ValueGroups, fragments)
}

// Compile transforms the ValueGroups into an equivalent SQL representation.
func (vg *ValueGroups) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(vg); ok {
		return z, nil
	}

	fragments := make([]Fragment, len(vg.Values))
	for i := range vg.Values {
		fragments[i] = vg.Values[i]
	}
	if compiled, err = joinFragments(layout, fragments, layout.ValueSeparator); err != nil {
		return "", err
	}

	layout.Write(vg, compiled)
	return
}

// ColumnValue represents a bundle of column and value, like "a = ?".
type ColumnValue struct {
	Column   Fragment
	Operator string
	Value    Fragment
}

var _ = Fragment(&ColumnValue{})

type columnValueT struct {
	Column   string
	Operator string
	Value    string
}

// Hash returns a unique identifier for the struct.
func (c *ColumnValue) Hash() uint64 {
	if c == nil {
		return hashNil
	}
	return quickHash(FragmentType_ColumnValue, c.Column, c.Operator, c.Value)
}

// Compile transforms the ColumnValue into an equivalent SQL representation.
func (c *ColumnValue) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(c); ok {
		return z, nil
	}

	data := columnValueT{Operator: c.Operator}
	if data.Operator == "" {
		data.Operator = layout.AssignmentOperator
	}
	if data.Column, err = c.Column.Compile(layout); err != nil {
		return "", err
	}
	if data.Value, err = c.Value.Compile(layout); err != nil {
		return "", err
	}

	compiled = mustParse(layout.ColumnValue, data)

	layout.Write(c, compiled)
	return
}

// ColumnValues represents an array of ColumnValue.
type ColumnValues struct {
	ColumnValues []Fragment
}

var _ = Fragment(&ColumnValues{})

// JoinColumnValues returns an array of ColumnValue.
func JoinColumnValues(values ...Fragment) *ColumnValues {
	return &ColumnValues{ColumnValues: values}
}

// Insert adds a column to the columns array.
func (c *ColumnValues) Insert(values ...Fragment) *ColumnValues {
	c.ColumnValues = append(c.ColumnValues, values...)
	return c
}

// Hash returns a unique identifier for the struct.
func (c *ColumnValues) Hash() uint64 {
	if c == nil {
		return hashNil
	}
	return quickHash(FragmentType_ColumnValues, c.ColumnValues)
}

// Compile transforms the ColumnValues into its SQL representation.
func (c *ColumnValues) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(c); ok {
		return z, nil
	}

	if len(c.ColumnValues) == 0 {
		return "", fmt.Errorf("%w: empty assignment list", ErrUnsupportedFragment)
	}
	if compiled, err = joinFragments(layout, c.ColumnValues, layout.IdentifierSeparator); err != nil {
		return "", err
	}

	layout.Write(c, compiled)
	return
}

// Where represents a WHERE clause built from raw conditions joined with AND.
type Where struct {
	Conditions []Fragment
}

var _ = Fragment(&Where{})

// WhereConditions creates and retuns a new Where.
func WhereConditions(conditions ...Fragment) *Where {
	return &Where{Conditions: conditions}
}

// Hash returns a unique identifier for the struct.
func (w *Where) Hash() uint64 {
	if w == nil {
		return hashNil
	}
	return quickHash(FragmentType_Where, w.Conditions)
}

// Compile transforms the Where into an equivalent SQL representation.
func (w *Where) Compile(layout *Template) (compiled string, err error) {
	if len(w.Conditions) == 0 {
		return "", nil
	}

	if z, ok := layout.Read(w); ok {
		return z, nil
	}

	conds := make([]Fragment, len(w.Conditions))
	for i := range w.Conditions {
		conds[i] = w.Conditions[i]
		if len(w.Conditions) > 1 {
			var s string
			if s, err = w.Conditions[i].Compile(layout); err != nil {
				return "", err
			}
			conds[i] = RawValue("(" + s + ")")
		}
	}

	joined, err := joinFragments(layout, conds, " AND ")
	if err != nil {
		return "", err
	}
	compiled = "WHERE " + joined

	layout.Write(w, compiled)
	return
}
