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

// Returning represents a RETURNING clause. Columns are the entries known when
// the statement was built, Dynamic are the entries appended afterwards; both
// keep their order.
type Returning struct {
	Columns []Fragment
	Dynamic []Fragment
}

var _ = Fragment(&Returning{})

type returningT struct {
	Columns string
}

// ReturningColumns creates and returns a RETURNING clause with the given
// columns.
func ReturningColumns(columns ...Fragment) *Returning {
	return &Returning{Columns: columns}
}

// Hash returns a unique identifier for the struct.
func (r *Returning) Hash() uint64 {
	if r == nil {
		return hashNil
	}
	return quickHash(FragmentType_Returning, r.Columns, r.Dynamic)
}

// IsEmpty reports whether the clause has no columns at all.
func (r *Returning) IsEmpty() bool {
	return r == nil || (len(r.Columns) == 0 && len(r.Dynamic) == 0)
}

// Compile transforms the clause into its equivalent SQL representation. An
// empty clause compiles into an empty string.
func (r *Returning) Compile(layout *Template) (compiled string, err error) {
	if r.IsEmpty() {
		return "", nil
	}

	if z, ok := layout.Read(r); ok {
		return z, nil
	}

	if layout.ReturningLayout == "" {
		return "", ErrUnsupportedFragment
	}

	static, err := joinFragments(layout, r.Columns, layout.ReturningSeparator)
	if err != nil {
		return "", err
	}

	dynamic, err := joinFragments(layout, r.Dynamic, layout.ReturningSeparator)
	if err != nil {
		return "", err
	}

	columns := static
	if dynamic != "" {
		if columns != "" {
			columns += layout.ReturningSeparator
		}
		columns += dynamic
	}

	compiled = mustParse(layout.ReturningLayout, returningT{Columns: columns})

	layout.Write(r, compiled)
	return
}
