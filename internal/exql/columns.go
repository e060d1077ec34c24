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

// Columns represents an array of Column.
type Columns struct {
	Columns []Fragment
}

var _ = Fragment(&Columns{})

// JoinColumns creates and returns an array of Column.
func JoinColumns(columns ...Fragment) *Columns {
	return &Columns{Columns: columns}
}

// Hash returns a unique identifier.
func (c *Columns) Hash() uint64 {
	if c == nil {
		return hashNil
	}
	return quickHash(FragmentType_Columns, c.Columns)
}

// IsEmpty reports whether there are no columns.
func (c *Columns) IsEmpty() bool {
	return c == nil || len(c.Columns) == 0
}

// Compile transforms the Columns into an equivalent SQL representation.
func (c *Columns) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(c); ok {
		return z, nil
	}

	compiled, err = joinFragments(layout, c.Columns, layout.IdentifierSeparator)
	if err != nil {
		return "", err
	}

	layout.Write(c, compiled)
	return
}

func joinFragments(layout *Template, fragments []Fragment, sep string) (string, error) {
	if len(fragments) == 0 {
		return "", nil
	}
	out := make([]string, len(fragments))
	for i := range fragments {
		var err error
		if out[i], err = fragments[i].Compile(layout); err != nil {
			return "", err
		}
	}
	return strings.Join(out, sep), nil
}
