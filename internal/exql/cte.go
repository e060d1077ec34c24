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

import "strings"

// CTE represents a named statement, to be used in a WITH clause.
type CTE struct {
	Alias     string
	Statement Fragment
}

var _ = Fragment(&CTE{})

type cteT struct {
	Alias     string
	Statement string
}

// Hash returns a unique identifier.
func (ct *CTE) Hash() uint64 {
	if ct == nil {
		return hashNil
	}
	return quickHash(FragmentType_CTE, ct.Alias, ct.Statement)
}

// Compile transforms the CTE into an equivalent SQL representation.
func (ct *CTE) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(ct); ok {
		return z, nil
	}

	if layout.CTELayout == "" {
		return "", ErrUnsupportedFragment
	}

	data := cteT{Alias: layout.Quote(ct.Alias)}
	if data.Statement, err = ct.Statement.Compile(layout); err != nil {
		return "", err
	}

	compiled = strings.TrimSpace(mustParse(layout.CTELayout, data))
	layout.Write(ct, compiled)
	return compiled, nil
}
