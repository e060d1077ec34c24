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
	"strings"
)

var hashNil = quickHash(FragmentType_Nil)

// Raw represents a value that is meant to be used in a query without escaping.
type Raw struct {
	Value string
}

var (
	_ = fmt.Stringer(&Raw{})
	_ = Fragment(&Raw{})
)

// RawValue creates and returns a new raw value.
func RawValue(v string) *Raw {
	return &Raw{Value: strings.TrimSpace(v)}
}

// Hash returns a unique identifier for the struct.
func (r *Raw) Hash() uint64 {
	if r == nil {
		return hashNil
	}
	return quickHash(FragmentType_Raw, r.Value)
}

// Compile returns the raw value.
func (r *Raw) Compile(*Template) (string, error) {
	return r.Value, nil
}

// String returns the raw value.
func (r *Raw) String() string {
	return r.Value
}

// Star is the "*" wildcard.
type Star struct{}

var _ = Fragment(&Star{})

// Hash returns a unique identifier for the struct.
func (s *Star) Hash() uint64 {
	return quickHash(FragmentType_Star)
}

// Compile returns "*".
func (s *Star) Compile(*Template) (string, error) {
	return "*", nil
}

// Value represents a literal value that is quoted with the template's
// ValueQuote.
type Value struct {
	V interface{}
}

var _ = Fragment(&Value{})

// NewValue creates and returns a Value.
func NewValue(v interface{}) *Value {
	return &Value{V: v}
}

// Hash returns a unique identifier for the struct.
func (v *Value) Hash() uint64 {
	if v == nil {
		return hashNil
	}
	return quickHash(FragmentType_Value, fmt.Sprintf("%T:%v", v.V, v.V))
}

// Compile transforms the Value into an equivalent SQL representation.
func (v *Value) Compile(layout *Template) (compiled string, err error) {
	if z, ok := layout.Read(v); ok {
		return z, nil
	}

	switch t := v.V.(type) {
	case nil:
		compiled = "NULL"
	case Fragment:
		if compiled, err = t.Compile(layout); err != nil {
			return "", err
		}
	case bool:
		compiled = strings.ToUpper(fmt.Sprintf("%v", t))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		compiled = fmt.Sprintf("%v", t)
	default:
		if layout.QuoteValue != nil {
			compiled = layout.QuoteValue(fmt.Sprintf("%v", t))
			break
		}
		compiled = mustParse(layout.ValueQuote, strings.ReplaceAll(fmt.Sprintf("%v", t), "'", "''"))
	}

	layout.Write(v, compiled)
	return
}
