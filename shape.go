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

// Field is a named and typed column of a result row.
type Field struct {
	Name string
	Type ValueType
}

// RowShape describes the rows a statement returns. It is either a
// *FixedShape or a *DynamicShape.
type RowShape interface {
	// Fields returns the columns known when the statement was built.
	Fields() []Field
	// Names returns the names of all the columns, in result set order.
	Names() []string
	// Len returns the number of columns.
	Len() int

	rowShape()
}

// FixedShape is a row shape whose columns were all known when the statement
// was built.
type FixedShape struct {
	fields []Field
}

// Fields returns the columns of the shape.
func (s *FixedShape) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Names returns the names of the columns.
func (s *FixedShape) Names() []string {
	names := make([]string, len(s.fields))
	for i := range s.fields {
		names[i] = s.fields[i].Name
	}
	return names
}

// Len returns the number of columns.
func (s *FixedShape) Len() int {
	return len(s.fields)
}

func (*FixedShape) rowShape() {}

// DynamicShape is a row shape that carries, after the fixed fields, columns
// that are only known by name. Those columns are decoded as nullable text.
type DynamicShape struct {
	fields  []Field
	dynamic []string
}

// Fields returns the fixed columns of the shape.
func (s *DynamicShape) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// DynamicNames returns the names of the dynamic columns.
func (s *DynamicShape) DynamicNames() []string {
	return append([]string(nil), s.dynamic...)
}

// Names returns the names of all the columns.
func (s *DynamicShape) Names() []string {
	names := make([]string, 0, s.Len())
	for i := range s.fields {
		names = append(names, s.fields[i].Name)
	}
	return append(names, s.dynamic...)
}

// Len returns the number of columns.
func (s *DynamicShape) Len() int {
	return len(s.fields) + len(s.dynamic)
}

func (*DynamicShape) rowShape() {}

var dynamicFieldType = ValueType{Kind: KindText, Nullable: true}

// Shape resolves the row shape of the list as it is at the time of the call:
// fixed when the backend can't grow lists or no dynamic column was added,
// dynamic otherwise.
func (l *List) Shape() RowShape {
	if l == nil {
		return &FixedShape{}
	}
	if !l.stmt.backend.DynamicCapable() || len(l.dynamic) == 0 {
		return l.fixedShape()
	}
	return l.dynamicShape()
}

// GenericShape resolves a row shape that does not depend on whether dynamic
// columns were added yet: dynamic on backends that can grow lists, fixed
// otherwise.
func (l *List) GenericShape() RowShape {
	if l == nil {
		return &FixedShape{}
	}
	if !l.stmt.backend.DynamicCapable() {
		return l.fixedShape()
	}
	return l.dynamicShape()
}

func (l *List) fixedShape() *FixedShape {
	fields := make([]Field, 0, len(l.static))
	for i := range l.static {
		fields = append(fields, l.static[i].field())
	}
	return &FixedShape{fields: fields}
}

func (l *List) dynamicShape() *DynamicShape {
	return &DynamicShape{
		fields:  l.fixedShape().fields,
		dynamic: l.DynamicNames(),
	}
}
