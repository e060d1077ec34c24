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
	"github.com/upper/returning/internal/cache"
)

// FragmentType is used to distinguish between SQL fragments when hashing.
type FragmentType uint32

// Fragment types.
const (
	FragmentType_Nil FragmentType = iota + 137

	FragmentType_Column
	FragmentType_Raw
	FragmentType_Func
	FragmentType_Cast
	FragmentType_JSONField
	FragmentType_Star
	FragmentType_Value
	FragmentType_Alias
	FragmentType_Columns
	FragmentType_Returning
	FragmentType_Table
	FragmentType_Tables
	FragmentType_Values
	FragmentType_ValueGroups
	FragmentType_ColumnValue
	FragmentType_ColumnValues
	FragmentType_Where
	FragmentType_Statement
	FragmentType_CTE
)

// Fragment is any interface that can be both cached and compiled.
type Fragment interface {
	cache.Hashable

	compilable
}

type compilable interface {
	Compile(*Template) (string, error)
}
