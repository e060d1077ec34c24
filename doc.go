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

// Package returning builds the RETURNING clause of INSERT, UPDATE and DELETE
// statements.
//
// A returning list has static columns, set once with Statement.Returning and
// validated when the statement is built, and dynamic columns that can be
// appended later with List.Add and List.AddNTC on backends that allow it:
//
//	stmt := returning.Insert(postgresql.Backend, "users").
//		Columns("name").
//		Values("Ada")
//
//	list, err := stmt.Returning(returning.C("id").NotNull())
//	...
//	err = list.Add(returning.C("users.created_at"))
//	...
//	res, err := stmt.Run(ctx, sqlDB)
//
// Every column is checked before it joins the list: the tables it refers to
// must be known to the statement (AddNTC skips this check), it must be usable
// as a projection column and the backend must be able to render it. A failed
// check leaves the list unchanged and marks the statement as inconsistent, so
// it can't be compiled or run.
//
// The row shape of a statement is resolved when it is run, it is fixed when
// no dynamic column was added and dynamic otherwise.
package returning
