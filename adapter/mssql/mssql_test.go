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

package mssql

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upper/returning"
)

func TestDriverRegistered(t *testing.T) {
	assert.Contains(t, sql.Drivers(), DriverName)
}

func TestNoReturning(t *testing.T) {
	for _, stmt := range []*returning.Statement{
		Insert("users").Columns("name").Values("Ada"),
		Update("users").Set("name", "Ada"),
		Delete("users"),
	} {
		_, err := stmt.Returning(returning.C("id"))

		var capErr *returning.CapabilityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, Adapter, capErr.Backend)

		_, _, err = stmt.Compile()
		assert.ErrorIs(t, err, returning.ErrInconsistentStatement)
	}
}

func TestExec(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	stmt := Update("dbo.users").
		Set("name", "Ada").
		Set("email", "ada@example.org").
		Where("[id] = ?", 1)

	mock.ExpectExec(`UPDATE [dbo].[users] SET [name] = @p1, [email] = @p2 WHERE [id] = @p3`).
		WithArgs("Ada", "ada@example.org", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := stmt.Exec(context.Background(), db)
	require.NoError(t, err)

	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = stmt.Run(context.Background(), db)
	assert.ErrorIs(t, err, returning.ErrNoReturningColumns)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBracketedIdentifiersKeepQuestionMarks(t *testing.T) {
	query, args, err := Update("t").
		Set("a?b", 1).
		Where("id = ?", 2).
		Compile()
	require.NoError(t, err)

	assert.Equal(t, `UPDATE [t] SET [a?b] = @p1 WHERE id = @p2`, query)
	assert.Equal(t, []interface{}{1, 2}, args)
}
