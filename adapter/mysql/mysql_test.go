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

package mysql

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

func TestCompile(t *testing.T) {
	t.Run("insert", func(t *testing.T) {
		stmt := Insert("users").Columns("name").Values("Ada")
		_, err := stmt.Returning(returning.C("id"), returning.C("users.name").As("user`name"))
		require.NoError(t, err)

		query, args, err := stmt.Compile()
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO `users` (`name`) VALUES (?) RETURNING `id`,`users`.`name` AS `user``name`", query)
		assert.Equal(t, []interface{}{"Ada"}, args)
	})

	t.Run("insert default values", func(t *testing.T) {
		stmt := Insert("events")
		_, err := stmt.Returning(returning.C("id"))
		require.NoError(t, err)

		query, _, err := stmt.Compile()
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO `events` () VALUES () RETURNING `id`", query)
	})

	t.Run("update", func(t *testing.T) {
		stmt := Update("users").Set("name", "Ada").Where("id = ?", 1)
		_, err := stmt.Returning(returning.C("id"))
		assert.ErrorIs(t, err, returning.ErrCapability)

		// Without RETURNING the statement is still usable.
		stmt = Update("users").Set("name", "Ada").Where("id = ?", 1)
		query, _, err := stmt.Compile()
		require.NoError(t, err)
		assert.Equal(t, "UPDATE `users` SET `name` = ? WHERE id = ?", query)
	})

	t.Run("no dynamic columns", func(t *testing.T) {
		stmt := Delete("users").Where("id = ?", 1)
		l, err := stmt.Returning(returning.C("id"))
		require.NoError(t, err)

		var capErr *returning.CapabilityError
		require.ErrorAs(t, l.Add(returning.C("name")), &capErr)
		assert.Equal(t, Adapter, capErr.Backend)

		_, err = Delete("users").Returning()
		assert.ErrorIs(t, err, returning.ErrCapability)
	})

	t.Run("backslash literal", func(t *testing.T) {
		stmt := Delete("users")
		_, err := stmt.Returning(returning.Lit(`\o'clock`).As("lit"))
		require.NoError(t, err)

		query, _, err := stmt.Compile()
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM `users` RETURNING '\\\\o''clock' AS `lit`", query)
	})

	t.Run("no operators", func(t *testing.T) {
		_, err := Insert("users").Returning(returning.JSONText(returning.C("profile"), "nick"))
		assert.ErrorIs(t, err, returning.ErrNotSerializable)
	})
}

func TestDeleteReturning(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	stmt := Delete("users").Where("id = ?", 3)
	l, err := stmt.Returning(
		returning.C("id").Type(returning.KindInteger).NotNull(),
		returning.C("name").Type(returning.KindText),
	)
	require.NoError(t, err)
	assert.IsType(t, &returning.FixedShape{}, l.GenericShape())

	mock.ExpectQuery("DELETE FROM `users` WHERE id = ? RETURNING `id`,`name`").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(3), "Hedy"))

	res, err := stmt.Run(context.Background(), db)
	require.NoError(t, err)

	rows, err := res.All()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, map[string]interface{}{"id": int64(3), "name": "Hedy"}, rows[0].Map())

	assert.NoError(t, mock.ExpectationsWereMet())
}
