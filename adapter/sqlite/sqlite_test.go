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

package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/upper/returning"
)

var schema = []string{
	`CREATE TABLE users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT,
		profile TEXT,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

func openDB(t *testing.T) *sql.DB {
	db, err := sql.Open(DriverName, ":memory:")
	require.NoError(t, err)

	// Every connection to ":memory:" opens a different database.
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	for _, query := range schema {
		_, err = db.Exec(query)
		require.NoError(t, err)
	}

	return db
}

func insertUsers(t *testing.T, db *sql.DB) {
	stmt := Insert("users").
		Columns("name", "email", "profile").
		Values("Ada", "ada@example.org", `{"nick":"ada"}`).
		Values("Grace", nil, `{"nick":"grace"}`)

	_, err := stmt.Exec(context.Background(), db)
	require.NoError(t, err)
}

func TestInsertReturning(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	stmt := Insert("users").
		Columns("name", "email", "profile").
		Values("Ada", "ada@example.org", `{"nick":"ada"}`).
		Values("Grace", nil, `{"nick":"grace"}`)

	l, err := stmt.Returning(
		returning.C("id").Type(returning.KindInteger).NotNull(),
		returning.C("name").Type(returning.KindText).NotNull(),
	)
	require.NoError(t, err)

	require.NoError(t, l.Add(returning.C("email")))
	require.NoError(t, l.Add(returning.JSONText(returning.C("profile"), "nick")))

	query, _, err := stmt.Compile()
	require.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("name", "email", "profile") VALUES (?, ?, ?), (?, ?, ?) RETURNING "id","name","email","profile"->>'nick' AS "nick"`, query)

	res, err := stmt.Run(ctx, db)
	require.NoError(t, err)

	rows, err := res.All()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]map[string]interface{}{}
	for _, row := range rows {
		m := row.Map()
		byName[m["name"].(string)] = m
	}

	assert.Equal(t, map[string]interface{}{
		"id":    int64(1),
		"name":  "Ada",
		"email": "ada@example.org",
		"nick":  "ada",
	}, byName["Ada"])

	assert.Equal(t, map[string]interface{}{
		"id":    int64(2),
		"name":  "Grace",
		"email": nil,
		"nick":  "grace",
	}, byName["Grace"])
}

func TestInsertDefaultValues(t *testing.T) {
	db := openDB(t)

	stmt := Insert("events")
	_, err := stmt.Returning(
		returning.C("id").Type(returning.KindInteger).NotNull(),
		returning.C("created_at").Type(returning.KindTime).NotNull(),
	)
	require.NoError(t, err)

	res, err := stmt.Run(context.Background(), db)
	require.NoError(t, err)

	rows, err := res.All()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1), rows[0].At(0))
	assert.NotNil(t, rows[0].At(1))
}

func TestUpdateReturning(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	insertUsers(t, db)

	stmt := Update("users").
		Set("email", "grace@example.org").
		Where("name = ?", "Grace")

	l, err := stmt.Returning(returning.C("id").Type(returning.KindInteger).NotNull())
	require.NoError(t, err)
	require.NoError(t, l.Add(returning.C("email")))
	require.NoError(t, l.Add(returning.C("created_at")))

	res, err := stmt.Run(ctx, db)
	require.NoError(t, err)

	rows, err := res.All()
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, []string{"id", "email", "created_at"}, rows[0].Names())
	assert.Equal(t, int64(2), rows[0].At(0))
	assert.Equal(t, "grace@example.org", rows[0].At(1))
	assert.NotEmpty(t, rows[0].At(2))
}

func TestDeleteReturning(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	insertUsers(t, db)

	stmt := Delete("users").Where("email IS NULL")
	_, err := stmt.Returning(
		returning.C("id").Type(returning.KindInteger).NotNull(),
		returning.C("name").Type(returning.KindText).NotNull(),
	)
	require.NoError(t, err)

	res, err := stmt.Run(ctx, db)
	require.NoError(t, err)

	rows, err := res.All()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Grace", rows[0].At(1))

	var count int
	require.NoError(t, db.QueryRow(`SELECT count(*) FROM users`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestPrepare(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	stmt := Insert("users").Columns("name").Values("Ada")
	l, err := stmt.Returning(returning.C("id").Type(returning.KindInteger).NotNull())
	require.NoError(t, err)
	require.NoError(t, l.Add(returning.C("name")))

	p, err := stmt.Prepare(ctx, db)
	require.NoError(t, err)
	defer p.Close()

	for i, name := range []string{"Ada", "Grace", "Hedy"} {
		res, err := p.Run(ctx, name)
		require.NoError(t, err)

		rows, err := res.All()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(i+1), rows[0].At(0))
		assert.Equal(t, name, rows[0].At(1))
	}
}

func TestUnsupportedExpressions(t *testing.T) {
	_, err := Insert("users").Returning(returning.Cast(returning.C("id"), "text"))
	assert.ErrorIs(t, err, returning.ErrNotSerializable)
}
