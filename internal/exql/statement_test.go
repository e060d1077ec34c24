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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertReturning(t *testing.T) {
	stmt := Statement{
		Type:    Insert,
		Table:   TableWithName("users"),
		Columns: JoinColumns(ColumnWithName("name"), ColumnWithName("email")),
		Values:  JoinValueGroups(NewValueGroup(RawValue("?"), RawValue("?"))),
		Returning: ReturningColumns(
			ColumnWithName("id"),
			ColumnWithName("name"),
		),
	}

	s, err := stmt.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("name", "email") VALUES (?, ?) RETURNING "id","name"`, s)
}

func TestInsertDefaultValues(t *testing.T) {
	stmt := Statement{
		Type:  Insert,
		Table: TableWithName("users"),
	}

	s, err := stmt.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" DEFAULT VALUES`, s)
}

func TestInsertMultipleValueGroups(t *testing.T) {
	stmt := Statement{
		Type:    Insert,
		Table:   TableWithName("users"),
		Columns: JoinColumns(ColumnWithName("name")),
		Values: JoinValueGroups(
			NewValueGroup(RawValue("?")),
			NewValueGroup(RawValue("?")),
		),
	}

	s, err := stmt.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `INSERT INTO "users" ("name") VALUES (?), (?)`, s)
}

func TestUpdateFromReturning(t *testing.T) {
	stmt := Statement{
		Type:  Update,
		Table: TableWithName("users AS u"),
		ColumnValues: JoinColumnValues(
			&ColumnValue{Column: ColumnWithName("name"), Value: RawValue("?")},
		),
		From:  JoinTables("accounts a"),
		Where: WhereConditions(RawValue("u.account_id = a.id")),
		Returning: &Returning{
			Columns: []Fragment{ColumnWithName("u.id")},
			Dynamic: []Fragment{&Alias{Expr: ColumnWithName("a.plan"), Name: "plan"}},
		},
	}

	s, err := stmt.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `UPDATE "users" AS "u" SET "name" = ? FROM "accounts" AS "a" WHERE u.account_id = a.id RETURNING "u"."id","a"."plan" AS "plan"`, s)
}

func TestUpdateWithoutAssignments(t *testing.T) {
	stmt := Statement{
		Type:         Update,
		Table:        TableWithName("users"),
		ColumnValues: JoinColumnValues(),
	}

	_, err := stmt.Compile(defaultTemplate)
	assert.ErrorIs(t, err, ErrUnsupportedFragment)
}

func TestDeleteUsingReturning(t *testing.T) {
	stmt := Statement{
		Type:  Delete,
		Table: TableWithName("sessions"),
		Using: JoinTables("users"),
		Where: WhereConditions(
			RawValue("sessions.user_id = users.id"),
			RawValue("users.banned"),
		),
		Returning: ReturningColumns(ColumnWithName("sessions.id")),
	}

	s, err := stmt.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `DELETE FROM "sessions" USING "users" WHERE (sessions.user_id = users.id) AND (users.banned) RETURNING "sessions"."id"`, s)
}

func TestDeleteWithoutReturning(t *testing.T) {
	stmt := Statement{
		Type:      Delete,
		Table:     TableWithName("sessions"),
		Returning: ReturningColumns(),
	}

	s, err := stmt.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `DELETE FROM "sessions"`, s)
}

func TestStatementUnknownType(t *testing.T) {
	stmt := Statement{Type: NoOp, Table: TableWithName("t")}
	_, err := stmt.Compile(defaultTemplate)
	assert.ErrorIs(t, err, ErrUnknownTemplateType)
}

func TestRawSQL(t *testing.T) {
	s, err := RawSQL("SELECT 1").Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, "SELECT 1", s)
}

func TestCTE(t *testing.T) {
	cte := &CTE{
		Alias: "created",
		Statement: &Statement{
			Type:      Insert,
			Table:     TableWithName("users"),
			Columns:   JoinColumns(ColumnWithName("name")),
			Values:    JoinValueGroups(NewValueGroup(RawValue("?"))),
			Returning: ReturningColumns(ColumnWithName("id")),
		},
	}

	s, err := cte.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `"created" AS (INSERT INTO "users" ("name") VALUES (?) RETURNING "id")`, s)

	stmt := &Statement{
		Type:  Update,
		With:  JoinColumns(cte),
		Table: TableWithName("accounts"),
		ColumnValues: JoinColumnValues(
			&ColumnValue{Column: ColumnWithName("owner_id"), Value: ColumnWithName("created.id")},
		),
		From: JoinTables("created"),
	}

	s, err = stmt.Compile(defaultTemplate)
	assert.NoError(t, err)
	assert.Equal(t, `WITH "created" AS (INSERT INTO "users" ("name") VALUES (?) RETURNING "id") UPDATE "accounts" SET "owner_id" = "created"."id" FROM "created"`, s)
}

func TestReplaceWithDollarSign(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{
			`SELECT ?`,
			`SELECT $1`,
		},
		{
			`SELECT ? FROM ? WHERE ?`,
			`SELECT $1 FROM $2 WHERE $3`,
		},
		{
			`SELECT ?? FROM ? WHERE ??`,
			`SELECT ? FROM $1 WHERE ?`,
		},
		{
			`SELECT ??? FROM ? WHERE ??`,
			`SELECT ?$1 FROM $2 WHERE ?`,
		},
		{
			`SELECT ??? FROM ? WHERE ????`,
			`SELECT ?$1 FROM $2 WHERE ??`,
		},
		{
			`UPDATE t SET a = ? WHERE b = 'why?' RETURNING "c?"`,
			`UPDATE t SET a = $1 WHERE b = 'why?' RETURNING "c?"`,
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.out, ReplaceWithDollarSign(test.in))
	}
}

func TestReplacePlaceholdersWithPrefix(t *testing.T) {
	assert.Equal(t, `DELETE FROM t WHERE a = @p1 AND b = @p2`, ReplacePlaceholders(`DELETE FROM t WHERE a = ? AND b = ?`, "@p"))
}

func TestReplacePlaceholdersQuotePairs(t *testing.T) {
	brackets := QuotePair{'[', ']'}

	assert.Equal(t,
		`UPDATE [t] SET [a?b] = @p1 WHERE [c]]?] = @p2 AND d = 'e''?'`,
		ReplacePlaceholders(`UPDATE [t] SET [a?b] = ? WHERE [c]]?] = ? AND d = 'e''?'`, "@p", brackets),
	)
	assert.Equal(t,
		"INSERT INTO `t` (`a?`) VALUES ($1)",
		ReplacePlaceholders("INSERT INTO `t` (`a?`) VALUES (?)", "$", QuotePair{'`', '`'}),
	)
	// unbalanced brackets are not quotes unless asked for
	assert.Equal(t, `SELECT [$1]`, ReplacePlaceholders(`SELECT [?]`, "$"))
}

func TestSplitTableName(t *testing.T) {
	tests := []struct {
		in    string
		name  string
		alias string
	}{
		{"users", "users", ""},
		{"users AS u", "users", "u"},
		{"users as u", "users", "u"},
		{"users u", "users", "u"},
		{" public.users  u ", "public.users", "u"},
	}
	for _, test := range tests {
		name, alias := SplitTableName(test.in)
		assert.Equal(t, test.name, name)
		assert.Equal(t, test.alias, alias)
	}
}

func BenchmarkStatementCompile(b *testing.B) {
	stmt := Statement{
		Type:      Delete,
		Table:     TableWithName("sessions"),
		Where:     WhereConditions(RawValue("id = ?")),
		Returning: ReturningColumns(ColumnWithName("id")),
	}
	for i := 0; i < b.N; i++ {
		_, _ = stmt.Compile(defaultTemplate)
	}
}
