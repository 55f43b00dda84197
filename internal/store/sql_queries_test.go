// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/hbnb/hbnb-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildSelectQuery(t *testing.T) {
	query, args, err := buildSelectQuery(dollar, userMapper(), sq.Eq{"email": "a@b.io"}, 1, true)
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, first_name, last_name, email, password_hash, is_admin, created_at, updated_at FROM users WHERE email = $1 ORDER BY created_at, id LIMIT 1 FOR UPDATE",
		query)
	assert.Equal(t, []any{"a@b.io"}, args)
}

func Test_buildSelectQuery_AllRows(t *testing.T) {
	query, args, err := buildSelectQuery(question, amenityMapper(), nil, 0, false)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, created_at, updated_at FROM amenities ORDER BY created_at, id", query)
	assert.Empty(t, args)
}

func Test_buildInsertQuery(t *testing.T) {
	review := &models.Review{Base: models.Base{ID: "r1"}, Text: "Great", Rating: 5, UserID: "u1", PlaceID: "p1"}

	query, args, err := buildInsertQuery(question, reviewMapper(), review)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO reviews (id,text,rating,user_id,place_id,created_at,updated_at) VALUES (?,?,?,?,?,?,?)", query)
	require.Len(t, args, 7)
	assert.Equal(t, "r1", args[0])
	assert.Equal(t, 5, args[2])
}

func Test_buildUpdateQuery_SkipsImmutableColumns(t *testing.T) {
	user := &models.User{Base: models.Base{ID: "u1"}, FirstName: "Ada", Email: "a@b.io"}

	query, args, err := buildUpdateQuery(dollar, userMapper(), "u1", user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "update users set "))
	assert.NotContains(t, q, "created_at")
	assert.NotContains(t, q, "set id")
	assert.Contains(t, q, "updated_at = $")
	assert.Contains(t, q, "where id = $7")
	assert.Len(t, args, 7)
	assert.Equal(t, "u1", args[6])
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery(dollar, "place_reviews", "review_id", "r1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM place_reviews WHERE review_id = $1", query)
	assert.Equal(t, []any{"r1"}, args)
}

func Test_buildRelationQueries(t *testing.T) {
	rel := relationMapper{table: "place_amenities", ownerColumn: "place_id", valueColumn: "amenity_id"}

	query, args, err := buildSelectRelationQuery(dollar, rel, []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT place_id, amenity_id FROM place_amenities WHERE place_id IN ($1,$2) ORDER BY place_id, position", query)
	assert.Equal(t, []any{"p1", "p2"}, args)

	query, args, err = buildInsertRelationQuery(question, rel, "p1", []string{"a1", "a2"})
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO place_amenities (place_id,amenity_id,position) VALUES (?,?,?),(?,?,?)", query)
	assert.Equal(t, []any{"p1", "a1", 0, "p1", "a2", 1}, args)
}
