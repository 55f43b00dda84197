package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// Query builders used by [sqlRepository]. Each returns the SQL text and its
// arguments formatted for the builder's placeholder style.

func buildInsertQuery[T any](b sq.StatementBuilderType, m *tableMapper[T], entity T) (string, []any, error) {
	query, args, err := b.Insert(m.table).
		Columns(m.columns...).
		Values(m.values(entity)...).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectQuery[T any](b sq.StatementBuilderType, m *tableMapper[T], where sq.Sqlizer, limit uint64, forUpdate bool) (string, []any, error) {
	q := b.Select(m.columns...).
		From(m.table).
		OrderBy("created_at", "id")
	if where != nil {
		q = q.Where(where)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpdateQuery sets every column but id and created_at.
func buildUpdateQuery[T any](b sq.StatementBuilderType, m *tableMapper[T], id string, entity T) (string, []any, error) {
	values := m.values(entity)
	set := make(map[string]any, len(m.columns))
	for i, column := range m.columns {
		if column == "id" || column == "created_at" {
			continue
		}
		set[column] = values[i]
	}

	query, args, err := b.Update(m.table).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(b sq.StatementBuilderType, table, column string, value any) (string, []any, error) {
	query, args, err := b.Delete(table).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectRelationQuery loads the related ids of every owner in one query.
func buildSelectRelationQuery(b sq.StatementBuilderType, rel relationMapper, ownerIDs []string) (string, []any, error) {
	query, args, err := b.Select(rel.ownerColumn, rel.valueColumn).
		From(rel.table).
		Where(sq.Eq{rel.ownerColumn: ownerIDs}).
		OrderBy(rel.ownerColumn, "position").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertRelationQuery(b sq.StatementBuilderType, rel relationMapper, ownerID string, values []string) (string, []any, error) {
	q := b.Insert(rel.table).Columns(rel.ownerColumn, rel.valueColumn, "position")
	for position, value := range values {
		q = q.Values(ownerID, value, position)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
