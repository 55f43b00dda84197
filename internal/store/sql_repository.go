package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/hbnb/hbnb-server/internal/logger"
)

// sqlRepository is the relational implementation of [Repository], generic
// over a [tableMapper] that knows the table layout of T.
//
// Writes that touch more than one statement (row plus join table rows) run in
// a single transaction. Update reads the current row inside that transaction,
// locking it on PostgreSQL, so the patch is applied to fresh state.
type sqlRepository[T Entity[T]] struct {
	db     *DB
	mapper *tableMapper[T]
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

func newSQLRepository[T Entity[T]](db *DB, mapper *tableMapper[T], ids IDGenerator, log *logger.Logger) Repository[T] {
	log.Debug().Str("table", mapper.table).Msg("creating sql repository")
	return &sqlRepository[T]{
		db:     db,
		mapper: mapper,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		logger: log,
	}
}

func (r *sqlRepository[T]) Add(ctx context.Context, entity T) (T, error) {
	log := r.logger.Ctx(ctx)
	var zero T

	stored := entity.Clone()
	if stored.GetID() == "" {
		stored.SetID(r.ids.Generate())
	}
	stored.Stamp(r.now())

	query, args, err := buildInsertQuery(r.db.builder, r.mapper, stored)
	if err != nil {
		return zero, err
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.db.translate(err)
		}
		return r.saveRelations(ctx, tx, stored, false)
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.Add").Str("table", r.mapper.table).Msg("error inserting entity")
		return zero, err
	}

	return stored, nil
}

func (r *sqlRepository[T]) Get(ctx context.Context, id string) (T, error) {
	return r.selectOne(ctx, r.db, sq.Eq{"id": id}, false)
}

func (r *sqlRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.selectMany(ctx, r.db, nil)
}

func (r *sqlRepository[T]) Update(ctx context.Context, id string, patch Patch[T]) (T, error) {
	log := r.logger.Ctx(ctx)
	var updated T

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		current, err := r.selectOne(ctx, tx, sq.Eq{"id": id}, r.db.dialect == DialectPostgres)
		if err != nil {
			return err
		}

		next := current.Clone()
		if err = patch.Apply(next); err != nil {
			return err
		}
		next.SetID(id)
		next.Stamp(r.now())

		query, args, err := buildUpdateQuery(r.db.builder, r.mapper, id, next)
		if err != nil {
			return err
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.db.translate(err)
		}
		if err = r.saveRelations(ctx, tx, next, true); err != nil {
			return err
		}

		updated = next
		return nil
	})
	if err != nil {
		var zero T
		if !errors.Is(err, ErrNotFound) {
			log.Err(err).Str("func", "*sqlRepository.Update").Str("table", r.mapper.table).Str("id", id).Msg("error updating entity")
		}
		return zero, err
	}

	return updated, nil
}

func (r *sqlRepository[T]) Delete(ctx context.Context, id string) (bool, error) {
	log := r.logger.Ctx(ctx)
	var deleted bool

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		for _, rel := range r.mapper.relations {
			if err := r.exec(ctx, tx, buildDeleteQueryFn(r.db.builder, rel.table, rel.ownerColumn, id)); err != nil {
				return err
			}
		}

		query, args, err := buildDeleteQuery(r.db.builder, r.mapper.table, "id", id)
		if err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return r.db.translate(err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		deleted = affected > 0
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.Delete").Str("table", r.mapper.table).Str("id", id).Msg("error deleting entity")
		return false, err
	}

	return deleted, nil
}

func (r *sqlRepository[T]) GetByAttribute(ctx context.Context, name string, value any) (T, error) {
	if !r.mapper.hasColumn(name) {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}
	return r.selectOne(ctx, r.db, sq.Eq{name: value}, false)
}

func (r *sqlRepository[T]) ListByAttribute(ctx context.Context, name string, value any) ([]T, error) {
	if !r.mapper.hasColumn(name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, name)
	}
	return r.selectMany(ctx, r.db, sq.Eq{name: value})
}

func (r *sqlRepository[T]) selectOne(ctx context.Context, q querier, where sq.Sqlizer, forUpdate bool) (T, error) {
	var zero T

	query, args, err := buildSelectQuery(r.db.builder, r.mapper, where, 1, forUpdate)
	if err != nil {
		return zero, err
	}

	entity := r.mapper.newEntity()
	if err = q.QueryRowContext(ctx, query, args...).Scan(r.mapper.targets(entity)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, ErrNotFound
		}
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = r.loadRelations(ctx, q, []T{entity}); err != nil {
		return zero, err
	}

	return entity, nil
}

func (r *sqlRepository[T]) selectMany(ctx context.Context, q querier, where sq.Sqlizer) ([]T, error) {
	query, args, err := buildSelectQuery(r.db.builder, r.mapper, where, 0, false)
	if err != nil {
		return nil, err
	}

	entities, err := r.scanEntities(ctx, q, query, args)
	if err != nil {
		return nil, err
	}

	// rows are closed by now; a single-connection pool can serve the next query
	if err = r.loadRelations(ctx, q, entities); err != nil {
		return nil, err
	}

	return entities, nil
}

func (r *sqlRepository[T]) scanEntities(ctx context.Context, q querier, query string, args []any) ([]T, error) {
	log := r.logger.Ctx(ctx)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRepository.scanEntities").Str("table", r.mapper.table).Msg("error querying entities")
		return nil, r.db.translate(err)
	}
	defer rows.Close()

	entities := make([]T, 0)
	for rows.Next() {
		entity := r.mapper.newEntity()
		if err = rows.Scan(r.mapper.targets(entity)...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entities = append(entities, entity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entities, nil
}

// loadRelations fills every relation of entities with one query per relation.
func (r *sqlRepository[T]) loadRelations(ctx context.Context, q querier, entities []T) error {
	if len(r.mapper.relations) == 0 || len(entities) == 0 {
		return nil
	}

	ownerIDs := make([]string, len(entities))
	for i, entity := range entities {
		ownerIDs[i] = entity.GetID()
	}

	for _, rel := range r.mapper.relations {
		query, args, err := buildSelectRelationQuery(r.db.builder, rel.relationMapper, ownerIDs)
		if err != nil {
			return err
		}

		related, err := r.scanRelation(ctx, q, query, args)
		if err != nil {
			return err
		}

		for _, entity := range entities {
			ids := related[entity.GetID()]
			if ids == nil {
				ids = []string{}
			}
			rel.set(entity, ids)
		}
	}

	return nil
}

func (r *sqlRepository[T]) scanRelation(ctx context.Context, q querier, query string, args []any) (map[string][]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.translate(err)
	}
	defer rows.Close()

	related := make(map[string][]string)
	for rows.Next() {
		var owner, value string
		if err = rows.Scan(&owner, &value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		related[owner] = append(related[owner], value)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return related, nil
}

// saveRelations writes the join table rows of entity. With replace set the
// existing rows are removed first.
func (r *sqlRepository[T]) saveRelations(ctx context.Context, tx *sql.Tx, entity T, replace bool) error {
	for _, rel := range r.mapper.relations {
		if replace {
			if err := r.exec(ctx, tx, buildDeleteQueryFn(r.db.builder, rel.table, rel.ownerColumn, entity.GetID())); err != nil {
				return err
			}
		}

		values := rel.get(entity)
		if len(values) == 0 {
			continue
		}
		if err := r.exec(ctx, tx, func() (string, []any, error) {
			return buildInsertRelationQuery(r.db.builder, rel.relationMapper, entity.GetID(), values)
		}); err != nil {
			return err
		}
	}

	return nil
}

func (r *sqlRepository[T]) exec(ctx context.Context, q querier, build func() (string, []any, error)) error {
	query, args, err := build()
	if err != nil {
		return err
	}
	if _, err = q.ExecContext(ctx, query, args...); err != nil {
		return r.db.translate(err)
	}
	return nil
}

func buildDeleteQueryFn(b sq.StatementBuilderType, table, column string, value any) func() (string, []any, error) {
	return func() (string, []any, error) {
		return buildDeleteQuery(b, table, column, value)
	}
}
