package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/research-registry/internal/domain"
)

// Repository provides CRUD and query operations for one entity type.
// Immediate operations run against the pool, or the transaction carried
// by ctx. Prepare* operations are staged in the shared Session and only
// reach the store on Save.
type Repository[T any, K comparable] struct {
	pool    *pgxpool.Pool
	session *Session
	table   Table[T, K]
	sb      sq.StatementBuilderType
}

// NewRepository panics when table is malformed, since that is a
// programming error caught on the first run.
func NewRepository[T any, K comparable](pool *pgxpool.Pool, session *Session, table Table[T, K]) *Repository[T, K] {
	if err := table.check(); err != nil {
		panic(err)
	}
	if session == nil {
		session = NewSession(NewTxManager(pool))
	}
	return &Repository[T, K]{
		pool:    pool,
		session: session,
		table:   table,
		sb:      sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Session returns the unit of work this repository stages into.
func (r *Repository[T, K]) Session() *Session {
	return r.session
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetAll returns every entity. The result is empty, never nil.
func (r *Repository[T, K]) GetAll(ctx context.Context) ([]T, error) {
	return r.list(ctx, nil, nil, nil)
}

// GetAllInclude returns every entity with the named relations loaded.
func (r *Repository[T, K]) GetAllInclude(ctx context.Context, rels ...domain.Relation) ([]T, error) {
	return r.list(ctx, nil, nil, rels)
}

// GetAllIncludeOrderBy returns every entity ordered by one field.
// Rows with equal sort values come back in key order.
func (r *Repository[T, K]) GetAllIncludeOrderBy(ctx context.Context, order domain.Order, rels ...domain.Relation) ([]T, error) {
	return r.list(ctx, nil, &order, rels)
}

// Search returns the entities matching pred.
func (r *Repository[T, K]) Search(ctx context.Context, pred sq.Sqlizer) ([]T, error) {
	return r.list(ctx, pred, nil, nil)
}

// SearchInclude returns the entities matching pred with relations loaded.
func (r *Repository[T, K]) SearchInclude(ctx context.Context, pred sq.Sqlizer, rels ...domain.Relation) ([]T, error) {
	return r.list(ctx, pred, nil, rels)
}

// SearchIncludeOrderBy filters, loads relations and orders in one query.
func (r *Repository[T, K]) SearchIncludeOrderBy(ctx context.Context, pred sq.Sqlizer, order domain.Order, rels ...domain.Relation) ([]T, error) {
	return r.list(ctx, pred, &order, rels)
}

// GetByID returns the entity with the given key. A nil id and a missing
// row both yield (nil, nil); a nil id never reaches the store.
func (r *Repository[T, K]) GetByID(ctx context.Context, id *K) (*T, error) {
	if id == nil {
		return nil, nil
	}
	return r.one(ctx, sq.Eq{r.table.qualify(r.table.Key): *id}, nil)
}

// GetByIDInclude is GetByID with relations loaded.
func (r *Repository[T, K]) GetByIDInclude(ctx context.Context, id K, rels ...domain.Relation) (*T, error) {
	return r.one(ctx, sq.Eq{r.table.qualify(r.table.Key): id}, rels)
}

// Exists reports whether a row with the given key is stored.
func (r *Repository[T, K]) Exists(ctx context.Context, id K) (bool, error) {
	query, args, err := r.sb.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(r.table.Name).
		Where(sq.Eq{r.table.Key: id}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%s: build exists: %w", r.table.Name, err)
	}

	var exists bool
	if err := QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, mapError(err, r.table.Name, id)
	}
	return exists, nil
}

// GetSet returns an open select over the table's own columns. Callers may
// add Where, OrderBy, Limit and Offset clauses but must keep the column
// list, then run the builder with Query or First.
func (r *Repository[T, K]) GetSet() sq.SelectBuilder {
	return r.sb.Select(r.table.selectColumns()...).From(r.table.Name)
}

// Query runs a builder obtained from GetSet.
func (r *Repository[T, K]) Query(ctx context.Context, b sq.SelectBuilder) ([]T, error) {
	return r.scan(ctx, b, nil)
}

// First runs a builder obtained from GetSet and returns its first row,
// or nil when there is none.
func (r *Repository[T, K]) First(ctx context.Context, b sq.SelectBuilder) (*T, error) {
	items, err := r.scan(ctx, b.Limit(1), nil)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

func (r *Repository[T, K]) one(ctx context.Context, pred sq.Sqlizer, rels []domain.Relation) (*T, error) {
	b, joins, err := r.selectWith(rels)
	if err != nil {
		return nil, err
	}
	items, err := r.scan(ctx, b.Where(pred).Limit(1), joins)
	if err != nil || len(items) == 0 {
		return nil, err
	}
	return &items[0], nil
}

func (r *Repository[T, K]) list(ctx context.Context, pred sq.Sqlizer, order *domain.Order, rels []domain.Relation) ([]T, error) {
	b, joins, err := r.selectWith(rels)
	if err != nil {
		return nil, err
	}
	if pred != nil {
		b = b.Where(pred)
	}
	if order != nil {
		if b, err = r.orderBy(b, *order); err != nil {
			return nil, err
		}
	}
	return r.scan(ctx, b, joins)
}

// selectWith builds the base select and LEFT JOINs each requested relation
// once, in the order given.
func (r *Repository[T, K]) selectWith(rels []domain.Relation) (sq.SelectBuilder, []Join[T], error) {
	b := r.GetSet()
	joins := make([]Join[T], 0, len(rels))
	seen := make(map[domain.Relation]bool, len(rels))
	for _, rel := range rels {
		if seen[rel] {
			continue
		}
		seen[rel] = true

		j, err := r.table.join(rel)
		if err != nil {
			return b, nil, err
		}
		for _, c := range j.Columns {
			b = b.Column(j.Table + "." + c)
		}
		b = b.LeftJoin(j.Table + " ON " + j.On)
		joins = append(joins, j)
	}
	return b, joins, nil
}

func (r *Repository[T, K]) orderBy(b sq.SelectBuilder, o domain.Order) (sq.SelectBuilder, error) {
	col, err := r.table.orderColumn(o)
	if err != nil {
		return b, err
	}
	dir := " DESC"
	if o.Ascending {
		dir = " ASC"
	}
	b = b.OrderBy(col + dir)
	if o.Field != r.table.Key {
		b = b.OrderBy(r.table.qualify(r.table.Key) + " ASC")
	}
	return b, nil
}

func (r *Repository[T, K]) scan(ctx context.Context, b sq.SelectBuilder, joins []Join[T]) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build select: %w", r.table.Name, err)
	}

	rows, err := QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, r.table.Name, nil)
	}
	defer rows.Close()

	result := []T{}
	attach := make([]func(), len(joins))
	for rows.Next() {
		var e T
		dest := r.table.Fields(&e)
		for i, j := range joins {
			var jd []any
			jd, attach[i] = j.Bind(&e)
			dest = append(dest, jd...)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", r.table.Name, err)
		}
		for _, fn := range attach {
			fn()
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, r.table.Name, nil)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Immediate writes
// ---------------------------------------------------------------------------

// Create inserts e and returns the number of rows written.
// A duplicate key maps to domain.ErrAlreadyExists.
func (r *Repository[T, K]) Create(ctx context.Context, e *T) (int64, error) {
	b := r.sb.Insert(r.table.Name).
		Columns(r.table.Columns...).
		Values(r.table.Values(e)...)
	return r.exec(ctx, b, r.table.KeyOf(e))
}

// Update overwrites every non-key column of the row keyed by e.
// It returns domain.ErrNotFound when no such row exists.
func (r *Repository[T, K]) Update(ctx context.Context, e *T) (int64, error) {
	key := r.table.KeyOf(e)
	vals := r.table.Values(e)

	b := r.sb.Update(r.table.Name)
	for i, c := range r.table.Columns {
		if c == r.table.Key {
			continue
		}
		b = b.Set(c, vals[i])
	}
	b = b.Where(sq.Eq{r.table.Key: key})

	n, err := r.exec(ctx, b, key)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, fmt.Errorf("%s %v: %w", r.table.Name, key, domain.ErrNotFound)
	}
	return n, nil
}

// Remove deletes the row keyed by e. It returns domain.ErrNotFound when
// no such row exists.
func (r *Repository[T, K]) Remove(ctx context.Context, e *T) error {
	key := r.table.KeyOf(e)
	b := r.sb.Delete(r.table.Name).Where(sq.Eq{r.table.Key: key})

	n, err := r.exec(ctx, b, key)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %v: %w", r.table.Name, key, domain.ErrNotFound)
	}
	return nil
}

func (r *Repository[T, K]) exec(ctx context.Context, b sq.Sqlizer, key K) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s %v: build statement: %w", r.table.Name, key, err)
	}
	tag, err := QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, mapError(err, r.table.Name, key)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Staged writes
// ---------------------------------------------------------------------------

// PrepareCreate stages an insert of e. The entity is copied, so later
// changes to e are not picked up by Save.
func (r *Repository[T, K]) PrepareCreate(e *T) {
	snapshot := *e
	r.session.Stage(func(ctx context.Context) (int64, error) {
		return r.Create(ctx, &snapshot)
	})
}

// PrepareUpdate stages an update of e.
func (r *Repository[T, K]) PrepareUpdate(e *T) {
	snapshot := *e
	r.session.Stage(func(ctx context.Context) (int64, error) {
		return r.Update(ctx, &snapshot)
	})
}

// PrepareRemove stages a delete of e.
func (r *Repository[T, K]) PrepareRemove(e *T) {
	snapshot := *e
	r.session.Stage(func(ctx context.Context) (int64, error) {
		if err := r.Remove(ctx, &snapshot); err != nil {
			return 0, err
		}
		return 1, nil
	})
}

// Save commits every operation staged in the session, including those
// staged through sibling repositories sharing it.
func (r *Repository[T, K]) Save(ctx context.Context) (int64, error) {
	return r.session.Save(ctx)
}
