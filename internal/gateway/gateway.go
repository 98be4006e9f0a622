// Package gateway is the single access path to the storage engine. It exposes
// parametrized query, insert, update, delete and atomic-increment primitives
// over named record collections, classifies driver failures into the domain
// error kinds, and applies a bounded retry to idempotent reads.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/metrics"
)

// Config tunes gateway behavior.
type Config struct {
	// RetryAttempts is the total number of tries for idempotent reads
	// hitting transient failures. 1 disables retrying.
	RetryAttempts int
	// RetryBackoff is the pause before the first retry; it doubles on each
	// subsequent attempt.
	RetryBackoff time.Duration
}

// Gateway executes storage operations against a PostgreSQL pool. It is
// stateless per call and safe for concurrent use.
type Gateway struct {
	pool          *pgxpool.Pool
	retryAttempts int
	retryBackoff  time.Duration
}

// New creates a Gateway over the given pool.
func New(pool *pgxpool.Pool, cfg Config) *Gateway {
	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &Gateway{
		pool:          pool,
		retryAttempts: attempts,
		retryBackoff:  cfg.RetryBackoff,
	}
}

// serverTime marks a value rendered as NOW() in SQL instead of being bound as
// a parameter, so timestamps come from the database clock, not the caller's.
type serverTime struct{}

// Now is the server-side current-time marker for insert/update values.
var Now serverTime

// Options shape a Select or Count. The zero value selects everything.
type Options struct {
	// Filter holds column = value equality conditions.
	Filter map[string]any
	// Search is a case-insensitive substring matched against any of the
	// SearchIn columns.
	Search   string
	SearchIn []string
	// MinBound holds column >= value conditions.
	MinBound map[string]any
	// OrderBy names the sort column; Desc flips the direction.
	OrderBy string
	Desc    bool
	// Limit and Offset paginate; zero means unbounded.
	Limit  int
	Offset int
}

// Select runs a filtered, ordered, paginated read over a collection and
// returns the rows for the caller to scan. Transient failures are retried.
func (g *Gateway) Select(ctx context.Context, coll string, columns []string, q Options) (pgx.Rows, error) {
	c, err := lookupCollection(coll)
	if err != nil {
		return nil, err
	}
	sql, args, err := buildSelect(c, columns, q)
	if err != nil {
		return nil, err
	}

	var rows pgx.Rows
	err = g.withRetry(ctx, coll, "select", func() error {
		var qErr error
		rows, qErr = g.pool.Query(ctx, sql, args...)
		return classifyErr(qErr)
	})
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", coll, err)
	}
	return rows, nil
}

// Insert writes one record and scans the returning columns into dest. The
// collection's creation timestamp columns are set server-side with NOW().
// A uniqueness violation surfaces as domain.ErrConflict. Never retried.
func (g *Gateway) Insert(ctx context.Context, coll string, values map[string]any, returning []string, dest ...any) error {
	c, err := lookupCollection(coll)
	if err != nil {
		return err
	}
	sql, args, err := buildInsert(c, values, returning)
	if err != nil {
		return err
	}

	start := time.Now()
	err = classifyErr(g.pool.QueryRow(ctx, sql, args...).Scan(dest...))
	g.observe(coll, "insert", start, err)
	if err != nil {
		return fmt.Errorf("insert %s: %w", coll, err)
	}
	return nil
}

// UpdateByID applies a partial update to one record and scans the returning
// columns into dest. The collection's updated timestamp column is bumped
// server-side. Zero matching rows surface as domain.ErrNotFound.
func (g *Gateway) UpdateByID(ctx context.Context, coll, id string, patch map[string]any, returning []string, dest ...any) error {
	c, err := lookupCollection(coll)
	if err != nil {
		return err
	}
	sql, args, err := buildUpdate(c, id, patch, returning)
	if err != nil {
		return err
	}

	start := time.Now()
	err = classifyErr(g.pool.QueryRow(ctx, sql, args...).Scan(dest...))
	g.observe(coll, "update", start, err)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", coll, id, err)
	}
	return nil
}

// DeleteByID removes one record. Deleting an absent id is an error, not a
// silent success.
func (g *Gateway) DeleteByID(ctx context.Context, coll, id string) error {
	c, err := lookupCollection(coll)
	if err != nil {
		return err
	}
	if c.readOnly {
		return fmt.Errorf("collection %s is read-only", coll)
	}

	start := time.Now()
	tag, err := g.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = $1", c.table), id)
	err = classifyErr(err)
	if err == nil && tag.RowsAffected() == 0 {
		err = domain.ErrNotFound
	}
	g.observe(coll, "delete", start, err)
	if err != nil {
		return fmt.Errorf("delete %s %s: %w", coll, id, err)
	}
	return nil
}

// Count returns the number of records matching the equality filter.
func (g *Gateway) Count(ctx context.Context, coll string, filter map[string]any) (int64, error) {
	c, err := lookupCollection(coll)
	if err != nil {
		return 0, err
	}
	sql, args, err := buildAggregate(c, "COUNT(*)", filter)
	if err != nil {
		return 0, err
	}

	var n int64
	err = g.withRetry(ctx, coll, "count", func() error {
		return classifyErr(g.pool.QueryRow(ctx, sql, args...).Scan(&n))
	})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", coll, err)
	}
	return n, nil
}

// SumInt returns the sum of an integer column over the matching records,
// zero when no rows match.
func (g *Gateway) SumInt(ctx context.Context, coll, column string, filter map[string]any) (int64, error) {
	c, err := lookupCollection(coll)
	if err != nil {
		return 0, err
	}
	if !c.hasColumn(column) {
		return 0, fmt.Errorf("collection %s has no column %s", coll, column)
	}
	sql, args, err := buildAggregate(c, fmt.Sprintf("COALESCE(SUM(%s), 0)", column), filter)
	if err != nil {
		return 0, err
	}

	var n int64
	err = g.withRetry(ctx, coll, "sum", func() error {
		return classifyErr(g.pool.QueryRow(ctx, sql, args...).Scan(&n))
	})
	if err != nil {
		return 0, fmt.Errorf("sum %s.%s: %w", coll, column, err)
	}
	return n, nil
}

// Increment atomically adds delta to a counter column of one record in a
// single server-side statement and returns the new value. There is
// deliberately no read-then-write variant: concurrent increments through this
// path are never lost.
func (g *Gateway) Increment(ctx context.Context, coll, id, column string, delta int64) (int64, error) {
	c, err := lookupCollection(coll)
	if err != nil {
		return 0, err
	}
	if c.readOnly {
		return 0, fmt.Errorf("collection %s is read-only", coll)
	}
	if !c.hasColumn(column) {
		return 0, fmt.Errorf("collection %s has no column %s", coll, column)
	}

	set := fmt.Sprintf("%s = %s + $1", column, column)
	if c.updatedCol != "" {
		set += fmt.Sprintf(", %s = NOW()", c.updatedCol)
	}
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $2 RETURNING %s", c.table, set, column)

	start := time.Now()
	var n int64
	err = classifyErr(g.pool.QueryRow(ctx, sql, delta, id).Scan(&n))
	g.observe(coll, "increment", start, err)
	if err != nil {
		return 0, fmt.Errorf("increment %s.%s for %s: %w", coll, column, id, err)
	}
	return n, nil
}

// withRetry runs an idempotent read, retrying transient failures with
// doubling backoff. Non-transient errors return immediately.
func (g *Gateway) withRetry(ctx context.Context, coll, op string, fn func() error) error {
	backoff := g.retryBackoff
	var err error
	for attempt := 1; attempt <= g.retryAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			metrics.GatewayRetriesTotal.WithLabelValues(coll, op).Inc()
		}

		start := time.Now()
		err = fn()
		g.observe(coll, op, start, err)
		if err == nil || !errors.Is(err, domain.ErrTransient) {
			return err
		}
	}
	return err
}

func (g *Gateway) observe(coll, op string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	metrics.GatewayOpsTotal.WithLabelValues(coll, op, result).Inc()
	metrics.GatewayOpDuration.WithLabelValues(coll, op).Observe(time.Since(start).Seconds())
}
