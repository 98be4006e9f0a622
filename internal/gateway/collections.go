package gateway

import (
	"fmt"
	"sort"
	"strings"
)

// collection describes one named record collection: its backing table, the
// columns callers may reference, and which timestamp columns the gateway
// stamps server-side.
type collection struct {
	table      string
	columns    []string
	createdCol string // set to NOW() on insert
	updatedCol string // set to NOW() on insert, update and increment
	readOnly   bool   // SQL views accept no writes
}

func (c collection) hasColumn(name string) bool {
	for _, col := range c.columns {
		if col == name {
			return true
		}
	}
	return false
}

var collections = map[string]collection{
	"articles": {
		table: "articles",
		columns: []string{
			"id", "title", "slug", "description", "content", "category",
			"tags", "featured_image", "meta_title", "meta_description",
			"status", "views", "author_id", "created_at", "updated_at",
		},
		createdCol: "created_at",
		updatedCol: "updated_at",
	},
	"subscribers": {
		table: "subscribers",
		columns: []string{
			"id", "email", "status", "subscribed_at", "unsubscribed_at", "source",
		},
		createdCol: "subscribed_at",
	},
	"categories": {
		table: "categories",
		columns: []string{
			"id", "name", "slug", "description", "color", "created_at",
		},
		createdCol: "created_at",
	},
	"article_views": {
		table: "article_views",
		columns: []string{
			"id", "article_id", "ip_address", "user_agent", "viewed_at",
		},
		createdCol: "viewed_at",
	},
	// Read-only join of article_views onto articles, defined in migrations.
	"recent_article_views": {
		table:    "recent_article_views",
		columns:  []string{"viewed_at", "article_title", "article_slug"},
		readOnly: true,
	},
}

func lookupCollection(name string) (collection, error) {
	c, ok := collections[name]
	if !ok {
		return collection{}, fmt.Errorf("unknown collection %q", name)
	}
	return c, nil
}

func (c collection) checkColumns(names []string) error {
	for _, name := range names {
		if !c.hasColumn(name) {
			return fmt.Errorf("collection %s has no column %s", c.table, name)
		}
	}
	return nil
}

// sortedKeys gives map-driven SQL a deterministic shape.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// buildSelect assembles a SELECT over the collection.
func buildSelect(c collection, columns []string, q Options) (string, []any, error) {
	if err := c.checkColumns(columns); err != nil {
		return "", nil, err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", strings.Join(columns, ", "), c.table)

	where, args, err := buildWhere(c, q, nil)
	if err != nil {
		return "", nil, err
	}
	sb.WriteString(where)

	if q.OrderBy != "" {
		if !c.hasColumn(q.OrderBy) {
			return "", nil, fmt.Errorf("collection %s has no column %s", c.table, q.OrderBy)
		}
		fmt.Fprintf(&sb, " ORDER BY %s", q.OrderBy)
		if q.Desc {
			sb.WriteString(" DESC")
		}
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}

	return sb.String(), args, nil
}

// buildWhere renders filter, search and min-bound conditions, appending bind
// arguments to args.
func buildWhere(c collection, q Options, args []any) (string, []any, error) {
	var conds []string

	for _, col := range sortedKeys(q.Filter) {
		if !c.hasColumn(col) {
			return "", nil, fmt.Errorf("collection %s has no column %s", c.table, col)
		}
		args = append(args, q.Filter[col])
		conds = append(conds, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	for _, col := range sortedKeys(q.MinBound) {
		if !c.hasColumn(col) {
			return "", nil, fmt.Errorf("collection %s has no column %s", c.table, col)
		}
		args = append(args, q.MinBound[col])
		conds = append(conds, fmt.Sprintf("%s >= $%d", col, len(args)))
	}

	if q.Search != "" && len(q.SearchIn) > 0 {
		if err := c.checkColumns(q.SearchIn); err != nil {
			return "", nil, err
		}
		args = append(args, "%"+escapeLike(q.Search)+"%")
		var likes []string
		for _, col := range q.SearchIn {
			likes = append(likes, fmt.Sprintf("%s ILIKE $%d", col, len(args)))
		}
		conds = append(conds, "("+strings.Join(likes, " OR ")+")")
	}

	if len(conds) == 0 {
		return "", args, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// escapeLike neutralizes LIKE metacharacters in a user-supplied search term.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// buildInsert assembles an INSERT ... RETURNING. Creation timestamp columns
// default to NOW() unless the caller set them explicitly.
func buildInsert(c collection, values map[string]any, returning []string) (string, []any, error) {
	if c.readOnly {
		return "", nil, fmt.Errorf("collection %s is read-only", c.table)
	}
	if len(values) == 0 {
		return "", nil, fmt.Errorf("insert into %s with no values", c.table)
	}
	if err := c.checkColumns(returning); err != nil {
		return "", nil, err
	}

	cols := sortedKeys(values)
	if _, ok := values[c.createdCol]; c.createdCol != "" && !ok {
		cols = append(cols, c.createdCol)
	}
	if _, ok := values[c.updatedCol]; c.updatedCol != "" && !ok {
		cols = append(cols, c.updatedCol)
	}

	var args []any
	var placeholders []string
	for _, col := range cols {
		if !c.hasColumn(col) {
			return "", nil, fmt.Errorf("collection %s has no column %s", c.table, col)
		}
		v, ok := values[col]
		if !ok || isServerTime(v) {
			placeholders = append(placeholders, "NOW()")
			continue
		}
		args = append(args, v)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		c.table, strings.Join(cols, ", "), strings.Join(placeholders, ", "),
		strings.Join(returning, ", "))
	return sql, args, nil
}

// buildUpdate assembles an UPDATE ... WHERE id = ... RETURNING, bumping the
// collection's updated timestamp column server-side.
func buildUpdate(c collection, id string, patch map[string]any, returning []string) (string, []any, error) {
	if c.readOnly {
		return "", nil, fmt.Errorf("collection %s is read-only", c.table)
	}
	if len(patch) == 0 {
		return "", nil, fmt.Errorf("update %s with no fields", c.table)
	}
	if err := c.checkColumns(returning); err != nil {
		return "", nil, err
	}

	var args []any
	var sets []string
	for _, col := range sortedKeys(patch) {
		if !c.hasColumn(col) {
			return "", nil, fmt.Errorf("collection %s has no column %s", c.table, col)
		}
		if col == c.updatedCol {
			continue
		}
		if isServerTime(patch[col]) {
			sets = append(sets, fmt.Sprintf("%s = NOW()", col))
			continue
		}
		args = append(args, patch[col])
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if c.updatedCol != "" {
		sets = append(sets, fmt.Sprintf("%s = NOW()", c.updatedCol))
	}

	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
		c.table, strings.Join(sets, ", "), len(args), strings.Join(returning, ", "))
	return sql, args, nil
}

// buildAggregate assembles a single-value aggregate over the filter.
func buildAggregate(c collection, expr string, filter map[string]any) (string, []any, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", expr, c.table)

	where, args, err := buildWhere(c, Options{Filter: filter}, nil)
	if err != nil {
		return "", nil, err
	}
	sb.WriteString(where)
	return sb.String(), args, nil
}

func isServerTime(v any) bool {
	_, ok := v.(serverTime)
	return ok
}
