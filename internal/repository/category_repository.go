package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/gateway"
	"neuralpulse/internal/validator"
)

var categoryColumns = []string{"id", "name", "slug", "description", "color", "created_at"}

func categoryDest(c *domain.Category) []any {
	return []any{&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color, &c.CreatedAt}
}

// GatewayCategoryRepository implements CategoryRepository on the storage
// gateway.
type GatewayCategoryRepository struct {
	gw        *gateway.Gateway
	validator *validator.Validator
}

// NewGatewayCategoryRepository creates a new GatewayCategoryRepository.
func NewGatewayCategoryRepository(gw *gateway.Gateway, v *validator.Validator) *GatewayCategoryRepository {
	return &GatewayCategoryRepository{gw: gw, validator: v}
}

// List returns all categories ordered by name.
func (r *GatewayCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.gw.Select(ctx, "categories", categoryColumns, gateway.Options{
		OrderBy: "name",
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(categoryDest(&c)...); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	return categories, nil
}

// GetBySlug returns the category with the given slug. Two rows for one slug
// contradict the uniqueness constraint and surface as a consistency error.
func (r *GatewayCategoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	rows, err := r.gw.Select(ctx, "categories", categoryColumns, gateway.Options{
		Filter: map[string]any{"slug": slug},
		Limit:  2,
	})
	if err != nil {
		return nil, fmt.Errorf("get category by slug: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(categoryDest(&c)...); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}

	switch len(categories) {
	case 0:
		return nil, fmt.Errorf("category with slug %q: %w", slug, domain.ErrNotFound)
	case 1:
		return &categories[0], nil
	default:
		return nil, fmt.Errorf("multiple categories with slug %q: %w", slug, domain.ErrConsistency)
	}
}

// Create inserts a new category. Name and slug are required; a duplicate slug
// surfaces as domain.ErrConflict.
func (r *GatewayCategoryRepository) Create(ctx context.Context, input domain.CategoryInput) (*domain.Category, error) {
	if err := r.validator.ValidateCategoryInput(&input); err != nil {
		return nil, fmt.Errorf("validate category: %w", err)
	}

	values := map[string]any{
		"id":          uuid.New().String(),
		"name":        input.Name,
		"slug":        input.Slug,
		"description": input.Description,
	}
	if input.Color != "" {
		values["color"] = input.Color
	}

	var c domain.Category
	if err := r.gw.Insert(ctx, "categories", values, categoryColumns, categoryDest(&c)...); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}
