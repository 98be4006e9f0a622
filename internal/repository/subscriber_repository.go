package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"neuralpulse/internal/domain"
	"neuralpulse/internal/gateway"
	"neuralpulse/internal/validator"
)

var subscriberColumns = []string{
	"id", "email", "status", "subscribed_at", "unsubscribed_at", "source",
}

func subscriberDest(s *domain.Subscriber) []any {
	return []any{&s.ID, &s.Email, &s.Status, &s.SubscribedAt, &s.UnsubscribedAt, &s.Source}
}

func scanSubscribers(rows pgx.Rows) ([]domain.Subscriber, error) {
	defer rows.Close()

	subscribers := []domain.Subscriber{}
	for rows.Next() {
		var s domain.Subscriber
		if err := rows.Scan(subscriberDest(&s)...); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subscribers = append(subscribers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read subscribers: %w", err)
	}
	return subscribers, nil
}

// GatewaySubscriberRepository implements SubscriberRepository on the storage
// gateway.
type GatewaySubscriberRepository struct {
	gw        *gateway.Gateway
	validator *validator.Validator
}

// NewGatewaySubscriberRepository creates a new GatewaySubscriberRepository.
func NewGatewaySubscriberRepository(gw *gateway.Gateway, v *validator.Validator) *GatewaySubscriberRepository {
	return &GatewaySubscriberRepository{gw: gw, validator: v}
}

// List returns subscribers ordered by signup time, newest first.
func (r *GatewaySubscriberRepository) List(ctx context.Context, filter domain.SubscriberFilter) ([]domain.Subscriber, error) {
	opts := gateway.Options{
		OrderBy: "subscribed_at",
		Desc:    true,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}
	if filter.Status != "" {
		opts.Filter = map[string]any{"status": filter.Status}
	}
	if filter.Offset > 0 && filter.Limit <= 0 {
		opts.Limit = defaultPageSize
	}

	rows, err := r.gw.Select(ctx, "subscribers", subscriberColumns, opts)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return scanSubscribers(rows)
}

// Create signs up a new subscriber as active. A duplicate email surfaces as
// domain.ErrConflict, distinguishable from any other failure.
func (r *GatewaySubscriberRepository) Create(ctx context.Context, email, source string) (*domain.Subscriber, error) {
	if err := r.validator.ValidateSubscriberEmail(email); err != nil {
		return nil, fmt.Errorf("validate subscriber email: %w", err)
	}
	if source == "" {
		source = domain.DefaultSubscriberSource
	}

	values := map[string]any{
		"id":     uuid.New().String(),
		"email":  email,
		"status": domain.SubscriberActive,
		"source": source,
	}

	var s domain.Subscriber
	if err := r.gw.Insert(ctx, "subscribers", values, subscriberColumns, subscriberDest(&s)...); err != nil {
		return nil, fmt.Errorf("create subscriber: %w", err)
	}
	return &s, nil
}

// UpdateStatus transitions a subscriber. Moving to unsubscribed stamps
// unsubscribed_at with the database clock; moving anywhere else clears it, so
// the timestamp is present exactly when the status is unsubscribed.
func (r *GatewaySubscriberRepository) UpdateStatus(ctx context.Context, id, status string) (*domain.Subscriber, error) {
	if err := r.validator.ValidateSubscriberStatus(status); err != nil {
		return nil, fmt.Errorf("validate subscriber status: %w", err)
	}

	patch := map[string]any{"status": status}
	if status == domain.SubscriberUnsubscribed {
		patch["unsubscribed_at"] = gateway.Now
	} else {
		patch["unsubscribed_at"] = nil
	}

	var s domain.Subscriber
	if err := r.gw.UpdateByID(ctx, "subscribers", id, patch, subscriberColumns, subscriberDest(&s)...); err != nil {
		return nil, fmt.Errorf("update subscriber status: %w", err)
	}
	return &s, nil
}

// Delete removes a subscriber. Deleting an absent id is an error.
func (r *GatewaySubscriberRepository) Delete(ctx context.Context, id string) error {
	if err := r.gw.DeleteByID(ctx, "subscribers", id); err != nil {
		return fmt.Errorf("delete subscriber: %w", err)
	}
	return nil
}

// Stats computes subscriber counters from two independent counts; the pair is
// a best-effort snapshot, not a transaction.
func (r *GatewaySubscriberRepository) Stats(ctx context.Context) (*domain.SubscriberStats, error) {
	total, err := r.gw.Count(ctx, "subscribers", nil)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}
	active, err := r.gw.Count(ctx, "subscribers", map[string]any{"status": domain.SubscriberActive})
	if err != nil {
		return nil, fmt.Errorf("count active subscribers: %w", err)
	}

	return &domain.SubscriberStats{Total: total, Active: active}, nil
}
