package domain

import "time"

// Subscriber represents a newsletter subscriber.
type Subscriber struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
	Source         string     `json:"source"`
}

// Subscriber statuses.
const (
	SubscriberActive       = "active"
	SubscriberInactive     = "inactive"
	SubscriberUnsubscribed = "unsubscribed"
)

// DefaultSubscriberSource is used when a signup does not name its origin.
const DefaultSubscriberSource = "website"

// ValidSubscriberStatuses contains all valid subscriber statuses.
var ValidSubscriberStatuses = []string{SubscriberActive, SubscriberInactive, SubscriberUnsubscribed}

// IsValidSubscriberStatus checks if a status is valid.
func IsValidSubscriberStatus(status string) bool {
	for _, s := range ValidSubscriberStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SubscriberFilter narrows a subscriber listing. Zero values mean "no filter".
type SubscriberFilter struct {
	Status string
	Limit  int
	Offset int
}

// SubscriberStats aggregates subscriber counters from two independent counts.
type SubscriberStats struct {
	Total  int64 `json:"total"`
	Active int64 `json:"active"`
}
