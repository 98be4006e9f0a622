package validator

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"neuralpulse/internal/domain"
)

var (
	slugRegex          = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	articleStatuses    = []interface{}{domain.StatusDraft, domain.StatusPublished, domain.StatusArchived}
	subscriberStatuses = []interface{}{domain.SubscriberActive, domain.SubscriberInactive, domain.SubscriberUnsubscribed}
)

// Validator provides validation methods for inbound entity data.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateArticleInput validates the fields for creating an article.
// Title and content are the only required fields; everything else is checked
// only when present.
func (v *Validator) ValidateArticleInput(in *domain.ArticleInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&in.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&in.Slug,
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
		validation.Field(&in.Status,
			validation.In(articleStatuses...).Error("invalid_status"),
		),
	)
}

// ValidateArticleUpdate validates a partial article update. Only fields the
// caller set are checked; a field that is set must not be empty when the
// entity requires it. An update setting nothing at all is rejected.
func (v *Validator) ValidateArticleUpdate(u *domain.ArticleUpdate) error {
	if u.IsEmpty() {
		return validation.Errors{
			"update": validation.NewError("no_fields", "update must set at least one field"),
		}
	}

	errs := validation.Errors{}

	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		errs["title"] = validation.NewError("title_empty", "title must not be empty")
	}
	if u.Content != nil && strings.TrimSpace(*u.Content) == "" {
		errs["content"] = validation.NewError("content_empty", "content must not be empty")
	}
	if u.Slug != nil && !slugRegex.MatchString(*u.Slug) {
		errs["slug"] = validation.NewError("invalid_slug_format", "slug must be lowercase words separated by hyphens")
	}
	if u.Status != nil && !domain.IsValidArticleStatus(*u.Status) {
		errs["status"] = validation.NewError("invalid_status", "status must be one of: draft, published, archived")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateSubscriberEmail checks a signup email: present and containing "@".
func (v *Validator) ValidateSubscriberEmail(email string) error {
	return validation.Validate(email,
		validation.Required.Error("email_required"),
		validation.By(containsAtRule),
	)
}

// ValidateSubscriberStatus checks a status transition target.
func (v *Validator) ValidateSubscriberStatus(status string) error {
	return validation.Validate(status,
		validation.Required.Error("status_required"),
		validation.In(subscriberStatuses...).Error("invalid_status"),
	)
}

// ValidateCategoryInput validates the fields for creating a category.
func (v *Validator) ValidateCategoryInput(in *domain.CategoryInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name,
			validation.Required.Error("name_required"),
		),
		validation.Field(&in.Slug,
			validation.Required.Error("slug_required"),
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
	)
}

// containsAtRule is the deliberately loose address check the signup form
// relies on: anything containing an "@" passes. Stricter parsing is left to
// the mail provider at delivery time.
func containsAtRule(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return nil
	}
	if !strings.Contains(s, "@") {
		return validation.NewError("invalid_email", "valid email is required")
	}
	return nil
}

// IsValidationError reports whether err carries validation failures, so the
// HTTP layer can answer 400 instead of 500.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	var verr validation.Error
	return errors.As(err, &verr)
}
