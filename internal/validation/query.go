package validation

import (
	"strconv"
	"strings"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// QueryValues are the raw listing parameters as they arrive on the URL.
type QueryValues struct {
	Email string
	Phone string
	Page  string
	Limit string
}

// QueryParams are the validated listing parameters. Email is lower-cased;
// page and limit carry their defaults when absent.
type QueryParams struct {
	Email string
	Phone string
	Page  int64
	Limit int64
}

// ParseQuery validates the optional listing parameters. Every field is
// optional here; the email-or-phone requirement is a handler-level check.
func ParseQuery(raw QueryValues) (QueryParams, []FieldError) {
	params := QueryParams{Page: defaultPage, Limit: defaultLimit}
	var errs []FieldError

	if email := strings.ToLower(strings.TrimSpace(raw.Email)); email != "" {
		if err := validate.Var(email, "email"); err != nil {
			errs = append(errs, FieldError{Field: "email", Message: "Please enter a valid email"})
		} else {
			params.Email = email
		}
	}

	if phone := strings.TrimSpace(raw.Phone); phone != "" {
		if !phonePattern.MatchString(phone) {
			errs = append(errs, FieldError{Field: "phone", Message: "Please enter a valid phone number"})
		} else {
			params.Phone = phone
		}
	}

	if raw.Page != "" {
		page, err := strconv.ParseInt(strings.TrimSpace(raw.Page), 10, 64)
		if err != nil || page < 1 {
			errs = append(errs, FieldError{Field: "page", Message: "Page must be a positive integer"})
		} else {
			params.Page = page
		}
	}

	if raw.Limit != "" {
		limit, err := strconv.ParseInt(strings.TrimSpace(raw.Limit), 10, 64)
		if err != nil || limit < 1 || limit > maxLimit {
			errs = append(errs, FieldError{Field: "limit", Message: "Limit must be between 1 and 100"})
		} else {
			params.Limit = limit
		}
	}

	return params, errs
}
