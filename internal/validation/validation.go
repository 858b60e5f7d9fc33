package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"remainder-service/internal/models"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	timePattern  = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// FieldError is one structured validation failure, serialized into the
// errors array of a 400 response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries field errors across the store boundary. The store raises it
// when a write bypassed handler-level validation; handlers map it back to
// the same 400 shape.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their json names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return timePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		_, err := models.ParseDate(fl.Field().String())
		return err == nil
	})
	// Rejects calendar days strictly before today. Unparseable strings pass
	// so the calendardate rule stays the one reporting format problems.
	v.RegisterValidation("notpast", func(fl validator.FieldLevel) bool {
		switch value := fl.Field().Interface().(type) {
		case string:
			date, err := models.ParseDate(value)
			if err != nil {
				return true
			}
			return !date.Before(models.Today())
		case time.Time:
			return !value.Before(models.Today())
		}
		return false
	})
	return v
}

// Messages mirror the API's original wording, keyed by field.tag.
var fieldMessages = map[string]string{
	"name.required":         "Name is required",
	"name.max":              "Name cannot exceed 100 characters",
	"email.required":        "Email is required",
	"email.email":           "Please enter a valid email",
	"phone.required":        "Phone number is required",
	"phone.phone":           "Please enter a valid phone number",
	"occasion.required":     "Occasion is required",
	"occasion.oneof":        "Invalid occasion type",
	"date.required":         "Date is required",
	"date.calendardate":     "Please enter a valid date",
	"date.notpast":          "Date cannot be in the past",
	"time.required":         "Time is required",
	"time.hhmm":             "Please enter time in HH:MM format (24-hour)",
	"relationship.required": "Relationship is required",
	"relationship.oneof":    "Invalid relationship type",
}

func fieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		message, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			message = "Invalid value"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: message})
	}
	return out
}

// ValidateInput normalizes a write payload and checks every field rule,
// collecting all failures instead of stopping at the first.
func ValidateInput(in *models.RemainderInput) []FieldError {
	in.Normalize()
	return fieldErrors(validate.Struct(in))
}

// ValidateRecord re-checks the write fields of a full document. Used by the
// store as defense in depth before any insert or update.
func ValidateRecord(r *models.Remainder) []FieldError {
	return fieldErrors(validate.Struct(r))
}
