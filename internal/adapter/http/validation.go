package http

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/ScoutDevs/Rechartering/pkg/id"
	"github.com/go-playground/validator/v10"
)

const isoDate = "2006-01-02"

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report fields by their json names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	// entityid=yth: a record id carrying the given type prefix
	_ = v.RegisterValidation("entityid", func(fl validator.FieldLevel) bool {
		return id.HasPrefix(fl.Field().String(), fl.Param())
	})
	// calendar date without time of day
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(isoDate, fl.Field().String())
		return err == nil
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "entityid":
			out = append(out, FieldError{Field: field, Message: "must be a " + e.Param() + "- id"})
		case "isodate":
			out = append(out, FieldError{Field: field, Message: "must be a date in YYYY-MM-DD form"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must have at least " + e.Param() + " item(s)"})
		case "gt":
			out = append(out, FieldError{Field: field, Message: "must be greater than " + e.Param()})
		case "oneof":
			out = append(out, FieldError{Field: field, Message: "must be one of " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

// parseDate reads an optional isodate field. Empty means unset.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return nil
	}
	return &t
}

// mustDate reads a required isodate field already checked by the validator.
func mustDate(s string) time.Time {
	if t := parseDate(s); t != nil {
		return *t
	}
	return time.Time{}
}
