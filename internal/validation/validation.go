// Package validation runs struct validation as an explicit stage producing
// a structured result, so every handler surfaces violations the same way
// regardless of storage technology.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under the wire-facing json names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Result struct {
	Violations []Violation `json:"violations,omitempty"`
}

func (r Result) OK() bool {
	return len(r.Violations) == 0
}

// Message returns the first violated constraint's message, the way the
// public intake endpoints report failures.
func (r Result) Message() string {
	if r.OK() {
		return ""
	}
	return r.Violations[0].Message
}

// Error adapts a failed Result into an error handlers can classify as a
// 400-class response.
type Error struct {
	Result Result
}

func (e *Error) Error() string {
	return e.Result.Message()
}

// Var checks a single value against a tag expression using the shared
// validator instance.
func Var(v interface{}, tag string) error {
	return validate.Var(v, tag)
}

// Struct validates v and returns the collected violations.
func Struct(v interface{}) Result {
	err := validate.Struct(v)
	if err == nil {
		return Result{}
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Result{Violations: []Violation{{Message: err.Error()}}}
	}

	result := Result{Violations: make([]Violation, 0, len(verrs))}
	for _, fe := range verrs {
		result.Violations = append(result.Violations, Violation{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return result
}

func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(fe.Param()), ", "))
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("Maximum %s images allowed", fe.Param())
		}
		return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be positive", label)
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

// humanize turns a json field name like "eventType" into "Event type".
func humanize(field string) string {
	if field == "" {
		return "Field"
	}
	var b strings.Builder
	for i, r := range field {
		if i == 0 {
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
			continue
		}
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
