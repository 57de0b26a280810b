package shared

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/runoshun/timers/internal/domain"
)

// Validate is the shared validator instance.
var Validate *validator.Validate

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("seconds", validateSeconds); err != nil {
		panic(fmt.Sprintf("failed to register seconds validator: %v", err))
	}
}

// TimerFields is the user-entered part of a new timer.
type TimerFields struct {
	Name     string `validate:"required"`
	Category string `validate:"required"`
	Duration string `validate:"required,seconds"`
}

// validateSeconds accepts a base-10 integer greater than zero.
func validateSeconds(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Field().String())
	return err == nil && n > 0
}

// ValidateTimerFields trims the fields and validates them.
// It returns the cleaned name and category and the parsed duration, or the
// domain error for the first failing field in form order.
func ValidateTimerFields(in TimerFields) (TimerFields, int, error) {
	clean := TimerFields{
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		Duration: strings.TrimSpace(in.Duration),
	}

	if err := Validate.Struct(clean); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return TimerFields{}, 0, err
		}
		failed := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			failed[fe.Field()] = fe.Tag()
		}
		switch {
		case failed["Name"] != "":
			return TimerFields{}, 0, domain.ErrEmptyName
		case failed["Category"] != "":
			return TimerFields{}, 0, domain.ErrEmptyCategory
		case failed["Duration"] == "required":
			return TimerFields{}, 0, domain.ErrEmptyDuration
		default:
			return TimerFields{}, 0, domain.ErrInvalidDuration
		}
	}

	duration, _ := strconv.Atoi(clean.Duration)
	return clean, duration, nil
}
