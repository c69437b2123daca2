package validation

import (
	"time"

	"github.com/go-playground/validator/v10"

	"go-talented-backend/internal/domain"
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("app_status", AppStatus)
	_ = v.RegisterValidation("rating_value", RatingValue)
	_ = v.RegisterValidation("future_date", FutureDate)
}

// AppStatus validates that a string is a known application status
func AppStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case domain.StatusApplied, domain.StatusShortlisted, domain.StatusAccepted,
		domain.StatusRejected, domain.StatusDeleted, domain.StatusCancelled,
		domain.StatusFinished:
		return true
	}
	return false
}

// RatingValue validates the 1-5 rating scale
func RatingValue(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= 1 && v <= 5
}

// FutureDate validates that a timestamp field lies in the future.
// Used for job deadlines; zero values pass (use required when needed).
func FutureDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true
	}
	return t.After(time.Now())
}
