package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"Title":         "Job title",
	"MaxApplicants": "Maximum applicants",
	"MaxPositions":  "Maximum positions",
	"Deadline":      "Application deadline",
	"Skillsets":     "Skill tags",
	"JobType":       "Job type",
	"Salary":        "Salary",
	"SOP":           "Statement of purpose",
	"Status":        "Application status",
	"Value":         "Rating",
	"Questions":     "Interview questions",
	"Answers":       "Interview answers",
	"Scores":        "Interview scores",
	"DateOfJoining": "Date of joining",
}

// FormatValidationErrors turns validator errors into one readable message.
// Non-validator errors pass through unchanged.
func FormatValidationErrors(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return strings.Join(msgs, "; ")
}

func formatFieldError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Split(e.Param(), " "), ", "))
	case "app_status":
		return fmt.Sprintf("%s is not a valid status", label)
	case "rating_value":
		return fmt.Sprintf("%s must be between 1 and 5", label)
	case "future_date":
		return fmt.Sprintf("%s must be in the future", label)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
