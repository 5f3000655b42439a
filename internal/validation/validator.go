package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"budget-tracker/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format accepted for transaction dates
const DateLayout = "2006-01-02"

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimal.Decimal is a struct; validate it through its string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("subcategory_name", validateSubCategoryName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns the raw validator errors
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp. Calendar dates
// are interpreted as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// FieldErrors flattens validator errors into field -> message pairs
func FieldErrors(err error) map[string]string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = formatFieldError(fe)
	}
	return fields
}

// Messages is FieldErrors as a stable, sorted list of "field: message" strings
func Messages(err error) []string {
	fields := FieldErrors(err)
	if fields == nil {
		return []string{err.Error()}
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, fmt.Sprintf("%s: %s", name, fields[name]))
	}
	return messages
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a valid identifier"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "positive_decimal":
		return "must be a positive amount"
	case "calendar_date":
		return "must be a date in YYYY-MM-DD format"
	case "transaction_type":
		return "must be INCOME or EXPENSE"
	case "subcategory_name":
		return fmt.Sprintf("must be at least %d characters", models.MinSubCategoryNameLength)
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

// validatePositiveDecimal validates that an amount is strictly greater than zero
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(field.String())
		if err != nil {
			return false
		}
		return d.IsPositive()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() > 0
	case reflect.Float32, reflect.Float64:
		return field.Float() > 0
	default:
		return false
	}
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String(), time.UTC)
	return err == nil
}

func validateTransactionType(fl validator.FieldLevel) bool {
	return models.CategoryType(fl.Field().String()).IsValid()
}

func validateSubCategoryName(fl validator.FieldLevel) bool {
	return models.IsValidSubCategoryName(fl.Field().String())
}
