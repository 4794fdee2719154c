package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Admin role validation
	validate.RegisterValidation("admin_role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		validRoles := []string{"super_admin", "admin", "executive_admin", "ride_manager"}
		for _, r := range validRoles {
			if role == r {
				return true
			}
		}
		return false
	})

	// Account status validation
	validate.RegisterValidation("account_status", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		validStatuses := []string{"active", "inactive", "blocked"}
		for _, s := range validStatuses {
			if status == s {
				return true
			}
		}
		return false
	})

	// Vehicle type validation
	validate.RegisterValidation("vehicle_type", func(fl validator.FieldLevel) bool {
		vt := fl.Field().String()
		validTypes := []string{"sedan", "suv", "hatchback", "van", "bike", ""}
		for _, t := range validTypes {
			if vt == t {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "url":
			errors[field] = "Invalid URL format"
		case "admin_role":
			errors[field] = "Invalid role. Must be: super_admin, admin, executive_admin, or ride_manager"
		case "account_status":
			errors[field] = "Invalid status. Must be: active, inactive, or blocked"
		case "vehicle_type":
			errors[field] = "Invalid vehicle type. Must be: sedan, suv, hatchback, van, or bike"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
