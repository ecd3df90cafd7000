package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

// registerRules registers the tags used in DTO struct tags.
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("phone_loose", isLoosePhoneNumber); err != nil {
		return err
	}
	if err := v.RegisterValidation("pub_year", isPlausiblePublicationYear); err != nil {
		return err
	}
	if err := v.RegisterValidation("doi", isDOI); err != nil {
		return err
	}
	return nil
}

// isLoosePhoneNumber accepts international numbers with optional +, spaces and
// dashes. Office extensions appear in the data, so this stays permissive.
func isLoosePhoneNumber(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^\+?[0-9][0-9 \-()]{5,19}$`)
	return re.MatchString(fl.Field().String())
}

func isPlausiblePublicationYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 1900 && year <= int64(time.Now().Year())+1
}

func isDOI(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^10\.\d{4,9}/\S+$`)
	return re.MatchString(fl.Field().String())
}
