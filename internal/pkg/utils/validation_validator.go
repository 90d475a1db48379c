package utils

import (
	"dental-clinic-service/internal/pkg/constvars"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("appointment_date", validateAppointmentDate)
	validate.RegisterValidation("slot_time", validateSlotTime)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validateAppointmentDate(fl validator.FieldLevel) bool {
	parsed, err := time.Parse(constvars.AppointmentDateLayout, fl.Field().String())
	if err != nil {
		return false
	}
	return !parsed.Before(StartOfToday())
}

func validateSlotTime(fl validator.FieldLevel) bool {
	return IsGridSlot(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phoneNumber := fl.Field().String()
	re := regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)
	return re.MatchString(phoneNumber)
}
