package service

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"

	appErrors "github.com/aquago/aquago/internal/app/errors"
)

// upiIDRegex matches the local-part@domain shape a UPI handle must have.
var upiIDRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)

const maxTopUpAmount = 50000

type (
	AddressForm struct {
		Title   string `validate:"required"`
		Address string `validate:"required"`
	}

	TopUpForm struct {
		Amount float64 `validate:"gt=0,lte=50000"`
	}
)

// NewValidator builds the shared input validator with the custom upi tag
// registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	// RegisterValidation only fails for an empty tag name.
	_ = v.RegisterValidation("upi", func(fl validator.FieldLevel) bool {
		return upiIDRegex.MatchString(fl.Field().String())
	})
	return v
}

// ValidateUPIID gates the UPI payment path on a syntactically valid handle.
// Real validity is only known to the payment network.
func ValidateUPIID(id string) error {
	if !upiIDRegex.MatchString(id) {
		return appErrors.NewWithCode(errors.New("invalid upi id: "+id),
			"Please enter a valid UPI ID", http.StatusUnprocessableEntity)
	}
	return nil
}

func validateAddressForm(v *validator.Validate, title, address string) error {
	form := AddressForm{Title: title, Address: address}
	if err := v.Struct(form); err != nil {
		return appErrors.NewWithCode(err, "Title and address are required", http.StatusUnprocessableEntity)
	}
	return nil
}

func validateTopUpAmount(v *validator.Validate, amount float64) error {
	form := TopUpForm{Amount: amount}
	if err := v.Struct(form); err != nil {
		return appErrors.NewWithCode(err, "Amount must be between 1 and 50000", http.StatusUnprocessableEntity)
	}
	return nil
}
