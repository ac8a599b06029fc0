package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/aquago/aquago/internal/app/errors"
)

func TestValidateUPIID(t *testing.T) {
	tests := []struct {
		name    string
		upiID   string
		wantErr bool
	}{
		{name: "plain handle", upiID: "ramesh@okicici", wantErr: false},
		{name: "handle with dot and dash", upiID: "ramesh.kumar-2@ok-axis", wantErr: false},
		{name: "numeric handle", upiID: "9876543210@upi", wantErr: false},
		{name: "missing provider", upiID: "ramesh@", wantErr: true},
		{name: "missing handle", upiID: "@okicici", wantErr: true},
		{name: "no separator", upiID: "ramesh", wantErr: true},
		{name: "two separators", upiID: "ramesh@ok@icici", wantErr: true},
		{name: "inner space", upiID: "ramesh kumar@upi", wantErr: true},
		{name: "empty", upiID: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUPIID(tt.upiID)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			appErr := appErrors.ResponseCodeError{}
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusUnprocessableEntity, appErr.Code())
		})
	}
}

func TestValidateTopUpAmount(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		name    string
		amount  float64
		wantErr bool
	}{
		{name: "small amount", amount: 100, wantErr: false},
		{name: "at cap", amount: 50000, wantErr: false},
		{name: "above cap", amount: 50001, wantErr: true},
		{name: "zero", amount: 0, wantErr: true},
		{name: "negative", amount: -10, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTopUpAmount(v, tt.amount)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAddressForm(t *testing.T) {
	v := NewValidator()
	tests := []struct {
		name    string
		title   string
		address string
		wantErr bool
	}{
		{name: "both filled", title: "Home", address: "12 MG Road, Bengaluru", wantErr: false},
		{name: "missing title", title: "", address: "12 MG Road", wantErr: true},
		{name: "missing address", title: "Home", address: "", wantErr: true},
		{name: "both missing", title: "", address: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAddressForm(v, tt.title, tt.address)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
