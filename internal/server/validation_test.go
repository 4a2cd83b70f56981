package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkInForm struct {
	Identifier string `validate:"required"`
	Method     string `validate:"omitempty,oneof=manual fingerprint qr"`
	Email      string `validate:"omitempty,email"`
}

func TestValidateStruct_Valid(t *testing.T) {
	errs := ValidateStruct(checkInForm{
		Identifier: "9876543210",
		Method:     "qr",
		Email:      "asha@example.com",
	})
	assert.Empty(t, errs)
}

func TestValidateStruct_Required(t *testing.T) {
	errs := ValidateStruct(checkInForm{})
	require.Len(t, errs, 1)
	assert.Equal(t, "Identifier", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "Identifier is required", errs[0].Message)
}

func TestValidateStruct_OneOf(t *testing.T) {
	errs := ValidateStruct(checkInForm{
		Identifier: "9876543210",
		Method:     "telepathy",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Method", errs[0].Field)
	assert.Equal(t, "oneof", errs[0].Tag)
	assert.Equal(t, "Method must be one of: manual fingerprint qr", errs[0].Message)
}

func TestValidateStruct_Email(t *testing.T) {
	errs := ValidateStruct(checkInForm{
		Identifier: "9876543210",
		Email:      "not-an-email",
	})
	require.Len(t, errs, 1)
	assert.Equal(t, "Email must be a valid email address", errs[0].Message)
}
