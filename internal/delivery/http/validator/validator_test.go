package validator

import (
	"testing"

	domainerrors "eats/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email string `validate:"required,email"`
	Role  string `validate:"oneof=Client Owner Delivery"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()

	require.NoError(t, cv.Validate(&signup{Email: "a@x.com", Role: "Client"}))

	err := cv.Validate(&signup{Email: "nope", Role: "Admin"})
	require.Error(t, err)

	var baseErr *domainerrors.BaseError
	require.True(t, errors.As(err, &baseErr))
	assert.Equal(t, "VALIDATION_FAILED", baseErr.ErrorCode())
	assert.Contains(t, baseErr.Details(), "signup.Email failed on email")
	assert.Contains(t, baseErr.Details(), "signup.Role failed on oneof")
}
