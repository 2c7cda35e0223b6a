package pkg_test

import (
	"errors"
	"testing"

	"github.com/LerianStudio/lib-auth-go/constant"
	"github.com/LerianStudio/lib-auth-go/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBusinessError(t *testing.T) {
	err := pkg.ValidateBusinessError(constant.ErrInvalidBaseURL, "ClientConfig", "ftp://example.com")

	var vErr pkg.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "AUTH-0002", vErr.Code)
	assert.Equal(t, "ClientConfig", vErr.EntityType)
	assert.Contains(t, vErr.Message, "ftp://example.com")
	assert.Equal(t, "AUTH-0002 - "+vErr.Message, err.Error())
}

func TestValidateBusinessErrorUnknown(t *testing.T) {
	original := errors.New("something else")

	assert.Same(t, original, pkg.ValidateBusinessError(original, ""))
}

func TestValidateInternalError(t *testing.T) {
	cause := errors.New("disk on fire")
	err := pkg.ValidateInternalError(cause, "Client")

	var iErr pkg.InternalServerError
	require.True(t, errors.As(err, &iErr))
	assert.Equal(t, constant.ErrInternalServer.Error(), iErr.Code)
	assert.ErrorIs(t, err, cause)
}
