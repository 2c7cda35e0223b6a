package helper

import (
	"errors"
	"testing"

	libErr "github.com/LerianStudio/lib-auth-go/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertAPIError checks err is an ApiError with the expected status, code and message
func AssertAPIError(t *testing.T, err error, expectedStatus int, expectedCode, expectedMsg string) {
	t.Helper()

	var apiErr *libErr.ApiError
	require.True(t, errors.As(err, &apiErr), "expected *ApiError, got %T: %v", err, err)
	assert.Equal(t, expectedStatus, apiErr.StatusCode, "status code mismatch")
	assert.Equal(t, expectedCode, apiErr.Code, "error code mismatch")
	assert.Equal(t, expectedMsg, apiErr.Msg, "error message mismatch")
}
