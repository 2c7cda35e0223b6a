package util_test

import (
	"errors"
	"testing"

	cn "github.com/LerianStudio/lib-auth-go/constant"
	"github.com/LerianStudio/lib-auth-go/model"
	"github.com/LerianStudio/lib-auth-go/pkg"
	"github.com/LerianStudio/lib-auth-go/test/helper/testlogger"
	"github.com/LerianStudio/lib-auth-go/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnvVariables(t *testing.T) {
	logger := testlogger.New()

	require.NoError(t, util.ValidateEnvVariables(&model.Config{BaseURL: "https://auth.example.com"}, logger))
	assert.Zero(t, logger.Count(testlogger.LevelError))
}

func TestValidateEnvVariablesMissingBaseURL(t *testing.T) {
	logger := testlogger.New()

	err := util.ValidateEnvVariables(&model.Config{BaseURL: ""}, logger)

	var vErr pkg.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, cn.ErrMissingBaseURL.Error(), vErr.Code)
	assert.True(t, logger.Contains(testlogger.LevelError, cn.ErrMissingBaseURL.Error(), cn.EnvBaseURL))
}

func TestValidateEnvVariablesNil(t *testing.T) {
	assert.Error(t, util.ValidateEnvVariables(nil, testlogger.New()))
}
