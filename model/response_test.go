package model_test

import (
	"testing"

	"github.com/LerianStudio/lib-auth-go/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseDecode(t *testing.T) {
	resp := &model.Response{StatusCode: 200, Body: []byte(`{"name":"Ada","email":"ada@example.com"}`)}

	var profile struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	require.NoError(t, resp.Decode(&profile))
	assert.Equal(t, "Ada", profile.Name)
	assert.Equal(t, "ada@example.com", profile.Email)
}

func TestResponseDecodeInvalidBody(t *testing.T) {
	resp := &model.Response{StatusCode: 200, Body: []byte("not json")}

	var v map[string]any
	assert.Error(t, resp.Decode(&v))
}
