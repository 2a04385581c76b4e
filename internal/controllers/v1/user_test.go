package v1_test

import (
	"net/http"

	v1 "github.com/analizador-gastos/backend/internal/controllers/v1"
	"github.com/analizador-gastos/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestUserGet() {
	auth := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/user", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), "Test User", response.Data.Name)
	assert.NotEmpty(suite.T(), response.Data.Email)
	assert.Equal(suite.T(), "$", response.Data.Currency)
	assert.Equal(suite.T(), "es", response.Data.Language)
	assert.Equal(suite.T(), "light", response.Data.Theme)
	assert.False(suite.T(), response.Data.EmailAlerts)
}

func (suite *TestSuiteStandard) TestUserUpdate() {
	auth := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/user", map[string]any{
		"theme":       "dark",
		"emailAlerts": true,
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), "dark", response.Data.Theme)
	assert.True(suite.T(), response.Data.EmailAlerts)

	// Settings not in the request body stay untouched
	assert.Equal(suite.T(), "es", response.Data.Language)
	assert.Equal(suite.T(), "$", response.Data.Currency)
}

func (suite *TestSuiteStandard) TestUserEmailReadOnly() {
	auth := suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/user", "", auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var before v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &before)

	recorder = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/user", map[string]any{
		"email": "nuevo@example.com",
		"name":  "Ana",
	}, auth)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var after v1.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &after)
	assert.Equal(suite.T(), before.Data.Email, after.Data.Email)
}
