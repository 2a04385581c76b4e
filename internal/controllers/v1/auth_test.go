package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/analizador-gastos/backend/internal/controllers/v1"
	"github.com/analizador-gastos/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRegister() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.Credentials{
		Email:    "ana@example.com",
		Password: "hunter2",
		Name:     "Ana",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.NotEmpty(suite.T(), response.Data.Token)
	assert.NotEmpty(suite.T(), response.Data.UserID)
}

func (suite *TestSuiteStandard) TestRegisterMissingCredentials() {
	tests := []struct {
		name string
		body v1.Credentials
	}{
		{"missing email", v1.Credentials{Password: "hunter2"}},
		{"missing password", v1.Credentials{Email: "ana@example.com"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/auth/register", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.Credentials{
		Email:    "ana@example.com",
		Password: "hunter2",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	// Email comparison ignores case
	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.Credentials{
		Email:    "Ana@Example.com",
		Password: "different",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestLogin() {
	_ = suite.registerTestUser()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.Credentials{
		Email:    "maria@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.Credentials{
		Email:    "maria@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.NotEmpty(suite.T(), response.Data.Token)
}

func (suite *TestSuiteStandard) TestLoginInvalidCredentials() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/register", v1.Credentials{
		Email:    "maria@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	tests := []struct {
		name string
		body v1.Credentials
	}{
		{"wrong password", v1.Credentials{Email: "maria@example.com", Password: "wrong"}},
		{"unknown email", v1.Credentials{Email: "nobody@example.com", Password: "correct horse battery staple"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", tt.body)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)

			// Unknown emails and wrong passwords are indistinguishable
			var response v1.TokenResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, "no user exists for this email and password combination", *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthRequired() {
	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no token", map[string]string{}},
		{"malformed header", map[string]string{"Authorization": "token here"}},
		{"invalid token", map[string]string{"Authorization": "Bearer not-a-jwt"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "", tt.headers)
			test.AssertHTTPStatus(t, &recorder, http.StatusUnauthorized)
		})
	}
}
