package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerBody(email string) map[string]any {
	return map[string]any{
		"email":      email,
		"given_name": "Arman",
		"surname":    "B",
		"city":       "Almaty",
		"phone":      "77081234567",
		"password":   "secret123",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(t, db)

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", 0,
		registerBody("arman@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Token string `json:"token"`
		User  struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created.Token)
	assert.Equal(t, "arman@example.com", created.User.Email)

	w = doRequest(t, r, http.MethodPost, "/api/auth/login", 0,
		map[string]any{"email": "arman@example.com", "password": "secret123"})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(t, r, http.MethodPost, "/api/auth/login", 0,
		map[string]any{"email": "arman@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(t, db)

	w := doRequest(t, r, http.MethodPost, "/api/auth/register", 0,
		registerBody("  Arman@Example.COM "))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// The normalized form collides with any case variant.
	w = doRequest(t, r, http.MethodPost, "/api/auth/register", 0,
		registerBody("ARMAN@example.com"))
	assert.Equal(t, http.StatusConflict, w.Code, w.Body.String())
}

func TestRegisterValidation(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(t, db)

	body := registerBody("bad-email")
	w := doRequest(t, r, http.MethodPost, "/api/auth/register", 0, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = registerBody("ok@example.com")
	body["phone"] = "7708123456"
	w = doRequest(t, r, http.MethodPost, "/api/auth/register", 0, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = registerBody("ok@example.com")
	body["password"] = "123"
	w = doRequest(t, r, http.MethodPost, "/api/auth/register", 0, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
