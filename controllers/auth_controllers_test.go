package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminRoutesRequireLogin(t *testing.T) {
	r, _ := setupApp(t, seededMemory())

	w := doJSON(r, "GET", "/api/admin/dashboard", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginFlow(t *testing.T) {
	mem := seededMemory()
	mem.SetCredentials("admin@evaani.com", "admin123")
	r, _ := setupApp(t, mem)

	// wrong password is refused and the session stays anonymous
	w := doJSON(r, "POST", "/api/admin/login",
		map[string]string{"email": "admin@evaani.com", "password": "nope"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	badCookies := w.Result().Cookies()
	w = doJSON(r, "GET", "/api/admin/dashboard", nil, badCookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// correct credentials mark the session and hand back a token
	w = doJSON(r, "POST", "/api/admin/login",
		map[string]string{"email": "admin@evaani.com", "password": "admin123"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	token, _ := dataOf(t, w)["token"].(string)
	assert.NotEmpty(t, token)
	cookies := w.Result().Cookies()
	assert.NotEmpty(t, cookies)

	w = doJSON(r, "GET", "/api/admin/dashboard", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	// the bearer token alone also opens the gate
	req := doJSONWithAuth(r, "GET", "/api/admin/dashboard", token)
	assert.Equal(t, http.StatusOK, req.Code)

	// session endpoint reflects the flag
	w = doJSON(r, "GET", "/api/admin/session", nil, cookies)
	assert.Equal(t, true, dataOf(t, w)["isAdmin"])

	// logout clears it
	w = doJSON(r, "POST", "/api/admin/logout", nil, cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, "GET", "/api/admin/dashboard", nil, cookies)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginValidation(t *testing.T) {
	r, _ := setupApp(t, seededMemory())

	w := doJSON(r, "POST", "/api/admin/login",
		map[string]string{"email": "not-an-email", "password": "x"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
