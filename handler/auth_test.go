package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel_gateway/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginIssuesSessionCookie(t *testing.T) {
	app, _ := newTestApp(t, &upstreamStub{})

	body := strings.NewReader(`{"email": "alma@example.com", "password": "password123"}`)
	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", body, fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := dataOf(t, decodeBody(t, resp))
	assert.Equal(t, constants.LOGIN_SUCCESS, data["message"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "Alma", user["name"])

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "session_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "session_token cookie not set")
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	// The cookie token is accepted by protected routes.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.AddCookie(cookie)
	meResp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, meResp.StatusCode)
	me := dataOf(t, decodeBody(t, meResp))
	assert.Equal(t, "alma@example.com", me["email"])
}

func TestLoginRejectedUpstream(t *testing.T) {
	app, _ := newTestApp(t, &upstreamStub{loginStatus: http.StatusUnauthorized})

	body := strings.NewReader(`{"email": "alma@example.com", "password": "wrongpassword"}`)
	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", body, fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, constants.LOGIN_FAILED, decodeBody(t, resp)["message"])
}

func TestLoginValidation(t *testing.T) {
	app, _ := newTestApp(t, &upstreamStub{})

	body := strings.NewReader(`{"email": "", "password": "password123"}`)
	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/login", "", body, fiber.MIMEApplicationJSON)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "email", decodeBody(t, resp)["keyError"])
}

func TestLogoutClearsSession(t *testing.T) {
	app, store := newTestApp(t, &upstreamStub{})
	_, bearer := signIn(t, store)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/auth/logout", bearer, nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := dataOf(t, decodeBody(t, resp))
	assert.Equal(t, "/login", data["redirect"])

	// The session is gone; the same token no longer authenticates.
	meResp := doRequest(t, app, http.MethodGet, "/api/v1/auth/me", bearer, nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, meResp.StatusCode)
}

func TestProtectedRejectsGarbageToken(t *testing.T) {
	app, _ := newTestApp(t, &upstreamStub{})

	resp := doRequest(t, app, http.MethodGet, "/api/v1/auth/me", "not-a-jwt", nil, "")
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, constants.LOGIN_REQUIRED, decodeBody(t, resp)["message"])
}
