package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holextra/accounts-api/internal/model"
)

func registerBody(email string) string {
	return `{"id":1,"email":"` + email + `","givenname":"Jerry","familyname":"Solomon","password":"password","about":"I like fishing"}`
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestRegister_CreatesAccount(t *testing.T) {
	store := newFakeStore()
	a, _ := newTestHandlers(store)

	rec := doRequest(postJSON("/api/register", registerBody("jerry@holextra.com")), a.Register)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, store.users, 1)
	for _, u := range store.users {
		assert.Equal(t, "jerry@holextra.com", u.Email)
		assert.False(t, u.Created.IsZero())
	}
}

func TestRegister_ValidationFailureNeverTouchesStore(t *testing.T) {
	store := newFakeStore()
	a, _ := newTestHandlers(store)

	body := `{"id":-1,"email":"jerry@holextra.com","givenname":"Jerry","familyname":"Solomon","password":"password","about":"I like fishing"}`
	rec := doRequest(postJSON("/api/register", body), a.Register)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.users)
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	store := newFakeStore()
	a, _ := newTestHandlers(store)

	rec := doRequest(postJSON("/api/register", registerBody("jerry@holextra.com")), a.Register)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(postJSON("/api/register", registerBody("jerry@holextra.com")), a.Register)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Len(t, store.users, 1)
}

func TestRegister_NormalizesEmail(t *testing.T) {
	store := newFakeStore()
	a, _ := newTestHandlers(store)

	rec := doRequest(postJSON("/api/register", registerBody("Jerry@Holextra.COM")), a.Register)

	assert.Equal(t, http.StatusOK, rec.Code)
	for _, u := range store.users {
		assert.Equal(t, "jerry@holextra.com", u.Email)
	}
}

func loginRequest(email, password string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
	req.Header.Set("email", email)
	req.Header.Set("password", password)
	return req
}

func TestLogin_IssuesAndSavesToken(t *testing.T) {
	store := newFakeStore()
	id := store.add(model.User{Email: "sally@holextra.com", Password: "password"})
	a, _ := newTestHandlers(store)

	rec := doRequest(loginRequest("sally@holextra.com", "password"), a.Login)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])

	parsed, err := jwt.Parse(resp["token"], func(*jwt.Token) (interface{}, error) {
		return []byte("TRFTS"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	// The issued token is persisted on the account.
	assert.Equal(t, resp["token"], store.users[id].Token)
}

func TestLogin_WrongPasswordIsUnauthorized(t *testing.T) {
	store := newFakeStore()
	store.add(model.User{Email: "sally@holextra.com", Password: "password"})
	a, _ := newTestHandlers(store)

	rec := doRequest(loginRequest("sally@holextra.com", "wrongpass"), a.Login)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogin_MalformedPairFailsValidation(t *testing.T) {
	a, _ := newTestHandlers(newFakeStore())

	rec := doRequest(loginRequest("s  ally2@holextra.com", "password"), a.Login)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(loginRequest("sally@holextra.com", "12  3"), a.Login)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(loginRequest("", ""), a.Login)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_StoreFailureIsServerError(t *testing.T) {
	store := newFakeStore()
	store.failWith = errors.New("connect store: connection refused")
	a, _ := newTestHandlers(store)

	rec := doRequest(loginRequest("sally@holextra.com", "password"), a.Login)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
