package handler_test

import (
	"testing"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, env *testEnv, email, senha string) (*model.LoginResponse, int) {
	t.Helper()

	w := env.do(t, "POST", "/users/login", gin.H{"email": email, "senha": senha})
	if w.Code != 200 {
		return nil, w.Code
	}
	var resp model.LoginResponse
	decode(t, w, &resp)
	return &resp, w.Code
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, code := login(t, env, "nobody@example.com", "whatever")
	assert.Equal(t, 404, code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "Ana Souza", "ana@example.com")

	_, code := login(t, env, "ana@example.com", "wrong-password")
	assert.Equal(t, 401, code)
}

func TestLoginSuccessReturnsLevelAndToken(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ana Souza", "ana@example.com")

	resp, code := login(t, env, "ana@example.com", "secret123")
	require.Equal(t, 200, code)
	assert.Equal(t, model.Level("2"), resp.Level)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLoginMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/users/login", gin.H{"email": "ana@example.com"})
	require.Equal(t, 400, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Contains(t, body.Fields, "senha")
}

func TestMeRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/users/me", nil)
	assert.Equal(t, 401, w.Code)
}

func TestMeReturnsAuthenticatedUser(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Ana Souza", "ana@example.com")

	resp, code := login(t, env, "ana@example.com", "secret123")
	require.Equal(t, 200, code)

	w := env.doAuth(t, "GET", "/users/me", resp.Token, nil)
	require.Equal(t, 200, w.Code, w.Body.String())

	var me model.User
	decode(t, w, &me)
	assert.Equal(t, user.ID, me.ID)
	assert.Equal(t, user.Email, me.Email)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "Ana Souza", "ana@example.com")

	resp, code := login(t, env, "ana@example.com", "secret123")
	require.Equal(t, 200, code)

	w := env.doAuth(t, "POST", "/users/logout", resp.Token, nil)
	require.Equal(t, 200, w.Code, w.Body.String())

	w = env.doAuth(t, "GET", "/users/me", resp.Token, nil)
	assert.Equal(t, 401, w.Code)
}

func TestNewLoginSupersedesOldToken(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "Ana Souza", "ana@example.com")

	first, code := login(t, env, "ana@example.com", "secret123")
	require.Equal(t, 200, code)

	second, code := login(t, env, "ana@example.com", "secret123")
	require.Equal(t, 200, code)

	w := env.doAuth(t, "GET", "/users/me", first.Token, nil)
	assert.Equal(t, 401, w.Code)

	w = env.doAuth(t, "GET", "/users/me", second.Token, nil)
	assert.Equal(t, 200, w.Code)
}

func TestGarbageTokenRejected(t *testing.T) {
	env := newTestEnv(t)

	w := env.doAuth(t, "GET", "/users/me", "not-a-jwt", nil)
	assert.Equal(t, 401, w.Code)
}

func TestLoginRateLimited(t *testing.T) {
	env := newTestEnv(t)

	var last int
	for i := 0; i < 31; i++ {
		w := env.do(t, "POST", "/users/login", gin.H{
			"email": "nobody@example.com",
			"senha": "whatever",
		})
		last = w.Code
	}
	assert.Equal(t, 429, last)
}
