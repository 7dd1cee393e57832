package handler_test

import (
	"testing"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndGet(t *testing.T) {
	env := newTestEnv(t)

	created := env.createUser(t, "Ana Souza", "ana@example.com")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana Souza", created.Name)
	assert.Equal(t, model.Level("2"), created.Level)
	assert.Equal(t, model.StatusOn, created.Status)

	w := env.do(t, "GET", "/users/"+created.ID, nil)
	require.Equal(t, 200, w.Code)

	var got model.User
	decode(t, w, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Email, got.Email)
}

func TestUserCreateMissingFieldLeavesCollectionUnchanged(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "Ana Souza", "ana@example.com")

	w := env.do(t, "POST", "/users", gin.H{
		"name":   "No Email",
		"user":   "noemail",
		"pwd":    "secret123",
		"level":  "2",
		"status": "on",
	})
	require.Equal(t, 400, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Contains(t, body.Fields, "email")

	w = env.do(t, "GET", "/users", nil)
	require.Equal(t, 200, w.Code)

	var users []model.User
	decode(t, w, &users)
	assert.Len(t, users, 1)
}

func TestUserListEmpty(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/users", nil)
	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestUserUpdateKeepsStoredID(t *testing.T) {
	env := newTestEnv(t)
	created := env.createUser(t, "Ana Souza", "ana@example.com")

	// An id in the payload must not override the path id.
	w := env.do(t, "PUT", "/users/"+created.ID, gin.H{
		"id":     "forged-id",
		"name":   "Ana Lima",
		"email":  "ana@example.com",
		"user":   "analima",
		"level":  "1",
		"status": "on",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	var updated model.User
	decode(t, w, &updated)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Ana Lima", updated.Name)
	assert.Equal(t, model.Level("1"), updated.Level)
}

func TestUserUpdateWithoutPasswordKeepsOldPassword(t *testing.T) {
	env := newTestEnv(t)
	created := env.createUser(t, "Ana Souza", "ana@example.com")

	w := env.do(t, "PUT", "/users/"+created.ID, gin.H{
		"name":   "Ana Souza",
		"email":  "ana@example.com",
		"user":   "ana",
		"level":  "2",
		"status": "on",
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	// The original password still logs in.
	w = env.do(t, "POST", "/users/login", gin.H{
		"email": "ana@example.com",
		"senha": "secret123",
	})
	assert.Equal(t, 200, w.Code, w.Body.String())
}

func TestUserDeleteThenGetNotFound(t *testing.T) {
	env := newTestEnv(t)
	created := env.createUser(t, "Ana Souza", "ana@example.com")

	w := env.do(t, "DELETE", "/users/"+created.ID, nil)
	require.Equal(t, 200, w.Code)

	w = env.do(t, "GET", "/users/"+created.ID, nil)
	require.Equal(t, 404, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Equal(t, "not found", body.Error)
}

func TestUserGetUnknownID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "GET", "/users/does-not-exist", nil)
	assert.Equal(t, 404, w.Code)
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	env := newTestEnv(t)
	created := env.createUser(t, "Ana Souza", "ana@example.com")

	w := env.do(t, "GET", "/users/"+created.ID, nil)
	require.Equal(t, 200, w.Code)
	assert.NotContains(t, w.Body.String(), "pwd")
	assert.NotContains(t, w.Body.String(), "secret123")
}
