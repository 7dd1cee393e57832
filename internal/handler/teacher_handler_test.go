package handler_test

import (
	"testing"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func teacherPayload(userID string) gin.H {
	return gin.H{
		"user_id":            userID,
		"school_disciplines": "Matemática, Física",
		"contact":            "sala 12",
		"phone_number":       "11 99999-0002",
		"status":             "on",
	}
}

func TestTeacherCreateCopiesUserName(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Marta Reis", "marta@example.com")

	w := env.do(t, "POST", "/teachers", teacherPayload(user.ID))
	require.Equal(t, 201, w.Code, w.Body.String())

	var teacher model.Teacher
	decode(t, w, &teacher)
	assert.Equal(t, user.ID, teacher.UserID)
	assert.Equal(t, "Marta Reis", teacher.Name)
}

func TestTeacherCreateUnknownUserReference(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/teachers", teacherPayload("missing-user"))
	require.Equal(t, 400, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.NotEmpty(t, body.Error)

	w = env.do(t, "GET", "/teachers", nil)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestTeacherCreateMissingField(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Marta Reis", "marta@example.com")

	payload := teacherPayload(user.ID)
	delete(payload, "school_disciplines")
	w := env.do(t, "POST", "/teachers", payload)
	require.Equal(t, 400, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Contains(t, body.Fields, "school_disciplines")
}

func TestTeacherUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Marta Reis", "marta@example.com")

	w := env.do(t, "POST", "/teachers", teacherPayload(user.ID))
	require.Equal(t, 201, w.Code)

	var teacher model.Teacher
	decode(t, w, &teacher)

	update := teacherPayload(user.ID)
	update["status"] = "off"
	w = env.do(t, "PUT", "/teachers/"+teacher.ID, update)
	require.Equal(t, 200, w.Code, w.Body.String())

	decode(t, w, &teacher)
	assert.Equal(t, model.StatusOff, teacher.Status)

	w = env.do(t, "DELETE", "/teachers/"+teacher.ID, nil)
	require.Equal(t, 200, w.Code)

	w = env.do(t, "GET", "/teachers/"+teacher.ID, nil)
	assert.Equal(t, 404, w.Code)
}
