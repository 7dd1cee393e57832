package handler_test

import (
	"testing"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func professionalPayload() gin.H {
	return gin.H{
		"name":         "Dra. Lúcia Ramos",
		"specialty":    "Psicopedagogia",
		"contact":      "lucia@clinica.com",
		"phone_number": "11 99999-0003",
		"status":       "on",
	}
}

func TestProfessionalCreateAndList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/professionals", professionalPayload())
	require.Equal(t, 201, w.Code, w.Body.String())

	var prof model.Professional
	decode(t, w, &prof)
	assert.NotEmpty(t, prof.ID)

	w = env.do(t, "GET", "/professionals", nil)
	require.Equal(t, 200, w.Code)

	var pros []model.Professional
	decode(t, w, &pros)
	require.Len(t, pros, 1)
	assert.Equal(t, "Dra. Lúcia Ramos", pros[0].Name)
}

func TestProfessionalInvalidStatus(t *testing.T) {
	env := newTestEnv(t)

	payload := professionalPayload()
	payload["status"] = "paused"
	w := env.do(t, "POST", "/professionals", payload)
	require.Equal(t, 400, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Contains(t, body.Fields, "status")
}

func TestProfessionalUpdateUnknownID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "PUT", "/professionals/missing", professionalPayload())
	assert.Equal(t, 404, w.Code)
}

func TestProfessionalDelete(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/professionals", professionalPayload())
	require.Equal(t, 201, w.Code)

	var prof model.Professional
	decode(t, w, &prof)

	w = env.do(t, "DELETE", "/professionals/"+prof.ID, nil)
	require.Equal(t, 200, w.Code)

	w = env.do(t, "GET", "/professionals", nil)
	assert.JSONEq(t, "[]", w.Body.String())
}
