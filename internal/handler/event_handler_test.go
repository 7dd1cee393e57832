package handler_test

import (
	"testing"
	"time"

	"github.com/chainsped/chain-backend/internal/model"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLifecycle(t *testing.T) {
	env := newTestEnv(t)

	date := time.Date(2024, 9, 16, 16, 0, 0, 0, time.UTC)
	w := env.do(t, "POST", "/events", gin.H{
		"description": "Palestra sobre inclusão",
		"comments":    "Auditório principal",
		"date":        date,
	})
	require.Equal(t, 201, w.Code, w.Body.String())

	var event model.Event
	decode(t, w, &event)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Palestra sobre inclusão", event.Description)
	assert.True(t, event.Date.Equal(date))

	w = env.do(t, "GET", "/events", nil)
	require.Equal(t, 200, w.Code)

	var events []model.Event
	decode(t, w, &events)
	require.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)

	w = env.do(t, "DELETE", "/events/"+event.ID, nil)
	require.Equal(t, 200, w.Code)

	w = env.do(t, "GET", "/events", nil)
	decode(t, w, &events)
	assert.Empty(t, events)
}

func TestEventCreateMissingDate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "POST", "/events", gin.H{
		"description": "Sem data",
		"comments":    "faltou o campo",
	})
	require.Equal(t, 400, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Contains(t, body.Fields, "date")

	w = env.do(t, "GET", "/events", nil)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestEventUpdate(t *testing.T) {
	env := newTestEnv(t)

	date := time.Date(2024, 9, 16, 16, 0, 0, 0, time.UTC)
	w := env.do(t, "POST", "/events", gin.H{
		"description": "Reunião de pais",
		"comments":    "Sala 3",
		"date":        date,
	})
	require.Equal(t, 201, w.Code)

	var event model.Event
	decode(t, w, &event)

	newDate := date.AddDate(0, 0, 7)
	w = env.do(t, "PUT", "/events/"+event.ID, gin.H{
		"description": "Reunião de pais (remarcada)",
		"comments":    "Sala 3",
		"date":        newDate,
	})
	require.Equal(t, 200, w.Code, w.Body.String())

	decode(t, w, &event)
	assert.Equal(t, "Reunião de pais (remarcada)", event.Description)
	assert.True(t, event.Date.Equal(newDate))
}

func TestEventUpdateUnknownID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "PUT", "/events/missing", gin.H{
		"description": "x",
		"comments":    "y",
		"date":        time.Now(),
	})
	assert.Equal(t, 404, w.Code)
}
