package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"

	"github.com/agora-labs/agora/pkg/events"
	"github.com/agora-labs/agora/pkg/models"
)

func TestListEventsEndpoint(t *testing.T) {
	h := newAPIHarness(t)
	sess := h.createSession(t, gin.H{"topic": "Topic"})

	w := h.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/cancel", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	h.waitStatus(t, sess.ID, models.StatusCancelled)

	var list struct {
		Events []events.Event `json:"events"`
		Count  int            `json:"count"`
	}

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Equal(t, 1, list.Count)
	assert.Equal(t, events.EventTypeSessionEnded, list.Events[0].Type)
	assert.Equal(t, int64(1), list.Events[0].Sequence)

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/events?from_seq=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 0, list.Count)

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/events?from_seq=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodGet, "/api/v1/sessions/unknown/events", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStreamEventsReplaysEndedSession(t *testing.T) {
	h := newAPIHarness(t)
	sess := h.createSession(t, gin.H{"topic": "Topic"})

	w := h.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/cancel", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	h.waitStatus(t, sess.ID, models.StatusCancelled)

	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/events/stream", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "id: 1\n")
	assert.Contains(t, body, "event: "+events.EventTypeSessionEnded)
}

func TestStreamEventsFollowsLiveSession(t *testing.T) {
	h := newAPIHarness(t)
	sess := h.createSession(t, gin.H{"topic": "Topic"})

	w := h.do(t, http.MethodPost, "/api/v1/sessions/"+sess.ID+"/start", nil)
	require.Equal(t, http.StatusAccepted, w.Code)

	// The stream request blocks until the session publishes its terminal
	// event, then returns with the whole ordered history.
	w = h.do(t, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/events/stream", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "event: "+events.EventTypeSessionStarted)
	assert.Contains(t, body, "event: "+events.EventTypeTurnCompleted)
	assert.Contains(t, body, "event: "+events.EventTypeSessionEnded)
}

func TestStreamEventsUnknownSession(t *testing.T) {
	h := newAPIHarness(t)
	w := h.do(t, http.MethodGet, "/api/v1/sessions/unknown/events/stream", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
