package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/agora-labs/agora/pkg/events"
)

// listEvents handles GET /api/v1/sessions/:id/events. It serves the durable
// event history when persistence is configured, falling back to the
// in-memory replay log otherwise. The optional "from_seq" query skips
// earlier sequences.
func (s *Server) listEvents(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.svc.Get(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}

	fromSeq, ok := parseSeq(c, "from_seq", 1)
	if !ok {
		return
	}

	var (
		evs []events.Event
		err error
	)
	if s.history != nil {
		evs, err = s.history.EventsSince(c.Request.Context(), id, fromSeq)
		if err != nil {
			mapServiceError(c, err)
			return
		}
	} else {
		evs = s.svc.Bus().Replay(id, fromSeq)
	}
	if evs == nil {
		evs = []events.Event{}
	}

	c.JSON(http.StatusOK, gin.H{"events": evs, "count": len(evs)})
}

// streamEvents handles GET /api/v1/sessions/:id/events/stream as SSE. The
// stream replays logged events from "from_seq" (or the Last-Event-ID header
// plus one), then follows live publishes until the session ends or the
// client disconnects. Event IDs are per-session sequence numbers, so clients
// reconnect without gaps or duplicates.
func (s *Server) streamEvents(c *gin.Context) {
	id := c.Param("id")
	if _, err := s.svc.Get(c.Request.Context(), id); err != nil {
		mapServiceError(c, err)
		return
	}

	fromSeq, ok := parseSeq(c, "from_seq", 0)
	if !ok {
		return
	}
	if fromSeq == 0 {
		fromSeq = 1
		if v := c.GetHeader("Last-Event-ID"); v != "" {
			if last, err := strconv.ParseInt(v, 10, 64); err == nil && last > 0 {
				fromSeq = last + 1
			}
		}
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	ctx := c.Request.Context()

	// Subscribe before replaying so no event slips between the two; the
	// sequence numbers deduplicate the overlap.
	stream := make(chan events.Event, 64)
	unsubscribe := s.svc.Bus().Subscribe(events.SessionChannel(id), func(ev events.Event) {
		select {
		case stream <- ev:
		case <-ctx.Done():
		}
	})
	defer unsubscribe()

	var lastSeq int64
	done := false
	for _, ev := range s.svc.Bus().Replay(id, fromSeq) {
		writeSSE(c.Writer, ev)
		lastSeq = ev.Sequence
		if ev.Type == events.EventTypeSessionEnded {
			done = true
		}
	}
	c.Writer.Flush()
	if done {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-stream:
			if ev.Sequence <= lastSeq {
				continue
			}
			writeSSE(c.Writer, ev)
			lastSeq = ev.Sequence
			c.Writer.Flush()
			if ev.Type == events.EventTypeSessionEnded {
				return
			}
		}
	}
}

func parseSeq(c *gin.Context, key string, def int64) (int64, bool) {
	v := c.Query(key)
	if v == "" {
		return def, true
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key})
		return 0, false
	}
	return n, true
}

func writeSSE(w io.Writer, ev events.Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "id: %d\nevent: %s\ndata: %s\n\n", ev.Sequence, ev.Type, data)
}
