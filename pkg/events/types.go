// Package events delivers ordered per-session debate progress to
// subscribers. Delivery is at-least-once within process lifetime;
// subscribers must be idempotent on (session_id, sequence). A bounded
// replay log supports catch-up after reconnect.
package events

import "time"

// Event types published over a session's channel.
const (
	EventTypeSessionStarted  = "session.started"
	EventTypePhaseEntered    = "session.phase_entered"
	EventTypeTurnCompleted   = "turn.completed"
	EventTypeRoundClosed     = "round.closed"
	EventTypeRotationApplied = "rotation.applied"
	EventTypeSessionEnded    = "session.ended"
)

// GlobalChannel carries session lifecycle events for list views.
const GlobalChannel = "sessions"

// SessionChannel returns the channel name for one session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// Event is one published occurrence. Sequence is per-session, strictly
// monotonic from 1; the payload is one of the structs in payloads.go.
type Event struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	Sequence  int64     `json:"sequence"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}
