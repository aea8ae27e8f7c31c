package events

import (
	"time"

	"github.com/agora-labs/agora/pkg/models"
)

// SessionStartedPayload announces the session leaving pending state.
type SessionStartedPayload struct {
	Topic      string                 `json:"topic"`
	Assignment map[models.Role]string `json:"assignment"`
}

// PhaseEnteredPayload marks a phase transition. The role→model assignment
// is constant between two consecutive phase events unless an emergency
// rotation intervened.
type PhaseEnteredPayload struct {
	Phase models.Phase `json:"phase"`
}

// TurnCompletedPayload carries one appended turn.
type TurnCompletedPayload struct {
	Turn models.Turn `json:"turn"`
}

// RoundClosedPayload carries the closed round and the round manager's
// decision for what follows.
type RoundClosedPayload struct {
	Round    models.Round         `json:"round"`
	Decision models.RoundDecision `json:"decision"`
}

// RotationAppliedPayload records a role rebinding taking effect.
type RotationAppliedPayload struct {
	Rotation models.RotationEvent `json:"rotation"`
}

// SessionEndedPayload is the terminal event for a session.
type SessionEndedPayload struct {
	Status   models.Status `json:"status"`
	Reason   string        `json:"reason,omitempty"`
	Phase    models.Phase  `json:"phase"`
	Duration time.Duration `json:"duration"`
}
