package debate

import (
	"context"

	"github.com/agora-labs/agora/pkg/models"
)

// Store is the persistence boundary. The orchestrator writes through it on
// boundary transitions only: session snapshots on status/phase changes,
// plus each appended turn, closed round, applied rotation, and the final
// report. Encoding and schema belong to the implementation.
type Store interface {
	SaveSession(ctx context.Context, s *models.Session) error
	SaveTurn(ctx context.Context, sessionID string, turn models.Turn) error
	SaveRound(ctx context.Context, sessionID string, round models.Round) error
	SaveRotation(ctx context.Context, sessionID string, rotation models.RotationEvent) error
	SaveReport(ctx context.Context, sessionID string, report *models.FinalReport) error
}

// NopStore discards all writes. Sessions then live only in process memory.
type NopStore struct{}

func (NopStore) SaveSession(context.Context, *models.Session) error               { return nil }
func (NopStore) SaveTurn(context.Context, string, models.Turn) error              { return nil }
func (NopStore) SaveRound(context.Context, string, models.Round) error            { return nil }
func (NopStore) SaveRotation(context.Context, string, models.RotationEvent) error { return nil }
func (NopStore) SaveReport(context.Context, string, *models.FinalReport) error    { return nil }
