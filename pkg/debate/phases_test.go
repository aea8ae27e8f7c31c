package debate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agora-labs/agora/pkg/models"
)

func TestMiddlePhaseMapping(t *testing.T) {
	tests := []struct {
		round, planned int
		want           models.Phase
	}{
		{1, 3, models.PhaseFirstRound},
		{2, 3, models.PhaseRebuttal},
		{3, 3, models.PhaseCrossExamination},
		{1, 1, models.PhaseFirstRound},
		{2, 5, models.PhaseRebuttal},
		{4, 5, models.PhaseRebuttal},
		{5, 5, models.PhaseCrossExamination},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, middlePhase(tc.round, tc.planned),
			"round %d of %d", tc.round, tc.planned)
	}
}

func TestCrossExamOrderPutsAskerFirst(t *testing.T) {
	debaters := models.DebaterRoles(3)

	got := crossExamOrder(debaters, debaters[1])
	require.Len(t, got, 3)
	assert.Equal(t, debaters[1], got[0])
	assert.Equal(t, []models.Role{debaters[1], debaters[0], debaters[2]}, got)

	// Asker already first keeps declaration order.
	assert.Equal(t, debaters, crossExamOrder(debaters, debaters[0]))
}

func TestLowestScorer(t *testing.T) {
	a, b := models.DebaterRole(0), models.DebaterRole(1)
	debaters := []models.Role{a, b}

	scored := func(role models.Role, strength float64) models.Turn {
		return models.Turn{Role: role, Argument: &models.ArgumentRecord{Strength: strength}}
	}

	t.Run("picks lower mean", func(t *testing.T) {
		turns := []models.Turn{scored(a, 0.9), scored(b, 0.4)}
		assert.Equal(t, b, lowestScorer(turns, debaters))
	})

	t.Run("ties break in declaration order", func(t *testing.T) {
		turns := []models.Turn{scored(a, 0.6), scored(b, 0.6)}
		assert.Equal(t, a, lowestScorer(turns, debaters))
	})

	t.Run("unscored debater counts as lowest", func(t *testing.T) {
		turns := []models.Turn{scored(a, 0.2)}
		assert.Equal(t, b, lowestScorer(turns, debaters))
	})

	t.Run("no turns at all", func(t *testing.T) {
		assert.Equal(t, a, lowestScorer(nil, debaters))
	})
}

func TestComposeMessagesShape(t *testing.T) {
	msgs := composeMessages(promptInput{
		Topic: "Ban single-use plastics",
		Role:  models.DebaterRole(0),
		Phase: models.PhaseOpening,
	})
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].Role)
	assert.Equal(t, "user", msgs[1].Role)
	assert.Contains(t, msgs[0].Content, "debater_A")
	assert.Contains(t, msgs[0].Content, "Ban single-use plastics")
	assert.Contains(t, msgs[0].Content, "opening statement")
	assert.Contains(t, msgs[1].Content, "You speak first")
}

func TestComposeMessagesForJudgeAndReference(t *testing.T) {
	turns := []models.Turn{
		{Role: models.DebaterRole(0), Phase: models.PhaseOpening, Content: "first statement"},
		{Role: models.DebaterRole(1), Phase: models.PhaseOpening, Content: "second statement"},
	}
	msgs := composeMessages(promptInput{
		Topic:     "topic",
		Reference: "background dossier",
		Role:      models.RoleJudge,
		Phase:     models.PhaseJudgment,
		Turns:     turns,
	})
	assert.Contains(t, msgs[0].Content, "You are the judge")
	assert.Contains(t, msgs[0].Content, "background dossier")
	assert.Contains(t, msgs[1].Content, "first statement")
	assert.Contains(t, msgs[1].Content, "second statement")
	assert.Contains(t, msgs[1].Content, "Respond now as judge")
}

func TestFormatTranscriptCompressesOldestFirst(t *testing.T) {
	long := strings.Repeat("a reasonably verbose sentence about the matter at hand. ", 20)
	turns := []models.Turn{
		{Role: models.DebaterRole(0), Phase: models.PhaseOpening, Content: long},
		{Role: models.DebaterRole(1), Phase: models.PhaseOpening, Content: long},
		{Role: models.DebaterRole(0), Phase: models.PhaseFirstRound, Content: long},
	}

	// A generous ceiling leaves everything intact.
	full := formatTranscript(turns, 10000)
	assert.NotContains(t, full, "abridged")

	// A tight ceiling compresses the oldest turns but never the newest.
	tight := formatTranscript(turns, 100)
	lines := strings.Split(tight, "\n\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "abridged")
	assert.Contains(t, lines[1], "abridged")
	assert.NotContains(t, lines[2], "abridged")

	// Zero ceiling disables compression.
	assert.NotContains(t, formatTranscript(turns, 0), "abridged")
}

func TestHeadLineTruncation(t *testing.T) {
	assert.Equal(t, "short", headLine("short"))
	assert.Equal(t, "first line", headLine("first line\nsecond line"))

	long := strings.Repeat("x", 400)
	got := headLine(long)
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.LessOrEqual(t, len(got), headLineLimit+len("…"))
}
