package debate

import (
	"sort"

	"github.com/agora-labs/agora/pkg/models"
)

// middlePhase maps a middle-section round index onto its phase: the first
// round is FIRST_ROUND, the last planned round is CROSS_EXAMINATION, and
// everything between is REBUTTAL. Because extension decisions land one round
// before the planned end, cross-examination is never revisited.
func middlePhase(round, planned int) models.Phase {
	switch {
	case round == 1:
		return models.PhaseFirstRound
	case round >= planned:
		return models.PhaseCrossExamination
	default:
		return models.PhaseRebuttal
	}
}

// crossExamOrder puts the asker first, then the remaining debaters in
// declaration order. Alternating question/answer falls out of the turn
// sequence: the asker questions, the others respond.
func crossExamOrder(debaters []models.Role, asker models.Role) []models.Role {
	out := make([]models.Role, 0, len(debaters))
	out = append(out, asker)
	for _, r := range debaters {
		if r != asker {
			out = append(out, r)
		}
	}
	return out
}

// lowestScorer picks the debater with the lowest mean argument strength over
// the given turns. Ties break in declaration order; a debater with no scored
// turns counts as lowest.
func lowestScorer(turns []models.Turn, debaters []models.Role) models.Role {
	if len(debaters) == 0 {
		return ""
	}
	means := make(map[models.Role]float64, len(debaters))
	counts := make(map[models.Role]int, len(debaters))
	for _, t := range turns {
		if t.Argument == nil {
			continue
		}
		means[t.Role] += t.Argument.Strength
		counts[t.Role]++
	}

	ordered := make([]models.Role, len(debaters))
	copy(ordered, debaters)
	sort.SliceStable(ordered, func(i, j int) bool {
		return meanFor(means, counts, ordered[i]) < meanFor(means, counts, ordered[j])
	})
	return ordered[0]
}

func meanFor(sums map[models.Role]float64, counts map[models.Role]int, r models.Role) float64 {
	if counts[r] == 0 {
		return 0
	}
	return sums[r] / float64(counts[r])
}
