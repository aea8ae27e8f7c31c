package debate

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/agora-labs/agora/pkg/models"
)

// buildSnapshot compresses a closed round into the post-round context state:
// each debater's current stance head line, the dominant terms still in play,
// and per-role momentum relative to the previous round.
func buildSnapshot(roundIndex int, turns []models.Turn, previous []models.Turn, now time.Time) models.ContextSnapshot {
	snap := models.ContextSnapshot{
		Round:     roundIndex,
		Stances:   make(map[models.Role]string),
		Momentum:  make(map[models.Role]float64),
		CreatedAt: now,
	}

	for _, t := range turns {
		snap.Stances[t.Role] = headLine(t.Content)
	}

	prevStrength := roleStrengths(previous)
	for role, cur := range roleStrengths(turns) {
		snap.Momentum[role] = cur - prevStrength[role]
	}

	snap.ActiveIssues = topTerms(turns, 5)
	snap.Summary = fmt.Sprintf("round %d: %d turns, issues in play: %s",
		roundIndex, len(turns), strings.Join(snap.ActiveIssues, ", "))
	return snap
}

func roleStrengths(turns []models.Turn) map[models.Role]float64 {
	sums := make(map[models.Role]float64)
	counts := make(map[models.Role]int)
	for _, t := range turns {
		if t.Argument == nil {
			continue
		}
		sums[t.Role] += t.Argument.Strength
		counts[t.Role]++
	}
	out := make(map[models.Role]float64, len(sums))
	for role, sum := range sums {
		out[role] = sum / float64(counts[role])
	}
	return out
}

var issueWordPattern = regexp.MustCompile(`[a-z]{4,}`)

var issueStopwords = map[string]bool{
	"that": true, "this": true, "with": true, "have": true, "will": true,
	"would": true, "should": true, "could": true, "from": true, "they": true,
	"their": true, "there": true, "about": true, "which": true, "your": true,
	"because": true, "opponent": true, "argument": true, "point": true,
}

// topTerms extracts the n most frequent substantive words across the turns,
// most frequent first, ties alphabetical.
func topTerms(turns []models.Turn, n int) []string {
	freq := make(map[string]int)
	for _, t := range turns {
		for _, w := range issueWordPattern.FindAllString(strings.ToLower(t.Content), -1) {
			if !issueStopwords[w] {
				freq[w]++
			}
		}
	}
	terms := make([]string, 0, len(freq))
	for w := range freq {
		terms = append(terms, w)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > n {
		terms = terms[:n]
	}
	return terms
}
