package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agora-labs/agora/pkg/models"
)

// perspectiveKeywords drives the keyword-density component of the
// perspectives that are not directly backed by analyzer scores.
var perspectiveKeywords = map[models.Perspective][]string{
	models.PerspectiveEthical:   {"ethical", "moral", "fair", "right", "wrong", "justice"},
	models.PerspectivePractical: {"cost", "implement", "practical", "feasible", "deploy", "operate"},
	models.PerspectiveEmotional: {"feel", "fear", "hope", "trust", "worry", "confidence"},
	models.PerspectiveCultural:  {"culture", "society", "community", "tradition", "norm"},
	models.PerspectiveLegal:     {"law", "legal", "regulation", "liability", "compliance", "contract"},
}

// buildJudgment cross-evaluates the debate along the eight perspectives and
// screens for cognitive biases in the judge's verdict.
func buildJudgment(turns []models.Turn) (*models.Judgment, error) {
	var judgeTurn *models.Turn
	byRole := make(map[models.Role][]models.Turn)
	for i, t := range turns {
		if t.Role == models.RoleJudge {
			judgeTurn = &turns[i]
			continue
		}
		if t.Role.IsDebater() {
			byRole[t.Role] = append(byRole[t.Role], t)
		}
	}
	if judgeTurn == nil {
		return nil, errors.New("no judge verdict to evaluate")
	}
	if len(byRole) == 0 {
		return nil, errors.New("no debater turns to evaluate")
	}

	roles := make([]models.Role, 0, len(byRole))
	for r := range byRole {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	scores := make(map[models.Perspective]map[models.Role]float64, len(models.Perspectives))
	for _, p := range models.Perspectives {
		scores[p] = make(map[models.Role]float64, len(roles))
		for _, r := range roles {
			scores[p][r] = perspectiveScore(p, byRole[r])
		}
	}

	totals := make(map[models.Role]float64, len(roles))
	for _, p := range models.Perspectives {
		for _, r := range roles {
			totals[r] += scores[p][r]
		}
	}
	for _, r := range roles {
		totals[r] /= float64(len(models.Perspectives))
	}

	winner, runnerUp := roles[0], roles[0]
	for _, r := range roles {
		if totals[r] > totals[winner] {
			winner = r
		}
	}
	for _, r := range roles {
		if r != winner && (runnerUp == winner || totals[r] > totals[runnerUp]) {
			runnerUp = r
		}
	}
	margin := totals[winner] - totals[runnerUp]
	confidence := 0.5 + margin
	if confidence > 1 {
		confidence = 1
	}

	return &models.Judgment{
		PerspectiveScores: scores,
		Biases:            detectBiases(*judgeTurn, byRole, winner),
		Winner:            winner,
		Confidence:        confidence,
		Margin:            margin,
		Summary: fmt.Sprintf("%s prevails across %d perspectives with margin %.2f",
			winner, len(models.Perspectives), margin),
	}, nil
}

// perspectiveScore rates one debater on one dimension. The logical, factual,
// and rhetorical perspectives come straight from the analyzer components;
// the rest blend overall strength with keyword engagement.
func perspectiveScore(p models.Perspective, turns []models.Turn) float64 {
	if len(turns) == 0 {
		return 0
	}
	var logic, evidence, structure, strength float64
	scored := 0
	for _, t := range turns {
		if t.Argument == nil {
			continue
		}
		logic += t.Argument.LogicScore
		evidence += t.Argument.EvidenceScore
		structure += t.Argument.StructureScore
		strength += t.Argument.Strength
		scored++
	}
	if scored == 0 {
		return 0
	}
	n := float64(scored)

	switch p {
	case models.PerspectiveLogical:
		return logic / n
	case models.PerspectiveFactual:
		return evidence / n
	case models.PerspectiveRhetorical:
		return structure / n
	default:
		return 0.7*(strength/n) + 0.3*keywordDensity(turns, perspectiveKeywords[p])
	}
}

// keywordDensity is the fraction of turns that engage any of the keywords.
func keywordDensity(turns []models.Turn, keywords []string) float64 {
	if len(turns) == 0 || len(keywords) == 0 {
		return 0
	}
	hits := 0
	for _, t := range turns {
		lower := strings.ToLower(t.Content)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(turns))
}

// detectBiases screens the judge's verdict against the eight bias types.
// Each check is a cheap textual heuristic; a finding carries the excerpt
// that triggered it.
func detectBiases(judge models.Turn, byRole map[models.Role][]models.Turn, winner models.Role) []models.BiasFinding {
	var findings []models.BiasFinding
	verdict := strings.ToLower(judge.Content)

	add := func(t models.BiasType, sev models.FallacySeverity, evidence string) {
		findings = append(findings, models.BiasFinding{Type: t, Severity: sev, Evidence: evidence})
	}

	// Confirmation: the verdict's vocabulary overlaps the winner's side far
	// more than the others'.
	verdictTerms := termSet(judge.Content)
	winnerOverlap, otherOverlap := 0, 0
	for role, turns := range byRole {
		for _, t := range turns {
			for w := range termSet(t.Content) {
				if verdictTerms[w] {
					if role == winner {
						winnerOverlap++
					} else {
						otherOverlap++
					}
				}
			}
		}
	}
	if winnerOverlap > 3*otherOverlap && winnerOverlap > 5 {
		add(models.BiasConfirmation, models.SeverityMedium,
			"verdict vocabulary tracks the winning side almost exclusively")
	}

	// Recency: the verdict cites only closing material.
	if strings.Contains(verdict, "closing") && !strings.Contains(verdict, "opening") {
		add(models.BiasRecency, models.SeverityLow,
			"verdict references closing statements but not opening arguments")
	}

	// Anchoring: the verdict leans on the very first position stated.
	if strings.Contains(verdict, "first argument") || strings.Contains(verdict, "initial position") {
		add(models.BiasAnchoring, models.SeverityLow,
			"verdict anchors on the initially stated position")
	}

	// Availability: vivid singular examples outweigh aggregates.
	if strings.Contains(verdict, "memorable") || strings.Contains(verdict, "striking example") {
		add(models.BiasAvailability, models.SeverityLow,
			"verdict privileges a vivid example over aggregate evidence")
	}

	// Representativeness: a single case generalised to the class.
	if strings.Contains(verdict, "typical case") || strings.Contains(verdict, "just like") {
		add(models.BiasRepresentativeness, models.SeverityLow,
			"verdict generalises from a single representative case")
	}

	// Authority: credentials doing the work of argument.
	if strings.Contains(verdict, "expert") || strings.Contains(verdict, "authority") {
		add(models.BiasAuthority, models.SeverityLow,
			"verdict defers to credentials rather than the argument")
	}

	// Cultural and gender biases: identity-keyed wording in the verdict.
	for _, kw := range []string{"western", "eastern", "foreign culture"} {
		if strings.Contains(verdict, kw) {
			add(models.BiasCultural, models.SeverityMedium,
				fmt.Sprintf("verdict keys on cultural framing %q", kw))
			break
		}
	}
	for _, kw := range []string{" he obviously", " she obviously", "for a woman", "for a man"} {
		if strings.Contains(verdict, kw) {
			add(models.BiasGender, models.SeverityHigh,
				fmt.Sprintf("verdict keys on gendered framing %q", strings.TrimSpace(kw)))
			break
		}
	}
	return findings
}
