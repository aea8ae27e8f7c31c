package analytics

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agora-labs/agora/pkg/models"
)

// maxDisagreementsReported bounds the disagreement list.
const maxDisagreementsReported = 6

// disagreementSignal maps keyword cues in the surrounding text to a
// disagreement type and the resolution shape that usually fits it.
type disagreementSignal struct {
	keywords   []string
	kind       models.DisagreementType
	resolution models.ResolutionType
	rationale  string
}

var disagreementSignals = []disagreementSignal{
	{[]string{"define", "definition", "means", "terminology"},
		models.DisagreementDefinitional, models.ResolutionSynthesis,
		"agree on a shared definition before arguing consequences"},
	{[]string{"method", "methodology", "measure", "approach", "sample"},
		models.DisagreementMethodological, models.ResolutionSequential,
		"settle the measurement question first, then revisit the claim"},
	{[]string{"should", "ought", "duty", "obligation"},
		models.DisagreementNormative, models.ResolutionConditional,
		"condition the obligation on the contested premise"},
	{[]string{"value", "moral", "ethical", "fair", "justice"},
		models.DisagreementValueBased, models.ResolutionCompromise,
		"trade off the competing values explicitly"},
	{[]string{"interpret", "interpretation", "reading", "implies"},
		models.DisagreementInterpretive, models.ResolutionAlternative,
		"test both readings against the source material"},
	{[]string{"data", "study", "percent", "evidence", "statistics"},
		models.DisagreementEmpirical, models.ResolutionSequential,
		"gather the missing data point both sides accept"},
}

// buildConsensus extracts common ground, typed disagreements, and the
// polarization index from the debaters' turns.
func buildConsensus(turns []models.Turn) (*models.ConsensusReport, error) {
	byRole := make(map[models.Role][]models.Turn)
	for _, t := range turns {
		if t.Role.IsDebater() {
			byRole[t.Role] = append(byRole[t.Role], t)
		}
	}
	if len(byRole) < 2 {
		return nil, errors.New("consensus analysis needs at least two debaters with turns")
	}

	roles := make([]models.Role, 0, len(byRole))
	for r := range byRole {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	vocab := make(map[models.Role]map[string]bool, len(roles))
	for _, r := range roles {
		set := make(map[string]bool)
		for _, t := range byRole[r] {
			for w := range termSet(t.Content) {
				set[w] = true
			}
		}
		vocab[r] = set
	}

	report := &models.ConsensusReport{
		CommonGround:  commonGround(roles, vocab),
		Disagreements: detectDisagreements(roles, byRole, vocab),
		Polarization:  polarization(roles, vocab),
	}
	return report, nil
}

// commonGround lists the substantive terms every debater engages with.
func commonGround(roles []models.Role, vocab map[models.Role]map[string]bool) []string {
	var shared []string
	for w := range vocab[roles[0]] {
		all := true
		for _, r := range roles[1:] {
			if !vocab[r][w] {
				all = false
				break
			}
		}
		if all {
			shared = append(shared, w)
		}
	}
	sort.Strings(shared)
	if len(shared) > 8 {
		shared = shared[:8]
	}
	out := make([]string, len(shared))
	for i, w := range shared {
		out[i] = fmt.Sprintf("all sides engage with %q", w)
	}
	return out
}

// detectDisagreements scans each signal's keywords across both sides and
// records a typed disagreement where the cue appears for more than one role.
func detectDisagreements(roles []models.Role, byRole map[models.Role][]models.Turn,
	vocab map[models.Role]map[string]bool) []models.Disagreement {

	lowered := make(map[models.Role]string, len(roles))
	for _, r := range roles {
		var b strings.Builder
		for _, t := range byRole[r] {
			b.WriteString(strings.ToLower(t.Content))
			b.WriteByte(' ')
		}
		lowered[r] = b.String()
	}

	var out []models.Disagreement
	for _, sig := range disagreementSignals {
		engaged := 0
		topic := ""
		for _, r := range roles {
			for _, kw := range sig.keywords {
				if strings.Contains(lowered[r], kw) {
					engaged++
					if topic == "" {
						topic = kw
					}
					break
				}
			}
		}
		if engaged < 2 {
			continue
		}
		positions := make(map[models.Role]string, len(roles))
		for _, r := range roles {
			ts := byRole[r]
			positions[r] = firstLine(ts[len(ts)-1].Content)
		}
		out = append(out, models.Disagreement{
			Type:       sig.kind,
			Topic:      topic,
			Positions:  positions,
			Resolution: sig.resolution,
			Rationale:  sig.rationale,
		})
		if len(out) == maxDisagreementsReported {
			break
		}
	}
	if len(out) == 0 {
		// No typed cue fired; the residual disagreement is factual.
		positions := make(map[models.Role]string, len(roles))
		for _, r := range roles {
			ts := byRole[r]
			positions[r] = firstLine(ts[len(ts)-1].Content)
		}
		out = append(out, models.Disagreement{
			Type:       models.DisagreementFactual,
			Topic:      "core claim",
			Positions:  positions,
			Resolution: models.ResolutionHybrid,
			Rationale:  "combine partial concessions from both positions",
		})
	}
	return out
}

// polarization is 1 minus the Jaccard overlap of the debaters' vocabularies:
// sides that talk past each other score high.
func polarization(roles []models.Role, vocab map[models.Role]map[string]bool) float64 {
	union := make(map[string]bool)
	for _, r := range roles {
		for w := range vocab[r] {
			union[w] = true
		}
	}
	if len(union) == 0 {
		return 0
	}
	shared := 0
	for w := range union {
		all := true
		for _, r := range roles {
			if !vocab[r][w] {
				all = false
				break
			}
		}
		if all {
			shared++
		}
	}
	return 1 - float64(shared)/float64(len(union))
}

func firstLine(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[:i]
	}
	if len(content) > 200 {
		content = content[:200] + "…"
	}
	return content
}
