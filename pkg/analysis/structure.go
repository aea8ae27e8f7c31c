package analysis

import (
	"regexp"
	"strings"

	"github.com/agora-labs/agora/pkg/models"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+\s+|[.!?]+$`)

var premiseMarkers = []string{
	"because", "since", "given that", "as shown by", "considering that",
	"due to", "the evidence shows", "studies show", "research indicates",
}

var conclusionMarkers = []string{
	"therefore", "thus", "hence", "consequently", "in conclusion",
	"it follows that", "this means", "we must conclude", "so we should",
}

var connectives = []string{
	"furthermore", "moreover", "however", "on the other hand",
	"in contrast", "additionally", "first", "second", "finally",
}

// extractStructure decomposes content into premises and a conclusion using
// marker phrases, and scores structural completeness in [0, 1].
func extractStructure(content string) (models.ArgumentStructure, float64) {
	sentences := splitSentences(content)
	lower := strings.ToLower(content)

	var s models.ArgumentStructure
	for _, sent := range sentences {
		ls := strings.ToLower(sent)
		switch {
		case containsAny(ls, conclusionMarkers):
			if s.Conclusion == "" {
				s.Conclusion = sent
			}
		case containsAny(ls, premiseMarkers):
			s.Premises = append(s.Premises, sent)
		}
	}
	// Without an explicit marker, the last sentence stands as conclusion
	// when premises exist.
	if s.Conclusion == "" && len(s.Premises) > 0 && len(sentences) > 0 {
		s.Conclusion = sentences[len(sentences)-1]
	}
	if len(s.Premises) > 0 && s.Conclusion != "" {
		s.Reasoning = "premises support conclusion"
		s.StructureTag = "complete"
	} else {
		s.StructureTag = "partial"
	}

	score := 0.0
	if s.Conclusion != "" {
		score += 0.4
	}
	np := float64(len(s.Premises))
	if np > 2 {
		np = 2
	}
	score += 0.4 * (np / 2)
	if containsAny(lower, connectives) {
		score += 0.2
	}
	return s, clamp01(score)
}

func splitSentences(content string) []string {
	raw := sentenceSplit.Split(strings.TrimSpace(content), -1)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
