package analysis

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/agora-labs/agora/pkg/models"
)

// evidenceDetector pairs a pattern with the type it indicates and that
// type's baseline credibility.
type evidenceDetector struct {
	kind        models.EvidenceType
	pattern     *regexp.Regexp
	credibility float64
}

// Detectors are ordered: the first match classifies a sentence, so the
// more specific patterns come first.
var evidenceDetectors = []evidenceDetector{
	{models.EvidenceStatistical, regexp.MustCompile(`(?i)\d+(\.\d+)?\s*(%|percent)|statistics|survey of \d+|sample size`), 0.80},
	{models.EvidenceExpertOpinion, regexp.MustCompile(`(?i)according to (dr|prof|professor|expert)|experts? (say|agree|argue)|researchers (found|concluded)`), 0.75},
	{models.EvidenceDocumentary, regexp.MustCompile(`(?i)report(ed)? (by|in)|study published|official (document|record)|white paper|the study`), 0.70},
	{models.EvidenceHistorical, regexp.MustCompile(`(?i)\b(in|since|during) (19|20)\d{2}\b|historically|in the past|precedent`), 0.65},
	{models.EvidenceCaseStudy, regexp.MustCompile(`(?i)for (example|instance)|case (study|of)|consider the case|one company`), 0.60},
	{models.EvidenceLogical, regexp.MustCompile(`(?i)if .+ then|it follows|by definition|logically|necessarily`), 0.60},
	{models.EvidenceAnalogical, regexp.MustCompile(`(?i)\b(like|similar to|analogous|just as|akin to)\b`), 0.50},
}

var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// detectEvidence scans content sentence by sentence and scores the yield.
// An empty evidence list scores 0 by contract.
func detectEvidence(content string) ([]models.EvidenceItem, float64) {
	var items []models.EvidenceItem
	for _, sent := range splitSentences(content) {
		for _, d := range evidenceDetectors {
			if !d.pattern.MatchString(sent) {
				continue
			}
			items = append(items, models.EvidenceItem{
				Type:        d.kind,
				Excerpt:     excerpt(sent),
				Credibility: d.credibility,
				Relevance:   0.7,
				Recency:     recencyOf(sent),
			})
			break
		}
	}
	if len(items) == 0 {
		return nil, 0
	}

	sufficiency := float64(len(items)) / 3
	if sufficiency > 1 {
		sufficiency = 1
	}
	total := 0.0
	for i := range items {
		items[i].Sufficiency = sufficiency
		it := &items[i]
		total += 0.4*it.Credibility + 0.3*it.Relevance + 0.2*it.Sufficiency + 0.1*it.Recency
	}
	return items, clamp01(total / float64(len(items)))
}

// recencyOf scores how current a dated reference is; undated evidence is
// scored neutrally.
func recencyOf(sent string) float64 {
	match := yearPattern.FindString(sent)
	if match == "" {
		return 0.5
	}
	year, err := strconv.Atoi(match)
	if err != nil {
		return 0.5
	}
	age := time.Now().Year() - year
	switch {
	case age <= 2:
		return 1.0
	case age <= 5:
		return 0.8
	case age <= 15:
		return 0.5
	default:
		return 0.2
	}
}

func excerpt(sent string) string {
	const max = 120
	sent = strings.TrimSpace(sent)
	if len(sent) <= max {
		return sent
	}
	return sent[:max] + "..."
}
