package analysis

import (
	"regexp"

	"github.com/agora-labs/agora/pkg/models"
)

type fallacyDetector struct {
	kind       models.FallacyType
	pattern    *regexp.Regexp
	severity   models.FallacySeverity
	correction string
}

var fallacyDetectors = []fallacyDetector{
	{
		models.FallacyAdHominem,
		regexp.MustCompile(`(?i)my opponent is (a |an )?(liar|fool|idiot|incompetent|dishonest)|you are (too|just) (ignorant|naive|biased)|attack.{0,20}person`),
		models.SeverityHigh,
		"address the argument rather than the person making it",
	},
	{
		models.FallacyStrawMan,
		regexp.MustCompile(`(?i)so you('re| are) (really )?saying|my opponent (claims|wants) (that )?we should (abolish|destroy|eliminate) everything`),
		models.SeverityMedium,
		"restate the opposing position as actually made before rebutting it",
	},
	{
		models.FallacyFalseDichotomy,
		regexp.MustCompile(`(?i)either we .+ or (we|everything)|only two (choices|options)|there is no (middle ground|third option)`),
		models.SeverityMedium,
		"acknowledge options beyond the two presented",
	},
	{
		models.FallacyAppealToAuthority,
		regexp.MustCompile(`(?i)(famous|celebrity|well-known) .{0,30}(says|believes|endorses)|must be true because .{0,30}said`),
		models.SeverityLow,
		"cite the underlying evidence, not only the authority's standing",
	},
	{
		models.FallacyAppealToEmotion,
		regexp.MustCompile(`(?i)think of the children|how would you feel|tragic|heartbreaking|terrifying consequences`),
		models.SeverityLow,
		"ground the claim in evidence rather than emotional weight",
	},
	{
		models.FallacySlipperySlope,
		regexp.MustCompile(`(?i)(will|would) (inevitably|eventually) lead to|next thing you know|before (long|you know it)|slippery slope|opens? the floodgates`),
		models.SeverityMedium,
		"justify each step of the causal chain, not only the endpoint",
	},
	{
		models.FallacyHastyGeneralization,
		regexp.MustCompile(`(?i)\b(all|every|no) (people|person|company|companies|case|cases) (is|are|do|does|will)\b|everyone knows|always fails?|never works?`),
		models.SeverityMedium,
		"qualify the claim to the cases the evidence actually covers",
	},
	{
		models.FallacyCircularReasoning,
		regexp.MustCompile(`(?i)because (it is|that's) (true|right|the rule)|by its very nature .{0,30}(proves|shows) itself`),
		models.SeverityHigh,
		"support the conclusion with premises independent of it",
	},
}

var severityPenalty = map[models.FallacySeverity]float64{
	models.SeverityLow:    0.10,
	models.SeverityMedium: 0.20,
	models.SeverityHigh:   0.35,
}

// detectFallacies scans content for the eight fallacy patterns and derives
// the logic score as 1 minus the accumulated severity penalty.
func detectFallacies(content string) ([]models.Fallacy, float64) {
	var found []models.Fallacy
	penalty := 0.0
	for _, d := range fallacyDetectors {
		loc := d.pattern.FindString(content)
		if loc == "" {
			continue
		}
		found = append(found, models.Fallacy{
			Type:       d.kind,
			Severity:   d.severity,
			Excerpt:    excerpt(loc),
			Correction: d.correction,
		})
		penalty += severityPenalty[d.severity]
	}
	return found, clamp01(1 - penalty)
}
