package analysis

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/agora-labs/agora/pkg/provider"
)

// assistOutputSchema instructs the assist model to end its reply with the
// three component scores, one per line, so extraction stays mechanical.
const assistOutputSchema = `End your response with exactly three lines, each a score between 0.0 and 1.0:
STRUCTURE: <score>
EVIDENCE: <score>
LOGIC: <score>`

const assistSystemPrompt = `You evaluate a single debate utterance. Score three dimensions:
structure (clear premises leading to a conclusion), evidence (presence and
quality of supporting material), logic (absence of fallacious reasoning).`

const assistReminderPrompt = `Your previous reply did not contain parseable scores. ` + assistOutputSchema

type assistScores struct {
	structure float64
	evidence  float64
	logic     float64
}

var (
	structureRegex = regexp.MustCompile(`(?mi)^\s*STRUCTURE:\s*([01](?:\.\d+)?)\s*$`)
	evidenceRegex  = regexp.MustCompile(`(?mi)^\s*EVIDENCE:\s*([01](?:\.\d+)?)\s*$`)
	logicRegex     = regexp.MustCompile(`(?mi)^\s*LOGIC:\s*([01](?:\.\d+)?)\s*$`)
)

// refineScores asks the assist model to score the content, re-prompting a
// bounded number of times when the reply lacks parseable scores. The output
// depends on the model's context window, not on elapsed time, so the
// retries re-prompt immediately rather than backing off.
func (a *Analyzer) refineScores(ctx context.Context, sessionID, content string) (assistScores, error) {
	messages := []provider.Message{
		{Role: "system", Content: assistSystemPrompt},
		{Role: "user", Content: content + "\n\n" + assistOutputSchema},
	}

	resp, err := a.assist.Invoke(ctx, sessionID, provider.Request{
		Model:    a.cfg.AssistModel,
		Messages: messages,
	})
	if err != nil {
		return assistScores{}, fmt.Errorf("assist call failed: %w", err)
	}

	scores, err := extractScores(resp.Text)
	for attempt := 0; err != nil && attempt < a.cfg.AssistExtractionRetries; attempt++ {
		messages = append(messages,
			provider.Message{Role: "assistant", Content: resp.Text},
			provider.Message{Role: "user", Content: assistReminderPrompt},
		)
		resp, err = a.assist.Invoke(ctx, sessionID, provider.Request{
			Model:    a.cfg.AssistModel,
			Messages: messages,
		})
		if err != nil {
			return assistScores{}, fmt.Errorf("assist extraction retry failed: %w", err)
		}
		scores, err = extractScores(resp.Text)
	}
	if err != nil {
		return assistScores{}, fmt.Errorf("failed to extract scores after retries: %w", err)
	}
	return scores, nil
}

func extractScores(text string) (assistScores, error) {
	var s assistScores
	var err error
	if s.structure, err = extractOne(structureRegex, text, "structure"); err != nil {
		return s, err
	}
	if s.evidence, err = extractOne(evidenceRegex, text, "evidence"); err != nil {
		return s, err
	}
	s.logic, err = extractOne(logicRegex, text, "logic")
	return s, err
}

func extractOne(re *regexp.Regexp, text, name string) (float64, error) {
	match := re.FindStringSubmatch(text)
	if match == nil {
		return 0, fmt.Errorf("no %s score found in reply", name)
	}
	v, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s score %q: %w", name, match[1], err)
	}
	return clamp01(v), nil
}
