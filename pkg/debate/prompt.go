package debate

import (
	"fmt"
	"strings"

	"github.com/agora-labs/agora/pkg/models"
	"github.com/agora-labs/agora/pkg/provider"
)

// Structural prompt roles only: each phase carries one instruction template
// for debaters and one for the judge. Wording beyond structure is not part
// of the contract.
var debaterInstructions = map[models.Phase]string{
	models.PhaseOpening:          "Present your opening statement on the topic. State your position and your strongest supporting points. Do not address other participants yet.",
	models.PhaseFirstRound:       "Present your first full argument. Support your position with evidence and reasoning.",
	models.PhaseRebuttal:         "Rebut the most recent opposing arguments directly. Reference the specific claims you are answering.",
	models.PhaseCrossExamination: "This is cross-examination. If you are asked a question, answer it directly; otherwise pose one probing question to your opponent about a weakness in their argument.",
	models.PhaseClosing:          "Deliver your closing statement. Summarise your strongest points and why your position prevails.",
}

const judgeInstruction = "You are the judge. Review the full debate and deliver a verdict: name the winner, justify the decision against the arguments made, and note the decisive exchanges."

// promptInput is everything prompt composition needs from the session.
type promptInput struct {
	Topic        string
	Reference    string
	Role         models.Role
	Phase        models.Phase
	Turns        []models.Turn
	TokenCeiling int
}

// composeMessages builds the chat messages for one turn: a system message
// carrying topic, reference material, and the role's phase instruction, and
// a user message carrying the transcript so far.
func composeMessages(in promptInput) []provider.Message {
	var system strings.Builder
	fmt.Fprintf(&system, "You are participating in a structured debate as %s.\n", in.Role)
	fmt.Fprintf(&system, "Topic: %s\n", in.Topic)
	if in.Reference != "" {
		fmt.Fprintf(&system, "Reference material:\n%s\n", in.Reference)
	}
	if in.Role == models.RoleJudge {
		system.WriteString(judgeInstruction)
	} else {
		system.WriteString(debaterInstructions[in.Phase])
	}

	var user strings.Builder
	if len(in.Turns) == 0 {
		user.WriteString("The debate has not started. You speak first.")
	} else {
		user.WriteString("Debate so far:\n\n")
		user.WriteString(formatTranscript(in.Turns, in.TokenCeiling))
		fmt.Fprintf(&user, "\nRespond now as %s.", in.Role)
	}

	return []provider.Message{
		{Role: "system", Content: system.String()},
		{Role: "user", Content: user.String()},
	}
}

// estimateTokens is the coarse 4-characters-per-token heuristic used only
// for transcript budgeting.
func estimateTokens(s string) int {
	return len(s) / 4
}

// headLineLimit bounds a compressed turn to roughly its opening sentence.
const headLineLimit = 160

// formatTranscript renders the turns oldest first. When the full rendering
// would exceed the token ceiling, the oldest turns are compressed to a head
// line; the most recent turns always appear in full.
func formatTranscript(turns []models.Turn, ceiling int) string {
	full := make([]string, len(turns))
	total := 0
	for i, t := range turns {
		full[i] = fmt.Sprintf("[%s | %s]: %s", t.Role, t.Phase, t.Content)
		total += estimateTokens(full[i])
	}

	// Walk from the oldest turn, compressing until the estimate fits.
	if ceiling > 0 {
		for i := 0; i < len(turns)-1 && total > ceiling; i++ {
			compressed := fmt.Sprintf("[%s | %s, abridged]: %s",
				turns[i].Role, turns[i].Phase, headLine(turns[i].Content))
			total += estimateTokens(compressed) - estimateTokens(full[i])
			full[i] = compressed
		}
	}
	return strings.Join(full, "\n\n")
}

// headLine returns the first line of content, truncated.
func headLine(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		content = content[:i]
	}
	if len(content) > headLineLimit {
		content = content[:headLineLimit] + "…"
	}
	return content
}
