package analytics

import (
	"errors"
	"regexp"
	"sort"
	"strings"

	"github.com/agora-labs/agora/pkg/models"
)

// maxChainsReported bounds the strongest-chains list.
const maxChainsReported = 5

// sharedTermThreshold is how many substantive terms two turns must share
// before a textual reference edge is drawn.
const sharedTermThreshold = 3

var replyMarkers = []string{
	"my opponent", "you said", "you claim", "you argue", "your point",
	"that argument", "in response", "as stated", "to rebut", "you asked",
}

// buildChainGraph derives the argument-reference DAG over turn indices.
// Edges point forward in time: (i → j) means turn j refers to or rebuts
// turn i. Acyclicity is structural, a turn can only reference earlier turns.
func buildChainGraph(turns []models.Turn) (*models.ChainGraph, error) {
	if len(turns) == 0 {
		return nil, errors.New("no turns to analyse")
	}

	graph := &models.ChainGraph{}
	terms := make([]map[string]bool, len(turns))
	for i, t := range turns {
		terms[i] = termSet(t.Content)
	}

	linked := make(map[int]bool)
	for j, t := range turns {
		if !t.Role.IsDebater() {
			continue
		}
		for i := j - 1; i >= 0; i-- {
			prev := turns[i]
			if prev.Role == t.Role || !prev.Role.IsDebater() {
				continue
			}
			if refersTo(t, prev, terms[j], terms[i]) {
				graph.Edges = append(graph.Edges, models.ChainEdge{From: prev.Index, To: t.Index})
				linked[prev.Index] = true
				linked[t.Index] = true
			}
		}
	}

	for _, t := range turns {
		if t.Role.IsDebater() && !linked[t.Index] {
			graph.Isolated = append(graph.Isolated, t.Index)
		}
	}

	graph.Chains = strongestChains(turns, graph.Edges)
	return graph, nil
}

// refersTo decides whether cur rebuts or references prev: either an explicit
// reply marker directed at the immediately opposing turn, or a substantial
// shared-vocabulary overlap.
func refersTo(cur, prev models.Turn, curTerms, prevTerms map[string]bool) bool {
	shared := 0
	for w := range curTerms {
		if prevTerms[w] {
			shared++
		}
	}
	if shared >= sharedTermThreshold {
		return true
	}
	if cur.Index == prev.Index+1 {
		lower := strings.ToLower(cur.Content)
		for _, m := range replyMarkers {
			if strings.Contains(lower, m) {
				return true
			}
		}
	}
	return false
}

// strongestChains walks every root-to-leaf path and keeps the top paths by
// cumulative strength × depth.
func strongestChains(turns []models.Turn, edges []models.ChainEdge) []models.ArgumentChain {
	next := make(map[int][]int)
	hasParent := make(map[int]bool)
	for _, e := range edges {
		next[e.From] = append(next[e.From], e.To)
		hasParent[e.To] = true
	}
	strength := make(map[int]float64, len(turns))
	for _, t := range turns {
		if t.Argument != nil {
			strength[t.Index] = t.Argument.Strength
		}
	}

	var chains []models.ArgumentChain
	var walk func(path []int, sum float64, node int)
	walk = func(path []int, sum float64, node int) {
		path = append(path, node)
		sum += strength[node]
		if len(next[node]) == 0 {
			if len(path) > 1 {
				chains = append(chains, models.ArgumentChain{
					Turns: append([]int(nil), path...),
					Score: sum * float64(len(path)),
				})
			}
			return
		}
		for _, child := range next[node] {
			walk(path, sum, child)
		}
	}
	for _, e := range edges {
		if !hasParent[e.From] {
			walk(nil, 0, e.From)
		}
	}

	sort.Slice(chains, func(i, j int) bool {
		if chains[i].Score != chains[j].Score {
			return chains[i].Score > chains[j].Score
		}
		return chains[i].Turns[0] < chains[j].Turns[0]
	})
	if len(chains) > maxChainsReported {
		chains = chains[:maxChainsReported]
	}
	return chains
}

var chainWordPattern = regexp.MustCompile(`[a-z]{5,}`)

var chainStopwords = map[string]bool{
	"about": true, "after": true, "against": true, "argue": true,
	"argument": true, "because": true, "before": true, "between": true,
	"could": true, "every": true, "opponent": true, "other": true,
	"point": true, "should": true, "their": true, "there": true,
	"these": true, "thing": true, "think": true, "those": true,
	"where": true, "which": true, "while": true, "would": true,
}

func termSet(content string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range chainWordPattern.FindAllString(strings.ToLower(content), -1) {
		if !chainStopwords[w] {
			set[w] = true
		}
	}
	return set
}
