// Package ranking holds the funding-progress math and the funding-gap
// recommendation heuristic.
package ranking

import (
	"math"
	"sort"

	"github.com/projexi/projexi/pkg/models"
)

// Progress returns the funded percentage, capped at 100. The result is
// undefined (NaN or Inf) when goal is zero; callers that need a floor use
// Score instead.
func Progress(received, goal float64) float64 {
	return math.Min(100, received/goal*100)
}

// Score is the recommendation heuristic: the remaining funding gap as a
// fraction of the goal, floored at 1 to avoid division by zero. Higher
// means less funded.
func Score(received, goal float64) float64 {
	return 1 - received/math.Max(1, goal)
}

// ScoredIdea is an idea annotated with its recommendation score.
type ScoredIdea struct {
	models.Idea
	Score float64 `json:"score"`
}

// Rank scores the ideas and sorts them descending by score. The sort is
// stable: equal scores keep their input order.
func Rank(ideas []models.Idea) []ScoredIdea {
	out := make([]ScoredIdea, 0, len(ideas))
	for _, i := range ideas {
		out = append(out, ScoredIdea{Idea: i, Score: Score(i.FundingReceived, i.FundingGoal)})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Score > out[b].Score
	})
	return out
}
