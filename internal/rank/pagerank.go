// Package rank scores graph nodes by weighted PageRank (eigenvector centrality
// with uniform teleportation).
package rank

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/gcbaptista/go-title-engine/internal/errors"
	"github.com/gcbaptista/go-title-engine/internal/graph"
)

// Config holds configuration for PageRank computation
type Config struct {
	// DampingFactor is the probability of following an edge rather than teleporting (default: 0.85)
	DampingFactor float64 `json:"damping" yaml:"damping" mapstructure:"damping"`

	// Tolerance is the convergence threshold on the largest per-node change (default: 1e-6)
	Tolerance float64 `json:"tolerance" yaml:"tolerance" mapstructure:"tolerance"`

	// MaxIterations caps the number of power iterations (default: 100)
	MaxIterations int `json:"max_iterations" yaml:"max_iterations" mapstructure:"max_iterations"`
}

// DefaultConfig returns the standard PageRank configuration
func DefaultConfig() Config {
	return Config{
		DampingFactor: 0.85,
		Tolerance:     1e-6,
		MaxIterations: 100,
	}
}

// Validate rejects configurations the power iteration cannot run with.
func (c Config) Validate() error {
	if c.DampingFactor <= 0 || c.DampingFactor >= 1 {
		return errors.NewValidationError("damping", fmt.Sprintf("must be in (0, 1), got %v", c.DampingFactor))
	}
	if c.Tolerance <= 0 {
		return errors.NewValidationError("tolerance", fmt.Sprintf("must be positive, got %v", c.Tolerance))
	}
	if c.MaxIterations <= 0 {
		return errors.NewValidationError("max_iterations", fmt.Sprintf("must be positive, got %d", c.MaxIterations))
	}
	return nil
}

// ScoreMap maps a node label to its importance score.
type ScoreMap map[string]float64

// Scored pairs a label with its score.
type Scored struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Result holds the results of PageRank computation.
// It is created once per ranking run and never mutated afterwards.
type Result struct {
	// Scores maps node label to PageRank score; scores sum to 1
	Scores ScoreMap

	// Ranked contains labels sorted by score, descending; exact ties keep node order
	Ranked []Scored

	// Iterations is the number of power iterations run
	Iterations int

	// Converged indicates whether the tolerance was reached before MaxIterations
	Converged bool
}

// Top returns the labels of the k highest-ranked nodes (all of them if k exceeds the node count).
func (r *Result) Top(k int) []string {
	if k > len(r.Ranked) {
		k = len(r.Ranked)
	}
	if k < 0 {
		k = 0
	}
	labels := make([]string, k)
	for i := 0; i < k; i++ {
		labels[i] = r.Ranked[i].Label
	}
	return labels
}

// Best returns the highest-ranked label.
func (r *Result) Best() (string, bool) {
	if len(r.Ranked) == 0 {
		return "", false
	}
	return r.Ranked[0].Label, true
}

// PageRank runs weighted power iteration over g.
//
// Each step a node receives (1-d)/n by teleportation plus d times the score every neighbour
// passes along, split in proportion to edge weight over the neighbour's total edge weight.
// Nodes with no outgoing weight spread their score uniformly. Iteration stops once the largest
// per-node change drops below cfg.Tolerance or after cfg.MaxIterations steps.
func PageRank(g *graph.Graph, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := g.Len()
	if n == 0 {
		return &Result{Scores: ScoreMap{}, Ranked: []Scored{}, Converged: true}, nil
	}

	neighbors, weights, outWeight := adjacency(g)

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	d := cfg.DampingFactor
	teleport := (1.0 - d) / float64(n)
	next := make([]float64, n)
	converged := false
	iterations := 0

	for iterations < cfg.MaxIterations {
		iterations++

		dangling := 0.0
		for u := 0; u < n; u++ {
			if outWeight[u] == 0 {
				dangling += scores[u]
			}
		}
		base := teleport + d*dangling/float64(n)
		for v := range next {
			next[v] = base
		}

		for u := 0; u < n; u++ {
			if outWeight[u] == 0 {
				continue
			}
			share := d * scores[u] / outWeight[u]
			for k, v := range neighbors[u] {
				next[v] += share * weights[u][k]
			}
		}

		maxDiff := floats.Distance(next, scores, math.Inf(1))
		scores, next = next, scores
		if maxDiff < cfg.Tolerance {
			converged = true
			break
		}
	}

	if sum := floats.Sum(scores); sum > 0 {
		floats.Scale(1/sum, scores)
	}

	result := &Result{
		Scores:     make(ScoreMap, n),
		Ranked:     make([]Scored, n),
		Iterations: iterations,
		Converged:  converged,
	}
	for i, label := range g.Labels() {
		result.Scores[label] = scores[i]
		result.Ranked[i] = Scored{Label: label, Score: scores[i]}
	}
	sort.SliceStable(result.Ranked, func(i, j int) bool {
		return result.Ranked[i].Score > result.Ranked[j].Score
	})

	return result, nil
}

// adjacency flattens the gonum graph into per-node neighbour and weight slices indexed by node ID.
func adjacency(g *graph.Graph) (neighbors [][]int, weights [][]float64, outWeight []float64) {
	n := g.Len()
	under := g.Underlying()

	neighbors = make([][]int, n)
	weights = make([][]float64, n)
	outWeight = make([]float64, n)

	// neighbours in ID order
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			edge := under.WeightedEdge(int64(u), int64(v))
			if edge == nil {
				continue
			}
			neighbors[u] = append(neighbors[u], v)
			weights[u] = append(weights[u], edge.Weight())
			outWeight[u] += edge.Weight()
		}
	}
	return neighbors, weights, outWeight
}
