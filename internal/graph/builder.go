// Package graph builds the complete, undirected, edit-distance weighted graphs
// that the importance ranker walks.
package graph

import (
	"fmt"

	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gcbaptista/go-title-engine/internal/distance"
	"github.com/gcbaptista/go-title-engine/internal/errors"
)

// Metric weights the edge between two node labels. It must be symmetric and non-negative.
type Metric func(a, b string) float64

// DefaultMetric weights edges by Levenshtein distance.
var DefaultMetric Metric = distance.Distance

// Graph is a complete undirected graph over unique string labels.
// Node IDs are dense: the i-th label passed to Build has ID i.
type Graph struct {
	g      *simple.WeightedUndirectedGraph
	labels []string
	ids    map[string]int64
}

// Build creates one node per label and one edge per unordered pair of labels, weighted by metric.
// A nil metric falls back to DefaultMetric. Building is O(n²) in the number of labels.
// Fewer than two labels yields an *errors.EmptyInputError; a repeated label is a validation error.
func Build(labels []string, metric Metric) (*Graph, error) {
	if len(labels) < 2 {
		return nil, errors.NewEmptyInputError(len(labels))
	}
	if metric == nil {
		metric = DefaultMetric
	}

	gr := &Graph{
		// self-weight 0, absent-weight 0: a missing edge contributes nothing when ranking
		g:      simple.NewWeightedUndirectedGraph(0, 0),
		labels: make([]string, len(labels)),
		ids:    make(map[string]int64, len(labels)),
	}
	copy(gr.labels, labels)

	for i, label := range gr.labels {
		if _, exists := gr.ids[label]; exists {
			return nil, errors.NewValidationError("labels", fmt.Sprintf("duplicate label '%s'", label))
		}
		gr.ids[label] = int64(i)
		gr.g.AddNode(simple.Node(i))
	}

	for i := 0; i < len(gr.labels); i++ {
		for j := i + 1; j < len(gr.labels); j++ {
			weight := metric(gr.labels[i], gr.labels[j])
			if weight < 0 {
				return nil, errors.NewValidationError("metric", fmt.Sprintf("negative weight %v between '%s' and '%s'", weight, gr.labels[i], gr.labels[j]))
			}
			gr.g.SetWeightedEdge(gr.g.NewWeightedEdge(simple.Node(i), simple.Node(j), weight))
		}
	}

	return gr, nil
}

// Len returns the number of nodes.
func (gr *Graph) Len() int {
	return len(gr.labels)
}

// Labels returns the node labels in node ID order.
func (gr *Graph) Labels() []string {
	labels := make([]string, len(gr.labels))
	copy(labels, gr.labels)
	return labels
}

// Label returns the label of the node with the given ID.
func (gr *Graph) Label(id int64) string {
	return gr.labels[id]
}

// ID returns the node ID of label.
func (gr *Graph) ID(label string) (int64, bool) {
	id, ok := gr.ids[label]
	return id, ok
}

// EdgeCount returns the number of undirected edges.
func (gr *Graph) EdgeCount() int {
	count := 0
	edges := gr.g.Edges()
	for edges.Next() {
		count++
	}
	return count
}

// Weight returns the weight of the edge between a and b.
// ok is false when either label is unknown, when a == b, or when no edge exists.
func (gr *Graph) Weight(a, b string) (float64, bool) {
	idA, okA := gr.ids[a]
	idB, okB := gr.ids[b]
	if !okA || !okB || idA == idB {
		return 0, false
	}
	edge := gr.g.WeightedEdge(idA, idB)
	if edge == nil {
		return 0, false
	}
	return edge.Weight(), true
}

// Underlying exposes the graph for gonum algorithms.
func (gr *Graph) Underlying() gonum.WeightedUndirected {
	return gr.g
}
