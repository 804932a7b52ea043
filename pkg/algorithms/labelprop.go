package algorithms

import (
	"math/rand"
	"sort"

	"github.com/dd0wney/graphmetrics/pkg/graph"
)

// LabelPropagation detects communities by repeated label adoption: every node
// takes the most frequent label among its neighbors until a full sweep
// changes nothing or maxIterations sweeps have run. Sweep order is shuffled
// by a seeded generator and frequency ties break toward the smallest label,
// so a given (graph, seed) pair always yields the same partition.
func LabelPropagation(g *graph.Graph, maxIterations int, seed int64) (Partition, error) {
	n := g.NumNodes()
	if n == 0 {
		return nil, graph.ErrEmptyGraph
	}
	if maxIterations <= 0 {
		maxIterations = 100
	}

	adj := g.Adjacency()
	labels := make([]int, n)
	order := make([]int, n)
	for i := 0; i < n; i++ {
		labels[i] = i
		order[i] = i
	}

	rng := rand.New(rand.NewSource(seed))

	for iter := 0; iter < maxIterations; iter++ {
		rng.Shuffle(n, func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})

		changed := false
		for _, u := range order {
			if len(adj[u]) == 0 {
				continue
			}

			counts := make(map[int]int, len(adj[u]))
			for _, v := range adj[u] {
				counts[labels[v]]++
			}

			best := labels[u]
			bestCount := 0
			for label, count := range counts {
				if count > bestCount || (count == bestCount && label < best) {
					best = label
					bestCount = count
				}
			}

			if labels[u] != best {
				labels[u] = best
				changed = true
			}
		}

		if !changed {
			break
		}
	}

	return partitionFromLabels(labels), nil
}

// partitionFromLabels groups nodes by label into a Partition ordered by
// smallest member.
func partitionFromLabels(labels []int) Partition {
	groups := make(map[int][]int)
	for u, label := range labels {
		groups[label] = append(groups[label], u)
	}

	partition := make(Partition, 0, len(groups))
	for _, members := range groups {
		sort.Ints(members)
		partition = append(partition, members)
	}
	sort.Slice(partition, func(i, j int) bool {
		return partition[i][0] < partition[j][0]
	})
	return partition
}
