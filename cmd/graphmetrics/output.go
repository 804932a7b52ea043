package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dd0wney/graphmetrics/pkg/algorithms"
)

// writeScores writes one row per node: "node,<metric>" header then
// "id,score" with six decimals, the shape the plotting pipeline expects.
func writeScores(dir, metric string, scores []float64) error {
	f, w, err := createOutput(dir, metric+".csv")
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(w, "node,%s\n", metric)
	for id, score := range scores {
		fmt.Fprintf(w, "%d,%.6f\n", id, score)
	}
	return w.Flush()
}

// writeEdgeScores writes canonical edges sorted by endpoint pair.
func writeEdgeScores(dir, metric string, scores map[algorithms.EdgeKey]float64) error {
	f, w, err := createOutput(dir, metric+".csv")
	if err != nil {
		return err
	}
	defer f.Close()

	keys := make([]algorithms.EdgeKey, 0, len(scores))
	for key := range scores {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })

	fmt.Fprintf(w, "source,target,%s\n", metric)
	for _, key := range keys {
		fmt.Fprintf(w, "%d,%d,%.6f\n", key.U, key.V, scores[key])
	}
	return w.Flush()
}

// writePartition writes one line per community, members space-separated.
func writePartition(dir, name string, partition algorithms.Partition) error {
	f, w, err := createOutput(dir, name+".txt")
	if err != nil {
		return err
	}
	defer f.Close()

	for _, community := range partition {
		for i, node := range community {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprintf(w, "%d", node)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func createOutput(dir, name string) (*os.File, *bufio.Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, bufio.NewWriter(f), nil
}
