package graph

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/snappy"
)

// ReadEdgeList builds a Graph from a line-oriented edge stream. Each line is
// "u v" with an optional trailing weight column that the unweighted
// algorithms ignore. Empty lines and lines starting with '#' or '%' are
// comments. Lines that do not parse as two non-negative integers are skipped
// and counted, never fatal. The only error condition is a failed read.
func ReadEdgeList(r io.Reader, mode Mode) (*Graph, error) {
	g := &Graph{mode: mode}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "%") {
			continue
		}

		u, v, err := parseEdge(line)
		if err != nil {
			g.skipped++
			continue
		}

		g.addEdge(u, v)
	}

	if err := scanner.Err(); err != nil {
		return nil, NewError("ReadEdgeList").Edge().Cause(err)
	}

	return g, nil
}

// LoadFile reads an edge list from disk. Files ending in ".snappy" or ".sz"
// are decompressed through a snappy stream reader.
func LoadFile(path string, mode Mode) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewError("LoadFile").File(path).Cause(err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".snappy") || strings.HasSuffix(path, ".sz") {
		r = snappy.NewReader(f)
	}

	return ReadEdgeList(r, mode)
}

// parseEdge extracts the endpoint ids from one edge line. Weight columns and
// any further tokens are ignored. The error classifies the rejection:
// ErrBadEdgeLine for lines that do not carry two integer ids, ErrNodeRange
// for negative ids.
func parseEdge(line string) (u, v int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrBadEdgeLine
	}

	u, uerr := strconv.Atoi(fields[0])
	v, verr := strconv.Atoi(fields[1])
	if uerr != nil || verr != nil {
		return 0, 0, ErrBadEdgeLine
	}
	if u < 0 || v < 0 {
		return 0, 0, ErrNodeRange
	}

	return u, v, nil
}

// addEdge inserts one accepted edge, growing the dense id range as needed.
func (g *Graph) addEdge(u, v int) {
	max := u
	if v > max {
		max = v
	}
	for len(g.adj) <= max {
		g.adj = append(g.adj, nil)
	}

	g.adj[u] = append(g.adj[u], v)
	if g.mode == Undirected {
		g.adj[v] = append(g.adj[v], u)
	}
	g.edges++
}
