// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2024

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jgosmann/aoc/solvers"
)

// computerGraph is a dense undirected graph over the fixed universe of
// two-letter computer names.
type computerGraph struct {
	numVertices int
	adjacency   []bool
}

func newComputerGraph(numVertices int) *computerGraph {
	return &computerGraph{
		numVertices: numVertices,
		adjacency:   make([]bool, numVertices*numVertices),
	}
}

func (g *computerGraph) addEdge(from, to int) {
	g.adjacency[from*g.numVertices+to] = true
	g.adjacency[to*g.numVertices+from] = true
}

func (g *computerGraph) hasEdge(from, to int) bool {
	return g.adjacency[from*g.numVertices+to]
}

func computerIndex(computer string) int {
	return int(computer[0]-'a')*26 + int(computer[1]-'a')
}

func computerName(index int) string {
	return string([]byte{byte(index/26) + 'a', byte(index%26) + 'a'})
}

type day23Solver struct {
	graph *computerGraph
}

func NewDay23(input string) (solvers.Solver, error) {
	graph := newComputerGraph(26 * 26)
	for _, line := range strings.Split(input, "\n") {
		from, to, ok := strings.Cut(line, "-")
		if !ok {
			continue
		}
		graph.addEdge(
			computerIndex(strings.TrimSpace(from)),
			computerIndex(strings.TrimSpace(to)))
	}
	return &day23Solver{graph: graph}, nil
}

func (s *day23Solver) SolvePart1() (solvers.Solution, error) {
	tFirst, tLast := computerIndex("ta"), computerIndex("tz")
	count := 0
	// Triangles containing a t-computer, counted once each: the lowest
	// t-node anchors the triangle and the remaining nodes either precede
	// the t-range or follow the anchor.
	for node0 := tFirst; node0 <= tLast; node0++ {
		for node1 := 0; node1 < 26*26; node1++ {
			if node1 >= tFirst && node1 <= node0 {
				continue
			}
			for node2 := node1 + 1; node2 < 26*26; node2++ {
				if node2 >= tFirst && node2 <= node0 {
					continue
				}
				if s.graph.hasEdge(node0, node1) &&
					s.graph.hasEdge(node1, node2) &&
					s.graph.hasEdge(node2, node0) {
					count++
				}
			}
		}
	}
	return solvers.WithDescription("Part 1", strconv.Itoa(count)), nil
}

func (s *day23Solver) SolvePart2() (solvers.MaybeSolution, error) {
	var largestClique []int
	for seedNode := 0; seedNode < 26*26; seedNode++ {
		clique := []int{seedNode}
		for node := seedNode + 1; node < 26*26; node++ {
			connected := true
			for _, cliqueNode := range clique {
				if !s.graph.hasEdge(cliqueNode, node) {
					connected = false
					break
				}
			}
			if connected {
				clique = append(clique, node)
			}
		}
		if len(clique) > len(largestClique) {
			largestClique = clique
		}
	}

	nodeNames := make([]string, len(largestClique))
	for i, node := range largestClique {
		nodeNames[i] = computerName(node)
	}
	sort.Strings(nodeNames)
	return solvers.Present(
		solvers.WithDescription("Part 2", strings.Join(nodeNames, ","))), nil
}
