// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2023

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jgosmann/aoc/solvers"
)

type wireEdge struct {
	from, to string
}

// determineCandidatesWithClusteringHeuristic shuffles nodes between two
// groups until each node has most of its edges inside its own group, then
// shortlists the edges crossing the groups as cut candidates. This prunes
// the brute-force triple search on large graphs.
func determineCandidatesWithClusteringHeuristic(graph map[string]map[string]struct{}) []wireEdge {
	nodes := sortedKeys(graph)
	groups := [2]map[string]struct{}{{}, {}}
	for i, node := range nodes {
		if i < len(nodes)/2 {
			groups[0][node] = struct{}{}
		} else {
			groups[1][node] = struct{}{}
		}
	}

	maxEdges := 0
	for _, edges := range graph {
		maxEdges = max(maxEdges, len(edges))
	}

	countIn := func(edges map[string]struct{}, group map[string]struct{}) int {
		count := 0
		for edge := range edges {
			if _, ok := group[edge]; ok {
				count++
			}
		}
		return count
	}

	threshold := 1
	for {
		settled := true
		for _, node := range nodes {
			edges := graph[node]
			if _, ok := groups[0][node]; ok {
				if len(edges)-countIn(edges, groups[1]) < min(threshold, len(edges)-1) &&
					len(groups[0]) > len(groups[1]) {
					delete(groups[0], node)
					groups[1][node] = struct{}{}
					settled = false
				}
			} else if _, ok := groups[1][node]; ok {
				if len(edges)-countIn(edges, groups[0]) < min(threshold, len(edges)-1) &&
					len(groups[0]) < len(groups[1]) {
					delete(groups[1], node)
					groups[0][node] = struct{}{}
					settled = false
				}
			}
		}
		if settled {
			if threshold > maxEdges {
				break
			}
			threshold++
		}
	}

	var candidates []wireEdge
	for node := range groups[0] {
		for edge := range graph[node] {
			if _, ok := groups[1][edge]; ok {
				candidates = append(candidates, wireEdge{from: node, to: edge})
				break
			}
		}
	}
	return candidates
}

func sortedKeys(graph map[string]map[string]struct{}) []string {
	keys := make([]string, 0, len(graph))
	for key := range graph {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// splitSizes removes the three given edges and BFS-checks whether the
// graph falls apart; on a split it returns the two component sizes.
func splitSizes(graph map[string]map[string]struct{}, start string, removals [3]wireEdge) (int, int, bool) {
	removed := func(a, b string) bool {
		for _, r := range removals {
			if (r.from == a && r.to == b) || (r.from == b && r.to == a) {
				return true
			}
		}
		return false
	}

	visited := map[string]struct{}{}
	queue := []string{start}
	for len(queue) > 0 {
		node := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if _, ok := visited[node]; ok {
			continue
		}
		visited[node] = struct{}{}
		for edge := range graph[node] {
			if !removed(node, edge) {
				queue = append(queue, edge)
			}
		}
	}

	if len(visited) == len(graph) {
		return 0, 0, false
	}
	return len(visited), len(graph) - len(visited), true
}

type day25Solver struct {
	solution int
}

var errWireCutFound = errors.New("wire cut found")

// NewDay25 finds the three wires whose removal splits the component graph
// and multiplies the resulting group sizes.
func NewDay25(input string) (solvers.Solver, error) {
	graph := map[string]map[string]struct{}{}
	addEdge := func(from, to string) {
		if graph[from] == nil {
			graph[from] = map[string]struct{}{}
		}
		graph[from][to] = struct{}{}
	}
	for _, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		src, destinations, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("invalid input line")
		}
		for _, dst := range strings.Fields(destinations) {
			addEdge(src, dst)
			addEdge(dst, src)
		}
	}

	var candidates []wireEdge
	if len(graph) > 100 {
		candidates = determineCandidatesWithClusteringHeuristic(graph)
	} else {
		for _, node := range sortedKeys(graph) {
			for edge := range graph[node] {
				candidates = append(candidates, wireEdge{from: node, to: edge})
			}
		}
	}

	start := sortedKeys(graph)[0]

	// Parallelize over the first edge of the triple; the first goroutine
	// to find a split wins.
	var mu sync.Mutex
	var groupSizes [2]int
	found := false
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for i := range candidates {
		g.Go(func() error {
			for j := i + 1; j < len(candidates); j++ {
				for k := j + 1; k < len(candidates); k++ {
					mu.Lock()
					done := found
					mu.Unlock()
					if done {
						return nil
					}
					removals := [3]wireEdge{candidates[i], candidates[j], candidates[k]}
					if a, b, ok := splitSizes(graph, start, removals); ok {
						mu.Lock()
						if !found {
							groupSizes = [2]int{a, b}
							found = true
						}
						mu.Unlock()
						return errWireCutFound
					}
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, errWireCutFound) {
		return nil, err
	}

	return &day25Solver{solution: groupSizes[0] * groupSizes[1]}, nil
}

func (s *day25Solver) SolvePart1() (solvers.Solution, error) {
	return solvers.WithDescription("Group size product", strconv.Itoa(s.solution)), nil
}

func (s *day25Solver) SolvePart2() (solvers.MaybeSolution, error) {
	return solvers.Present(solvers.WithDescription("Part 2", "n/a")), nil
}
