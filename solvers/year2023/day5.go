// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package year2023

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jgosmann/aoc/solvers"
)

// span is a half-open interval [start, end).
type span struct {
	start, end uint64
}

func (s span) intersect(other span) (span, bool) {
	if s.start > other.start {
		return other.intersect(s)
	}
	if s.end <= other.start {
		return span{}, false
	}
	return span{start: other.start, end: min(s.end, other.end)}, true
}

// subtract returns the parts of s not covered by other (at most two).
func (s span) subtract(other span) []span {
	var difference []span
	if s.start < other.start {
		difference = append(difference, span{start: s.start, end: min(s.end, other.start)})
	}
	if s.end > other.end {
		difference = append(difference, span{start: max(s.start, other.end), end: s.end})
	}
	return difference
}

// rangeMap maps non-overlapping source intervals to destination offsets.
// Values outside every interval map to themselves.
type rangeMap struct {
	entries []rangeMapEntry
}

type rangeMapEntry struct {
	src span
	dst uint64
}

func (m *rangeMap) insert(src span, dst uint64) {
	m.entries = append(m.entries, rangeMapEntry{src: src, dst: dst})
}

func (m *rangeMap) get(key uint64) uint64 {
	for _, entry := range m.entries {
		if entry.src.start <= key && key < entry.src.end {
			return entry.dst + (key - entry.src.start)
		}
	}
	return key
}

// getRange splits query into the mapped images of its intersections with
// the map's intervals plus the unmapped remainder.
func (m *rangeMap) getRange(query span) []span {
	var result []span
	for _, entry := range m.entries {
		if intersection, ok := query.intersect(entry.src); ok {
			result = append(result, span{
				start: entry.dst + (intersection.start - entry.src.start),
				end:   entry.dst + (intersection.end - entry.src.start),
			})
		}
	}
	remainder := []span{query}
	for _, entry := range m.entries {
		var next []span
		for _, part := range remainder {
			next = append(next, part.subtract(entry.src)...)
		}
		remainder = next
	}
	return append(result, remainder...)
}

var mapDeclarationPattern = regexp.MustCompile(`^\w+-to-\w+ map:$`)

type day5Solver struct {
	seeds     []uint64
	rangeMaps []*rangeMap
}

// NewDay5 parses the almanac: a seed list followed by chained range maps.
func NewDay5(input string) (solvers.Solver, error) {
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || !strings.Contains(lines[0], ":") {
		return nil, fmt.Errorf("must define seeds")
	}
	_, seedList, _ := strings.Cut(lines[0], ":")
	var seeds []uint64
	for _, part := range strings.Fields(seedList) {
		seed, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}

	rangeMaps := []*rangeMap{{}}
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if mapDeclarationPattern.MatchString(line) {
			rangeMaps = append(rangeMaps, &rangeMap{})
			continue
		}

		var values []uint64
		for _, part := range strings.Fields(line) {
			value, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		if len(values) != 3 {
			continue
		}
		dstStart, srcStart, length := values[0], values[1], values[2]
		rangeMaps[len(rangeMaps)-1].insert(
			span{start: srcStart, end: srcStart + length}, dstStart)
	}

	return &day5Solver{seeds: seeds, rangeMaps: rangeMaps}, nil
}

func (s *day5Solver) SolvePart1() (solvers.Solution, error) {
	var minLocation uint64
	for i, seed := range s.seeds {
		value := seed
		for _, mapping := range s.rangeMaps {
			value = mapping.get(value)
		}
		if i == 0 || value < minLocation {
			minLocation = value
		}
	}
	return solvers.WithDescription(
		"Lowest location (part 1)", strconv.FormatUint(minLocation, 10)), nil
}

func (s *day5Solver) SolvePart2() (solvers.MaybeSolution, error) {
	var ranges []span
	for i := 0; i+1 < len(s.seeds); i += 2 {
		ranges = append(ranges, span{start: s.seeds[i], end: s.seeds[i] + s.seeds[i+1]})
	}
	for _, mapping := range s.rangeMaps {
		var mapped []span
		for _, seedRange := range ranges {
			mapped = append(mapped, mapping.getRange(seedRange)...)
		}
		ranges = mapped
	}
	var minLocation uint64
	for i, r := range ranges {
		if i == 0 || r.start < minLocation {
			minLocation = r.start
		}
	}
	return solvers.Present(solvers.WithDescription(
		"Lowest location (part 2)", strconv.FormatUint(minLocation, 10))), nil
}
