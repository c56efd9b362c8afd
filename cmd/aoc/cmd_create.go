// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jgosmann/aoc/pkg/ux"
)

//go:embed day.go.template
var dayTemplateText string

var dayTemplate = template.Must(template.New("day").Parse(dayTemplateText))

const (
	importMarker = "// <<IMPORT MARKER>>"
	insertMarker = "// <<INSERT MARKER>>"
)

func runCreate(cmd *cobra.Command, args []string) error {
	year, days := resolveRequestedDays(requestedYear, requestedDays)

	basePath := filepath.Join("solvers", fmt.Sprintf("year%d", year))
	if err := os.MkdirAll(filepath.Join(basePath, "testdata"), 0755); err != nil {
		return fmt.Errorf("creating directories: %s: %w", basePath, err)
	}

	for _, day := range days {
		source, err := renderDayTemplate(year, day)
		if err != nil {
			return err
		}
		dayPath := filepath.Join(basePath, fmt.Sprintf("day%d.go", day))
		if err := writeIfNonExistent(dayPath, source); err != nil {
			return err
		}
		examplePath := filepath.Join(basePath, "testdata", fmt.Sprintf("day%d-1.example", day))
		if err := writeIfNonExistent(examplePath, nil); err != nil {
			return err
		}
	}

	return registerSolvers(filepath.Join("solvers", "dispatch", "dispatch.go"), year, days)
}

func renderDayTemplate(year, day int) ([]byte, error) {
	var buf bytes.Buffer
	err := dayTemplate.Execute(&buf, struct{ Year, Day int }{Year: year, Day: day})
	if err != nil {
		return nil, fmt.Errorf("rendering day template: %w", err)
	}
	return buf.Bytes(), nil
}

func writeIfNonExistent(path string, content []byte) error {
	if _, err := os.Stat(path); err == nil {
		ux.Warnf("file '%s' already exists, skipping", path)
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing file: %s: %w", path, err)
	}
	return nil
}

// registerSolvers patches the dispatch table, inserting constructor
// entries at the insert marker and, if the year package is not imported
// yet, an import at the import marker.
func registerSolvers(path string, year int, days []int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	importLine := fmt.Sprintf("\t\"github.com/jgosmann/aoc/solvers/year%d\"", year)
	needsImport := !strings.Contains(string(data), importLine)

	var out []string
	for _, line := range strings.Split(string(data), "\n") {
		switch strings.TrimSpace(line) {
		case importMarker:
			if needsImport {
				out = append(out, importLine)
			}
			out = append(out, line)
		case insertMarker:
			for _, day := range days {
				out = append(out, fmt.Sprintf(
					"\t{Year: %d, Day: %d}: year%d.NewDay%d,", year, day, year, day))
			}
			out = append(out, line)
		default:
			out = append(out, line)
		}
	}

	return os.WriteFile(path, []byte(strings.Join(out, "\n")), 0644)
}
