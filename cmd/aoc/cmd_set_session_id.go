// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/awnumar/memguard"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func runSetSessionID(cmd *cobra.Command, args []string) error {
	store := NewDefaultSessionStore()
	_, err := promptAndStoreSessionID(cmd.Context(), store)
	return err
}

// sessionID retrieves the stored session ID, prompting for it on first
// use.
func sessionID(ctx context.Context, store SessionStore) (*memguard.Enclave, error) {
	enclave, err := store.Get(ctx)
	if errors.Is(err, ErrSessionIDNotFound) {
		return promptAndStoreSessionID(ctx, store)
	}
	if errors.Is(err, ErrNoCredentialStore) {
		return nil, fmt.Errorf("%w\n%s", err, store.SetupInstructions())
	}
	return enclave, err
}

func promptAndStoreSessionID(ctx context.Context, store SessionStore) (*memguard.Enclave, error) {
	value, err := promptSessionID()
	if err != nil {
		return nil, err
	}
	if err := store.Set(ctx, value); err != nil {
		return nil, err
	}
	return memguard.NewEnclave([]byte(value)), nil
}

func promptSessionID() (string, error) {
	// Piped input (CI, scripting) cannot drive the interactive form.
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading session ID from stdin: %w", err)
		}
		return strings.TrimSpace(line), nil
	}

	var value string
	input := huh.NewInput().
		Title("Your Advent of Code session id:").
		EchoMode(huh.EchoModePassword).
		Value(&value)
	if err := input.Run(); err != nil {
		return "", fmt.Errorf("password input: %w", err)
	}
	return value, nil
}
