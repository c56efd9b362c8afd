// Copyright (C) 2022-2026 Jan Gosmann
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/awnumar/memguard"
)

// ErrSessionIDNotFound is returned when no session ID is stored in the
// credential store.
var ErrSessionIDNotFound = errors.New("session ID not found")

// ErrNoCredentialStore is returned when the platform has no supported
// credential store backend.
var ErrNoCredentialStore = errors.New("no credential store available")

const (
	credentialService = "adventofcode"
	credentialKey     = "session_id"
)

// SessionStore persists the Advent of Code session ID in the platform
// credential store.
//
// Session IDs are authentication credentials; they are kept out of plain
// config files and are never logged.
type SessionStore interface {
	// Get retrieves the stored session ID. Returns ErrSessionIDNotFound
	// if none is stored.
	Get(ctx context.Context) (*memguard.Enclave, error)

	// Set stores the session ID, replacing any previous value.
	Set(ctx context.Context, sessionID string) error

	// SetupInstructions returns platform-specific help for storing the
	// session ID manually.
	SetupInstructions() string
}

// DefaultSessionStore uses the macOS Keychain (security) or the Linux
// Secret Service (secret-tool), depending on the platform.
type DefaultSessionStore struct {
	goos            string
	execCommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd
}

func NewDefaultSessionStore() *DefaultSessionStore {
	return &DefaultSessionStore{
		goos:            runtime.GOOS,
		execCommandFunc: exec.CommandContext,
	}
}

func (s *DefaultSessionStore) Get(ctx context.Context) (*memguard.Enclave, error) {
	argv, err := s.getArgv()
	if err != nil {
		return nil, err
	}

	cmd := s.execCommandFunc(ctx, argv[0], argv[1:]...)
	output, err := cmd.Output()
	if err != nil {
		// A non-zero exit means the backend has no stored entry. Anything
		// else (most importantly the backend tool missing from PATH) is a
		// store failure and must not be swallowed into the prompt flow.
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			return nil, ErrSessionIDNotFound
		case errors.Is(err, exec.ErrNotFound):
			return nil, fmt.Errorf("%w: %v", ErrNoCredentialStore, err)
		default:
			return nil, fmt.Errorf("querying credential store: %w", err)
		}
	}

	value := strings.TrimSpace(string(output))
	if value == "" {
		return nil, ErrSessionIDNotFound
	}
	return memguard.NewEnclave([]byte(value)), nil
}

func (s *DefaultSessionStore) Set(ctx context.Context, sessionID string) error {
	argv, err := s.setArgv(sessionID)
	if err != nil {
		return err
	}

	cmd := s.execCommandFunc(ctx, argv[0], argv[1:]...)
	if stdin := s.setStdin(sessionID); stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("storing session ID: %w", err)
	}
	return nil
}

func (s *DefaultSessionStore) getArgv() ([]string, error) {
	switch s.goos {
	case "darwin":
		return []string{
			"security", "find-generic-password",
			"-a", credentialService,
			"-s", credentialKey,
			"-w",
		}, nil
	case "linux":
		return []string{
			"secret-tool", "lookup",
			"service", credentialService,
			"key", credentialKey,
		}, nil
	}
	return nil, ErrNoCredentialStore
}

func (s *DefaultSessionStore) setArgv(sessionID string) ([]string, error) {
	switch s.goos {
	case "darwin":
		return []string{
			"security", "add-generic-password", "-U",
			"-a", credentialService,
			"-s", credentialKey,
			"-w", sessionID,
		}, nil
	case "linux":
		return []string{
			"secret-tool", "store",
			"--label", "Advent of Code session ID",
			"service", credentialService,
			"key", credentialKey,
		}, nil
	}
	return nil, ErrNoCredentialStore
}

// setStdin returns the data to pipe into the store command. secret-tool
// reads the secret from stdin; security takes it as an argument.
func (s *DefaultSessionStore) setStdin(sessionID string) string {
	if s.goos == "linux" {
		return sessionID
	}
	return ""
}

func (s *DefaultSessionStore) SetupInstructions() string {
	switch s.goos {
	case "darwin":
		return fmt.Sprintf(
			"Store your session ID with:\n"+
				"  security add-generic-password -U -a %q -s %q -w \"your-session-id\"\n",
			credentialService, credentialKey)
	case "linux":
		return fmt.Sprintf(
			"Store your session ID with:\n"+
				"  secret-tool store --label \"Advent of Code session ID\" service %s key %s\n"+
				"  (Then enter the session ID when prompted)\n",
			credentialService, credentialKey)
	}
	return "No supported credential store was found for this platform.\n"
}

// -----------------------------------------------------------------------------
// Compile-time Interface Check
// -----------------------------------------------------------------------------

var _ SessionStore = (*DefaultSessionStore)(nil)
