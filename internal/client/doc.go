// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault command-line application.
//
// It wires the terminal prompts, the clipboard and the vault services into
// one command per process run: the master password is asked for, a session
// is unlocked, the command runs and the session is locked again.
package client
