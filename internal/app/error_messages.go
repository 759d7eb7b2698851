// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// vault command-line client.
//
// All Msg* constants are human-readable message strings printed to the
// terminal or written to the log to describe the outcome of an operation.
// Keeping them in one place keeps the wording consistent across commands.
package app

const (
	// MsgWrongMasterPassword is printed when the master password does not
	// match the stored hash record.
	MsgWrongMasterPassword = "wrong master password"

	// MsgVaultNotInitialized is printed when a command needs an unlocked
	// vault but no master credential exists yet.
	MsgVaultNotInitialized = "vault is not initialized, run \"vault init\" first"

	// MsgVaultAlreadyInitialized is printed by init when a master credential
	// already exists. It is never overwritten.
	MsgVaultAlreadyInitialized = "vault is already initialized"

	// MsgEmptyMasterPassword is printed when the master password is blank.
	MsgEmptyMasterPassword = "master password must not be empty"

	// MsgPasswordsDoNotMatch is printed when the repeated master password
	// differs from the first one.
	MsgPasswordsDoNotMatch = "passwords do not match"

	// MsgEntryNotFound is printed when the requested entry id does not exist.
	MsgEntryNotFound = "entry not found"

	// MsgEntryCannotBeDecrypted is printed when an entry fails the integrity
	// check under the current session key.
	MsgEntryCannotBeDecrypted = "entry cannot be decrypted with the current session key"

	// MsgInvalidEntry is printed when an entry breaks a validation rule; the
	// rule itself follows after a colon.
	MsgInvalidEntry = "invalid entry"

	// MsgCorruptVault is printed when the master credential file or a
	// stored envelope is malformed.
	MsgCorruptVault = "vault data is corrupt"

	// MsgStorageBusy is printed when the vault file is locked by another
	// process.
	MsgStorageBusy = "vault file is busy, try again"

	// MsgStorageFailure is printed for any other storage failure.
	MsgStorageFailure = "vault storage failure"

	// MsgClipboardUnavailable is printed when no clipboard utility is found.
	MsgClipboardUnavailable = "clipboard is not available on this system"

	// MsgInvalidPasswordLength is printed when generate gets a length below 1.
	MsgInvalidPasswordLength = "password length must be at least 1"

	// MsgUnknownCommand is printed for a command the client does not know.
	MsgUnknownCommand = "unknown command, see \"vault help\""

	// MsgMissingArgument is printed when a command is missing its operand.
	MsgMissingArgument = "missing argument, see \"vault help\""

	// MsgSessionLocked is printed when the session was locked mid-command.
	MsgSessionLocked = "vault session is locked"

	// MsgInternalError is printed for anything not covered above.
	MsgInternalError = "internal error, see the log file for details"
)
