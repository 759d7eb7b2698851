// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/platform"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

// UserMessage translates an error returned by [App.Run] into the line shown
// to the user. Details that may help an attacker or that only matter for
// debugging stay in the log.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrEntryUndecryptable):
		return app.MsgEntryCannotBeDecrypted
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return app.MsgWrongMasterPassword
	case errors.Is(err, service.ErrVaultNotInitialized):
		return app.MsgVaultNotInitialized
	case errors.Is(err, service.ErrVaultAlreadyInitialized):
		return app.MsgVaultAlreadyInitialized
	case errors.Is(err, service.ErrEmptyMasterPassword):
		return app.MsgEmptyMasterPassword
	case errors.Is(err, service.ErrSessionLocked):
		return app.MsgSessionLocked
	case errors.Is(err, ErrPasswordsDoNotMatch):
		return app.MsgPasswordsDoNotMatch
	case errors.Is(err, ErrUnknownCommand):
		return app.MsgUnknownCommand
	case errors.Is(err, ErrMissingArgument):
		return app.MsgMissingArgument
	case errors.Is(err, store.ErrEntryNotFound):
		return app.MsgEntryNotFound
	case errors.Is(err, validators.ErrInvalidEntry):
		return app.MsgInvalidEntry + ": " + extractBody(err)
	case errors.Is(err, crypto.ErrInvalidPasswordLength):
		return app.MsgInvalidPasswordLength
	case errors.Is(err, crypto.ErrInvalidRecord), errors.Is(err, crypto.ErrCorruptEnvelope):
		return app.MsgCorruptVault
	case errors.Is(err, platform.ErrClipboardUnsupported):
		return app.MsgClipboardUnavailable
	case store.IsRetryable(err):
		return app.MsgStorageBusy
	case errors.Is(err, store.ErrStorage):
		return app.MsgStorageFailure
	}

	return app.MsgInternalError
}

// extractBody returns the rule text of a validation error of the form
// "invalid vault entry: <rule>".
func extractBody(err error) string {
	msg := err.Error()
	prefix := validators.ErrInvalidEntry.Error() + ": "
	if idx := strings.Index(msg, prefix); idx != -1 {
		return msg[idx+len(prefix):]
	}
	return msg
}
