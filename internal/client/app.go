// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/tui"
	"github.com/MKhiriev/go-pass-vault/models"
)

const usage = `Usage: vault [flags] <command> [args]

Commands:
  init               create the master password
  add [service]      add a credential; an empty password is generated
  list               list all entries
  search <query>     list entries whose service, username or e-mail contains query
  show <id>          show an entry with the password masked
  reveal <id>        show an entry with the password in clear text
  update <id>        change fields of an entry
  delete <id>        delete an entry
  copy <id>          copy an entry's password to the clipboard
  generate [length]  print a random password
  version            print build information
  help               print this help

Flags:
  -d path             vault database file
  -m path             master credential file
  -l path             log file
  -c, -config path    JSON config file
  -password-length n  default length of generated passwords
  -kdf-time n         Argon2id iterations
  -kdf-memory n       Argon2id memory in KiB
  -kdf-threads n      Argon2id parallelism`

// App is the vault command-line application. Every command that touches
// entries unlocks its own session and locks it again before returning.
type App struct {
	auth      service.AuthService
	input     service.InteractiveInput
	clipboard service.ClipboardWriter
	out       io.Writer

	passwordLength int
	buildInfo      models.AppBuildInfo
	logger         *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the application from its services and terminal capabilities.
func NewApp(
	services *service.Services,
	input service.InteractiveInput,
	clipboard service.ClipboardWriter,
	out io.Writer,
	cfg config.App,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) (*App, error) {
	if services == nil || services.AuthService == nil || input == nil || clipboard == nil || out == nil {
		return nil, ErrNilDependency
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		auth:           services.AuthService,
		input:          input,
		clipboard:      clipboard,
		out:            out,
		passwordLength: cfg.PasswordLength,
		buildInfo:      buildInfo,
		logger:         log,
	}, nil
}

// Run executes the command named by args[0] with the remaining operands.
// No command prints the help text.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.help()
	}

	command, operands := args[0], args[1:]
	ctx = a.logger.WithContext(ctx)
	a.logger.Debug().Str("func", "*App.Run").Str("command", command).Msg("running command")

	switch command {
	case "help", "-h", "--help":
		return a.help()
	case "version":
		return a.version()
	case "generate":
		return a.generate(operands)
	case "init":
		return a.initialize(ctx)
	case "add", "list", "search", "show", "reveal", "update", "delete", "copy":
		return a.withSession(ctx, func(sess service.VaultSession) error {
			return a.runSessionCommand(ctx, sess, command, operands)
		})
	}

	return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
}

func (a *App) runSessionCommand(ctx context.Context, sess service.VaultSession, command string, operands []string) error {
	switch command {
	case "add":
		return a.add(ctx, sess, operands)
	case "list":
		return a.list(ctx, sess)
	case "search":
		return a.search(ctx, sess, operands)
	}

	id, err := requireArg(operands)
	if err != nil {
		return err
	}

	switch command {
	case "show":
		return a.show(ctx, sess, id, false)
	case "reveal":
		return a.show(ctx, sess, id, true)
	case "update":
		return a.update(ctx, sess, id)
	case "delete":
		return a.delete(ctx, sess, id)
	case "copy":
		return a.copy(ctx, sess, id)
	}

	return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
}

// withSession asks for the master password, unlocks the vault and locks it
// once fn returns.
func (a *App) withSession(ctx context.Context, fn func(sess service.VaultSession) error) error {
	password, err := a.input.ReadSecret("Master password:")
	if err != nil {
		return err
	}

	sess, err := a.auth.Unlock(ctx, password)
	if err != nil {
		a.logger.Err(err).Str("func", "*App.withSession").Msg("unlock failed")
		return fmt.Errorf("unlock vault: %w", err)
	}
	defer sess.Lock()

	return fn(sess)
}

func (a *App) initialize(ctx context.Context) error {
	password, err := a.input.ReadSecret("New master password:")
	if err != nil {
		return err
	}
	repeated, err := a.input.ReadSecret("Repeat master password:")
	if err != nil {
		return err
	}
	if password != repeated {
		return ErrPasswordsDoNotMatch
	}

	if err = a.auth.Initialize(ctx, password); err != nil {
		a.logger.Err(err).Str("func", "*App.initialize").Msg("initialize failed")
		return fmt.Errorf("initialize vault: %w", err)
	}

	a.printf("Vault initialized\n")
	return nil
}

func (a *App) add(ctx context.Context, sess service.VaultSession, operands []string) error {
	var (
		cred models.NewCredential
		err  error
	)

	if len(operands) > 0 {
		cred.Service = strings.Join(operands, " ")
	} else if cred.Service, err = a.input.ReadLine("Service:"); err != nil {
		return err
	}
	if cred.Username, err = a.input.ReadLine("Username:"); err != nil {
		return err
	}
	if cred.URL, err = a.input.ReadLine("URL:"); err != nil {
		return err
	}
	if cred.Email, err = a.input.ReadLine("Email:"); err != nil {
		return err
	}
	notes, err := a.input.ReadLine("Notes:")
	if err != nil {
		return err
	}
	if notes != "" {
		cred.Notes = &notes
	}

	if cred.Secret, err = a.input.ReadSecret("Password (empty to generate):"); err != nil {
		return err
	}
	generated := cred.Secret == ""
	if generated {
		if cred.Secret, err = service.GenerateRandomPassword(a.passwordLength); err != nil {
			return fmt.Errorf("generate password: %w", err)
		}
	}

	id, err := sess.AddCredential(ctx, cred)
	if err != nil {
		return fmt.Errorf("add credential: %w", err)
	}

	a.printf("Added entry %s\n", id)
	if generated {
		a.printf("A %d character password was generated, use \"vault copy %s\" to copy it\n", a.passwordLength, id)
	}
	return nil
}

func (a *App) list(ctx context.Context, sess service.VaultSession) error {
	entries, err := sess.List(ctx)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	a.printf("%s\n", tui.RenderEntryList("ENTRIES", entries))
	return nil
}

func (a *App) search(ctx context.Context, sess service.VaultSession, operands []string) error {
	query := strings.Join(operands, " ")

	entries, err := sess.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search entries: %w", err)
	}

	a.printf("%s\n", tui.RenderEntryList(fmt.Sprintf("SEARCH %q", query), entries))
	return nil
}

func (a *App) show(ctx context.Context, sess service.VaultSession, id string, showSecret bool) error {
	cred, err := a.reveal(ctx, sess, id)
	if err != nil {
		return err
	}

	a.printf("%s\n", tui.RenderCredential(*cred, showSecret))
	return nil
}

func (a *App) update(ctx context.Context, sess service.VaultSession, id string) error {
	entry, err := sess.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry == nil {
		return notFound(id)
	}

	a.printf("Leave a field empty to keep it, enter \"-\" to clear an optional one\n")

	var upd models.CredentialUpdate
	if upd.Service, err = a.readField("Service", entry.Service, false); err != nil {
		return err
	}
	if upd.Username, err = a.readField("Username", entry.Username, true); err != nil {
		return err
	}
	if upd.URL, err = a.readField("URL", entry.URL, true); err != nil {
		return err
	}
	if upd.Email, err = a.readField("Email", entry.Email, true); err != nil {
		return err
	}
	current := ""
	if entry.Notes != nil {
		current = *entry.Notes
	}
	if upd.Notes, err = a.readField("Notes", current, true); err != nil {
		return err
	}

	secret, err := a.input.ReadSecret("New password (empty to keep):")
	if err != nil {
		return err
	}
	if secret != "" {
		upd.Secret = &secret
	}

	if upd.IsEmpty() {
		a.printf("Nothing to update\n")
		return nil
	}

	if err = sess.UpdateCredential(ctx, id, upd); err != nil {
		return fmt.Errorf("update entry: %w", err)
	}

	a.printf("Updated entry %s\n", id)
	return nil
}

// readField returns nil when the user keeps the current value.
func (a *App) readField(name, current string, clearable bool) (*string, error) {
	v, err := a.input.ReadLine(fmt.Sprintf("%s [%s]:", name, current))
	if err != nil {
		return nil, err
	}

	switch {
	case v == "":
		return nil, nil
	case v == "-" && clearable:
		empty := ""
		return &empty, nil
	}
	return &v, nil
}

func (a *App) delete(ctx context.Context, sess service.VaultSession, id string) error {
	entry, err := sess.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get entry: %w", err)
	}
	if entry == nil {
		return notFound(id)
	}

	ok, err := a.input.Confirm(fmt.Sprintf("Delete %q (%s)?", entry.Service, entry.ID))
	if err != nil {
		return err
	}
	if !ok {
		a.printf("Cancelled\n")
		return nil
	}

	if err = sess.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	a.printf("Deleted entry %s\n", id)
	return nil
}

func (a *App) copy(ctx context.Context, sess service.VaultSession, id string) error {
	if err := sess.CopySecret(ctx, id, a.clipboard); err != nil {
		return fmt.Errorf("copy secret: %w", err)
	}

	a.printf("Password copied to clipboard\n")
	return nil
}

func (a *App) generate(operands []string) error {
	length := a.passwordLength
	if len(operands) > 0 {
		n, err := strconv.Atoi(operands[0])
		if err != nil {
			return fmt.Errorf("%w: length %q", crypto.ErrInvalidPasswordLength, operands[0])
		}
		length = n
	}

	password, err := service.GenerateRandomPassword(length)
	if err != nil {
		return err
	}

	a.printf("%s\n", password)
	return nil
}

func (a *App) version() error {
	a.printf("%s\n", tui.RenderBuildInfo(a.buildInfo))
	return nil
}

func (a *App) help() error {
	a.printf("%s\n", usage)
	return nil
}

func (a *App) reveal(ctx context.Context, sess service.VaultSession, id string) (*models.Credential, error) {
	cred, err := sess.RevealCredential(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reveal entry: %w", err)
	}
	if cred == nil {
		return nil, notFound(id)
	}
	return cred, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func notFound(id string) error {
	return fmt.Errorf("%w: id=%s", store.ErrEntryNotFound, id)
}

func requireArg(operands []string) (string, error) {
	if len(operands) == 0 || strings.TrimSpace(operands[0]) == "" {
		return "", ErrMissingArgument
	}
	return operands[0], nil
}
