// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const vaultEntriesTable = "vault_entries"

var (
	// psql is the statement builder for sqlite: "?" placeholders.
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	vaultEntryColumns = []string{
		"id",
		"created_at",
		"updated_at",
		"service",
		"username",
		"url",
		"email",
		"secret_ciphertext",
		"notes",
	}

	// listOrder sorts by service name case-insensitively; id makes the order
	// total when two entries share a name and a timestamp.
	listOrder = []string{"casefold(service)", "created_at", "id"}
)

func buildInsertEntryQuery(entry models.VaultEntry) (string, []any, error) {
	return psql.Insert(vaultEntriesTable).
		Columns(vaultEntryColumns...).
		Values(
			entry.ID,
			entry.CreatedAt,
			entry.UpdatedAt,
			entry.Service,
			entry.Username,
			entry.URL,
			entry.Email,
			entry.SecretCiphertext,
			entry.Notes,
		).
		ToSql()
}

func buildGetEntryQuery(id string) (string, []any, error) {
	return psql.Select(vaultEntryColumns...).
		From(vaultEntriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildUpdateEntryQuery replaces the whole row except id and created_at.
func buildUpdateEntryQuery(entry models.VaultEntry) (string, []any, error) {
	return psql.Update(vaultEntriesTable).
		SetMap(map[string]any{
			"updated_at":        entry.UpdatedAt,
			"service":           entry.Service,
			"username":          entry.Username,
			"url":               entry.URL,
			"email":             entry.Email,
			"secret_ciphertext": entry.SecretCiphertext,
			"notes":             entry.Notes,
		}).
		Where(sq.Eq{"id": entry.ID}).
		ToSql()
}

func buildDeleteEntryQuery(id string) (string, []any, error) {
	return psql.Delete(vaultEntriesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildListEntriesQuery() (string, []any, error) {
	return psql.Select(vaultEntryColumns...).
		From(vaultEntriesTable).
		OrderBy(listOrder...).
		ToSql()
}

// buildSearchEntriesQuery matches substring against service, username and
// email. instr() is used instead of LIKE so '%' and '_' in the query are
// plain characters.
func buildSearchEntriesQuery(substring string) (string, []any, error) {
	if substring == "" {
		return buildListEntriesQuery()
	}

	needle := strings.ToLower(substring)

	return psql.Select(vaultEntryColumns...).
		From(vaultEntriesTable).
		Where(sq.Or{
			sq.Expr("instr(casefold(service), ?) > 0", needle),
			sq.Expr("instr(casefold(username), ?) > 0", needle),
			sq.Expr("instr(casefold(email), ?) > 0", needle),
		}).
		OrderBy(listOrder...).
		ToSql()
}
