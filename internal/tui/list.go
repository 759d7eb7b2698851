package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	idColumnWidth       = 36
	serviceColumnWidth  = 20
	usernameColumnWidth = 24
)

// RenderEntryList renders entries as a table of id, service, username and
// e-mail, keeping the order the store returned them in. Secrets are never
// part of the table.
func RenderEntryList(title string, entries []models.VaultEntry) string {
	var b strings.Builder

	if len(entries) == 0 {
		b.WriteString("No entries\n")
	} else {
		b.WriteString(padRight("ID", idColumnWidth))
		b.WriteString(" │ ")
		b.WriteString(padRight("SERVICE", serviceColumnWidth))
		b.WriteString(" │ ")
		b.WriteString(padRight("USERNAME", usernameColumnWidth))
		b.WriteString(" │ EMAIL\n")

		for _, e := range entries {
			b.WriteString(padRight(fitText(e.ID, idColumnWidth), idColumnWidth))
			b.WriteString(" │ ")
			b.WriteString(padRight(fitText(e.Service, serviceColumnWidth), serviceColumnWidth))
			b.WriteString(" │ ")
			b.WriteString(padRight(fitText(stringOrDash(e.Username), usernameColumnWidth), usernameColumnWidth))
			b.WriteString(" │ ")
			b.WriteString(stringOrDash(e.Email))
			b.WriteString("\n")
		}
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), fmt.Sprintf("%d entries", len(entries)))
}
