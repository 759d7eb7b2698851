package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

const maskedSecret = "••••••••"

// RenderCredential renders one decrypted credential. The secret is masked
// unless showSecret is set.
func RenderCredential(cred models.Credential, showSecret bool) string {
	secret := maskedSecret
	if showSecret {
		secret = cred.Secret
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ID:        %s\n", cred.ID)
	fmt.Fprintf(&b, "Service:   %s\n", cred.Service)
	fmt.Fprintf(&b, "Username:  %s\n", stringOrDash(cred.Username))
	fmt.Fprintf(&b, "Password:  %s\n", secret)
	fmt.Fprintf(&b, "URL:       %s\n", stringOrDash(cred.URL))
	fmt.Fprintf(&b, "Email:     %s\n", stringOrDash(cred.Email))
	fmt.Fprintf(&b, "Notes:     %s\n", valueOrDash(cred.Notes))
	fmt.Fprintf(&b, "Created:   %s\n", cred.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Updated:   %s", cred.UpdatedAt.Format(time.RFC3339))

	return renderPage(cred.Service, b.String(), "")
}
