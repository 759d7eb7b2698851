package service

//go:generate mockgen -source=capabilities.go -destination=../mock/capabilities_mock.go -package=mock

// ClipboardWriter puts text on the system clipboard.
type ClipboardWriter interface {
	WriteText(text string) error
}

// InteractiveInput asks the user for input on the terminal.
type InteractiveInput interface {
	// ReadLine reads one line of visible text.
	ReadLine(prompt string) (string, error)

	// ReadSecret reads one line without echoing it.
	ReadSecret(prompt string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(prompt string) (bool, error)
}
