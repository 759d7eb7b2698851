package client

import "errors"

var (
	ErrUnknownCommand      = errors.New("unknown command")
	ErrMissingArgument     = errors.New("missing argument")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrNilDependency       = errors.New("client dependency is nil")
)
