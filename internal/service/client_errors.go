package service

import "errors"

var (
	// ErrRegisterOnServer wraps any failure of the remote registration call.
	ErrRegisterOnServer = errors.New("registration on server failed")

	// ErrLoginOnServer wraps any failure of the remote login call.
	ErrLoginOnServer = errors.New("login on server failed")

	// ErrNotLoggedIn is returned by authenticated client operations when no
	// session has been established or restored.
	ErrNotLoggedIn = errors.New("not logged in")
)
