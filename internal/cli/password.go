package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/zarlcorp/core/pkg/zcrypto"
	"golang.org/x/term"
)

// ErrPasswordMismatch is returned when the confirmation differs.
var ErrPasswordMismatch = errors.New("passwords do not match")

// ReadPassword prompts on w and reads a password from the terminal without
// echo.
func ReadPassword(prompt string, w io.Writer) ([]byte, error) {
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return b, nil
}

// ReadNewPassword prompts for a new password with confirmation.
func ReadNewPassword(w io.Writer) ([]byte, error) {
	pass, err := ReadPassword("master password: ", w)
	if err != nil {
		return nil, err
	}
	confirm, err := ReadPassword("confirm password: ", w)
	if err != nil {
		zcrypto.Erase(pass)
		return nil, err
	}
	defer zcrypto.Erase(confirm)

	if !bytes.Equal(pass, confirm) {
		zcrypto.Erase(pass)
		return nil, ErrPasswordMismatch
	}
	return pass, nil
}

// TerminalPassword returns an App.Password that prompts on w.
func TerminalPassword(w io.Writer) func(firstRun bool) ([]byte, error) {
	return func(firstRun bool) ([]byte, error) {
		if firstRun {
			return ReadNewPassword(w)
		}
		return ReadPassword("master password: ", w)
	}
}
