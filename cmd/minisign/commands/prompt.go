package commands

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"minisign/internal/crypto"
	"minisign/internal/services/keys"
)

var errPasswordMismatch = errors.New("passwords don't match")

// promptPassword is replaced in tests.
var promptPassword = readPassword

var (
	stdinOnce   sync.Once
	stdinReader *bufio.Reader
)

// readPassword prints label to stderr and reads one password. On a terminal
// echo is disabled; otherwise a line is read from stdin.
func readPassword(label string) ([]byte, error) {
	fmt.Fprint(os.Stderr, label)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, err
		}
		if pw == nil {
			pw = []byte{}
		}
		return pw, nil
	}

	stdinOnce.Do(func() { stdinReader = bufio.NewReader(os.Stdin) })
	line, err := stdinReader.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

// confirmedPassword asks for a password twice and fails when the answers differ.
func confirmedPassword(label string) ([]byte, error) {
	first, err := promptPassword(label)
	if err != nil {
		return nil, err
	}
	second, err := promptPassword("Password (one more time): ")
	if err != nil {
		crypto.Wipe(first)
		return nil, err
	}
	defer crypto.Wipe(second)
	if !bytes.Equal(first, second) {
		crypto.Wipe(first)
		return nil, errPasswordMismatch
	}
	if first == nil {
		first = []byte{}
	}
	return first, nil
}

// newPasswordPrompt asks for the current password once and confirms the
// new one.
func newPasswordPrompt(label string) ([]byte, error) {
	if label == keys.PromptNewPassword {
		return confirmedPassword(label)
	}
	return promptPassword(label)
}
