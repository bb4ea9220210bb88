// Package cli is the interactive console surface: numbered menus, input
// prompts and table formatting. It holds no business logic; every action
// delegates to a club.Service operation and renders the result or the
// error.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/clubops/fitclub/internal/club"
	"github.com/clubops/fitclub/internal/repository"
)

// Shell drives the menu loop over an input source and an output writer.
// Tests feed a strings.Reader and capture a bytes.Buffer.
type Shell struct {
	svc *club.Service
	in  *bufio.Scanner
	out io.Writer

	ok   *color.Color
	warn *color.Color
}

// New constructs a Shell over the given service and streams.
func New(svc *club.Service, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		svc:  svc,
		in:   bufio.NewScanner(in),
		out:  out,
		ok:   color.New(color.FgGreen),
		warn: color.New(color.FgRed),
	}
}

// prompt prints a label and reads one line, trimmed. The second return is
// false when input is exhausted (EOF), which callers treat as "leave".
func (s *Shell) prompt(label string) (string, bool) {
	fmt.Fprintf(s.out, "%s: ", label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptInt64 keeps asking until it gets a number or input ends.
func (s *Shell) promptInt64(label string) (int64, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.warn.Fprintln(s.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

// promptFloat keeps asking until it gets a numeric value or input ends.
func (s *Shell) promptFloat(label string) (float64, bool) {
	for {
		raw, ok := s.prompt(label)
		if !ok {
			return 0, false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			s.warn.Fprintln(s.out, "Please enter a numeric value.")
			continue
		}
		return v, true
	}
}

// reportError renders an operation failure as one human-readable line.
// The taxonomy maps onto the error types of the club and repository
// packages; anything else is printed as an unexpected error.
func (s *Shell) reportError(err error) {
	var verr *club.ValidationError
	var ierr *repository.IntegrityError

	switch {
	case errors.As(err, &verr):
		s.warn.Fprintf(s.out, "Invalid input: %s\n", verr.Reason)
	case errors.Is(err, repository.ErrAlreadyEnrolled):
		s.warn.Fprintln(s.out, "You are already enrolled in this class.")
	case errors.Is(err, repository.ErrClassFull):
		s.warn.Fprintln(s.out, "Class is full.")
	case errors.Is(err, repository.ErrCapacityExceedsRoom):
		s.warn.Fprintln(s.out, "Class capacity cannot exceed the room's capacity.")
	case errors.Is(err, repository.ErrMemberNotFound),
		errors.Is(err, repository.ErrTrainerNotFound),
		errors.Is(err, repository.ErrRoomNotFound),
		errors.Is(err, repository.ErrClassNotFound):
		s.warn.Fprintf(s.out, "%s.\n", capitalize(err.Error()))
	case errors.Is(err, club.ErrAuthFailed):
		s.warn.Fprintln(s.out, "Authentication failed. Invalid username or password.")
	case errors.As(err, &ierr):
		s.warn.Fprintf(s.out, "Operation rejected by the database (%s constraint).\n", ierr.Constraint)
	default:
		s.warn.Fprintf(s.out, "Unexpected error: %v\n", err)
	}
}

func capitalize(v string) string {
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}
