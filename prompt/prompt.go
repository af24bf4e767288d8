// Package prompt implements the interactive race-event selection.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "github.com/RBaldassarre/worldaquatics-export/errors"
	"github.com/RBaldassarre/worldaquatics-export/models"
)

// TerminalSelector prints a numbered event list and reads the chosen
// index. It implements interfaces.EventSelector.
type TerminalSelector struct {
	in  io.Reader
	out io.Writer
}

// NewTerminalSelector creates a selector reading from in and writing
// the menu to out (normally os.Stdin / os.Stdout).
func NewTerminalSelector(in io.Reader, out io.Writer) *TerminalSelector {
	return &TerminalSelector{in: in, out: out}
}

// Select displays the candidates and blocks until a valid 1-based
// index is entered.
func (s *TerminalSelector) Select(events []models.RaceEvent) (models.RaceEvent, error) {
	if len(events) == 0 {
		return models.RaceEvent{}, apperrors.NewNotFoundError("NO_EVENTS", "no events to choose from")
	}

	for i, e := range events {
		fmt.Fprintf(s.out, "%d. %s (%s)\n", i+1, e.Name, e.Gender)
	}
	fmt.Fprint(s.out, "\nEnter the number of the event to download: ")

	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && choice >= 1 && choice <= len(events) {
			return events[choice-1], nil
		}
		fmt.Fprintf(s.out, "Please enter a number between 1 and %d: ", len(events))
	}
	if err := scanner.Err(); err != nil {
		return models.RaceEvent{}, apperrors.NewSystemError("READ_INPUT", "reading selection", err)
	}
	return models.RaceEvent{}, apperrors.NewValidationError("NO_SELECTION", "input closed before a selection was made")
}

// FixedSelector always picks the event at a fixed index. It is the
// non-interactive EventSelector used in tests and scripted runs.
type FixedSelector struct {
	Index int
}

// Select returns the event at the configured index.
func (s FixedSelector) Select(events []models.RaceEvent) (models.RaceEvent, error) {
	if s.Index < 0 || s.Index >= len(events) {
		return models.RaceEvent{}, apperrors.NewValidationError("BAD_INDEX",
			fmt.Sprintf("selection index %d out of range (have %d events)", s.Index, len(events)))
	}
	return events[s.Index], nil
}
