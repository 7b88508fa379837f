package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoRemotes signals an empty option list: there is nothing to choose from.
var ErrNoRemotes = errors.New("no remote is found")

// ErrInputClosed signals that input ended before a valid selection was read.
var ErrInputClosed = errors.New("selector: input closed before a selection was made")

// Selector picks one entry out of an ordered option list and returns its index.
type Selector interface {
	Select(options []string) (int, error)
}

// promptSelector lists options on out and reads selections from in, one
// whole line at a time.
type promptSelector struct {
	in  io.Reader
	out io.Writer
}

// New creates a Selector that prompts on out and reads replies from in.
func New(in io.Reader, out io.Writer) Selector {
	return &promptSelector{in: in, out: out}
}

// Select resolves the option list without prompting when the answer is
// forced: an empty list fails with ErrNoRemotes and a single entry is chosen
// immediately. With two or more entries it lists them by 0-based index and
// re-prompts until the reply parses as an in-range index. There is no retry
// limit; only exhausted input ends the loop early.
func (s *promptSelector) Select(options []string) (int, error) {
	switch len(options) {
	case 0:
		return 0, ErrNoRemotes
	case 1:
		return 0, nil
	}

	for i, option := range options {
		fmt.Fprintf(s.out, "%d: %s\n", i, option)
	}

	max := len(options) - 1
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprintf(s.out, "Select a remote [0-%d]: ", max)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("selector: reading selection: %w", err)
			}
			return 0, ErrInputClosed
		}

		input := strings.TrimSpace(scanner.Text())
		index, err := strconv.Atoi(input)
		if err != nil || index < 0 || index > max {
			fmt.Fprintf(s.out, "Invalid selection %q: enter a number between 0 and %d.\n", input, max)
			continue
		}
		return index, nil
	}
}
