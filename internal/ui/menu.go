package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMenuQuit is returned when the user enters the quit sentinel or the input
// stream is closed.
var ErrMenuQuit = errors.New("selection cancelled by user")

// PromptMenuSelection presents items as a 1-based numbered menu on out and
// reads selections from in until a valid one arrives. It returns the selected
// zero-based index. Entering "q" (or reaching EOF) returns ErrMenuQuit.
// Invalid input re-prompts and never terminates the loop.
func PromptMenuSelection(in io.Reader, out io.Writer, label string, items []string) (int, error) {
	fmt.Fprintf(out, "\n%s:\n", label)
	fmt.Fprintln(out, strings.Repeat("-", 50))
	for i, item := range items {
		fmt.Fprintf(out, "%d. %s\n", i+1, item)
	}
	fmt.Fprintln(out, strings.Repeat("-", 50))

	// bufio.Reader instead of Scanner: a pasted line longer than the scanner
	// buffer would kill the loop with ErrTooLong instead of re-prompting.
	reader := bufio.NewReader(in)
	for {
		fmt.Fprintf(out, "Please select configuration file (1-%d) or enter 'q' to quit: ", len(items))

		line, readErr := reader.ReadString('\n')
		choice := strings.TrimSpace(line)
		if choice == "" && readErr != nil {
			if errors.Is(readErr, io.EOF) {
				// stdin closed, treat like quit
				return -1, ErrMenuQuit
			}
			return -1, fmt.Errorf("read selection: %w", readErr)
		}
		if strings.EqualFold(choice, "q") {
			return -1, ErrMenuQuit
		}

		n, err := strconv.Atoi(choice)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid number or 'q' to quit")
			continue
		}
		if n < 1 || n > len(items) {
			fmt.Fprintf(out, "Please enter a number between 1 and %d\n", len(items))
			continue
		}

		return n - 1, nil
	}
}

// WaitForEnter blocks until the user presses Enter (or in is closed).
func WaitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "\nPress Enter to exit...")
	reader := bufio.NewReader(in)
	reader.ReadString('\n')
}
