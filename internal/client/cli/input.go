package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints a password prompt to w and reads a password from the
// user's terminal without echo. A newline is printed after the read to keep
// the UI tidy.
func GetPassword(prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// GetNonNegativeNumber prompts until the user enters a non-negative number.
// A negative entry does not abort anything; it prints a warning and withholds
// the value until corrected. An empty line counts as zero, matching the
// behavior of an untouched numeric form field.
func GetNonNegativeNumber(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	for {
		line, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 0, nil
		}

		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(w, "Please enter a number.")
			continue
		}
		if value < 0 {
			fmt.Fprintln(w, "Values cannot be negative.")
			continue
		}
		return value, nil
	}
}
