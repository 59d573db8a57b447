package plain

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadLine reads one line without its line ending. A final unterminated line
// comes back together with io.EOF.
func ReadLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), err
}

// Confirm asks a yes/no question until it gets an answer. A blank answer,
// including end of input, takes defaultYes.
func Confirm(reader *bufio.Reader, out io.Writer, question string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	for {
		fmt.Fprintf(out, "%s %s ", question, hint)
		line, err := ReadLine(reader)
		if err != nil && err != io.EOF {
			return false, err
		}
		if answer, ok := parseAnswer(line, defaultYes); ok {
			if err == io.EOF {
				fmt.Fprintln(out)
			}
			return answer, nil
		}
		if err == io.EOF {
			return false, fmt.Errorf("unrecognized answer %q", strings.TrimSpace(line))
		}
		fmt.Fprintln(out, "Please answer y or n.")
	}
}

func parseAnswer(line string, defaultYes bool) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return defaultYes, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
