package cli

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiRequest gathers the front-end settings from flags and config. Flags have
// already been merged over config values.
type uiRequest struct {
	mode    string
	noColor bool
	verbose bool
}

// uiChoice is the front end a run will use.
type uiChoice struct {
	live    bool
	noColor bool
	warning string
}

// isTerminal reports whether a stream is attached to a terminal.
var isTerminal = streamIsTerminal

// chooseUI picks the live UI only when the keyboard and the screen are both
// terminals. Verbose runs log to stderr, which would tear the live screen, so
// they use plain prompts.
func chooseUI(req uiRequest, stdin, stdout any) (uiChoice, error) {
	choice := uiChoice{noColor: req.noColor || os.Getenv("NO_COLOR") != ""}
	mode := strings.ToLower(strings.TrimSpace(req.mode))
	switch mode {
	case "", "auto":
		choice.live = !req.verbose && isTerminal(stdin) && isTerminal(stdout)
	case "live":
		switch {
		case req.verbose:
			choice.warning = "Live UI disabled while --verbose logs to stderr; using plain prompts."
		case !isTerminal(stdout):
			choice.warning = "Live UI requested but stdout is not a TTY; using plain prompts."
		case !isTerminal(stdin):
			choice.warning = "Live UI requested but stdin is not a TTY; using plain prompts."
		default:
			choice.live = true
		}
	case "plain":
	default:
		return uiChoice{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", req.mode)
	}
	return choice, nil
}

func streamIsTerminal(stream any) bool {
	switch typed := stream.(type) {
	case *os.File:
		return typed != nil && term.IsTerminal(int(typed.Fd()))
	case interface{ Fd() uintptr }:
		return term.IsTerminal(int(typed.Fd()))
	}
	return false
}
