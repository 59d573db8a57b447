package cli

import (
	"os"
	"strings"
	"testing"
)

func TestChooseUI(t *testing.T) {
	keyboard, screen := &os.File{}, &os.File{}
	cases := []struct {
		name      string
		req       uiRequest
		ttys      map[any]bool
		wantLive  bool
		wantWarn  string
		wantError bool
	}{
		{name: "auto on a terminal", req: uiRequest{mode: "auto"}, ttys: map[any]bool{keyboard: true, screen: true}, wantLive: true},
		{name: "empty mode means auto", req: uiRequest{}, ttys: map[any]bool{keyboard: true, screen: true}, wantLive: true},
		{name: "auto with piped input", req: uiRequest{mode: "auto"}, ttys: map[any]bool{screen: true}},
		{name: "auto with redirected output", req: uiRequest{mode: "AUTO"}, ttys: map[any]bool{keyboard: true}},
		{name: "auto while verbose", req: uiRequest{mode: "auto", verbose: true}, ttys: map[any]bool{keyboard: true, screen: true}},
		{name: "plain on a terminal", req: uiRequest{mode: "plain"}, ttys: map[any]bool{keyboard: true, screen: true}},
		{name: "live on a terminal", req: uiRequest{mode: "live"}, ttys: map[any]bool{keyboard: true, screen: true}, wantLive: true},
		{name: "live without a screen", req: uiRequest{mode: "live"}, ttys: map[any]bool{keyboard: true}, wantWarn: "stdout is not a TTY"},
		{name: "live without a keyboard", req: uiRequest{mode: "live"}, ttys: map[any]bool{screen: true}, wantWarn: "stdin is not a TTY"},
		{name: "live while verbose", req: uiRequest{mode: "live", verbose: true}, ttys: map[any]bool{keyboard: true, screen: true}, wantWarn: "--verbose"},
		{name: "unknown mode", req: uiRequest{mode: "fancy"}, wantError: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(stream any) bool { return tc.ttys[stream] }
			choice, err := chooseUI(tc.req, keyboard, screen)
			if tc.wantError {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if choice.live != tc.wantLive {
				t.Fatalf("expected live=%v, got %v", tc.wantLive, choice.live)
			}
			if tc.wantWarn == "" && choice.warning != "" {
				t.Fatalf("did not expect warning %q", choice.warning)
			}
			if !strings.Contains(choice.warning, tc.wantWarn) {
				t.Fatalf("expected warning containing %q, got %q", tc.wantWarn, choice.warning)
			}
		})
	}
}

func TestChooseUINoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	choice, err := chooseUI(uiRequest{mode: "plain"}, nil, nil)
	if err != nil || choice.noColor {
		t.Fatalf("expected colors by default, got %+v err=%v", choice, err)
	}
	choice, _ = chooseUI(uiRequest{mode: "plain", noColor: true}, nil, nil)
	if !choice.noColor {
		t.Fatalf("expected no_color setting to disable colors")
	}
	t.Setenv("NO_COLOR", "1")
	choice, _ = chooseUI(uiRequest{mode: "plain"}, nil, nil)
	if !choice.noColor {
		t.Fatalf("expected NO_COLOR to disable colors")
	}
}

func TestStreamIsTerminal(t *testing.T) {
	if streamIsTerminal(nil) || streamIsTerminal(strings.NewReader("x")) {
		t.Fatalf("expected non-file streams to be treated as non-terminals")
	}
	file, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer file.Close()
	if streamIsTerminal(file) {
		t.Fatalf("expected a regular file not to be a terminal")
	}
}
