package poolserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"quizrun/internal/question"
	"quizrun/internal/testutil"
)

// TestNewHandlerServesPool ensures the pool endpoint returns a loadable payload.
func TestNewHandlerServesPool(t *testing.T) {
	handler := newTestHandler(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "http://example.com"+PoolPath, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("expected no-store, got %q", got)
	}
	pool, _, err := question.Parse(resp.Body.Bytes(), question.FormatJSON)
	if err != nil {
		t.Fatalf("parse served pool: %v", err)
	}
	if len(pool) != len(question.Builtin()) {
		t.Fatalf("expected %d questions, got %d", len(question.Builtin()), len(pool))
	}
}

// TestNewHandlerServesIndex ensures the root path summarizes the pool.
func TestNewHandlerServesIndex(t *testing.T) {
	handler := newTestHandler(t, Config{Source: "<builtin>"})

	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	body := resp.Body.String()
	for _, want := range []string{"12 questions, 6 multi-select.", "<td>Networking</td>", "&lt;builtin&gt;", PoolPath} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in index page:\n%s", want, body)
		}
	}
}

// TestNewHandlerIndexEscapesPoolText verifies domain names are escaped in the summary table.
func TestNewHandlerIndexEscapesPoolText(t *testing.T) {
	handler, err := NewHandler(Config{Pool: question.Pool{
		{ID: "a", Domain: "<img src=x>", Question: "Q?", Options: []string{"1", "2"}, Answers: []int{0}},
		{ID: "b", Question: "Q?", Options: []string{"1", "2"}, Answers: []int{0, 1}, Multi: true},
	}})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	body := resp.Body.String()
	if strings.Contains(body, "<img") {
		t.Fatalf("expected domain to be escaped:\n%s", body)
	}
	for _, want := range []string{
		"<td>&lt;img src=x&gt;</td><td>1</td>",
		"<td>(none)</td><td>1</td>",
		"2 questions, 1 multi-select.",
		`<a href="` + PoolPath + `">`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in index page:\n%s", want, body)
		}
	}
	if strings.Contains(body, "Source:") {
		t.Fatalf("did not expect a source line without a source")
	}
}

// TestNewHandlerRejectsPost verifies only reads are routed.
func TestNewHandlerRejectsPost(t *testing.T) {
	handler := newTestHandler(t, Config{})
	req := httptest.NewRequest(http.MethodPost, "http://example.com"+PoolPath, nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status 405, got %d", resp.Code)
	}
}

// TestNewHandlerCORS verifies configured origins receive CORS headers.
func TestNewHandlerCORS(t *testing.T) {
	handler := newTestHandler(t, Config{AllowedOrigins: []string{"http://localhost:3000"}})
	req := httptest.NewRequest(http.MethodGet, "http://example.com"+PoolPath, nil)
	req.Header.Set("Origin", "http://localhost:3000")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}

// TestNewHandlerRequiresPool verifies an empty pool is rejected.
func TestNewHandlerRequiresPool(t *testing.T) {
	if _, err := NewHandler(Config{}); err == nil {
		t.Fatalf("expected error for empty pool")
	}
}

// TestServeShutsDownOnCancel verifies the server answers and exits with the context.
func TestServeShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.Context(t, 5*time.Second))
	ready := make(chan string, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, Config{
			Addr:  "127.0.0.1:0",
			Pool:  question.Builtin(),
			Ready: func(addr string) { ready <- addr },
		})
	}()

	var addr string
	select {
	case addr = <-ready:
	case err := <-errCh:
		t.Fatalf("serve exited early: %v", err)
	case <-ctx.Done():
		t.Fatalf("server did not start")
	}

	resp, err := http.Get("http://" + addr + "/healthz")
	if err != nil {
		t.Fatalf("get healthz: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || strings.TrimSpace(string(body)) != "ok" {
		t.Fatalf("unexpected healthz response %d %q", resp.StatusCode, body)
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down")
	}
}

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	cfg.Pool = question.Builtin()
	handler, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return handler
}
