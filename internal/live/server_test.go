package live

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	dir := t.TempDir()
	first := writeFile(t, dir, "a.html", "<div><p>hello</p></div>")
	second := writeFile(t, dir, "b.html", "<div><p>world</p></div>")

	s := New(first, second, 50*time.Millisecond)
	s.refresh()

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func TestRefreshComputesDifferences(t *testing.T) {
	s, _ := newTestServer(t)

	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	if last.Generation != 1 {
		t.Errorf("generation = %d, want 1", last.Generation)
	}
	if last.Error != "" {
		t.Fatalf("unexpected error: %s", last.Error)
	}
	if len(last.Differences) != 1 || !strings.Contains(last.Differences[0], "[node-text]") {
		t.Errorf("differences = %v, want one node-text line", last.Differences)
	}
}

func TestRefreshReportsReadErrors(t *testing.T) {
	s := New("missing-a.html", "missing-b.html", 50*time.Millisecond)
	s.refresh()

	s.mu.Lock()
	last := s.last
	s.mu.Unlock()

	if last.Error == "" {
		t.Error("expected a read error for missing files")
	}
}

func TestWebSocketReceivesLatestUpdate(t *testing.T) {
	_, ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var update Update
	if err := conn.ReadJSON(&update); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if update.Generation != 1 {
		t.Errorf("generation = %d, want 1", update.Generation)
	}
	if len(update.Differences) != 1 {
		t.Errorf("differences = %v, want 1 line", update.Differences)
	}
}

func TestBroadcastPushesNewGeneration(t *testing.T) {
	s, ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var first Update
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}

	s.refresh()
	s.broadcast()

	var second Update
	if err := conn.ReadJSON(&second); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	if second.Generation != first.Generation+1 {
		t.Errorf("generation = %d, want %d", second.Generation, first.Generation+1)
	}
}

func TestIndexPage(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
}
