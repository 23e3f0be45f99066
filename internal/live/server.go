// Package live serves a continuously updated diff of two HTML files.
// Connected browsers receive a fresh comparison over WebSocket whenever
// either file changes on disk.
package live

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/htmldiff/htmldiff"
)

// Update is one frame pushed to connected clients.
type Update struct {
	Generation  int      `json:"generation"`
	Differences []string `json:"differences"`
	Error       string   `json:"error,omitempty"`
}

// Server watches two HTML files and pushes their recomputed diff to every
// connected client.
type Server struct {
	firstPath  string
	secondPath string
	interval   time.Duration
	opts       []htmldiff.Option

	upgrader websocket.Upgrader

	mu         sync.Mutex
	conns      map[*conn]struct{}
	generation int
	last       Update
}

// conn wraps a WebSocket connection with a write mutex so broadcast and
// connect-time sends never interleave frames.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) send(u Update) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(u)
}

// New creates a server watching the two given files.
func New(firstPath, secondPath string, interval time.Duration, opts ...htmldiff.Option) *Server {
	return &Server{
		firstPath:  firstPath,
		secondPath: secondPath,
		interval:   interval,
		opts:       opts,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*conn]struct{}),
	}
}

// Run serves the viewer page and WebSocket endpoint on addr and polls the
// watched files until the listener fails.
func (s *Server) Run(addr string) error {
	s.refresh()
	go s.watch()

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)

	log.Printf("watching %s and %s on http://%s", s.firstPath, s.secondPath, addr)
	return http.ListenAndServe(addr, mux)
}

// Handler returns the HTTP handler without starting the watcher; used by
// tests to drive the server through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ws", s.handleWS)
	return mux
}

// watch polls the watched files' mtimes and refreshes on any change.
func (s *Server) watch() {
	var firstSeen, secondSeen time.Time
	firstSeen = mtime(s.firstPath)
	secondSeen = mtime(s.secondPath)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for range ticker.C {
		first, second := mtime(s.firstPath), mtime(s.secondPath)
		if first.Equal(firstSeen) && second.Equal(secondSeen) {
			continue
		}
		firstSeen, secondSeen = first, second
		s.refresh()
		s.broadcast()
	}
}

func mtime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// refresh recomputes the diff and stores it as the latest update.
func (s *Server) refresh() {
	update := Update{}

	first, err1 := os.ReadFile(s.firstPath)
	second, err2 := os.ReadFile(s.secondPath)
	switch {
	case err1 != nil:
		update.Error = fmt.Sprintf("%q: error: %v", s.firstPath, err1)
	case err2 != nil:
		update.Error = fmt.Sprintf("%q: error: %v", s.secondPath, err2)
	default:
		diffs, err := htmldiff.CompareHTML(string(first), string(second), s.opts...)
		if err != nil {
			update.Error = err.Error()
		} else {
			update.Differences = make([]string, 0, len(diffs))
			for _, d := range diffs {
				update.Differences = append(update.Differences, d.String())
			}
		}
	}

	s.mu.Lock()
	s.generation++
	update.Generation = s.generation
	s.last = update
	s.mu.Unlock()
}

// broadcast sends the latest update to every connection, dropping the ones
// that fail.
func (s *Server) broadcast() {
	s.mu.Lock()
	update := s.last
	conns := make([]*conn, 0, len(s.conns))
	for c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	for _, c := range conns {
		if err := c.send(update); err != nil {
			log.Printf("dropping connection: %v", err)
			s.remove(c)
		}
	}
}

func (s *Server) remove(c *conn) {
	s.mu.Lock()
	delete(s.conns, c)
	s.mu.Unlock()
	c.ws.Close()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	c := &conn{ws: ws}
	s.mu.Lock()
	s.conns[c] = struct{}{}
	last := s.last
	s.mu.Unlock()

	if err := c.send(last); err != nil {
		s.remove(c)
		return
	}

	// Clients never send application frames; the read loop only detects
	// disconnects.
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				s.remove(c)
				return
			}
		}
	}()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, indexPage, s.firstPath, s.secondPath)
}

const indexPage = `<!DOCTYPE html>
<html>
<head><title>htmldiff</title>
<style>
body { font-family: monospace; margin: 2rem; }
li { margin: 0.25rem 0; }
.empty { color: #2a2; }
.error { color: #a22; }
</style>
</head>
<body>
<h1>%s vs %s</h1>
<p id="status"></p>
<ul id="differences"></ul>
<script>
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (ev) => {
	const update = JSON.parse(ev.data);
	const status = document.getElementById("status");
	const list = document.getElementById("differences");
	list.innerHTML = "";
	if (update.error) {
		status.textContent = update.error;
		status.className = "error";
		return;
	}
	const diffs = update.differences || [];
	status.textContent = "generation " + update.generation + ": " +
		(diffs.length ? diffs.length + " difference(s)" : "documents match");
	status.className = diffs.length ? "" : "empty";
	for (const line of diffs) {
		const li = document.createElement("li");
		li.textContent = line;
		list.appendChild(li);
	}
};
</script>
</body>
</html>
`
