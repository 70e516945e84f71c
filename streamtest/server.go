package streamtest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// Server is a scripted SSE endpoint. Frames queued with Send are
// broadcast to every connected client; DropClients closes all live
// connections server-side so reconnect behavior can be observed.
type Server struct {
	srv *httptest.Server

	mu      sync.Mutex
	clients map[int]chan string
	nextID  int
	total   int
}

// NewServer starts the server. Callers must Close it.
func NewServer() *Server {
	s := &Server{clients: make(map[int]chan string)}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// URL returns the endpoint to connect to.
func (s *Server) URL() string { return s.srv.URL }

// Send broadcasts one event frame. An empty data string sends a frame
// with only an event line, the way keep-alive pings arrive.
func (s *Server) Send(eventType, data string) {
	frame := "event: " + eventType + "\n"
	if data != "" {
		frame += "data: " + data + "\n"
	}
	s.SendRaw(frame + "\n")
}

// SendRaw broadcasts raw bytes, for malformed or hand-built frames.
func (s *Server) SendRaw(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.clients {
		select {
		case ch <- raw:
		default:
		}
	}
}

// DropClients closes every live connection from the server side.
func (s *Server) DropClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, ch := range s.clients {
		close(ch)
		delete(s.clients, id)
	}
}

// Connections returns the total number of connections ever accepted.
func (s *Server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Active returns the number of currently connected clients.
func (s *Server) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close drops all clients and shuts the server down.
func (s *Server) Close() {
	s.DropClients()
	s.srv.Close()
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, ": stream open\n\n")
	flusher.Flush()

	id, ch := s.addClient()
	defer s.removeClient(id)

	for {
		select {
		case frame, open := <-ch:
			if !open {
				return
			}
			if _, err := io.WriteString(w, frame); err != nil {
				return
			}
			flusher.Flush()
		case <-r.Context().Done():
			return
		}
	}
}

func (s *Server) addClient() (int, chan string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.total++
	ch := make(chan string, 64)
	s.clients[id] = ch
	return id, ch
}

func (s *Server) removeClient(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.clients[id]; ok {
		close(ch)
		delete(s.clients, id)
	}
}
