package stream

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/http2"

	"github.com/spellforge/client-go/component"
	"github.com/spellforge/client-go/errors"
	"github.com/spellforge/client-go/events"
	"github.com/spellforge/client-go/logger"
	"github.com/spellforge/client-go/sse"
	"github.com/spellforge/client-go/version"
)

// Manager owns exactly one live SSE transport and the merged stream
// state. Only the manager writes the state; consumers read snapshots or
// subscribe to updates.
//
// All lifecycle callbacks (the read loop, the reconnect timer) carry an
// epoch token captured at connect time. The token goes stale when the
// connection is torn down, so no callback registered before a teardown
// can write state after it.
type Manager struct {
	cfg      Config
	registry *events.Registry
	log      *logger.Logger
	metrics  *managerMetrics
	client   *http.Client

	mu        sync.Mutex
	epoch     uint64
	state     events.State
	cancel    context.CancelFunc
	timer     *time.Timer
	retryHint time.Duration
	subs      map[int]chan events.State
	nextSub   int
}

// New creates a Manager. A nil log discards output. When
// cfg.AutoConnect is unset or true the manager connects immediately;
// Connect is only needed after an explicit Disconnect or with
// AutoConnect disabled.
func New(cfg Config, log *logger.Logger) (*Manager, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	registry, err := events.NewRegistry()
	if err != nil {
		return nil, err
	}

	metrics, err := newManagerMetrics()
	if err != nil {
		return nil, errors.Internal(err)
	}

	if log == nil {
		log = logger.Nop()
	}

	transport := &http.Transport{Proxy: http.ProxyFromEnvironment}
	if err := http2.ConfigureTransport(transport); err != nil {
		return nil, errors.Internal(err)
	}

	m := &Manager{
		cfg:      cfg,
		registry: registry,
		log: log.WithComponent("stream").WithFields(map[string]interface{}{
			logger.FieldConnection: uuid.NewString(),
		}),
		metrics: metrics,
		// No client timeout: the stream is long-lived, the transport
		// context handles cancellation.
		client: &http.Client{Transport: transport},
		state:  events.NewState(),
		subs:   make(map[int]chan events.State),
	}

	if *cfg.AutoConnect {
		m.Connect()
	}
	return m, nil
}

// Connect opens the stream. It returns immediately; progress shows up
// in the published state. Calling Connect while already connecting or
// connected tears down the prior transport first, so two transports are
// never live at once.
func (m *Manager) Connect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectLocked()
}

// Disconnect closes the stream and cancels any pending reconnect. The
// manager stays disconnected until Connect is called again.
func (m *Manager) Disconnect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.epoch++
	m.teardownLocked()
	next := m.state
	next.Connection = events.StateDisconnected
	next.ConnectionError = ""
	m.replaceLocked(next)
	m.log.Info("stream disconnected")
}

// Snapshot returns a copy of the current state. Slices and pointers
// inside it are never mutated in place by later folds, so the copy is
// safe to retain.
func (m *Manager) Snapshot() events.State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers for state updates. The channel is seeded with the
// current state and receives a fresh snapshot after every change.
// Updates to a full channel are dropped, never blocked on. The returned
// function unsubscribes and closes the channel.
func (m *Manager) Subscribe() (<-chan events.State, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	ch := make(chan events.State, m.cfg.SubscriberBuffer)
	ch <- m.state
	m.subs[id] = ch
	return ch, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if c, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(c)
		}
	}
}

// connectLocked tears down any prior transport and opens a new one.
func (m *Manager) connectLocked() {
	m.teardownLocked()
	m.epoch++
	epoch := m.epoch

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel

	next := m.state
	next.Connection = events.StateConnecting
	next.ConnectionError = ""
	m.replaceLocked(next)
	m.log.Info("stream connecting", logger.Fields("url", m.cfg.URL))

	go m.run(ctx, epoch)
}

// teardownLocked cancels the active transport and stops the pending
// reconnect timer, leaving at most zero of each.
func (m *Manager) teardownLocked() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// run dials the endpoint and pumps events until the transport fails or
// the epoch goes stale.
func (m *Manager) run(ctx context.Context, epoch uint64) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.cfg.URL, nil)
	if err != nil {
		m.fail(epoch, errors.ConnectionFailed(m.cfg.URL, err))
		return
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := m.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		m.fail(epoch, errors.ConnectionFailed(m.cfg.URL, err))
		return
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		m.fail(epoch, errors.ConnectionFailed(m.cfg.URL, fmt.Errorf("unexpected status %d", resp.StatusCode)))
		return
	}

	reader := sse.NewReader(resp.Body)
	defer func() { _ = reader.Close() }()

	if !m.opened(epoch) {
		return
	}

	for {
		ev, err := reader.Next()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			m.fail(epoch, errors.StreamClosed(err))
			return
		}
		m.dispatch(epoch, ev)
	}
}

// opened marks the transition to connected. Returns false when the
// connection was superseded while dialing.
func (m *Manager) opened(epoch uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if epoch != m.epoch {
		return false
	}
	next := m.state
	next.Connection = events.StateConnected
	next.ConnectionError = ""
	next.LastActivity = time.Now()
	m.replaceLocked(next)
	m.log.Info("stream connected")
	return true
}

// dispatch decodes one wire event, folds it, and replaces the state in
// a single write.
func (m *Manager) dispatch(epoch uint64, ev *sse.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if epoch != m.epoch {
		return
	}

	if ev.Retry > 0 {
		m.retryHint = time.Duration(ev.Retry) * time.Millisecond
	}

	typ := events.Type(ev.Event)
	entry, ok := m.registry.Lookup(typ)
	if !ok {
		// Outside the vocabulary: log and drop, state untouched.
		m.log.Warn("unknown event type dropped", logger.Fields(logger.FieldEventType, ev.Event))
		m.metrics.recordUnknown(context.Background(), ev.Event)
		return
	}

	now := time.Now()
	payload, err := entry.Decode([]byte(ev.Data))
	if err != nil {
		// A received frame is activity even when unparseable, so
		// stalls stay distinguishable from genuine silence.
		m.log.WithError(err).Warn("malformed event payload dropped",
			logger.Fields(logger.FieldEventType, ev.Event))
		m.metrics.recordDecodeFailure(context.Background(), ev.Event)
		next := m.state
		next.LastActivity = now
		m.replaceLocked(next)
		return
	}

	next := entry.Fold(m.state, payload)
	// Folds own the slots; connection metadata stays with the manager.
	next.Connection = m.state.Connection
	next.ConnectionError = m.state.ConnectionError
	next.LastActivity = now
	m.replaceLocked(next)
	m.metrics.recordEvent(context.Background(), ev.Event)
	m.log.Debug("event dispatched", logger.Fields(logger.FieldEventType, ev.Event))
}

// fail records a transport failure and schedules the single reconnect
// attempt.
func (m *Manager) fail(epoch uint64, appErr *errors.AppError) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if epoch != m.epoch {
		return
	}
	m.teardownLocked()

	next := m.state
	next.Connection = events.StateError
	next.ConnectionError = appErr.Message
	m.replaceLocked(next)

	delay := m.cfg.ReconnectDelay
	if m.cfg.HonorServerRetry && m.retryHint > 0 {
		delay = m.retryHint
	}
	m.log.WithError(appErr).Warn("stream failed, reconnect scheduled",
		logger.Fields("delay", delay.String()))
	m.metrics.recordReconnect(context.Background())

	m.timer = time.AfterFunc(delay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if epoch != m.epoch {
			return
		}
		m.timer = nil
		m.connectLocked()
	})
}

// replaceLocked installs the next state and fans it out. Slow
// subscribers miss intermediate snapshots rather than blocking the
// dispatch path.
func (m *Manager) replaceLocked(next events.State) {
	m.state = next
	for _, ch := range m.subs {
		select {
		case ch <- next:
		default:
		}
	}
}

// --- component.Component ---

// Name implements component.Component.
func (m *Manager) Name() string { return "stream" }

// Start implements component.Component by connecting the stream.
func (m *Manager) Start(ctx context.Context) error {
	m.Connect()
	return nil
}

// Stop implements component.Component by disconnecting the stream.
func (m *Manager) Stop(ctx context.Context) error {
	m.Disconnect()
	return nil
}

// Health implements component.Component from the connection state.
func (m *Manager) Health(ctx context.Context) component.Health {
	s := m.Snapshot()
	h := component.Health{Name: m.Name()}
	switch s.Connection {
	case events.StateConnected:
		h.Status = component.StatusHealthy
	case events.StateConnecting:
		h.Status = component.StatusDegraded
		h.Message = "connecting"
	case events.StateError:
		h.Status = component.StatusDegraded
		h.Message = s.ConnectionError
	default:
		h.Status = component.StatusUnhealthy
		h.Message = "disconnected"
	}
	return h
}
