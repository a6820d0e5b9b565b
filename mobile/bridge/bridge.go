// Package bridge provides a gomobile-compatible wrapper around an abacus
// session for native keypad front ends.
package bridge

import (
	"errors"
	"sync"

	"github.com/abacus-labs/abacus"
	"github.com/abacus-labs/abacus/core/config"
	"github.com/abacus-labs/abacus/pkg/logging"
	"go.uber.org/zap/zapcore"
)

//go:generate mockgen -package=mocks -destination=../../mocks/mock_display_updater.go github.com/abacus-labs/abacus/mobile/bridge DisplayUpdater

// DisplayUpdater is implemented by native code to render the calculator.
type DisplayUpdater interface {
	// OnDisplayUpdate is called after every accepted key press with the text
	// to show and the most recent history entry ("" when there is none).
	OnDisplayUpdate(display, lastEntry string)
	// OnError is called when a key press or a session command is rejected.
	OnError(message string)
}

// ErrNoSession is returned when a key press arrives before StartSession.
var ErrNoSession = errors.New("session not started")

// logOutput receives the session logs; nil keeps zap's default sinks.
var logOutput zapcore.WriteSyncer

// SetLogOutputForTesting redirects logs of bridges created afterwards.
func SetLogOutputForTesting(w zapcore.WriteSyncer) {
	logOutput = w
}

type displayUpdate struct {
	display   string
	lastEntry string
}

// updateQueue collects engine changes while the bridge lock is held so that
// they reach the native updater only after it is released.
type updateQueue []displayUpdate

func (q *updateQueue) OnChange(display, lastEntry string) {
	*q = append(*q, displayUpdate{display: display, lastEntry: lastEntry})
}

// Bridge serializes key presses from native callbacks into one session.
// The updater is always called without the bridge lock held, so it may read
// the bridge or press further keys from inside a callback.
type Bridge struct {
	mu      sync.Mutex
	session *abacus.Session
	updater DisplayUpdater
	queue   updateQueue
}

// New creates a Bridge from a YAML configuration; an empty string uses the
// defaults. The logging section of the configuration replaces the global logger.
func New(configYAML string, updater DisplayUpdater) (*Bridge, error) {
	cfg, err := config.ParseConfig([]byte(configYAML))
	if err != nil {
		return nil, err
	}
	logging.InitLogger(cfg.Logging.Level, cfg.Logging.Format, logOutput)

	b := &Bridge{updater: updater}
	logger := logging.GetLogger().With("component", "bridge")
	b.session, err = abacus.NewSession(cfg, logger, &b.queue)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Press applies a single key token such as "7", "+", "=" or "mode:scientific".
func (b *Bridge) Press(token string) error {
	b.mu.Lock()
	err := b.session.Press(token)
	updates := b.queue
	b.queue = nil
	b.mu.Unlock()

	for _, u := range updates {
		b.updater.OnDisplayUpdate(u.display, u.lastEntry)
	}
	if err != nil {
		b.updater.OnError(err.Error())
		return err
	}
	return nil
}

// Display returns the text currently shown.
func (b *Bridge) Display() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session.Display()
}

// LastHistoryEntry returns the most recent history entry or "".
func (b *Bridge) LastHistoryEntry() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry, _ := b.session.LastHistoryEntry()
	return entry
}

var (
	globalMu     sync.Mutex
	globalBridge *Bridge
)

// SetGlobalBridgeForTesting replaces the global bridge.
func SetGlobalBridgeForTesting(b *Bridge) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalBridge = b
}

// StartSession creates the global session and renders its initial display.
// An empty configYAML uses the defaults.
func StartSession(configYAML string, updater DisplayUpdater) {
	globalMu.Lock()
	if globalBridge != nil {
		globalMu.Unlock()
		updater.OnError("Session already started")
		return
	}
	b, err := New(configYAML, updater)
	if err != nil {
		globalMu.Unlock()
		updater.OnError("Failed to start session: " + err.Error())
		return
	}
	globalBridge = b
	globalMu.Unlock()

	updater.OnDisplayUpdate(b.Display(), b.LastHistoryEntry())
}

// Press applies a key token to the global session.
func Press(token string) error {
	globalMu.Lock()
	b := globalBridge
	globalMu.Unlock()

	if b == nil {
		return ErrNoSession
	}
	return b.Press(token)
}

// StopSession discards the global session.
func StopSession(updater DisplayUpdater) {
	globalMu.Lock()
	b := globalBridge
	globalBridge = nil
	globalMu.Unlock()

	if b == nil {
		updater.OnError("Session not running")
		return
	}
	updater.OnDisplayUpdate("0", "")
}
