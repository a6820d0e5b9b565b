package bridge_test

import (
	"bytes"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/abacus-labs/abacus/core/dispatch"
	"github.com/abacus-labs/abacus/mobile/bridge"
	"github.com/abacus-labs/abacus/mocks"
	"github.com/abacus-labs/abacus/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"
)

func TestMain(m *testing.M) {
	testutils.NewTestLogger()
	bridge.SetLogOutputForTesting(zapcore.AddSync(io.Discard))
	m.Run()
}

func TestBridge_RendersEachKeyPress(t *testing.T) {
	ctrl := gomock.NewController(t)
	updater := mocks.NewMockDisplayUpdater(ctrl)

	gomock.InOrder(
		updater.EXPECT().OnDisplayUpdate("1", ""),
		updater.EXPECT().OnDisplayUpdate("12", ""),
		updater.EXPECT().OnDisplayUpdate("12", ""),
		updater.EXPECT().OnDisplayUpdate("3", ""),
		updater.EXPECT().OnDisplayUpdate("4", "12 / 3 = 4"),
	)

	b, err := bridge.New("", updater)
	require.NoError(t, err)
	for _, tok := range []string{"1", "2", "/", "3", "="} {
		require.NoError(t, b.Press(tok))
	}
	assert.Equal(t, "4", b.Display())
	assert.Equal(t, "12 / 3 = 4", b.LastHistoryEntry())
}

func TestBridge_ReportsRejectedKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	updater := mocks.NewMockDisplayUpdater(ctrl)
	updater.EXPECT().OnError(gomock.Any()).Times(1)

	b, err := bridge.New("", updater)
	require.NoError(t, err)
	assert.ErrorIs(t, b.Press("sqrt"), dispatch.ErrUnknownIntent)
}

func TestBridge_InvalidYAML(t *testing.T) {
	ctrl := gomock.NewController(t)
	updater := mocks.NewMockDisplayUpdater(ctrl)

	_, err := bridge.New("not: valid: yaml", updater)
	assert.Error(t, err)
}

func TestStartSession_Lifecycle(t *testing.T) {
	bridge.SetGlobalBridgeForTesting(nil)
	ctrl := gomock.NewController(t)
	updater := mocks.NewMockDisplayUpdater(ctrl)

	gomock.InOrder(
		updater.EXPECT().OnDisplayUpdate("0", ""),
		updater.EXPECT().OnDisplayUpdate("5", ""),
		updater.EXPECT().OnDisplayUpdate("-5", ""),
		updater.EXPECT().OnError("Session already started"),
		updater.EXPECT().OnDisplayUpdate("0", ""),
		updater.EXPECT().OnError("Session not running"),
	)

	bridge.StartSession("logging:\n  level: debug\n", updater)
	require.NoError(t, bridge.Press("5"))
	require.NoError(t, bridge.Press("+/-"))
	bridge.StartSession("", updater)
	bridge.StopSession(updater)
	bridge.StopSession(updater)

	assert.ErrorIs(t, bridge.Press("1"), bridge.ErrNoSession)
}

func TestStartSession_InvalidConfig(t *testing.T) {
	bridge.SetGlobalBridgeForTesting(nil)
	ctrl := gomock.NewController(t)
	updater := mocks.NewMockDisplayUpdater(ctrl)
	updater.EXPECT().OnError(gomock.Any()).Times(1)

	bridge.StartSession("input:\n  rate_per_second: -3\n", updater)
	assert.ErrorIs(t, bridge.Press("1"), bridge.ErrNoSession)
}

// callbackUpdater records what it is shown and runs hooks from inside the
// callbacks, the way native code reacting to a redraw would.
type callbackUpdater struct {
	mu       sync.Mutex
	displays []string
	errors   []string
	each     func()
	once     func()
}

func (u *callbackUpdater) OnDisplayUpdate(display, lastEntry string) {
	u.mu.Lock()
	u.displays = append(u.displays, display)
	each, once := u.each, u.once
	u.once = nil
	u.mu.Unlock()

	if each != nil {
		each()
	}
	if once != nil {
		once()
	}
}

func (u *callbackUpdater) OnError(message string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.errors = append(u.errors, message)
}

func finishesWithin(t *testing.T, d time.Duration, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("bridge call blocked while the updater read it back")
	}
}

func TestBridge_UpdaterMayReadBridgeDuringCallback(t *testing.T) {
	updater := &callbackUpdater{}
	b, err := bridge.New("", updater)
	require.NoError(t, err)

	var seen []string
	updater.each = func() {
		seen = append(seen, b.Display()+"|"+b.LastHistoryEntry())
	}

	finishesWithin(t, 2*time.Second, func() {
		for _, tok := range []string{"7", "+", "2", "="} {
			assert.NoError(t, b.Press(tok))
		}
		assert.Error(t, b.Press("sqrt"))
	})

	assert.Equal(t, []string{"7|", "7|", "2|", "9|7 + 2 = 9"}, seen)
	assert.Equal(t, []string{"7", "7", "2", "9"}, updater.displays)
	assert.Len(t, updater.errors, 1)
}

func TestStartSession_UpdaterMayCallBackIntoSession(t *testing.T) {
	bridge.SetGlobalBridgeForTesting(nil)
	t.Cleanup(func() { bridge.SetGlobalBridgeForTesting(nil) })

	updater := &callbackUpdater{}
	updater.once = func() {
		assert.NoError(t, bridge.Press("7"))
	}

	finishesWithin(t, 2*time.Second, func() {
		bridge.StartSession("", updater)
	})
	assert.Equal(t, []string{"0", "7"}, updater.displays)

	var pressErr error
	updater.once = func() {
		pressErr = bridge.Press("1")
	}
	finishesWithin(t, 2*time.Second, func() {
		bridge.StopSession(updater)
	})
	assert.ErrorIs(t, pressErr, bridge.ErrNoSession)
	assert.Equal(t, []string{"0", "7", "0"}, updater.displays)
	assert.Empty(t, updater.errors)
}

func TestNew_AppliesConfiguredLogging(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		wantComputed bool
		wantIntents  bool
	}{
		{"warn hides computations", "warn", false, false},
		{"info shows computations", "info", true, false},
		{"debug shows intents", "debug", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			bridge.SetLogOutputForTesting(zapcore.AddSync(&buf))
			t.Cleanup(func() {
				bridge.SetLogOutputForTesting(zapcore.AddSync(io.Discard))
				testutils.NewTestLogger()
			})

			b, err := bridge.New("logging:\n  level: "+tt.level+"\n  format: json\n", &callbackUpdater{})
			require.NoError(t, err)
			for _, tok := range []string{"1", "+", "2", "="} {
				require.NoError(t, b.Press(tok))
			}

			out := buf.String()
			assert.Equal(t, tt.wantComputed, bytes.Contains(buf.Bytes(), []byte(`"msg":"computation completed"`)), out)
			assert.Equal(t, tt.wantIntents, bytes.Contains(buf.Bytes(), []byte(`"msg":"intent applied"`)), out)
		})
	}
}
