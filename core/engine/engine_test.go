package engine_test

import (
	"testing"

	"github.com/abacus-labs/abacus/core/engine"
	"github.com/abacus-labs/abacus/interfaces"
	"github.com/abacus-labs/abacus/mocks"
	"github.com/abacus-labs/abacus/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var _ interfaces.Calculator = (*engine.Engine)(nil)

func TestEngine_ChainedSession(t *testing.T) {
	e := engine.New(engine.WithLogger(testutils.NewTestLogger()))

	require.NoError(t, e.EnterDigit("2"))
	require.NoError(t, e.ApplyOperator(engine.Add))
	require.NoError(t, e.EnterDigit("3"))
	require.NoError(t, e.ApplyOperator(engine.Multiply))
	require.NoError(t, e.EnterDigit("4"))
	e.Equals()

	assert.Equal(t, "20", e.Display())
	last, ok := e.LastHistoryEntry()
	require.True(t, ok)
	assert.Equal(t, "5 * 4 = 20", last)
	assert.Equal(t, []string{"2 + 3 = 5", "5 * 4 = 20"}, e.History())
	assert.Equal(t, e.State().Display(), e.Display())
}

func TestEngine_ModeSwitchDiscardsPending(t *testing.T) {
	e := engine.New(engine.WithLogger(testutils.NewTestLogger()))

	require.NoError(t, e.EnterDigit("5"))
	require.NoError(t, e.ApplyOperator(engine.Add))
	require.NoError(t, e.SetMode(engine.Scientific))
	require.NoError(t, e.EnterDigit("3"))
	e.Equals()

	assert.Equal(t, "3", e.Display())
	assert.Equal(t, engine.Scientific, e.Mode())
	_, ok := e.LastHistoryEntry()
	assert.False(t, ok)
}

func TestEngine_InvalidInputKeepsState(t *testing.T) {
	e := engine.New(engine.WithLogger(testutils.NewTestLogger()))
	require.NoError(t, e.EnterDigit("9"))
	before := e.State()

	assert.ErrorIs(t, e.EnterDigit("x"), engine.ErrInvalidDigit)
	assert.ErrorIs(t, e.ApplyOperator(engine.Operator(99)), engine.ErrInvalidOperator)
	assert.ErrorIs(t, e.SetMode(engine.Mode(-1)), engine.ErrInvalidMode)
	assert.Equal(t, before, e.State())
}

func TestEngine_ID(t *testing.T) {
	a := engine.New(engine.WithLogger(testutils.NewTestLogger()))
	b := engine.New(engine.WithLogger(testutils.NewTestLogger()))

	_, err := uuid.Parse(a.ID())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestEngine_NotifiesObservers(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)

	gomock.InOrder(
		observer.EXPECT().OnChange("7", ""),
		observer.EXPECT().OnChange("7", ""),
		observer.EXPECT().OnChange("3", ""),
		observer.EXPECT().OnChange("10", "7 + 3 = 10"),
		observer.EXPECT().OnChange("10", "7 + 3 = 10"),
		observer.EXPECT().OnChange("-10", "7 + 3 = 10"),
		observer.EXPECT().OnChange("0", "7 + 3 = 10"),
	)

	e := engine.New(engine.WithLogger(testutils.NewTestLogger()), engine.WithObserver(observer), engine.WithObserver(nil))
	require.NoError(t, e.EnterDigit("7"))
	require.NoError(t, e.ApplyOperator(engine.Add))
	require.NoError(t, e.EnterDigit("3"))
	e.Equals()
	e.Equals()
	e.ToggleSign()
	e.Clear()
}

func TestEngine_RejectedIntentDoesNotNotify(t *testing.T) {
	ctrl := gomock.NewController(t)
	observer := mocks.NewMockObserver(ctrl)
	observer.EXPECT().OnChange(gomock.Any(), gomock.Any()).Times(0)

	e := engine.New(engine.WithLogger(testutils.NewTestLogger()), engine.WithObserver(observer))
	assert.Error(t, e.EnterDigit("12"))
}

func TestEngine_LogsComputations(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	logger.EXPECT().With("session_id", gomock.Any()).Return(logger)
	logger.EXPECT().Debug("intent applied", gomock.Any()).AnyTimes()
	logger.EXPECT().Info("computation completed", "entry", "1 / 0 = Infinity", "mode", "standard").Times(1)
	logger.EXPECT().Warn("non-finite result", "display", "Infinity").Times(1)
	logger.EXPECT().Info("mode changed", "from", "standard", "to", "scientific").Times(1)

	e := engine.New(engine.WithLogger(logger))
	require.NoError(t, e.EnterDigit("1"))
	require.NoError(t, e.ApplyOperator(engine.Divide))
	require.NoError(t, e.EnterDigit("0"))
	e.Equals()
	require.NoError(t, e.SetMode(engine.Scientific))
	require.NoError(t, e.SetMode(engine.Scientific))
}
