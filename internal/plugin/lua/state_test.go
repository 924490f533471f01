package lua

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"
)

func TestNewState(t *testing.T) {
	state := NewState()
	defer state.Close()

	require.False(t, state.IsClosed())
	require.NoError(t, state.DoString(`x = 1 + 1`))
	require.Equal(t, glua.LNumber(2), state.GetGlobal("x"))
}

func TestStateSandbox(t *testing.T) {
	state := NewState()
	defer state.Close()

	for _, name := range []string{"io", "os", "debug", "package", "dofile", "loadfile", "load", "require"} {
		require.Equal(t, glua.LNil, state.GetGlobal(name), "global %s should not be available", name)
	}
	for _, name := range []string{"string", "table", "math", "pairs"} {
		require.NotEqual(t, glua.LNil, state.GetGlobal(name), "global %s should be available", name)
	}
}

func TestStatePrintLogs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	state := NewState(WithLogger(logrus.NewEntry(logger)))
	defer state.Close()

	require.NoError(t, state.DoString(`print("hello", 42)`))
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "hello\t42", entry.Message)
	require.Equal(t, "lua", entry.Data["source"])
}

func TestStateCall(t *testing.T) {
	state := NewState()
	defer state.Close()

	require.NoError(t, state.DoString(`
function add(a, b) return a + b end
function pair() return "a", "b" end
function none() end
notfn = 3
`))

	results, err := state.Call("add", glua.LNumber(2), glua.LNumber(3))
	require.NoError(t, err)
	require.Equal(t, []glua.LValue{glua.LNumber(5)}, results)

	results, err = state.Call("pair")
	require.NoError(t, err)
	require.Len(t, results, 2)

	results, err = state.Call("none")
	require.NoError(t, err)
	require.NotNil(t, results)
	require.Empty(t, results)

	_, err = state.Call("missing")
	require.ErrorIs(t, err, ErrFunctionNotFound)

	_, err = state.Call("notfn")
	require.Error(t, err)

	top := state.L.GetTop()
	_, err = state.Call("add", glua.LString("x"), glua.LNumber(1))
	require.Error(t, err)
	require.Equal(t, top, state.L.GetTop(), "failed call must not leave values on the stack")
}

func TestStateTimeout(t *testing.T) {
	state := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer state.Close()

	err := state.DoString(`while true do end`)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrExecutionTimeout), "got %v", err)

	// The state stays usable after a timeout.
	require.NoError(t, state.DoString(`y = 1`))
}

func TestStateClosed(t *testing.T) {
	state := NewState()
	state.Close()
	state.Close()

	require.True(t, state.IsClosed())
	require.ErrorIs(t, state.DoString(`x = 1`), ErrStateClosed)
	_, err := state.Call("f")
	require.ErrorIs(t, err, ErrStateClosed)
	require.Equal(t, glua.LNil, state.GetGlobal("x"))
}
