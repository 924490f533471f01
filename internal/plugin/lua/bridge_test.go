package lua

import (
	"testing"

	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/crtext/internal/engine/str"
)

func TestBridgeToGoValue(t *testing.T) {
	state := NewState()
	defer state.Close()
	b := NewBridge(state.L)

	require.NoError(t, state.DoString(`
arr = {"a", "b", 3}
obj = {name = "x", count = 2, ratio = 0.5, nested = {flag = true}}
cyc = {}
cyc.self = cyc
`))

	require.Equal(t, []any{"a", "b", int64(3)}, b.ToGoValue(state.GetGlobal("arr")))
	require.Equal(t, map[string]any{
		"name":   "x",
		"count":  int64(2),
		"ratio":  0.5,
		"nested": map[string]any{"flag": true},
	}, b.ToGoValue(state.GetGlobal("obj")))
	require.Equal(t, map[string]any{"self": nil}, b.ToGoValue(state.GetGlobal("cyc")))
	require.Nil(t, b.ToGoValue(glua.LNil))
}

func TestBridgeToLuaValue(t *testing.T) {
	state := NewState()
	defer state.Close()
	b := NewBridge(state.L)

	state.SetGlobal("v", b.ToLuaValue(map[string]any{
		"list":  []any{1, "two"},
		"names": []string{"x", "y"},
		"n":     int32(7),
		"ok":    true,
	}))
	require.NoError(t, state.DoString(`
assert(v.list[1] == 1 and v.list[2] == "two")
assert(#v.names == 2 and v.names[2] == "y")
assert(v.n == 7 and v.ok == true)
`))

	s := str.New("abc")
	state.SetGlobal("s", b.ToLuaValue(s))
	require.NoError(t, state.DoString(`s:Append("def")`))
	require.Equal(t, "abcdef", s.String())

	ud, ok := b.ToLuaValue(s).(*glua.LUserData)
	require.True(t, ok)
	require.Same(t, s, b.ToGoValue(ud))
}

func TestBridgeDecode(t *testing.T) {
	state := NewState()
	defer state.Close()
	b := NewBridge(state.L)

	require.NoError(t, state.DoString(`settings = {name = "demo", trim_input = true, extra = 1}`))
	tbl, ok := state.GetGlobal("settings").(*glua.LTable)
	require.True(t, ok)

	var got ScriptSettings
	require.NoError(t, b.Decode(tbl, &got))
	require.Equal(t, ScriptSettings{Name: "demo", TrimInput: true}, got)
}
