package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	luar "layeh.com/gopher-luar"

	"github.com/dshills/crtext/internal/engine"
	"github.com/dshills/crtext/internal/engine/format"
	"github.com/dshills/crtext/internal/engine/str"
	"github.com/dshills/crtext/internal/engine/view"
)

// ModuleName is the global under which the text functions are installed.
const ModuleName = "crtext"

// InstallModule exposes e to scripts as the global table crtext:
//
//	crtext.new(text)           owned String (methods via gopher-luar)
//	crtext.view(text)          read-only View
//	crtext.format(tpl, ...)    formatted string
//	crtext.upper(text)         table driven Unicode upper case
//	crtext.split(text, delim)  array of strings
//	crtext.join(list, delim)   string
//	crtext.matches(a, b)       case-insensitive equality
func InstallModule(s *State, e *engine.Engine) *lua.LTable {
	b := NewBridge(s.L)

	mod := s.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"format": func(L *lua.LState) int {
			tpl := L.CheckString(1)
			args := make([]format.Arg, 0, L.GetTop()-1)
			for i := 2; i <= L.GetTop(); i++ {
				args = append(args, toArg(L.Get(i)))
			}
			L.Push(lua.LString(e.Sprintf(tpl, args...)))
			return 1
		},
		"split": func(L *lua.LState) int {
			parts := view.New(L.CheckString(1)).Split(L.CheckString(2))
			t := L.CreateTable(len(parts), 0)
			for i, p := range parts {
				t.RawSetInt(i+1, lua.LString(p.String()))
			}
			L.Push(t)
			return 1
		},
		"join": func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			delim := L.OptString(2, "")
			parts := make([]*str.String, 0, tbl.Len())
			for i := 1; i <= tbl.Len(); i++ {
				parts = append(parts, str.New(L.ToStringMeta(tbl.RawGetInt(i)).String()))
			}
			L.Push(lua.LString(str.Join(parts, delim, 0).String()))
			return 1
		},
	})

	mod.RawSetString("new", luar.New(s.L, e.NewString))
	mod.RawSetString("view", luar.New(s.L, view.New))
	mod.RawSetString("upper", luar.New(s.L, e.Upper))
	mod.RawSetString("matches", luar.New(s.L, e.Matches))
	mod.RawSetString("invalid_index", b.ToLuaValue(engine.InvalidIndex))
	return mod
}

// toArg converts a Lua value into a formatting argument. Integral numbers
// become Int so that %d works, other numbers Float.
func toArg(lv lua.LValue) format.Arg {
	switch v := lv.(type) {
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return format.Int64(int64(f))
		}
		return format.Float(f)
	case lua.LString:
		return format.Str(string(v))
	case lua.LBool:
		return format.Bool(bool(v))
	case *lua.LUserData:
		if s, ok := v.Value.(fmt.Stringer); ok {
			return format.Stringer(s)
		}
	}
	return format.Str(lv.String())
}
