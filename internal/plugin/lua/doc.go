// Package lua exposes the text engine to Lua scripts.
//
// This package wraps the gopher-lua library to provide:
//   - a sandboxed State (no io, os, debug or package libraries, no loaders)
//   - a Bridge converting values between Go and Lua
//   - the global crtext module backed by an engine.Engine
//   - a Transformer that runs a script's transform(s) over owned strings
//
// # Scripts
//
// A transform script defines a global function transform. It receives the
// text as a String userdata whose methods (Append, Replace, Trim, Find and
// so on) are reachable through gopher-luar:
//
//	settings.name = "shout"
//	settings.trim_input = true
//
//	function transform(s)
//	    s:Replace("hello", "hi")
//	    return crtext.upper(s:String())
//	end
//
// transform may modify s in place and return nothing, or return a string
// or a String that replaces the text.
//
// The settings table starts with the values given by the host (the lua.settings
// section of the configuration) and is decoded back into ScriptSettings after
// the script has loaded.
//
// # Confinement
//
// A State must only be used by the goroutine that created it. Each call is
// bounded by the execution timeout; scripts that exceed it fail with
// ErrExecutionTimeout.
package lua
