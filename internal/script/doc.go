// Package script runs JSON operation pipelines over a str.String.
//
// A pipeline is a JSON document listing steps in order:
//
//	{
//	  "name": "tidy",
//	  "steps": [
//	    {"op": "trim"},
//	    {"op": "replace", "needle": "\t", "target": "    "},
//	    {"op": "unicode_upper"}
//	  ]
//	}
//
// Steps that the underlying String reports as no-ops (an Erase outside the
// content, an Insert of empty text) do not fail the run; the Result records
// them with OK set to false. Malformed steps are rejected by Parse with a
// *StepError.
//
// Result.JSON renders a report of the run, optionally pretty printed and
// coloured for terminals.
package script
