package script

// Op names a pipeline operation.
type Op string

// Supported operations.
const (
	OpAssign       Op = "assign"
	OpAppend       Op = "append"
	OpPrepend      Op = "prepend"
	OpInsert       Op = "insert"
	OpErase        Op = "erase"
	OpReplace      Op = "replace"
	OpTrim         Op = "trim"
	OpLTrim        Op = "ltrim"
	OpRTrim        Op = "rtrim"
	OpLower        Op = "lower"
	OpUpper        Op = "upper"
	OpUnicodeUpper Op = "unicode_upper"
	OpFullUpper    Op = "full_upper"
)

// field kinds required by each operation.
type field struct {
	name    string
	numeric bool
}

var opFields = map[Op][]field{
	OpAssign:       {{name: "text"}},
	OpAppend:       {{name: "text"}},
	OpPrepend:      {{name: "text"}},
	OpInsert:       {{name: "index", numeric: true}, {name: "text"}},
	OpErase:        {{name: "index", numeric: true}, {name: "count", numeric: true}},
	OpReplace:      {{name: "needle"}, {name: "target"}},
	OpTrim:         nil,
	OpLTrim:        nil,
	OpRTrim:        nil,
	OpLower:        nil,
	OpUpper:        nil,
	OpUnicodeUpper: nil,
	OpFullUpper:    nil,
}

// Valid reports whether op is a known operation.
func (op Op) Valid() bool {
	_, ok := opFields[op]
	return ok
}

// Ops returns every supported operation name.
func Ops() []Op {
	return []Op{
		OpAssign, OpAppend, OpPrepend, OpInsert, OpErase, OpReplace,
		OpTrim, OpLTrim, OpRTrim, OpLower, OpUpper, OpUnicodeUpper, OpFullUpper,
	}
}
