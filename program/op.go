package program

// Op is a single machine instruction.
type Op uint8

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_RIGHT  = Op(0) // >
	OP_LEFT   = Op(1) // <
	OP_INC    = Op(2) // +
	OP_DEC    = Op(3) // -
	OP_OUTPUT = Op(4) // .
	OP_INPUT  = Op(5) // ,
	OP_LOOP   = Op(6) // [
	OP_END    = Op(7) // ]
)

var _op_decode = map[byte]Op{
	'>': OP_RIGHT,
	'<': OP_LEFT,
	'+': OP_INC,
	'-': OP_DEC,
	'.': OP_OUTPUT,
	',': OP_INPUT,
	'[': OP_LOOP,
	']': OP_END,
}

// OpOf decodes a source character. Returns false for commentary.
func OpOf(ch byte) (op Op, ok bool) {
	op, ok = _op_decode[ch]
	return
}

// Bracket returns true for the loop instructions.
func (op Op) Bracket() bool {
	return op == OP_LOOP || op == OP_END
}
