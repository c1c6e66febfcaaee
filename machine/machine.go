package machine

import (
	"fmt"
	"log"
	"strings"

	"github.com/ezrec/bfi/channel"
	"github.com/ezrec/bfi/program"
)

const (
	DEFAULT_TAPE_SIZE = 30000 // Cells in a tape unless configured otherwise.
	DUMP_WINDOW       = 8     // Cells shown either side of the pointer by String.
)

// Config of a machine.
type Config struct {
	TapeSize int    // Initial number of cells.
	Policy   Policy // Out-of-range data pointer handling.
}

// DefaultConfig returns the configuration of a classic 30000 cell machine.
func DefaultConfig() Config {
	return Config{
		TapeSize: DEFAULT_TAPE_SIZE,
		Policy:   POLICY_FATAL,
	}
}

// Validate checks the configuration.
func (config Config) Validate() (err error) {
	if config.TapeSize <= 0 {
		err = ErrTapeSize
		return
	}

	if !config.Policy.Valid() {
		err = ErrPolicy
		return
	}

	return
}

// Machine is the execution state of a single run.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Config  Config           // Machine configuration.
	Program *program.Program // Program being executed.
	Channel channel.Channel  // Input and output.

	Tape    []uint8 // Memory tape.
	Pointer int     // Data pointer.
	Pc      int     // Program counter.
	Ticks   int     // Instructions executed since reset.
}

// NewMachine creates a machine with a zeroed tape.
func NewMachine(config Config) (m *Machine, err error) {
	err = config.Validate()
	if err != nil {
		return
	}

	m = &Machine{
		Config: config,
		Tape:   make([]uint8, config.TapeSize),
	}

	return
}

// Reset the machine state.
// - Zeros the tape, restoring its configured size.
// - Zeros the data pointer, program counter and tick counter.
// - Rewinds the channel.
func (m *Machine) Reset() {
	if m.Verbose {
		log.Printf("machine: reset, %d cells, %v policy", m.Config.TapeSize, m.Config.Policy)
	}

	if cap(m.Tape) >= m.Config.TapeSize {
		m.Tape = m.Tape[:m.Config.TapeSize]
		clear(m.Tape)
	} else {
		m.Tape = make([]uint8, m.Config.TapeSize)
	}

	m.Pointer = 0
	m.Pc = 0
	m.Ticks = 0

	if m.Channel != nil {
		m.Channel.Rewind()
	}
}

// Done returns true once the program counter has run off the program.
func (m *Machine) Done() bool {
	return m.Program == nil || m.Pc >= m.Program.Len()
}

// Cell returns the value of tape cell n.
func (m *Machine) Cell(n int) (value uint8, ok bool) {
	if n < 0 || n >= len(m.Tape) {
		return
	}

	return m.Tape[n], true
}

// cell resolves the data pointer to a tape cell, growing the tape if the
// policy permits.
func (m *Machine) cell() (cell *uint8, err error) {
	ptr := m.Pointer

	if ptr >= len(m.Tape) && m.Config.Policy == POLICY_GROW {
		m.Tape = append(m.Tape, make([]uint8, ptr+1-len(m.Tape))...)
	}

	if ptr < 0 || ptr >= len(m.Tape) {
		err = ErrOutOfRange
		return
	}

	cell = &m.Tape[ptr]
	return
}

func (m *Machine) move(delta int) {
	m.Pointer += delta

	if m.Config.Policy == POLICY_WRAP {
		size := len(m.Tape)
		m.Pointer = ((m.Pointer % size) + size) % size
	}
}

// Tick executes a single instruction.
// Returns done == true, without executing anything, once the program is
// complete.
func (m *Machine) Tick() (done bool, err error) {
	if m.Program == nil {
		err = ErrProgramMissing
		return
	}

	if m.Done() {
		done = true
		return
	}

	pc := m.Pc
	op := m.Program.Ops[pc]

	defer func() {
		if err != nil {
			dbg, _ := m.Program.Debug(pc)
			err = &ErrRuntime{
				Pc:      pc,
				Line:    dbg.Line,
				Column:  dbg.Column,
				Pointer: m.Pointer,
				Err:     err,
			}
		}
	}()

	if op == program.OP_RIGHT || op == program.OP_LEFT {
		if op == program.OP_RIGHT {
			m.move(1)
		} else {
			m.move(-1)
		}
	} else {
		var cell *uint8
		cell, err = m.cell()
		if err != nil {
			return
		}

		switch op {
		case program.OP_INC:
			*cell++
		case program.OP_DEC:
			*cell--
		case program.OP_OUTPUT:
			if m.Channel == nil {
				err = ErrChannelMissing
				return
			}
			err = m.Channel.Send(*cell)
			if err != nil {
				return
			}
		case program.OP_INPUT:
			if m.Channel == nil {
				err = ErrChannelMissing
				return
			}
			value, _ := m.Channel.Receive()
			*cell = value
		case program.OP_LOOP:
			if *cell == 0 {
				m.Pc = m.Program.Jump[pc]
			}
		case program.OP_END:
			if *cell != 0 {
				m.Pc = m.Program.Jump[pc]
			}
		}
	}

	if m.Verbose {
		log.Printf("machine: %04d %v ptr %d", pc, op, m.Pointer)
	}

	m.Pc++
	m.Ticks++

	return
}

// Run ticks the machine until the program completes or fails.
func (m *Machine) Run() (err error) {
	for {
		var done bool
		done, err = m.Tick()
		if err != nil || done {
			return
		}
	}
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "   pc: %04d\n", m.Pc)
	fmt.Fprintf(&sb, "  ptr: %d\n", m.Pointer)
	fmt.Fprintf(&sb, "ticks: %d\n", m.Ticks)
	fmt.Fprintf(&sb, " tape:")

	lo := max(m.Pointer-DUMP_WINDOW, 0)
	hi := min(m.Pointer+DUMP_WINDOW+1, len(m.Tape))
	for n := lo; n < hi; n++ {
		if n == m.Pointer {
			fmt.Fprintf(&sb, " [%02X]", m.Tape[n])
		} else {
			fmt.Fprintf(&sb, " %02X", m.Tape[n])
		}
	}
	sb.WriteString("\n")

	return sb.String()
}
