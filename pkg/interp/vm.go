package interp

import (
	"errors"
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/chazu/braingo/pkg/console"
)

var log = commonlog.GetLogger("braingo.vm")

// ArithmeticPolicy decides what happens when checked cell arithmetic fails.
type ArithmeticPolicy uint8

const (
	// PolicyIgnore drops the failed step: the cell keeps its value and the
	// run continues. This is the default.
	PolicyIgnore ArithmeticPolicy = iota

	// PolicyWrap wraps modulo 256, the classic native-overflow behavior.
	PolicyWrap

	// PolicyFail aborts the run with the arithmetic error.
	PolicyFail
)

// String returns the manifest/flag spelling of the policy.
func (p ArithmeticPolicy) String() string {
	switch p {
	case PolicyIgnore:
		return "ignore"
	case PolicyWrap:
		return "wrap"
	case PolicyFail:
		return "fail"
	default:
		return fmt.Sprintf("ArithmeticPolicy(%d)", uint8(p))
	}
}

// ParseArithmeticPolicy maps a manifest/flag spelling to a policy.
func ParseArithmeticPolicy(s string) (ArithmeticPolicy, error) {
	switch s {
	case "", "ignore":
		return PolicyIgnore, nil
	case "wrap":
		return PolicyWrap, nil
	case "fail":
		return PolicyFail, nil
	default:
		return 0, fmt.Errorf("unknown arithmetic policy %q (want ignore, wrap or fail)", s)
	}
}

// ErrEmptyProgram reports a run attempted with no instructions loaded.
var ErrEmptyProgram = errors.New("nothing to run: the program has no instructions")

// UnknownNodeError reports a node the dispatcher cannot interpret. The
// parser's invariants make this structurally impossible; it is checked
// anyway so a corrupted image fails loudly instead of looping.
type UnknownNodeError struct {
	Pos int
	Op  Op
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("unknown node %s at position %d", e.Op, e.Pos)
}

// Config carries the knobs a run is constructed with. Zero values select the
// defaults; nil collaborators select no-op I/O.
type Config struct {
	TapeSize   int
	StepLimit  uint64
	Arithmetic ArithmeticPolicy
	Input      console.Input
	Output     console.Output
}

type discardOutput struct{}

func (discardOutput) Print(console.Value) {}

type noInput struct{}

func (noInput) Read() (console.Value, error) {
	return 0, errors.New("no input collaborator configured")
}

// VM walks a resolved program with an explicit program counter, dispatching
// on node kind against the tape and the I/O collaborators. A VM is built for
// one configuration and may run any number of programs sequentially; it is
// not safe for concurrent use.
type VM struct {
	tape    Tape
	program *Program
	input   console.Input
	output  console.Output
	policy  ArithmeticPolicy
	limit   uint64

	// Transient run state, reset by Run.
	ip     int
	steps  budget
	lastOp Op
}

// NewVM creates a VM from cfg.
func NewVM(cfg Config) *VM {
	if cfg.TapeSize == 0 {
		cfg.TapeSize = DefaultTapeSize
	}
	if cfg.StepLimit == 0 {
		cfg.StepLimit = DefaultStepLimit
	}
	if cfg.Input == nil {
		cfg.Input = noInput{}
	}
	if cfg.Output == nil {
		cfg.Output = discardOutput{}
	}
	return &VM{
		tape:   NewFixedTape(cfg.TapeSize),
		input:  cfg.Input,
		output: cfg.Output,
		policy: cfg.Arithmetic,
		limit:  cfg.StepLimit,
	}
}

// Load sets the program for the next Run. The program is read-only to the
// VM; the caller may share it between VMs.
func (vm *VM) Load(p *Program) {
	vm.program = p
}

// Tape exposes the memory for diagnostics and tests.
func (vm *VM) Tape() Tape {
	return vm.tape
}

// LastOp returns the kind of the most recently dispatched instruction.
func (vm *VM) LastOp() Op {
	return vm.lastOp
}

// Steps returns the number of instructions dispatched by the last Run.
func (vm *VM) Steps() uint64 {
	return vm.steps.used
}

// Run executes the loaded program to completion. It returns nil once the
// program counter walks past the last node, or the first fatal error:
// ErrEmptyProgram, *OutOfRangeError, *BudgetExhaustedError or
// *UnknownNodeError. Cell arithmetic and I/O failures are fatal or not
// according to the configured policy; see the dispatch cases.
func (vm *VM) Run() error {
	if vm.program == nil || vm.program.Len() == 0 {
		return ErrEmptyProgram
	}

	vm.ip = 0
	vm.steps = newBudget(vm.limit)
	nodes := vm.program.Nodes

	for vm.ip >= 0 && vm.ip < len(nodes) {
		if err := vm.steps.step(); err != nil {
			return err
		}

		node := nodes[vm.ip]
		vm.lastOp = node.Op

		switch node.Op {
		// ============ Cell arithmetic ============
		case OpIncrement:
			if err := vm.updateCell(CheckedAdd(1)); err != nil {
				return err
			}
			vm.ip = node.Next

		case OpDecrement:
			if err := vm.updateCell(CheckedSub(1)); err != nil {
				return err
			}
			vm.ip = node.Next

		// ============ Cursor movement ============
		case OpMoveRight:
			if err := vm.tape.Move(1); err != nil {
				return err
			}
			vm.ip = node.Next

		case OpMoveLeft:
			if err := vm.tape.Move(-1); err != nil {
				return err
			}
			vm.ip = node.Next

		// ============ I/O ============
		case OpOutput:
			cell := vm.tape.Current()
			if v, ok := console.ValueForByte(cell); ok {
				vm.output.Print(v)
			} else {
				log.Infof("not a valid ascii value, the current value is %d (position %d)", cell, vm.tape.Position())
			}
			vm.ip = node.Next

		case OpInput:
			if v, err := vm.input.Read(); err != nil {
				log.Infof("input unavailable, cell untouched: %s", err.Error())
			} else if err := vm.tape.Update(Replace(v.Byte())); err != nil {
				return err
			}
			vm.ip = node.Next

		// ============ Control flow ============
		case OpLoopStart:
			if vm.tape.Current() != 0 {
				vm.ip = node.BranchTrue
			} else {
				vm.ip = node.BranchExit
			}

		case OpLoopEnd:
			vm.ip = node.Next

		default:
			return &UnknownNodeError{Pos: vm.ip, Op: node.Op}
		}
	}

	return nil
}

// updateCell applies a checked transformation under the arithmetic policy.
func (vm *VM) updateCell(f func(byte) (byte, error)) error {
	err := vm.tape.Update(f)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrCellOverflow) && !errors.Is(err, ErrCellUnderflow) {
		return err
	}

	switch vm.policy {
	case PolicyWrap:
		return vm.tape.Update(wrapStep(err))
	case PolicyFail:
		return err
	default:
		log.Debugf("%s at position %d, cell left unchanged", err.Error(), vm.tape.Position())
		return nil
	}
}

// wrapStep redoes a failed checked step with wraparound semantics.
func wrapStep(err error) func(byte) (byte, error) {
	return func(cell byte) (byte, error) {
		if errors.Is(err, ErrCellOverflow) {
			return cell + 1, nil
		}
		return cell - 1, nil
	}
}
