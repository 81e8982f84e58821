// Package interp parses and executes programs of the eight-symbol tape
// language. Parsing and execution are the two stages of one pipeline:
//
//   - Parse scans the source once and emits a flat node sequence in which
//     every loop is already resolved into explicit jump targets, so the
//     runtime never re-scans for matching brackets.
//
//   - VM walks that sequence with an explicit program counter, one cell or
//     one cursor step at a time, against a bounds-checked Tape and the
//     console I/O collaborators.
//
// # Node layout
//
// A program is a single flat slice; loops are spans addressed by position,
// not nested sub-trees. A loop-start node carries two targets: the body
// entry (taken while the current cell is non-zero) and the first node past
// its loop-end (taken once it reaches zero). The loop-end routes back to the
// loop-start unconditionally, which is where the condition is re-tested.
// This mirrors a minimal bytecode interpreter rather than a recursive AST
// walker.
//
// # Failure semantics
//
// Parsing fails fast on unbalanced brackets. At run time, cursor moves off
// the tape and corrupted nodes are fatal; cell arithmetic at the value
// bounds and I/O hiccups are not, unless the arithmetic policy says
// otherwise. Every run is capped by an instruction budget, the only
// termination guarantee for programs that never halt on their own.
//
// Programs carry no mutable state, so one parsed Program may be shared and
// re-run across VM instances.
package interp
