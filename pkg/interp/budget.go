package interp

import "fmt"

// Step budget bounds. The budget is the only timeout mechanism: it counts
// dispatched instructions, not wall-clock time, so runs stay reproducible.
const (
	MinStepLimit     = 1
	MaxStepLimit     = 100000
	DefaultStepLimit = 60000
)

// BudgetExhaustedError reports a run cut off by the instruction ceiling.
type BudgetExhaustedError struct {
	Limit uint64
}

func (e *BudgetExhaustedError) Error() string {
	return fmt.Sprintf("Not enought reads to complete the program. Check if the program have infinite loops or increased the amount of reads (limit %d)", e.Limit)
}

// budget counts dispatched instructions against a fixed ceiling.
type budget struct {
	limit uint64
	used  uint64
}

func newBudget(limit uint64) budget {
	if limit < MinStepLimit {
		limit = MinStepLimit
	}
	if limit > MaxStepLimit {
		limit = MaxStepLimit
	}
	return budget{limit: limit}
}

// step charges one instruction. It fails once the ceiling is reached, so a
// limit of n allows exactly n dispatches.
func (b *budget) step() error {
	if b.used >= b.limit {
		return &BudgetExhaustedError{Limit: b.limit}
	}
	b.used++
	return nil
}
