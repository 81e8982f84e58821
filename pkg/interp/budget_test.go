package interp

import (
	"errors"
	"testing"
)

func TestBudgetAllowsExactlyLimitSteps(t *testing.T) {
	b := newBudget(3)

	for i := 0; i < 3; i++ {
		if err := b.step(); err != nil {
			t.Fatalf("step %d error = %v", i+1, err)
		}
	}

	err := b.step()
	var be *BudgetExhaustedError
	if !errors.As(err, &be) {
		t.Fatalf("step 4 error = %v, want *BudgetExhaustedError", err)
	}
	if b.used != 3 {
		t.Errorf("used = %d, want 3", b.used)
	}
}

func TestBudgetClampsLimit(t *testing.T) {
	if b := newBudget(0); b.limit != MinStepLimit {
		t.Errorf("limit = %d, want %d", b.limit, MinStepLimit)
	}
	if b := newBudget(MaxStepLimit + 1); b.limit != MaxStepLimit {
		t.Errorf("limit = %d, want %d", b.limit, MaxStepLimit)
	}
}
