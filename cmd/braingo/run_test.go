package main

import (
	"strings"
	"testing"

	"github.com/chazu/braingo/pkg/interp"
)

func TestBoundedArg(t *testing.T) {
	n, err := boundedArg("3000", "-m <memory-size>", interp.MinTapeSize, interp.MaxTapeSize)
	if err != nil {
		t.Fatalf("boundedArg() error = %v", err)
	}
	if n != 3000 {
		t.Errorf("boundedArg() = %d, want 3000", n)
	}
}

func TestBoundedArgBelowMinimum(t *testing.T) {
	_, err := boundedArg("0", "-m <memory-size>", interp.MinTapeSize, interp.MaxTapeSize)
	if err == nil {
		t.Fatal("boundedArg() accepted 0")
	}
	want := "invalid value '0' for '-m <memory-size>': Minimum value accepted is 1"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestBoundedArgAboveMaximum(t *testing.T) {
	_, err := boundedArg("100001", "-l <limit-read-instructions>", interp.MinStepLimit, interp.MaxStepLimit)
	if err == nil {
		t.Fatal("boundedArg() accepted 100001")
	}
	want := "invalid value '100001' for '-l <limit-read-instructions>': Maximum value accepted is 100_000"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}
}

func TestBoundedArgNotANumber(t *testing.T) {
	_, err := boundedArg("lots", "-m <memory-size>", interp.MinTapeSize, interp.MaxTapeSize)
	if err == nil || !strings.Contains(err.Error(), "not a number") {
		t.Errorf("error = %v, want a not-a-number message", err)
	}
}

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{1, "1"},
		{999, "999"},
		{3000, "3_000"},
		{30000, "30_000"},
		{100000, "100_000"},
		{1234567, "1_234_567"},
	}
	for _, c := range cases {
		if got := groupDigits(c.n); got != c.want {
			t.Errorf("groupDigits(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestImageOutputPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"prog.bf", "prog.bfi"},
		{"dir/prog.bf", "prog.bfi"},
		{"prog", "prog.bfi"},
	}
	for _, c := range cases {
		if got := imageOutputPath(c.in); got != c.want {
			t.Errorf("imageOutputPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseRunFlagsRequiresFile(t *testing.T) {
	if _, err := parseRunFlags(nil); err == nil {
		t.Error("parseRunFlags() accepted a missing -f")
	}
}

func TestParseRunFlagsDefaults(t *testing.T) {
	opts, err := parseRunFlags([]string{"-f", "prog.bf"})
	if err != nil {
		t.Fatalf("parseRunFlags() error = %v", err)
	}
	if opts.memorySize != interp.DefaultTapeSize {
		t.Errorf("memorySize = %d, want %d", opts.memorySize, interp.DefaultTapeSize)
	}
	if opts.stepLimit != interp.DefaultStepLimit {
		t.Errorf("stepLimit = %d, want %d", opts.stepLimit, interp.DefaultStepLimit)
	}
	if opts.arithmetic != interp.PolicyIgnore {
		t.Errorf("arithmetic = %v, want %v", opts.arithmetic, interp.PolicyIgnore)
	}
}
