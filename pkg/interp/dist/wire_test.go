package dist

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/chazu/braingo/pkg/interp"
)

func TestProgramRoundTrip(t *testing.T) {
	prog, err := interp.Parse("++[+>]++")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	data, err := MarshalProgram(prog)
	if err != nil {
		t.Fatalf("MarshalProgram() error = %v", err)
	}

	got, err := UnmarshalProgram(data)
	if err != nil {
		t.Fatalf("UnmarshalProgram() error = %v", err)
	}
	if !reflect.DeepEqual(got, prog) {
		t.Errorf("round trip = %+v, want %+v", got, prog)
	}
}

func TestMarshalIsDeterministic(t *testing.T) {
	prog, err := interp.Parse("+[->+<]")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	a, err := MarshalProgram(prog)
	if err != nil {
		t.Fatalf("MarshalProgram() error = %v", err)
	}
	b, err := MarshalProgram(prog)
	if err != nil {
		t.Fatalf("MarshalProgram() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("canonical encoding produced two different byte strings")
	}
}

func TestImageRoundTrip(t *testing.T) {
	prog, err := interp.Parse("+++[-.]")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	if err := WriteImage(&buf, prog); err != nil {
		t.Fatalf("WriteImage() error = %v", err)
	}

	if !IsImage(buf.Bytes()) {
		t.Error("IsImage() = false for a freshly written image")
	}

	got, err := ReadImage(&buf)
	if err != nil {
		t.Fatalf("ReadImage() error = %v", err)
	}
	if !reflect.DeepEqual(got, prog) {
		t.Errorf("image round trip = %+v, want %+v", got, prog)
	}
}

func TestReadImageRejectsBadMagic(t *testing.T) {
	_, err := ReadImage(bytes.NewReader([]byte("++[+>]++ not an image")))
	if !errors.Is(err, ErrNotAnImage) {
		t.Errorf("ReadImage() error = %v, want ErrNotAnImage", err)
	}
}

func TestReadImageRejectsFutureVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(ImageMagic)
	buf.Write([]byte{0xFF, 0xFF}) // version 65535
	buf.WriteString("payload")

	if _, err := ReadImage(&buf); err == nil {
		t.Error("ReadImage() accepted an unsupported version")
	}
}

func TestIsImageRejectsSource(t *testing.T) {
	if IsImage([]byte("+[->+<]")) {
		t.Error("IsImage() = true for source text")
	}
	if IsImage([]byte("BF")) {
		t.Error("IsImage() = true for a short prefix")
	}
}
