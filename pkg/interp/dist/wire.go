// Package dist serializes resolved programs so a parse can be done once and
// the result shipped around or cached. The on-disk image is a small header
// (magic plus format version) followed by a canonical CBOR payload.
package dist

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"

	"github.com/chazu/braingo/pkg/interp"
)

// ImageMagic identifies a program image file: "BFGI" (BrainFuck Go Image).
var ImageMagic = []byte{'B', 'F', 'G', 'I'}

// ErrNotAnImage reports a stream that does not start with ImageMagic.
var ErrNotAnImage = errors.New("dist: not a program image")

// cborEncMode uses canonical mode for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("dist: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalProgram serializes a Program to CBOR bytes.
func MarshalProgram(p *interp.Program) ([]byte, error) {
	return cborEncMode.Marshal(p)
}

// UnmarshalProgram deserializes a Program from CBOR bytes.
func UnmarshalProgram(data []byte) (*interp.Program, error) {
	var p interp.Program
	if err := cbor.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("dist: unmarshal program: %w", err)
	}
	return &p, nil
}

// WriteImage writes the image header and the serialized program to w.
func WriteImage(w io.Writer, p *interp.Program) error {
	payload, err := MarshalProgram(p)
	if err != nil {
		return fmt.Errorf("dist: marshal program: %w", err)
	}

	if _, err := w.Write(ImageMagic); err != nil {
		return fmt.Errorf("dist: write magic: %w", err)
	}
	var version [2]byte
	binary.BigEndian.PutUint16(version[:], p.Version)
	if _, err := w.Write(version[:]); err != nil {
		return fmt.Errorf("dist: write version: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("dist: write payload: %w", err)
	}
	return nil
}

// ReadImage reads one image from r and returns the program it holds.
func ReadImage(r io.Reader) (*interp.Program, error) {
	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("dist: read header: %w", err)
	}
	if string(header[:4]) != string(ImageMagic) {
		return nil, ErrNotAnImage
	}
	version := binary.BigEndian.Uint16(header[4:6])
	if version > interp.ProgramVersion {
		return nil, fmt.Errorf("dist: unsupported image version %d (max %d)", version, interp.ProgramVersion)
	}

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dist: read payload: %w", err)
	}
	return UnmarshalProgram(payload)
}

// IsImage reports whether data starts with the image magic.
func IsImage(data []byte) bool {
	return len(data) >= len(ImageMagic) && string(data[:len(ImageMagic)]) == string(ImageMagic)
}
