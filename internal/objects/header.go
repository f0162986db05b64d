package objects

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KostasZigo/gitcat/internal/constants"
)

// Header is the parsed "<type> <size>\0" prefix of a loose object.
type Header struct {
	Type ObjectType
	Size uint64
}

func (h Header) String() string {
	return fmt.Sprintf("%s %d", h.Type, h.Size)
}

// ReadHeader consumes the header from the decompressed stream, leaving r
// positioned at the first payload byte.
func ReadHeader(r *bufio.Reader) (Header, error) {
	raw, err := r.ReadBytes(constants.NullByte)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Header{}, fmt.Errorf("%w: no NUL byte in %q", ErrTruncatedHeader, raw)
		}
		return Header{}, fmt.Errorf("%w: %w", ErrDecompress, err)
	}

	// Drop the NUL terminator
	raw = raw[:len(raw)-1]
	if !utf8.Valid(raw) {
		return Header{}, fmt.Errorf("%w: %q", ErrInvalidHeaderEncoding, raw)
	}

	return parseHeader(string(raw))
}

// parseHeader splits header text into type and size.
// The space split only decides whether the header is well formed; the size
// region is whatever follows the resolved type's own "<type> " prefix.
func parseHeader(text string) (Header, error) {
	label, _, found := strings.Cut(text, constants.HeaderSeparator)
	if !found {
		return Header{}, fmt.Errorf("%w: %q", ErrMalformedHeader, text)
	}

	objectType, err := ParseObjectType(label)
	if err != nil {
		return Header{}, err
	}

	sizeText, ok := strings.CutPrefix(text, objectType.String()+constants.HeaderSeparator)
	if !ok {
		return Header{}, fmt.Errorf("%w: %q", ErrMalformedHeader, text)
	}

	size, err := parseSize(sizeText)
	if err != nil {
		return Header{}, err
	}

	return Header{Type: objectType, Size: size}, nil
}

// parseSize accepts only plain decimal digits that fit in an int64.
func parseSize(sizeText string) (uint64, error) {
	size, err := strconv.ParseUint(sizeText, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidSize, sizeText, err)
	}

	if size > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %d exceeds maximum object size", ErrInvalidSize, size)
	}

	return size, nil
}
