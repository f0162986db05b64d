package objects

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Object is a fully validated loose object: its payload length always
// equals the size declared in its header.
type Object struct {
	header  Header
	payload []byte
}

func (o *Object) Header() Header {
	return o.header
}

func (o *Object) Type() ObjectType {
	return o.header.Type
}

func (o *Object) Size() uint64 {
	return o.header.Size
}

func (o *Object) Content() []byte {
	return o.payload
}

// Render writes the object's external representation to w.
func (o *Object) Render(w io.Writer) error {
	return o.header.Type.Render(w, o.payload)
}

// Decode parses a decompressed loose object stream.
// Nothing is returned unless the header is valid and the stream holds
// exactly the declared number of payload bytes.
func Decode(r io.Reader) (*Object, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	header, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	payload, err := readPayload(br, header.Size)
	if err != nil {
		return nil, err
	}

	return &Object{header: header, payload: payload}, nil
}

// maxTrailingDrain bounds how much trailing data is inflated to count it.
const maxTrailingDrain = 1 << 20

// readPayload reads exactly size bytes and then requires end of stream.
func readPayload(r *bufio.Reader, size uint64) ([]byte, error) {
	// Buffer grows with the data actually present rather than the declared size
	var buffer bytes.Buffer
	n, err := io.CopyN(&buffer, r, int64(size))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: declared %d bytes, got %d", ErrShortRead, size, n)
		}
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}

	if _, err := r.ReadByte(); err == nil {
		// Count what is left, up to a bound, so the error reports the payload length
		rest, drainErr := io.CopyN(io.Discard, r, maxTrailingDrain)
		observed := size + 1 + uint64(rest)
		if rest == maxTrailingDrain || (drainErr != nil && !errors.Is(drainErr, io.EOF)) {
			return nil, fmt.Errorf("%w: declared %d bytes, got at least %d",
				ErrTrailingBytes, size, observed)
		}
		return nil, fmt.Errorf("%w: declared %d bytes, got %d", ErrTrailingBytes, size, observed)
	} else if !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}

	return buffer.Bytes(), nil
}
