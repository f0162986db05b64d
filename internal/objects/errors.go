package objects

import "errors"

// Errors returned while locating and decoding loose objects.
// Callers match them with errors.Is; the wrapping error carries the detail.
var (
	// ErrInvalidObjectID is returned when an identifier is too short to split
	// into a directory and file name.
	ErrInvalidObjectID = errors.New("invalid object identifier")

	// ErrDecompress wraps any failure of the zlib stream.
	ErrDecompress = errors.New("decompress object")

	// ErrTruncatedHeader means the stream ended before the header NUL byte.
	ErrTruncatedHeader = errors.New("truncated object header")

	// ErrInvalidHeaderEncoding means the header bytes are not valid UTF-8.
	ErrInvalidHeaderEncoding = errors.New("object header is not valid text")

	// ErrMalformedHeader means the header has no space between type and size.
	ErrMalformedHeader = errors.New("malformed object header")

	// ErrInvalidSize means the header size is not a decimal unsigned integer.
	ErrInvalidSize = errors.New("invalid object size")

	// ErrUnsupportedObjectType means the header names a type this reader cannot render.
	ErrUnsupportedObjectType = errors.New("unsupported object type")

	// ErrShortRead means the payload ended before the declared size.
	ErrShortRead = errors.New("short read")

	// ErrTrailingBytes means the payload continued past the declared size.
	ErrTrailingBytes = errors.New("trailing bytes")
)
