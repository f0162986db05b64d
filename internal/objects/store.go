package objects

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zlib"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ObjectStore reads loose objects from a repository's object database.
type ObjectStore struct {
	gitDir string // Path to the .git directory
	lg     *zap.Logger
}

// NewObjectStore returns a store rooted at gitDir. A nil logger discards logs.
func NewObjectStore(gitDir string, lg *zap.Logger) *ObjectStore {
	if lg == nil {
		lg = zap.NewNop()
	}
	return &ObjectStore{
		gitDir: gitDir,
		lg:     lg,
	}
}

// Path returns the loose object file for hash.
func (store *ObjectStore) Path(hash string) (string, error) {
	return ObjectPath(store.gitDir, hash)
}

// Read locates, decompresses and decodes the object named by hash.
// The file and zlib stream are closed on every return path.
func (store *ObjectStore) Read(hash string) (_ *Object, retErr error) {
	objectFile, err := store.Path(hash)
	if err != nil {
		return nil, err
	}

	lg := store.lg.With(zap.String("hash", hash), zap.String("path", objectFile))
	lg.Debug("reading loose object")

	file, err := os.Open(objectFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", hash, err)
	}
	defer func() {
		retErr = multierr.Append(retErr, file.Close())
	}()

	reader, err := zlib.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecompress, hash, err)
	}
	defer func() {
		// Close repeats a stream error Decode already reported
		if closeErr := reader.Close(); retErr == nil {
			retErr = closeErr
		}
	}()

	object, err := Decode(reader)
	if err != nil {
		lg.Debug("failed to decode loose object", zap.Error(err))
		return nil, fmt.Errorf("object %s: %w", hash, err)
	}

	lg.Debug("decoded loose object", zap.Stringer("header", object.Header()))
	return object, nil
}
