package objects

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/gitcat/internal/constants"
	"github.com/KostasZigo/gitcat/testutils"
	"go.uber.org/zap/zaptest"
)

// newTestStore creates a store over a fresh .git directory and returns both.
func newTestStore(t *testing.T) (*ObjectStore, string) {
	t.Helper()

	repoPath := testutils.SetupTestRepoWithGitDir(t)
	gitDir := filepath.Join(repoPath, constants.GitDir)
	return NewObjectStore(gitDir, zaptest.NewLogger(t)), gitDir
}

// decodeString runs Decode over an uncompressed object.
func decodeString(raw string) (*Object, error) {
	return Decode(bytes.NewReader([]byte(raw)))
}

// assertObjectContent verifies decoded object has the expected type and exact content.
func assertObjectContent(t *testing.T, object *Object, expectedType ObjectType, expectedContent []byte) {
	t.Helper()

	if object.Type() != expectedType {
		t.Errorf("Expected type %s, got %s", expectedType, object.Type())
	}

	if object.Size() != uint64(len(expectedContent)) {
		t.Fatalf("Expected size %d, got %d", len(expectedContent), object.Size())
	}

	if !bytes.Equal(object.Content(), expectedContent) {
		t.Fatalf("Expected content [%q], got [%q]", expectedContent, object.Content())
	}
}
