package testutils

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/KostasZigo/gitcat/internal/constants"
	"github.com/klauspost/compress/zlib"
)

// EmptyBlobHash names the zero-length blob.
const EmptyBlobHash = "e69de29bb2d1d6434b8b29ae775ad8c2e48c5391"

// RandomString generates a random hex string of n bytes
func RandomString(n int) string {
	bytes := make([]byte, n)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

// RandomHash generates a random 40-character SHA-1 hash
func RandomHash() string {
	return RandomString(constants.HashByteLength)
}

// SetupTestRepoWithGitDir creates a temporary directory with .git/objects structure.
// Returns the working tree path, not the .git path.
func SetupTestRepoWithGitDir(t *testing.T) string {
	t.Helper()

	repoPath := t.TempDir()
	objectsDir := filepath.Join(repoPath, constants.GitDir, constants.Objects)

	if err := os.MkdirAll(objectsDir, constants.DirPerms); err != nil {
		t.Fatalf("Failed to create %s/%s: %v", constants.GitDir, constants.Objects, err)
	}

	return repoPath
}

// BlobData frames content as an uncompressed blob: "blob <size>\0<content>".
func BlobData(content []byte) []byte {
	header := fmt.Sprintf("blob %d\x00", len(content))
	return append([]byte(header), content...)
}

// Compress zlib-compresses data the way loose objects are stored.
func Compress(t *testing.T, data []byte) []byte {
	t.Helper()

	var buffer bytes.Buffer
	writer := zlib.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("Failed to compress data: %v", err)
	}

	// Close flushes remaining data and the checksum
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close zlib writer: %v", err)
	}

	return buffer.Bytes()
}

// WriteLooseObject compresses raw (header and payload, already framed) and
// stores it under gitDir/objects for hash. Returns the object file path.
func WriteLooseObject(t *testing.T, gitDir, hash string, raw []byte) string {
	t.Helper()

	return WriteRawObjectFile(t, gitDir, hash, Compress(t, raw))
}

// WriteRawObjectFile stores data as-is under gitDir/objects for hash.
// Used to plant corrupt compressed objects.
func WriteRawObjectFile(t *testing.T, gitDir, hash string, data []byte) string {
	t.Helper()

	objectDir := filepath.Join(gitDir, constants.Objects, hash[:constants.HashDirPrefixLength])
	if err := os.MkdirAll(objectDir, constants.DirPerms); err != nil {
		t.Fatalf("Failed to create object directory %s: %v", objectDir, err)
	}

	objectFile := filepath.Join(objectDir, hash[constants.HashDirPrefixLength:])
	if err := os.WriteFile(objectFile, data, constants.FilePerms); err != nil {
		t.Fatalf("Failed to write object file %s: %v", objectFile, err)
	}

	return objectFile
}

// CreateTestFile creates a file with given content in the specified directory.
// Returns the full path to the created file.
func CreateTestFile(t *testing.T, dir, filename string, content []byte) string {
	t.Helper()

	filePath := filepath.Join(dir, filename)
	if err := os.WriteFile(filePath, content, constants.FilePerms); err != nil {
		t.Fatalf("Failed to create test file %s: %v", filename, err)
	}

	return filePath
}

// CreateDir creates a directory and any missing parents.
func CreateDir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, constants.DirPerms); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}
}

// AssertFileExists checks that a file exists at the given path.
// Fails the test if the file doesn't exist.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected file to exist at %s", path)
	}
}

// AssertFileNotExists checks that a file does NOT exist at the given path.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to NOT exist at %s", path)
	}
}

// AssertDirExists checks that a directory exists at the given path.
func AssertDirExists(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected directory to exist at %s", path)
		return
	}
	if err != nil {
		t.Errorf("Failed to stat directory %s: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Expected %s to be a directory, but it's a file", path)
	}
}

// AssertRepositoryStructure validates complete .git directory structure.
// Verifies objects/, refs/heads/, refs/tags/ exist and HEAD contains correct branch reference.
func AssertRepositoryStructure(t *testing.T, repoPath string) {
	t.Helper()

	gitDir := filepath.Join(repoPath, constants.GitDir)
	AssertDirExists(t, gitDir)

	expectedDirs := []string{
		constants.Objects,
		constants.Refs,
		filepath.Join(constants.Refs, constants.Heads),
		filepath.Join(constants.Refs, constants.Tags),
	}
	for _, dir := range expectedDirs {
		AssertDirExists(t, filepath.Join(gitDir, dir))
	}

	headPath := filepath.Join(gitDir, constants.Head)
	AssertFileExists(t, headPath)

	content, err := os.ReadFile(headPath)
	if err != nil {
		t.Fatalf("Failed to read %s file: %v", constants.Head, err)
	}

	expectedContent := constants.DefaultRefPrefix + constants.DefaultBranch + "\n"
	if string(content) != expectedContent {
		t.Errorf("%s content = %q, want %q", constants.Head, content, expectedContent)
	}
}
