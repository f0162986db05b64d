package cmd

import (
	"bytes"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KostasZigo/gitcat/internal/constants"
	"github.com/KostasZigo/gitcat/internal/objects"
	"github.com/KostasZigo/gitcat/internal/repository"
	"github.com/KostasZigo/gitcat/testutils"
)

// setupCatFileRepo creates a repository, changes into it and returns its .git path.
func setupCatFileRepo(t *testing.T) string {
	t.Helper()

	repoPath := testutils.SetupTestRepoWithGitDir(t)
	changeToRepoDir(t, repoPath)
	resetCatFileFlags(t)
	return filepath.Join(repoPath, constants.GitDir)
}

// executeCatFile runs cat-file with args and returns stdout and the error.
func executeCatFile(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	testRootCmd := createTestRootCmd(catFileCmd)
	stdout := captureStdout(testRootCmd)
	captureStderr(testRootCmd)

	testRootCmd.SetArgs(append([]string{constants.CatFileCmdName}, args...))
	return stdout, testRootCmd.Execute()
}

// TestCatFileCommand_EmptyBlob verifies the empty blob prints nothing and succeeds.
func TestCatFileCommand_EmptyBlob(t *testing.T) {
	gitDir := setupCatFileRepo(t)
	testutils.WriteLooseObject(t, gitDir, testutils.EmptyBlobHash, []byte("blob 0\x00"))

	stdout, err := executeCatFile(t, "-p", testutils.EmptyBlobHash)
	if err != nil {
		t.Fatalf("%s command failed: %v", constants.CatFileCmdName, err)
	}

	if stdout.Len() != 0 {
		t.Errorf("Expected no output, got %q", stdout.String())
	}
}

// TestCatFileCommand_Blob verifies blob content is printed verbatim without a trailing newline.
func TestCatFileCommand_Blob(t *testing.T) {
	gitDir := setupCatFileRepo(t)

	content := []byte("hello world\nHave a nice day")
	hash := testutils.RandomHash()
	testutils.WriteLooseObject(t, gitDir, hash, testutils.BlobData(content))

	stdout, err := executeCatFile(t, "-p", hash)
	if err != nil {
		t.Fatalf("%s command failed: %v", constants.CatFileCmdName, err)
	}

	if !bytes.Equal(stdout.Bytes(), content) {
		t.Errorf("Expected output %q, got %q", content, stdout.Bytes())
	}
}

// TestCatFileCommand_FromSubdirectory verifies the repository is found from a nested directory.
func TestCatFileCommand_FromSubdirectory(t *testing.T) {
	repoPath := testutils.SetupTestRepoWithGitDir(t)
	gitDir := filepath.Join(repoPath, constants.GitDir)

	content := []byte("nested\n")
	hash := testutils.RandomHash()
	testutils.WriteLooseObject(t, gitDir, hash, testutils.BlobData(content))

	nested := filepath.Join(repoPath, "a", "b")
	testutils.CreateDir(t, nested)
	changeToRepoDir(t, nested)
	resetCatFileFlags(t)

	stdout, err := executeCatFile(t, "-p", hash)
	if err != nil {
		t.Fatalf("%s command failed: %v", constants.CatFileCmdName, err)
	}

	if stdout.String() != string(content) {
		t.Errorf("Expected output %q, got %q", content, stdout.String())
	}
}

// TestCatFileCommand_RequiresPrettyPrint verifies -p is mandatory.
func TestCatFileCommand_RequiresPrettyPrint(t *testing.T) {
	gitDir := setupCatFileRepo(t)
	testutils.WriteLooseObject(t, gitDir, testutils.EmptyBlobHash, []byte("blob 0\x00"))

	_, err := executeCatFile(t, testutils.EmptyBlobHash)
	if !errors.Is(err, errPrettyPrintRequired) {
		t.Errorf("Expected pretty-print required error, got: %v", err)
	}
}

// TestCatFileCommand_WrongArgumentCount verifies exactly one object is accepted.
func TestCatFileCommand_WrongArgumentCount(t *testing.T) {
	setupCatFileRepo(t)

	for _, args := range [][]string{{"-p"}, {"-p", "abc", "def"}} {
		_, err := executeCatFile(t, args...)
		if err == nil || !strings.Contains(err.Error(), "requires exactly 1 argument(s)") {
			t.Errorf("Expected argument count error for %v, got: %v", args, err)
		}
	}
}

// TestCatFileCommand_ObjectNotFound verifies missing objects fail with the attempted path.
func TestCatFileCommand_ObjectNotFound(t *testing.T) {
	setupCatFileRepo(t)

	hash := testutils.RandomHash()
	stdout, err := executeCatFile(t, "-p", hash)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Expected not exist error, got: %v", err)
	}

	expectedPath := filepath.Join(constants.Objects, hash[:2], hash[2:])
	if !strings.Contains(err.Error(), expectedPath) {
		t.Errorf("Expected error to mention %s, got: %v", expectedPath, err)
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no output, got %q", stdout.String())
	}
}

// TestCatFileCommand_NotARepository verifies failure outside a repository.
func TestCatFileCommand_NotARepository(t *testing.T) {
	changeToRepoDir(t, t.TempDir())
	resetCatFileFlags(t)

	_, err := executeCatFile(t, "-p", testutils.RandomHash())
	if !errors.Is(err, repository.ErrNotARepository) {
		t.Errorf("Expected not a repository error, got: %v", err)
	}
}

// TestCatFileCommand_InvalidObjects verifies no partial output is written for corrupt objects.
func TestCatFileCommand_InvalidObjects(t *testing.T) {
	testCases := []struct {
		name        string
		raw         string
		expectedErr error
	}{
		{name: "short read", raw: "blob 10\x001234567", expectedErr: objects.ErrShortRead},
		{name: "trailing bytes", raw: "blob 5\x001234567", expectedErr: objects.ErrTrailingBytes},
		{name: "malformed header", raw: "blobonly\x00", expectedErr: objects.ErrMalformedHeader},
		{name: "unsupported type", raw: "tree 4\x00....", expectedErr: objects.ErrUnsupportedObjectType},
		{name: "truncated header", raw: "blob 4", expectedErr: objects.ErrTruncatedHeader},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gitDir := setupCatFileRepo(t)

			hash := testutils.RandomHash()
			testutils.WriteLooseObject(t, gitDir, hash, []byte(tc.raw))

			stdout, err := executeCatFile(t, "-p", hash)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("Expected error to wrap %v, got: %v", tc.expectedErr, err)
			}
			if stdout.Len() != 0 {
				t.Errorf("Expected no output, got %q", stdout.String())
			}
		})
	}
}
