package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/KostasZigo/gitcat/internal/constants"
	"go.uber.org/zap"
)

var (
	// ErrAlreadyInitialized is returned when the target already holds a .git directory.
	// Callers may treat it as benign.
	ErrAlreadyInitialized = errors.New("repository already exists")

	// ErrGitDirNotDirectory is returned when .git exists but is not a directory.
	ErrGitDirNotDirectory = errors.New("path exists and is not a directory")

	// ErrNotARepository is returned when no .git directory is found.
	ErrNotARepository = errors.New("not a git repository")
)

// InitRepository creates the .git skeleton under path.
// Returns an error wrapping ErrAlreadyInitialized if one exists; any other
// failure (fs.ErrPermission included) removes what was partially created.
func InitRepository(path string) error {
	// Resolves and adds OS specific separator
	gitDir := filepath.Join(path, constants.GitDir)

	if err := checkRepositoryDoesNotExist(gitDir); err != nil {
		return err
	}

	// Track if initialization of git directories and files was successful.
	// On failure the deferred cleanup removes the partial .git directory.
	var initSuccess bool
	defer func() {
		if !initSuccess {
			cleanupRepository(gitDir)
		}
	}()

	directories := []string{
		gitDir,
		filepath.Join(gitDir, constants.Objects),
		filepath.Join(gitDir, constants.Refs),
		filepath.Join(gitDir, constants.Refs, constants.Heads),
		filepath.Join(gitDir, constants.Refs, constants.Tags),
	}

	for _, directory := range directories {
		if err := os.MkdirAll(directory, constants.DirPerms); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", directory, err)
		}
	}

	// Create HEAD file pointing to main branch
	headFile := filepath.Join(gitDir, constants.Head)
	headContent := constants.DefaultRefPrefix + constants.DefaultBranch + "\n"

	if err := os.WriteFile(headFile, []byte(headContent), constants.FilePerms); err != nil {
		return fmt.Errorf("failed to create %s file: %w", constants.Head, err)
	}

	zap.L().Debug("initialized repository", zap.String("path", gitDir))
	initSuccess = true
	return nil
}

func checkRepositoryDoesNotExist(path string) error {
	info, err := os.Stat(path)

	// If path doesn't exist there is no error
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to check repository path: %w", err)
	}

	// Only an existing directory counts as a repository; anything else blocks init
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrGitDirNotDirectory, path)
	}

	return fmt.Errorf("%w at %s", ErrAlreadyInitialized, path)
}

// Removes the entire .git directory if it exists
func cleanupRepository(gitDir string) {
	if _, err := os.Stat(gitDir); err == nil {
		zap.L().Debug("Cleaning up partial repository initialization",
			zap.String("path", gitDir))

		if err := os.RemoveAll(gitDir); err != nil {
			zap.L().Warn("Failed to cleanup repository directory",
				zap.String("path", gitDir),
				zap.Error(err))
		} else {
			zap.L().Debug("Successfully cleaned up repository directory",
				zap.String("path", gitDir))
		}
	}
}

// FindGitDir locates the .git directory by walking up from start.
func FindGitDir(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}

	for {
		gitDir := filepath.Join(dir, constants.GitDir)
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return gitDir, nil
		}

		// Dir returns all but the last element of path
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding .git
			return "", fmt.Errorf("%w (or any of the parent directories): %s", ErrNotARepository, start)
		}
		dir = parent
	}
}
