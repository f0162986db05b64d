package constants

import "os"

// Command name constants used in tests and error messages.
// Cobra Use fields remain inline for CLI discoverability.
const (
	InitCmdName    = "init"
	CatFileCmdName = "cat-file"
)

// Repository directory and file names define the git metadata structure.
const (
	// GitDir is the repository metadata directory.
	GitDir = ".git"

	// Objects stores loose content-addressable objects.
	Objects = "objects"

	// Refs contains branch and tag references.
	Refs = "refs"

	// Heads stores branch pointers under refs/.
	Heads = "heads"

	// Tags stores tag pointers under refs/.
	Tags = "tags"

	// Head points to current branch or detached commit.
	Head = "HEAD"
)

// Default repository values.
const (
	// DefaultBranch is the initial branch name for new repositories.
	DefaultBranch = "main"

	// DefaultRefPrefix is prepended to branch names in HEAD file.
	DefaultRefPrefix = "ref: refs/heads/"
)

// File system permissions for created files and directories.
const (
	// DirPerms grants read/write/execute to owner, read/execute to others (rwxr-xr-x).
	DirPerms os.FileMode = 0755

	// FilePerms grants read/write to owner, read-only to others (rw-r--r--).
	FilePerms os.FileMode = 0644
)

// Object identifier properties.
const (
	// HashByteLength is byte length of SHA-1 hash (20 bytes).
	HashByteLength = 20

	// HashDirPrefixLength is subdirectory prefix length under objects/ (2 characters).
	HashDirPrefixLength = 2

	// MinObjectIDLength is the shortest identifier that still splits into a
	// directory and a non-empty file name.
	MinObjectIDLength = HashDirPrefixLength + 1
)

// Object format constants.
const (
	// NullByte separates header from content in loose objects.
	NullByte = '\x00'

	// HeaderSeparator splits the type label from the decimal size in a header.
	HeaderSeparator = " "
)
