package objects

import (
	"fmt"
	"path/filepath"

	"github.com/KostasZigo/gitcat/internal/constants"
)

// ObjectPath maps an object identifier to its loose object file:
// <root>/objects/<first 2 chars>/<rest>.
// The identifier is not checked beyond its length; a malformed one
// simply names a file that does not exist.
func ObjectPath(root, hash string) (string, error) {
	if len(hash) < constants.MinObjectIDLength {
		return "", fmt.Errorf("%w: %q is shorter than %d characters",
			ErrInvalidObjectID, hash, constants.MinObjectIDLength)
	}

	prefix := hash[:constants.HashDirPrefixLength]
	rest := hash[constants.HashDirPrefixLength:]
	return filepath.Join(root, constants.Objects, prefix, rest), nil
}
