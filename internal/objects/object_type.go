package objects

import (
	"fmt"
	"io"
)

// ObjectType is the type label found in a loose object header.
type ObjectType string

const (
	BlobObjectType   ObjectType = "blob"
	TreeObjectType   ObjectType = "tree"
	CommitObjectType ObjectType = "commit"
	TagObjectType    ObjectType = "tag"
)

// Renderer writes the external representation of a payload to w.
type Renderer func(w io.Writer, payload []byte) error

// renderers holds every type this reader can decode.
// Tree, commit and tag labels are reserved; supporting one means adding its
// renderer here and nothing else.
var renderers = map[ObjectType]Renderer{
	BlobObjectType: renderBlob,
}

// ParseObjectType resolves a header label to a supported ObjectType.
func ParseObjectType(label string) (ObjectType, error) {
	objectType := ObjectType(label)
	if !objectType.IsSupported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedObjectType, label)
	}
	return objectType, nil
}

// IsSupported reports whether objects of this type can be decoded and rendered.
func (ot ObjectType) IsSupported() bool {
	_, ok := renderers[ot]
	return ok
}

func (ot ObjectType) String() string {
	return string(ot)
}

// Render writes payload using the renderer registered for the type.
func (ot ObjectType) Render(w io.Writer, payload []byte) error {
	render, ok := renderers[ot]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedObjectType, string(ot))
	}
	return render(w, payload)
}

// renderBlob writes blob content verbatim.
func renderBlob(w io.Writer, payload []byte) error {
	_, err := w.Write(payload)
	return err
}
