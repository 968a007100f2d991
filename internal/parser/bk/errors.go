package bk

import (
	"errors"
	"fmt"
)

// ErrNoChapters is returned when a source declares metadata but not a
// single chapter.
var ErrNoChapters = &NoChaptersError{}

// Helper is implemented by parse errors that can suggest a fix.
type Helper interface {
	Help() string
}

// Help returns fix-it guidance for a parse error, or an empty string when
// none is available. Wrapped errors are unwrapped first.
func Help(err error) string {
	var h Helper
	if errors.As(err, &h) {
		return h.Help()
	}
	return ""
}

// MissingMetadataError reports a required metadata field that never
// appeared in the source.
type MissingMetadataError struct {
	Field string
}

func (e *MissingMetadataError) Error() string {
	return fmt.Sprintf("missing required metadata field %q", e.Field)
}

func (e *MissingMetadataError) Help() string {
	return fmt.Sprintf("add the required '@%s:' field at the top of the file", e.Field)
}

// DuplicateMetadataError reports a metadata field declared more than once.
type DuplicateMetadataError struct {
	Field string
	Line  int
}

func (e *DuplicateMetadataError) Error() string {
	return fmt.Sprintf("duplicate metadata field %q at line %d", e.Field, e.Line)
}

func (e *DuplicateMetadataError) Help() string {
	return fmt.Sprintf("remove the duplicate '@%s:' field; it may only appear once", e.Field)
}

// MalformedMetadataError reports a metadata line that does not follow the
// '@field: value' shape.
type MalformedMetadataError struct {
	Line   int
	Reason string
}

func (e *MalformedMetadataError) Error() string {
	return fmt.Sprintf("malformed metadata at line %d: %s", e.Line, e.Reason)
}

func (e *MalformedMetadataError) Help() string {
	return "check the metadata format: " + e.Reason
}

// MissingChapterTitleError reports a chapter declaration without a title.
type MissingChapterTitleError struct {
	Line int
}

func (e *MissingChapterTitleError) Error() string {
	return fmt.Sprintf("chapter without title at line %d", e.Line)
}

func (e *MissingChapterTitleError) Help() string {
	return "chapter declarations must include a title: '#chapter: Your Title'"
}

// BlockBeforeChapterError reports a block marker that appeared before any
// chapter was opened.
type BlockBeforeChapterError struct {
	Line int
}

func (e *BlockBeforeChapterError) Error() string {
	return fmt.Sprintf("block defined before any chapter at line %d", e.Line)
}

func (e *BlockBeforeChapterError) Help() string {
	return "move block markers inside a '#chapter:' section"
}

// InvalidIDError reports an @id field whose value is not a valid UUID.
type InvalidIDError struct {
	Line int
	Err  error
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid UUID in @id field at line %d: %v", e.Line, e.Err)
}

func (e *InvalidIDError) Unwrap() error {
	return e.Err
}

func (e *InvalidIDError) Help() string {
	return "the @id field must be a valid UUID (e.g. 550e8400-e29b-41d4-a009-426655440000); omit @id to generate one automatically"
}

// NoChaptersError reports a source with no chapter declarations. Use the
// ErrNoChapters sentinel rather than constructing one.
type NoChaptersError struct{}

func (e *NoChaptersError) Error() string {
	return "book has no chapters"
}

func (e *NoChaptersError) Help() string {
	return "add at least one chapter using '#chapter: Chapter Title'"
}
