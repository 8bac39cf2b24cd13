package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMetadata marks failures reading resolution or duration from a video.
	ErrMetadata = errors.New("metadata error")
	// ErrEncode marks external encoder failures for a single pair.
	ErrEncode = errors.New("encode error")
	// ErrPrecondition marks conditions that abort a mode before any
	// filesystem mutation: missing encoder, no matching files, bad inputs.
	ErrPrecondition = errors.New("precondition error")
	// ErrConfiguration marks invalid or unloadable configuration.
	ErrConfiguration = errors.New("configuration error")
	// ErrTransient marks unexpected per-file failures that should not stop
	// the rest of the batch.
	ErrTransient = errors.New("transient failure")
)

// Wrap builds an error message that includes mode context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, mode, operation, message string, err error) error {
	detail := buildDetail(mode, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// AbortsMode reports whether the error should stop the current mode instead
// of being counted and skipped.
func AbortsMode(err error) bool {
	return errors.Is(err, ErrPrecondition) || errors.Is(err, ErrConfiguration)
}

func buildDetail(mode, operation, message string) string {
	parts := make([]string, 0, 3)
	if mode = strings.TrimSpace(mode); mode != "" {
		parts = append(parts, mode)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
