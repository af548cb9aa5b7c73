// Package ocr defines the text-extraction collaborator consumed by clients.
// Extraction itself happens outside this system; the package carries the
// interface an integration must satisfy plus helpers for classifying the
// documents a user hands to the CLI.
package ocr

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Progress reports extraction progress for one document. Stage is a short
// human-readable label, percent is 0-100.
type Progress func(stage string, percent int)

// Extractor turns a scanned document into plain text. Implementations wrap
// an external OCR engine; a failed extraction returns a non-nil error and an
// empty string.
type Extractor interface {
	Extract(ctx context.Context, r io.Reader, progress Progress) (string, error)
}

// Kind classifies an input document.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindScan
)

// DetectKind sniffs the file's content type. Plain text is usable directly;
// images and PDFs are scans that must pass through an Extractor first.
func DetectKind(path string) (Kind, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return KindUnknown, fmt.Errorf("detect document type: %w", err)
	}

	switch {
	case mime.Is("text/plain"):
		return KindText, nil
	case mime.Is("application/pdf") || strings.HasPrefix(mime.String(), "image/"):
		return KindScan, nil
	default:
		return KindUnknown, fmt.Errorf("unsupported document type %s", mime.String())
	}
}

// ReadDocumentText loads the extracted text for a document path. Scanned
// documents are rejected with a hint to run OCR first; the CLI consumes the
// extraction service's output rather than embedding an OCR engine.
func ReadDocumentText(path string) (string, error) {
	kind, err := DetectKind(path)
	if err != nil {
		return "", err
	}

	if kind == KindScan {
		return "", fmt.Errorf("%s is a scanned document; extract its text with your OCR tool and pass the text file instead", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	text := strings.TrimSpace(string(content))
	if text == "" {
		return "", fmt.Errorf("%s contains no text", path)
	}

	return text, nil
}
