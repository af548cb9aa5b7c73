package ocr

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}

func TestDetectKindText(t *testing.T) {
	path := writeFile(t, "answers.txt", []byte("Q1: The mitochondria is the powerhouse of the cell.\n"))

	kind, err := DetectKind(path)
	require.NoError(t, err)
	require.Equal(t, KindText, kind)
}

func TestDetectKindPDFIsScan(t *testing.T) {
	path := writeFile(t, "paper.pdf", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"))

	kind, err := DetectKind(path)
	require.NoError(t, err)
	require.Equal(t, KindScan, kind)
}

func TestDetectKindPNGIsScan(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	path := writeFile(t, "scan.png", png)

	kind, err := DetectKind(path)
	require.NoError(t, err)
	require.Equal(t, KindScan, kind)
}

func TestReadDocumentText(t *testing.T) {
	path := writeFile(t, "key.txt", []byte("  A: 4  \n"))

	text, err := ReadDocumentText(path)
	require.NoError(t, err)
	require.Equal(t, "A: 4", text)
}

func TestReadDocumentTextRejectsScans(t *testing.T) {
	path := writeFile(t, "sheet.pdf", []byte("%PDF-1.7\n"))

	_, err := ReadDocumentText(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "OCR")
}

func TestReadDocumentTextEmptyFile(t *testing.T) {
	path := writeFile(t, "blank.txt", []byte("   \n"))

	_, err := ReadDocumentText(path)
	require.Error(t, err)
}
