package pdfextract

import (
	"bytes"
	"io"

	"github.com/ledongthuc/pdf"
)

// IsPDF reports whether the given bytes start with the PDF magic number.
func IsPDF(b []byte) bool {
	return bytes.HasPrefix(b, []byte("%PDF"))
}

// ExtractText extracts plain text from the PDF bytes. Returns empty string
// and nil error if the PDF has no extractable text.
func ExtractText(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	readerAt := bytes.NewReader(b)
	pdfReader, err := pdf.NewReader(readerAt, int64(len(b)))
	if err != nil {
		return "", err
	}
	plainReader, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	out, err := io.ReadAll(plainReader)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
