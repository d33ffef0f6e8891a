package md2cv

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/alnah/go-md2cv/internal/fileutil"
)

// ExtractSource returns the markdown embedded in a PDF exported with
// Input.EmbedSource. The first attachment with a markdown extension wins.
func ExtractSource(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty input", ErrInvalidPDF)
	}

	atts, err := api.ExtractAttachmentsRaw(bytes.NewReader(data), "", nil, pdfConfig())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	for _, a := range atts {
		if !fileutil.IsMarkdown(a.FileName) {
			continue
		}
		src, err := io.ReadAll(a)
		if err != nil {
			return "", fmt.Errorf("reading attachment %q: %w", a.FileName, err)
		}
		return string(src), nil
	}
	return "", ErrNoEmbeddedSource
}
