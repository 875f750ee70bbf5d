package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Render produces the PDF bytes for the pages accumulated in the builder.
// Zero-byte output is a failure, never a valid artifact.
func Render(b *Builder) ([]byte, error) {
	spec, err := json.Marshal(b.spec())
	if err != nil {
		return nil, fmt.Errorf("marshal page description: %w", err)
	}

	var buf bytes.Buffer
	if err := api.Create(nil, bytes.NewReader(spec), &buf, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("create pdf: %w", err)
	}

	if buf.Len() == 0 {
		return nil, ErrEmptyRender
	}

	return buf.Bytes(), nil
}

// SanitizeFilename derives a download filename from a document title.
// Runs of characters outside [a-z0-9] collapse to single hyphens; an empty
// result falls back to the document kind.
func SanitizeFilename(title, kind string) string {
	var sb strings.Builder
	hyphen := false

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && sb.Len() > 0 {
				sb.WriteByte('-')
				hyphen = true
			}
		}
	}

	name := strings.Trim(sb.String(), "-")
	if name == "" {
		name = kind
	}

	return "formatio-" + name + ".pdf"
}
