// Package render converts validated documents into paginated PDF output
// using pdfcpu's declarative page description. Layout is static: headings,
// paragraphs, bullet lists, and key-value rows flowed top to bottom with
// automatic page breaks.
package render

import "errors"

// ErrEmptyRender signals that PDF creation produced zero bytes. An empty
// artifact must never reach a client as a silent download.
var ErrEmptyRender = errors.New("rendered document is empty")
