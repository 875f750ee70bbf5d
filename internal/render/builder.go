package render

import (
	"fmt"
	"strings"
)

// Letter page geometry in PDF points, upper-left origin.
const (
	pageWidth    = 612.0
	pageHeight   = 792.0
	marginX      = 54.0
	marginTop    = 60.0
	marginBottom = 60.0
)

const (
	fontRegular = "Helvetica"
	fontBold    = "Helvetica-Bold"

	sizeTitle      = 20.0
	sizeHeading    = 14.0
	sizeSubheading = 11.0
	sizeBody       = 10.0

	lineSpacing = 1.4
	// Average glyph advance as a fraction of font size, used for wrapping
	// estimates. Helvetica body text averages just under half an em.
	glyphAdvance = 0.5
)

type textEntry struct {
	Value    string    `json:"value"`
	Anchor   string    `json:"anchor,omitempty"`
	Position []float64 `json:"position,omitempty"`
	Font     fontRef   `json:"font"`
}

type fontRef struct {
	Name string  `json:"name"`
	Size float64 `json:"size"`
}

type pageContent struct {
	Text []textEntry `json:"text"`
}

type page struct {
	Content pageContent `json:"content"`
}

// createSpec is the root of pdfcpu's declarative create JSON.
type createSpec struct {
	Paper  string          `json:"paper"`
	Origin string          `json:"origin"`
	Pages  map[string]page `json:"pages"`
}

// Builder flows text entries down a sequence of pages, breaking to a new
// page whenever the cursor passes the bottom margin.
type Builder struct {
	pages   []page
	current *page
	y       float64
}

// NewBuilder starts a document on a fresh page.
func NewBuilder() *Builder {
	b := &Builder{}
	b.breakPage()
	return b
}

func (b *Builder) breakPage() {
	b.pages = append(b.pages, page{})
	b.current = &b.pages[len(b.pages)-1]
	b.y = marginTop
}

// ensure breaks the page unless the next block of the given height fits.
func (b *Builder) ensure(height float64) {
	if b.y+height > pageHeight-marginBottom {
		b.breakPage()
	}
}

func (b *Builder) write(value, font string, size, indent float64) {
	b.current.Content.Text = append(b.current.Content.Text, textEntry{
		Value:    value,
		Position: []float64{marginX + indent, b.y},
		Font:     fontRef{Name: font, Size: size},
	})
	b.y += size * lineSpacing
}

// Title writes the document title line.
func (b *Builder) Title(text string) {
	b.ensure(sizeTitle * lineSpacing)
	b.write(text, fontBold, sizeTitle, 0)
	b.y += sizeTitle * 0.4
}

// Heading writes a section heading with leading space.
func (b *Builder) Heading(text string) {
	b.y += sizeHeading * 0.6
	b.ensure(sizeHeading * lineSpacing * 2)
	b.write(text, fontBold, sizeHeading, 0)
	b.y += sizeHeading * 0.2
}

// Subheading writes a bold sub-section label.
func (b *Builder) Subheading(text string) {
	b.y += sizeSubheading * 0.4
	b.ensure(sizeSubheading * lineSpacing * 2)
	b.write(text, fontBold, sizeSubheading, 0)
}

// Paragraph writes wrapped body text.
func (b *Builder) Paragraph(text string) {
	for _, line := range wrap(text, bodyColumns(0)) {
		b.ensure(sizeBody * lineSpacing)
		b.write(line, fontRegular, sizeBody, 0)
	}
	b.y += sizeBody * 0.4
}

// Bullets writes each item as an indented, wrapped bullet line.
func (b *Builder) Bullets(items []string) {
	for _, item := range items {
		lines := wrap(item, bodyColumns(14))
		for i, line := range lines {
			b.ensure(sizeBody * lineSpacing)
			if i == 0 {
				b.write("• "+line, fontRegular, sizeBody, 8)
				continue
			}
			b.write(line, fontRegular, sizeBody, 16)
		}
	}
	b.y += sizeBody * 0.4
}

// KeyValue writes a single "Label: value" row.
func (b *Builder) KeyValue(label, value string) {
	for i, line := range wrap(fmt.Sprintf("%s: %s", label, value), bodyColumns(0)) {
		b.ensure(sizeBody * lineSpacing)
		indent := 0.0
		if i > 0 {
			indent = 12
		}
		b.write(line, fontRegular, sizeBody, indent)
	}
}

// Spacer inserts vertical whitespace.
func (b *Builder) Spacer() {
	b.y += sizeBody * lineSpacing
}

// spec assembles the pdfcpu create description for the accumulated pages.
func (b *Builder) spec() createSpec {
	pages := make(map[string]page, len(b.pages))
	for i, p := range b.pages {
		pages[fmt.Sprintf("%d", i+1)] = p
	}

	return createSpec{
		Paper:  "Letter",
		Origin: "upperLeft",
		Pages:  pages,
	}
}

// PageCount reports pages accumulated so far.
func (b *Builder) PageCount() int {
	return len(b.pages)
}

func bodyColumns(indent float64) int {
	usable := pageWidth - 2*marginX - indent
	return int(usable / (sizeBody * glyphAdvance))
}

// wrap breaks text into lines of at most cols characters on word boundaries.
// Words longer than a line are emitted unbroken.
func wrap(text string, cols int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]

	for _, word := range words[1:] {
		if len(line)+1+len(word) > cols {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}

	return append(lines, line)
}
