package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var layout = template.Must(template.ParseFS(templateFS, "templates/layout.html"))

// Detail label/value row
type Detail struct {
	Label string
	Value string
}

// Section titled block of rows (digest groups)
type Section struct {
	Heading string
	Details []Detail
}

// Body data of the shared layout
type Body struct {
	Title            string
	Preheader        string
	Paragraphs       []string
	Details          []Detail
	Sections         []Section
	Notice           string
	CTAURL           string
	CTALabel         string
	Footer           string
	ContactName      string
	ContactEmail     string
	ContactExtension string
}

// Render executes the layout with b
func Render(b Body) (string, error) {
	var buf bytes.Buffer
	if err := layout.Execute(&buf, b); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}
