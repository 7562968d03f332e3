// Package render turns a profile into styled terminal output. Each template
// is a Renderer registered under its template name; callers look one up with
// For and never branch on the template string themselves.
package render

import (
	"strings"

	"github.com/Abhishek10293/PortfolioGenerator/pkg/domain"
)

// Renderer produces the full portfolio view for one template.
type Renderer interface {
	// Name is the template this renderer implements.
	Name() domain.Template
	// Render lays the profile out at the given terminal width. Sections
	// with no displayable content are omitted entirely.
	Render(p domain.Profile, width int) string
}

var registry = map[domain.Template]Renderer{}

// Register adds a renderer to the registry, replacing any previous one for
// the same template. Called from init in each renderer file.
func Register(r Renderer) {
	registry[r.Name()] = r
}

// For resolves a template name to its renderer. Unknown or blank names fall
// back to the modern renderer, so a profile always renders.
func For(name string) Renderer {
	if r, ok := registry[domain.ParseTemplate(name)]; ok {
		return r
	}
	return registry[domain.TemplateModern]
}

// minRenderWidth keeps layouts readable when the terminal is tiny.
const minRenderWidth = 40

func clampWidth(w int) int {
	if w < minRenderWidth {
		return minRenderWidth
	}
	return w
}

func joinSections(parts []string) string {
	return strings.Join(parts, "\n\n")
}
