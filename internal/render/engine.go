package render

import (
	"embed"
	"html/template"
	"io"

	"github.com/Rynhardt5/forest-and-flow/internal/content"
)

//go:embed templates
var templateFS embed.FS

// Engine holds one parsed template set per page. Each set shares the base
// layout and partials; the page template supplies the "content" block.
// Engines are immutable after construction and safe for concurrent use.
type Engine struct {
	home     *template.Template
	services *template.Template
	contact  *template.Template
}

func NewEngine() (*Engine, error) {
	funcs := template.FuncMap{
		"richtext": RichText,
		"pillarIcon": func(name string) template.HTML {
			return PillarSymbol(name).SVG()
		},
		"serviceIcon": func(name string) template.HTML {
			return ServiceSymbol(name).SVG()
		},
		"storyIcon": func(name string) template.HTML {
			return StorySymbol(name).SVG()
		},
		"ctaIcon": func(name string) template.HTML {
			return CTASymbol(name).SVG()
		},
		"counsellingIcon": func(name string) template.HTML {
			return CounsellingSymbol(name).SVG()
		},
		"socialIcon": func(platform string) template.HTML {
			return SocialSymbol(platform).SVG()
		},
	}

	parse := func(page string) (*template.Template, error) {
		return template.New("base.gohtml").Funcs(funcs).ParseFS(
			templateFS,
			"templates/base.gohtml",
			"templates/partials/*.gohtml",
			"templates/"+page,
		)
	}

	home, err := parse("home.gohtml")
	if err != nil {
		return nil, err
	}
	services, err := parse("services.gohtml")
	if err != nil {
		return nil, err
	}
	contact, err := parse("contact.gohtml")
	if err != nil {
		return nil, err
	}

	return &Engine{home: home, services: services, contact: contact}, nil
}

func (e *Engine) Home(w io.Writer, v *content.HomeView) error {
	return e.home.ExecuteTemplate(w, "base.gohtml", v)
}

func (e *Engine) Services(w io.Writer, v *content.ServicesView) error {
	return e.services.ExecuteTemplate(w, "base.gohtml", v)
}

func (e *Engine) Contact(w io.Writer, v *content.ContactView) error {
	return e.contact.ExecuteTemplate(w, "base.gohtml", v)
}
