// Package render produces the churn form page: one control per catalog field,
// inline validation chrome, and a result modal once a submission has resolved.
// Markup is built directly; layout and theming are left to whoever embeds the
// page.
package render

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/telquery/churnform/pkg/predict"
	"github.com/telquery/churnform/pkg/schema"
)

// Options carries per-render data so the catalog itself stays immutable.
type Options struct {
	// Action is the form post target. Defaults to "/".
	Action string
	// Values prefills controls keyed by field name.
	Values map[string]string
	// Errors surfaces validation feedback keyed by field name.
	Errors map[string]string
	// Result, when non-nil, renders the outcome modal.
	Result *predict.Result
	// Submitting disables the submit and reset affordances.
	Submitting bool
}

// Renderer renders catalogs into full HTML pages. Help-text HTML passes
// through a bluemonday UGC policy so operator-supplied catalogs cannot inject
// script.
type Renderer struct {
	sanitizer *bluemonday.Policy
}

// New constructs a Renderer with the default sanitizer.
func New() *Renderer {
	return &Renderer{sanitizer: bluemonday.UGCPolicy()}
}

// ContentType reports the media type of Page output.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Page renders the complete form document.
func (r *Renderer) Page(catalog schema.Catalog, opts Options) []byte {
	action := strings.TrimSpace(opts.Action)
	if action == "" {
		action = "/"
	}

	var b strings.Builder
	b.Grow(4096)

	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("    <meta charset=\"utf-8\">\n")
	b.WriteString("    <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("    <title>Customer Churn Prediction</title>\n")
	b.WriteString("</head>\n<body>\n<main class=\"form-shell\">\n")
	b.WriteString("    <h1>Customer Churn Prediction</h1>\n")

	b.WriteString(`    <form method="post" action="`)
	b.WriteString(html.EscapeString(action))
	b.WriteString("\" class=\"churn-form\" novalidate>\n")

	for _, field := range catalog {
		markup := r.fieldMarkup(field, opts.Values[field.Name], opts.Errors[field.Name])
		for _, line := range strings.Split(markup, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			b.WriteString("        ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteString("        <div class=\"form-actions\">\n")
	b.WriteString(`            <button type="submit"`)
	if opts.Submitting {
		b.WriteString(" disabled")
	}
	b.WriteString(">")
	if opts.Submitting {
		b.WriteString("Predicting…")
	} else {
		b.WriteString("Predict")
	}
	b.WriteString("</button>\n")
	b.WriteString(`            <a class="reset" href="`)
	b.WriteString(html.EscapeString(action))
	b.WriteString(`"`)
	if opts.Submitting {
		b.WriteString(` aria-disabled="true"`)
	}
	b.WriteString(">Reset</a>\n")
	b.WriteString("        </div>\n")
	b.WriteString("    </form>\n")

	if opts.Result != nil {
		b.WriteString(resultModal(*opts.Result))
	}

	b.WriteString("</main>\n</body>\n</html>\n")
	return []byte(b.String())
}
