package render

import (
	"html"
	"strings"

	"github.com/telquery/churnform/pkg/schema"
)

func (r *Renderer) fieldMarkup(field schema.Field, value, errMsg string) string {
	var b strings.Builder
	b.Grow(512)

	b.WriteString(`<div class="field`)
	if errMsg != "" {
		b.WriteString(" field-error")
	}
	b.WriteString(`" data-field="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString("\">\n")

	b.WriteString(`    <label for="cf-`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(labelOrName(field)))
	if field.Required || field.Numeric() {
		b.WriteString(" *")
	}
	b.WriteString("</label>\n")

	if field.Numeric() {
		b.WriteString(numberControl(field, value, errMsg))
	} else {
		b.WriteString(selectControl(field, value, errMsg))
	}

	if desc := strings.TrimSpace(field.Description); desc != "" {
		b.WriteString(`    <small class="help-text">`)
		b.WriteString(r.sanitizer.Sanitize(desc))
		b.WriteString("</small>\n")
	}

	if errMsg != "" {
		b.WriteString(`    <small class="error-text" data-validation="error">`)
		b.WriteString(html.EscapeString(errMsg))
		b.WriteString("</small>\n")
	}

	b.WriteString("</div>\n")
	return b.String()
}

func selectControl(field schema.Field, value, errMsg string) string {
	var b strings.Builder

	b.WriteString(`    <select id="cf-`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`"`)
	if field.Required {
		b.WriteString(" required")
	}
	if errMsg != "" {
		b.WriteString(` aria-invalid="true"`)
	}
	b.WriteString(">\n")

	b.WriteString(`        <option value=""`)
	if value == "" {
		b.WriteString(" selected")
	}
	b.WriteString(">Select…</option>\n")

	for _, option := range field.Options {
		b.WriteString(`        <option value="`)
		b.WriteString(html.EscapeString(option))
		b.WriteString(`"`)
		if option == value {
			b.WriteString(" selected")
		}
		b.WriteString(">")
		b.WriteString(html.EscapeString(option))
		b.WriteString("</option>\n")
	}

	b.WriteString("    </select>\n")
	return b.String()
}

func numberControl(field schema.Field, value, errMsg string) string {
	var b strings.Builder

	b.WriteString(`    <input type="number" id="cf-`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`" name="`)
	b.WriteString(html.EscapeString(field.Name))
	b.WriteString(`" min="0" step="any" required`)
	if value != "" {
		b.WriteString(` value="`)
		b.WriteString(html.EscapeString(value))
		b.WriteString(`"`)
	}
	if placeholder := strings.TrimSpace(field.Placeholder); placeholder != "" {
		b.WriteString(` placeholder="`)
		b.WriteString(html.EscapeString(placeholder))
		b.WriteString(`"`)
	}
	if errMsg != "" {
		b.WriteString(` aria-invalid="true"`)
	}
	b.WriteString(">\n")
	return b.String()
}

func labelOrName(field schema.Field) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	return field.Name
}
