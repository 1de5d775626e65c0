package render

import (
	"html"
	"strings"

	"github.com/telquery/churnform/pkg/predict"
)

// resultModal renders the outcome of the last submission. It is emitted
// unconditionally once a result exists; dismissing it returns to the form with
// the entered data intact so a failed attempt can be retried without
// re-entering everything.
func resultModal(result predict.Result) string {
	var b strings.Builder
	b.Grow(512)

	b.WriteString(`    <dialog class="result-modal result-`)
	b.WriteString(html.EscapeString(string(result.Status)))
	b.WriteString(`" open>`)
	b.WriteByte('\n')

	heading := "Prediction Result"
	if result.Status == predict.StatusError {
		heading = "Prediction Failed"
	}
	b.WriteString("        <h2>")
	b.WriteString(html.EscapeString(heading))
	b.WriteString("</h2>\n")

	b.WriteString(`        <p class="result-message">`)
	b.WriteString(html.EscapeString(result.Message))
	b.WriteString("</p>\n")

	b.WriteString(`        <p class="result-confidence">Confidence: `)
	b.WriteString(html.EscapeString(result.Confidence))
	b.WriteString("</p>\n")

	b.WriteString("        <form method=\"dialog\"><button>Close</button></form>\n")
	b.WriteString("    </dialog>\n")
	return b.String()
}
