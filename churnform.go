// Package churnform collects telecom customer attributes through a
// field-definition-driven form, validates them, and forwards them to an
// external churn prediction service. The root package re-exports the primary
// entry points; the full surface lives under pkg/.
package churnform

import (
	"context"

	"github.com/telquery/churnform/pkg/form"
	"github.com/telquery/churnform/pkg/predict"
	"github.com/telquery/churnform/pkg/schema"
)

// Field aliases the catalog field descriptor.
type Field = schema.Field

// Catalog aliases the ordered field set.
type Catalog = schema.Catalog

// Result aliases the displayable prediction outcome.
type Result = predict.Result

// Fields returns the builtin churn questionnaire.
func Fields() Catalog {
	return schema.Default()
}

// NewController builds a form state controller over the catalog.
func NewController(catalog Catalog) *form.Controller {
	return form.NewController(catalog)
}

// NewClient builds a prediction client; without options it targets the
// endpoint from CHURN_API_URL or the localhost default.
func NewClient(options ...predict.Option) *predict.Client {
	return predict.New(options...)
}

// Predict is the one-shot convenience path: validate values against the
// builtin catalog, build the payload, and run a single submission.
func Predict(ctx context.Context, values map[string]string, options ...predict.Option) (Result, error) {
	controller := form.NewController(schema.Default())
	for name, value := range values {
		if err := controller.SetValue(name, value); err != nil {
			return Result{}, err
		}
	}
	return controller.Submit(ctx, predict.New(options...))
}
