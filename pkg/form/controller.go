// Package form owns the mutable state of one churn questionnaire: the raw
// string value and validation error per field, the single prediction-result
// slot, and the guard that keeps one submission outstanding at a time. All
// mutation happens through the Controller; the prediction client never touches
// form state.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/telquery/churnform/pkg/predict"
	"github.com/telquery/churnform/pkg/schema"
)

var (
	// ErrSubmitting reports that a submission is already outstanding. The
	// attempt is a no-op: no validation runs and no request is issued.
	ErrSubmitting = errors.New("form: submission already in flight")
	// ErrInvalid reports that full-form validation failed and the submission
	// was aborted before any network call.
	ErrInvalid = errors.New("form: validation failed")
)

// Predictor is the outbound dependency of Submit. *predict.Client satisfies
// it; tests substitute recorders and stubs.
type Predictor interface {
	Predict(ctx context.Context, payload predict.Payload) predict.Result
}

// Controller drives one form lifecycle: edit, validate, submit, reset.
// It is not safe for concurrent use; like the UI it models, all events are
// expected to arrive on a single logical thread of control.
type Controller struct {
	catalog    schema.Catalog
	values     map[string]string
	errors     map[string]string
	result     *predict.Result
	submitting bool
}

// NewController seeds every known field with the empty string.
func NewController(catalog schema.Catalog) *Controller {
	c := &Controller{catalog: catalog.Clone()}
	c.Reset()
	return c
}

// Catalog exposes the field set the controller was built from.
func (c *Controller) Catalog() schema.Catalog {
	return c.catalog
}

// SetValue stores value verbatim and revalidates that single field. Unknown
// names are rejected.
func (c *Controller) SetValue(name, value string) error {
	field, ok := c.catalog.Find(name)
	if !ok {
		return fmt.Errorf("form: unknown field %q", name)
	}
	c.values[name] = value
	if msg := ValidateField(field, value); msg != "" {
		c.errors[name] = msg
	} else {
		delete(c.errors, name)
	}
	return nil
}

// Value returns the current raw value for name.
func (c *Controller) Value(name string) string {
	return c.values[name]
}

// Values returns a copy of the current form state.
func (c *Controller) Values() map[string]string {
	out := make(map[string]string, len(c.values))
	for name, value := range c.values {
		out[name] = value
	}
	return out
}

// ErrorFor returns the validation message recorded for name, empty when valid.
func (c *Controller) ErrorFor(name string) string {
	return c.errors[name]
}

// Errors returns a copy of the current validation errors.
func (c *Controller) Errors() map[string]string {
	out := make(map[string]string, len(c.errors))
	for name, msg := range c.errors {
		out[name] = msg
	}
	return out
}

// Validate recomputes the message for every field and reports whether the form
// may be submitted. The stored error mapping is replaced wholesale, never
// merged.
func (c *Controller) Validate() bool {
	errs := make(map[string]string)
	for _, field := range c.catalog {
		if msg := ValidateField(field, c.values[field.Name]); msg != "" {
			errs[field.Name] = msg
		}
	}
	c.errors = errs
	return len(errs) == 0
}

// Reset restores every field to the empty string and clears validation errors
// and the prior result. An outstanding submission keeps its guard; callers
// should not reset while a prediction is in flight.
func (c *Controller) Reset() {
	values := make(map[string]string, len(c.catalog))
	for _, field := range c.catalog {
		values[field.Name] = ""
	}
	c.values = values
	c.errors = make(map[string]string)
	c.result = nil
}

// Result returns the outcome of the last submission, nil before the first
// submission and after a reset.
func (c *Controller) Result() *predict.Result {
	return c.result
}

// Submitting reports whether a submission is outstanding.
func (c *Controller) Submitting() bool {
	return c.submitting
}

// Submit runs one attempt of the submission state machine. While a prior
// attempt is outstanding it returns ErrSubmitting without side effects. When
// validation fails it returns ErrInvalid without issuing a request, leaving
// the per-field messages in place. Otherwise exactly one client call is made,
// its Result (success or error, both displayable) is stored, and the guard is
// cleared before returning.
func (c *Controller) Submit(ctx context.Context, client Predictor) (predict.Result, error) {
	if c.submitting {
		return predict.Result{}, ErrSubmitting
	}
	if !c.Validate() {
		return predict.Result{}, ErrInvalid
	}

	payload, err := predict.BuildPayload(c.values)
	if err != nil {
		return predict.Result{}, err
	}

	c.submitting = true
	defer func() { c.submitting = false }()

	result := client.Predict(ctx, payload)
	c.result = &result
	return result, nil
}
