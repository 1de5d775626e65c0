package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/telquery/churnform/pkg/form"
	"github.com/telquery/churnform/pkg/predict"
	"github.com/telquery/churnform/pkg/schema"
)

// recordingPredictor counts calls and replays a canned result.
type recordingPredictor struct {
	calls    int
	payloads []predict.Payload
	result   predict.Result
}

func (p *recordingPredictor) Predict(_ context.Context, payload predict.Payload) predict.Result {
	p.calls++
	p.payloads = append(p.payloads, payload)
	return p.result
}

// reentrantPredictor attempts a second submission from inside the first.
type reentrantPredictor struct {
	controller *form.Controller
	inner      *recordingPredictor
	reentryErr error
}

func (p *reentrantPredictor) Predict(ctx context.Context, payload predict.Payload) predict.Result {
	result := p.inner.Predict(ctx, payload)
	_, p.reentryErr = p.controller.Submit(ctx, p.inner)
	return result
}

func validValues() map[string]string {
	return map[string]string{
		"gender":           "Female",
		"SeniorCitizen":    "No",
		"Partner":          "Yes",
		"Dependents":       "No",
		"tenure":           "12",
		"PhoneService":     "Yes",
		"MultipleLines":    "No",
		"InternetService":  "Fiber optic",
		"OnlineSecurity":   "No",
		"OnlineBackup":     "Yes",
		"DeviceProtection": "No",
		"TechSupport":      "No",
		"StreamingTV":      "Yes",
		"StreamingMovies":  "Yes",
		"Contract":         "Month-to-month",
		"PaperlessBilling": "Yes",
		"PaymentMethod":    "Electronic check",
		"MonthlyCharges":   "70.35",
		"TotalCharges":     "1397.47",
	}
}

func filledController(t *testing.T, overrides map[string]string) *form.Controller {
	t.Helper()
	controller := form.NewController(schema.Default())
	values := validValues()
	for name, value := range overrides {
		values[name] = value
	}
	for name, value := range values {
		if err := controller.SetValue(name, value); err != nil {
			t.Fatalf("set %q: %v", name, err)
		}
	}
	return controller
}

func TestSetValueRejectsUnknownField(t *testing.T) {
	controller := form.NewController(schema.Default())
	if err := controller.SetValue("customerID", "0042"); err == nil {
		t.Fatalf("expected unknown field to be rejected")
	}
}

func TestSetValueRevalidatesSingleField(t *testing.T) {
	controller := form.NewController(schema.Default())

	if err := controller.SetValue("tenure", "abc"); err != nil {
		t.Fatalf("set tenure: %v", err)
	}
	if got := controller.ErrorFor("tenure"); got != "invalid number" {
		t.Fatalf("expected invalid number for tenure, got %q", got)
	}
	// Other fields are untouched by a single edit.
	if got := controller.ErrorFor("gender"); got != "" {
		t.Fatalf("gender should not be validated yet, got %q", got)
	}

	if err := controller.SetValue("tenure", "12"); err != nil {
		t.Fatalf("set tenure: %v", err)
	}
	if got := controller.ErrorFor("tenure"); got != "" {
		t.Fatalf("expected tenure error to clear, got %q", got)
	}
}

func TestValidateFlagsEveryEmptyRequiredField(t *testing.T) {
	controller := form.NewController(schema.Default())

	if controller.Validate() {
		t.Fatalf("an empty form must not validate")
	}

	for _, field := range schema.Default() {
		want := "required"
		if got := controller.ErrorFor(field.Name); got != want {
			t.Fatalf("field %q: expected %q, got %q", field.Name, want, got)
		}
	}
}

func TestValidateSingleMissingCategorical(t *testing.T) {
	controller := filledController(t, map[string]string{"Contract": ""})

	if controller.Validate() {
		t.Fatalf("form with empty Contract must not validate")
	}
	if got := controller.ErrorFor("Contract"); got != "required" {
		t.Fatalf("expected required for Contract, got %q", got)
	}

	errs := controller.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestValidateNumericRules(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"-1", "invalid number"},
		{"", "required"},
		{"abc", "invalid number"},
		{"0", ""},
		{"19.99", ""},
	}

	for _, numeric := range []string{"tenure", "MonthlyCharges", "TotalCharges"} {
		field, ok := schema.Default().Find(numeric)
		if !ok {
			t.Fatalf("missing numeric field %q", numeric)
		}
		for _, tc := range cases {
			if got := form.ValidateField(field, tc.value); got != tc.want {
				t.Fatalf("field %q value %q: expected %q, got %q", numeric, tc.value, tc.want, got)
			}
		}
	}
}

func TestValidateReplacesErrorMapWholesale(t *testing.T) {
	controller := filledController(t, nil)

	// Seed a stale error, then fix the field behind the controller's back via
	// a fresh SetValue and run a full validation: the old entry must not
	// survive the overwrite.
	if err := controller.SetValue("MonthlyCharges", "abc"); err != nil {
		t.Fatalf("set MonthlyCharges: %v", err)
	}
	if err := controller.SetValue("MonthlyCharges", "29.85"); err != nil {
		t.Fatalf("set MonthlyCharges: %v", err)
	}

	if !controller.Validate() {
		t.Fatalf("expected valid form, errors: %v", controller.Errors())
	}
	if diff := cmp.Diff(map[string]string{}, controller.Errors()); diff != "" {
		t.Fatalf("expected no residual errors (-want +got):\n%s", diff)
	}
}

func TestResetClearsEverything(t *testing.T) {
	controller := filledController(t, map[string]string{"tenure": "abc"})
	predictor := &recordingPredictor{result: predict.Result{Status: predict.StatusError, Message: "Prediction failed", Confidence: "0%"}}

	// Park an error and a result, then reset.
	controller.Validate()
	if err := controller.SetValue("tenure", "3"); err != nil {
		t.Fatalf("set tenure: %v", err)
	}
	if _, err := controller.Submit(context.Background(), predictor); err != nil {
		t.Fatalf("submit: %v", err)
	}

	controller.Reset()

	for _, name := range schema.Default().Names() {
		if got := controller.Value(name); got != "" {
			t.Fatalf("field %q: expected empty after reset, got %q", name, got)
		}
	}
	if len(controller.Errors()) != 0 {
		t.Fatalf("expected no errors after reset, got %v", controller.Errors())
	}
	if controller.Result() != nil {
		t.Fatalf("expected result slot cleared after reset")
	}
}

func TestSubmitBlockedByValidation(t *testing.T) {
	controller := filledController(t, map[string]string{"PaymentMethod": ""})
	predictor := &recordingPredictor{}

	_, err := controller.Submit(context.Background(), predictor)
	if !errors.Is(err, form.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if predictor.calls != 0 {
		t.Fatalf("no request may be issued on validation failure, got %d calls", predictor.calls)
	}
	if controller.Result() != nil {
		t.Fatalf("no result may be stored on validation failure")
	}
	// Entered data is preserved for retry.
	if got := controller.Value("gender"); got != "Female" {
		t.Fatalf("entered data lost on failed submit: %q", got)
	}
}

func TestSubmitStoresResult(t *testing.T) {
	controller := filledController(t, nil)
	predictor := &recordingPredictor{result: predict.Result{
		Status:     predict.StatusSuccess,
		Message:    "Churn",
		Confidence: "82%",
	}}

	result, err := controller.Submit(context.Background(), predictor)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if predictor.calls != 1 {
		t.Fatalf("expected exactly one request, got %d", predictor.calls)
	}
	if diff := cmp.Diff(predictor.result, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if controller.Result() == nil || controller.Result().Message != "Churn" {
		t.Fatalf("result slot not populated: %+v", controller.Result())
	}
	if controller.Submitting() {
		t.Fatalf("guard must clear once the call resolves")
	}
}

func TestSubmitGuardsAgainstReentry(t *testing.T) {
	controller := filledController(t, nil)
	inner := &recordingPredictor{result: predict.Result{Status: predict.StatusSuccess, Message: "No churn", Confidence: "12%"}}
	predictor := &reentrantPredictor{controller: controller, inner: inner}

	if _, err := controller.Submit(context.Background(), predictor); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !errors.Is(predictor.reentryErr, form.ErrSubmitting) {
		t.Fatalf("expected reentrant submit to report ErrSubmitting, got %v", predictor.reentryErr)
	}
	if inner.calls != 1 {
		t.Fatalf("second attempt must not issue a request, got %d calls", inner.calls)
	}

	// Once resolved, a new submission may begin.
	if _, err := controller.Submit(context.Background(), inner); err != nil {
		t.Fatalf("follow-up submit: %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("expected follow-up request, got %d calls", inner.calls)
	}
}
