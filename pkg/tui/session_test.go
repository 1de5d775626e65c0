package tui_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/telquery/churnform/pkg/predict"
	"github.com/telquery/churnform/pkg/schema"
	"github.com/telquery/churnform/pkg/tui"
)

// scriptedDriver replays canned answers: categorical prompts select by option
// string, numeric prompts return the scripted text.
type scriptedDriver struct {
	answers  map[string]string
	confirm  bool
	infoMsgs []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg tui.InputConfig) (string, error) {
	answer, ok := d.answers[cfg.Message]
	if !ok {
		return "", errors.New("no scripted answer for " + cfg.Message)
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(answer); err != nil {
			return "", err
		}
	}
	return answer, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg tui.SelectConfig) (int, error) {
	answer, ok := d.answers[cfg.Message]
	if !ok {
		return 0, errors.New("no scripted answer for " + cfg.Message)
	}
	for i, option := range cfg.Options {
		if option == answer {
			return i, nil
		}
	}
	return 0, errors.New("scripted answer not among options for " + cfg.Message)
}

func (d *scriptedDriver) Confirm(_ context.Context, _ tui.ConfirmConfig) (bool, error) {
	return d.confirm, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infoMsgs = append(d.infoMsgs, msg)
	return nil
}

type stubPredictor struct {
	payloads []predict.Payload
	result   predict.Result
}

func (p *stubPredictor) Predict(_ context.Context, payload predict.Payload) predict.Result {
	p.payloads = append(p.payloads, payload)
	return p.result
}

func scriptedAnswers() map[string]string {
	return map[string]string{
		"Gender":            "Female",
		"Senior Citizen":    "Yes",
		"Partner":           "No",
		"Dependents":        "No",
		"Tenure (months)":   "8",
		"Phone Service":     "Yes",
		"Multiple Lines":    "No",
		"Internet Service":  "DSL",
		"Online Security":   "No",
		"Online Backup":     "No",
		"Device Protection": "No",
		"Tech Support":      "No",
		"Streaming TV":      "No",
		"Streaming Movies":  "No",
		"Contract":          "Month-to-month",
		"Paperless Billing": "Yes",
		"Payment Method":    "Electronic check",
		"Monthly Charges":   "45.30",
		"Total Charges":     "362.40",
	}
}

func TestSessionRunSubmits(t *testing.T) {
	driver := &scriptedDriver{answers: scriptedAnswers(), confirm: true}
	predictor := &stubPredictor{result: predict.Result{
		Status:     predict.StatusSuccess,
		Message:    "This customer is likely to continue",
		Confidence: "37%",
	}}

	session := tui.NewSession(schema.Default(), predictor, tui.WithPromptDriver(driver))
	result, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if diff := cmp.Diff(predictor.result, result); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if len(predictor.payloads) != 1 {
		t.Fatalf("expected one submission, got %d", len(predictor.payloads))
	}

	payload := predictor.payloads[0]
	if payload.SeniorCitizen != 1 {
		t.Fatalf("SeniorCitizen Yes must reach the wire as 1, got %d", payload.SeniorCitizen)
	}
	if payload.Tenure != 8 || payload.MonthlyCharges != 45.30 {
		t.Fatalf("numeric answers not carried: %+v", payload)
	}
	if payload.Contract != "Month-to-month" {
		t.Fatalf("categorical answer altered: %q", payload.Contract)
	}

	if len(driver.infoMsgs) != 1 || driver.infoMsgs[0] != "This customer is likely to continue (confidence 37%)" {
		t.Fatalf("unexpected result output: %v", driver.infoMsgs)
	}
}

func TestSessionDeclinedConfirmationAborts(t *testing.T) {
	driver := &scriptedDriver{answers: scriptedAnswers(), confirm: false}
	predictor := &stubPredictor{}

	session := tui.NewSession(schema.Default(), predictor, tui.WithPromptDriver(driver))
	if _, err := session.Run(context.Background()); !errors.Is(err, tui.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if len(predictor.payloads) != 0 {
		t.Fatalf("declined confirmation must not submit")
	}
}

func TestSessionReportsServiceFailure(t *testing.T) {
	driver := &scriptedDriver{answers: scriptedAnswers(), confirm: true}
	predictor := &stubPredictor{result: predict.Result{
		Status:     predict.StatusError,
		Message:    "model unavailable",
		Confidence: "0%",
	}}

	session := tui.NewSession(schema.Default(), predictor, tui.WithPromptDriver(driver))
	result, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("a failed prediction is a displayable result, not a session error: %v", err)
	}
	if result.Status != predict.StatusError {
		t.Fatalf("expected error result, got %+v", result)
	}
	if len(driver.infoMsgs) != 1 || driver.infoMsgs[0] != "Prediction failed: model unavailable (confidence 0%)" {
		t.Fatalf("unexpected failure output: %v", driver.infoMsgs)
	}
}

func TestSessionNumericValidatorRejectsBadInput(t *testing.T) {
	answers := scriptedAnswers()
	answers["Tenure (months)"] = "abc"
	driver := &scriptedDriver{answers: answers, confirm: true}

	session := tui.NewSession(schema.Default(), &stubPredictor{}, tui.WithPromptDriver(driver))
	if _, err := session.Run(context.Background()); err == nil {
		t.Fatalf("expected the numeric validator to reject %q", "abc")
	}
}
