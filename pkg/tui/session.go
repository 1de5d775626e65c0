// Package tui walks the churn questionnaire as an interactive terminal
// session: one prompt per catalog field, a confirmation, then the submission
// through the prediction client.
package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/telquery/churnform/pkg/form"
	"github.com/telquery/churnform/pkg/predict"
	"github.com/telquery/churnform/pkg/schema"
)

// Option customises the session.
type Option func(*Session)

// WithPromptDriver swaps the survey-backed driver, mostly for tests.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// Session prompts for every catalog field, validates as it goes, and submits
// the completed form.
type Session struct {
	driver     PromptDriver
	controller *form.Controller
	client     form.Predictor
}

// NewSession builds a session over a fresh controller for the catalog.
func NewSession(catalog schema.Catalog, client form.Predictor, options ...Option) *Session {
	s := &Session{
		driver:     newSurveyDriver(),
		controller: form.NewController(catalog),
		client:     client,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Run collects values for every field, asks for confirmation, and submits.
// A declined confirmation or an interrupt returns ErrAborted; the outcome of a
// completed submission is returned even when the service reports a failure,
// since that is a displayable result rather than a session error.
func (s *Session) Run(ctx context.Context) (predict.Result, error) {
	for _, field := range s.controller.Catalog() {
		if err := s.promptField(ctx, field); err != nil {
			return predict.Result{}, err
		}
	}

	confirmed, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: "Submit for prediction?",
		Default: true,
	})
	if err != nil {
		return predict.Result{}, err
	}
	if !confirmed {
		return predict.Result{}, ErrAborted
	}

	result, err := s.controller.Submit(ctx, s.client)
	if err != nil {
		return predict.Result{}, err
	}

	if err := s.driver.Info(ctx, formatResult(result)); err != nil {
		return predict.Result{}, err
	}
	return result, nil
}

func (s *Session) promptField(ctx context.Context, field schema.Field) error {
	label := field.Label
	if label == "" {
		label = field.Name
	}

	if field.Numeric() {
		value, err := s.driver.Input(ctx, InputConfig{
			Message: label,
			Help:    field.Description,
			Validator: func(value string) error {
				if msg := form.ValidateField(field, value); msg != "" {
					return errors.New(msg)
				}
				return nil
			},
		})
		if err != nil {
			return err
		}
		return s.controller.SetValue(field.Name, value)
	}

	idx, err := s.driver.Select(ctx, SelectConfig{
		Message: label,
		Options: field.Options,
		Help:    field.Description,
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(field.Options) {
		return fmt.Errorf("tui: option index %d out of range for %q", idx, field.Name)
	}
	return s.controller.SetValue(field.Name, field.Options[idx])
}

func formatResult(result predict.Result) string {
	if result.Status == predict.StatusError {
		return fmt.Sprintf("Prediction failed: %s (confidence %s)", result.Message, result.Confidence)
	}
	return fmt.Sprintf("%s (confidence %s)", result.Message, result.Confidence)
}
