package predict

import (
	"fmt"
	"strconv"
	"strings"
)

// BuildPayload converts validated raw form values into the wire payload.
// SeniorCitizen collapses to 1 for Yes and 0 for anything else, the charge
// fields parse as floating point, tenure parses as a float and truncates to a
// whole month count, and every other field passes through as its selected
// option string. Callers are expected to have run full-form validation first;
// parse failures here mean that contract was broken and surface as errors.
func BuildPayload(values map[string]string) (Payload, error) {
	monthly, err := parseNumber(values, "MonthlyCharges")
	if err != nil {
		return Payload{}, err
	}
	total, err := parseNumber(values, "TotalCharges")
	if err != nil {
		return Payload{}, err
	}
	tenure, err := parseNumber(values, "tenure")
	if err != nil {
		return Payload{}, err
	}

	senior := 0
	if strings.EqualFold(strings.TrimSpace(values["SeniorCitizen"]), "yes") {
		senior = 1
	}

	return Payload{
		Gender:           values["gender"],
		SeniorCitizen:    senior,
		Partner:          values["Partner"],
		Dependents:       values["Dependents"],
		Tenure:           int(tenure),
		PhoneService:     values["PhoneService"],
		MultipleLines:    values["MultipleLines"],
		InternetService:  values["InternetService"],
		OnlineSecurity:   values["OnlineSecurity"],
		OnlineBackup:     values["OnlineBackup"],
		DeviceProtection: values["DeviceProtection"],
		TechSupport:      values["TechSupport"],
		StreamingTV:      values["StreamingTV"],
		StreamingMovies:  values["StreamingMovies"],
		Contract:         values["Contract"],
		PaperlessBilling: values["PaperlessBilling"],
		PaymentMethod:    values["PaymentMethod"],
		MonthlyCharges:   monthly,
		TotalCharges:     total,
	}, nil
}

func parseNumber(values map[string]string, name string) (float64, error) {
	raw := strings.TrimSpace(values[name])
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("predict: field %q is not a number: %w", name, err)
	}
	if parsed < 0 {
		return 0, fmt.Errorf("predict: field %q is negative", name)
	}
	return parsed, nil
}
