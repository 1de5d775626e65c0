package schema

var yesNo = []string{"Yes", "No"}

// Default returns the builtin churn questionnaire. Field names are the wire
// keys of the prediction service's CustomerData contract and must be preserved
// byte for byte; option strings mirror the Telco customer dataset values the
// model was trained on.
func Default() Catalog {
	catalog := Catalog{
		{Name: "gender", Label: "Gender", Type: FieldTypeCategorical, Options: []string{"Female", "Male"}, Required: true},
		{Name: "SeniorCitizen", Label: "Senior Citizen", Type: FieldTypeCategorical, Options: yesNo, Required: true,
			Description: "Sent to the service as 1 for Yes, 0 for No."},
		{Name: "Partner", Label: "Partner", Type: FieldTypeCategorical, Options: yesNo, Required: true},
		{Name: "Dependents", Label: "Dependents", Type: FieldTypeCategorical, Options: yesNo, Required: true},
		{Name: "tenure", Label: "Tenure (months)", Type: FieldTypeInteger, Required: true, Placeholder: "12"},
		{Name: "PhoneService", Label: "Phone Service", Type: FieldTypeCategorical, Options: yesNo, Required: true},
		{Name: "MultipleLines", Label: "Multiple Lines", Type: FieldTypeCategorical, Options: []string{"Yes", "No", "No phone service"}, Required: true},
		{Name: "InternetService", Label: "Internet Service", Type: FieldTypeCategorical, Options: []string{"DSL", "Fiber optic", "No"}, Required: true},
		{Name: "OnlineSecurity", Label: "Online Security", Type: FieldTypeCategorical, Options: []string{"Yes", "No", "No internet service"}, Required: true},
		{Name: "OnlineBackup", Label: "Online Backup", Type: FieldTypeCategorical, Options: []string{"Yes", "No", "No internet service"}, Required: true},
		{Name: "DeviceProtection", Label: "Device Protection", Type: FieldTypeCategorical, Options: []string{"Yes", "No", "No internet service"}, Required: true},
		{Name: "TechSupport", Label: "Tech Support", Type: FieldTypeCategorical, Options: []string{"Yes", "No", "No internet service"}, Required: true},
		{Name: "StreamingTV", Label: "Streaming TV", Type: FieldTypeCategorical, Options: []string{"Yes", "No", "No internet service"}, Required: true},
		{Name: "StreamingMovies", Label: "Streaming Movies", Type: FieldTypeCategorical, Options: []string{"Yes", "No", "No internet service"}, Required: true},
		{Name: "Contract", Label: "Contract", Type: FieldTypeCategorical, Options: []string{"Month-to-month", "One year", "Two year"}, Required: true},
		{Name: "PaperlessBilling", Label: "Paperless Billing", Type: FieldTypeCategorical, Options: yesNo, Required: true},
		{Name: "PaymentMethod", Label: "Payment Method", Type: FieldTypeCategorical, Options: []string{"Electronic check", "Mailed check", "Bank transfer (automatic)", "Credit card (automatic)"}, Required: true},
		{Name: "MonthlyCharges", Label: "Monthly Charges", Type: FieldTypeNumber, Required: true, Placeholder: "29.85"},
		{Name: "TotalCharges", Label: "Total Charges", Type: FieldTypeNumber, Required: true, Placeholder: "1889.50"},
	}
	return catalog.Clone()
}
