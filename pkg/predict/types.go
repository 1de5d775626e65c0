package predict

// Status tags a Result as a successful prediction or a failed attempt.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the displayable outcome of one submission attempt. Message carries
// the prediction label on success and the failure detail otherwise. Confidence
// is passed through opaquely as the service formats it ("82%"); it is forced to
// "0%" on every failure path. Threshold is the decision threshold the service
// reports alongside successful predictions, zero when absent.
type Result struct {
	Status     Status  `json:"status"`
	Message    string  `json:"message"`
	Confidence string  `json:"confidence"`
	Threshold  float64 `json:"threshold,omitempty"`
}

// Payload is the POST /predict request body. JSON tags are the external
// contract with the prediction service and must be preserved byte for byte.
type Payload struct {
	Gender           string  `json:"gender"`
	SeniorCitizen    int     `json:"SeniorCitizen"`
	Partner          string  `json:"Partner"`
	Dependents       string  `json:"Dependents"`
	Tenure           int     `json:"tenure"`
	PhoneService     string  `json:"PhoneService"`
	MultipleLines    string  `json:"MultipleLines"`
	InternetService  string  `json:"InternetService"`
	OnlineSecurity   string  `json:"OnlineSecurity"`
	OnlineBackup     string  `json:"OnlineBackup"`
	DeviceProtection string  `json:"DeviceProtection"`
	TechSupport      string  `json:"TechSupport"`
	StreamingTV      string  `json:"StreamingTV"`
	StreamingMovies  string  `json:"StreamingMovies"`
	Contract         string  `json:"Contract"`
	PaperlessBilling string  `json:"PaperlessBilling"`
	PaymentMethod    string  `json:"PaymentMethod"`
	MonthlyCharges   float64 `json:"MonthlyCharges"`
	TotalCharges     float64 `json:"TotalCharges"`
}

type predictionResponse struct {
	Prediction string  `json:"prediction"`
	Confidence string  `json:"confidence"`
	Threshold  float64 `json:"threshold"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}
