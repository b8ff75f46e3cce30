package clinical

import "time"

// Severity grades how serious a diagnosis is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Diagnosis records a condition identified for a patient by a doctor.
type Diagnosis struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	DoctorID    string    `json:"doctor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Severity    Severity  `json:"severity"`
	DiagnosedAt time.Time `json:"diagnosed_at"`
}

// DiagnosisUpdate carries the optional fields of a partial update.
// Nil fields are left unchanged.
type DiagnosisUpdate struct {
	Name        *string
	Description *string
	Severity    *Severity
}
