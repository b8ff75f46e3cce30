package medication

import "time"

// Medicine is one drug line on a prescription.
type Medicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

// Prescription is a doctor's medication order for a patient, optionally
// tied to the diagnosis it treats.
type Prescription struct {
	ID          string     `json:"id"`
	PatientID   string     `json:"patient_id"`
	DoctorID    string     `json:"doctor_id"`
	DiagnosisID string     `json:"diagnosis_id,omitempty"`
	Medicines   []Medicine `json:"medicines"`
	IssuedAt    time.Time  `json:"issued_at"`
	ExpiryDate  *time.Time `json:"expiry_date,omitempty"`
}
