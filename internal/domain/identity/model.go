package identity

import "time"

// PatientStatus tracks where a patient is in the care lifecycle.
type PatientStatus string

const (
	PatientOutpatient PatientStatus = "outpatient"
	PatientAdmitted   PatientStatus = "admitted"
	PatientDischarged PatientStatus = "discharged"
)

// Layout used for the timestamps baked into medical history entries.
const historyTimeLayout = "2006-01-02 15:04:05"

// Patient is the master record for a person receiving care. Diagnoses
// and prescriptions are linked by ID; their records live in their own
// registries.
type Patient struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Age              int           `json:"age"`
	Gender           string        `json:"gender,omitempty"`
	Phone            string        `json:"phone,omitempty"`
	Email            string        `json:"email,omitempty"`
	Address          string        `json:"address,omitempty"`
	Status           PatientStatus `json:"status"`
	MedicalHistory   []string      `json:"medical_history,omitempty"`
	AdmissionDate    *time.Time    `json:"admission_date,omitempty"`
	DischargeDate    *time.Time    `json:"discharge_date,omitempty"`
	AssignedDoctorID string        `json:"assigned_doctor_id,omitempty"`
	DiagnosisIDs     []string      `json:"diagnosis_ids,omitempty"`
	PrescriptionIDs  []string      `json:"prescription_ids,omitempty"`
}

// Doctor is a practitioner on the hospital roster. Availability maps a
// weekday name to a time slot, e.g. "Monday" -> "9:00-17:00".
type Doctor struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Specialization string            `json:"specialization,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	Email          string            `json:"email,omitempty"`
	DepartmentID   string            `json:"department_id,omitempty"`
	Availability   map[string]string `json:"availability,omitempty"`
	PatientIDs     []string          `json:"patient_ids,omitempty"`
}

// PatientUpdate carries the optional fields of a partial patient update.
// Nil fields are left untouched.
type PatientUpdate struct {
	Name    *string
	Age     *int
	Gender  *string
	Phone   *string
	Email   *string
	Address *string
}
