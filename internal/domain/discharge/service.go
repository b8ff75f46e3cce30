package discharge

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hms/hms/internal/domain/clinical"
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/medication"
	"github.com/hms/hms/internal/domain/scheduling"
)

// Errors returned by the discharge workflow.
var (
	ErrNoAssignedDoctor = errors.New("patient has no assigned doctor")
)

const dateTimeLayout = "2006-01-02 15:04:05"

// PatientDirectory is the slice of the patient registry the discharge
// workflow needs. The identity service satisfies it.
type PatientDirectory interface {
	GetPatient(ctx context.Context, id string) (*identity.Patient, error)
	GetDoctor(ctx context.Context, id string) (*identity.Doctor, error)
	DischargePatient(ctx context.Context, hospitalID, patientID string) error
}

// DiagnosisLog lists a patient's recorded diagnoses. The clinical
// service satisfies it.
type DiagnosisLog interface {
	ListByPatient(ctx context.Context, patientID string) ([]*clinical.Diagnosis, error)
}

// PrescriptionLog lists a patient's prescriptions. The medication
// service satisfies it.
type PrescriptionLog interface {
	ListByPatient(ctx context.Context, patientID string) ([]*medication.Prescription, error)
}

// AppointmentBook books follow-up visits. The scheduling service
// satisfies it.
type AppointmentBook interface {
	Schedule(ctx context.Context, patientID, doctorID string, at time.Time, reason string) (*scheduling.Appointment, error)
}

type Service struct {
	patients      PatientDirectory
	diagnoses     DiagnosisLog
	prescriptions PrescriptionLog
	appointments  AppointmentBook
}

func NewService(patients PatientDirectory, diagnoses DiagnosisLog, prescriptions PrescriptionLog, appointments AppointmentBook) *Service {
	return &Service{
		patients:      patients,
		diagnoses:     diagnoses,
		prescriptions: prescriptions,
		appointments:  appointments,
	}
}

// Initiate discharges the patient and frees their bed.
func (s *Service) Initiate(ctx context.Context, hospitalID, patientID string) error {
	return s.patients.DischargePatient(ctx, hospitalID, patientID)
}

// Summary renders the printable discharge summary, pulling together the
// patient chart, recorded diagnoses and prescriptions. It can be
// generated at any point of the stay, so unset dates print as N/A.
func (s *Service) Summary(ctx context.Context, patientID string) (string, error) {
	p, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		return "", err
	}
	diagnoses, err := s.diagnoses.ListByPatient(ctx, patientID)
	if err != nil {
		return "", err
	}
	prescriptions, err := s.prescriptions.ListByPatient(ctx, patientID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("========== DISCHARGE SUMMARY ==========\n")
	fmt.Fprintf(&sb, "Patient Name: %s\n", p.Name)
	fmt.Fprintf(&sb, "Patient ID: %s\n", p.ID)
	fmt.Fprintf(&sb, "Age: %d\n", p.Age)
	fmt.Fprintf(&sb, "Gender: %s\n", p.Gender)
	sb.WriteString("\n---- HOSPITALIZATION DETAILS ----\n")
	fmt.Fprintf(&sb, "Admission Date: %s\n", formatDate(p.AdmissionDate))
	fmt.Fprintf(&sb, "Discharge Date: %s\n", formatDate(p.DischargeDate))
	fmt.Fprintf(&sb, "Status: %s\n", strings.ToUpper(string(p.Status)))

	if p.AssignedDoctorID != "" {
		doc, err := s.patients.GetDoctor(ctx, p.AssignedDoctorID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "\nAssigned Doctor: Dr. %s (%s)\n", doc.Name, doc.Specialization)
	}

	if len(diagnoses) > 0 {
		sb.WriteString("\n---- DIAGNOSES ----\n")
		for _, d := range diagnoses {
			fmt.Fprintf(&sb, "- %s (Severity: %s)\n", d.Name, d.Severity)
		}
	}

	if len(prescriptions) > 0 {
		sb.WriteString("\n---- PRESCRIPTIONS ----\n")
		for _, pre := range prescriptions {
			fmt.Fprintf(&sb, "Prescription ID: %s\n", pre.ID)
			for _, m := range pre.Medicines {
				fmt.Fprintf(&sb, "  - %s: %s, %s for %s\n", m.Name, m.Dosage, m.Frequency, m.Duration)
			}
		}
	}

	sb.WriteString("\n========================================\n")
	return sb.String(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format(dateTimeLayout)
}

// ScheduleFollowUp books a follow-up visit with the patient's assigned
// doctor.
func (s *Service) ScheduleFollowUp(ctx context.Context, patientID string, at time.Time) (*scheduling.Appointment, error) {
	p, err := s.patients.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if p.AssignedDoctorID == "" {
		return nil, ErrNoAssignedDoctor
	}
	return s.appointments.Schedule(ctx, patientID, p.AssignedDoctorID, at, "Post-discharge follow-up")
}
