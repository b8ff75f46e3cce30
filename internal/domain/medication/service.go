package medication

import (
	"context"
	"fmt"
	"time"

	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/platform/clock"
	"github.com/hms/hms/internal/platform/sequence"
)

// PatientRegistry is the slice of the patient registry that prescription
// workflows need. The identity service satisfies it.
type PatientRegistry interface {
	GetPatient(ctx context.Context, id string) (*identity.Patient, error)
	LinkPrescription(ctx context.Context, patientID, prescriptionID string) error
}

type Service struct {
	prescriptions PrescriptionRepository
	registry      PatientRegistry
	ids           *sequence.Generator
	clk           clock.Clock
}

func NewService(prescriptions PrescriptionRepository, registry PatientRegistry, ids *sequence.Generator, clk clock.Clock) *Service {
	return &Service{prescriptions: prescriptions, registry: registry, ids: ids, clk: clk}
}

// -- Prescription --

// Create opens an empty prescription for a patient and links it onto the
// patient record. Medicines are added afterwards.
func (s *Service) Create(ctx context.Context, patientID, doctorID, diagnosisID string) (*Prescription, error) {
	if doctorID == "" {
		return nil, fmt.Errorf("doctor id is required")
	}
	patient, err := s.registry.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	p := &Prescription{
		ID:          s.ids.Next(),
		PatientID:   patient.ID,
		DoctorID:    doctorID,
		DiagnosisID: diagnosisID,
		Medicines:   []Medicine{},
		IssuedAt:    s.clk.Now(),
	}
	if err := s.prescriptions.Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.registry.LinkPrescription(ctx, patient.ID, p.ID); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Prescription, error) {
	return s.prescriptions.GetByID(ctx, id)
}

// AddMedicine appends a drug line to an existing prescription.
func (s *Service) AddMedicine(ctx context.Context, prescriptionID string, m Medicine) error {
	if m.Name == "" {
		return fmt.Errorf("medicine name is required")
	}
	p, err := s.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	p.Medicines = append(p.Medicines, m)
	return s.prescriptions.Update(ctx, p)
}

// RemoveMedicine drops the first drug line matching name. It reports
// whether anything was removed.
func (s *Service) RemoveMedicine(ctx context.Context, prescriptionID, name string) (bool, error) {
	p, err := s.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return false, err
	}
	for i, m := range p.Medicines {
		if m.Name == name {
			p.Medicines = append(p.Medicines[:i], p.Medicines[i+1:]...)
			return true, s.prescriptions.Update(ctx, p)
		}
	}
	return false, nil
}

// SetExpiry stamps an expiry date on the prescription.
func (s *Service) SetExpiry(ctx context.Context, prescriptionID string, expiry time.Time) error {
	p, err := s.prescriptions.GetByID(ctx, prescriptionID)
	if err != nil {
		return err
	}
	p.ExpiryDate = &expiry
	return s.prescriptions.Update(ctx, p)
}

// IsValid reports whether a prescription can still be filled. Unknown
// prescriptions are invalid rather than an error, prescriptions without
// an expiry date never lapse.
func (s *Service) IsValid(ctx context.Context, prescriptionID string) (bool, error) {
	p, err := s.prescriptions.GetByID(ctx, prescriptionID)
	if err == ErrPrescriptionNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if p.ExpiryDate == nil {
		return true, nil
	}
	return !s.clk.Now().After(*p.ExpiryDate), nil
}

// ListByPatient returns the patient's prescriptions in issue order.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error) {
	return s.prescriptions.ListByPatient(ctx, patientID)
}
