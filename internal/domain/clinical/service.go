package clinical

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/platform/clock"
	"github.com/hms/hms/internal/platform/sequence"
)

// PatientRegistry is the slice of the patient registry that diagnosis
// workflows need: record lookups plus the back-links written onto the
// patient chart. The identity service satisfies it.
type PatientRegistry interface {
	GetPatient(ctx context.Context, id string) (*identity.Patient, error)
	GetDoctor(ctx context.Context, id string) (*identity.Doctor, error)
	LinkDiagnosis(ctx context.Context, patientID, diagnosisID string) error
	AddHistory(ctx context.Context, patientID, note string) error
}

type Service struct {
	diagnoses DiagnosisRepository
	registry  PatientRegistry
	ids       *sequence.Generator
	clk       clock.Clock
}

func NewService(diagnoses DiagnosisRepository, registry PatientRegistry, ids *sequence.Generator, clk clock.Clock) *Service {
	return &Service{diagnoses: diagnoses, registry: registry, ids: ids, clk: clk}
}

// -- Diagnosis --

var validSeverities = map[Severity]bool{
	SeverityLow: true, SeverityMedium: true, SeverityHigh: true, SeverityCritical: true,
}

// Record creates a diagnosis for a patient, links it onto the patient
// record and appends a medical history entry naming the doctor.
func (s *Service) Record(ctx context.Context, patientID, doctorID, name, description string, severity Severity) (*Diagnosis, error) {
	if name == "" {
		return nil, fmt.Errorf("diagnosis name is required")
	}
	if !validSeverities[severity] {
		return nil, fmt.Errorf("invalid severity: %s", severity)
	}
	patient, err := s.registry.GetPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.registry.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	d := &Diagnosis{
		ID:          s.ids.Next(),
		PatientID:   patient.ID,
		DoctorID:    doctor.ID,
		Name:        name,
		Description: description,
		Severity:    severity,
		DiagnosedAt: s.clk.Now(),
	}
	if err := s.diagnoses.Create(ctx, d); err != nil {
		return nil, err
	}
	if err := s.registry.LinkDiagnosis(ctx, patient.ID, d.ID); err != nil {
		return nil, err
	}
	note := fmt.Sprintf("Diagnosed with %s by Dr. %s", d.Name, doctor.Name)
	if err := s.registry.AddHistory(ctx, patient.ID, note); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Diagnosis, error) {
	return s.diagnoses.GetByID(ctx, id)
}

// Update applies a partial update to an existing diagnosis.
func (s *Service) Update(ctx context.Context, id string, upd DiagnosisUpdate) (*Diagnosis, error) {
	d, err := s.diagnoses.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, fmt.Errorf("diagnosis name is required")
		}
		d.Name = *upd.Name
	}
	if upd.Description != nil {
		d.Description = *upd.Description
	}
	if upd.Severity != nil {
		if !validSeverities[*upd.Severity] {
			return nil, fmt.Errorf("invalid severity: %s", *upd.Severity)
		}
		d.Severity = *upd.Severity
	}
	if err := s.diagnoses.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListByPatient returns the patient's diagnoses in the order they were
// recorded.
func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Diagnosis, error) {
	return s.diagnoses.ListByPatient(ctx, patientID)
}
