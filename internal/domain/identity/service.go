package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hms/hms/internal/domain/admin"
	"github.com/hms/hms/internal/platform/clock"
)

// Admission failures beyond missing records.
var (
	ErrNoBedsAvailable = errors.New("no beds available")
	ErrNotAdmitted     = errors.New("patient is not admitted")
)

// HospitalDirectory is the slice of the admin service the admission
// workflows need: the facility record and its bed counter.
type HospitalDirectory interface {
	GetHospital(ctx context.Context, id string) (*admin.Hospital, error)
	AdjustBeds(ctx context.Context, hospitalID string, delta int) (int, error)
}

type Service struct {
	patients  PatientRepository
	doctors   DoctorRepository
	hospitals HospitalDirectory
	clk       clock.Clock
}

func NewService(patients PatientRepository, doctors DoctorRepository, hospitals HospitalDirectory, clk clock.Clock) *Service {
	return &Service{patients: patients, doctors: doctors, hospitals: hospitals, clk: clk}
}

// -- Doctor --

func (s *Service) RegisterDoctor(ctx context.Context, d *Doctor) error {
	if d.ID == "" {
		return fmt.Errorf("doctor id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("doctor name is required")
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) SetAvailability(ctx context.Context, doctorID, day, slot string) error {
	if day == "" {
		return fmt.Errorf("day is required")
	}
	d, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if d.Availability == nil {
		d.Availability = make(map[string]string)
	}
	d.Availability[day] = slot
	return s.doctors.Update(ctx, d)
}

// IsDoctorAvailable reports whether a doctor can take an appointment at
// the given time. The stored schedule is advisory only; any registered
// doctor is considered available.
func (s *Service) IsDoctorAvailable(ctx context.Context, doctorID string, _ time.Time) (bool, error) {
	if _, err := s.doctors.GetByID(ctx, doctorID); err != nil {
		return false, err
	}
	return true, nil
}

// -- Patient --

func (s *Service) RegisterPatient(ctx context.Context, p *Patient) error {
	if p.ID == "" {
		return fmt.Errorf("patient id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("patient name is required")
	}
	if p.Age < 0 {
		return fmt.Errorf("patient age must not be negative, got %d", p.Age)
	}
	if p.Status == "" {
		p.Status = PatientOutpatient
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

// PatientName resolves the display name for a patient id.
func (s *Service) PatientName(ctx context.Context, patientID string) (string, error) {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

func (s *Service) SearchPatientsByName(ctx context.Context, q string) ([]*Patient, error) {
	return s.patients.SearchByName(ctx, q)
}

func (s *Service) UpdatePatientInfo(ctx context.Context, patientID string, upd PatientUpdate) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Age != nil {
		p.Age = *upd.Age
	}
	if upd.Gender != nil {
		p.Gender = *upd.Gender
	}
	if upd.Phone != nil {
		p.Phone = *upd.Phone
	}
	if upd.Email != nil {
		p.Email = *upd.Email
	}
	if upd.Address != nil {
		p.Address = *upd.Address
	}
	return s.patients.Update(ctx, p)
}

// AddHistory appends a timestamped note to the patient's medical
// history.
func (s *Service) AddHistory(ctx context.Context, patientID, note string) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	entry := fmt.Sprintf("[%s] %s", s.clk.Now().Format(historyTimeLayout), note)
	p.MedicalHistory = append(p.MedicalHistory, entry)
	return s.patients.Update(ctx, p)
}

// LinkDiagnosis attaches a diagnosis record to the patient.
func (s *Service) LinkDiagnosis(ctx context.Context, patientID, diagnosisID string) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	p.DiagnosisIDs = append(p.DiagnosisIDs, diagnosisID)
	return s.patients.Update(ctx, p)
}

// LinkPrescription attaches a prescription record to the patient.
func (s *Service) LinkPrescription(ctx context.Context, patientID, prescriptionID string) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	p.PrescriptionIDs = append(p.PrescriptionIDs, prescriptionID)
	return s.patients.Update(ctx, p)
}

// -- Admission --

// AdmitPatient takes a bed, assigns the doctor and stamps the admission.
// The patient and doctor must already be registered.
func (s *Service) AdmitPatient(ctx context.Context, hospitalID, patientID, doctorID string) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	doc, err := s.doctors.GetByID(ctx, doctorID)
	if err != nil {
		return err
	}
	h, err := s.hospitals.GetHospital(ctx, hospitalID)
	if err != nil {
		return err
	}
	if h.AvailableBeds <= 0 {
		return ErrNoBedsAvailable
	}

	now := s.clk.Now()
	p.Status = PatientAdmitted
	p.AdmissionDate = &now
	p.AssignedDoctorID = doc.ID
	if err := s.patients.Update(ctx, p); err != nil {
		return err
	}

	onRoster := false
	for _, id := range doc.PatientIDs {
		if id == p.ID {
			onRoster = true
			break
		}
	}
	if !onRoster {
		doc.PatientIDs = append(doc.PatientIDs, p.ID)
		if err := s.doctors.Update(ctx, doc); err != nil {
			return err
		}
	}

	if _, err := s.hospitals.AdjustBeds(ctx, hospitalID, -1); err != nil {
		return err
	}
	return s.AddHistory(ctx, p.ID, fmt.Sprintf("Admitted to %s under Dr. %s", h.Name, doc.Name))
}

// DischargePatient releases the bed and stamps the discharge. Only an
// admitted patient can be discharged.
func (s *Service) DischargePatient(ctx context.Context, hospitalID, patientID string) error {
	p, err := s.patients.GetByID(ctx, patientID)
	if err != nil {
		return err
	}
	if p.Status != PatientAdmitted {
		return ErrNotAdmitted
	}

	now := s.clk.Now()
	p.Status = PatientDischarged
	p.DischargeDate = &now
	if err := s.patients.Update(ctx, p); err != nil {
		return err
	}

	if _, err := s.hospitals.AdjustBeds(ctx, hospitalID, +1); err != nil {
		return err
	}
	return s.AddHistory(ctx, p.ID, "Discharged from hospital")
}
