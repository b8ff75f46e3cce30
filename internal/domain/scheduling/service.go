package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hms/hms/internal/platform/sequence"
)

// Scheduling failures beyond missing records.
var (
	ErrScheduleConflict  = errors.New("doctor already has an appointment at this time")
	ErrNotReschedulable  = errors.New("appointment can no longer be rescheduled")
	ErrDoctorUnavailable = errors.New("doctor is not available at the requested time")
)

// DoctorDirectory answers whether a doctor can take an appointment.
// The identity service satisfies it.
type DoctorDirectory interface {
	IsDoctorAvailable(ctx context.Context, doctorID string, at time.Time) (bool, error)
}

type Service struct {
	appointments AppointmentRepository
	doctors      DoctorDirectory
	ids          *sequence.Generator
}

func NewService(appointments AppointmentRepository, doctors DoctorDirectory, ids *sequence.Generator) *Service {
	return &Service{appointments: appointments, doctors: doctors, ids: ids}
}

// Schedule books a visit. The slot is refused when the doctor already
// has a non-cancelled appointment at exactly the same instant; partial
// overlaps are not detected.
func (s *Service) Schedule(ctx context.Context, patientID, doctorID string, at time.Time, reason string) (*Appointment, error) {
	if patientID == "" {
		return nil, fmt.Errorf("patient id is required")
	}
	if doctorID == "" {
		return nil, fmt.Errorf("doctor id is required")
	}

	ok, err := s.doctors.IsDoctorAvailable(ctx, doctorID, at)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDoctorUnavailable
	}

	conflict, err := s.hasConflict(ctx, doctorID, at)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrScheduleConflict
	}

	appt := &Appointment{
		ID:        s.ids.Next(),
		PatientID: patientID,
		DoctorID:  doctorID,
		Time:      at,
		Reason:    reason,
		Status:    StatusScheduled,
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *Service) hasConflict(ctx context.Context, doctorID string, at time.Time) (bool, error) {
	existing, err := s.appointments.ListByDoctor(ctx, doctorID)
	if err != nil {
		return false, err
	}
	for _, a := range existing {
		if a.Status != StatusCancelled && a.Time.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

// Reschedule moves the appointment to a new time. Cancelled and
// completed appointments stay where they are.
func (s *Service) Reschedule(ctx context.Context, id string, newTime time.Time) error {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.Status == StatusCancelled || a.Status == StatusCompleted {
		return ErrNotReschedulable
	}
	a.Time = newTime
	a.Status = StatusRescheduled
	return s.appointments.Update(ctx, a)
}

func (s *Service) Cancel(ctx context.Context, id string) error {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Status = StatusCancelled
	return s.appointments.Update(ctx, a)
}

func (s *Service) Complete(ctx context.Context, id, notes string) error {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	a.Status = StatusCompleted
	if notes != "" {
		a.Notes = notes
	}
	return s.appointments.Update(ctx, a)
}

func (s *Service) Get(ctx context.Context, id string) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) ListAppointments(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error) {
	return s.appointments.ListByPatient(ctx, patientID)
}

// DoctorAppointmentsOn lists a doctor's non-cancelled appointments for
// the given calendar day, oldest booking first.
func (s *Service) DoctorAppointmentsOn(ctx context.Context, doctorID string, day time.Time) ([]*Appointment, error) {
	existing, err := s.appointments.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	y, m, d := day.Date()
	var out []*Appointment
	for _, a := range existing {
		if a.Status == StatusCancelled {
			continue
		}
		ay, am, ad := a.Time.In(day.Location()).Date()
		if ay == y && am == m && ad == d {
			out = append(out, a)
		}
	}
	return out, nil
}
