package scheduling

import (
	"context"
	"errors"
)

// ErrAppointmentNotFound is returned by the registry when no appointment
// has the given id.
var ErrAppointmentNotFound = errors.New("appointment not found")

// AppointmentRepository defines the storage interface for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, a *Appointment) error
	List(ctx context.Context) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]*Appointment, error)
}
