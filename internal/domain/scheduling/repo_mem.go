package scheduling

import (
	"context"
	"sync"
)

type appointmentRepoMem struct {
	mu    sync.RWMutex
	items map[string]*Appointment
	order []string
}

// NewAppointmentRepo returns an in-memory AppointmentRepository.
func NewAppointmentRepo() AppointmentRepository {
	return &appointmentRepoMem{items: make(map[string]*Appointment)}
}

func cloneAppointment(a *Appointment) *Appointment {
	cp := *a
	return &cp
}

func (r *appointmentRepoMem) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[a.ID]; !ok {
		r.order = append(r.order, a.ID)
	}
	r.items[a.ID] = cloneAppointment(a)
	return nil
}

func (r *appointmentRepoMem) GetByID(_ context.Context, id string) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return cloneAppointment(a), nil
}

func (r *appointmentRepoMem) Update(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[a.ID]; !ok {
		return ErrAppointmentNotFound
	}
	r.items[a.ID] = cloneAppointment(a)
	return nil
}

func (r *appointmentRepoMem) List(_ context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Appointment, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneAppointment(r.items[id]))
	}
	return out, nil
}

func (r *appointmentRepoMem) ListByDoctor(_ context.Context, doctorID string) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Appointment
	for _, id := range r.order {
		if a := r.items[id]; a.DoctorID == doctorID {
			out = append(out, cloneAppointment(a))
		}
	}
	return out, nil
}

func (r *appointmentRepoMem) ListByPatient(_ context.Context, patientID string) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Appointment
	for _, id := range r.order {
		if a := r.items[id]; a.PatientID == patientID {
			out = append(out, cloneAppointment(a))
		}
	}
	return out, nil
}
