package identity

import (
	"context"
	"strings"
	"sync"
)

func clonePatient(p *Patient) *Patient {
	cp := *p
	cp.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	cp.DiagnosisIDs = append([]string(nil), p.DiagnosisIDs...)
	cp.PrescriptionIDs = append([]string(nil), p.PrescriptionIDs...)
	if p.AdmissionDate != nil {
		at := *p.AdmissionDate
		cp.AdmissionDate = &at
	}
	if p.DischargeDate != nil {
		dt := *p.DischargeDate
		cp.DischargeDate = &dt
	}
	return &cp
}

func cloneDoctor(d *Doctor) *Doctor {
	cp := *d
	cp.PatientIDs = append([]string(nil), d.PatientIDs...)
	if d.Availability != nil {
		cp.Availability = make(map[string]string, len(d.Availability))
		for k, v := range d.Availability {
			cp.Availability[k] = v
		}
	}
	return &cp
}

// -- Patient Registry --

type patientRepoMem struct {
	mu    sync.RWMutex
	items map[string]*Patient
	order []string
}

// NewPatientRepo returns an in-memory PatientRepository.
func NewPatientRepo() PatientRepository {
	return &patientRepoMem{items: make(map[string]*Patient)}
}

func (r *patientRepoMem) Create(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return ErrPatientExists
	}
	r.items[p.ID] = clonePatient(p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *patientRepoMem) GetByID(_ context.Context, id string) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, ErrPatientNotFound
	}
	return clonePatient(p), nil
}

func (r *patientRepoMem) Update(_ context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; !ok {
		return ErrPatientNotFound
	}
	r.items[p.ID] = clonePatient(p)
	return nil
}

func (r *patientRepoMem) List(_ context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Patient, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, clonePatient(r.items[id]))
	}
	return out, nil
}

func (r *patientRepoMem) SearchByName(_ context.Context, q string) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(q)
	var out []*Patient
	for _, id := range r.order {
		p := r.items[id]
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, clonePatient(p))
		}
	}
	return out, nil
}

// -- Doctor Registry --

type doctorRepoMem struct {
	mu    sync.RWMutex
	items map[string]*Doctor
	order []string
}

// NewDoctorRepo returns an in-memory DoctorRepository.
func NewDoctorRepo() DoctorRepository {
	return &doctorRepoMem{items: make(map[string]*Doctor)}
}

func (r *doctorRepoMem) Create(_ context.Context, d *Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[d.ID]; ok {
		return ErrDoctorExists
	}
	r.items[d.ID] = cloneDoctor(d)
	r.order = append(r.order, d.ID)
	return nil
}

func (r *doctorRepoMem) GetByID(_ context.Context, id string) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.items[id]
	if !ok {
		return nil, ErrDoctorNotFound
	}
	return cloneDoctor(d), nil
}

func (r *doctorRepoMem) Update(_ context.Context, d *Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[d.ID]; !ok {
		return ErrDoctorNotFound
	}
	r.items[d.ID] = cloneDoctor(d)
	return nil
}

func (r *doctorRepoMem) List(_ context.Context) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Doctor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneDoctor(r.items[id]))
	}
	return out, nil
}
