package medication

import (
	"context"
	"sync"
)

// -- Prescription repository --

type prescriptionRepoMem struct {
	mu    sync.RWMutex
	byID  map[string]*Prescription
	order []string
}

func NewPrescriptionRepo() PrescriptionRepository {
	return &prescriptionRepoMem{byID: make(map[string]*Prescription)}
}

func clonePrescription(p *Prescription) *Prescription {
	cp := *p
	cp.Medicines = append([]Medicine(nil), p.Medicines...)
	if p.ExpiryDate != nil {
		d := *p.ExpiryDate
		cp.ExpiryDate = &d
	}
	return &cp
}

func (r *prescriptionRepoMem) Create(_ context.Context, p *Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = clonePrescription(p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *prescriptionRepoMem) GetByID(_ context.Context, id string) (*Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrPrescriptionNotFound
	}
	return clonePrescription(p), nil
}

func (r *prescriptionRepoMem) Update(_ context.Context, p *Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return ErrPrescriptionNotFound
	}
	r.byID[p.ID] = clonePrescription(p)
	return nil
}

func (r *prescriptionRepoMem) ListByPatient(_ context.Context, patientID string) ([]*Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Prescription, 0)
	for _, id := range r.order {
		if p := r.byID[id]; p.PatientID == patientID {
			out = append(out, clonePrescription(p))
		}
	}
	return out, nil
}
