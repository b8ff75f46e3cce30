package clinical

import (
	"context"
	"sync"
)

// -- Diagnosis repository --

type diagnosisRepoMem struct {
	mu    sync.RWMutex
	byID  map[string]*Diagnosis
	order []string
}

func NewDiagnosisRepo() DiagnosisRepository {
	return &diagnosisRepoMem{byID: make(map[string]*Diagnosis)}
}

func cloneDiagnosis(d *Diagnosis) *Diagnosis {
	cp := *d
	return &cp
}

func (r *diagnosisRepoMem) Create(_ context.Context, d *Diagnosis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[d.ID] = cloneDiagnosis(d)
	r.order = append(r.order, d.ID)
	return nil
}

func (r *diagnosisRepoMem) GetByID(_ context.Context, id string) (*Diagnosis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return nil, ErrDiagnosisNotFound
	}
	return cloneDiagnosis(d), nil
}

func (r *diagnosisRepoMem) Update(_ context.Context, d *Diagnosis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[d.ID]; !ok {
		return ErrDiagnosisNotFound
	}
	r.byID[d.ID] = cloneDiagnosis(d)
	return nil
}

func (r *diagnosisRepoMem) ListByPatient(_ context.Context, patientID string) ([]*Diagnosis, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Diagnosis, 0)
	for _, id := range r.order {
		if d := r.byID[id]; d.PatientID == patientID {
			out = append(out, cloneDiagnosis(d))
		}
	}
	return out, nil
}
