package billing

import (
	"context"
	"sync"
)

// -- Bill repository --

type billRepoMem struct {
	mu    sync.RWMutex
	byID  map[string]*Bill
	order []string
}

func NewBillRepo() BillRepository {
	return &billRepoMem{byID: make(map[string]*Bill)}
}

func cloneBill(b *Bill) *Bill {
	cp := *b
	cp.Items = append([]LineItem(nil), b.Items...)
	cp.Payments = append([]Payment(nil), b.Payments...)
	return &cp
}

func (r *billRepoMem) Create(_ context.Context, b *Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[b.ID] = cloneBill(b)
	r.order = append(r.order, b.ID)
	return nil
}

func (r *billRepoMem) GetByID(_ context.Context, id string) (*Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.byID[id]
	if !ok {
		return nil, ErrBillNotFound
	}
	return cloneBill(b), nil
}

func (r *billRepoMem) Update(_ context.Context, b *Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[b.ID]; !ok {
		return ErrBillNotFound
	}
	r.byID[b.ID] = cloneBill(b)
	return nil
}

func (r *billRepoMem) ListByPatient(_ context.Context, patientID string) ([]*Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Bill, 0)
	for _, id := range r.order {
		if b := r.byID[id]; b.PatientID == patientID {
			out = append(out, cloneBill(b))
		}
	}
	return out, nil
}
