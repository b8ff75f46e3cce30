package admin

import (
	"context"
	"sync"
)

// The registries hand out copies, never their stored pointers, so a
// caller can only change state by going back through Update.

func cloneHospital(h *Hospital) *Hospital {
	cp := *h
	cp.DepartmentIDs = append([]string(nil), h.DepartmentIDs...)
	return &cp
}

func cloneDepartment(d *Department) *Department {
	cp := *d
	cp.DoctorIDs = append([]string(nil), d.DoctorIDs...)
	return &cp
}

// -- Hospital Registry --

type hospitalRepoMem struct {
	mu    sync.RWMutex
	items map[string]*Hospital
	order []string
}

// NewHospitalRepo returns an in-memory HospitalRepository.
func NewHospitalRepo() HospitalRepository {
	return &hospitalRepoMem{items: make(map[string]*Hospital)}
}

func (r *hospitalRepoMem) Create(_ context.Context, h *Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[h.ID]; ok {
		return ErrHospitalExists
	}
	r.items[h.ID] = cloneHospital(h)
	r.order = append(r.order, h.ID)
	return nil
}

func (r *hospitalRepoMem) GetByID(_ context.Context, id string) (*Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.items[id]
	if !ok {
		return nil, ErrHospitalNotFound
	}
	return cloneHospital(h), nil
}

func (r *hospitalRepoMem) Update(_ context.Context, h *Hospital) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[h.ID]; !ok {
		return ErrHospitalNotFound
	}
	r.items[h.ID] = cloneHospital(h)
	return nil
}

func (r *hospitalRepoMem) List(_ context.Context) ([]*Hospital, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Hospital, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, cloneHospital(r.items[id]))
	}
	return out, nil
}

// -- Department Registry --

type departmentRepoMem struct {
	mu    sync.RWMutex
	items map[string]*Department
	order []string
}

// NewDepartmentRepo returns an in-memory DepartmentRepository.
func NewDepartmentRepo() DepartmentRepository {
	return &departmentRepoMem{items: make(map[string]*Department)}
}

func (r *departmentRepoMem) Create(_ context.Context, d *Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[d.ID]; ok {
		return ErrDepartmentExists
	}
	r.items[d.ID] = cloneDepartment(d)
	r.order = append(r.order, d.ID)
	return nil
}

func (r *departmentRepoMem) GetByID(_ context.Context, id string) (*Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.items[id]
	if !ok {
		return nil, ErrDepartmentNotFound
	}
	return cloneDepartment(d), nil
}

func (r *departmentRepoMem) Update(_ context.Context, d *Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[d.ID]; !ok {
		return ErrDepartmentNotFound
	}
	r.items[d.ID] = cloneDepartment(d)
	return nil
}

func (r *departmentRepoMem) ListByHospital(_ context.Context, hospitalID string) ([]*Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Department
	for _, id := range r.order {
		if d := r.items[id]; d.HospitalID == hospitalID {
			out = append(out, cloneDepartment(d))
		}
	}
	return out, nil
}
