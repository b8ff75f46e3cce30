package admin

import (
	"context"
	"errors"
)

// Common errors returned by the hospital and department registries.
var (
	ErrHospitalNotFound   = errors.New("hospital not found")
	ErrHospitalExists     = errors.New("hospital already registered")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department already registered")
)

// HospitalRepository defines the storage interface for hospitals.
type HospitalRepository interface {
	Create(ctx context.Context, h *Hospital) error
	GetByID(ctx context.Context, id string) (*Hospital, error)
	Update(ctx context.Context, h *Hospital) error
	List(ctx context.Context) ([]*Hospital, error)
}

// DepartmentRepository defines the storage interface for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, d *Department) error
	GetByID(ctx context.Context, id string) (*Department, error)
	Update(ctx context.Context, d *Department) error
	ListByHospital(ctx context.Context, hospitalID string) ([]*Department, error)
}
