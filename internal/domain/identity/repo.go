package identity

import (
	"context"
	"errors"
)

// Common errors returned by the patient and doctor registries.
var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrPatientExists   = errors.New("patient already registered")
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrDoctorExists    = errors.New("doctor already registered")
)

// PatientRepository defines the storage interface for patients.
type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	Update(ctx context.Context, p *Patient) error
	List(ctx context.Context) ([]*Patient, error)
	SearchByName(ctx context.Context, q string) ([]*Patient, error)
}

// DoctorRepository defines the storage interface for doctors.
type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id string) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	List(ctx context.Context) ([]*Doctor, error)
}
