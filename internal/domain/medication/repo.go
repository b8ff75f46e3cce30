package medication

import (
	"context"
	"errors"
)

// Common errors returned by prescription repositories.
var (
	ErrPrescriptionNotFound = errors.New("prescription not found")
)

type PrescriptionRepository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, id string) (*Prescription, error)
	Update(ctx context.Context, p *Prescription) error
	ListByPatient(ctx context.Context, patientID string) ([]*Prescription, error)
}
