package clinical

import (
	"context"
	"errors"
)

// Common errors returned by diagnosis repositories.
var (
	ErrDiagnosisNotFound = errors.New("diagnosis not found")
)

type DiagnosisRepository interface {
	Create(ctx context.Context, d *Diagnosis) error
	GetByID(ctx context.Context, id string) (*Diagnosis, error)
	Update(ctx context.Context, d *Diagnosis) error
	ListByPatient(ctx context.Context, patientID string) ([]*Diagnosis, error)
}
