package billing

import (
	"context"
	"errors"
)

// Common errors returned by bill repositories.
var (
	ErrBillNotFound = errors.New("bill not found")
)

type BillRepository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id string) (*Bill, error)
	Update(ctx context.Context, b *Bill) error
	ListByPatient(ctx context.Context, patientID string) ([]*Bill, error)
}
