package billing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/clock"
	"github.com/hms/hms/internal/platform/sequence"
)

// Common errors returned by the billing service.
var (
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")
)

// PatientNameLookup resolves patient identifiers to display names for
// receipts and reports. The identity service satisfies it.
type PatientNameLookup interface {
	PatientName(ctx context.Context, id string) (string, error)
}

type Service struct {
	bills BillRepository
	names PatientNameLookup
	ids   *sequence.Generator
	clk   clock.Clock
	fee   float64
}

func NewService(bills BillRepository, names PatientNameLookup, ids *sequence.Generator, clk clock.Clock) *Service {
	return &Service{bills: bills, names: names, ids: ids, clk: clk, fee: DefaultConsultationFee}
}

// SetConsultationFee overrides the fee charged on bills opened after the
// call.
func (s *Service) SetConsultationFee(fee float64) {
	s.fee = fee
}

// -- Bill --

// GenerateBill opens a bill for a patient carrying only the consultation
// fee. A nil billDate dates the bill now.
func (s *Service) GenerateBill(ctx context.Context, patientID string, billDate *time.Time) (*Bill, error) {
	if _, err := s.names.PatientName(ctx, patientID); err != nil {
		return nil, err
	}
	date := s.clk.Now()
	if billDate != nil {
		date = *billDate
	}
	b := NewBill(s.ids.Next(), patientID, s.fee, date)
	if err := s.bills.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) GetBill(ctx context.Context, id string) (*Bill, error) {
	return s.bills.GetByID(ctx, id)
}

// AddCharges appends a labeled charge to a bill. Costs pass through
// unvalidated, negative adjustments included.
func (s *Service) AddCharges(ctx context.Context, billID, service string, cost float64) (*Bill, error) {
	b, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	b.AddItem(service, cost)
	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// AddMedicineCost accumulates onto the bill's medicine charge bucket.
func (s *Service) AddMedicineCost(ctx context.Context, billID string, cost float64) (*Bill, error) {
	b, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	b.AddMedicineCost(cost)
	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// AddRoomCharges accumulates onto the bill's room charge bucket.
func (s *Service) AddRoomCharges(ctx context.Context, billID string, cost float64) (*Bill, error) {
	b, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	b.AddRoomCharges(cost)
	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ProcessPayment records an installment against a bill. The bill must
// exist and the amount must be strictly positive; a rejected amount
// leaves the bill untouched.
func (s *Service) ProcessPayment(ctx context.Context, billID string, amount float64) (*Bill, error) {
	b, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	p := Payment{ID: uuid.New(), Amount: amount, PaidAt: s.clk.Now()}
	if !b.Pay(p) {
		return nil, ErrInvalidPaymentAmount
	}
	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// BillReceipt renders the printable receipt for one bill.
func (s *Service) BillReceipt(ctx context.Context, billID string) (string, error) {
	b, err := s.bills.GetByID(ctx, billID)
	if err != nil {
		return "", err
	}
	name, err := s.names.PatientName(ctx, b.PatientID)
	if err != nil {
		return "", err
	}
	return b.Receipt(name), nil
}

// Report aggregates a patient's bills in the order they were opened.
func (s *Service) Report(ctx context.Context, patientID string) (*PatientReport, error) {
	name, err := s.names.PatientName(ctx, patientID)
	if err != nil {
		return nil, err
	}
	bills, err := s.bills.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	report := &PatientReport{
		PatientID:   patientID,
		PatientName: name,
		Bills:       make([]BillSummary, 0, len(bills)),
	}
	for _, b := range bills {
		report.TotalBills++
		report.TotalCharged += b.TotalAmount
		report.TotalPaid += b.AmountPaid
		report.TotalPending += b.PendingAmount
		report.Bills = append(report.Bills, BillSummary{
			BillID:  b.ID,
			Date:    b.BillDate.Format("2006-01-02"),
			Amount:  b.TotalAmount,
			Paid:    b.AmountPaid,
			Pending: b.PendingAmount,
			Status:  b.Status,
		})
	}
	return report, nil
}
