package billing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hms/hms/internal/platform/clock"
	"github.com/hms/hms/internal/platform/sequence"
)

// -- Mock name lookup --

var errUnknownPatient = errors.New("unknown patient")

type mockNames struct {
	names map[string]string
}

func (m *mockNames) PatientName(_ context.Context, id string) (string, error) {
	name, ok := m.names[id]
	if !ok {
		return "", errUnknownPatient
	}
	return name, nil
}

func newTestService() (*Service, *clock.Fake) {
	names := &mockNames{names: map[string]string{
		"P001": "Rajesh Kumar",
		"P002": "Priya Desai",
	}}
	clk := clock.NewFake(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC))
	svc := NewService(NewBillRepo(), names, sequence.NewGenerator("BIL", 9000), clk)
	return svc, clk
}

// -- Tests --

func TestGenerateBill(t *testing.T) {
	svc, clk := newTestService()
	ctx := context.Background()

	b, err := svc.GenerateBill(ctx, "P001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != "BIL9000" {
		t.Errorf("expected id BIL9000, got %s", b.ID)
	}
	if !b.BillDate.Equal(clk.Now()) {
		t.Errorf("expected bill date %v, got %v", clk.Now(), b.BillDate)
	}
	if b.ConsultationFee != DefaultConsultationFee {
		t.Errorf("expected consultation fee %.2f, got %.2f", DefaultConsultationFee, b.ConsultationFee)
	}
	if b.TotalAmount != 500.0 || b.PendingAmount != 500.0 || b.AmountPaid != 0 {
		t.Errorf("expected fresh bill totals 500/0/500, got %.2f/%.2f/%.2f", b.TotalAmount, b.AmountPaid, b.PendingAmount)
	}
	if b.Status != PaymentPending {
		t.Errorf("expected status pending, got %s", b.Status)
	}

	second, err := svc.GenerateBill(ctx, "P001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != "BIL9001" {
		t.Errorf("expected id BIL9001, got %s", second.ID)
	}
}

func TestGenerateBill_UnknownPatient(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.GenerateBill(context.Background(), "P999", nil); err != errUnknownPatient {
		t.Errorf("expected errUnknownPatient, got %v", err)
	}
}

func TestGenerateBill_ExplicitDate(t *testing.T) {
	svc, _ := newTestService()

	date := time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC)
	b, err := svc.GenerateBill(context.Background(), "P001", &date)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.BillDate.Equal(date) {
		t.Errorf("expected bill date %v, got %v", date, b.BillDate)
	}
}

func TestSetConsultationFee(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	before, _ := svc.GenerateBill(ctx, "P001", nil)
	svc.SetConsultationFee(750.0)
	after, _ := svc.GenerateBill(ctx, "P001", nil)

	if before.ConsultationFee != 500.0 {
		t.Errorf("expected earlier bill to keep fee 500, got %.2f", before.ConsultationFee)
	}
	if after.ConsultationFee != 750.0 || after.TotalAmount != 750.0 {
		t.Errorf("expected new bill fee 750, got %.2f total %.2f", after.ConsultationFee, after.TotalAmount)
	}
}

func TestPaymentLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b, err := svc.GenerateBill(ctx, "P001", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AddCharges(ctx, b.ID, "Room Charges (3 days)", 3000.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.AddCharges(ctx, b.ID, "Lab Tests", 1500.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err = svc.AddMedicineCost(ctx, b.ID, 2500.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.TotalAmount != 7500.0 || b.PendingAmount != 7500.0 {
		t.Errorf("expected total 7500 pending 7500, got %.2f pending %.2f", b.TotalAmount, b.PendingAmount)
	}
	if b.Status != PaymentPending {
		t.Errorf("expected status pending, got %s", b.Status)
	}

	b, err = svc.ProcessPayment(ctx, b.ID, 5000.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.AmountPaid != 5000.0 || b.PendingAmount != 2500.0 {
		t.Errorf("expected paid 5000 pending 2500, got %.2f pending %.2f", b.AmountPaid, b.PendingAmount)
	}
	if b.Status != PaymentPartial {
		t.Errorf("expected status partial, got %s", b.Status)
	}

	b, err = svc.ProcessPayment(ctx, b.ID, 2500.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.PendingAmount != 0 {
		t.Errorf("expected pending 0, got %.2f", b.PendingAmount)
	}
	if b.Status != PaymentComplete {
		t.Errorf("expected status complete, got %s", b.Status)
	}
	if len(b.Payments) != 2 {
		t.Errorf("expected 2 payment records, got %d", len(b.Payments))
	}
}

func TestProcessPayment_RejectsNonPositive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b, _ := svc.GenerateBill(ctx, "P001", nil)
	if _, err := svc.ProcessPayment(ctx, b.ID, -10.0); err != ErrInvalidPaymentAmount {
		t.Errorf("expected ErrInvalidPaymentAmount, got %v", err)
	}
	if _, err := svc.ProcessPayment(ctx, b.ID, 0); err != ErrInvalidPaymentAmount {
		t.Errorf("expected ErrInvalidPaymentAmount, got %v", err)
	}

	got, _ := svc.GetBill(ctx, b.ID)
	if got.AmountPaid != 0 || len(got.Payments) != 0 {
		t.Errorf("expected bill untouched by rejected payments, got paid %.2f with %d payments", got.AmountPaid, len(got.Payments))
	}
	if got.Status != PaymentPending {
		t.Errorf("expected status pending, got %s", got.Status)
	}
}

func TestProcessPayment_UnknownBill(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.ProcessPayment(context.Background(), "BIL9999", 100.0); err != ErrBillNotFound {
		t.Errorf("expected ErrBillNotFound, got %v", err)
	}
}

func TestAddCharges_UnknownBill(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.AddCharges(context.Background(), "BIL9999", "Lab Tests", 100.0); err != ErrBillNotFound {
		t.Errorf("expected ErrBillNotFound, got %v", err)
	}
}

func TestOverpayment(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b, _ := svc.GenerateBill(ctx, "P001", nil)
	b, err := svc.ProcessPayment(ctx, b.ID, 600.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.PendingAmount != -100.0 {
		t.Errorf("expected pending -100, got %.2f", b.PendingAmount)
	}
	if b.Status != PaymentPartial {
		t.Errorf("expected status partial, got %s", b.Status)
	}
}

func TestNegativeLineItem(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b, _ := svc.GenerateBill(ctx, "P001", nil)
	b, err := svc.AddCharges(ctx, b.ID, "Billing correction", -200.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.TotalAmount != 300.0 || b.PendingAmount != 300.0 {
		t.Errorf("expected total 300 pending 300, got %.2f pending %.2f", b.TotalAmount, b.PendingAmount)
	}
}

func TestChargeAfterSettlementReopensBill(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b, _ := svc.GenerateBill(ctx, "P001", nil)
	b, err := svc.ProcessPayment(ctx, b.ID, 500.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != PaymentComplete {
		t.Fatalf("expected status complete, got %s", b.Status)
	}

	b, err = svc.AddRoomCharges(ctx, b.ID, 300.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.PendingAmount != 300.0 {
		t.Errorf("expected pending 300, got %.2f", b.PendingAmount)
	}
	if b.Status != PaymentPartial {
		t.Errorf("expected status partial after reopening, got %s", b.Status)
	}
}

func TestBillReceipt(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b, _ := svc.GenerateBill(ctx, "P001", nil)
	_, _ = svc.AddCharges(ctx, b.ID, "Room Charges (3 days)", 3000.0)
	_, _ = svc.AddCharges(ctx, b.ID, "Lab Tests", 1500.0)
	_, _ = svc.AddCharges(ctx, b.ID, "X-Ray", 800.0)
	_, _ = svc.AddMedicineCost(ctx, b.ID, 2500.0)
	_, _ = svc.ProcessPayment(ctx, b.ID, 5000.0)

	got, err := svc.BillReceipt(ctx, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `========== HOSPITAL BILL RECEIPT ==========
Bill ID: BIL9000
Patient: Rajesh Kumar
Bill Date: 2025-03-10 09:30:00

---- CHARGES BREAKDOWN ----
Consultation Fee: Rs. 500.00
Medicines Cost: Rs. 2500.00
Room Charges: Rs. 0.00

Services:
  - Room Charges (3 days): Rs. 3000.00
  - Lab Tests: Rs. 1500.00
  - X-Ray: Rs. 800.00

---- PAYMENT SUMMARY ----
Total Amount: Rs. 8300.00
Paid Amount: Rs. 5000.00
Pending Amount: Rs. 3300.00
Payment Status: PARTIAL
==========================================
`
	if got != want {
		t.Errorf("receipt mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	again, err := svc.BillReceipt(ctx, b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != got {
		t.Error("expected receipt rendering to be deterministic")
	}
}

func TestReport(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, _ := svc.GenerateBill(ctx, "P001", nil)
	_, _ = svc.AddCharges(ctx, first.ID, "Lab Tests", 1500.0)
	_, _ = svc.ProcessPayment(ctx, first.ID, 2000.0)

	second, _ := svc.GenerateBill(ctx, "P001", nil)
	_, _ = svc.AddRoomCharges(ctx, second.ID, 1000.0)

	other, _ := svc.GenerateBill(ctx, "P002", nil)
	_, _ = svc.ProcessPayment(ctx, other.ID, 500.0)

	report, err := svc.Report(ctx, "P001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.PatientName != "Rajesh Kumar" {
		t.Errorf("expected patient name Rajesh Kumar, got %s", report.PatientName)
	}
	if report.TotalBills != 2 {
		t.Fatalf("expected 2 bills, got %d", report.TotalBills)
	}
	if report.TotalCharged != 3500.0 {
		t.Errorf("expected total charged 3500, got %.2f", report.TotalCharged)
	}
	if report.TotalPaid != 2000.0 {
		t.Errorf("expected total paid 2000, got %.2f", report.TotalPaid)
	}
	if report.TotalPending != 1500.0 {
		t.Errorf("expected total pending 1500, got %.2f", report.TotalPending)
	}
	if report.Bills[0].BillID != first.ID || report.Bills[1].BillID != second.ID {
		t.Errorf("expected bills in creation order, got %s then %s", report.Bills[0].BillID, report.Bills[1].BillID)
	}
	if report.Bills[0].Date != "2025-03-10" {
		t.Errorf("expected date 2025-03-10, got %s", report.Bills[0].Date)
	}
	if report.Bills[0].Status != PaymentComplete {
		t.Errorf("expected first bill complete, got %s", report.Bills[0].Status)
	}
	if report.Bills[1].Status != PaymentPending {
		t.Errorf("expected second bill pending, got %s", report.Bills[1].Status)
	}
}

func TestReport_UnknownPatient(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Report(context.Background(), "P999"); err != errUnknownPatient {
		t.Errorf("expected errUnknownPatient, got %v", err)
	}
}
