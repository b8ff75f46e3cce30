package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultConsultationFee is charged on every bill unless the service is
// configured otherwise.
const DefaultConsultationFee = 500.0

// PaymentStatus tracks how much of a bill has been settled.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentComplete PaymentStatus = "complete"
)

// LineItem is a single labeled charge on a bill.
type LineItem struct {
	Service string  `json:"service"`
	Cost    float64 `json:"cost"`
}

// Payment is one settled installment against a bill.
type Payment struct {
	ID     uuid.UUID `json:"id"`
	Amount float64   `json:"amount"`
	PaidAt time.Time `json:"paid_at"`
}

// Bill is a patient's accumulating billing record. Totals, pending
// amount and payment status are derived, recomputed from scratch after
// every mutation.
type Bill struct {
	ID              string        `json:"id"`
	PatientID       string        `json:"patient_id"`
	BillDate        time.Time     `json:"bill_date"`
	ConsultationFee float64       `json:"consultation_fee"`
	Items           []LineItem    `json:"items"`
	MedicineCost    float64       `json:"medicine_cost"`
	RoomCharges     float64       `json:"room_charges"`
	Payments        []Payment     `json:"payments"`
	TotalAmount     float64       `json:"total_amount"`
	AmountPaid      float64       `json:"amount_paid"`
	PendingAmount   float64       `json:"pending_amount"`
	Status          PaymentStatus `json:"status"`
}

// NewBill opens a bill carrying only the consultation fee.
func NewBill(id, patientID string, consultationFee float64, date time.Time) *Bill {
	b := &Bill{
		ID:              id,
		PatientID:       patientID,
		BillDate:        date,
		ConsultationFee: consultationFee,
		Items:           []LineItem{},
		Payments:        []Payment{},
	}
	b.recompute()
	return b
}

// AddItem appends a labeled charge and refreshes the derived totals.
// Costs are not range-checked, so negative adjustments pass through.
func (b *Bill) AddItem(service string, cost float64) {
	b.Items = append(b.Items, LineItem{Service: service, Cost: cost})
	b.recompute()
}

// AddMedicineCost accumulates onto the medicine charge bucket.
func (b *Bill) AddMedicineCost(cost float64) {
	b.MedicineCost += cost
	b.recompute()
}

// AddRoomCharges accumulates onto the room charge bucket.
func (b *Bill) AddRoomCharges(cost float64) {
	b.RoomCharges += cost
	b.recompute()
}

// Pay records a payment installment. Amounts that are not strictly
// positive are rejected without touching the bill.
func (b *Bill) Pay(p Payment) bool {
	if p.Amount <= 0 {
		return false
	}
	b.Payments = append(b.Payments, p)
	b.recompute()
	return true
}

// recompute derives total, paid, pending and status fresh. Status is
// never transitioned incrementally, so a charge added after full
// settlement reopens the bill.
func (b *Bill) recompute() {
	total := b.ConsultationFee + b.MedicineCost + b.RoomCharges
	for _, it := range b.Items {
		total += it.Cost
	}
	paid := 0.0
	for _, p := range b.Payments {
		paid += p.Amount
	}
	b.TotalAmount = total
	b.AmountPaid = paid
	b.PendingAmount = total - paid

	switch {
	case b.PendingAmount == 0:
		b.Status = PaymentComplete
	case paid > 0:
		b.Status = PaymentPartial
	default:
		b.Status = PaymentPending
	}
}

// Receipt renders the bill as a printable text block. The patient name
// is passed in because bills carry only the patient identifier.
func (b *Bill) Receipt(patientName string) string {
	var sb strings.Builder
	sb.WriteString("========== HOSPITAL BILL RECEIPT ==========\n")
	fmt.Fprintf(&sb, "Bill ID: %s\n", b.ID)
	fmt.Fprintf(&sb, "Patient: %s\n", patientName)
	fmt.Fprintf(&sb, "Bill Date: %s\n", b.BillDate.Format("2006-01-02 15:04:05"))
	sb.WriteString("\n---- CHARGES BREAKDOWN ----\n")
	fmt.Fprintf(&sb, "Consultation Fee: Rs. %.2f\n", b.ConsultationFee)
	fmt.Fprintf(&sb, "Medicines Cost: Rs. %.2f\n", b.MedicineCost)
	fmt.Fprintf(&sb, "Room Charges: Rs. %.2f\n", b.RoomCharges)
	if len(b.Items) > 0 {
		sb.WriteString("\nServices:\n")
		for _, it := range b.Items {
			fmt.Fprintf(&sb, "  - %s: Rs. %.2f\n", it.Service, it.Cost)
		}
	}
	sb.WriteString("\n---- PAYMENT SUMMARY ----\n")
	fmt.Fprintf(&sb, "Total Amount: Rs. %.2f\n", b.TotalAmount)
	fmt.Fprintf(&sb, "Paid Amount: Rs. %.2f\n", b.AmountPaid)
	fmt.Fprintf(&sb, "Pending Amount: Rs. %.2f\n", b.PendingAmount)
	fmt.Fprintf(&sb, "Payment Status: %s\n", strings.ToUpper(string(b.Status)))
	sb.WriteString("==========================================\n")
	return sb.String()
}

// PatientReport aggregates every bill belonging to one patient.
type PatientReport struct {
	PatientID    string        `json:"patient_id"`
	PatientName  string        `json:"patient_name"`
	TotalBills   int           `json:"total_bills"`
	TotalCharged float64       `json:"total_charged"`
	TotalPaid    float64       `json:"total_paid"`
	TotalPending float64       `json:"total_pending"`
	Bills        []BillSummary `json:"bills"`
}

// BillSummary is one bill's row in a patient report.
type BillSummary struct {
	BillID  string        `json:"bill_id"`
	Date    string        `json:"date"`
	Amount  float64       `json:"amount"`
	Paid    float64       `json:"paid"`
	Pending float64       `json:"pending"`
	Status  PaymentStatus `json:"status"`
}
