package integration

import (
	"context"
	"testing"
	"time"

	"github.com/hms/hms/internal/domain/admin"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/clinical"
	"github.com/hms/hms/internal/domain/discharge"
	"github.com/hms/hms/internal/domain/identity"
	"github.com/hms/hms/internal/domain/medication"
	"github.com/hms/hms/internal/domain/scheduling"
	"github.com/hms/hms/internal/platform/clock"
	"github.com/hms/hms/internal/platform/sequence"
)

// demoStart pins every run to the same instant so timestamps embedded in
// history entries, receipts and summaries are reproducible.
var demoStart = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

// system wires every service against in-memory repositories, the way the
// CLI wires them, with a fake clock in place of the system clock.
type system struct {
	hospitals     *admin.Service
	people        *identity.Service
	appointments  *scheduling.Service
	diagnoses     *clinical.Service
	prescriptions *medication.Service
	bills         *billing.Service
	discharges    *discharge.Service
	clk           *clock.Fake
}

func newSystem(t *testing.T) *system {
	t.Helper()
	clk := clock.NewFake(demoStart)

	hospitals := admin.NewService(admin.NewHospitalRepo(), admin.NewDepartmentRepo())
	people := identity.NewService(identity.NewPatientRepo(), identity.NewDoctorRepo(), hospitals, clk)
	appointments := scheduling.NewService(scheduling.NewAppointmentRepo(), people, sequence.NewGenerator("APT", 1000))
	diagnoses := clinical.NewService(clinical.NewDiagnosisRepo(), people, sequence.NewGenerator("DIG", 5000), clk)
	prescriptions := medication.NewService(medication.NewPrescriptionRepo(), people, sequence.NewGenerator("PRE", 8000), clk)
	bills := billing.NewService(billing.NewBillRepo(), people, sequence.NewGenerator("BIL", 9000), clk)
	discharges := discharge.NewService(people, diagnoses, prescriptions, appointments)

	sys := &system{
		hospitals:     hospitals,
		people:        people,
		appointments:  appointments,
		diagnoses:     diagnoses,
		prescriptions: prescriptions,
		bills:         bills,
		discharges:    discharges,
		clk:           clk,
	}
	sys.seed(t)
	return sys
}

// seed loads the demo hospital: one facility, three departments, three
// doctors and three registered patients, nobody admitted yet.
func (s *system) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	hospital := &admin.Hospital{
		ID:        "H001",
		Name:      "City Medical Center",
		Address:   "123 Main St, City",
		Phone:     "555-1000",
		Email:     "info@citymedical.com",
		TotalBeds: 100,
	}
	if err := s.hospitals.RegisterHospital(ctx, hospital); err != nil {
		t.Fatalf("seed hospital: %v", err)
	}

	departments := []*admin.Department{
		{ID: "D001", Name: "Cardiology", Description: "Heart and cardiovascular diseases"},
		{ID: "D002", Name: "Orthopedics", Description: "Bones and joint treatment"},
		{ID: "D003", Name: "General Medicine", Description: "General medical treatments"},
	}
	for _, d := range departments {
		if err := s.hospitals.AddDepartment(ctx, hospital.ID, d); err != nil {
			t.Fatalf("seed department %s: %v", d.ID, err)
		}
	}

	doctors := []*identity.Doctor{
		{ID: "DR001", Name: "Rajesh Kumar", Specialization: "Cardiologist", DepartmentID: "D001"},
		{ID: "DR002", Name: "Priya Singh", Specialization: "Orthopedic Surgeon", DepartmentID: "D002"},
		{ID: "DR003", Name: "Amit Patel", Specialization: "General Physician", DepartmentID: "D003"},
	}
	for _, d := range doctors {
		if err := s.people.RegisterDoctor(ctx, d); err != nil {
			t.Fatalf("seed doctor %s: %v", d.ID, err)
		}
		if err := s.hospitals.AssignDoctor(ctx, d.DepartmentID, d.ID); err != nil {
			t.Fatalf("seed doctor %s: %v", d.ID, err)
		}
		if err := s.hospitals.SetHeadDoctor(ctx, d.DepartmentID, d.ID); err != nil {
			t.Fatalf("seed doctor %s: %v", d.ID, err)
		}
	}

	patients := []*identity.Patient{
		{ID: "P001", Name: "Rajesh Kumar", Age: 45, Gender: "Male", Phone: "555-3001", Address: "456 Oak Ave"},
		{ID: "P002", Name: "Priya Desai", Age: 32, Gender: "Female", Phone: "555-3002", Address: "789 Pine Rd"},
		{ID: "P003", Name: "Arjun Singh", Age: 28, Gender: "Male", Phone: "555-3003", Address: "321 Elm St"},
	}
	for _, p := range patients {
		if err := s.people.RegisterPatient(ctx, p); err != nil {
			t.Fatalf("seed patient %s: %v", p.ID, err)
		}
	}
}

func (s *system) availableBeds(t *testing.T) int {
	t.Helper()
	h, err := s.hospitals.GetHospital(context.Background(), "H001")
	if err != nil {
		t.Fatalf("get hospital: %v", err)
	}
	return h.AvailableBeds
}
