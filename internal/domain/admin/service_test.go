package admin

import (
	"context"
	"testing"
)

// -- Helpers --

func newTestService() *Service {
	return NewService(NewHospitalRepo(), NewDepartmentRepo())
}

func seedHospital(t *testing.T, svc *Service) *Hospital {
	t.Helper()
	h := &Hospital{ID: "H001", Name: "City Medical Center", Address: "123 Main St", Phone: "555-1000"}
	if err := svc.RegisterHospital(context.Background(), h); err != nil {
		t.Fatalf("seedHospital: %v", err)
	}
	return h
}

func seedDepartment(t *testing.T, svc *Service, hospitalID, id, name string) *Department {
	t.Helper()
	d := &Department{ID: id, Name: name}
	if err := svc.AddDepartment(context.Background(), hospitalID, d); err != nil {
		t.Fatalf("seedDepartment: %v", err)
	}
	return d
}

// -- Hospital Tests --

func TestRegisterHospital(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	h := &Hospital{ID: "H001", Name: "City Medical Center"}
	if err := svc.RegisterHospital(ctx, h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetHospital(ctx, "H001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalBeds != DefaultBedCapacity {
		t.Errorf("expected default capacity %d, got %d", DefaultBedCapacity, got.TotalBeds)
	}
	if got.AvailableBeds != got.TotalBeds {
		t.Errorf("expected all beds available, got %d/%d", got.AvailableBeds, got.TotalBeds)
	}
}

func TestRegisterHospital_Validation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if err := svc.RegisterHospital(ctx, &Hospital{Name: "No ID"}); err == nil {
		t.Error("expected error for missing id")
	}
	if err := svc.RegisterHospital(ctx, &Hospital{ID: "H002"}); err == nil {
		t.Error("expected error for missing name")
	}
	if err := svc.RegisterHospital(ctx, &Hospital{ID: "H003", Name: "Negative", TotalBeds: -5}); err == nil {
		t.Error("expected error for negative bed count")
	}
}

func TestRegisterHospital_Duplicate(t *testing.T) {
	svc := newTestService()
	seedHospital(t, svc)

	err := svc.RegisterHospital(context.Background(), &Hospital{ID: "H001", Name: "Other"})
	if err != ErrHospitalExists {
		t.Errorf("expected ErrHospitalExists, got %v", err)
	}
}

func TestAdjustBeds(t *testing.T) {
	svc := newTestService()
	seedHospital(t, svc)
	ctx := context.Background()

	beds, err := svc.AdjustBeds(ctx, "H001", -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if beds != 99 {
		t.Errorf("expected 99 beds after admission, got %d", beds)
	}

	beds, err = svc.AdjustBeds(ctx, "H001", +1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if beds != 100 {
		t.Errorf("expected 100 beds after discharge, got %d", beds)
	}
}

func TestAdjustBeds_Clamped(t *testing.T) {
	svc := newTestService()
	seedHospital(t, svc)
	ctx := context.Background()

	beds, err := svc.AdjustBeds(ctx, "H001", -500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if beds != 0 {
		t.Errorf("expected floor of 0 beds, got %d", beds)
	}

	beds, err = svc.AdjustBeds(ctx, "H001", +500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if beds != 100 {
		t.Errorf("expected ceiling of capacity, got %d", beds)
	}
}

func TestAdjustBeds_UnknownHospital(t *testing.T) {
	svc := newTestService()

	if _, err := svc.AdjustBeds(context.Background(), "H999", -1); err != ErrHospitalNotFound {
		t.Errorf("expected ErrHospitalNotFound, got %v", err)
	}
}

// -- Department Tests --

func TestAddDepartment(t *testing.T) {
	svc := newTestService()
	seedHospital(t, svc)
	ctx := context.Background()

	d := &Department{ID: "D001", Name: "Cardiology", Description: "Heart and cardiovascular diseases"}
	if err := svc.AddDepartment(ctx, "H001", d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := svc.GetDepartment(ctx, "D001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.HospitalID != "H001" {
		t.Errorf("expected department linked to H001, got %s", got.HospitalID)
	}

	h, err := svc.GetHospital(ctx, "H001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.DepartmentIDs) != 1 || h.DepartmentIDs[0] != "D001" {
		t.Errorf("expected hospital to list D001, got %v", h.DepartmentIDs)
	}
}

func TestAddDepartment_UnknownHospital(t *testing.T) {
	svc := newTestService()

	err := svc.AddDepartment(context.Background(), "H999", &Department{ID: "D001", Name: "Cardiology"})
	if err != ErrHospitalNotFound {
		t.Errorf("expected ErrHospitalNotFound, got %v", err)
	}
}

func TestListDepartments(t *testing.T) {
	svc := newTestService()
	seedHospital(t, svc)
	seedDepartment(t, svc, "H001", "D001", "Cardiology")
	seedDepartment(t, svc, "H001", "D002", "Orthopedics")
	seedDepartment(t, svc, "H001", "D003", "General Medicine")

	depts, err := svc.ListDepartments(context.Background(), "H001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(depts) != 3 {
		t.Fatalf("expected 3 departments, got %d", len(depts))
	}
	if depts[0].ID != "D001" || depts[2].ID != "D003" {
		t.Errorf("expected creation order D001..D003, got %s..%s", depts[0].ID, depts[2].ID)
	}
}

func TestAssignDoctor(t *testing.T) {
	svc := newTestService()
	seedHospital(t, svc)
	seedDepartment(t, svc, "H001", "D001", "Cardiology")
	ctx := context.Background()

	if err := svc.AssignDoctor(ctx, "D001", "DR001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Assigning twice must not duplicate the roster entry.
	if err := svc.AssignDoctor(ctx, "D001", "DR001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := svc.GetDepartment(ctx, "D001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.DoctorIDs) != 1 {
		t.Errorf("expected 1 roster entry, got %d", len(d.DoctorIDs))
	}
}

func TestRemoveDoctor(t *testing.T) {
	svc := newTestService()
	seedHospital(t, svc)
	seedDepartment(t, svc, "H001", "D001", "Cardiology")
	ctx := context.Background()

	if err := svc.AssignDoctor(ctx, "D001", "DR001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.SetHeadDoctor(ctx, "D001", "DR001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.RemoveDoctor(ctx, "D001", "DR001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d, err := svc.GetDepartment(ctx, "D001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.DoctorIDs) != 0 {
		t.Errorf("expected empty roster, got %v", d.DoctorIDs)
	}
	if d.HeadDoctorID != "" {
		t.Errorf("expected head slot cleared, got %s", d.HeadDoctorID)
	}

	if err := svc.RemoveDoctor(ctx, "D001", "DR001"); err != ErrDoctorNotAssigned {
		t.Errorf("expected ErrDoctorNotAssigned, got %v", err)
	}
}

func TestSetHeadDoctor_NotAMember(t *testing.T) {
	svc := newTestService()
	seedHospital(t, svc)
	seedDepartment(t, svc, "H001", "D001", "Cardiology")

	if err := svc.SetHeadDoctor(context.Background(), "D001", "DR999"); err != ErrDoctorNotAssigned {
		t.Errorf("expected ErrDoctorNotAssigned, got %v", err)
	}
}
