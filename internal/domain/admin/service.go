package admin

import (
	"context"
	"errors"
	"fmt"
)

// ErrDoctorNotAssigned is returned when an operation names a doctor that
// is not part of the department.
var ErrDoctorNotAssigned = errors.New("doctor is not assigned to this department")

type Service struct {
	hospitals   HospitalRepository
	departments DepartmentRepository
}

func NewService(hospitals HospitalRepository, departments DepartmentRepository) *Service {
	return &Service{hospitals: hospitals, departments: departments}
}

// -- Hospital --

func (s *Service) RegisterHospital(ctx context.Context, h *Hospital) error {
	if h.ID == "" {
		return fmt.Errorf("hospital id is required")
	}
	if h.Name == "" {
		return fmt.Errorf("hospital name is required")
	}
	if h.TotalBeds < 0 {
		return fmt.Errorf("total beds must not be negative, got %d", h.TotalBeds)
	}
	if h.TotalBeds == 0 {
		h.TotalBeds = DefaultBedCapacity
	}
	h.AvailableBeds = h.TotalBeds
	return s.hospitals.Create(ctx, h)
}

func (s *Service) GetHospital(ctx context.Context, id string) (*Hospital, error) {
	return s.hospitals.GetByID(ctx, id)
}

func (s *Service) ListHospitals(ctx context.Context) ([]*Hospital, error) {
	return s.hospitals.List(ctx)
}

// AdjustBeds moves the available bed count by delta, clamped to
// [0, TotalBeds]. Saturation is not an error; the caller gets the count
// that actually resulted.
func (s *Service) AdjustBeds(ctx context.Context, hospitalID string, delta int) (int, error) {
	h, err := s.hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		return 0, err
	}
	beds := h.AvailableBeds + delta
	if beds < 0 {
		beds = 0
	}
	if beds > h.TotalBeds {
		beds = h.TotalBeds
	}
	h.AvailableBeds = beds
	if err := s.hospitals.Update(ctx, h); err != nil {
		return 0, err
	}
	return beds, nil
}

// -- Department --

func (s *Service) AddDepartment(ctx context.Context, hospitalID string, d *Department) error {
	if d.ID == "" {
		return fmt.Errorf("department id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("department name is required")
	}
	h, err := s.hospitals.GetByID(ctx, hospitalID)
	if err != nil {
		return err
	}
	d.HospitalID = h.ID
	if err := s.departments.Create(ctx, d); err != nil {
		return err
	}
	h.DepartmentIDs = append(h.DepartmentIDs, d.ID)
	return s.hospitals.Update(ctx, h)
}

func (s *Service) GetDepartment(ctx context.Context, id string) (*Department, error) {
	return s.departments.GetByID(ctx, id)
}

func (s *Service) ListDepartments(ctx context.Context, hospitalID string) ([]*Department, error) {
	return s.departments.ListByHospital(ctx, hospitalID)
}

// AssignDoctor adds a doctor to the department roster. Assigning an
// already-present doctor is a no-op.
func (s *Service) AssignDoctor(ctx context.Context, departmentID, doctorID string) error {
	if doctorID == "" {
		return fmt.Errorf("doctor id is required")
	}
	d, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}
	for _, id := range d.DoctorIDs {
		if id == doctorID {
			return nil
		}
	}
	d.DoctorIDs = append(d.DoctorIDs, doctorID)
	return s.departments.Update(ctx, d)
}

// RemoveDoctor takes a doctor off the department roster. The head slot
// is cleared when the head leaves.
func (s *Service) RemoveDoctor(ctx context.Context, departmentID, doctorID string) error {
	d, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}
	idx := -1
	for i, id := range d.DoctorIDs {
		if id == doctorID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrDoctorNotAssigned
	}
	d.DoctorIDs = append(d.DoctorIDs[:idx], d.DoctorIDs[idx+1:]...)
	if d.HeadDoctorID == doctorID {
		d.HeadDoctorID = ""
	}
	return s.departments.Update(ctx, d)
}

// SetHeadDoctor promotes a roster member to department head.
func (s *Service) SetHeadDoctor(ctx context.Context, departmentID, doctorID string) error {
	d, err := s.departments.GetByID(ctx, departmentID)
	if err != nil {
		return err
	}
	for _, id := range d.DoctorIDs {
		if id == doctorID {
			d.HeadDoctorID = doctorID
			return s.departments.Update(ctx, d)
		}
	}
	return ErrDoctorNotAssigned
}
