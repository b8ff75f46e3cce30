package admin

// DefaultBedCapacity is the bed count assigned to hospitals registered
// without an explicit capacity.
const DefaultBedCapacity = 100

// Hospital is the top-level facility record. Bed bookkeeping lives
// here: admissions take a bed, discharges return it.
type Hospital struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Email         string   `json:"email,omitempty"`
	TotalBeds     int      `json:"total_beds"`
	AvailableBeds int      `json:"available_beds"`
	DepartmentIDs []string `json:"department_ids,omitempty"`
}

// Department groups the doctors of one specialty within a hospital.
type Department struct {
	ID           string   `json:"id"`
	HospitalID   string   `json:"hospital_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	DoctorIDs    []string `json:"doctor_ids,omitempty"`
	HeadDoctorID string   `json:"head_doctor_id,omitempty"`
}
