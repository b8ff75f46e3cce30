package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
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

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms",
		Short: "Hospital Management System CLI",
	}

	rootCmd.AddCommand(demoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the end-to-end hospital workflow demonstration",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonReport, _ := cmd.Flags().GetBool("json")
			return runDemo(jsonReport)
		},
	}
	cmd.Flags().Bool("json", false, "print the final billing report as JSON")
	return cmd
}

// services bundles the wired domain services for a demo run.
type services struct {
	hospitals     *admin.Service
	people        *identity.Service
	appointments  *scheduling.Service
	diagnoses     *clinical.Service
	prescriptions *medication.Service
	bills         *billing.Service
	discharges    *discharge.Service
}

func buildServices(cfg *config.Config) *services {
	clk := clock.System{}

	hospitals := admin.NewService(admin.NewHospitalRepo(), admin.NewDepartmentRepo())
	people := identity.NewService(identity.NewPatientRepo(), identity.NewDoctorRepo(), hospitals, clk)
	appointments := scheduling.NewService(scheduling.NewAppointmentRepo(), people, sequence.NewGenerator("APT", 1000))
	diagnoses := clinical.NewService(clinical.NewDiagnosisRepo(), people, sequence.NewGenerator("DIG", 5000), clk)
	prescriptions := medication.NewService(medication.NewPrescriptionRepo(), people, sequence.NewGenerator("PRE", 8000), clk)
	bills := billing.NewService(billing.NewBillRepo(), people, sequence.NewGenerator("BIL", 9000), clk)
	bills.SetConsultationFee(cfg.ConsultationFee)
	discharges := discharge.NewService(people, diagnoses, prescriptions, appointments)

	return &services{
		hospitals:     hospitals,
		people:        people,
		appointments:  appointments,
		diagnoses:     diagnoses,
		prescriptions: prescriptions,
		bills:         bills,
		discharges:    discharges,
	}
}

func runDemo(jsonReport bool) error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	svcs := buildServices(cfg)
	ctx := context.Background()

	printSeparator("STEP 1: HOSPITAL & DEPARTMENT SETUP")
	if err := setupHospital(ctx, svcs, cfg.HospitalBeds); err != nil {
		return err
	}

	printSeparator("STEP 2: PATIENT ADMISSION & MANAGEMENT")
	if err := admitPatients(ctx, svcs); err != nil {
		return err
	}

	printSeparator("STEP 3: APPOINTMENT SCHEDULING")
	if err := bookAppointments(ctx, svcs); err != nil {
		return err
	}

	printSeparator("STEP 4: DIAGNOSIS RECORDING")
	diagnosis, err := recordDiagnosis(ctx, svcs)
	if err != nil {
		return err
	}

	printSeparator("STEP 5: PRESCRIPTION MANAGEMENT")
	if err := issuePrescription(ctx, svcs, diagnosis.ID); err != nil {
		return err
	}

	printSeparator("STEP 6: BILLING & PAYMENT")
	if err := billAndPay(ctx, svcs); err != nil {
		return err
	}

	printSeparator("STEP 7: DISCHARGE & FOLLOW-UP")
	if err := dischargeAndFollowUp(ctx, svcs); err != nil {
		return err
	}

	printSeparator("STEP 8: MEDICAL HISTORY")
	if err := printMedicalHistory(ctx, svcs); err != nil {
		return err
	}

	printSeparator("STEP 9: BILLING REPORT")
	if err := printBillingReport(ctx, svcs, jsonReport); err != nil {
		return err
	}

	printSeparator("DEMONSTRATION COMPLETE")
	if err := printFinalStatus(ctx, svcs); err != nil {
		return err
	}

	logger.Info().Msg("demo finished")
	return nil
}

func printSeparator(title string) {
	rule := strings.Repeat("=", 60)
	fmt.Printf("\n%s\n  %s\n%s\n\n", rule, title, rule)
}

func setupHospital(ctx context.Context, svcs *services, beds int) error {
	h := &admin.Hospital{
		ID:        "H001",
		Name:      "City Medical Center",
		Address:   "123 Main St, City",
		Phone:     "555-1000",
		Email:     "info@citymedical.com",
		TotalBeds: beds,
	}
	if err := svcs.hospitals.RegisterHospital(ctx, h); err != nil {
		return err
	}
	fmt.Printf("Hospital Created: %s (%d beds)\n", h.Name, h.TotalBeds)

	departments := []*admin.Department{
		{ID: "D001", Name: "Cardiology", Description: "Heart and cardiovascular diseases"},
		{ID: "D002", Name: "Orthopedics", Description: "Bones and joint treatment"},
		{ID: "D003", Name: "General Medicine", Description: "General medical treatments"},
	}
	for _, d := range departments {
		if err := svcs.hospitals.AddDepartment(ctx, h.ID, d); err != nil {
			return err
		}
	}
	fmt.Printf("Departments Created: %d departments added\n", len(departments))

	doctors := []*identity.Doctor{
		{ID: "DR001", Name: "Rajesh Kumar", Specialization: "Cardiologist", Phone: "555-2001", Email: "rajesh@citymedical.com", DepartmentID: "D001"},
		{ID: "DR002", Name: "Priya Singh", Specialization: "Orthopedic Surgeon", Phone: "555-2002", Email: "priya@citymedical.com", DepartmentID: "D002"},
		{ID: "DR003", Name: "Amit Patel", Specialization: "General Physician", Phone: "555-2003", Email: "amit@citymedical.com", DepartmentID: "D003"},
	}
	fmt.Println("Doctors Created and Assigned to Departments:")
	for _, d := range doctors {
		if err := svcs.people.RegisterDoctor(ctx, d); err != nil {
			return err
		}
		if err := svcs.hospitals.AssignDoctor(ctx, d.DepartmentID, d.ID); err != nil {
			return err
		}
		if err := svcs.hospitals.SetHeadDoctor(ctx, d.DepartmentID, d.ID); err != nil {
			return err
		}
		dept, err := svcs.hospitals.GetDepartment(ctx, d.DepartmentID)
		if err != nil {
			return err
		}
		fmt.Printf("  - %s head: Dr. %s (%s)\n", dept.Name, d.Name, d.Specialization)
	}
	return nil
}

func admitPatients(ctx context.Context, svcs *services) error {
	patients := []*identity.Patient{
		{ID: "P001", Name: "Rajesh Kumar", Age: 45, Gender: "Male", Phone: "555-3001", Email: "rajesh.k@email.com", Address: "456 Oak Ave"},
		{ID: "P002", Name: "Priya Desai", Age: 32, Gender: "Female", Phone: "555-3002", Email: "priya.d@email.com", Address: "789 Pine Rd"},
		{ID: "P003", Name: "Arjun Singh", Age: 28, Gender: "Male", Phone: "555-3003", Email: "arjun.s@email.com", Address: "321 Elm St"},
	}
	for _, p := range patients {
		if err := svcs.people.RegisterPatient(ctx, p); err != nil {
			return err
		}
	}

	fmt.Println("Admitting Patients...")
	admissions := map[string]string{"P001": "DR001", "P002": "DR002", "P003": "DR003"}
	for _, p := range patients {
		if err := svcs.people.AdmitPatient(ctx, "H001", p.ID, admissions[p.ID]); err != nil {
			return err
		}
		fmt.Printf("  - %s (%s) admitted\n", p.Name, p.ID)
	}

	h, err := svcs.hospitals.GetHospital(ctx, "H001")
	if err != nil {
		return err
	}
	fmt.Printf("\n  Hospital Available Beds: %d/%d\n", h.AvailableBeds, h.TotalBeds)
	return nil
}

// onDayAt pins a date some days out to a fixed wall-clock time, the way
// appointment desks hand out slots.
func onDayAt(daysAhead, hour, min int) time.Time {
	d := time.Now().AddDate(0, 0, daysAhead)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, d.Location())
}

func bookAppointments(ctx context.Context, svcs *services) error {
	apt1, err := svcs.appointments.Schedule(ctx, "P001", "DR001", onDayAt(2, 10, 0), "Follow-up for cardiac checkup")
	if err != nil {
		return err
	}
	apt2, err := svcs.appointments.Schedule(ctx, "P002", "DR001", onDayAt(3, 14, 30), "Initial consultation")
	if err != nil {
		return err
	}
	fmt.Println("Appointments Scheduled Successfully:")
	for _, a := range []*scheduling.Appointment{apt1, apt2} {
		fmt.Printf("  - %s: %s with %s on %s (%s)\n", a.ID, a.PatientID, a.DoctorID, a.Time.Format("2006-01-02 15:04"), a.Reason)
	}

	if err := svcs.appointments.Complete(ctx, apt1.ID, "Patient doing well, continue medication"); err != nil {
		return err
	}
	done, err := svcs.appointments.Get(ctx, apt1.ID)
	if err != nil {
		return err
	}
	fmt.Printf("\nAppointment Completed: %s\n", done.ID)
	fmt.Printf("  Status: %s\n", done.Status)
	fmt.Printf("  Notes: %s\n", done.Notes)
	return nil
}

func recordDiagnosis(ctx context.Context, svcs *services) (*clinical.Diagnosis, error) {
	d, err := svcs.diagnoses.Record(ctx, "P001", "DR001",
		"Hypertension (High Blood Pressure)",
		"Patient has elevated blood pressure readings. Requires medication and lifestyle changes.",
		clinical.SeverityMedium)
	if err != nil {
		return nil, err
	}
	fmt.Println("Diagnosis Recorded Successfully:")
	fmt.Printf("  - %s: %s (Severity: %s)\n", d.ID, d.Name, d.Severity)
	fmt.Printf("  - Description: %s\n", d.Description)
	return d, nil
}

func issuePrescription(ctx context.Context, svcs *services, diagnosisID string) error {
	pre, err := svcs.prescriptions.Create(ctx, "P001", "DR001", diagnosisID)
	if err != nil {
		return err
	}
	fmt.Printf("Prescription Created: %s\n", pre.ID)

	medicines := []medication.Medicine{
		{Name: "Amlodipine", Dosage: "5mg", Frequency: "Once daily", Duration: "30 days"},
		{Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily", Duration: "30 days"},
		{Name: "Metoprolol", Dosage: "50mg", Frequency: "Twice daily", Duration: "30 days"},
	}
	for _, m := range medicines {
		if err := svcs.prescriptions.AddMedicine(ctx, pre.ID, m); err != nil {
			return err
		}
	}
	if err := svcs.prescriptions.SetExpiry(ctx, pre.ID, time.Now().AddDate(0, 0, 30)); err != nil {
		return err
	}

	fmt.Println("\nPrescribed Medicines:")
	for _, m := range medicines {
		fmt.Printf("  - %s: %s, %s for %s\n", m.Name, m.Dosage, m.Frequency, m.Duration)
	}

	valid, err := svcs.prescriptions.IsValid(ctx, pre.ID)
	if err != nil {
		return err
	}
	fmt.Printf("\nPrescription valid: %t\n", valid)
	return nil
}

func billAndPay(ctx context.Context, svcs *services) error {
	bill, err := svcs.bills.GenerateBill(ctx, "P001", nil)
	if err != nil {
		return err
	}
	fmt.Printf("Bill Generated: %s\n", bill.ID)

	fmt.Println("\nAdding Charges...")
	if _, err := svcs.bills.AddCharges(ctx, bill.ID, "Room Charges (3 days)", 3000.0); err != nil {
		return err
	}
	if _, err := svcs.bills.AddCharges(ctx, bill.ID, "Lab Tests", 1500.0); err != nil {
		return err
	}
	if _, err := svcs.bills.AddCharges(ctx, bill.ID, "X-Ray", 800.0); err != nil {
		return err
	}
	b, err := svcs.bills.AddMedicineCost(ctx, bill.ID, 2500.0)
	if err != nil {
		return err
	}
	fmt.Printf("  Consultation Fee: Rs. %.2f\n", b.ConsultationFee)
	fmt.Printf("  TOTAL AMOUNT: Rs. %.2f\n", b.TotalAmount)
	fmt.Printf("  Payment Status: %s\n", strings.ToUpper(string(b.Status)))

	b, err = svcs.bills.ProcessPayment(ctx, bill.ID, 5000.0)
	if err != nil {
		return err
	}
	fmt.Printf("\nPayment Processed: Rs. %.2f\n", 5000.0)
	fmt.Printf("  Paid Amount: Rs. %.2f\n", b.AmountPaid)
	fmt.Printf("  Pending Amount: Rs. %.2f\n", b.PendingAmount)
	fmt.Printf("  Payment Status: %s\n", strings.ToUpper(string(b.Status)))

	receipt, err := svcs.bills.BillReceipt(ctx, bill.ID)
	if err != nil {
		return err
	}
	fmt.Printf("\n%s", receipt)
	return nil
}

func dischargeAndFollowUp(ctx context.Context, svcs *services) error {
	summary, err := svcs.discharges.Summary(ctx, "P001")
	if err != nil {
		return err
	}
	fmt.Println("Generating Discharge Summary...")
	fmt.Printf("\n%s", summary)

	if err := svcs.discharges.Initiate(ctx, "H001", "P001"); err != nil {
		return err
	}
	p, err := svcs.people.GetPatient(ctx, "P001")
	if err != nil {
		return err
	}
	fmt.Println("\nPatient Discharged Successfully")
	fmt.Printf("  Patient Status: %s\n", p.Status)
	fmt.Printf("  Discharge Date: %s\n", p.DischargeDate.Format("2006-01-02 15:04:05"))

	appt, err := svcs.discharges.ScheduleFollowUp(ctx, "P001", onDayAt(7, 10, 0))
	if err != nil {
		return err
	}
	fmt.Printf("\nFollow-up appointment %s scheduled for %s with %s\n", appt.ID, appt.Time.Format("2006-01-02"), appt.DoctorID)
	return nil
}

func printMedicalHistory(ctx context.Context, svcs *services) error {
	p, err := svcs.people.GetPatient(ctx, "P001")
	if err != nil {
		return err
	}
	fmt.Printf("Patient: %s (ID: %s)\n\n", p.Name, p.ID)
	fmt.Println("Medical History:")
	for _, entry := range p.MedicalHistory {
		fmt.Printf("  %s\n", entry)
	}
	return nil
}

func printBillingReport(ctx context.Context, svcs *services, asJSON bool) error {
	report, err := svcs.bills.Report(ctx, "P001")
	if err != nil {
		return err
	}

	if asJSON {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("Patient Name: %s\n", report.PatientName)
	fmt.Printf("Patient ID: %s\n", report.PatientID)
	fmt.Printf("\nTotal Bills Generated: %d\n", report.TotalBills)
	fmt.Printf("Total Charged: Rs. %.2f\n", report.TotalCharged)
	fmt.Printf("Total Paid: Rs. %.2f\n", report.TotalPaid)
	fmt.Printf("Total Pending: Rs. %.2f\n", report.TotalPending)

	if len(report.Bills) > 0 {
		fmt.Println("\nBill Details:")
		for _, b := range report.Bills {
			fmt.Printf("\n  Bill ID: %s\n", b.BillID)
			fmt.Printf("  Date: %s\n", b.Date)
			fmt.Printf("  Amount: Rs. %.2f\n", b.Amount)
			fmt.Printf("  Paid: Rs. %.2f\n", b.Paid)
			fmt.Printf("  Pending: Rs. %.2f\n", b.Pending)
			fmt.Printf("  Status: %s\n", strings.ToUpper(string(b.Status)))
		}
	}
	return nil
}

func printFinalStatus(ctx context.Context, svcs *services) error {
	doctors, err := svcs.people.ListDoctors(ctx)
	if err != nil {
		return err
	}
	patients, err := svcs.people.ListPatients(ctx)
	if err != nil {
		return err
	}
	active := 0
	for _, p := range patients {
		if p.Status == identity.PatientAdmitted {
			active++
		}
	}
	appointments, err := svcs.appointments.ListAppointments(ctx)
	if err != nil {
		return err
	}

	fmt.Println("All hospital management features demonstrated successfully!")
	fmt.Println("\nFinal Hospital Status:")
	fmt.Printf("  - Total Doctors: %d\n", len(doctors))
	fmt.Printf("  - Active Patients: %d\n", active)
	fmt.Printf("  - Total Appointments: %d\n", len(appointments))
	return nil
}
