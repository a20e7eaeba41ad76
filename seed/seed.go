// Package seed holds the fixed sample rows each collection starts with.
// Every function returns freshly allocated values.
package seed

import (
	"time"

	"bonrecords/models"
)

func Patients() []models.Patient {
	return []models.Patient{
		{
			ID: 1, Name: "Sarah Johnson", Age: 45, Gender: "Female", Phone: "(555) 123-4567",
			LastVisit: "2023-05-15", Status: models.PatientActive, BloodType: "A+",
			Address:        "123 Main St, Anytown, US",
			MedicalHistory: []string{"Hypertension", "Diabetes Type 2"},
			Allergies:      []string{"Penicillin"},
		},
		{
			ID: 2, Name: "Robert Williams", Age: 62, Gender: "Male", Phone: "(555) 234-5678",
			LastVisit: "2023-04-22", Status: models.PatientActive, BloodType: "O-",
			Address:        "456 Oak Ave, Somewhere, US",
			MedicalHistory: []string{"Coronary Artery Disease"},
			Allergies:      []string{"Sulfa Drugs"},
		},
		{
			ID: 3, Name: "Maria Garcia", Age: 38, Gender: "Female", Phone: "(555) 345-6789",
			LastVisit: "2023-05-10", Status: models.PatientActive, BloodType: "B+",
			Address:        "789 Pine St, Nowhere, US",
			MedicalHistory: []string{"Asthma"},
			Allergies:      []string{"Latex"},
		},
		{
			ID: 4, Name: "Thomas Brown", Age: 55, Gender: "Male", Phone: "(555) 456-7890",
			LastVisit: "2023-03-18", Status: models.PatientInactive, BloodType: "AB+",
			Address:        "101 Maple Dr, Elsewhere, US",
			MedicalHistory: []string{"Stroke", "High Cholesterol"},
			Allergies:      []string{},
		},
		{
			ID: 5, Name: "Emma Wilson", Age: 29, Gender: "Female", Phone: "(555) 567-8901",
			LastVisit: "2023-05-05", Status: models.PatientActive, BloodType: "A-",
			Address:        "202 Elm St, Anyplace, US",
			MedicalHistory: []string{"Anxiety Disorder"},
			Allergies:      []string{"Peanuts"},
		},
	}
}

func Staff() []models.StaffMember {
	return []models.StaffMember{
		{ID: 1, Name: "Dr. James Wilson", Position: "Doctor", Department: "Cardiology", Email: "james.wilson@bonrecords.com", Phone: "(555) 111-2222", JoinDate: "2020-05-15", Status: models.StaffActive},
		{ID: 2, Name: "Dr. Lisa Chen", Position: "Doctor", Department: "Pediatrics", Email: "lisa.chen@bonrecords.com", Phone: "(555) 222-3333", JoinDate: "2019-11-03", Status: models.StaffActive},
		{ID: 3, Name: "Rebecca Taylor", Position: "Nurse", Department: "Emergency", Email: "rebecca.taylor@bonrecords.com", Phone: "(555) 333-4444", JoinDate: "2021-02-28", Status: models.StaffActive},
		{ID: 4, Name: "Dr. Michael Brown", Position: "Doctor", Department: "General Medicine", Email: "michael.brown@bonrecords.com", Phone: "(555) 444-5555", JoinDate: "2018-08-10", Status: models.StaffActive},
		{ID: 5, Name: "Jessica Adams", Position: "Lab Technician", Department: "Laboratory", Email: "jessica.adams@bonrecords.com", Phone: "(555) 555-6666", JoinDate: "2022-01-15", Status: models.StaffActive},
		{ID: 6, Name: "David Martinez", Position: "Pharmacist", Department: "Pharmacy", Email: "david.martinez@bonrecords.com", Phone: "(555) 666-7777", JoinDate: "2020-11-20", Status: models.StaffActive},
		{ID: 7, Name: "Sarah Johnson", Position: "Receptionist", Department: "Administration", Email: "sarah.johnson@bonrecords.com", Phone: "(555) 777-8888", JoinDate: "2021-09-05", Status: models.StaffOnLeave},
	}
}

// Inventory rows carry no status; it is derived from the quantity on load.
func Inventory() []models.InventoryItem {
	return []models.InventoryItem{
		{ID: 1, Name: "Surgical Masks", Category: "PPE", Quantity: 2500, Unit: "pieces", LastUpdated: "2023-05-10"},
		{ID: 2, Name: "Disposable Gloves", Category: "PPE", Quantity: 1200, Unit: "pairs", LastUpdated: "2023-05-12"},
		{ID: 3, Name: "Hand Sanitizer", Category: "Hygiene", Quantity: 85, Unit: "bottles", LastUpdated: "2023-05-08"},
		{ID: 4, Name: "Paracetamol 500mg", Category: "Medication", Quantity: 350, Unit: "tablets", LastUpdated: "2023-04-30"},
		{ID: 5, Name: "Ibuprofen 200mg", Category: "Medication", Quantity: 120, Unit: "tablets", LastUpdated: "2023-05-05"},
		{ID: 6, Name: "Insulin", Category: "Medication", Quantity: 45, Unit: "vials", LastUpdated: "2023-05-02"},
		{ID: 7, Name: "Blood Pressure Monitors", Category: "Equipment", Quantity: 18, Unit: "pieces", LastUpdated: "2023-04-25"},
		{ID: 8, Name: "Syringes 10ml", Category: "Supplies", Quantity: 0, Unit: "pieces", LastUpdated: "2023-05-07"},
	}
}

func Appointments() []models.Appointment {
	completed := time.Date(2023, 7, 9, 15, 10, 0, 0, time.UTC)
	return []models.Appointment{
		{
			ID: 1001, PatientID: 1, PatientName: "Sarah Johnson", Date: "2023-07-10", Time: "09:30 AM",
			Doctor: "Dr. James Wilson", Department: "Cardiology", Type: "Regular Checkup",
			Notes: "Patient is coming in for a routine cardiac examination.",
		},
		{
			ID: 1002, PatientID: 2, PatientName: "Robert Williams", Date: "2023-07-10", Time: "10:15 AM",
			Doctor: "Dr. Lisa Chen", Department: "General Medicine", Type: "Follow-up",
			Notes: "Follow-up after recent hospitalization.",
		},
		{
			ID: 1003, PatientID: 3, PatientName: "Maria Garcia", Date: "2023-07-10", Time: "11:45 AM",
			Doctor: "Dr. James Wilson", Department: "Cardiology", Type: "Consultation",
			Notes: "New patient referral for heart palpitations.",
		},
		{
			ID: 1004, PatientID: 4, PatientName: "Thomas Brown", Date: "2023-07-09", Time: "02:30 PM",
			Doctor: "Dr. Michael Brown", Department: "Neurology", Type: "Consultation",
			Notes:       "Patient referred for recurring headaches.",
			CompletedAt: &completed,
		},
		{
			ID: 1005, PatientID: 5, PatientName: "Emma Wilson", Date: "2023-07-11", Time: "03:15 PM",
			Doctor: "Dr. Lisa Chen", Department: "General Medicine", Type: "Regular Checkup",
			Notes: "Annual physical examination.",
		},
	}
}

func Discharges() []models.DischargeRecord {
	return []models.DischargeRecord{
		{
			ID: 1001, PatientID: 3, PatientName: "Maria Garcia", AdmissionDate: "2023-05-05", DischargeDate: "2023-05-10",
			Reason: "Recovered from pneumonia", Doctor: "Dr. Lisa Chen",
			Notes: "Patient responded well to antibiotics. Follow-up appointment scheduled for 2 weeks.",
		},
		{
			ID: 1002, PatientID: 4, PatientName: "Thomas Brown", AdmissionDate: "2023-03-10", DischargeDate: "2023-03-18",
			Reason: "Post-surgery recovery", Doctor: "Dr. Michael Brown",
			Notes: "Surgery successful. Patient advised to rest for 4 weeks and avoid heavy lifting.",
		},
		{
			ID: 1003, PatientID: 1, PatientName: "Sarah Johnson", AdmissionDate: "2023-05-12", DischargeDate: "2023-05-15",
			Reason: "Stabilized blood pressure", Doctor: "Dr. James Wilson",
			Notes: "Blood pressure now within normal range. Continue prescribed medication.",
		},
		{
			ID: 1004, PatientID: 2, PatientName: "Robert Williams", AdmissionDate: "2023-06-20",
			Reason: "Heart condition stabilized", Doctor: "Dr. James Wilson",
			Notes: "Patient showing good progress. Monitoring for 24 more hours before discharge.",
		},
	}
}

// Invoices starts empty; invoices only come from billing.
func Invoices() []models.Invoice { return []models.Invoice{} }

func LabTests() []models.LabTest { return []models.LabTest{} }
