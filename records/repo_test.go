package records

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"bonrecords/models"

	"github.com/shopspring/decimal"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func newTestRepo(t *testing.T) (*Repo, *testClock) {
	t.Helper()
	clk := &testClock{now: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	r := New(Options{Clock: clk.Now})
	if err := r.WarmUp(context.Background()); err != nil {
		t.Fatalf("WarmUp: %v", err)
	}
	return r, clk
}

func lineItems() []models.LineItem {
	return []models.LineItem{
		{Description: "Consultation", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
		{Description: "Bandage", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
	}
}

func TestSeededCollections(t *testing.T) {
	r, _ := newTestRepo(t)
	sizes := map[string]int{
		"patients":     r.Patients.Len(),
		"staff":        r.Staff.Len(),
		"inventory":    r.Inventory.Len(),
		"invoices":     r.Invoices.Len(),
		"appointments": r.Appointments.Len(),
		"discharges":   r.Discharges.Len(),
		"lab_tests":    r.LabTests.Len(),
	}
	want := map[string]int{"patients": 5, "staff": 7, "inventory": 8, "invoices": 0, "appointments": 5, "discharges": 4, "lab_tests": 0}
	for k, n := range want {
		if sizes[k] != n {
			t.Errorf("%s: %d rows, want %d", k, sizes[k], n)
		}
	}

	stock := map[int]string{3: models.LowStock, 5: models.InStock, 7: models.LowStock, 8: models.OutOfStock}
	for id, want := range stock {
		it, _ := r.Inventory.Get(id)
		if it.Status != want {
			t.Errorf("inventory %d (%d %s): status %q, want %q", id, it.Quantity, it.Unit, it.Status, want)
		}
	}
	if a, _ := r.Appointments.Get(1004); a.Status != models.AppointmentCompleted {
		t.Errorf("appointment 1004 status = %q", a.Status)
	}
	if d, _ := r.Discharges.Get(1004); d.Status != models.DischargePending {
		t.Errorf("discharge 1004 status = %q", d.Status)
	}
}

func TestEmptyRepo(t *testing.T) {
	r := New(Options{Empty: true})
	if err := r.WarmUp(context.Background()); err != nil {
		t.Fatal(err)
	}
	if r.Patients.Len() != 0 || r.Appointments.Len() != 0 {
		t.Fatal("empty repo has rows")
	}
	if p := r.AddPatient(models.Patient{Name: "First"}); p.ID != 1 {
		t.Fatalf("first id = %d", p.ID)
	}
}

func TestAddPatientStampsDefaults(t *testing.T) {
	r, _ := newTestRepo(t)
	p := r.AddPatient(models.Patient{Name: "Ana Ruiz", Age: 31, Status: models.PatientInactive, LastVisit: "1999-01-01"})
	if p.ID != 6 || p.LastVisit != "2024-03-10" || p.Status != models.PatientActive {
		t.Fatalf("added = %+v", p)
	}
	if q := r.AddPatient(models.Patient{Name: "Ben"}); q.ID != 7 {
		t.Fatalf("second id = %d", q.ID)
	}
}

func TestUpdatePatientValidatesStatus(t *testing.T) {
	r, _ := newTestRepo(t)
	if _, err := r.UpdatePatient(1, func(p *models.Patient) error { p.Status = "Discharged"; return nil }); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v", err)
	}
	got, err := r.UpdatePatient(1, func(p *models.Patient) error { p.Phone = "(555) 000-0000"; return nil })
	if err != nil {
		t.Fatal(err)
	}
	if got.Phone != "(555) 000-0000" || got.Name != "Sarah Johnson" || got.Status != models.PatientActive {
		t.Fatalf("updated = %+v", got)
	}
}

func TestAddStaffDefaultsActive(t *testing.T) {
	r, _ := newTestRepo(t)
	s, err := r.AddStaff(models.StaffMember{Name: "Dr. Nia Patel", Position: "Doctor", Department: "Oncology"})
	if err != nil {
		t.Fatal(err)
	}
	if s.ID != 8 || s.Status != models.StaffActive {
		t.Fatalf("added = %+v", s)
	}
	if _, err := r.AddStaff(models.StaffMember{Name: "X", Status: "Retired"}); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("err = %v", err)
	}
}

func TestRestock(t *testing.T) {
	r, _ := newTestRepo(t)

	it, err := r.Restock(3, models.StockAdd, 20)
	if err != nil {
		t.Fatal(err)
	}
	if it.Quantity != 105 || it.Status != models.InStock || it.LastUpdated != "2024-03-10" {
		t.Fatalf("after add = %+v", it)
	}
	it, err = r.Restock(3, models.StockRemove, 500)
	if err != nil {
		t.Fatal(err)
	}
	if it.Quantity != 0 || it.Status != models.OutOfStock {
		t.Fatalf("after remove = %+v", it)
	}

	if _, err := r.Restock(3, "set", 5); !errors.Is(err, ErrInvalidStockOp) {
		t.Fatalf("bad op: %v", err)
	}
	if _, err := r.Restock(3, models.StockAdd, 0); !errors.Is(err, ErrInvalidStockOp) {
		t.Fatalf("zero amount: %v", err)
	}
	if _, err := r.Restock(99, models.StockAdd, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing item: %v", err)
	}
}

func TestUpdateInventoryRederivesStatus(t *testing.T) {
	r, _ := newTestRepo(t)
	it, err := r.UpdateInventory(1, func(it *models.InventoryItem) error {
		it.Quantity = 40
		it.Status = models.InStock
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if it.Status != models.LowStock || it.LastUpdated != "2024-03-10" {
		t.Fatalf("updated = %+v", it)
	}
	if _, err := r.UpdateInventory(1, func(it *models.InventoryItem) error { it.Quantity = -1; return nil }); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("negative quantity: %v", err)
	}
}

func TestCreateInvoice(t *testing.T) {
	r, _ := newTestRepo(t)
	inv, err := r.CreateInvoice(context.Background(), InvoiceDraft{PatientID: 2, DueDate: "2024-03-20", Items: lineItems()})
	if err != nil {
		t.Fatal(err)
	}
	if !inv.Amount.Equal(decimal.RequireFromString("27.50")) || !inv.TaxAmount.Equal(decimal.RequireFromString("2.50")) {
		t.Fatalf("amount = %s tax = %s", inv.Amount, inv.TaxAmount)
	}
	if inv.ID != 1 || inv.PatientName != "Robert Williams" || inv.Date != "2024-03-10" || inv.Status != models.InvoicePending {
		t.Fatalf("invoice = %+v", inv)
	}
	if !inv.Items[0].Total.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("line total = %s", inv.Items[0].Total)
	}
}

func TestCreateInvoiceRejects(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	cases := []struct {
		name  string
		draft InvoiceDraft
		want  error
	}{
		{"unknown patient", InvoiceDraft{PatientID: 42, Items: lineItems()}, ErrUnknownPatient},
		{"no items", InvoiceDraft{PatientID: 1}, ErrNoLineItems},
		{"zero quantity", InvoiceDraft{PatientID: 1, Items: []models.LineItem{{Description: "X", Quantity: 0, UnitPrice: decimal.NewFromInt(1)}}}, ErrInvalidLineItem},
		{"negative price", InvoiceDraft{PatientID: 1, Items: []models.LineItem{{Description: "X", Quantity: 1, UnitPrice: decimal.NewFromInt(-1)}}}, ErrInvalidLineItem},
	}
	for _, tc := range cases {
		if _, err := r.CreateInvoice(ctx, tc.draft); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
	if r.Invoices.Len() != 0 {
		t.Fatal("rejected drafts were stored")
	}
}

func TestPayAndOverdue(t *testing.T) {
	r, clk := newTestRepo(t)
	ctx := context.Background()
	a, _ := r.CreateInvoice(ctx, InvoiceDraft{PatientID: 1, DueDate: "2024-03-11", Items: lineItems()})
	b, _ := r.CreateInvoice(ctx, InvoiceDraft{PatientID: 3, DueDate: "2024-03-11", Items: lineItems()})

	paid, err := r.Pay(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if paid.Status != models.InvoicePaid || paid.PaymentDate != "2024-03-10" || paid.PaymentMethod != models.DefaultPaymentMethod {
		t.Fatalf("paid = %+v", paid)
	}

	clk.Set(time.Date(2024, 3, 12, 0, 5, 0, 0, time.UTC))
	again, _ := r.Pay(a.ID)
	if again.PaymentDate != "2024-03-10" {
		t.Fatalf("second payment moved the date: %+v", again)
	}

	if n := r.RefreshAll(); n != 1 {
		t.Fatalf("RefreshAll changed %d records, want 1", n)
	}
	if got, _ := r.Invoices.Get(b.ID); got.Status != models.InvoiceOverdue {
		t.Fatalf("unpaid invoice status = %q", got.Status)
	}
	if got, _ := r.Invoices.Get(a.ID); got.Status != models.InvoicePaid {
		t.Fatalf("paid invoice status = %q", got.Status)
	}
	if _, err := r.Pay(99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("pay missing: %v", err)
	}
}

func TestUpdateInvoiceKeepsMoney(t *testing.T) {
	r, _ := newTestRepo(t)
	inv, _ := r.CreateInvoice(context.Background(), InvoiceDraft{PatientID: 1, Items: lineItems()})
	got, err := r.UpdateInvoice(inv.ID, func(v *models.Invoice) error {
		v.Amount = decimal.NewFromInt(1)
		v.Items = nil
		v.Status = models.InvoicePaid
		v.BillingAddress = "1 Lake Rd"
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if !got.Amount.Equal(inv.Amount) || len(got.Items) != 2 || got.Status != models.InvoicePending || got.BillingAddress != "1 Lake Rd" {
		t.Fatalf("updated = %+v", got)
	}
}

func TestAppointmentLifecycle(t *testing.T) {
	r, _ := newTestRepo(t)
	a, err := r.Schedule(context.Background(), models.Appointment{PatientID: 5, Time: "10:00 AM", Doctor: "Dr. Lisa Chen", Department: "Pediatrics", Type: "Follow-up", Status: models.AppointmentCompleted})
	if err != nil {
		t.Fatal(err)
	}
	if a.ID != 1006 || a.Date != "2024-03-10" || a.PatientName != "Emma Wilson" || a.Status != models.AppointmentScheduled {
		t.Fatalf("scheduled = %+v", a)
	}

	steps := []struct {
		name string
		op   func(int) (models.Appointment, error)
		want string
		err  error
	}{
		{"start", r.Start, models.AppointmentInProgress, nil},
		{"start twice", r.Start, "", ErrInvalidTransition},
		{"no show while in progress", r.MarkNoShow, "", ErrInvalidTransition},
		{"complete", r.Complete, models.AppointmentCompleted, nil},
		{"cancel completed", r.Cancel, "", ErrInvalidTransition},
	}
	for _, s := range steps {
		got, err := s.op(a.ID)
		if !errors.Is(err, s.err) {
			t.Fatalf("%s: err = %v, want %v", s.name, err, s.err)
		}
		if s.err == nil && got.Status != s.want {
			t.Fatalf("%s: status = %q, want %q", s.name, got.Status, s.want)
		}
	}

	if got, _ := r.Cancel(1001); got.Status != models.AppointmentCancelled || got.CancelledAt == nil {
		t.Fatalf("cancel 1001 = %+v", got)
	}
	if got, _ := r.MarkNoShow(1002); got.Status != models.AppointmentNoShow {
		t.Fatalf("no-show 1002 = %+v", got)
	}
}

func TestScheduleRejects(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	if _, err := r.Schedule(ctx, models.Appointment{PatientID: 77, Time: "10:00 AM"}); !errors.Is(err, ErrUnknownPatient) {
		t.Fatalf("unknown patient: %v", err)
	}
	if _, err := r.Schedule(ctx, models.Appointment{PatientID: 1, Time: "lunch"}); !errors.Is(err, ErrInvalidTime) {
		t.Fatalf("bad time: %v", err)
	}
}

func TestUpdateAppointmentKeepsStamps(t *testing.T) {
	r, _ := newTestRepo(t)
	got, err := r.UpdateAppointment(1004, func(a *models.Appointment) error {
		a.CompletedAt = nil
		a.Notes = "Reviewed"
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != models.AppointmentCompleted || got.Notes != "Reviewed" {
		t.Fatalf("updated = %+v", got)
	}
}

func TestDayView(t *testing.T) {
	r, _ := newTestRepo(t)
	r.Appointments.Add(models.Appointment{PatientID: 2, PatientName: "Robert Williams", Date: "2023-07-10", Time: "08:05 AM", Doctor: "Dr. Lisa Chen"})

	ids := func(as []models.Appointment) []int {
		out := make([]int, len(as))
		for i, a := range as {
			out[i] = a.ID
		}
		return out
	}
	cases := []struct {
		date, q string
		want    []int
	}{
		{"2023-07-10", "", []int{1006, 1001, 1002, 1003}},
		{"2023-07-10", "WILSON", []int{1001, 1003}},
		{"2023-07-11", "", []int{1005}},
		{"", "", []int{}},
	}
	for _, tc := range cases {
		got := ids(r.DayView(tc.date, tc.q))
		if len(got) != len(tc.want) {
			t.Errorf("DayView(%q, %q) = %v, want %v", tc.date, tc.q, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("DayView(%q, %q) = %v, want %v", tc.date, tc.q, got, tc.want)
				break
			}
		}
	}
}

func TestCompleteDischarge(t *testing.T) {
	r, _ := newTestRepo(t)
	d, err := r.CompleteDischarge(1004)
	if err != nil {
		t.Fatal(err)
	}
	if d.Status != models.DischargeCompleted || d.DischargeDate != "2024-03-10" {
		t.Fatalf("discharge = %+v", d)
	}
	d, _ = r.CompleteDischarge(1001)
	if d.DischargeDate != "2023-05-10" {
		t.Fatalf("completed discharge date moved: %+v", d)
	}
}

func TestLabTests(t *testing.T) {
	r, _ := newTestRepo(t)
	l, err := r.AddLabTest(models.LabTest{PatientID: 1, PatientName: "Sarah Johnson", TestName: "CBC", OrderedBy: "Dr. James Wilson"})
	if err != nil {
		t.Fatal(err)
	}
	if l.ID != 1 || l.Status != models.LabPending || l.Priority != models.PriorityRoutine || l.OrderedDate != "2024-03-10" {
		t.Fatalf("lab test = %+v", l)
	}
	if _, err := r.AddLabTest(models.LabTest{TestName: "X", Priority: "Whenever"}); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("priority: %v", err)
	}
	if _, err := r.UpdateLabTest(l.ID, func(l *models.LabTest) error { l.Status = "Lost"; return nil }); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("status: %v", err)
	}
	if _, err := r.UpdateLabTest(l.ID, func(l *models.LabTest) error { l.Status = models.LabCompleted; l.Results = "normal"; return nil }); err != nil {
		t.Fatal(err)
	}
	if got := r.LabTestsByStatus(models.LabCompleted, ""); len(got) != 1 || got[0].Results != "normal" {
		t.Fatalf("completed = %+v", got)
	}
	if got := r.LabTestsByStatus(models.LabPending, "cbc"); len(got) != 0 {
		t.Fatalf("pending = %+v", got)
	}
}

func TestStats(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	inv, _ := r.CreateInvoice(ctx, InvoiceDraft{PatientID: 1, Items: lineItems()})
	_, _ = r.CreateInvoice(ctx, InvoiceDraft{PatientID: 2, Items: lineItems()})
	_, _ = r.Pay(inv.ID)
	_, _ = r.Schedule(ctx, models.Appointment{PatientID: 1, Time: "01:00 PM", Department: "Cardiology"})
	_, _ = r.AddLabTest(models.LabTest{PatientID: 1, TestName: "CBC"})
	_, _ = r.AddLabTest(models.LabTest{PatientID: 2, TestName: "MRI", Status: models.LabInProgress})
	_, _ = r.AddLabTest(models.LabTest{PatientID: 3, TestName: "X-Ray", Status: models.LabCompleted})

	s, err := r.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalPatients != 5 || s.ActivePatients != 4 || s.TodayAppointments != 1 {
		t.Fatalf("patients/appointments = %+v", s)
	}
	if !s.MonthlyRevenue.Equal(decimal.RequireFromString("27.50")) {
		t.Fatalf("revenue = %s", s.MonthlyRevenue)
	}
	if s.PendingLabResults != 2 || s.LowStockItems != 3 || s.OutOfStockItems != 1 {
		t.Fatalf("lab/stock = %+v", s)
	}
	if s.StaffByStatus[models.StaffActive] != 6 || s.StaffByStatus[models.StaffOnLeave] != 1 {
		t.Fatalf("staff = %v", s.StaffByStatus)
	}
	dept := map[string]int{"Cardiology": 2, "General Medicine": 2, "Neurology": 1}
	for k, v := range dept {
		if s.PatientsByDepartment[k] != v {
			t.Fatalf("departments = %v", s.PatientsByDepartment)
		}
	}
}

func TestMedicalRecord(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()
	_, _ = r.CreateInvoice(ctx, InvoiceDraft{PatientID: 1, Items: lineItems()})

	rec, err := r.MedicalRecord(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Patient.Name != "Sarah Johnson" || len(rec.Appointments) != 1 || rec.Appointments[0].ID != 1001 {
		t.Fatalf("record = %+v", rec)
	}
	if len(rec.Discharges) != 1 || rec.Discharges[0].ID != 1003 || len(rec.Invoices) != 1 || len(rec.LabTests) != 0 {
		t.Fatalf("record = %+v", rec)
	}
	if _, err := r.MedicalRecord(ctx, 404); !errors.Is(err, ErrUnknownPatient) {
		t.Fatalf("err = %v", err)
	}
}

func TestWatchReportsSizes(t *testing.T) {
	r := New(Options{})
	sizes := map[string]int{}
	var mu sync.Mutex
	r.Watch(func(name string, n int) {
		mu.Lock()
		sizes[name] = n
		mu.Unlock()
	})
	if err := r.WarmUp(context.Background()); err != nil {
		t.Fatal(err)
	}
	r.AddPatient(models.Patient{Name: "Zoe"})

	mu.Lock()
	defer mu.Unlock()
	if sizes["patients"] != 6 || sizes["inventory"] != 8 || sizes["lab_tests"] != 0 {
		t.Fatalf("sizes = %v", sizes)
	}
}

func TestLoadFailureSurfaces(t *testing.T) {
	r := New(Options{Delay: time.Hour})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := r.Stats(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v", err)
	}
	if st := r.Patients.State(); !st.Loading {
		t.Fatalf("state = %+v", st)
	}
}

func TestMalformedDatesRejected(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	if _, err := r.CreateInvoice(ctx, InvoiceDraft{PatientID: 1, DueDate: "05/30/2024", Items: lineItems()}); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("create with slash due date: %v", err)
	}
	inv, err := r.CreateInvoice(ctx, InvoiceDraft{PatientID: 1, DueDate: "2024-03-01", Items: lineItems()})
	if err != nil {
		t.Fatal(err)
	}
	if inv.Status != models.InvoiceOverdue {
		t.Fatalf("status = %q, want Overdue", inv.Status)
	}
	if _, err := r.UpdateInvoice(inv.ID, func(v *models.Invoice) error { v.DueDate = "2024/12/31"; return nil }); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("update due date: %v", err)
	}
	if got, _ := r.Invoices.Get(inv.ID); got.DueDate != "2024-03-01" {
		t.Fatalf("rejected update leaked: %+v", got)
	}

	if _, err := r.Schedule(ctx, models.Appointment{PatientID: 1, Date: "July 10", Time: "10:00 AM"}); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("schedule with bad date: %v", err)
	}
	if _, err := r.UpdateAppointment(1001, func(a *models.Appointment) error { a.Date = ""; return nil }); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("clear appointment date: %v", err)
	}
}
