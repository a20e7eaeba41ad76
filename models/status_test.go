package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestStockStatusBoundaries(t *testing.T) {
	cases := []struct {
		qty  int
		want string
	}{
		{-1, OutOfStock},
		{0, OutOfStock},
		{1, LowStock},
		{99, LowStock},
		{100, InStock},
		{101, InStock},
	}
	for _, tc := range cases {
		if got := StockStatus(tc.qty); got != tc.want {
			t.Errorf("StockStatus(%d) = %q, want %q", tc.qty, got, tc.want)
		}
	}
}

func TestApplyStock(t *testing.T) {
	if got := ApplyStock(85, StockAdd, 20); got != 105 {
		t.Fatalf("add = %d", got)
	}
	if got := ApplyStock(10, StockRemove, 4); got != 6 {
		t.Fatalf("remove = %d", got)
	}
	if got := ApplyStock(10, StockRemove, 40); got != 0 {
		t.Fatalf("remove below zero = %d, want 0", got)
	}
}

func TestTotals(t *testing.T) {
	items := []LineItem{
		{Description: "Consultation", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
		{Description: "Bandage", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
	}
	tax, amount := Totals(items, decimal.RequireFromString("0.10"))

	if !items[0].Total.Equal(decimal.NewFromInt(20)) || !items[1].Total.Equal(decimal.NewFromInt(5)) {
		t.Fatalf("line totals = %s, %s", items[0].Total, items[1].Total)
	}
	if !tax.Equal(decimal.RequireFromString("2.50")) {
		t.Fatalf("tax = %s", tax)
	}
	if !amount.Equal(decimal.RequireFromString("27.50")) {
		t.Fatalf("amount = %s, want 27.50", amount)
	}
}

func TestTotalsKeepSubCentTax(t *testing.T) {
	items := []LineItem{{Description: "Swab", Quantity: 1, UnitPrice: decimal.RequireFromString("0.05")}}
	tax, amount := Totals(items, decimal.RequireFromString("0.10"))
	if !tax.Equal(decimal.RequireFromString("0.005")) || !amount.Equal(decimal.RequireFromString("0.055")) {
		t.Fatalf("tax = %s, amount = %s, want 0.005 and 0.055", tax, amount)
	}
}

func TestInvoiceStatus(t *testing.T) {
	today := "2024-03-10"
	cases := []struct {
		name string
		inv  Invoice
		want string
	}{
		{"no due date", Invoice{}, InvoicePending},
		{"due later", Invoice{DueDate: "2024-03-11"}, InvoicePending},
		{"due today", Invoice{DueDate: today}, InvoicePending},
		{"past due", Invoice{DueDate: "2024-03-09"}, InvoiceOverdue},
		{"paid wins", Invoice{DueDate: "2024-01-01", PaymentDate: "2024-03-01"}, InvoicePaid},
	}
	for _, tc := range cases {
		if got := InvoiceStatus(tc.inv, today); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAppointmentStatus(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name string
		a    Appointment
		want string
	}{
		{"fresh", Appointment{}, AppointmentScheduled},
		{"started", Appointment{StartedAt: &now}, AppointmentInProgress},
		{"no show", Appointment{NoShow: true}, AppointmentNoShow},
		{"completed", Appointment{StartedAt: &now, CompletedAt: &now}, AppointmentCompleted},
		{"cancelled", Appointment{CompletedAt: &now, CancelledAt: &now}, AppointmentCancelled},
	}
	for _, tc := range cases {
		if got := AppointmentStatus(tc.a); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAppointmentMinutes(t *testing.T) {
	cases := map[string]int{
		"09:30 AM": 570,
		"9:30 am":  570,
		"12:00 PM": 720,
		"12:15 AM": 15,
		"03:15 PM": 915,
		"noonish":  -1,
	}
	for in, want := range cases {
		if got := (Appointment{Time: in}).Minutes(); got != want {
			t.Errorf("Minutes(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestDischargeStatus(t *testing.T) {
	if got := DischargeStatus(DischargeRecord{}); got != DischargePending {
		t.Fatalf("got %q", got)
	}
	if got := DischargeStatus(DischargeRecord{DischargeDate: "2023-05-10"}); got != DischargeCompleted {
		t.Fatalf("got %q", got)
	}
}

func TestPatientCloneDetachesSlices(t *testing.T) {
	p := Patient{
		Allergies:        []string{"Latex"},
		EmergencyContact: &EmergencyContact{Name: "Ana"},
	}
	c := p.Clone()
	c.Allergies[0] = "Peanuts"
	c.EmergencyContact.Name = "Luis"
	if p.Allergies[0] != "Latex" || p.EmergencyContact.Name != "Ana" {
		t.Fatalf("clone shares state with original: %+v", p)
	}
}

func TestSameMonth(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	if !SameMonth("2024-03-01", now) || SameMonth("2024-02-29", now) || SameMonth("", now) {
		t.Fatal("SameMonth mismatch")
	}
}

func TestValidDate(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want bool
	}{
		{"2024-05-30", true},
		{"2024-02-29", true},
		{"2023-02-29", false},
		{"05/30/2024", false},
		{"2024-5-30", false},
		{"", false},
	} {
		if got := ValidDate(tc.in); got != tc.want {
			t.Errorf("ValidDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
