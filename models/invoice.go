package models

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	InvoicePaid    = "Paid"
	InvoicePending = "Pending"
	InvoiceOverdue = "Overdue"
)

// DefaultPaymentMethod is recorded when an invoice is marked paid.
const DefaultPaymentMethod = "Credit Card"

type LineItem struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

type Invoice struct {
	ID             int             `json:"id"`
	PatientID      int             `json:"patientId"`
	PatientName    string          `json:"patientName"`
	Date           string          `json:"date"`
	DueDate        string          `json:"dueDate"`
	Amount         decimal.Decimal `json:"amount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	Status         string          `json:"status"`
	Items          []LineItem      `json:"items"`
	PaymentMethod  string          `json:"paymentMethod,omitempty"`
	PaymentDate    string          `json:"paymentDate,omitempty"`
	BillingAddress string          `json:"billingAddress,omitempty"`
}

// InvoiceStatus derives the payment status. Dates compare lexically as YYYY-MM-DD.
func InvoiceStatus(inv Invoice, today string) string {
	switch {
	case inv.PaymentDate != "":
		return InvoicePaid
	case inv.DueDate != "" && inv.DueDate < today:
		return InvoiceOverdue
	default:
		return InvoicePending
	}
}

// Totals prices the line items in place and returns the tax and the amount due.
// Values keep full precision; rounding is left to presentation.
func Totals(items []LineItem, taxRate decimal.Decimal) (tax, amount decimal.Decimal) {
	subtotal := decimal.Zero
	for i := range items {
		items[i].Total = items[i].UnitPrice.Mul(decimal.NewFromInt(int64(items[i].Quantity)))
		subtotal = subtotal.Add(items[i].Total)
	}
	tax = subtotal.Mul(taxRate)
	return tax, subtotal.Add(tax)
}

func (inv Invoice) Clone() Invoice {
	inv.Items = slices.Clone(inv.Items)
	return inv
}

func (inv Invoice) Matches(q string) bool {
	return strings.Contains(strings.ToLower(inv.PatientName), q) ||
		strings.Contains(strings.ToLower(inv.Status), q)
}
