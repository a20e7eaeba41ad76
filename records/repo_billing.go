package records

import (
	"context"
	"strings"

	"bonrecords/models"

	"go.uber.org/zap"
)

type InvoiceDraft struct {
	PatientID      int
	DueDate        string
	BillingAddress string
	Items          []models.LineItem
}

// CreateInvoice bills a known patient. Line totals, tax and the amount are
// computed here and never again.
func (r *Repo) CreateInvoice(ctx context.Context, d InvoiceDraft) (models.Invoice, error) {
	p, err := r.patient(ctx, d.PatientID)
	if err != nil {
		return models.Invoice{}, err
	}
	if err := checkDates(d.DueDate); err != nil {
		return models.Invoice{}, err
	}
	if len(d.Items) == 0 {
		return models.Invoice{}, ErrNoLineItems
	}
	items := make([]models.LineItem, len(d.Items))
	for i, it := range d.Items {
		it.Description = strings.TrimSpace(it.Description)
		if it.Description == "" || it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			return models.Invoice{}, ErrInvalidLineItem
		}
		items[i] = it
	}
	if err := r.Invoices.Wait(ctx); err != nil {
		return models.Invoice{}, err
	}

	tax, amount := models.Totals(items, r.taxRate)
	inv := r.Invoices.Add(models.Invoice{
		PatientID:      p.ID,
		PatientName:    p.Name,
		DueDate:        d.DueDate,
		BillingAddress: d.BillingAddress,
		Items:          items,
		TaxAmount:      tax,
		Amount:         amount,
	})
	r.log.Info("invoice created", zap.Int("invoice_id", inv.ID), zap.Int("patient_id", p.ID), zap.String("amount", amount.StringFixed(2)))
	return inv, nil
}

// UpdateInvoice edits an invoice. Line items and money fields are kept.
func (r *Repo) UpdateInvoice(id int, fn func(*models.Invoice) error) (models.Invoice, error) {
	return r.Invoices.Update(id, func(inv *models.Invoice) error {
		items, amount, tax, patientID := inv.Items, inv.Amount, inv.TaxAmount, inv.PatientID
		if err := fn(inv); err != nil {
			return err
		}
		if inv.Date == "" {
			return ErrInvalidDate
		}
		if err := checkDates(inv.Date, inv.DueDate, inv.PaymentDate); err != nil {
			return err
		}
		inv.Items, inv.Amount, inv.TaxAmount, inv.PatientID = items, amount, tax, patientID
		return nil
	})
}

// Pay marks an invoice paid today by the default method. Paying a paid
// invoice changes nothing.
func (r *Repo) Pay(id int) (models.Invoice, error) {
	today := r.today()
	return r.Invoices.Update(id, func(inv *models.Invoice) error {
		if inv.PaymentDate != "" {
			return nil
		}
		inv.PaymentDate = today
		inv.PaymentMethod = models.DefaultPaymentMethod
		return nil
	})
}
