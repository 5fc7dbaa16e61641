package domain

import "time"

type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// Invoice bills a client for aired spots. Number is sequential per year
// (INV-2024-0001) and assigned once at creation.
type Invoice struct {
	ID          string
	Number      string
	ClientID    string
	AmountCents int64
	PaidCents   int64
	Status      InvoiceStatus
	IssueDate   time.Time
	DueDate     time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// BalanceCents is the amount still owed on this invoice.
func (i Invoice) BalanceCents() int64 { return i.AmountCents - i.PaidCents }

// EffectiveStatus derives the display status at now. A sent invoice past
// its due date reads as overdue without a row mutation.
func (i Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceSent && i.BalanceCents() > 0 && now.After(i.DueDate) {
		return InvoiceOverdue
	}
	return i.Status
}
