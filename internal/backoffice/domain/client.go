package domain

import "time"

// ClientStatus tracks the billing standing of an advertiser account.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientOverdue  ClientStatus = "overdue"
	ClientInactive ClientStatus = "inactive"
)

// Client is an advertiser account. DisplayID is the human-readable
// identifier (e.g. C24001) assigned once at creation.
type Client struct {
	ID            string
	DisplayID     string
	Name          string
	Company       string
	Email         string
	Phone         string
	Address       string
	ContactPerson string
	PaymentTerms  string
	Status        ClientStatus
	BilledCents   int64 // lifetime total billed
	PaidCents     int64 // lifetime total received
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BalanceCents is the outstanding amount owed by the client.
func (c Client) BalanceCents() int64 { return c.BilledCents - c.PaidCents }
