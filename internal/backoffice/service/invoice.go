package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/store"
	"github.com/sweetfm/backoffice/pkg/idx"
	"github.com/sweetfm/backoffice/pkg/slogx"
)

var (
	ErrInvalidInvoiceRequest = errors.New("invalid invoice request")
	ErrInvoiceNotFound       = errors.New("invoice not found")
	ErrOverpayment           = errors.New("payment exceeds outstanding balance")
	ErrInvoiceNotPayable     = errors.New("invoice is not payable in its current status")
)

// invoiceSequenceKind keys the per-year invoice counter in the sequences
// table, alongside the display ID kinds.
const invoiceSequenceKind = "INV"

type InvoiceService struct {
	Store store.Store
}

// CreateInvoice bills a client. The invoice number (INV-2024-0001) comes
// from the same atomic sequence machinery as display IDs, allocated in
// the transaction that inserts the row.
func (s *InvoiceService) CreateInvoice(
	ctx context.Context,
	clientID string,
	amountCents int64,
	issueDate, dueDate time.Time,
	description string,
) (domain.Invoice, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	if amountCents <= 0 || issueDate.IsZero() || dueDate.Before(issueDate) {
		return domain.Invoice{}, ErrInvalidInvoiceRequest
	}

	// 2. The client must exist.
	if _, err := s.Store.Clients().GetClientByID(ctx, clientID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invoice{}, ErrClientNotFound
		}
		return domain.Invoice{}, err
	}

	now := time.Now().UTC()
	inv := domain.Invoice{
		ID:          idx.New().String(),
		ClientID:    clientID,
		AmountCents: amountCents,
		Status:      domain.InvoiceDraft,
		IssueDate:   issueDate,
		DueDate:     dueDate,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// 3. Allocate the number, insert, and bump the client's lifetime
	// billed total atomically.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		seq, err := tx.Sequences().Next(ctx, invoiceSequenceKind, issueDate.Year())
		if err != nil {
			return err
		}
		inv.Number = fmt.Sprintf("INV-%d-%04d", issueDate.Year(), seq)

		if err := tx.Invoices().CreateInvoice(ctx, inv); err != nil {
			return err
		}
		return tx.Clients().AddToTotals(ctx, clientID, amountCents, 0)
	})
	if err != nil {
		log.Error("failed to create invoice", slog.Any("error", err))
		return domain.Invoice{}, err
	}

	log.Info("invoice created",
		slog.String("invoice_id", inv.ID),
		slog.String("number", inv.Number),
		slog.String("client_id", clientID),
	)
	return inv, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id string) (domain.Invoice, error) {
	inv, err := s.Store.Invoices().GetInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invoice{}, ErrInvoiceNotFound
		}
		return domain.Invoice{}, err
	}
	return inv, nil
}

func (s *InvoiceService) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	return s.Store.Invoices().ListInvoices(ctx)
}

func (s *InvoiceService) ListInvoicesByClient(ctx context.Context, clientID string) ([]domain.Invoice, error) {
	return s.Store.Invoices().ListInvoicesByClient(ctx, clientID)
}

// SendInvoice moves a draft to sent, making it payable.
func (s *InvoiceService) SendInvoice(ctx context.Context, id string) (domain.Invoice, error) {
	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return domain.Invoice{}, err
	}
	if inv.Status != domain.InvoiceDraft {
		return domain.Invoice{}, ErrInvalidInvoiceRequest
	}
	if err := s.Store.Invoices().UpdateInvoiceStatus(ctx, id, domain.InvoiceSent); err != nil {
		return domain.Invoice{}, err
	}
	inv.Status = domain.InvoiceSent
	return inv, nil
}

// CancelInvoice voids an unpaid invoice and reverses its contribution to
// the client's billed total.
func (s *InvoiceService) CancelInvoice(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	inv, err := s.GetInvoice(ctx, id)
	if err != nil {
		return err
	}
	if inv.Status == domain.InvoicePaid || inv.Status == domain.InvoiceCancelled {
		return ErrInvalidInvoiceRequest
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invoices().UpdateInvoiceStatus(ctx, id, domain.InvoiceCancelled); err != nil {
			return err
		}
		return tx.Clients().AddToTotals(ctx, inv.ClientID, -inv.AmountCents, -inv.PaidCents)
	})
	if err != nil {
		log.Error("failed to cancel invoice", slog.Any("error", err))
		return err
	}

	log.Info("invoice cancelled", slog.String("invoice_id", id))
	return nil
}

// RecordPayment applies a payment against a sent invoice. Overpayment is
// rejected; paying the balance in full flips the status to paid. The
// client's lifetime paid total moves in the same transaction.
func (s *InvoiceService) RecordPayment(ctx context.Context, id string, amountCents int64) (domain.Invoice, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate.
	if amountCents <= 0 {
		return domain.Invoice{}, ErrInvalidInvoiceRequest
	}

	var result domain.Invoice
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Re-read inside the transaction so concurrent payments see a
		// consistent balance.
		inv, err := tx.Invoices().GetInvoiceByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvoiceNotFound
			}
			return err
		}
		if inv.Status != domain.InvoiceSent && inv.Status != domain.InvoiceOverdue {
			return ErrInvoiceNotPayable
		}
		if amountCents > inv.BalanceCents() {
			return ErrOverpayment
		}

		// 3. Apply.
		newPaid := inv.PaidCents + amountCents
		status := inv.Status
		if newPaid == inv.AmountCents {
			status = domain.InvoicePaid
		}
		if err := tx.Invoices().ApplyPayment(ctx, id, newPaid, status); err != nil {
			return err
		}
		if err := tx.Clients().AddToTotals(ctx, inv.ClientID, 0, amountCents); err != nil {
			return err
		}

		inv.PaidCents = newPaid
		inv.Status = status
		result = inv
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvoiceNotFound) && !errors.Is(err, ErrOverpayment) && !errors.Is(err, ErrInvoiceNotPayable) {
			log.Error("failed to record payment", slog.Any("error", err))
		}
		return domain.Invoice{}, err
	}

	log.Info("payment recorded",
		slog.String("invoice_id", id),
		slog.Int64("amount_cents", amountCents),
		slog.String("status", string(result.Status)),
	)
	return result, nil
}
