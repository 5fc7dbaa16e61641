package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

type InvoicesHandler struct {
	InvoiceService   *service.InvoiceService
	DirectoryService *service.DirectoryService
}

func writeInvoiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInvoiceRequest):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid invoice request")
	case errors.Is(err, service.ErrInvoiceNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Invoice not found")
	case errors.Is(err, service.ErrClientNotFound):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Client not found")
	case errors.Is(err, service.ErrInvoiceNotPayable):
		httpx.WriteError(w, http.StatusConflict, "not_payable", "Only sent or overdue invoices accept payments")
	case errors.Is(err, service.ErrOverpayment):
		httpx.WriteError(w, http.StatusConflict, "overpayment", "Payment exceeds the outstanding balance")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Invoice operation failed")
	}
}

// HandleCreate godoc
//
//	@Summary		Create Invoice
//	@Description	Raise a draft invoice for a client. The invoice number (e.g. INV-2026-0042) is drawn from the issue year's sequence.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			request	body		InvoiceCreateRequest	true	"Invoice details"
//	@Success		201		{object}	InvoiceResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invoices [post].
func (h *InvoicesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req InvoiceCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	inv, err := h.InvoiceService.CreateInvoice(r.Context(), req.ClientID, req.AmountCents,
		req.IssueDate, req.DueDate, req.Description)
	if err != nil {
		writeInvoiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toInvoiceResponse(inv))
}

// HandleList godoc
//
//	@Summary		List Invoices
//	@Description	Managers and admins see every invoice and may filter by client; a client account sees only its own.
//	@Tags			Invoices
//	@Produce		json
//	@Param			client_id	query	string	false	"Filter by client (management only)"
//	@Success		200			{array}	InvoiceResponse
//	@Failure		403			{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invoices [get].
func (h *InvoicesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		invoices []domain.Invoice
		err      error
	)
	switch domain.Role(httpx.RoleFromCtx(ctx)) {
	case domain.RoleAdmin, domain.RoleManager:
		if clientID := r.URL.Query().Get("client_id"); clientID != "" {
			invoices, err = h.InvoiceService.ListInvoicesByClient(ctx, clientID)
		} else {
			invoices, err = h.InvoiceService.ListInvoices(ctx)
		}
	case domain.RoleClient:
		var own domain.Client
		own, err = h.DirectoryService.ClientForUser(ctx, httpx.UserIDFromCtx(ctx))
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			// An account with no advertiser record has nothing billed.
			err = nil
		case err == nil:
			if filter := r.URL.Query().Get("client_id"); filter != "" && filter != own.ID {
				httpx.WriteError(w, http.StatusForbidden, "forbidden", "Clients may only view their own invoices")
				return
			}
			invoices, err = h.InvoiceService.ListInvoicesByClient(ctx, own.ID)
		}
	default:
		httpx.WriteError(w, http.StatusForbidden, "forbidden", "Invoices are restricted to management and the billed client")
		return
	}
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list invoices")
		return
	}

	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Invoice
//	@Tags		Invoices
//	@Produce	json
//	@Param		id	path		string	true	"Invoice ID"
//	@Success	200	{object}	InvoiceResponse
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/invoices/{id} [get].
func (h *InvoicesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InvoiceService.GetInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		writeInvoiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvoiceResponse(inv))
}

// HandleSend godoc
//
//	@Summary		Send Invoice
//	@Description	Move a draft to sent, making it payable.
//	@Tags			Invoices
//	@Produce		json
//	@Param			id	path		string	true	"Invoice ID"
//	@Success		200	{object}	InvoiceResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invoices/{id}/send [post].
func (h *InvoicesHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InvoiceService.SendInvoice(r.Context(), r.PathValue("id"))
	if err != nil {
		writeInvoiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvoiceResponse(inv))
}

// HandleCancel godoc
//
//	@Summary		Cancel Invoice
//	@Description	Void an unpaid invoice and back its amount out of the client's billed totals.
//	@Tags			Invoices
//	@Param			id	path	string	true	"Invoice ID"
//	@Success		204
//	@Failure		404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invoices/{id}/cancel [post].
func (h *InvoicesHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	if err := h.InvoiceService.CancelInvoice(r.Context(), r.PathValue("id")); err != nil {
		writeInvoiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleRecordPayment godoc
//
//	@Summary		Record Payment
//	@Description	Apply a payment against a sent or overdue invoice. Overpayments are rejected; a payment that clears the balance marks the invoice paid.
//	@Tags			Invoices
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Invoice ID"
//	@Param			request	body		PaymentRequest	true	"Payment amount in cents"
//	@Success		200		{object}	InvoiceResponse
//	@Failure		409		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/invoices/{id}/payments [post].
func (h *InvoicesHandler) HandleRecordPayment(w http.ResponseWriter, r *http.Request) {
	var req PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	inv, err := h.InvoiceService.RecordPayment(r.Context(), r.PathValue("id"), req.AmountCents)
	if err != nil {
		writeInvoiceError(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toInvoiceResponse(inv))
}
