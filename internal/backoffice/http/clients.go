package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sweetfm/backoffice/internal/backoffice/domain"
	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/pkg/httpx"
)

type ClientsHandler struct {
	DirectoryService *service.DirectoryService
}

func clientFromRequest(req ClientRequest) domain.Client {
	return domain.Client{
		Name:          req.Name,
		Company:       req.Company,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
		PaymentTerms:  req.PaymentTerms,
	}
}

// HandleCreate godoc
//
//	@Summary		Create Client
//	@Description	Register an advertiser. The display ID (e.g. C24001) is assigned from this year's sequence and never changes.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ClientRequest	true	"Client details"
//	@Success		201		{object}	ClientResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	c, err := h.DirectoryService.CreateClient(r.Context(), clientFromRequest(req))
	if err != nil {
		if errors.Is(err, service.ErrInvalidDirectoryRequest) {
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Name is required")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to create client")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toClientResponse(c))
}

// HandleList godoc
//
//	@Summary	List Clients
//	@Tags		Clients
//	@Produce	json
//	@Success	200	{array}	ClientResponse
//	@Security	BearerAuth
//	@Router		/v1/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	clients, err := h.DirectoryService.ListClients(r.Context())
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to list clients")
		return
	}

	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleGet godoc
//
//	@Summary	Get Client
//	@Tags		Clients
//	@Produce	json
//	@Param		id	path		string	true	"Client ID"
//	@Success	200	{object}	ClientResponse
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/clients/{id} [get].
func (h *ClientsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	c, err := h.DirectoryService.GetClient(r.Context(), r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Client not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to fetch client")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClientResponse(c))
}

// HandleUpdate godoc
//
//	@Summary	Update Client
//	@Tags		Clients
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Client ID"
//	@Param		request	body		ClientRequest	true	"Client details"
//	@Success	200		{object}	ClientResponse
//	@Failure	404		{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/clients/{id} [put].
func (h *ClientsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req ClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	c := clientFromRequest(req)
	c.ID = r.PathValue("id")

	updated, err := h.DirectoryService.UpdateClient(r.Context(), c)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Client not found")
		case errors.Is(err, service.ErrInvalidDirectoryRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Name is required")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to update client")
		}
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toClientResponse(updated))
}

// HandleUpdateStatus godoc
//
//	@Summary	Update Client Status
//	@Tags		Clients
//	@Accept		json
//	@Param		id		path	string			true	"Client ID"
//	@Param		request	body	StatusRequest	true	"New status (active, overdue, inactive)"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/clients/{id}/status [put].
func (h *ClientsHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	err := h.DirectoryService.UpdateClientStatus(r.Context(), r.PathValue("id"), domain.ClientStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Client not found")
		case errors.Is(err, service.ErrInvalidDirectoryRequest):
			httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "Unknown status")
		default:
			httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to update status")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete godoc
//
//	@Summary	Delete Client
//	@Tags		Clients
//	@Param		id	path	string	true	"Client ID"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.DirectoryService.DeleteClient(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "not_found", "Client not found")
			return
		}
		httpx.WriteError(w, http.StatusInternalServerError, "server_error", "Failed to delete client")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
