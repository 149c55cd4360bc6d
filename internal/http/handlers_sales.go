package http

import (
	"log/slog"
	"net/http"

	"gestao/internal/core"
)

// handleSales lists the sales ledger on GET and records a sale on POST.
func (s *Server) handleSales(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if n, ok := parseLimitParam(r); ok {
			t, err := s.sales.Tail(r.Context(), n)
			if err != nil {
				writeError(w, err)
				return
			}
			writeTable(w, t)
			return
		}
		t, err := s.sales.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeTable(w, t)

	case http.MethodPost:
		s.handleCreateSale(w, r)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateSale(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err, "url", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	date, err := parseDateOrToday(r.Form.Get("data"))
	if err != nil {
		writeError(w, err)
		return
	}
	amount, err := core.ParseAmount(r.Form.Get("valor"))
	if err != nil {
		writeError(w, err)
		return
	}
	invoice, err := core.ParseYesNo(r.Form.Get("nf"))
	if err != nil {
		writeError(w, err)
		return
	}
	received, err := core.ParseYesNo(r.Form.Get("recebido"))
	if err != nil {
		writeError(w, err)
		return
	}

	sale := core.Sale{
		Date:        date,
		Client:      sanitizeInput(r.Form.Get("cliente")),
		Description: sanitizeInput(r.Form.Get("descricao")),
		Kind:        sanitizeInput(r.Form.Get("tipo")),
		Amount:      amount,
		Payment:     sanitizeInput(r.Form.Get("pagamento")),
		Person:      sanitizeInput(r.Form.Get("documento")),
		Invoice:     invoice,
		Received:    received,
		Comment:     sanitizeInput(r.Form.Get("comentario")),
	}

	stored, err := s.sales.Add(r.Context(), sale)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":       stored.ID,
		"data":     stored.Date.String(),
		"cliente":  stored.Client,
		"valor":    stored.Amount.String(),
		"recebido": string(stored.Received),
	})
}

// handleSaleDelete removes a sale by row position.
func (s *Server) handleSaleDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	row, ok := parseRow(r, "row")
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid row"})
		return
	}
	if err := s.sales.Delete(r.Context(), row); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
