package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"gestao/internal/core"
)

// handleExpenses lists the expense ledger on GET and records one on POST.
func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		if n, ok := parseLimitParam(r); ok {
			t, err := s.expenses.Tail(r.Context(), n)
			if err != nil {
				writeError(w, err)
				return
			}
			writeTable(w, t)
			return
		}
		t, err := s.expenses.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeTable(w, t)

	case http.MethodPost:
		s.handleCreateExpense(w, r)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
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
	paid, err := core.ParseYesNo(r.Form.Get("pago"))
	if err != nil {
		writeError(w, err)
		return
	}

	installments := 1
	if v := strings.TrimSpace(r.Form.Get("parcelas")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, core.ErrInvalidInstallments)
			return
		}
		installments = n
	}

	expense := core.Expense{
		Date:         date,
		Name:         sanitizeInput(r.Form.Get("despesa")),
		Amount:       amount,
		Kind:         sanitizeInput(r.Form.Get("tipo")),
		Payment:      sanitizeInput(r.Form.Get("pagamento")),
		Installments: installments,
		Invoice:      invoice,
		Paid:         paid,
		Comment:      sanitizeInput(r.Form.Get("comentario")),
	}

	stored, err := s.expenses.Add(r.Context(), expense)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"id":      stored.ID,
		"data":    stored.Date.String(),
		"despesa": stored.Name,
		"valor":   stored.Amount.String(),
		"pago":    string(stored.Paid),
	})
}

// handleExpenseDelete removes an expense by row position.
func (s *Server) handleExpenseDelete(w http.ResponseWriter, r *http.Request) {
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
	if err := s.expenses.Delete(r.Context(), row); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
