package http

import (
	"net/http"

	"gestao/internal/core"
)

// handleAgenda returns the weekly grid on GET and books a slot on POST.
func (s *Server) handleAgenda(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		week, err := s.agenda.Week(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"capacidade": core.SlotCapacity,
			"agenda":     week,
		})

	case http.MethodPost:
		booking, ok := s.parseBooking(w, r)
		if !ok {
			return
		}
		if err := s.agenda.Book(r.Context(), booking); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{
			"dia":     string(booking.Weekday),
			"horario": string(booking.Slot),
			"cliente": booking.Client,
		})

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleAgendaCancel frees a slot for a client.
func (s *Server) handleAgendaCancel(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	booking, ok := s.parseBooking(w, r)
	if !ok {
		return
	}
	if err := s.agenda.Cancel(r.Context(), booking); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

func (s *Server) parseBooking(w http.ResponseWriter, r *http.Request) (core.Booking, bool) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return core.Booking{}, false
	}
	day, err := core.ParseWeekday(r.Form.Get("dia"))
	if err != nil {
		writeError(w, err)
		return core.Booking{}, false
	}
	return core.Booking{
		Weekday: day,
		Slot:    core.TimeSlot(sanitizeInput(r.Form.Get("horario"))),
		Client:  sanitizeInput(r.Form.Get("cliente")),
	}, true
}
