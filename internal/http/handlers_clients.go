package http

import (
	"net/http"

	"gestao/internal/core"
)

type clientResponse struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Cadastro string `json:"cadastro"`
}

// handleClients lists registered clients on GET and registers one on POST.
func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		list, err := s.clients.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		out := make([]clientResponse, 0, len(list))
		for _, c := range list {
			out = append(out, clientResponse{
				Nome:     c.Name,
				CNPJ:     c.TaxID,
				Endereco: c.Address,
				Telefone: c.Phone,
				Cadastro: c.RegisteredAt.Format("02/01/2006 15:04"),
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"clientes": out,
			"count":    len(out),
		})

	case http.MethodPost:
		s.handleRegisterClient(w, r)

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleRegisterClient(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	client := core.Client{
		Name:    sanitizeInput(r.Form.Get("nome")),
		TaxID:   sanitizeInput(r.Form.Get("cnpj")),
		Address: sanitizeInput(r.Form.Get("endereco")),
		Phone:   sanitizeInput(r.Form.Get("telefone")),
	}

	stored, err := s.clients.Register(r.Context(), client)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"nome": stored.Name,
		"cnpj": stored.TaxID,
	})
}

// handleClientUpdate edits the first client matching the tax id. Empty
// fields are left untouched.
func (s *Server) handleClientUpdate(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	taxID := sanitizeInput(r.Form.Get("cnpj"))
	if taxID == "" {
		writeError(w, core.ErrEmptyTaxID)
		return
	}
	err := s.clients.Update(r.Context(), taxID,
		sanitizeInput(r.Form.Get("nome")),
		sanitizeInput(r.Form.Get("endereco")),
		sanitizeInput(r.Form.Get("telefone")))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// handleClientDelete removes the first client matching the tax id.
func (s *Server) handleClientDelete(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	taxID := sanitizeInput(r.Form.Get("cnpj"))
	if taxID == "" {
		writeError(w, core.ErrEmptyTaxID)
		return
	}
	if err := s.clients.Delete(r.Context(), taxID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
