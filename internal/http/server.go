// Package http exposes the ledgers, the client registry, the weekly agenda
// and the dashboard aggregates as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"gestao/internal/clients"
	"gestao/internal/ledger"
	"gestao/internal/middleware/trace"
	"gestao/internal/report"
	"gestao/internal/schedule"
)

type Server struct {
	http.Server

	sales    *ledger.SalesService
	expenses *ledger.ExpensesService
	clients  *clients.Service
	agenda   *schedule.Service
	reports  *report.Aggregator

	trace        *trace.Middleware
	startedAt    time.Time
	shutdownOnce sync.Once
}

// Services bundles the application services the server fronts.
type Services struct {
	Sales    *ledger.SalesService
	Expenses *ledger.ExpensesService
	Clients  *clients.Service
	Agenda   *schedule.Service
	Reports  *report.Aggregator
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, svc Services) *Server {
	mux := http.NewServeMux()

	s := &Server{
		sales:     svc.Sales,
		expenses:  svc.Expenses,
		clients:   svc.Clients,
		agenda:    svc.Agenda,
		reports:   svc.Reports,
		trace:     trace.NewMiddleware(),
		startedAt: time.Now(),
	}
	s.Server = http.Server{
		Addr:              addr,
		Handler:           s.trace.Middleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/vendas", s.handleSales)
	mux.HandleFunc("/vendas/delete", s.handleSaleDelete)
	mux.HandleFunc("/despesas", s.handleExpenses)
	mux.HandleFunc("/despesas/delete", s.handleExpenseDelete)
	mux.HandleFunc("/clientes", s.handleClients)
	mux.HandleFunc("/clientes/update", s.handleClientUpdate)
	mux.HandleFunc("/clientes/delete", s.handleClientDelete)
	mux.HandleFunc("/agenda", s.handleAgenda)
	mux.HandleFunc("/agenda/cancel", s.handleAgendaCancel)
	mux.HandleFunc("/resumo", s.handleSummary)
	mux.HandleFunc("/anos", s.handleYears)

	return s
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		err = s.Server.Shutdown(ctx)
	})
	return err
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startedAt).String(),
	})
}
