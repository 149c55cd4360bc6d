package http

import (
	"net/http"

	"gestao/internal/report"
)

// handleSummary returns the dashboard aggregates for the requested year:
// the scalar totals plus the twelve-month inflow and outflow series.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	year := parseYearParam(r)

	summary, err := s.reports.Summary(r.Context(), year)
	if err != nil {
		writeError(w, err)
		return
	}
	flow, err := s.reports.MonthlyFlow(r.Context(), year)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ano":            year,
		"meses":          report.MonthLabels,
		"entradas":       flow.Inflow,
		"saidas":         flow.Outflow,
		"total_entradas": summary.TotalInflow.String(),
		"total_saidas":   summary.TotalOutflow.String(),
		"saldo_cents":    summary.NetBalance,
		"vendas":         summary.SalesCount,
		"despesas":       summary.ExpenseCount,
	})
}

// handleYears returns the selectable years, most recent first.
func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	years, err := s.reports.Years(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"anos": years})
}
