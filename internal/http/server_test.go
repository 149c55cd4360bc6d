package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gestao/internal/clients"
	"gestao/internal/ledger"
	"gestao/internal/report"
	"gestao/internal/schedule"
	"gestao/internal/store/memory"
)

func newTestServer() *Server {
	st := memory.New()
	return NewServer(":0", Services{
		Sales:    ledger.NewSalesService(st, nil),
		Expenses: ledger.NewExpensesService(st, nil),
		Clients:  clients.NewService(st, nil),
		Agenda:   schedule.NewService(st, nil),
		Reports:  report.NewAggregator(st),
	})
}

func postForm(t *testing.T, srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Server.Handler.ServeHTTP(rr, req)
	return rr
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Server.Handler.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v (%s)", err, rr.Body.String())
	}
	return body
}

func saleForm() url.Values {
	return url.Values{
		"data":      {"15/01/2024"},
		"cliente":   {"ACME"},
		"descricao": {"Consultoria"},
		"tipo":      {"Serviço"},
		"valor":     {"100.00"},
		"pagamento": {"Pix"},
		"documento": {"PJ"},
		"nf":        {"Sim"},
		"recebido":  {"Sim"},
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer()
	rr := get(t, srv, "/healthz")
	if rr.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", rr.Code)
	}
	body := decode(t, rr)
	if body["status"] != "ok" {
		t.Fatalf("healthz body=%v", body)
	}
}

func TestCreateAndListSales(t *testing.T) {
	srv := newTestServer()

	rr := postForm(t, srv, "/vendas", saleForm())
	if rr.Code != http.StatusCreated {
		t.Fatalf("create sale status=%d body=%s", rr.Code, rr.Body.String())
	}
	created := decode(t, rr)
	if created["id"] == "" {
		t.Fatal("expected generated id")
	}
	if created["valor"] != "100.00" {
		t.Fatalf("valor=%v", created["valor"])
	}

	rr = get(t, srv, "/vendas")
	if rr.Code != http.StatusOK {
		t.Fatalf("list status=%d", rr.Code)
	}
	body := decode(t, rr)
	if body["count"].(float64) != 1 {
		t.Fatalf("count=%v", body["count"])
	}
}

func TestCreateSaleValidation(t *testing.T) {
	srv := newTestServer()

	form := saleForm()
	form.Set("valor", "abc")
	if rr := postForm(t, srv, "/vendas", form); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad amount status=%d", rr.Code)
	}

	form = saleForm()
	form.Set("data", "2024-01-15")
	if rr := postForm(t, srv, "/vendas", form); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("iso date status=%d", rr.Code)
	}

	form = saleForm()
	form.Set("recebido", "talvez")
	if rr := postForm(t, srv, "/vendas", form); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad status flag status=%d", rr.Code)
	}

	rr := get(t, srv, "/vendas")
	if decode(t, rr)["count"].(float64) != 0 {
		t.Fatal("rejected sales must not persist")
	}
}

func TestDeleteSale(t *testing.T) {
	srv := newTestServer()
	postForm(t, srv, "/vendas", saleForm())

	rr := postForm(t, srv, "/vendas/delete", url.Values{"row": {"0"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = postForm(t, srv, "/vendas/delete", url.Values{"row": {"0"}})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("delete missing row status=%d", rr.Code)
	}
}

func TestCreateExpense(t *testing.T) {
	srv := newTestServer()

	rr := postForm(t, srv, "/despesas", url.Values{
		"data":      {"10/02/2024"},
		"despesa":   {"Aluguel"},
		"valor":     {"1500,00"},
		"tipo":      {"Fixa"},
		"pagamento": {"Boleto"},
		"parcelas":  {"1"},
		"nf":        {"Sim"},
		"pago":      {"Sim"},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create expense status=%d body=%s", rr.Code, rr.Body.String())
	}
	if decode(t, rr)["valor"] != "1500.00" {
		t.Fatal("comma amount must normalize")
	}
}

func TestClientsLifecycle(t *testing.T) {
	srv := newTestServer()

	rr := postForm(t, srv, "/clientes", url.Values{
		"nome":     {"ACME Ltda"},
		"cnpj":     {"11.222.333/0001-44"},
		"endereco": {"Rua A, 1"},
		"telefone": {"11 99999-0000"},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register status=%d body=%s", rr.Code, rr.Body.String())
	}

	rr = postForm(t, srv, "/clientes/update", url.Values{
		"cnpj": {"11.222.333/0001-44"},
		"nome": {"ACME SA"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update status=%d", rr.Code)
	}

	rr = get(t, srv, "/clientes")
	body := decode(t, rr)
	list := body["clientes"].([]any)
	if len(list) != 1 {
		t.Fatalf("clients=%d", len(list))
	}
	if list[0].(map[string]any)["nome"] != "ACME SA" {
		t.Fatalf("update not applied: %v", list[0])
	}

	rr = postForm(t, srv, "/clientes/update", url.Values{"cnpj": {"nope"}})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("update missing status=%d", rr.Code)
	}

	rr = postForm(t, srv, "/clientes/delete", url.Values{"cnpj": {"11.222.333/0001-44"}})
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status=%d", rr.Code)
	}
}

func TestAgendaCapacity(t *testing.T) {
	srv := newTestServer()

	for i, name := range []string{"A", "B", "C", "D"} {
		rr := postForm(t, srv, "/agenda", url.Values{
			"dia":     {"Segunda"},
			"horario": {"08:00"},
			"cliente": {name},
		})
		if rr.Code != http.StatusCreated {
			t.Fatalf("booking %d status=%d body=%s", i, rr.Code, rr.Body.String())
		}
	}

	rr := postForm(t, srv, "/agenda", url.Values{
		"dia":     {"Segunda"},
		"horario": {"08:00"},
		"cliente": {"E"},
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("full slot status=%d", rr.Code)
	}

	rr = postForm(t, srv, "/agenda/cancel", url.Values{
		"dia":     {"Segunda"},
		"horario": {"08:00"},
		"cliente": {"A"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("cancel status=%d", rr.Code)
	}

	rr = get(t, srv, "/agenda")
	if rr.Code != http.StatusOK {
		t.Fatalf("agenda status=%d", rr.Code)
	}
}

func TestAgendaInvalidDay(t *testing.T) {
	srv := newTestServer()
	rr := postForm(t, srv, "/agenda", url.Values{
		"dia":     {"Domingo"},
		"horario": {"08:00"},
		"cliente": {"A"},
	})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid day status=%d", rr.Code)
	}
}

func TestSummaryAndYears(t *testing.T) {
	srv := newTestServer()

	form := saleForm()
	form.Set("data", "15/01/2024")
	postForm(t, srv, "/vendas", form)

	pending := saleForm()
	pending.Set("data", "20/01/2024")
	pending.Set("valor", "30.00")
	pending.Set("recebido", "Não")
	postForm(t, srv, "/vendas", pending)

	rr := get(t, srv, "/resumo?ano=2024")
	if rr.Code != http.StatusOK {
		t.Fatalf("resumo status=%d body=%s", rr.Code, rr.Body.String())
	}
	body := decode(t, rr)
	entradas := body["entradas"].([]any)
	if len(entradas) != 12 {
		t.Fatalf("entradas buckets=%d", len(entradas))
	}
	if entradas[0].(float64) != 10000 {
		t.Fatalf("january inflow=%v, pending sale must not count", entradas[0])
	}
	if body["vendas"].(float64) != 2 {
		t.Fatalf("sales count=%v, row counts ignore the status flag", body["vendas"])
	}

	rr = get(t, srv, "/anos")
	years := decode(t, rr)["anos"].([]any)
	if len(years) == 0 {
		t.Fatal("expected at least one year")
	}
	if years[0].(float64) != 2024 {
		t.Fatalf("years[0]=%v", years[0])
	}
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer()
	rr := get(t, srv, "/vendas/delete")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d", rr.Code)
	}
	rr = postForm(t, srv, "/resumo", url.Values{})
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("resumo post status=%d", rr.Code)
	}
}
