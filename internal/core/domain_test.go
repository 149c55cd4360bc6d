package core

import (
	"testing"
	"time"
)

func TestParseYesNo(t *testing.T) {
	cases := []struct {
		in   string
		want YesNo
		ok   bool
	}{
		{"Sim", Yes, true},
		{"sim", Yes, true},
		{"Não", No, true},
		{"nao", No, true},
		{" NAO ", No, true},
		{"yes", "", false},
		{"", "", false},
	}
	for i, tc := range cases {
		got, err := ParseYesNo(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("case %d: got %q, %v", i, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestSaleValidate(t *testing.T) {
	good := Sale{
		Date:     NewDate(2024, 1, 15),
		Client:   "Maria",
		Amount:   Money{Cents: 15000},
		Person:   PersonPF,
		Invoice:  No,
		Received: Yes,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Sale{
		{Client: "a", Amount: Money{Cents: 1}, Person: PersonPF, Invoice: Yes, Received: Yes}, // zero date
		{Date: NewDate(2024, 1, 1), Client: "", Amount: Money{Cents: 1}, Person: PersonPF, Invoice: Yes, Received: Yes},
		{Date: NewDate(2024, 1, 1), Client: "a", Amount: Money{Cents: -1}, Person: PersonPF, Invoice: Yes, Received: Yes},
		{Date: NewDate(2024, 1, 1), Client: "a", Amount: Money{Cents: 1}, Person: "XX", Invoice: Yes, Received: Yes},
		{Date: NewDate(2024, 1, 1), Client: "a", Amount: Money{Cents: 1}, Person: PersonPJ, Invoice: "?", Received: Yes},
	}
	for i, s := range bads {
		if err := s.Validate(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{
		Date:         NewDate(2024, 3, 1),
		Name:         "Aluguel",
		Amount:       Money{Cents: 120000},
		Installments: 1,
		Invoice:      Yes,
		Paid:         Yes,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bad := good
	bad.Installments = 0
	if err := bad.Validate(); err != ErrInvalidInstallments {
		t.Fatalf("expected ErrInvalidInstallments, got %v", err)
	}
}

func TestClientValidate(t *testing.T) {
	good := Client{Name: "Clínica Boa Vista", TaxID: "12.345.678/0001-90", RegisteredAt: time.Now()}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Client{Name: "x"}).Validate(); err != ErrEmptyTaxID {
		t.Fatalf("expected ErrEmptyTaxID, got %v", err)
	}
	if err := (Client{TaxID: "x"}).Validate(); err != ErrEmptyName {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestBookingValidate(t *testing.T) {
	good := Booking{Weekday: Segunda, Slot: "09:00", Client: "Ana"}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bads := []Booking{
		{Weekday: "Domingo", Slot: "09:00", Client: "Ana"},
		{Weekday: Segunda, Slot: "12:00", Client: "Ana"}, // lunch gap
		{Weekday: Segunda, Slot: "09:00", Client: ""},
	}
	for i, b := range bads {
		if err := b.Validate(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}
