package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Yes YesNo = "Sim"
	No  YesNo = "Não"
)

const (
	PersonPF = "PF"
	PersonPJ = "PJ"
)

type (
	// YesNo is the paid/received status flag used across the ledgers.
	YesNo string

	// Sale is a single sales ledger entry.
	Sale struct {
		ID          string
		Date        Date
		Client      string
		Description string
		Kind        string // Serviço, Comercial
		Amount      Money
		Payment     string
		Person      string // PF or PJ
		Invoice     YesNo
		Received    YesNo
		Comment     string
	}

	// Expense is a single expense ledger entry.
	Expense struct {
		ID           string
		Date         Date
		Name         string
		Amount       Money
		Kind         string // Fixa, Variável, Impostos, Pessoal
		Payment      string
		Installments int
		Invoice      YesNo
		Paid         YesNo
		Comment      string
	}

	// Client is a CRM record keyed by tax id. The tax id is a natural key:
	// update and delete match the first row carrying it, inserts are unchecked.
	Client struct {
		Name         string
		TaxID        string
		Address      string
		Phone        string
		RegisteredAt time.Time
	}
)

var (
	ErrInvalidStatus       = errors.New("status must be Sim or Não")
	ErrInvalidPerson       = errors.New("person must be PF or PJ")
	ErrEmptyClient         = errors.New("empty client name")
	ErrEmptyName           = errors.New("empty name")
	ErrEmptyTaxID          = errors.New("empty tax id")
	ErrInvalidInstallments = errors.New("installments must be at least 1")
	ErrInvalidWeekday      = errors.New("invalid weekday")
	ErrInvalidSlot         = errors.New("invalid time slot")
	ErrNotFound            = errors.New("record not found")
	ErrSlotFull            = errors.New("schedule slot is full")
)

// ParseYesNo normalizes a cell value into a YesNo flag. It accepts the
// accent-less spelling that older spreadsheets carry.
func ParseYesNo(s string) (YesNo, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sim":
		return Yes, nil
	case "não", "nao":
		return No, nil
	default:
		return "", ErrInvalidStatus
	}
}

func (y YesNo) Valid() bool {
	return y == Yes || y == No
}

// Bool reports whether the flag is affirmative.
func (y YesNo) Bool() bool {
	return y == Yes
}

func (s Sale) Validate() error {
	if err := s.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(s.Client) == "" {
		return ErrEmptyClient
	}
	if err := s.Amount.Validate(); err != nil {
		return err
	}
	if s.Person != PersonPF && s.Person != PersonPJ {
		return ErrInvalidPerson
	}
	if !s.Invoice.Valid() || !s.Received.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Name) == "" {
		return ErrEmptyName
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if e.Installments < 1 {
		return ErrInvalidInstallments
	}
	if !e.Invoice.Valid() || !e.Paid.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(c.TaxID) == "" {
		return ErrEmptyTaxID
	}
	return nil
}
