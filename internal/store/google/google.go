// Package google implements the store over a multi-sheet Google
// spreadsheet: one named sheet per collection.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"google.golang.org/api/googleapi"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"gestao/internal/store"
	"gestao/internal/table"
)

type Store struct {
	svc           *gsheet.Service
	spreadsheetID string
}

var _ store.Store = (*Store)(nil)

// New creates a store against the given spreadsheet using service-account
// credentials resolved from the environment.
func New(ctx context.Context, spreadsheetID string) (*Store, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet id")
	}
	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &Store{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// NewFromEnv reads the spreadsheet id from GOOGLE_SPREADSHEET_ID.
func NewFromEnv(ctx context.Context) (*Store, error) {
	return New(ctx, strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID")))
}

// newSheetsService initializes a Sheets service from service-account
// credentials: GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	inlineJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	credFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inlineJSON == "" && credFile == "" {
		credFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case inlineJSON != "":
		credentialsJSON = []byte(inlineJSON)
	case credFile != "":
		b, err := os.ReadFile(credFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = b
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	return gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
}

func (s *Store) Load(ctx context.Context, c store.Collection) (table.Table, store.Status, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetRange(c.Name)).Context(ctx).Do()
	if err != nil {
		if isMissingSheet(err) {
			return table.New(c.Columns...), store.StatusAbsent, nil
		}
		return table.New(c.Columns...), store.StatusCorrupt, fmt.Errorf("read sheet %s: %w", c.Name, err)
	}
	return valuesToTable(resp.Values).Conform(c.Columns), store.StatusOK, nil
}

func (s *Store) Save(ctx context.Context, c store.Collection, t table.Table) error {
	t = t.Conform(c.Columns)

	if err := s.ensureSheet(ctx, c.Name); err != nil {
		return err
	}
	if _, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetID, sheetRange(c.Name), &gsheet.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear sheet %s: %w", c.Name, err)
	}
	vr := &gsheet.ValueRange{Values: tableToValues(t)}
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, sheetRange(c.Name), vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("write sheet %s: %w", c.Name, err)
	}

	slog.InfoContext(ctx, "Sheet overwritten",
		"sheet", c.Name,
		"rows", t.Len(),
		"spreadsheet_id", s.spreadsheetID)
	return nil
}

// ensureSheet adds the named sheet when the spreadsheet does not have it yet.
func (s *Store) ensureSheet(ctx context.Context, name string) error {
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get spreadsheet metadata: %w", err)
	}
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == name {
			return nil
		}
	}
	req := &gsheet.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheet.Request{{
			AddSheet: &gsheet.AddSheetRequest{
				Properties: &gsheet.SheetProperties{Title: name},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("add sheet %s: %w", name, err)
	}
	slog.InfoContext(ctx, "Sheet created", "sheet", name)
	return nil
}

func sheetRange(name string) string {
	return "'" + name + "'"
}

// isMissingSheet matches the API errors returned when the named range
// cannot be resolved, which is how a never-written collection presents.
func isMissingSheet(err error) bool {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == 404 {
			return true
		}
		if gerr.Code == 400 && strings.Contains(gerr.Message, "Unable to parse range") {
			return true
		}
	}
	return false
}
