package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tulu-g559/talkheal-backend/internal/core/domain"
	portssvc "github.com/tulu-g559/talkheal-backend/internal/core/ports/services"
)

type exportService struct {
	journal portssvc.JournalReaderSvc
}

// NewExportService creates the journal export service. Exports read the
// already-filtered result set and never touch the store beyond that read.
func NewExportService(journal portssvc.JournalReaderSvc) portssvc.ExportSvcFacade {
	return &exportService{journal: journal}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

func (s *exportService) ExportCSV(ctx context.Context, owner string, filter domain.JournalFilter) ([]byte, error) {
	entries, err := s.journal.QueryEntries(ctx, owner, filter)
	if err != nil {
		return nil, err
	}
	return RenderEntriesCSV(entries)
}

func (s *exportService) ExportPDF(ctx context.Context, owner string, filter domain.JournalFilter) ([]byte, error) {
	entries, err := s.journal.QueryEntries(ctx, owner, filter)
	if err != nil {
		return nil, err
	}
	return RenderEntriesPDF(entries)
}

// RenderEntriesCSV serializes entries as UTF-8 CSV with the header
// Date,Sentiment,Entry,Tags. Quoting follows RFC 4180.
func RenderEntriesCSV(entries []domain.JournalEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Date", "Sentiment", "Entry", "Tags"}); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.EntryDate.Format(time.DateOnly),
			string(e.Sentiment),
			e.Text,
			e.Tags,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row for entry %s: %w", e.EntryID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderEntriesPDF serializes entries as a PDF document, one block per entry
// (Date, Sentiment, Tags, then the full text), separated by vertical space.
// The core fonts only cover cp1252; characters outside it are substituted by
// the translator rather than failing the export, so the PDF rendition is not
// a lossless round trip.
func RenderEntriesPDF(entries []domain.JournalEntry) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, e := range entries {
		pdf.CellFormat(0, 10, tr("Date: "+e.EntryDate.Format(time.DateOnly)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr("Sentiment: "+string(e.Sentiment)), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr("Tags: "+e.Tags), "", 1, "L", false, 0, "")
		pdf.MultiCell(0, 10, tr(e.Text), "", "L", false)
		pdf.Ln(10)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
