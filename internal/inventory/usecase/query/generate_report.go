package query

import (
	"fmt"
	"time"

	"github.com/bookhaven/bookstore-admin/internal/inventory/domain"
)

// GenerateReportQuery carries the report options
type GenerateReportQuery struct {
	Options domain.ReportOptions
}

// GenerateReportHandler handles report generation
type GenerateReportHandler struct {
	repo domain.BookRepository
}

// NewGenerateReportHandler creates a new report handler
func NewGenerateReportHandler(repo domain.BookRepository) *GenerateReportHandler {
	return &GenerateReportHandler{repo: repo}
}

// Handle executes the report query
func (h *GenerateReportHandler) Handle(q GenerateReportQuery) (*domain.Report, error) {
	switch q.Options.SortBy {
	case "", domain.SortByStock, domain.SortByValue, domain.SortByTitle, domain.SortByPrice, domain.SortByUpdated:
	default:
		return nil, fmt.Errorf("unknown sort field %q", q.Options.SortBy)
	}

	switch q.Options.SortOrder {
	case "", domain.SortAsc, domain.SortDesc:
	default:
		return nil, fmt.Errorf("unknown sort order %q", q.Options.SortOrder)
	}

	books, err := h.repo.FindAll(snapshotLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load books: %w", err)
	}

	report := domain.GenerateReport(books, q.Options, time.Now())
	return &report, nil
}
