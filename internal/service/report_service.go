package service

import (
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// ReportService derives windowed financial summaries from the transaction
// log; it never consults the accumulator
type ReportService struct {
	accountRepo     domain.AccountRepository
	transactionRepo domain.TransactionRepository
}

// NewReportService creates a new ReportService
func NewReportService(accountRepo domain.AccountRepository, transactionRepo domain.TransactionRepository) *ReportService {
	return &ReportService{accountRepo: accountRepo, transactionRepo: transactionRepo}
}

// ReportQuery carries the caller's raw period specification. Zero values mean
// "not provided".
type ReportQuery struct {
	Period    string
	Month     int
	Year      int
	StartDate string
	EndDate   string
}

// ReportResult holds an account, the resolved window, and its summary
type ReportResult struct {
	Account *domain.Account       `json:"account"`
	Period  *domain.ReportWindow  `json:"period"`
	Summary *domain.ReportSummary `json:"summary"`
}

// GetReport resolves the requested period and sums the account's
// transactions over it. A window with no transactions yields all-zero
// totals.
func (s *ReportService) GetReport(userID uuid.UUID, accountID int32, query ReportQuery) (*ReportResult, error) {
	account, err := assertOwnership(s.accountRepo, accountID, userID)
	if err != nil {
		return nil, err
	}

	window, err := ResolvePeriod(query, time.Now())
	if err != nil {
		return nil, err
	}

	summary, err := s.transactionRepo.SummarizeRange(accountID, window.Start, window.End)
	if err != nil {
		return nil, err
	}

	return &ReportResult{Account: account, Period: window, Summary: summary}, nil
}

// ResolvePeriod turns a raw period specification into a closed date range.
//
//   - monthly (default): first through last calendar day of the month,
//     defaulting to the current month and year
//   - weekly: explicit start date, end = start + 6 days
//   - custom: explicit start and end dates, used verbatim
func ResolvePeriod(query ReportQuery, now time.Time) (*domain.ReportWindow, error) {
	period := domain.ReportPeriod(query.Period)
	if query.Period == "" {
		period = domain.ReportPeriodMonthly
	}

	switch period {
	case domain.ReportPeriodMonthly:
		month := int(now.Month())
		if query.Month != 0 {
			month = query.Month
		}
		year := now.Year()
		if query.Year != 0 {
			year = query.Year
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, -1)
		return &domain.ReportWindow{Period: period, Start: start, End: end}, nil

	case domain.ReportPeriodWeekly:
		if query.StartDate == "" {
			return nil, domain.Validation("startDate is required for weekly reports")
		}
		start, err := time.Parse(dateLayout, query.StartDate)
		if err != nil {
			return nil, domain.Validation("invalid startDate format")
		}
		return &domain.ReportWindow{Period: period, Start: start, End: start.AddDate(0, 0, 6)}, nil

	case domain.ReportPeriodCustom:
		if query.StartDate == "" || query.EndDate == "" {
			return nil, domain.Validation("startDate and endDate are required for custom reports")
		}
		start, err := time.Parse(dateLayout, query.StartDate)
		if err != nil {
			return nil, domain.Validation("invalid startDate format")
		}
		end, err := time.Parse(dateLayout, query.EndDate)
		if err != nil {
			return nil, domain.Validation("invalid endDate format")
		}
		return &domain.ReportWindow{Period: period, Start: start, End: end}, nil

	default:
		return nil, domain.ErrUnknownPeriod
	}
}
