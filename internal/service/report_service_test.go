package service

import (
	"errors"
	"testing"
	"time"

	"github.com/bukukas/bukukas-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestResolvePeriod_MonthlyExplicit(t *testing.T) {
	window, err := ResolvePeriod(ReportQuery{Period: "monthly", Month: 6, Year: 2024}, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	wantStart := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	if !window.Start.Equal(wantStart) {
		t.Errorf("Expected start %s, got %s", wantStart, window.Start)
	}
	if !window.End.Equal(wantEnd) {
		t.Errorf("Expected end %s, got %s", wantEnd, window.End)
	}
}

func TestResolvePeriod_MonthlyDefaultsToCurrentMonth(t *testing.T) {
	now := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

	// Empty period means monthly
	window, err := ResolvePeriod(ReportQuery{}, now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if window.Period != domain.ReportPeriodMonthly {
		t.Errorf("Expected monthly period, got %s", window.Period)
	}
	if !window.Start.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected start 2024-02-01, got %s", window.Start)
	}
	// 2024 is a leap year
	if !window.End.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected end 2024-02-29, got %s", window.End)
	}
}

func TestResolvePeriod_Weekly(t *testing.T) {
	window, err := ResolvePeriod(ReportQuery{Period: "weekly", StartDate: "2024-06-05"}, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !window.Start.Equal(time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected start 2024-06-05, got %s", window.Start)
	}
	// Seven calendar days inclusive
	if !window.End.Equal(time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected end 2024-06-11, got %s", window.End)
	}
}

func TestResolvePeriod_WeeklyMissingStartDate(t *testing.T) {
	_, err := ResolvePeriod(ReportQuery{Period: "weekly"}, time.Now())
	if domain.KindOf(err) != domain.KindValidation {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestResolvePeriod_Custom(t *testing.T) {
	window, err := ResolvePeriod(ReportQuery{
		Period:    "custom",
		StartDate: "2024-01-15",
		EndDate:   "2024-03-20",
	}, time.Now())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !window.Start.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected start 2024-01-15, got %s", window.Start)
	}
	if !window.End.Equal(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected end 2024-03-20, got %s", window.End)
	}
}

func TestResolvePeriod_CustomMissingDates(t *testing.T) {
	cases := []ReportQuery{
		{Period: "custom"},
		{Period: "custom", StartDate: "2024-01-15"},
		{Period: "custom", EndDate: "2024-03-20"},
	}
	for _, query := range cases {
		_, err := ResolvePeriod(query, time.Now())
		if domain.KindOf(err) != domain.KindValidation {
			t.Errorf("Expected validation error for %+v, got %v", query, err)
		}
	}
}

func TestResolvePeriod_MalformedDate(t *testing.T) {
	_, err := ResolvePeriod(ReportQuery{Period: "weekly", StartDate: "05/06/2024"}, time.Now())
	if domain.KindOf(err) != domain.KindValidation {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestResolvePeriod_UnknownPeriod(t *testing.T) {
	_, err := ResolvePeriod(ReportQuery{Period: "quarterly"}, time.Now())
	if !errors.Is(err, domain.ErrUnknownPeriod) {
		t.Errorf("Expected ErrUnknownPeriod, got %v", err)
	}
}

func TestGetReport_MonthlySummary(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")
	operations := f.categoryByName(t, "Operations")

	_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(100000),
		Type:            domain.TransactionTypeIncome,
		TransactionDate: time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	_, err = f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      operations.ID,
		Amount:          decimal.NewFromInt(30000),
		Type:            domain.TransactionTypeExpense,
		TransactionDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	// Outside the requested month, must not count
	_, err = f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
		CategoryID:      sales.ID,
		Amount:          decimal.NewFromInt(999999),
		Type:            domain.TransactionTypeIncome,
		TransactionDate: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	reportService := NewReportService(f.accounts, f.txRepo)
	result, err := reportService.GetReport(f.userID, f.account.ID, ReportQuery{
		Period: "monthly",
		Month:  6,
		Year:   2024,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.Summary.TotalIncome.Equal(decimal.NewFromInt(100000)) {
		t.Errorf("Expected total income 100000, got %s", result.Summary.TotalIncome)
	}
	if !result.Summary.TotalExpense.Equal(decimal.NewFromInt(30000)) {
		t.Errorf("Expected total expense 30000, got %s", result.Summary.TotalExpense)
	}
	if !result.Summary.NetProfit.Equal(decimal.NewFromInt(70000)) {
		t.Errorf("Expected net profit 70000, got %s", result.Summary.NetProfit)
	}
	if result.Summary.TotalTransactions != 2 {
		t.Errorf("Expected 2 transactions, got %d", result.Summary.TotalTransactions)
	}
}

func TestGetReport_WeeklyBoundsInclusive(t *testing.T) {
	f := newTransactionFixture(t)
	sales := f.categoryByName(t, "Sales")

	// On the start day, on the end day, and one day past the window
	for _, date := range []time.Time{
		time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC),
	} {
		_, err := f.service.Create(f.userID, f.account.ID, CreateTransactionInput{
			CategoryID:      sales.ID,
			Amount:          decimal.NewFromInt(1000),
			Type:            domain.TransactionTypeIncome,
			TransactionDate: date,
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	}

	reportService := NewReportService(f.accounts, f.txRepo)
	result, err := reportService.GetReport(f.userID, f.account.ID, ReportQuery{
		Period:    "weekly",
		StartDate: "2024-06-05",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Summary.TotalTransactions != 2 {
		t.Errorf("Expected 2 transactions inside the window, got %d", result.Summary.TotalTransactions)
	}
}

func TestGetReport_EmptyWindowIsZero(t *testing.T) {
	f := newTransactionFixture(t)

	reportService := NewReportService(f.accounts, f.txRepo)
	result, err := reportService.GetReport(f.userID, f.account.ID, ReportQuery{
		Period: "monthly",
		Month:  1,
		Year:   2020,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !result.Summary.TotalIncome.IsZero() || !result.Summary.TotalExpense.IsZero() || !result.Summary.NetProfit.IsZero() {
		t.Errorf("Expected all-zero summary, got %+v", result.Summary)
	}
	if result.Summary.TotalTransactions != 0 {
		t.Errorf("Expected 0 transactions, got %d", result.Summary.TotalTransactions)
	}
}

func TestGetReport_WrongUser(t *testing.T) {
	f := newTransactionFixture(t)

	reportService := NewReportService(f.accounts, f.txRepo)
	_, err := reportService.GetReport(uuid.New(), f.account.ID, ReportQuery{Period: "monthly"})
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("Expected ErrAccountNotFound, got %v", err)
	}
}
