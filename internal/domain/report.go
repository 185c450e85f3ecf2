package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportPeriod string

const (
	ReportPeriodMonthly ReportPeriod = "monthly"
	ReportPeriodWeekly  ReportPeriod = "weekly"
	ReportPeriodCustom  ReportPeriod = "custom"
)

// ReportWindow is a closed date range; both Start and End are included.
type ReportWindow struct {
	Period ReportPeriod `json:"period"`
	Start  time.Time    `json:"periodStart"`
	End    time.Time    `json:"periodEnd"`
}

// ReportSummary aggregates an account's transactions over a window.
type ReportSummary struct {
	TotalIncome       decimal.Decimal `json:"totalIncome"`
	TotalExpense      decimal.Decimal `json:"totalExpense"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	TotalTransactions int64           `json:"totalTransactions"`
}
