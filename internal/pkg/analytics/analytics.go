// Package analytics aggregates the trailing 30 days of succeeded payments
// into daily revenue/volume series and summary metrics.
package analytics

import (
	"sort"
	"time"

	"github.com/stripeboard/stripeboard/app/models"
)

const (
	windowDays  = 30
	recordLimit = 100
)

// API is the slice of the Stripe boundary the analytics view needs.
type API interface {
	ListPaymentIntents(since time.Time, limit int64) ([]models.PaymentRecord, error)
}

// DayStat is one calendar day's succeeded-payment aggregate. Revenue is in
// minor units.
type DayStat struct {
	Date    string
	Revenue int64
	Count   int
}

// Report holds the window's aggregates. Monetary values are minor units;
// formatting to major units happens at render time.
type Report struct {
	Days            []DayStat
	TotalRevenue    int64
	TotalCount      int
	BusiestDayCount int
	BestDayRevenue  int64
}

// HasData reports whether any succeeded payment fell into the window.
func (r *Report) HasData() bool {
	return r.TotalCount > 0
}

// AverageTransaction returns the mean succeeded amount in major units, 0
// when there were no transactions.
func (r *Report) AverageTransaction() float64 {
	if r.TotalCount == 0 {
		return 0
	}
	return float64(r.TotalRevenue) / 100 / float64(r.TotalCount)
}

// TransactionsPerDay divides the total count by the fixed 30-day window, not
// by the number of days that had data.
func (r *Report) TransactionsPerDay() float64 {
	return float64(r.TotalCount) / windowDays
}

// TotalRevenueMajor returns the window revenue in major units.
func (r *Report) TotalRevenueMajor() float64 {
	return float64(r.TotalRevenue) / 100
}

// BestDayRevenueMajor returns the best single day's revenue in major units.
func (r *Report) BestDayRevenueMajor() float64 {
	return float64(r.BestDayRevenue) / 100
}

// Service recomputes the report fresh on every view load.
type Service struct {
	api API
	now func() time.Time
}

func NewService(api API) *Service {
	return &Service{api: api, now: time.Now}
}

// Report fetches up to 100 payment records created in the trailing 30 days,
// keeps the succeeded ones and aggregates them by local calendar date.
func (s *Service) Report() (*Report, error) {
	since := s.now().Add(-windowDays * 24 * time.Hour).Truncate(time.Second)

	records, err := s.api.ListPaymentIntents(since, recordLimit)
	if err != nil {
		return nil, err
	}
	return buildReport(records), nil
}

func buildReport(records []models.PaymentRecord) *Report {
	byDate := make(map[string]*DayStat)
	report := &Report{}

	for i := range records {
		record := &records[i]
		if !record.Succeeded() {
			continue
		}

		key := record.DateKey()
		day, ok := byDate[key]
		if !ok {
			day = &DayStat{Date: key}
			byDate[key] = day
		}
		day.Revenue += record.Amount
		day.Count++

		report.TotalRevenue += record.Amount
		report.TotalCount++
	}

	report.Days = make([]DayStat, 0, len(byDate))
	for _, day := range byDate {
		report.Days = append(report.Days, *day)
		if day.Count > report.BusiestDayCount {
			report.BusiestDayCount = day.Count
		}
		if day.Revenue > report.BestDayRevenue {
			report.BestDayRevenue = day.Revenue
		}
	}
	sort.Slice(report.Days, func(i, j int) bool {
		return report.Days[i].Date < report.Days[j].Date
	})

	return report
}
