package controllers

import (
	"encoding/json"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/stripeboard/stripeboard/internal/pkg/analytics"
	"github.com/stripeboard/stripeboard/internal/pkg/stripe"
)

// HandleAnalytics renders the 30-day revenue report. A provider failure is
// caught once and shown as an inline banner; metrics fall back to zero and
// the chart to its no-data placeholder.
func HandleAnalytics(c *fiber.Ctx) error {
	var banner string

	report, err := analyticsService.Report()
	if err != nil {
		banner = "Error fetching Stripe revenue data: " + stripe.UserMessage(err)
		report = &analytics.Report{}
	}

	dates, revenue, counts := chartSeries(report)

	return c.Render("analytics", fiber.Map{
		"Layout":       layout(c, "analytics", "Revenue Analytics"),
		"Error":        banner,
		"Report":       report,
		"ChartDates":   dates,
		"ChartRevenue": revenue,
		"ChartCounts":  counts,
	}, "layouts/main")
}

// chartSeries encodes the per-day aggregates as JSON literals for the chart
// script: dates, revenue in major units, and transaction counts.
func chartSeries(report *analytics.Report) (template.JS, template.JS, template.JS) {
	dates := make([]string, 0, len(report.Days))
	revenue := make([]float64, 0, len(report.Days))
	counts := make([]int, 0, len(report.Days))

	for _, day := range report.Days {
		dates = append(dates, day.Date)
		revenue = append(revenue, float64(day.Revenue)/100)
		counts = append(counts, day.Count)
	}

	return jsonJS(dates), jsonJS(revenue), jsonJS(counts)
}

func jsonJS(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("[]")
	}
	return template.JS(b)
}
