// Package sample provides the static figures shown on the dashboard
// overview. Nothing here is fetched; the numbers are fixed.
package sample

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// StatCard is one headline figure at the top of the overview.
type StatCard struct {
	Title string
	Value string
	Note  string
	// Rising marks a note that reports growth.
	Rising bool
}

// Series is a labelled set of bars.
type Series struct {
	Title  string
	Labels []string
	Values []float64
}

// Len returns the number of bars.
func (s Series) Len() int {
	return min(len(s.Labels), len(s.Values))
}

// Max returns the largest value, or 0 for an empty series.
func (s Series) Max() float64 {
	var m float64
	for _, v := range s.Values {
		m = max(m, v)
	}
	return m
}

// Unit selects the business unit shown in the unit performance chart.
type Unit string

const (
	UnitSales     Unit = "sales"
	UnitMarketing Unit = "marketing"
)

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == UnitSales {
		return UnitMarketing
	}
	return UnitSales
}

// Label returns the button text for the unit.
func (u Unit) Label() string {
	if u == UnitMarketing {
		return "Marketing"
	}
	return "Sales"
}

// SalaryPoint is the average monthly salary for one month.
type SalaryPoint struct {
	Month   string
	Average decimal.Decimal
}

// Overview bundles every dataset on the dashboard page.
type Overview struct {
	Cards       []StatCard
	Salaries    []SalaryPoint
	Units       map[Unit]Series
	Income      Series
	Male        int
	Female      int
	Performance []PerformanceRecord
}

// SalarySeries converts the monthly averages into chart bars.
func (o Overview) SalarySeries() Series {
	s := Series{Title: "Salary Statistics"}
	for _, p := range o.Salaries {
		s.Labels = append(s.Labels, p.Month)
		s.Values = append(s.Values, p.Average.InexactFloat64())
	}
	return s
}

// Structure returns the gender split as chart bars.
func (o Overview) Structure() Series {
	return Series{
		Title:  "Employee Structure",
		Labels: []string{"Male", "Female"},
		Values: []float64{float64(o.Male), float64(o.Female)},
	}
}

// Headcount is the total of the employee structure.
func (o Overview) Headcount() int {
	return o.Male + o.Female
}

// Dashboard returns the overview figures.
func Dashboard() Overview {
	avgSalary := decimal.NewFromInt(5850)
	budget := decimal.RequireFromString("1900000")
	o := Overview{
		Salaries: []SalaryPoint{
			{"Jan", decimal.NewFromInt(5500)},
			{"Feb", decimal.NewFromInt(5800)},
			{"Mar", decimal.NewFromInt(6000)},
			{"Apr", decimal.NewFromInt(5900)},
			{"May", decimal.NewFromInt(6200)},
			{"Jun", decimal.NewFromInt(6100)},
		},
		Units: map[Unit]Series{
			UnitSales: {
				Title:  "Sales Performance",
				Labels: []string{"Q1", "Q2", "Q3", "Q4"},
				Values: []float64{25000, 32000, 28000, 35000},
			},
			UnitMarketing: {
				Title:  "Marketing Performance",
				Labels: []string{"Q1", "Q2", "Q3", "Q4"},
				Values: []float64{18000, 22000, 25000, 30000},
			},
		},
		Income: Series{
			Title:  "Income Analysis",
			Labels: []string{"Revenue", "Profit", "Expenses"},
			Values: []float64{60, 25, 15},
		},
		Male:        180,
		Female:      145,
		Performance: performanceRecords(),
	}
	o.Cards = []StatCard{
		{Title: "New Employees", Value: humanize.Comma(24), Note: "+12% from last month", Rising: true},
		{Title: "Total Employees", Value: humanize.Comma(int64(o.Headcount())), Note: "Active workforce"},
		{Title: "Average Salary", Value: Money(avgSalary), Note: "+5.2% this year", Rising: true},
		{Title: "Total Salary Budget", Value: CompactMoney(budget), Note: "Monthly budget"},
	}
	return o
}

// Money formats d as whole dollars with thousands separators.
func Money(d decimal.Decimal) string {
	return "$" + humanize.Comma(d.Round(0).IntPart())
}

// CompactMoney formats d with an SI suffix, e.g. $1.9M.
func CompactMoney(d decimal.Decimal) string {
	s := humanize.SIWithDigits(d.InexactFloat64(), 1, "")
	return "$" + strings.ReplaceAll(s, " ", "")
}
