package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/health"
	"github.com/shopspring/decimal"
)

func readings(n int) []health.Reading {
	var rs []health.Reading
	for i := 0; i < n; i++ {
		rs = append(rs, health.Reading{
			Timestamp:   time.Date(2025, 3, 1+i, 8, 0, 0, 0, time.Local),
			Systolic:    110 + i,
			Diastolic:   80,
			Temperature: decimal.RequireFromString("36.6"),
			Glucose:     100,
			VitaminD:    20,
		})
	}
	return rs
}

func TestReportLine(t *testing.T) {
	r := health.Reading{
		Timestamp:   time.Date(2025, 3, 1, 8, 5, 9, 42000, time.Local),
		Systolic:    120,
		Diastolic:   80,
		Temperature: decimal.RequireFromString("36.6"),
		Glucose:     100,
		VitaminD:    20,
	}
	want := "2025-03-01 08:05:09.000042 | Systolic: 120 | Diastolic: 80 | Temp: 36.6°C | Glucose: 100 | Vit D: 20"
	if got := ReportLine(r); got != want {
		t.Errorf("ReportLine() = %q, want %q", got, want)
	}
}

func TestReportText(t *testing.T) {
	testCases := []struct {
		name      string
		count     int
		wantLines int
	}{
		{name: "empty", count: 0, wantLines: 1},
		{name: "one", count: 1, wantLines: 2},
		{name: "eleven", count: 11, wantLines: 11},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text := ReportText("Bob", readings(tc.count), health.DefaultTail)
			lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
			if len(lines) != tc.wantLines {
				t.Fatalf("ReportText() has %d lines, want %d:\n%s", len(lines), tc.wantLines, text)
			}
			if lines[0] != "Health Report for Bob" {
				t.Errorf("ReportText() title = %q", lines[0])
			}
		})
	}

	// the most recent readings are kept.
	lines := ReportLines(readings(11), 10)
	if !strings.Contains(lines[0], "Systolic: 111") || !strings.Contains(lines[9], "Systolic: 120") {
		t.Errorf("ReportLines() did not keep the 10 most recent readings:\n%s", strings.Join(lines, "\n"))
	}
}

func TestHistoryMarkdown(t *testing.T) {
	got := HistoryMarkdown("Bob", readings(11), 10, "Bob_charts.png")

	for _, want := range []string{
		"# Patient: Bob",
		"Showing the last 10 of 11 readings.",
		"2025-03-11 08:00:00",
		"![Charts for Bob](Bob_charts.png)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HistoryMarkdown() does not contain %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "2025-03-01 08:00:00") {
		t.Errorf("HistoryMarkdown() contains the oldest reading:\n%s", got)
	}
}

func TestHistoryMarkdown_Empty(t *testing.T) {
	got := HistoryMarkdown("Alice", nil, 10, "")
	if !strings.Contains(got, "No readings yet.") {
		t.Errorf("HistoryMarkdown() = %q, want a no readings notice", got)
	}
}

func TestHTML(t *testing.T) {
	page, err := HTML("Bob <history>", HistoryMarkdown("Bob", readings(2), 10, "charts.png"))
	if err != nil {
		t.Fatalf("HTML() returned an unexpected error: %v", err)
	}
	got := string(page)
	for _, want := range []string{
		"<title>Bob &lt;history&gt;</title>",
		"<h1>Patient: Bob</h1>",
		"<table>",
		`<img src="charts.png"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HTML() does not contain %q:\n%s", want, got)
		}
	}
}

func TestPatientsMarkdown(t *testing.T) {
	if got := PatientsMarkdown([]string{"Alice", "Bob"}); !strings.Contains(got, "Alice") || !strings.Contains(got, "Bob") {
		t.Errorf("PatientsMarkdown() = %q", got)
	}
	if got := PatientsMarkdown(nil); !strings.Contains(got, "No patient yet") {
		t.Errorf("PatientsMarkdown(nil) = %q", got)
	}
}
