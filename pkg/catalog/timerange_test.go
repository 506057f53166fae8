package catalog

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTimeRange(t *testing.T) {
	tests := map[string]TimeRange{
		"week":   RangeWeek,
		"Month":  RangeMonth,
		"year":   RangeYear,
		"":       RangeYear,
		"decade": RangeYear,
	}
	for in, want := range tests {
		if got := ParseTimeRange(in); got != want {
			t.Errorf("ParseTimeRange(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAdjustModelsKeepsLengthAndOrder(t *testing.T) {
	records := Fallback()
	before := Fallback()

	for _, tr := range ValidTimeRanges {
		got := AdjustModels(records, tr)
		if len(got) != len(records) {
			t.Fatalf("%s: len = %d, want %d", tr, len(got), len(records))
		}
		for i := range got {
			if got[i].Name != records[i].Name {
				t.Errorf("%s: position %d = %q, want %q", tr, i, got[i].Name, records[i].Name)
			}
		}
	}

	if diff := cmp.Diff(before, records); diff != "" {
		t.Errorf("input mutated (-want +got):\n%s", diff)
	}
}

func TestAdjustModelsScaling(t *testing.T) {
	records := []ModelRecord{{Name: "m", Tokens: 365, Change: 10}}

	year := AdjustModels(records, RangeYear)
	if year[0].Tokens != 365 || year[0].Change != 10 {
		t.Errorf("year = %+v, want unchanged", year[0])
	}

	week := AdjustModels(records, RangeWeek)
	if week[0].Tokens != 7 {
		t.Errorf("week tokens = %v, want 7", week[0].Tokens)
	}
	wantChange := math.Round(10*math.Sqrt(7.0/365)*100) / 100
	if week[0].Change != wantChange {
		t.Errorf("week change = %v, want %v", week[0].Change, wantChange)
	}

	month := AdjustModels(records, RangeMonth)
	if month[0].Tokens != 30 {
		t.Errorf("month tokens = %v, want 30", month[0].Tokens)
	}
}

func TestAdjustModelsDeterministic(t *testing.T) {
	a := AdjustModels(Fallback(), RangeMonth)
	b := AdjustModels(Fallback(), RangeMonth)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("not deterministic:\n%s", diff)
	}
}

func TestAdjustModelsEmpty(t *testing.T) {
	if got := AdjustModels(nil, RangeWeek); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestAdjustApps(t *testing.T) {
	apps := []AppRecord{{Name: "a", Tokens: 30, Change: 4}, {Name: "b", Tokens: 60, Change: -4}}

	today := AdjustApps(apps, FrameToday)
	if today[0].Tokens != 1 || today[1].Tokens != 2 {
		t.Errorf("today = %+v", today)
	}
	week := AdjustApps(apps, FrameWeek)
	if week[0].Tokens != 7 || week[1].Name != "b" {
		t.Errorf("week = %+v", week)
	}
	month := AdjustApps(apps, FrameMonth)
	if diff := cmp.Diff(apps, month); diff != "" {
		t.Errorf("month should be unchanged:\n%s", diff)
	}
	if apps[0].Tokens != 30 {
		t.Error("input mutated")
	}
}

func TestParseAppTimeFrame(t *testing.T) {
	tests := []struct {
		in   string
		want AppTimeFrame
		ok   bool
	}{
		{"Today", FrameToday, true},
		{"week", FrameWeek, true},
		{"this month", FrameMonth, true},
		{"", "", false},
		{"year", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAppTimeFrame(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseAppTimeFrame(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestChartSeries(t *testing.T) {
	tests := []struct {
		tr     TimeRange
		points int
		first  string
	}{
		{RangeWeek, 7, "Mon"},
		{RangeMonth, 30, "1"},
		{RangeYear, 12, "Jan"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tr), func(t *testing.T) {
			chart := ChartSeries(tt.tr)
			if len(chart.Labels) != tt.points {
				t.Fatalf("labels = %d, want %d", len(chart.Labels), tt.points)
			}
			if chart.Labels[0] != tt.first {
				t.Errorf("first label = %q, want %q", chart.Labels[0], tt.first)
			}
			if len(chart.Series) == 0 {
				t.Fatal("no series")
			}
			for _, s := range chart.Series {
				if len(s.Values) != tt.points {
					t.Errorf("series %s has %d values, want %d", s.Name, len(s.Values), tt.points)
				}
				for _, v := range s.Values {
					if v <= 0 {
						t.Errorf("series %s has non-positive value %v", s.Name, v)
					}
				}
			}
			if diff := cmp.Diff(chart, ChartSeries(tt.tr)); diff != "" {
				t.Errorf("chart not deterministic:\n%s", diff)
			}
		})
	}
}

func TestChartLabelsAreCopies(t *testing.T) {
	c := ChartSeries(RangeWeek)
	c.Labels[0] = "changed"
	if ChartSeries(RangeWeek).Labels[0] != "Mon" {
		t.Error("chart labels share backing storage")
	}
}
