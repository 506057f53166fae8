package catalog

import (
	"math"
	"strconv"

	"github.com/samber/lo"
)

// TimeRange selects the window the model ranking is shown for.
type TimeRange string

// Time ranges.
const (
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
)

// DefaultTimeRange is used for empty or unknown input.
const DefaultTimeRange = RangeYear

// ValidTimeRanges lists the time ranges in ascending order.
var ValidTimeRanges = []TimeRange{RangeWeek, RangeMonth, RangeYear}

// ParseTimeRange returns the matching range or DefaultTimeRange.
func ParseTimeRange(s string) TimeRange {
	for _, tr := range ValidTimeRanges {
		if equalFold(string(tr), s) {
			return tr
		}
	}
	return DefaultTimeRange
}

// Days returns the window length in days.
func (tr TimeRange) Days() int {
	switch tr {
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	default:
		return 365
	}
}

// Share returns the fraction of a year covered by the range.
func (tr TimeRange) Share() float64 {
	return float64(tr.Days()) / 365
}

// Label returns the heading used for the range.
func (tr TimeRange) Label() string {
	switch tr {
	case RangeWeek:
		return "This Week"
	case RangeMonth:
		return "This Month"
	default:
		return "This Year"
	}
}

// AdjustModels rescales records to tr. Token volume is scaled by the share of
// a year and the change percentage by its square root. The result has the
// same length and order as records, which is left untouched.
func AdjustModels(records []ModelRecord, tr TimeRange) []ModelRecord {
	share := tr.Share()
	return lo.Map(records, func(r ModelRecord, _ int) ModelRecord {
		r.Tokens = round2(r.Tokens * share)
		r.Change = round2(r.Change * math.Sqrt(share))
		return r
	})
}

// AppTimeFrame selects the window of the top-apps table.
type AppTimeFrame string

// App time frames.
const (
	FrameToday AppTimeFrame = "Today"
	FrameWeek  AppTimeFrame = "This Week"
	FrameMonth AppTimeFrame = "This Month"
)

// ValidAppTimeFrames lists the app time frames in ascending order.
var ValidAppTimeFrames = []AppTimeFrame{FrameToday, FrameWeek, FrameMonth}

// ParseAppTimeFrame matches s against the frame names and the short forms
// "today", "week" and "month". Unknown input yields "" and false.
func ParseAppTimeFrame(s string) (AppTimeFrame, bool) {
	switch {
	case equalFold(s, string(FrameToday)), equalFold(s, "today"), equalFold(s, "day"):
		return FrameToday, true
	case equalFold(s, string(FrameWeek)), equalFold(s, "week"):
		return FrameWeek, true
	case equalFold(s, string(FrameMonth)), equalFold(s, "month"):
		return FrameMonth, true
	}
	return "", false
}

// Share returns the fraction of a month covered by the frame.
func (f AppTimeFrame) Share() float64 {
	switch f {
	case FrameToday:
		return 1.0 / 30
	case FrameWeek:
		return 7.0 / 30
	default:
		return 1
	}
}

// AdjustApps rescales monthly app records to f. Like AdjustModels it keeps
// length and order and does not modify apps.
func AdjustApps(apps []AppRecord, f AppTimeFrame) []AppRecord {
	share := f.Share()
	return lo.Map(apps, func(a AppRecord, _ int) AppRecord {
		a.Tokens = round2(a.Tokens * share)
		a.Change = round2(a.Change * math.Sqrt(share))
		return a
	})
}

// Series is one named line of a chart.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Chart is a token-volume chart: one label per point and one value per label
// in every series.
type Chart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}

// chartBase is the yearly token volume per provider, in billions.
var chartBase = []struct {
	name  string
	total float64
}{
	{string(ProviderOpenAI), 420},
	{string(ProviderAnthropic), 310},
	{string(ProviderGoogle), 260},
	{string(ProviderMeta), 140},
	{string(ProviderMistral), 90},
	{string(ProviderOther), 180},
}

var (
	weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	monthLabels   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
)

// ChartSeries returns the reference token chart for tr: 7 daily points for a
// week, 30 for a month and 12 monthly points for a year. The output depends
// only on tr.
func ChartSeries(tr TimeRange) Chart {
	labels := chartLabels(tr)
	points := float64(len(labels))
	share := tr.Share()

	series := make([]Series, 0, len(chartBase))
	for k, base := range chartBase {
		perPoint := base.total * share / points
		values := make([]float64, len(labels))
		for i := range values {
			wave := 1 + 0.15*math.Sin(float64(i)*0.9+float64(k))
			values[i] = round2(perPoint * wave)
		}
		series = append(series, Series{Name: base.name, Values: values})
	}
	return Chart{Labels: labels, Series: series}
}

func chartLabels(tr TimeRange) []string {
	switch tr {
	case RangeWeek:
		return append([]string(nil), weekdayLabels...)
	case RangeMonth:
		labels := make([]string, 30)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
		return labels
	default:
		return append([]string(nil), monthLabels...)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
