package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// DefaultLimit is the number of rows shown when no limit is given.
const DefaultLimit = 20

// FilterCategory keeps the records in category. CategoryAll and "" keep
// everything.
func FilterCategory(records []ModelRecord, category Category) []ModelRecord {
	if category == "" || category == CategoryAll {
		return slices.Clone(records)
	}
	return lo.Filter(records, func(r ModelRecord, _ int) bool {
		return r.Category == category
	})
}

// Top returns the first n records. A non-positive n means DefaultLimit.
func Top[T any](records []T, n int) []T {
	if n <= 0 {
		n = DefaultLimit
	}
	if len(records) <= n {
		return slices.Clone(records)
	}
	return slices.Clone(records[:n])
}

// SortKey orders the ranking table.
type SortKey string

// Sort keys.
const (
	SortRank   SortKey = "rank"
	SortTokens SortKey = "tokens"
	SortValue  SortKey = "value"
)

// ParseSortKey returns the matching key, or SortRank for unknown input.
func ParseSortKey(s string) SortKey {
	for _, k := range []SortKey{SortRank, SortTokens, SortValue} {
		if equalFold(string(k), s) {
			return k
		}
	}
	return SortRank
}

// SortBy returns records ordered by key, highest first. SortRank keeps the
// input order. Ties keep their relative order.
func SortBy(records []ModelRecord, key SortKey) []ModelRecord {
	out := slices.Clone(records)
	switch key {
	case SortTokens:
		slices.SortStableFunc(out, func(a, b ModelRecord) int {
			return cmp.Compare(b.Tokens, a.Tokens)
		})
	case SortValue:
		slices.SortStableFunc(out, func(a, b ModelRecord) int {
			return cmp.Compare(ParseValue(b.Value), ParseValue(a.Value))
		})
	}
	return out
}

// RankedModel is a record with its 1-based position in a table.
type RankedModel struct {
	Rank int `json:"rank"`
	ModelRecord
}

// Rank numbers records in order.
func Rank(records []ModelRecord) []RankedModel {
	return lo.Map(records, func(r ModelRecord, i int) RankedModel {
		return RankedModel{Rank: i + 1, ModelRecord: r}
	})
}

// ParseValue converts a value bucket such as "$500M+" to dollars.
// Unparseable input yields 0.
func ParseValue(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "+")
	return parseScaled(s)
}

// ParseTokens converts a token figure such as "1.5B" or "750M" to billions.
func ParseTokens(s string) float64 {
	return parseScaled(strings.TrimSpace(s)) / 1e9
}

func parseScaled(s string) float64 {
	if s == "" {
		return 0
	}
	mult := 1.0
	switch strings.ToUpper(s[len(s)-1:]) {
	case "K":
		mult = 1e3
	case "M":
		mult = 1e6
	case "B":
		mult = 1e9
	case "T":
		mult = 1e12
	}
	if mult != 1 {
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v * mult
}

// FormatTokens renders a token volume in billions, e.g. "1.5B".
func FormatTokens(billions float64) string {
	switch {
	case billions >= 1000:
		return strconv.FormatFloat(billions/1000, 'f', 1, 64) + "T"
	case billions >= 1 || billions == 0:
		return strconv.FormatFloat(billions, 'f', 1, 64) + "B"
	default:
		return strconv.FormatFloat(billions*1000, 'f', 1, 64) + "M"
	}
}

// FormatChange renders a signed percentage, e.g. "+3.2%".
func FormatChange(pct float64) string {
	return fmt.Sprintf("%+.1f%%", pct)
}

// ViewOptions selects what BuildView renders.
type ViewOptions struct {
	TimeRange TimeRange
	Category  Category
	// AppFrame adjusts the apps table when set; otherwise the monthly table
	// is cut to Limit.
	AppFrame AppTimeFrame
	Sort     SortKey
	Limit    int
}

// View is everything a rankings screen shows.
type View struct {
	// Models is the full reconciled and time-adjusted list.
	Models []ModelRecord
	// Filtered is Models filtered by category, sorted and cut to the limit.
	Filtered []ModelRecord
	Chart    Chart
	Apps     []AppRecord
	Live     bool
	Loading  bool
	Err      error
}

// BuildView reconciles src and applies opts.
func BuildView(src Source, opts ViewOptions) View {
	tr := opts.TimeRange
	if tr == "" {
		tr = DefaultTimeRange
	}

	models := AdjustModels(Reconcile(src), tr)
	filtered := Top(SortBy(FilterCategory(models, opts.Category), opts.Sort), opts.Limit)

	apps := FallbackApps()
	if opts.AppFrame != "" {
		apps = AdjustApps(apps, opts.AppFrame)
	} else {
		apps = Top(apps, opts.Limit)
	}

	return View{
		Models:   models,
		Filtered: filtered,
		Chart:    ChartSeries(tr),
		Apps:     apps,
		Live:     src.IsLive(),
		Loading:  src.State() == StateLoading,
		Err:      src.Err(),
	}
}
