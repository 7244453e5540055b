package domain

import (
	"encoding/json"
	"strings"
	"time"
)

type Metric string

const (
	MetricChannelSummary Metric = "channel_summary"
	MetricTags           Metric = "tags"
	MetricStaff          Metric = "staff"
	MetricResponseTime   Metric = "response_time"
	MetricVolume         Metric = "volume"
)

var Metrics = []Metric{
	MetricChannelSummary,
	MetricTags,
	MetricStaff,
	MetricResponseTime,
	MetricVolume,
}

// ParseMetric accepts both the upstream name and its dashed form
// ("response-time").
func ParseMetric(s string) (Metric, bool) {
	m := Metric(strings.ReplaceAll(strings.ToLower(s), "-", "_"))
	for _, known := range Metrics {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// Brand is the read-only view of a configured helpdesk account that the
// aggregator needs.
type Brand struct {
	ID       int64
	Name     string
	URL      string
	Email    string
	APIToken string
}

const DateLayout = "2006-01-02"

// DateRange is an inclusive day range. It only filters when both bounds are set.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (r DateRange) IsSet() bool {
	return !r.Start.IsZero() && !r.End.IsZero()
}

// Contains reports whether a series key such as "2025-03-01" or
// "2025-03-01T00:00:00Z" falls inside the range. Every key is inside an unset
// range; keys that do not start with a date are outside a set one.
func (r DateRange) Contains(key string) bool {
	if !r.IsSet() {
		return true
	}
	if len(key) < len(DateLayout) {
		return false
	}
	d, err := time.Parse(DateLayout, key[:len(DateLayout)])
	if err != nil {
		return false
	}
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r DateRange) StartString() string {
	return formatDate(r.Start)
}

func (r DateRange) EndString() string {
	return formatDate(r.End)
}

// Days is the number of calendar days covered, bounds included.
func (r DateRange) Days() int {
	if !r.IsSet() {
		return 0
	}
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// BrandResult is the outcome of fetching one brand's report: either the raw
// upstream payload or the error that replaced it. Exactly one of Data and Err
// is meaningful.
type BrandResult struct {
	Brand string
	Data  json.RawMessage
	Err   error
}

func Succeeded(brand string, data json.RawMessage) BrandResult {
	return BrandResult{Brand: brand, Data: data}
}

func Failed(brand string, err error) BrandResult {
	return BrandResult{Brand: brand, Err: err}
}

func (r BrandResult) OK() bool {
	return r.Err == nil
}
