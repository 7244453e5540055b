package usecase

import (
	"math"

	"support-dashboard-service/internal/reports/core/domain"
)

func emptyChannelSummary(rng domain.DateRange) *domain.ChannelSummaryReport {
	return &domain.ChannelSummaryReport{
		Channels: map[string]domain.ChannelTotals{},
		Brands:   []domain.BrandResult{},
		Range:    rng,
	}
}

// ratingMean accumulates strictly positive satisfaction ratings. Upstream
// reports 0 for channels nobody rated, so those are not counted.
type ratingMean struct {
	sum float64
	n   int
}

func (m *ratingMean) add(v *float64) {
	if v == nil || *v <= 0 {
		return
	}
	m.sum += *v
	m.n++
}

func (m ratingMean) value() *float64 {
	if m.n == 0 {
		return nil
	}
	v := round(m.sum/float64(m.n), 2)
	return &v
}

func foldChannelSummary(items []fetched[domain.ChannelSummaryPayload], rng domain.DateRange) *domain.ChannelSummaryReport {
	out := emptyChannelSummary(rng)
	out.Brands = results(items)

	ratings := map[string]*ratingMean{}
	var total ratingMean

	for _, it := range items {
		if it.payload == nil {
			continue
		}
		for id, ch := range it.payload.Channels {
			key := id
			if ch.Channel != nil && ch.Channel.Name != "" {
				key = ch.Channel.Name
			}

			t := out.Channels[key]
			t.ActiveConversations += ch.ActiveConversations
			t.TotalSatisfactionRatings += ch.TotalSatisfactionRatings
			out.Channels[key] = t

			out.Aggregated.ActiveConversations += ch.ActiveConversations
			out.Aggregated.TotalSatisfactionRatings += ch.TotalSatisfactionRatings

			m, ok := ratings[key]
			if !ok {
				m = &ratingMean{}
				ratings[key] = m
			}
			m.add(ch.AverageSatisfactionRating)
			total.add(ch.AverageSatisfactionRating)
		}
	}

	for key, m := range ratings {
		t := out.Channels[key]
		t.AverageSatisfactionRating = m.value()
		out.Channels[key] = t
	}
	out.Aggregated.AverageSatisfactionRating = total.value()

	return out
}

func emptyTags(rng domain.DateRange) *domain.TagsReport {
	return &domain.TagsReport{
		Tags:   map[string]int64{},
		Brands: []domain.BrandResult{},
		Range:  rng,
	}
}

func foldTags(items []fetched[domain.TagsPayload], rng domain.DateRange) *domain.TagsReport {
	out := emptyTags(rng)
	out.Brands = results(items)

	for _, it := range items {
		if it.payload == nil {
			continue
		}
		for tag, n := range it.payload.Tags {
			out.Tags[tag] += n
		}
	}
	return out
}

func emptyStaff(rng domain.DateRange) *domain.StaffReport {
	return &domain.StaffReport{
		Report: map[string]domain.StaffTotals{},
		Brands: []domain.BrandResult{},
		Range:  rng,
	}
}

func foldStaff(items []fetched[domain.StaffPayload], rng domain.DateRange) *domain.StaffReport {
	out := emptyStaff(rng)
	out.Brands = results(items)

	// weighted seconds per staff member, divided once all brands are in
	weighted := map[string]float64{}

	for _, it := range items {
		if it.payload == nil {
			continue
		}
		for name, s := range it.payload.Report {
			t := out.Report[name]
			t.ResponseCount += s.ResponseCount
			t.AppreciationsCount += s.AppreciationsCount
			out.Report[name] = t
			weighted[name] += s.ResponseTimeSeconds * float64(s.ResponseCount)
		}
	}

	for name, t := range out.Report {
		if t.ResponseCount > 0 {
			t.ResponseTimeSeconds = int64(math.Floor(weighted[name] / float64(t.ResponseCount)))
		}
		out.Report[name] = t
	}
	return out
}

func emptyResponseTime(rng domain.DateRange) *domain.ResponseTimeReport {
	return &domain.ResponseTimeReport{
		ResponseTimes: map[string]float64{},
		Brands:        []domain.BrandResult{},
		Range:         rng,
	}
}

func foldResponseTime(items []fetched[domain.ResponseTimePayload], rng domain.DateRange) *domain.ResponseTimeReport {
	out := emptyResponseTime(rng)
	out.Brands = results(items)

	var sum float64
	var n int

	for _, it := range items {
		if it.payload == nil {
			continue
		}
		for date, secs := range it.payload.ResponseTimes {
			if rng.Contains(date) {
				out.ResponseTimes[date] += secs
			}
		}
		if s := it.payload.Summary; s != nil && s.Averages.InRange != nil {
			sum += *s.Averages.InRange
			n++
		}
	}

	if n > 0 {
		out.InRangeAverage = int64(math.Round(sum / float64(n)))
		out.InRangeReported = true
	}
	return out
}

func emptyVolume(rng domain.DateRange) *domain.VolumeReport {
	return &domain.VolumeReport{
		ConversationCounts: map[string]int64{},
		Brands:             []domain.BrandResult{},
		Range:              rng,
	}
}

func foldVolume(items []fetched[domain.VolumePayload], rng domain.DateRange) *domain.VolumeReport {
	out := emptyVolume(rng)
	out.Brands = results(items)

	for _, it := range items {
		if it.payload == nil {
			continue
		}
		for date, n := range it.payload.ConversationCounts {
			if rng.Contains(date) {
				out.ConversationCounts[date] += n
			}
		}
	}
	return out
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
