package domain

// ChannelTotals is the folded view of one channel, or of all channels when
// used as the report-wide total. A nil rating means no brand reported one.
type ChannelTotals struct {
	ActiveConversations       int64
	AverageSatisfactionRating *float64
	TotalSatisfactionRatings  int64
}

type ChannelSummaryReport struct {
	Channels   map[string]ChannelTotals
	Aggregated ChannelTotals
	Brands     []BrandResult
	Range      DateRange
}

type TagsReport struct {
	Tags   map[string]int64
	Brands []BrandResult
	Range  DateRange
}

type StaffTotals struct {
	ResponseCount       int64
	ResponseTimeSeconds int64
	AppreciationsCount  int64
}

type StaffReport struct {
	Report map[string]StaffTotals
	Brands []BrandResult
	Range  DateRange
}

// ResponseTimeReport carries InRangeReported so callers can tell a zero
// average apart from one that no brand reported.
type ResponseTimeReport struct {
	ResponseTimes   map[string]float64
	InRangeAverage  int64
	InRangeReported bool
	Brands          []BrandResult
	Range           DateRange
}

type VolumeReport struct {
	ConversationCounts map[string]int64
	Brands             []BrandResult
	Range              DateRange
}
