package domain

// Upstream report bodies, limited to the fields the aggregator folds.

type ChannelSummaryPayload struct {
	Channels map[string]ChannelStats `json:"channels"`
}

type ChannelStats struct {
	Channel                   *ChannelInfo `json:"channel"`
	ActiveConversations       int64        `json:"active_conversations"`
	AverageSatisfactionRating *float64     `json:"average_satisfaction_rating"`
	TotalSatisfactionRatings  int64        `json:"total_satisfaction_ratings"`
}

type ChannelInfo struct {
	Name            string `json:"name"`
	ChannelTypeName string `json:"channel_type_name"`
}

type TagsPayload struct {
	Tags map[string]int64 `json:"tags"`
}

type StaffPayload struct {
	Report map[string]StaffStats `json:"report"`
}

type StaffStats struct {
	ResponseCount       int64   `json:"response_count"`
	ResponseTimeSeconds float64 `json:"response_time_seconds"`
	AppreciationsCount  int64   `json:"appreciations_count"`
}

type ResponseTimePayload struct {
	ResponseTimes map[string]float64   `json:"response_times"`
	Summary       *ResponseTimeSummary `json:"summary"`
}

type ResponseTimeSummary struct {
	Averages struct {
		InRange *float64 `json:"in_range"`
	} `json:"averages"`
}

type VolumePayload struct {
	ConversationCounts map[string]int64 `json:"conversation_counts"`
}
