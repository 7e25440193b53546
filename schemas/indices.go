package schemas

// IndicesOHLCV is one candle of an index or reference rate.
type IndicesOHLCV struct {
	Unit                     string  `json:"UNIT"`
	Timestamp                int64   `json:"TIMESTAMP"`
	Type                     string  `json:"TYPE"`
	Market                   string  `json:"MARKET"`
	Instrument               string  `json:"INSTRUMENT"`
	Open                     float64 `json:"OPEN"`
	High                     float64 `json:"HIGH"`
	Low                      float64 `json:"LOW"`
	Close                    float64 `json:"CLOSE"`
	FirstMessageTimestamp    int64   `json:"FIRST_MESSAGE_TIMESTAMP"`
	LastMessageTimestamp     int64   `json:"LAST_MESSAGE_TIMESTAMP"`
	FirstMessageValue        float64 `json:"FIRST_MESSAGE_VALUE"`
	HighMessageValue         float64 `json:"HIGH_MESSAGE_VALUE"`
	HighMessageTimestamp     int64   `json:"HIGH_MESSAGE_TIMESTAMP"`
	LowMessageValue          float64 `json:"LOW_MESSAGE_VALUE"`
	LowMessageTimestamp      int64   `json:"LOW_MESSAGE_TIMESTAMP"`
	LastMessageValue         float64 `json:"LAST_MESSAGE_VALUE"`
	TotalIndexUpdates        int32   `json:"TOTAL_INDEX_UPDATES"`
	Volume                   float64 `json:"VOLUME"`
	VolumeTopTier            float64 `json:"VOLUME_TOP_TIER"`
	VolumeDirect             float64 `json:"VOLUME_DIRECT"`
	VolumeTopTierDirect      float64 `json:"VOLUME_TOP_TIER_DIRECT"`
	QuoteVolume              float64 `json:"QUOTE_VOLUME"`
	QuoteVolumeTopTier       float64 `json:"QUOTE_VOLUME_TOP_TIER"`
	QuoteVolumeDirect        float64 `json:"QUOTE_VOLUME_DIRECT"`
	QuoteVolumeTopTierDirect float64 `json:"QUOTE_VOLUME_TOP_TIER_DIRECT"`
}
