package schemas

// OverviewMktCapOHLCV is one day of total market capitalisation.
type OverviewMktCapOHLCV struct {
	Unit          string  `json:"UNIT"`
	Timestamp     int64   `json:"TIMESTAMP"`
	Type          string  `json:"TYPE"`
	Open          float64 `json:"OPEN"`
	High          float64 `json:"HIGH"`
	Low           float64 `json:"LOW"`
	Close         float64 `json:"CLOSE"`
	TopTierVolume float64 `json:"TOP_TIER_VOLUME"`
}
