package schemas

// OCDEXOHLCV is one candle of AMM swap activity for a pool.
type OCDEXOHLCV struct {
	Unit               string  `json:"UNIT"`
	Timestamp          int64   `json:"TIMESTAMP"`
	Type               string  `json:"TYPE"`
	Market             string  `json:"MARKET"`
	Instrument         string  `json:"INSTRUMENT"`
	MappedInstrument   string  `json:"MAPPED_INSTRUMENT"`
	Base               string  `json:"BASE"`
	Quote              string  `json:"QUOTE"`
	BaseID             int32   `json:"BASE_ID"`
	QuoteID            int32   `json:"QUOTE_ID"`
	TransformFunction  string  `json:"TRANSFORM_FUNCTION"`
	Open               float64 `json:"OPEN"`
	High               float64 `json:"HIGH"`
	Low                float64 `json:"LOW"`
	Close              float64 `json:"CLOSE"`
	FirstSwapTimestamp int64   `json:"FIRST_SWAP_TIMESTAMP"`
	FirstSwapBlock     int64   `json:"FIRST_SWAP_BLOCK"`
	LastSwapTimestamp  int64   `json:"LAST_SWAP_TIMESTAMP"`
	LastSwapBlock      int64   `json:"LAST_SWAP_BLOCK"`
	FirstSwapPrice     float64 `json:"FIRST_SWAP_PRICE"`
	HighSwapPrice      float64 `json:"HIGH_SWAP_PRICE"`
	HighSwapTimestamp  int64   `json:"HIGH_SWAP_TIMESTAMP"`
	HighSwapBlock      int64   `json:"HIGH_SWAP_BLOCK"`
	LowSwapPrice       float64 `json:"LOW_SWAP_PRICE"`
	LowSwapTimestamp   int64   `json:"LOW_SWAP_TIMESTAMP"`
	LowSwapBlock       int64   `json:"LOW_SWAP_BLOCK"`
	LastSwapPrice      float64 `json:"LAST_SWAP_PRICE"`
	TotalSwaps         int64   `json:"TOTAL_SWAPS"`
	TotalSwapsBuy      int64   `json:"TOTAL_SWAPS_BUY"`
	TotalSwapsSell     int64   `json:"TOTAL_SWAPS_SELL"`
	TotalSwapsUnknown  int64   `json:"TOTAL_SWAPS_UNKNOWN"`
	Volume             float64 `json:"VOLUME"`
	QuoteVolume        float64 `json:"QUOTE_VOLUME"`
	VolumeBuy          float64 `json:"VOLUME_BUY"`
	QuoteVolumeBuy     float64 `json:"QUOTE_VOLUME_BUY"`
	VolumeSell         float64 `json:"VOLUME_SELL"`
	QuoteVolumeSell    float64 `json:"QUOTE_VOLUME_SELL"`
	VolumeUnknown      string  `json:"VOLUME_UNKNOWN"`
	QuoteVolumeUnknown string  `json:"QUOTE_VOLUME_UNKNOWN"`
}

// OCDEXMarkets describes an AMM protocol.
type OCDEXMarkets struct {
	Type                                 string                 `json:"TYPE"`
	ExchangeStatus                       string                 `json:"EXCHANGE_STATUS"`
	MappedInstrumentsTotal               int64                  `json:"MAPPED_INSTRUMENTS_TOTAL"`
	UnmappedInstrumentsTotal             int64                  `json:"UNMAPPED_INSTRUMENTS_TOTAL"`
	InstrumentStatus                     InstrumentStatusCounts `json:"INSTRUMENT_STATUS"`
	TotalAMMSwapsOnchain                 int64                  `json:"TOTAL_AMM_SWAPS_ONCHAIN"`
	TotalAMMLiquidityUpdatesOnchain      int64                  `json:"TOTAL_AMM_LIQUIDITY_UPDATES_ONCHAIN"`
	HasOrderbookL2MinuteSnapshotsEnabled bool                   `json:"HAS_ORDERBOOK_L2_MINUTE_SNAPSHOTS_ENABLED"`
}
