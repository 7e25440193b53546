package schemas

// InstrumentMapping is the current base/quote mapping of an instrument.
type InstrumentMapping struct {
	MappedInstrument  string `json:"MAPPED_INSTRUMENT"`
	Base              string `json:"BASE"`
	BaseID            int32  `json:"BASE_ID"`
	Quote             string `json:"QUOTE"`
	QuoteID           int32  `json:"QUOTE_ID"`
	TransformFunction string `json:"TRANSFORM_FUNCTION"`
	CreatedOn         int64  `json:"CREATED_ON"`
}

// SpotOHLCV is one candle of a spot instrument on a single exchange.
type SpotOHLCV struct {
	Unit                string   `json:"UNIT"`
	Timestamp           int64    `json:"TIMESTAMP"`
	Type                string   `json:"TYPE"`
	Market              string   `json:"MARKET"`
	Instrument          string   `json:"INSTRUMENT"`
	MappedInstrument    string   `json:"MAPPED_INSTRUMENT"`
	Base                string   `json:"BASE"`
	Quote               string   `json:"QUOTE"`
	BaseID              int32    `json:"BASE_ID"`
	QuoteID             int32    `json:"QUOTE_ID"`
	TransformFunction   string   `json:"TRANSFORM_FUNCTION"`
	Open                float64  `json:"OPEN"`
	High                float64  `json:"HIGH"`
	Low                 float64  `json:"LOW"`
	Close               float64  `json:"CLOSE"`
	FirstTradeTimestamp *int64   `json:"FIRST_TRADE_TIMESTAMP"`
	LastTradeTimestamp  *int64   `json:"LAST_TRADE_TIMESTAMP"`
	FirstTradePrice     *float64 `json:"FIRST_TRADE_PRICE"`
	HighTradePrice      *float64 `json:"HIGH_TRADE_PRICE"`
	HighTradeTimestamp  *int64   `json:"HIGH_TRADE_TIMESTAMP"`
	LowTradePrice       *float64 `json:"LOW_TRADE_PRICE"`
	LowTradeTimestamp   *int64   `json:"LOW_TRADE_TIMESTAMP"`
	LastTradePrice      *float64 `json:"LAST_TRADE_PRICE"`
	TotalTrades         int64    `json:"TOTAL_TRADES"`
	TotalTradesBuy      int64    `json:"TOTAL_TRADES_BUY"`
	TotalTradesSell     int64    `json:"TOTAL_TRADES_SELL"`
	TotalTradesUnknown  int64    `json:"TOTAL_TRADES_UNKNOWN"`
	Volume              float64  `json:"VOLUME"`
	QuoteVolume         float64  `json:"QUOTE_VOLUME"`
	VolumeBuy           float64  `json:"VOLUME_BUY"`
	QuoteVolumeBuy      float64  `json:"QUOTE_VOLUME_BUY"`
	VolumeSell          float64  `json:"VOLUME_SELL"`
	QuoteVolumeSell     float64  `json:"QUOTE_VOLUME_SELL"`
	VolumeUnknown       float64  `json:"VOLUME_UNKNOWN"`
	QuoteVolumeUnknown  float64  `json:"QUOTE_VOLUME_UNKNOWN"`
}

// SpotInstrumentMetadata describes a spot instrument without price data.
type SpotInstrumentMetadata struct {
	MetadataVersion           int               `json:"METADATA_VERSION"`
	InstrumentStatus          string            `json:"INSTRUMENT_STATUS"`
	FirstSeenOnPollingTs      int64             `json:"FIRST_SEEN_ON_POLLING_TS"`
	LastSeenOnPollingTs       int64             `json:"LAST_SEEN_ON_POLLING_TS"`
	Instrument                string            `json:"INSTRUMENT"`
	InstrumentMapping         InstrumentMapping `json:"INSTRUMENT_MAPPING"`
	InstrumentExternalData    string            `json:"INSTRUMENT_EXTERNAL_DATA"`
	FirstObL2MinuteSnapshotTs *int64            `json:"FIRST_OB_L2_MINUTE_SNAPSHOT_TS"`
}

// SpotMarkets describes a spot exchange.
type SpotMarkets struct {
	Type                                 string                 `json:"TYPE"`
	ExchangeStatus                       string                 `json:"EXCHANGE_STATUS"`
	MappedInstrumentsTotal               int64                  `json:"MAPPED_INSTRUMENTS_TOTAL"`
	UnmappedInstrumentsTotal             int64                  `json:"UNMAPPED_INSTRUMENTS_TOTAL"`
	InstrumentStatus                     InstrumentStatusCounts `json:"INSTRUMENT_STATUS"`
	TotalTradesSpot                      int64                  `json:"TOTAL_TRADES_SPOT"`
	HasOrderbookL2MinuteSnapshotsEnabled bool                   `json:"HAS_ORDERBOOK_L2_MINUTE_SNAPSHOTS_ENABLED"`
}

// Instrument is a single instrument entry of a spot market listing.
type Instrument struct {
	Type                    string            `json:"TYPE"`
	InstrumentStatus        string            `json:"INSTRUMENT_STATUS"`
	Instrument              string            `json:"INSTRUMENT"`
	HistoShard              string            `json:"HISTO_SHARD"`
	MappedInstrument        string            `json:"MAPPED_INSTRUMENT"`
	InstrumentMapping       InstrumentMapping `json:"INSTRUMENT_MAPPING"`
	HasTradesSpot           bool              `json:"HAS_TRADES_SPOT"`
	FirstTradeSpotTimestamp int64             `json:"FIRST_TRADE_SPOT_TIMESTAMP"`
	LastTradeSpotTimestamp  int64             `json:"LAST_TRADE_SPOT_TIMESTAMP"`
	TotalTradesSpot         int64             `json:"TOTAL_TRADES_SPOT"`
}

// SpotMarketsInstruments is a spot exchange with its mapped instruments keyed by instrument id.
type SpotMarketsInstruments struct {
	Type                                 string                 `json:"TYPE"`
	ExchangeStatus                       string                 `json:"EXCHANGE_STATUS"`
	MappedInstrumentsTotal               int64                  `json:"MAPPED_INSTRUMENTS_TOTAL"`
	UnmappedInstrumentsTotal             int64                  `json:"UNMAPPED_INSTRUMENTS_TOTAL"`
	InstrumentStatus                     InstrumentStatusCounts `json:"INSTRUMENT_STATUS"`
	TotalTradesSpot                      int64                  `json:"TOTAL_TRADES_SPOT"`
	HasOrderbookL2MinuteSnapshotsEnabled bool                   `json:"HAS_ORDERBOOK_L2_MINUTE_SNAPSHOTS_ENABLED"`
	Instruments                          map[string]Instrument  `json:"instruments"`
}
