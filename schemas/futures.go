package schemas

// FuturesOHLCV is one candle of a futures instrument.
type FuturesOHLCV struct {
	Unit                 string  `json:"UNIT"`
	Timestamp            int64   `json:"TIMESTAMP"`
	Type                 string  `json:"TYPE"`
	Market               string  `json:"MARKET"`
	Instrument           string  `json:"INSTRUMENT"`
	MappedInstrument     string  `json:"MAPPED_INSTRUMENT"`
	IndexUnderlying      string  `json:"INDEX_UNDERLYING"`
	QuoteCurrency        string  `json:"QUOTE_CURRENCY"`
	SettlementCurrency   string  `json:"SETTLEMENT_CURRENCY"`
	ContractCurrency     string  `json:"CONTRACT_CURRENCY"`
	DenominationType     string  `json:"DENOMINATION_TYPE"`
	IndexUnderlyingID    int32   `json:"INDEX_UNDERLYING_ID"`
	QuoteCurrencyID      int32   `json:"QUOTE_CURRENCY_ID"`
	SettlementCurrencyID int32   `json:"SETTLEMENT_CURRENCY_ID"`
	ContractCurrencyID   int32   `json:"CONTRACT_CURRENCY_ID"`
	TransformFunction    string  `json:"TRANSFORM_FUNCTION"`
	Open                 float64 `json:"OPEN"`
	High                 float64 `json:"HIGH"`
	Low                  float64 `json:"LOW"`
	Close                float64 `json:"CLOSE"`
	FirstTradeTimestamp  int64   `json:"FIRST_TRADE_TIMESTAMP"`
	LastTradeTimestamp   int64   `json:"LAST_TRADE_TIMESTAMP"`
	FirstTradePrice      float64 `json:"FIRST_TRADE_PRICE"`
	HighTradePrice       float64 `json:"HIGH_TRADE_PRICE"`
	HighTradeTimestamp   int64   `json:"HIGH_TRADE_TIMESTAMP"`
	LowTradePrice        float64 `json:"LOW_TRADE_PRICE"`
	LowTradeTimestamp    int64   `json:"LOW_TRADE_TIMESTAMP"`
	LastTradePrice       float64 `json:"LAST_TRADE_PRICE"`
	TotalTrades          int64   `json:"TOTAL_TRADES"`
	TotalTradesBuy       int64   `json:"TOTAL_TRADES_BUY"`
	TotalTradesSell      int64   `json:"TOTAL_TRADES_SELL"`
	TotalTradesUnknown   int64   `json:"TOTAL_TRADES_UNKNOWN"`
	NumberOfContracts    int64   `json:"NUMBER_OF_CONTRACTS"`
	Volume               float64 `json:"VOLUME"`
	QuoteVolume          float64 `json:"QUOTE_VOLUME"`
	VolumeBuy            float64 `json:"VOLUME_BUY"`
	QuoteVolumeBuy       float64 `json:"QUOTE_VOLUME_BUY"`
	VolumeSell           float64 `json:"VOLUME_SELL"`
	QuoteVolumeSell      float64 `json:"QUOTE_VOLUME_SELL"`
	VolumeUnknown        float64 `json:"VOLUME_UNKNOWN"`
	QuoteVolumeUnknown   float64 `json:"QUOTE_VOLUME_UNKNOWN"`
}

// FuturesMarkets describes a futures exchange.
type FuturesMarkets struct {
	Type                                 string                 `json:"TYPE"`
	ExchangeStatus                       string                 `json:"EXCHANGE_STATUS"`
	MappedInstrumentsTotal               int64                  `json:"MAPPED_INSTRUMENTS_TOTAL"`
	UnmappedInstrumentsTotal             int64                  `json:"UNMAPPED_INSTRUMENTS_TOTAL"`
	InstrumentStatus                     InstrumentStatusCounts `json:"INSTRUMENT_STATUS"`
	TotalTradesFutures                   int64                  `json:"TOTAL_TRADES_FUTURES"`
	TotalFundingRateUpdates              int64                  `json:"TOTAL_FUNDING_RATE_UPDATES"`
	TotalOpenInterestUpdates             int64                  `json:"TOTAL_OPEN_INTEREST_UPDATES"`
	HasOrderbookL2MinuteSnapshotsEnabled bool                   `json:"HAS_ORDERBOOK_L2_MINUTE_SNAPSHOTS_ENABLED"`
}
