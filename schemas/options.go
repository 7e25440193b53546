package schemas

// OptionsOHLCV is one candle of an options instrument.
type OptionsOHLCV struct {
	Unit                       string  `json:"UNIT"`
	Timestamp                  int64   `json:"TIMESTAMP"`
	Type                       string  `json:"TYPE"`
	Market                     string  `json:"MARKET"`
	Instrument                 string  `json:"INSTRUMENT"`
	MappedInstrument           string  `json:"MAPPED_INSTRUMENT"`
	IndexUnderlying            string  `json:"INDEX_UNDERLYING"`
	QuoteCurrency              string  `json:"QUOTE_CURRENCY"`
	SettlementCurrency         string  `json:"SETTLEMENT_CURRENCY"`
	ContractCurrency           string  `json:"CONTRACT_CURRENCY"`
	StrikeCurrency             string  `json:"STRIKE_CURRENCY"`
	IndexUnderlyingID          int32   `json:"INDEX_UNDERLYING_ID"`
	QuoteCurrencyID            int32   `json:"QUOTE_CURRENCY_ID"`
	SettlementCurrencyID       int32   `json:"SETTLEMENT_CURRENCY_ID"`
	ContractCurrencyID         int32   `json:"CONTRACT_CURRENCY_ID"`
	StrikeCurrencyID           int32   `json:"STRIKE_CURRENCY_ID"`
	TransformFunction          string  `json:"TRANSFORM_FUNCTION"`
	Open                       float64 `json:"OPEN"`
	High                       float64 `json:"HIGH"`
	Low                        float64 `json:"LOW"`
	Close                      float64 `json:"CLOSE"`
	NumberOfContracts          int64   `json:"NUMBER_OF_CONTRACTS"`
	TotalTrades                int64   `json:"TOTAL_TRADES"`
	TotalTradesBuy             int64   `json:"TOTAL_TRADES_BUY"`
	TotalTradesSell            int64   `json:"TOTAL_TRADES_SELL"`
	TotalTradesUnknown         int64   `json:"TOTAL_TRADES_UNKNOWN"`
	Volume                     float64 `json:"VOLUME"`
	QuoteVolume                float64 `json:"QUOTE_VOLUME"`
	VolumeBuy                  float64 `json:"VOLUME_BUY"`
	QuoteVolumeBuy             float64 `json:"QUOTE_VOLUME_BUY"`
	VolumeSell                 float64 `json:"VOLUME_SELL"`
	QuoteVolumeSell            float64 `json:"QUOTE_VOLUME_SELL"`
	VolumeUnknown              float64 `json:"VOLUME_UNKNOWN"`
	QuoteVolumeUnknown         float64 `json:"QUOTE_VOLUME_UNKNOWN"`
	NotionalVolume             float64 `json:"NOTIONAL_VOLUME"`
	NotionalQuoteVolume        float64 `json:"NOTIONAL_QUOTE_VOLUME"`
	NotionalVolumeBuy          float64 `json:"NOTIONAL_VOLUME_BUY"`
	NotionalQuoteVolumeBuy     float64 `json:"NOTIONAL_QUOTE_VOLUME_BUY"`
	NotionalVolumeSell         float64 `json:"NOTIONAL_VOLUME_SELL"`
	NotionalQuoteVolumeSell    float64 `json:"NOTIONAL_QUOTE_VOLUME_SELL"`
	NotionalVolumeUnknown      float64 `json:"NOTIONAL_VOLUME_UNKNOWN"`
	NotionalQuoteVolumeUnknown float64 `json:"NOTIONAL_QUOTE_VOLUME_UNKNOWN"`
}

// OptionsMarkets describes an options exchange.
type OptionsMarkets struct {
	Type                                 string                 `json:"TYPE"`
	ExchangeStatus                       string                 `json:"EXCHANGE_STATUS"`
	MappedInstrumentsTotal               int64                  `json:"MAPPED_INSTRUMENTS_TOTAL"`
	UnmappedInstrumentsTotal             int64                  `json:"UNMAPPED_INSTRUMENTS_TOTAL"`
	InstrumentStatus                     InstrumentStatusCounts `json:"INSTRUMENT_STATUS"`
	TotalTradesOptions                   int64                  `json:"TOTAL_TRADES_OPTIONS"`
	TotalOpenInterestOptionsUpdates      int64                  `json:"TOTAL_OPEN_INTEREST_OPTIONS_UPDATES"`
	HasOrderbookL2MinuteSnapshotsEnabled bool                   `json:"HAS_ORDERBOOK_L2_MINUTE_SNAPSHOTS_ENABLED"`
}
