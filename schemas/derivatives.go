package schemas

// DerIndicesOHLCV is one candle of a derivatives index.
type DerIndicesOHLCV struct {
	Unit                  string  `json:"UNIT"`
	Timestamp             int64   `json:"TIMESTAMP"`
	Type                  string  `json:"TYPE"`
	Market                string  `json:"MARKET"`
	Instrument            string  `json:"INSTRUMENT"`
	Open                  float64 `json:"OPEN"`
	High                  float64 `json:"HIGH"`
	Low                   float64 `json:"LOW"`
	Close                 float64 `json:"CLOSE"`
	FirstMessageTimestamp int64   `json:"FIRST_MESSAGE_TIMESTAMP"`
	LastMessageTimestamp  int64   `json:"LAST_MESSAGE_TIMESTAMP"`
	FirstMessageValue     float64 `json:"FIRST_MESSAGE_VALUE"`
	HighMessageValue      float64 `json:"HIGH_MESSAGE_VALUE"`
	HighMessageTimestamp  int64   `json:"HIGH_MESSAGE_TIMESTAMP"`
	LowMessageValue       float64 `json:"LOW_MESSAGE_VALUE"`
	LowMessageTimestamp   int64   `json:"LOW_MESSAGE_TIMESTAMP"`
	LastMessageValue      float64 `json:"LAST_MESSAGE_VALUE"`
	TotalIndexUpdates     int32   `json:"TOTAL_INDEX_UPDATES"`
	MappedInstrument      string  `json:"MAPPED_INSTRUMENT"`
	Currency              string  `json:"CURRENCY"`
	CurrencyID            int32   `json:"CURRENCY_ID"`
	TransformFunction     string  `json:"TRANSFORM_FUNCTION"`
}

// DerIndicesMarkets describes a derivatives index market.
type DerIndicesMarkets struct {
	Type                     string                 `json:"TYPE"`
	ExchangeStatus           string                 `json:"EXCHANGE_STATUS"`
	MappedInstrumentsTotal   int64                  `json:"MAPPED_INSTRUMENTS_TOTAL"`
	UnmappedInstrumentsTotal int64                  `json:"UNMAPPED_INSTRUMENTS_TOTAL"`
	InstrumentStatus         InstrumentStatusCounts `json:"INSTRUMENT_STATUS"`
}
