// Package params encodes the query parameters the vendor endpoints accept.
//
// Param is a closed set: every variant lives in this package and renders
// itself to a single "&name=value" fragment, or to "" when it is absent and
// has no default. Values are not escaped here; URL encoding of the
// assembled query is left to the transport.
package params

import (
	"strconv"
	"strings"

	"ccdata/schemas"
)

// DefaultLimit is sent when a Limit carries no value.
const DefaultLimit = 2000

// Param is one query parameter of a request.
type Param interface {
	// Encode returns the "&name=value" fragment, or "" to omit the parameter.
	Encode() string
	param()
}

// Encode concatenates the fragments of ps in order.
func Encode(ps ...Param) string {
	var b strings.Builder
	for _, p := range ps {
		if p == nil {
			continue
		}
		b.WriteString(p.Encode())
	}
	return b.String()
}

func fragment(name, value string) string {
	return "&" + name + "=" + value
}

// Instrument parameters.

// Symbol is a Min-API coin symbol (fsym).
type Symbol string

// Instrument is a single market instrument, e.g. "BTC-USD".
type Instrument string

// Instruments is a list of instruments, sent comma-joined.
type Instruments []string

// ChainAsset is the asset identifying a blockchain.
type ChainAsset string

// Asset is an asset symbol.
type Asset string

func (p Symbol) Encode() string { return fragment("fsym", string(p)) }
func (p Instrument) Encode() string { return fragment("instrument", string(p)) }
func (p Instruments) Encode() string { return fragment("instruments", strings.Join(p, ",")) }
func (p ChainAsset) Encode() string { return fragment("chain_asset", string(p)) }
func (p Asset) Encode() string { return fragment("asset", string(p)) }

// Cursor parameters.

// ToTs is the Min-API end timestamp. Omitted when Value is nil.
type ToTs struct {
	Value *int64
}

// ToTimestamp is the Data-API end timestamp. Omitted when Value is nil.
type ToTimestamp struct {
	Value *int64
}

// Limit caps the number of records returned. A nil Value sends DefaultLimit.
type Limit struct {
	Value *int
}

func (p ToTs) Encode() string {
	if p.Value == nil {
		return ""
	}
	return fragment("toTs", strconv.FormatInt(*p.Value, 10))
}

func (p ToTimestamp) Encode() string {
	if p.Value == nil {
		return ""
	}
	return fragment("to_ts", strconv.FormatInt(*p.Value, 10))
}

func (p Limit) Encode() string {
	n := DefaultLimit
	if p.Value != nil {
		n = *p.Value
	}
	return fragment("limit", strconv.Itoa(n))
}

// Filters.

// Market selects the exchange, index family or DEX.
type Market struct {
	Value schemas.Market
}

// InstrumentStatus filters instruments by lifecycle state.
type InstrumentStatus schemas.SpotInstrumentStatus

// BlockNumber is an on-chain block height.
type BlockNumber int64

// Address is an on-chain address.
type Address string

// QuoteAsset is the asset prices are quoted in.
type QuoteAsset string

func (p Market) Encode() string {
	if p.Value == nil {
		return fragment("market", "")
	}
	return fragment("market", p.Value.String())
}

func (p InstrumentStatus) Encode() string {
	return fragment("instrument_status", schemas.SpotInstrumentStatus(p).String())
}

func (p BlockNumber) Encode() string { return fragment("block_number", strconv.FormatInt(int64(p), 10)) }
func (p Address) Encode() string { return fragment("address", string(p)) }
func (p QuoteAsset) Encode() string { return fragment("quote_asset", string(p)) }

// News filters.

// NewsLanguage selects the article language (lang).
type NewsLanguage schemas.NewsLang

// NewsSourceID restricts articles to one publisher (source_ids).
type NewsSourceID schemas.NewsSourceID

// NewsSourceType filters sources by feed kind (source_type).
type NewsSourceType schemas.NewsSourceType

// NewsStatus filters sources and categories by status.
type NewsStatus schemas.NewsStatus

// NewsCategories restricts articles to the listed categories. Omitted when nil.
type NewsCategories []string

// NewsExcludeCategories drops articles in the listed categories. Omitted when nil.
type NewsExcludeCategories []string

func (p NewsLanguage) Encode() string {
	return fragment("lang", schemas.NewsLang(p).String())
}

func (p NewsSourceID) Encode() string {
	return fragment("source_ids", schemas.NewsSourceID(p).String())
}

func (p NewsSourceType) Encode() string {
	return fragment("source_type", schemas.NewsSourceType(p).String())
}

func (p NewsStatus) Encode() string {
	return fragment("status", schemas.NewsStatus(p).String())
}

func (p NewsCategories) Encode() string {
	if p == nil {
		return ""
	}
	return fragment("categories", strings.Join(p, ","))
}

func (p NewsExcludeCategories) Encode() string {
	if p == nil {
		return ""
	}
	return fragment("exclude_categories", strings.Join(p, ","))
}

func (Symbol) param() {}
func (Instrument) param() {}
func (Instruments) param() {}
func (ChainAsset) param() {}
func (Asset) param() {}
func (ToTs) param() {}
func (ToTimestamp) param() {}
func (Limit) param() {}
func (Market) param() {}
func (InstrumentStatus) param() {}
func (BlockNumber) param() {}
func (Address) param() {}
func (QuoteAsset) param() {}
func (NewsLanguage) param() {}
func (NewsSourceID) param() {}
func (NewsSourceType) param() {}
func (NewsStatus) param() {}
func (NewsCategories) param() {}
func (NewsExcludeCategories) param() {}
