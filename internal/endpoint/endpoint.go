// Package endpoint is the closed registry of vendor operations. Each
// Endpoint maps to one API family and one fixed path; time-bucketed
// endpoints take an extra unit suffix.
package endpoint

import "strings"

// Default hosts of the two API families.
const (
	DefaultMinAPIBaseURL  = "https://min-api.cryptocompare.com"
	DefaultDataAPIBaseURL = "https://data-api.ccdata.io"
)

// Unit is the interval between successive data points.
type Unit int

const (
	Day Unit = iota
	Hour
	Minute
	// NA is accepted wherever a unit is; time-bucketed endpoints treat it as Day.
	NA
)

func (u Unit) String() string {
	switch u {
	case Day:
		return "day"
	case Hour:
		return "hour"
	case Minute:
		return "minute"
	case NA:
		return "na"
	default:
		return "unknown"
	}
}

func (u Unit) suffix() string {
	switch u {
	case Hour:
		return "/hours"
	case Minute:
		return "/minutes"
	default:
		return "/days"
	}
}

// Family identifies which vendor host serves an endpoint.
type Family int

const (
	// MinAPI is the legacy family (Response/Message/Data envelope).
	MinAPI Family = iota
	// DataAPI is the current family (Data/Err envelope).
	DataAPI
)

func (f Family) String() string {
	if f == MinAPI {
		return "min-api"
	}
	return "data-api"
}

// BaseURLs holds the host of each family. Zero fields fall back to the
// vendor defaults.
type BaseURLs struct {
	MinAPI  string
	DataAPI string
}

// DefaultBaseURLs returns the production hosts.
func DefaultBaseURLs() BaseURLs {
	return BaseURLs{MinAPI: DefaultMinAPIBaseURL, DataAPI: DefaultDataAPIBaseURL}
}

// For returns the host serving f, without a trailing slash.
func (b BaseURLs) For(f Family) string {
	base := b.DataAPI
	fallback := DefaultDataAPIBaseURL
	if f == MinAPI {
		base, fallback = b.MinAPI, DefaultMinAPIBaseURL
	}
	if base == "" {
		return fallback
	}
	return strings.TrimRight(base, "/")
}

// Endpoint is one vendor REST operation.
type Endpoint int

const (
	// Min-API
	AvailableCoinList Endpoint = iota
	HistoricalDaily
	BalanceDistribution

	// Data-API: indices and spot
	IndicesOHLCV
	SpotOHLCV
	SpotInstrumentMetadata
	SpotMarkets
	SpotMarketsInstruments

	// Data-API: derivatives
	FuturesOHLCV
	FuturesMarkets
	OptionsOHLCV
	OptionsMarkets
	DerIndicesOHLCV
	DerIndicesMarkets

	// Data-API: on-chain
	OCDEXOHLCV
	OCDEXMarkets
	OCCoreETHBlocks
	OCCoreAssetsByChain
	OCCoreAssetByAddress
	OCCoreSupply

	// Data-API: asset
	AssetMetadata
	AssetEvents
	AssetCodeRepo
	AssetDiscord
	AssetReddit
	AssetTelegram
	AssetTwitter

	// Data-API: news
	NewsLatestArticles
	NewsSources
	NewsCategories

	// Data-API: overview
	OverviewMktCapOHLCV

	endpointCount
)

type route struct {
	name          string
	family        Family
	path          string
	unitDependent bool
}

var routes = [endpointCount]route{
	AvailableCoinList:   {"AvailableCoinList", MinAPI, "/data/blockchain/list", false},
	HistoricalDaily:     {"HistoricalDaily", MinAPI, "/data/blockchain/histo/day", false},
	BalanceDistribution: {"BalanceDistribution", MinAPI, "/data/blockchain/balancedistribution/histo/day", false},

	IndicesOHLCV:           {"IndicesOHLCV", DataAPI, "/index/cc/v1/historical", true},
	SpotOHLCV:              {"SpotOHLCV", DataAPI, "/spot/v1/historical", true},
	SpotInstrumentMetadata: {"SpotInstrumentMetadata", DataAPI, "/spot/v1/latest/instrument/metadata", false},
	SpotMarkets:            {"SpotMarkets", DataAPI, "/spot/v1/markets", false},
	SpotMarketsInstruments: {"SpotMarketsInstruments", DataAPI, "/spot/v1/markets/instruments", false},

	FuturesOHLCV:      {"FuturesOHLCV", DataAPI, "/futures/v1/historical", true},
	FuturesMarkets:    {"FuturesMarkets", DataAPI, "/futures/v1/markets", false},
	OptionsOHLCV:      {"OptionsOHLCV", DataAPI, "/options/v1/historical", true},
	OptionsMarkets:    {"OptionsMarkets", DataAPI, "/options/v1/markets", false},
	DerIndicesOHLCV:   {"DerIndicesOHLCV", DataAPI, "/index/v1/historical", true},
	DerIndicesMarkets: {"DerIndicesMarkets", DataAPI, "/index/v1/markets", false},

	OCDEXOHLCV:           {"OCDEXOHLCV", DataAPI, "/onchain/v1/amm/historical/swap", true},
	OCDEXMarkets:         {"OCDEXMarkets", DataAPI, "/onchain/v1/amm/markets", false},
	OCCoreETHBlocks:      {"OCCoreETHBlocks", DataAPI, "/onchain/v1/block/2", false},
	OCCoreAssetsByChain:  {"OCCoreAssetsByChain", DataAPI, "/onchain/v3/summary/by/chain", false},
	OCCoreAssetByAddress: {"OCCoreAssetByAddress", DataAPI, "/onchain/v2/data/by/address", false},
	OCCoreSupply:         {"OCCoreSupply", DataAPI, "/onchain/v2/historical/supply/days", false},

	AssetMetadata: {"AssetMetadata", DataAPI, "/asset/v1/metadata", false},
	AssetEvents:   {"AssetEvents", DataAPI, "/asset/v1/events", false},
	AssetCodeRepo: {"AssetCodeRepo", DataAPI, "/asset/v1/historical/code-repository/days", false},
	AssetDiscord:  {"AssetDiscord", DataAPI, "/asset/v1/historical/discord/days", false},
	AssetReddit:   {"AssetReddit", DataAPI, "/asset/v1/historical/reddit/days", false},
	AssetTelegram: {"AssetTelegram", DataAPI, "/asset/v1/historical/telegram/days", false},
	AssetTwitter:  {"AssetTwitter", DataAPI, "/asset/v1/historical/twitter/days", false},

	NewsLatestArticles: {"NewsLatestArticles", DataAPI, "/news/v1/article/list", false},
	NewsSources:        {"NewsSources", DataAPI, "/news/v1/source/list", false},
	NewsCategories:     {"NewsCategories", DataAPI, "/news/v1/category/list", false},

	OverviewMktCapOHLCV: {"OverviewMktCapOHLCV", DataAPI, "/overview/v1/historical/marketcap/all/assets/days", false},
}

// All returns every endpoint in declaration order.
func All() []Endpoint {
	all := make([]Endpoint, endpointCount)
	for i := range all {
		all[i] = Endpoint(i)
	}
	return all
}

func (e Endpoint) valid() bool {
	return e >= 0 && e < endpointCount
}

func (e Endpoint) String() string {
	if !e.valid() {
		return "Endpoint(unknown)"
	}
	return routes[e].name
}

// Family returns the API family serving e.
func (e Endpoint) Family() Family {
	if !e.valid() {
		return DataAPI
	}
	return routes[e].family
}

// UnitDependent reports whether e's path takes a /days, /hours or /minutes suffix.
func (e Endpoint) UnitDependent() bool {
	return e.valid() && routes[e].unitDependent
}

// Path returns e's path for unit. The unit is ignored unless e is unit dependent.
func (e Endpoint) Path(unit Unit) string {
	if !e.valid() {
		return ""
	}
	r := routes[e]
	if !r.unitDependent {
		return r.path
	}
	return r.path + unit.suffix()
}

// URL returns e's full URL on the vendor's production hosts.
func (e Endpoint) URL(unit Unit) string {
	return e.URLOn(DefaultBaseURLs(), unit)
}

// URLOn returns e's full URL on the given hosts.
func (e Endpoint) URLOn(bases BaseURLs, unit Unit) string {
	return bases.For(e.Family()) + e.Path(unit)
}
