package ccdata

import (
	"context"

	"ccdata/internal/endpoint"
	"ccdata/internal/fetcher"
	"ccdata/internal/params"
	"ccdata/schemas"
)

// IndicesOHLCV returns index candles for instrument (e.g. "BTC-USD") computed
// by the given index family.
func (c *Client) IndicesOHLCV(ctx context.Context, instrument string, toTimestamp *int64, limit *int, market schemas.IndicesMarket, unit Unit) (*schemas.DataResponse[[]schemas.IndicesOHLCV], error) {
	return call[schemas.DataResponse[[]schemas.IndicesOHLCV]](ctx, c, ohlcvRequest(endpoint.IndicesOHLCV, instrument, toTimestamp, limit, market, unit, ""))
}

// SpotOHLCV returns candles for instrument on a single spot exchange.
func (c *Client) SpotOHLCV(ctx context.Context, instrument string, toTimestamp *int64, limit *int, market schemas.SpotMarket, unit Unit) (*schemas.DataResponse[[]schemas.SpotOHLCV], error) {
	return call[schemas.DataResponse[[]schemas.SpotOHLCV]](ctx, c, ohlcvRequest(endpoint.SpotOHLCV, instrument, toTimestamp, limit, market, unit, ""))
}

// SpotInstrumentMetadata returns metadata for each of instruments on market,
// keyed by instrument.
func (c *Client) SpotInstrumentMetadata(ctx context.Context, instruments []string, market schemas.SpotMarket) (*schemas.DataResponse[map[string]schemas.SpotInstrumentMetadata], error) {
	return call[schemas.DataResponse[map[string]schemas.SpotInstrumentMetadata]](ctx, c, fetcher.Request{
		Endpoint: endpoint.SpotInstrumentMetadata,
		Unit:     endpoint.NA,
		Params: []params.Param{
			params.Instruments(instruments),
			params.Market{Value: market},
		},
	})
}

// SpotMarkets returns exchange-level information for market.
func (c *Client) SpotMarkets(ctx context.Context, market schemas.SpotMarket) (*schemas.DataResponse[map[string]schemas.SpotMarkets], error) {
	return call[schemas.DataResponse[map[string]schemas.SpotMarkets]](ctx, c, marketsRequest(endpoint.SpotMarkets, market))
}

// SpotMarketsInstruments returns the mapped instruments of market that are in
// the given lifecycle state.
func (c *Client) SpotMarketsInstruments(ctx context.Context, instruments []string, market schemas.SpotMarket, status schemas.SpotInstrumentStatus) (*schemas.DataResponse[map[string]schemas.SpotMarketsInstruments], error) {
	return call[schemas.DataResponse[map[string]schemas.SpotMarketsInstruments]](ctx, c, fetcher.Request{
		Endpoint: endpoint.SpotMarketsInstruments,
		Unit:     endpoint.NA,
		Params: []params.Param{
			params.Instruments(instruments),
			params.Market{Value: market},
			params.InstrumentStatus(status),
		},
	})
}

// ohlcvRequest is shared by every candle endpoint of the Data-API.
func ohlcvRequest(e endpoint.Endpoint, instrument string, toTimestamp *int64, limit *int, market schemas.Market, unit Unit, groups string) fetcher.Request {
	return fetcher.Request{
		Endpoint: e,
		Unit:     unit,
		Params: []params.Param{
			params.Instrument(instrument),
			params.Limit{Value: limit},
			params.ToTimestamp{Value: toTimestamp},
			params.Market{Value: market},
		},
		Extra: groups,
	}
}

func marketsRequest(e endpoint.Endpoint, market schemas.Market) fetcher.Request {
	return fetcher.Request{
		Endpoint: e,
		Unit:     endpoint.NA,
		Params:   []params.Param{params.Market{Value: market}},
	}
}
