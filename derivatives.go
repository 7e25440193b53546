package ccdata

import (
	"context"

	"ccdata/internal/endpoint"
	"ccdata/schemas"
)

const (
	tradeGroups      = "&groups=ID,MAPPING,OHLC,TRADE,VOLUME,MAPPING_ADVANCED,OHLC_TRADE"
	derIndicesGroups = "&groups=ID,OHLC,OHLC_MESSAGE,MESSAGE,MAPPING,MAPPING_ADVANCED"
)

// FuturesOHLCV returns candles for a futures instrument, e.g. "BTC-USDT-VANILLA-PERPETUAL".
func (c *Client) FuturesOHLCV(ctx context.Context, instrument string, toTimestamp *int64, limit *int, market schemas.FuturesMarket, unit Unit) (*schemas.DataResponse[[]schemas.FuturesOHLCV], error) {
	return call[schemas.DataResponse[[]schemas.FuturesOHLCV]](ctx, c, ohlcvRequest(endpoint.FuturesOHLCV, instrument, toTimestamp, limit, market, unit, tradeGroups))
}

// FuturesMarkets returns exchange-level information for a futures market.
func (c *Client) FuturesMarkets(ctx context.Context, market schemas.FuturesMarket) (*schemas.DataResponse[map[string]schemas.FuturesMarkets], error) {
	return call[schemas.DataResponse[map[string]schemas.FuturesMarkets]](ctx, c, marketsRequest(endpoint.FuturesMarkets, market))
}

// OptionsOHLCV returns candles for an options instrument.
func (c *Client) OptionsOHLCV(ctx context.Context, instrument string, toTimestamp *int64, limit *int, market schemas.OptionsMarket, unit Unit) (*schemas.DataResponse[[]schemas.OptionsOHLCV], error) {
	return call[schemas.DataResponse[[]schemas.OptionsOHLCV]](ctx, c, ohlcvRequest(endpoint.OptionsOHLCV, instrument, toTimestamp, limit, market, unit, tradeGroups))
}

// OptionsMarkets returns exchange-level information for an options market.
func (c *Client) OptionsMarkets(ctx context.Context, market schemas.OptionsMarket) (*schemas.DataResponse[map[string]schemas.OptionsMarkets], error) {
	return call[schemas.DataResponse[map[string]schemas.OptionsMarkets]](ctx, c, marketsRequest(endpoint.OptionsMarkets, market))
}

// DerIndicesOHLCV returns candles of an exchange-published derivatives index.
func (c *Client) DerIndicesOHLCV(ctx context.Context, instrument string, toTimestamp *int64, limit *int, market schemas.DerIndicesMarket, unit Unit) (*schemas.DataResponse[[]schemas.DerIndicesOHLCV], error) {
	return call[schemas.DataResponse[[]schemas.DerIndicesOHLCV]](ctx, c, ohlcvRequest(endpoint.DerIndicesOHLCV, instrument, toTimestamp, limit, market, unit, derIndicesGroups))
}

// DerIndicesMarkets returns information on an exchange publishing derivatives indices.
func (c *Client) DerIndicesMarkets(ctx context.Context, market schemas.DerIndicesMarket) (*schemas.DataResponse[map[string]schemas.DerIndicesMarkets], error) {
	return call[schemas.DataResponse[map[string]schemas.DerIndicesMarkets]](ctx, c, marketsRequest(endpoint.DerIndicesMarkets, market))
}
