package ccdata

import (
	"context"

	"ccdata/internal/endpoint"
	"ccdata/internal/fetcher"
	"ccdata/internal/params"
	"ccdata/schemas"
)

// AvailableCoinList returns every coin the blockchain dataset covers, keyed
// by symbol.
func (c *Client) AvailableCoinList(ctx context.Context) (*schemas.MinResponse[map[string]schemas.AvailableCoinList], error) {
	return call[schemas.MinResponse[map[string]schemas.AvailableCoinList]](ctx, c, fetcher.Request{
		Endpoint: endpoint.AvailableCoinList,
		Unit:     endpoint.NA,
	})
}

// HistoricalDaily returns daily on-chain activity for symbol up to
// toTimestamp (latest when nil).
func (c *Client) HistoricalDaily(ctx context.Context, symbol string, toTimestamp *int64, limit *int) (*schemas.MinResponse[schemas.MinWrapper[[]schemas.HistoricalDaily]], error) {
	return call[schemas.MinResponse[schemas.MinWrapper[[]schemas.HistoricalDaily]]](ctx, c, fetcher.Request{
		Endpoint: endpoint.HistoricalDaily,
		Unit:     endpoint.NA,
		Params: []params.Param{
			params.Symbol(symbol),
			params.Limit{Value: limit},
			params.ToTs{Value: toTimestamp},
		},
	})
}

// BalanceDistribution returns the daily distribution of BTC wallet balances.
// The vendor only serves it for BTC.
func (c *Client) BalanceDistribution(ctx context.Context, toTimestamp *int64, limit *int) (*schemas.MinResponse[schemas.MinWrapper[[]schemas.BalanceDistribution]], error) {
	return call[schemas.MinResponse[schemas.MinWrapper[[]schemas.BalanceDistribution]]](ctx, c, fetcher.Request{
		Endpoint: endpoint.BalanceDistribution,
		Unit:     endpoint.NA,
		Params: []params.Param{
			params.Symbol("BTC"),
			params.Limit{Value: limit},
			params.ToTs{Value: toTimestamp},
		},
	})
}
