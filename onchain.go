package ccdata

import (
	"context"

	"ccdata/internal/endpoint"
	"ccdata/internal/fetcher"
	"ccdata/internal/params"
	"ccdata/schemas"
)

const (
	dexGroups        = "&groups=ID,MAPPING,MAPPING_ADVANCED,OHLC,OHLC_SWAP,SWAP,VOLUME"
	ethBlockGroups   = "&groups=ID,METADATA,TRANSACTIONS,ORPHAN_TRACES,UNCLES,WITHDRAWALS"
	symbolLookup     = "&asset_lookup_priority=SYMBOL"
	assetByAddrQuery = symbolLookup + "&groups=ID,BASIC,SUPPORTED_PLATFORMS,SECURITY_METRICS,SUPPLY,SUPPLY_ADDRESSES," +
		"ASSET_TYPE_SPECIFIC_METRICS,RESOURCE_LINKS,CLASSIFICATION,PRICE,MKT_CAP,VOLUME,CHANGE,TOPLIST_RANK," +
		"DESCRIPTION,DESCRIPTION_SUMMARY,CONTACT,SEO"
)

// OCDEXOHLCV returns swap candles for a DEX pool instrument.
func (c *Client) OCDEXOHLCV(ctx context.Context, instrument string, toTimestamp *int64, limit *int, market schemas.OCDEXMarket, unit Unit) (*schemas.DataResponse[[]schemas.OCDEXOHLCV], error) {
	return call[schemas.DataResponse[[]schemas.OCDEXOHLCV]](ctx, c, ohlcvRequest(endpoint.OCDEXOHLCV, instrument, toTimestamp, limit, market, unit, dexGroups))
}

// OCDEXMarkets returns information on a decentralised exchange.
func (c *Client) OCDEXMarkets(ctx context.Context, market schemas.OCDEXMarket) (*schemas.DataResponse[map[string]schemas.OCDEXMarkets], error) {
	return call[schemas.DataResponse[map[string]schemas.OCDEXMarkets]](ctx, c, marketsRequest(endpoint.OCDEXMarkets, market))
}

// OCCoreETHBlock returns an Ethereum block with its transactions, uncles and
// withdrawals.
func (c *Client) OCCoreETHBlock(ctx context.Context, blockNumber int64) (*schemas.DataResponse[schemas.OCCoreETHBlock], error) {
	return call[schemas.DataResponse[schemas.OCCoreETHBlock]](ctx, c, fetcher.Request{
		Endpoint: endpoint.OCCoreETHBlocks,
		Unit:     endpoint.NA,
		Params:   []params.Param{params.BlockNumber(blockNumber)},
		Extra:    ethBlockGroups,
	})
}

// OCCoreAssetsByChain summarises the assets issued on the chain identified
// by chainAsset (e.g. "ETH").
func (c *Client) OCCoreAssetsByChain(ctx context.Context, chainAsset string) (*schemas.DataResponse[schemas.OCCoreAssetByChain], error) {
	return call[schemas.DataResponse[schemas.OCCoreAssetByChain]](ctx, c, fetcher.Request{
		Endpoint: endpoint.OCCoreAssetsByChain,
		Unit:     endpoint.NA,
		Params:   []params.Param{params.ChainAsset(chainAsset)},
		Extra:    symbolLookup,
	})
}

// OCCoreAssetByAddress looks up the asset deployed at address on chainAsset,
// priced in quoteAsset.
func (c *Client) OCCoreAssetByAddress(ctx context.Context, chainAsset, address, quoteAsset string) (*schemas.DataResponse[schemas.OCCoreAssetByAddress], error) {
	return call[schemas.DataResponse[schemas.OCCoreAssetByAddress]](ctx, c, fetcher.Request{
		Endpoint: endpoint.OCCoreAssetByAddress,
		Unit:     endpoint.NA,
		Params: []params.Param{
			params.ChainAsset(chainAsset),
			params.Address(address),
			params.QuoteAsset(quoteAsset),
		},
		Extra: assetByAddrQuery,
	})
}

// OCCoreSupply returns the daily supply history of asset.
func (c *Client) OCCoreSupply(ctx context.Context, asset string, toTimestamp *int64, limit *int) (*schemas.DataResponse[[]schemas.OCCoreSupply], error) {
	return call[schemas.DataResponse[[]schemas.OCCoreSupply]](ctx, c, assetHistoryRequest(endpoint.OCCoreSupply, asset, toTimestamp, limit, ""))
}
