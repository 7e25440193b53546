package ccdata

import (
	"context"

	"ccdata/internal/endpoint"
	"ccdata/internal/fetcher"
	"ccdata/internal/params"
	"ccdata/schemas"
)

const (
	assetMetadataQuery = symbolLookup + "&quote_asset=USD&groups=ID,BASIC,SUPPLY,SUPPLY_ADDRESSES,CLASSIFICATION"
	socialGroups       = "&groups=ID,GENERAL,ACTIVITY,SOURCE"
	telegramGroups     = "&groups=ID,GENERAL,SOURCE"
)

// AssetMetadata returns the reference data of asset, priced in USD.
func (c *Client) AssetMetadata(ctx context.Context, asset string) (*schemas.DataResponse[schemas.AssetMetadata], error) {
	return call[schemas.DataResponse[schemas.AssetMetadata]](ctx, c, fetcher.Request{
		Endpoint: endpoint.AssetMetadata,
		Unit:     endpoint.NA,
		Params:   []params.Param{params.Asset(asset)},
		Extra:    assetMetadataQuery,
	})
}

// AssetEvents returns notable events (forks, migrations, rebrands) of asset.
func (c *Client) AssetEvents(ctx context.Context, asset string, toTimestamp *int64, limit *int) (*schemas.DataResponse[[]schemas.AssetEvent], error) {
	return call[schemas.DataResponse[[]schemas.AssetEvent]](ctx, c, assetHistoryRequest(endpoint.AssetEvents, asset, toTimestamp, limit, ""))
}

// AssetCodeRepo returns daily code repository metrics of asset.
func (c *Client) AssetCodeRepo(ctx context.Context, asset string, toTimestamp *int64, limit *int) (*schemas.DataResponse[[]schemas.AssetCodeRepoMetrics], error) {
	return call[schemas.DataResponse[[]schemas.AssetCodeRepoMetrics]](ctx, c, assetHistoryRequest(endpoint.AssetCodeRepo, asset, toTimestamp, limit, socialGroups))
}

// AssetDiscord returns daily Discord server metrics of asset.
func (c *Client) AssetDiscord(ctx context.Context, asset string, toTimestamp *int64, limit *int) (*schemas.DataResponse[[]schemas.AssetDiscord], error) {
	return call[schemas.DataResponse[[]schemas.AssetDiscord]](ctx, c, assetHistoryRequest(endpoint.AssetDiscord, asset, toTimestamp, limit, socialGroups))
}

// AssetReddit returns daily subreddit metrics of asset.
func (c *Client) AssetReddit(ctx context.Context, asset string, toTimestamp *int64, limit *int) (*schemas.DataResponse[[]schemas.AssetReddit], error) {
	return call[schemas.DataResponse[[]schemas.AssetReddit]](ctx, c, assetHistoryRequest(endpoint.AssetReddit, asset, toTimestamp, limit, socialGroups))
}

// AssetTelegram returns daily Telegram group metrics of asset.
func (c *Client) AssetTelegram(ctx context.Context, asset string, toTimestamp *int64, limit *int) (*schemas.DataResponse[[]schemas.AssetTelegram], error) {
	return call[schemas.DataResponse[[]schemas.AssetTelegram]](ctx, c, assetHistoryRequest(endpoint.AssetTelegram, asset, toTimestamp, limit, telegramGroups))
}

// AssetTwitter returns daily Twitter account metrics of asset.
func (c *Client) AssetTwitter(ctx context.Context, asset string, toTimestamp *int64, limit *int) (*schemas.DataResponse[[]schemas.AssetTwitter], error) {
	return call[schemas.DataResponse[[]schemas.AssetTwitter]](ctx, c, assetHistoryRequest(endpoint.AssetTwitter, asset, toTimestamp, limit, socialGroups))
}

// assetHistoryRequest is shared by the daily per-asset histories.
func assetHistoryRequest(e endpoint.Endpoint, asset string, toTimestamp *int64, limit *int, groups string) fetcher.Request {
	return fetcher.Request{
		Endpoint: e,
		Unit:     endpoint.NA,
		Params: []params.Param{
			params.Asset(asset),
			params.ToTimestamp{Value: toTimestamp},
			params.Limit{Value: limit},
		},
		Extra: groups,
	}
}
