package ccdata

import (
	"context"

	"ccdata/internal/endpoint"
	"ccdata/internal/fetcher"
	"ccdata/internal/params"
	"ccdata/schemas"
)

// NewsLatestArticles returns the latest articles in language from source.
// A nil categories or excludeCategories leaves that filter off.
func (c *Client) NewsLatestArticles(ctx context.Context, language schemas.NewsLang, source schemas.NewsSourceID, categories, excludeCategories []string, toTimestamp *int64, limit *int) (*schemas.DataResponse[[]schemas.NewsLatestArticle], error) {
	return call[schemas.DataResponse[[]schemas.NewsLatestArticle]](ctx, c, fetcher.Request{
		Endpoint: endpoint.NewsLatestArticles,
		Unit:     endpoint.NA,
		Params: []params.Param{
			params.NewsLanguage(language),
			params.NewsSourceID(source),
			params.NewsCategories(categories),
			params.NewsExcludeCategories(excludeCategories),
			params.ToTimestamp{Value: toTimestamp},
			params.Limit{Value: limit},
		},
	})
}

// NewsSources lists news sources.
func (c *Client) NewsSources(ctx context.Context, language schemas.NewsLang, sourceType schemas.NewsSourceType, status schemas.NewsStatus) (*schemas.DataResponse[[]schemas.NewsSource], error) {
	return call[schemas.DataResponse[[]schemas.NewsSource]](ctx, c, fetcher.Request{
		Endpoint: endpoint.NewsSources,
		Unit:     endpoint.NA,
		Params: []params.Param{
			params.NewsLanguage(language),
			params.NewsSourceType(sourceType),
			params.NewsStatus(status),
		},
	})
}

// NewsCategories lists news categories with their matching filters.
func (c *Client) NewsCategories(ctx context.Context, status schemas.NewsStatus) (*schemas.DataResponse[[]schemas.NewsCategory], error) {
	return call[schemas.DataResponse[[]schemas.NewsCategory]](ctx, c, fetcher.Request{
		Endpoint: endpoint.NewsCategories,
		Unit:     endpoint.NA,
		Params:   []params.Param{params.NewsStatus(status)},
	})
}

// OverviewMktCapOHLCV returns daily candles of the total market
// capitalisation of all assets.
func (c *Client) OverviewMktCapOHLCV(ctx context.Context, toTimestamp *int64, limit *int) (*schemas.DataResponse[[]schemas.OverviewMktCapOHLCV], error) {
	return call[schemas.DataResponse[[]schemas.OverviewMktCapOHLCV]](ctx, c, fetcher.Request{
		Endpoint: endpoint.OverviewMktCapOHLCV,
		Unit:     endpoint.NA,
		Params: []params.Param{
			params.ToTimestamp{Value: toTimestamp},
			params.Limit{Value: limit},
		},
		Extra: "&groups=ID,OHLC,VOLUME",
	})
}
