package ccdata

import (
	"context"
	"net/http"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"

	"ccdata/internal/testutil"
	"ccdata/schemas"
)

const testKey = "test_key"

type endpointCall struct {
	name    string
	call    func(ctx context.Context, c *Client) error
	wantURI string
}

func discard[T any](_ T, err error) error { return err }

// allCalls exercises every endpoint method once.
var allCalls = []endpointCall{
	{
		name:    "AvailableCoinList",
		call:    func(ctx context.Context, c *Client) error { return discard(c.AvailableCoinList(ctx)) },
		wantURI: "/data/blockchain/list?api_key=test_key",
	},
	{
		name:    "HistoricalDaily",
		call:    func(ctx context.Context, c *Client) error { return discard(c.HistoricalDaily(ctx, "ETH", Int64(1700000000), Int(10))) },
		wantURI: "/data/blockchain/histo/day?api_key=test_key&fsym=ETH&limit=10&toTs=1700000000",
	},
	{
		name:    "BalanceDistribution",
		call:    func(ctx context.Context, c *Client) error { return discard(c.BalanceDistribution(ctx, nil, nil)) },
		wantURI: "/data/blockchain/balancedistribution/histo/day?api_key=test_key&fsym=BTC&limit=2000",
	},
	{
		name: "IndicesOHLCV",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.IndicesOHLCV(ctx, "BTC-USD", nil, Int(5), schemas.IndicesCADLI, Hour))
		},
		wantURI: "/index/cc/v1/historical/hours?api_key=test_key&instrument=BTC-USD&limit=5&market=cadli",
	},
	{
		name: "SpotOHLCV",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.SpotOHLCV(ctx, "BTC-USD", Int64(1700000000), nil, schemas.SpotKraken, Minute))
		},
		wantURI: "/spot/v1/historical/minutes?api_key=test_key&instrument=BTC-USD&limit=2000&to_ts=1700000000&market=kraken",
	},
	{
		name: "SpotInstrumentMetadata",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.SpotInstrumentMetadata(ctx, []string{"BTC-USD", "ETH-USD"}, schemas.SpotCoinbase))
		},
		wantURI: "/spot/v1/latest/instrument/metadata?api_key=test_key&instruments=BTC-USD,ETH-USD&market=coinbase",
	},
	{
		name:    "SpotMarkets",
		call:    func(ctx context.Context, c *Client) error { return discard(c.SpotMarkets(ctx, schemas.SpotBinanceaggregate)) },
		wantURI: "/spot/v1/markets?api_key=test_key&market=binanceaggreagate",
	},
	{
		name: "SpotMarketsInstruments",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.SpotMarketsInstruments(ctx, []string{"BTC-USD"}, schemas.SpotKraken, schemas.InstrumentStatusActive))
		},
		wantURI: "/spot/v1/markets/instruments?api_key=test_key&instruments=BTC-USD&market=kraken&instrument_status=ACTIVE",
	},
	{
		name: "FuturesOHLCV",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.FuturesOHLCV(ctx, "BTC-USDT-VANILLA-PERPETUAL", nil, nil, schemas.FuturesBinance, Day))
		},
		wantURI: "/futures/v1/historical/days?api_key=test_key&instrument=BTC-USDT-VANILLA-PERPETUAL&limit=2000&market=binance" +
			"&groups=ID,MAPPING,OHLC,TRADE,VOLUME,MAPPING_ADVANCED,OHLC_TRADE",
	},
	{
		name:    "FuturesMarkets",
		call:    func(ctx context.Context, c *Client) error { return discard(c.FuturesMarkets(ctx, schemas.FuturesBybit)) },
		wantURI: "/futures/v1/markets?api_key=test_key&market=bybit",
	},
	{
		name: "OptionsOHLCV",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.OptionsOHLCV(ctx, "BTC-26DEC25-100000-C", nil, Int(1), schemas.OptionsDeribit, NA))
		},
		wantURI: "/options/v1/historical/days?api_key=test_key&instrument=BTC-26DEC25-100000-C&limit=1&market=deribit" +
			"&groups=ID,MAPPING,OHLC,TRADE,VOLUME,MAPPING_ADVANCED,OHLC_TRADE",
	},
	{
		name:    "OptionsMarkets",
		call:    func(ctx context.Context, c *Client) error { return discard(c.OptionsMarkets(ctx, schemas.OptionsOkex)) },
		wantURI: "/options/v1/markets?api_key=test_key&market=okex",
	},
	{
		name: "DerIndicesOHLCV",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.DerIndicesOHLCV(ctx, "BTC-USDT", nil, nil, schemas.DerIndicesKraken, Day))
		},
		wantURI: "/index/v1/historical/days?api_key=test_key&instrument=BTC-USDT&limit=2000&market=kraken" +
			"&groups=ID,OHLC,OHLC_MESSAGE,MESSAGE,MAPPING,MAPPING_ADVANCED",
	},
	{
		name:    "DerIndicesMarkets",
		call:    func(ctx context.Context, c *Client) error { return discard(c.DerIndicesMarkets(ctx, schemas.DerIndicesBitmex)) },
		wantURI: "/index/v1/markets?api_key=test_key&market=bitmex",
	},
	{
		name: "OCDEXOHLCV",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.OCDEXOHLCV(ctx, "0xabc_2", nil, nil, schemas.OCDEXUniswapv2, Day))
		},
		wantURI: "/onchain/v1/amm/historical/swap/days?api_key=test_key&instrument=0xabc_2&limit=2000&market=uniswapv2" +
			"&groups=ID,MAPPING,MAPPING_ADVANCED,OHLC,OHLC_SWAP,SWAP,VOLUME",
	},
	{
		name:    "OCDEXMarkets",
		call:    func(ctx context.Context, c *Client) error { return discard(c.OCDEXMarkets(ctx, schemas.OCDEXCurve)) },
		wantURI: "/onchain/v1/amm/markets?api_key=test_key&market=curve",
	},
	{
		name:    "OCCoreETHBlock",
		call:    func(ctx context.Context, c *Client) error { return discard(c.OCCoreETHBlock(ctx, 19501436)) },
		wantURI: "/onchain/v1/block/2?api_key=test_key&block_number=19501436&groups=ID,METADATA,TRANSACTIONS,ORPHAN_TRACES,UNCLES,WITHDRAWALS",
	},
	{
		name:    "OCCoreAssetsByChain",
		call:    func(ctx context.Context, c *Client) error { return discard(c.OCCoreAssetsByChain(ctx, "ETH")) },
		wantURI: "/onchain/v3/summary/by/chain?api_key=test_key&chain_asset=ETH&asset_lookup_priority=SYMBOL",
	},
	{
		name: "OCCoreAssetByAddress",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.OCCoreAssetByAddress(ctx, "ETH", "0xdac17f958d2ee523a2206206994597c13d831ec7", "USD"))
		},
		wantURI: "/onchain/v2/data/by/address?api_key=test_key&chain_asset=ETH&address=0xdac17f958d2ee523a2206206994597c13d831ec7" +
			"&quote_asset=USD&asset_lookup_priority=SYMBOL&groups=ID,BASIC,SUPPORTED_PLATFORMS,SECURITY_METRICS,SUPPLY," +
			"SUPPLY_ADDRESSES,ASSET_TYPE_SPECIFIC_METRICS,RESOURCE_LINKS,CLASSIFICATION,PRICE,MKT_CAP,VOLUME,CHANGE," +
			"TOPLIST_RANK,DESCRIPTION,DESCRIPTION_SUMMARY,CONTACT,SEO",
	},
	{
		name:    "OCCoreSupply",
		call:    func(ctx context.Context, c *Client) error { return discard(c.OCCoreSupply(ctx, "BTC", nil, Int(7))) },
		wantURI: "/onchain/v2/historical/supply/days?api_key=test_key&asset=BTC&limit=7",
	},
	{
		name:    "AssetMetadata",
		call:    func(ctx context.Context, c *Client) error { return discard(c.AssetMetadata(ctx, "ETH")) },
		wantURI: "/asset/v1/metadata?api_key=test_key&asset=ETH&asset_lookup_priority=SYMBOL&quote_asset=USD&groups=ID,BASIC,SUPPLY,SUPPLY_ADDRESSES,CLASSIFICATION",
	},
	{
		name:    "AssetEvents",
		call:    func(ctx context.Context, c *Client) error { return discard(c.AssetEvents(ctx, "ETH", Int64(1700000000), nil)) },
		wantURI: "/asset/v1/events?api_key=test_key&asset=ETH&to_ts=1700000000&limit=2000",
	},
	{
		name:    "AssetCodeRepo",
		call:    func(ctx context.Context, c *Client) error { return discard(c.AssetCodeRepo(ctx, "ETH", nil, nil)) },
		wantURI: "/asset/v1/historical/code-repository/days?api_key=test_key&asset=ETH&limit=2000&groups=ID,GENERAL,ACTIVITY,SOURCE",
	},
	{
		name:    "AssetDiscord",
		call:    func(ctx context.Context, c *Client) error { return discard(c.AssetDiscord(ctx, "ETH", nil, nil)) },
		wantURI: "/asset/v1/historical/discord/days?api_key=test_key&asset=ETH&limit=2000&groups=ID,GENERAL,ACTIVITY,SOURCE",
	},
	{
		name:    "AssetReddit",
		call:    func(ctx context.Context, c *Client) error { return discard(c.AssetReddit(ctx, "ETH", nil, nil)) },
		wantURI: "/asset/v1/historical/reddit/days?api_key=test_key&asset=ETH&limit=2000&groups=ID,GENERAL,ACTIVITY,SOURCE",
	},
	{
		name:    "AssetTelegram",
		call:    func(ctx context.Context, c *Client) error { return discard(c.AssetTelegram(ctx, "ETH", nil, nil)) },
		wantURI: "/asset/v1/historical/telegram/days?api_key=test_key&asset=ETH&limit=2000&groups=ID,GENERAL,SOURCE",
	},
	{
		name:    "AssetTwitter",
		call:    func(ctx context.Context, c *Client) error { return discard(c.AssetTwitter(ctx, "ETH", nil, nil)) },
		wantURI: "/asset/v1/historical/twitter/days?api_key=test_key&asset=ETH&limit=2000&groups=ID,GENERAL,ACTIVITY,SOURCE",
	},
	{
		name: "NewsLatestArticles",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.NewsLatestArticles(ctx, schemas.NewsLangEN, schemas.NewsSourceCoinDesk, []string{"BTC"}, nil, nil, Int(10)))
		},
		wantURI: "/news/v1/article/list?api_key=test_key&lang=EN&source_ids=coindesk&categories=BTC&limit=10",
	},
	{
		name: "NewsSources",
		call: func(ctx context.Context, c *Client) error {
			return discard(c.NewsSources(ctx, schemas.NewsLangEN, schemas.NewsSourceTypeRSS, schemas.NewsStatusActive))
		},
		wantURI: "/news/v1/source/list?api_key=test_key&lang=EN&source_type=RSS&status=ACTIVE",
	},
	{
		name:    "NewsCategories",
		call:    func(ctx context.Context, c *Client) error { return discard(c.NewsCategories(ctx, schemas.NewsStatusActive)) },
		wantURI: "/news/v1/category/list?api_key=test_key&status=ACTIVE",
	},
	{
		name:    "OverviewMktCapOHLCV",
		call:    func(ctx context.Context, c *Client) error { return discard(c.OverviewMktCapOHLCV(ctx, nil, nil)) },
		wantURI: "/overview/v1/historical/marketcap/all/assets/days?api_key=test_key&limit=2000&groups=ID,OHLC,VOLUME",
	},
}

// newEmptyEnvelopeServer answers every request with an envelope whose slots
// are all {}.
func newEmptyEnvelopeServer() *testutil.SpyServer {
	return testutil.NewSpyServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasPrefix(r.URL.Path, "/data/") {
			w.Write([]byte(testutil.MinBody("{}")))
			return
		}
		w.Write([]byte(testutil.DataBody("{}")))
	})
}

func TestClient_EndpointURLs(t *testing.T) {
	if len(allCalls) != 31 {
		t.Fatalf("len(allCalls) = %d, want one per endpoint (31)", len(allCalls))
	}

	server := newEmptyEnvelopeServer()
	defer server.Close()

	client := NewWithAPIKey(testKey, WithBaseURLs(server.URL, server.URL))

	for _, tt := range allCalls {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(context.Background(), client); err != nil {
				t.Fatalf("%s() unexpected error: %v", tt.name, err)
			}
			if got := server.LastRequestURI(); got != tt.wantURI {
				t.Errorf("request URI = %q\nwant %q", got, tt.wantURI)
			}
		})
	}
}

func TestClient_MissingAPIKey(t *testing.T) {
	server := newEmptyEnvelopeServer()
	defer server.Close()

	client := New(WithBaseURLs(server.URL, server.URL))

	for _, tt := range allCalls {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call(context.Background(), client)
			if !IsConfigurationError(err) {
				t.Fatalf("%s() error = %v, want configuration error", tt.name, err)
			}
			if !errors.Is(err, ErrNoAPIKey) {
				t.Errorf("%s() error does not unwrap to ErrNoAPIKey", tt.name)
			}
		})
	}

	if server.Calls() != 0 {
		t.Errorf("server calls = %d, want 0", server.Calls())
	}
}

func TestClient_APIKey(t *testing.T) {
	client := New()

	if _, err := client.APIKey(); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("APIKey() error = %v, want ErrNoAPIKey", err)
	}

	client.UpdateAPIKey("xxxxxxx")
	key, err := client.APIKey()
	if err != nil {
		t.Fatalf("APIKey() unexpected error: %v", err)
	}
	if key != "xxxxxxx" {
		t.Errorf("APIKey() = %q, want %q", key, "xxxxxxx")
	}
}

func TestClient_ConcurrentCallsWithKeyRotation(t *testing.T) {
	server := newEmptyEnvelopeServer()
	defer server.Close()

	client := NewWithAPIKey("key-a", WithBaseURLs(server.URL, server.URL))

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i == 10 {
				client.UpdateAPIKey("key-b")
			}
			_, err := client.SpotMarkets(context.Background(), schemas.SpotKraken)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("SpotMarkets() unexpected error: %v", err)
		}
	}

	uris := server.RequestURIs()
	if len(uris) != 20 {
		t.Fatalf("server calls = %d, want 20", len(uris))
	}
	for _, uri := range uris {
		if !strings.Contains(uri, "api_key=key-a&") && !strings.Contains(uri, "api_key=key-b&") {
			t.Errorf("request URI %q carries neither key", uri)
		}
	}
}

func TestNewFromEnv(t *testing.T) {
	server := newEmptyEnvelopeServer()
	defer server.Close()

	envVars := map[string]string{
		"CCDATA_API_KEY":           "env_key",
		"CCDATA_MIN_API_BASE_URL":  server.URL,
		"CCDATA_DATA_API_BASE_URL": server.URL,
		"CCDATA_TIMEOUT":           "5s",
	}
	for key, value := range envVars {
		os.Setenv(key, value)
		defer os.Unsetenv(key)
	}

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv() unexpected error: %v", err)
	}
	if key, _ := client.APIKey(); key != "env_key" {
		t.Errorf("APIKey() = %q, want %q", key, "env_key")
	}

	if _, err := client.NewsCategories(context.Background(), schemas.NewsStatusActive); err != nil {
		t.Fatalf("NewsCategories() unexpected error: %v", err)
	}
	if got, want := server.LastRequestURI(), "/news/v1/category/list?api_key=env_key&status=ACTIVE"; got != want {
		t.Errorf("request URI = %q, want %q", got, want)
	}

	if _, err := client.AvailableCoinList(context.Background()); err != nil {
		t.Fatalf("AvailableCoinList() unexpected error: %v", err)
	}
	if got, want := server.LastRequestURI(), "/data/blockchain/list?api_key=env_key"; got != want {
		t.Errorf("request URI = %q, want %q", got, want)
	}
	if got := server.Calls(); got != 2 {
		t.Errorf("Calls() = %d, want 2", got)
	}
}

func TestNewFromEnv_MissingKey(t *testing.T) {
	os.Unsetenv("CCDATA_API_KEY")

	if _, err := NewFromEnv(); err == nil {
		t.Error("NewFromEnv() error = nil, want missing key error")
	}
}
