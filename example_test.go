package ccdata_test

import (
	"context"
	"fmt"
	"net/http"

	"ccdata"
	"ccdata/internal/testutil"
	"ccdata/schemas"
)

func ExampleClient_SpotOHLCV() {
	// A local server stands in for data-api.ccdata.io.
	server := testutil.NewJSONServer(http.StatusOK, testutil.SpotOHLCVBody("kraken", "BTC-USD", 2))
	defer server.Close()

	client := ccdata.NewWithAPIKey("your-api-key", ccdata.WithBaseURLs("", server.URL))

	resp, err := client.SpotOHLCV(context.Background(), "BTC-USD", nil, ccdata.Int(2), schemas.SpotKraken, ccdata.Day)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	candles, ok := resp.Data.Get()
	if !ok {
		fmt.Println("no data")
		return
	}
	fmt.Println("candles:", len(candles))
	fmt.Println("close:", candles[0].Close)
	// Output:
	// candles: 2
	// close: 42500.9
}

func ExampleNew() {
	client := ccdata.New()

	_, err := client.SpotMarkets(context.Background(), schemas.SpotKraken)
	fmt.Println(ccdata.IsConfigurationError(err))
	// Output: true
}
