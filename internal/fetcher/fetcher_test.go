package fetcher

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"ccdata/internal/endpoint"
	"ccdata/internal/params"
	"ccdata/internal/testutil"
	"ccdata/schemas"
)

const testKey = "test-api-key-0001"

func newTestExecutor(serverURL string, out *bytes.Buffer) *Executor {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	if out != nil {
		logger.SetOutput(out)
	}
	bases := endpoint.BaseURLs{MinAPI: serverURL, DataAPI: serverURL}
	return NewExecutor(NewHTTPClient(5*time.Second), bases, logger.WithField("component", "test"))
}

func spotRequest() Request {
	limit := 3
	return Request{
		Endpoint: endpoint.SpotOHLCV,
		Unit:     endpoint.Day,
		Params: []params.Param{
			params.Instrument("BTC-USD"),
			params.Limit{Value: &limit},
			params.Market{Value: schemas.SpotKraken},
		},
	}
}

func TestExecute_Success(t *testing.T) {
	server := testutil.NewJSONServer(http.StatusOK, testutil.SpotOHLCVBody("kraken", "BTC-USD", 3))
	defer server.Close()

	ex := newTestExecutor(server.URL, nil)
	resp, err := Execute[schemas.DataResponse[[]schemas.SpotOHLCV]](context.Background(), ex, testKey, spotRequest())
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	data, ok := resp.Data.Get()
	if !ok {
		t.Fatal("Data.IsPresent() = false, want true")
	}
	if len(data) != 3 {
		t.Errorf("len(Data) = %d, want 3", len(data))
	}
	if data[0].Market != "kraken" {
		t.Errorf("Data[0].Market = %q, want kraken", data[0].Market)
	}

	want := "/spot/v1/historical/days?api_key=" + testKey + "&instrument=BTC-USD&limit=3&market=kraken"
	if got := server.LastRequestURI(); got != want {
		t.Errorf("request URI = %q, want %q", got, want)
	}
	if server.Calls() != 1 {
		t.Errorf("server calls = %d, want 1", server.Calls())
	}
}

func TestExecute_MissingKeyMakesNoCall(t *testing.T) {
	server := testutil.NewJSONServer(http.StatusOK, testutil.DataBody("[]"))
	defer server.Close()

	ex := newTestExecutor(server.URL, nil)
	_, err := Execute[schemas.DataResponse[[]schemas.SpotOHLCV]](context.Background(), ex, "", spotRequest())

	if !IsKind(err, KindConfiguration) {
		t.Fatalf("Execute() error = %v, want configuration error", err)
	}
	if !errors.Is(err, ErrNoAPIKey) {
		t.Error("error does not unwrap to ErrNoAPIKey")
	}
	if server.Calls() != 0 {
		t.Errorf("server calls = %d, want 0", server.Calls())
	}
}

func TestExecute_NonSuccessStatus(t *testing.T) {
	server := testutil.NewJSONServer(http.StatusBadRequest, testutil.DataErrorBody(2, "market not found"))
	defer server.Close()

	ex := newTestExecutor(server.URL, nil)
	_, err := Execute[schemas.DataResponse[[]schemas.SpotOHLCV]](context.Background(), ex, testKey, spotRequest())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Execute() error = %v, want *FetchError", err)
	}
	if fe.Kind != KindTransport {
		t.Errorf("Kind = %q, want %q", fe.Kind, KindTransport)
	}
	if fe.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", fe.StatusCode)
	}
	if !strings.Contains(fe.Error(), "market not found") {
		t.Errorf("Error() = %q, want vendor message", fe.Error())
	}
}

func TestExecute_RateLimited(t *testing.T) {
	body := `{"Response":"Error","Message":"You are over your rate limit","HasWarning":false,"Type":99,"Data":{},"RateLimit":{}}`
	server := testutil.NewJSONServer(http.StatusTooManyRequests, body)
	defer server.Close()

	ex := newTestExecutor(server.URL, nil)
	req := Request{Endpoint: endpoint.AvailableCoinList, Unit: endpoint.NA}
	_, err := Execute[schemas.MinResponse[map[string]schemas.AvailableCoinList]](context.Background(), ex, testKey, req)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Execute() error = %v, want *FetchError", err)
	}
	if fe.Type != ErrorTypeRateLimit {
		t.Errorf("Type = %q, want %q", fe.Type, ErrorTypeRateLimit)
	}
	if !strings.Contains(fe.Message, "over your rate limit") {
		t.Errorf("Message = %q, want vendor message", fe.Message)
	}
	if server.Calls() != 1 {
		t.Errorf("server calls = %d, want 1 (no retries)", server.Calls())
	}
}

func TestExecute_DecodeError(t *testing.T) {
	server := testutil.NewJSONServer(http.StatusOK, testutil.DataBody(`[{"UNIT":"DAY"}]`))
	defer server.Close()

	ex := newTestExecutor(server.URL, nil)
	_, err := Execute[schemas.DataResponse[[]schemas.SpotOHLCV]](context.Background(), ex, testKey, spotRequest())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Execute() error = %v, want *FetchError", err)
	}
	if fe.Kind != KindDecode {
		t.Errorf("Kind = %q, want %q", fe.Kind, KindDecode)
	}
	if !strings.Contains(fe.TypeName, "DataResponse") {
		t.Errorf("TypeName = %q, want the envelope type", fe.TypeName)
	}
	if strings.Contains(fe.Error(), testKey) {
		t.Errorf("Error() = %q leaks the API key", fe.Error())
	}
}

func TestExecute_NotJSON(t *testing.T) {
	server := testutil.NewJSONServer(http.StatusOK, "<html>maintenance</html>")
	defer server.Close()

	ex := newTestExecutor(server.URL, nil)
	_, err := Execute[schemas.DataResponse[[]schemas.SpotOHLCV]](context.Background(), ex, testKey, spotRequest())
	if !IsKind(err, KindDecode) {
		t.Errorf("Execute() error = %v, want decode error", err)
	}
}

func TestExecute_NullBody(t *testing.T) {
	server := testutil.NewJSONServer(http.StatusOK, "null")
	defer server.Close()

	ex := newTestExecutor(server.URL, nil)
	resp, err := Execute[schemas.DataResponse[[]schemas.SpotOHLCV]](context.Background(), ex, testKey, spotRequest())
	if !IsKind(err, KindDecode) {
		t.Errorf("Execute() error = %v, want decode error", err)
	}
	if resp != nil {
		t.Errorf("Execute() response = %+v, want nil", resp)
	}
}

func TestExecute_NetworkErrorHidesKey(t *testing.T) {
	server := testutil.NewJSONServer(http.StatusOK, "{}")
	serverURL := server.URL
	server.Close()

	ex := newTestExecutor(serverURL, nil)
	_, err := Execute[schemas.DataResponse[[]schemas.SpotOHLCV]](context.Background(), ex, testKey, spotRequest())

	if !IsKind(err, KindTransport) {
		t.Fatalf("Execute() error = %v, want transport error", err)
	}
	if strings.Contains(err.Error(), testKey) {
		t.Errorf("Error() = %q leaks the API key", err.Error())
	}
}

func TestExecute_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	server := testutil.NewSpyServer(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	})
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	ex := newTestExecutor(server.URL, nil)
	_, err := Execute[schemas.DataResponse[[]schemas.SpotOHLCV]](ctx, ex, testKey, spotRequest())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("Execute() error = %v, want *FetchError", err)
	}
	if fe.Kind != KindTransport || fe.Type != ErrorTypeTimeout {
		t.Errorf("Kind/Type = %q/%q, want transport/timeout", fe.Kind, fe.Type)
	}
}

func TestExecute_LogsRedactedURL(t *testing.T) {
	server := testutil.NewJSONServer(http.StatusOK, testutil.SpotOHLCVBody("kraken", "BTC-USD", 1))
	defer server.Close()

	var logs bytes.Buffer
	ex := newTestExecutor(server.URL, &logs)
	if _, err := Execute[schemas.DataResponse[[]schemas.SpotOHLCV]](context.Background(), ex, testKey, spotRequest()); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	out := logs.String()
	if strings.Contains(out, testKey) {
		t.Errorf("log output leaks the API key: %s", out)
	}
	for _, want := range []string{"api_key=REDACTED", "request_id=", "endpoint=SpotOHLCV", "status=200"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}
