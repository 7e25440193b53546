// Package testutil provides a transport spy and canned vendor responses.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// SpyServer is an httptest server that records every request URI it serves.
type SpyServer struct {
	*httptest.Server

	mu   sync.Mutex
	uris []string
}

// NewSpyServer starts a server that records each request and then hands it
// to handler.
func NewSpyServer(handler http.HandlerFunc) *SpyServer {
	s := &SpyServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.uris = append(s.uris, r.URL.RequestURI())
		s.mu.Unlock()
		handler(w, r)
	}))
	return s
}

// NewJSONServer starts a spy that answers every request with status and body.
func NewJSONServer(status int, body string) *SpyServer {
	return NewSpyServer(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	})
}

// Calls returns the number of requests served so far.
func (s *SpyServer) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uris)
}

// RequestURIs returns the path and query of every request, in arrival order.
func (s *SpyServer) RequestURIs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.uris...)
}

// LastRequestURI returns the path and query of the latest request, or "".
func (s *SpyServer) LastRequestURI() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.uris) == 0 {
		return ""
	}
	return s.uris[len(s.uris)-1]
}

// SpotOHLCVRecord returns one complete spot candle for instrument on market.
func SpotOHLCVRecord(market, instrument string, timestamp int64) string {
	base, quote, _ := strings.Cut(instrument, "-")
	return fmt.Sprintf(`{
		"UNIT": "DAY", "TIMESTAMP": %d, "TYPE": "952", "MARKET": %q,
		"INSTRUMENT": %q, "MAPPED_INSTRUMENT": %q, "BASE": %q, "QUOTE": %q,
		"BASE_ID": 1, "QUOTE_ID": 5, "TRANSFORM_FUNCTION": "",
		"OPEN": 42000.1, "HIGH": 43000.5, "LOW": 41000.2, "CLOSE": 42500.9,
		"FIRST_TRADE_TIMESTAMP": %d, "LAST_TRADE_TIMESTAMP": %d,
		"FIRST_TRADE_PRICE": 42000.1, "HIGH_TRADE_PRICE": 43000.5, "HIGH_TRADE_TIMESTAMP": %d,
		"LOW_TRADE_PRICE": 41000.2, "LOW_TRADE_TIMESTAMP": %d, "LAST_TRADE_PRICE": 42500.9,
		"TOTAL_TRADES": 1200, "TOTAL_TRADES_BUY": 600, "TOTAL_TRADES_SELL": 590, "TOTAL_TRADES_UNKNOWN": 10,
		"VOLUME": 150.5, "QUOTE_VOLUME": 6400000.25, "VOLUME_BUY": 75.1, "QUOTE_VOLUME_BUY": 3200000.1,
		"VOLUME_SELL": 74.4, "QUOTE_VOLUME_SELL": 3150000.05, "VOLUME_UNKNOWN": 1.0, "QUOTE_VOLUME_UNKNOWN": 50000.1
	}`, timestamp, market, instrument, instrument, base, quote,
		timestamp, timestamp+86399, timestamp+3600, timestamp+7200)
}

// SpotOHLCVBody returns a Data-API response carrying n daily candles.
func SpotOHLCVBody(market, instrument string, n int) string {
	records := make([]string, n)
	start := int64(1700000000)
	for i := range records {
		records[i] = SpotOHLCVRecord(market, instrument, start+int64(i)*86400)
	}
	return DataBody("[" + strings.Join(records, ",") + "]")
}

// DataBody wraps a raw JSON payload in a Data-API envelope with an empty Err.
func DataBody(data string) string {
	return `{"Data":` + data + `,"Err":{}}`
}

// DataErrorBody is a Data-API envelope reporting a vendor error.
func DataErrorBody(code int, message string) string {
	return fmt.Sprintf(`{"Data":{},"Err":{"type":%d,"message":%q,"other_info":{}}}`, code, message)
}

// MinBody wraps a raw JSON payload in a successful Min-API envelope.
func MinBody(data string) string {
	return `{"Response":"Success","Message":"","HasWarning":false,"Type":100,"RateLimit":{},"Data":` + data + `}`
}
