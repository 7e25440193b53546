package endpoint

import (
	"strings"
	"testing"
)

func TestURL_UnitDependent(t *testing.T) {
	for _, e := range All() {
		if !e.UnitDependent() {
			continue
		}
		t.Run(e.String(), func(t *testing.T) {
			day := e.URL(Day)
			if got := e.URL(NA); got != day {
				t.Errorf("URL(NA) = %q, want %q", got, day)
			}

			base := strings.TrimSuffix(day, "/days")
			if base == day {
				t.Fatalf("URL(Day) = %q, want /days suffix", day)
			}
			if got, want := e.URL(Hour), base+"/hours"; got != want {
				t.Errorf("URL(Hour) = %q, want %q", got, want)
			}
			if got, want := e.URL(Minute), base+"/minutes"; got != want {
				t.Errorf("URL(Minute) = %q, want %q", got, want)
			}
		})
	}
}

func TestURL_UnitIndependent(t *testing.T) {
	units := []Unit{Day, Hour, Minute, NA}
	for _, e := range All() {
		if e.UnitDependent() {
			continue
		}
		t.Run(e.String(), func(t *testing.T) {
			want := e.URL(Day)
			for _, u := range units {
				if got := e.URL(u); got != want {
					t.Errorf("URL(%s) = %q, want %q", u, got, want)
				}
			}
		})
	}
}

func TestURL_KnownEndpoints(t *testing.T) {
	tests := []struct {
		endpoint Endpoint
		unit     Unit
		want     string
	}{
		{AvailableCoinList, NA, "https://min-api.cryptocompare.com/data/blockchain/list"},
		{BalanceDistribution, Day, "https://min-api.cryptocompare.com/data/blockchain/balancedistribution/histo/day"},
		{IndicesOHLCV, Hour, "https://data-api.ccdata.io/index/cc/v1/historical/hours"},
		{SpotOHLCV, Day, "https://data-api.ccdata.io/spot/v1/historical/days"},
		{OCDEXOHLCV, Minute, "https://data-api.ccdata.io/onchain/v1/amm/historical/swap/minutes"},
		{OCCoreETHBlocks, NA, "https://data-api.ccdata.io/onchain/v1/block/2"},
		{OverviewMktCapOHLCV, Hour, "https://data-api.ccdata.io/overview/v1/historical/marketcap/all/assets/days"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint.String(), func(t *testing.T) {
			if got := tt.endpoint.URL(tt.unit); got != tt.want {
				t.Errorf("URL(%s) = %q, want %q", tt.unit, got, tt.want)
			}
		})
	}
}

func TestRegistry_Complete(t *testing.T) {
	all := All()
	if len(all) != 31 {
		t.Fatalf("len(All()) = %d, want 31", len(all))
	}

	names := make(map[string]bool)
	for _, e := range all {
		name := e.String()
		if name == "" || name == "Endpoint(unknown)" {
			t.Errorf("endpoint %d has no name", int(e))
		}
		if names[name] {
			t.Errorf("duplicate endpoint name %q", name)
		}
		names[name] = true

		if !strings.HasPrefix(e.Path(NA), "/") {
			t.Errorf("%s path = %q, want leading slash", name, e.Path(NA))
		}
	}
}

func TestFamily(t *testing.T) {
	minAPI := map[Endpoint]bool{AvailableCoinList: true, HistoricalDaily: true, BalanceDistribution: true}
	for _, e := range All() {
		want := DataAPI
		if minAPI[e] {
			want = MinAPI
		}
		if got := e.Family(); got != want {
			t.Errorf("%s.Family() = %s, want %s", e, got, want)
		}
	}
}

func TestURLOn_OverridesHosts(t *testing.T) {
	bases := BaseURLs{MinAPI: "http://127.0.0.1:1/", DataAPI: "http://127.0.0.1:2"}

	if got, want := AvailableCoinList.URLOn(bases, NA), "http://127.0.0.1:1/data/blockchain/list"; got != want {
		t.Errorf("URLOn() = %q, want %q", got, want)
	}
	if got, want := SpotOHLCV.URLOn(bases, Hour), "http://127.0.0.1:2/spot/v1/historical/hours"; got != want {
		t.Errorf("URLOn() = %q, want %q", got, want)
	}
	if got, want := SpotMarkets.URLOn(BaseURLs{}, NA), DefaultDataAPIBaseURL+"/spot/v1/markets"; got != want {
		t.Errorf("URLOn() with empty hosts = %q, want %q", got, want)
	}
}
