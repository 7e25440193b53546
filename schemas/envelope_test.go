package schemas

import "testing"

func TestDataResponse_EmptyDataWithError(t *testing.T) {
	body := `{"Data": {}, "Err": {"type": 23, "message": "hello", "other_info": null}}`

	var resp DataResponse[string]
	if err := DecodeStrict([]byte(body), &resp); err != nil {
		t.Fatalf("DecodeStrict() unexpected error: %v", err)
	}

	if resp.Data.IsPresent() {
		t.Error("Data.IsPresent() = true, want false")
	}
	info, ok := resp.Err.Get()
	if !ok {
		t.Fatal("Err.IsPresent() = false, want true")
	}
	if info.Type != 23 {
		t.Errorf("Err.Type = %d, want 23", info.Type)
	}
	if info.Message != "hello" {
		t.Errorf("Err.Message = %q, want %q", info.Message, "hello")
	}
	if info.OtherInfo.IsPresent() {
		t.Error("Err.OtherInfo.IsPresent() = true, want false")
	}

	msg, ok := resp.VendorError()
	if !ok || msg != "hello" {
		t.Errorf("VendorError() = %q, %v, want %q, true", msg, ok, "hello")
	}
}

func TestDataResponse_DataWithEmptyError(t *testing.T) {
	body := `{"Data": {"x": 1}, "Err": {}}`

	var resp DataResponse[point]
	if err := DecodeStrict([]byte(body), &resp); err != nil {
		t.Fatalf("DecodeStrict() unexpected error: %v", err)
	}

	data, ok := resp.Data.Get()
	if !ok {
		t.Fatal("Data.IsPresent() = false, want true")
	}
	if data.X != 1 {
		t.Errorf("Data.X = %d, want 1", data.X)
	}
	if resp.Err.IsPresent() {
		t.Error("Err.IsPresent() = true, want false")
	}
	if _, ok := resp.VendorError(); ok {
		t.Error("VendorError() reported an error for a response without one")
	}
}

func TestDataResponse_MalformedDataIsError(t *testing.T) {
	body := `{"Data": {"y": 1}, "Err": {}}`

	var resp DataResponse[point]
	if err := DecodeStrict([]byte(body), &resp); err == nil {
		t.Fatal("DecodeStrict() error = nil, want decode error for malformed payload")
	}
}

func TestDataResponse_ErrorOtherInfo(t *testing.T) {
	body := `{"Data": {}, "Err": {"type": 2, "message": "bad market", "other_info": {"param": "market", "values": ["nowhere"]}}}`

	var resp DataResponse[[]SpotOHLCV]
	if err := DecodeStrict([]byte(body), &resp); err != nil {
		t.Fatalf("DecodeStrict() unexpected error: %v", err)
	}

	info, _ := resp.Err.Get()
	other, ok := info.OtherInfo.Get()
	if !ok {
		t.Fatal("OtherInfo.IsPresent() = false, want true")
	}
	if other.Param == nil || *other.Param != "market" {
		t.Errorf("OtherInfo.Param = %v, want market", other.Param)
	}
	if len(other.Values) != 1 || other.Values[0] != "nowhere" {
		t.Errorf("OtherInfo.Values = %v, want [nowhere]", other.Values)
	}
}

func TestMinResponse_NestedWrapper(t *testing.T) {
	body := `{
		"Response": "Success",
		"Message": "",
		"HasWarning": false,
		"Type": 100,
		"RateLimit": {},
		"Data": {"Aggregated": false, "TimeFrom": 1, "TimeTo": 2, "Data": {}}
	}`

	var resp MinResponse[MinWrapper[[]HistoricalDaily]]
	if err := DecodeStrict([]byte(body), &resp); err != nil {
		t.Fatalf("DecodeStrict() unexpected error: %v", err)
	}

	if resp.Type != 100 {
		t.Errorf("Type = %d, want 100", resp.Type)
	}
	if resp.RateLimit.IsPresent() {
		t.Error("RateLimit.IsPresent() = true, want false")
	}
	wrapper, ok := resp.Data.Get()
	if !ok {
		t.Fatal("Data.IsPresent() = false, want true")
	}
	if wrapper.TimeTo == nil || *wrapper.TimeTo != 2 {
		t.Errorf("TimeTo = %v, want 2", wrapper.TimeTo)
	}
	if wrapper.Data.IsPresent() {
		t.Error("inner Data.IsPresent() = true, want false")
	}
}

func TestMinResponse_RateLimit(t *testing.T) {
	body := `{
		"Response": "Error",
		"Message": "rate limit",
		"HasWarning": false,
		"Type": 99,
		"Data": {},
		"RateLimit": {
			"calls_made": {"second": 1, "minute": 2, "hour": 3, "day": 4, "month": 5, "total_calls": 6},
			"max_calls": {"second": 20, "minute": 300, "hour": 3000, "day": 7500, "month": 100000}
		}
	}`

	var resp MinResponse[map[string]AvailableCoinList]
	if err := DecodeStrict([]byte(body), &resp); err != nil {
		t.Fatalf("DecodeStrict() unexpected error: %v", err)
	}

	limit, ok := resp.RateLimit.Get()
	if !ok {
		t.Fatal("RateLimit.IsPresent() = false, want true")
	}
	if limit.CallsMade == nil || limit.CallsMade.TotalCalls != 6 {
		t.Errorf("CallsMade = %+v, want TotalCalls 6", limit.CallsMade)
	}
	if limit.MaxCalls == nil || limit.MaxCalls.Month != 100000 {
		t.Errorf("MaxCalls = %+v, want Month 100000", limit.MaxCalls)
	}

	msg, ok := resp.VendorError()
	if !ok || msg != "rate limit" {
		t.Errorf("VendorError() = %q, %v, want %q, true", msg, ok, "rate limit")
	}
}

func TestMinResponse_MissingRequiredField(t *testing.T) {
	body := `{"Message": "", "HasWarning": false, "Type": 100, "Data": {}}`

	var resp MinResponse[map[string]AvailableCoinList]
	if err := DecodeStrict([]byte(body), &resp); err == nil {
		t.Fatal("DecodeStrict() error = nil, want missing Response error")
	}
}
