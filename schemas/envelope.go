package schemas

// DataResponse is the envelope of every Data-API response. Either slot may
// be absent; a well-formed response usually fills only one of them.
type DataResponse[T any] struct {
	Data Optional[T]         `json:"Data"`
	Err  Optional[ErrorInfo] `json:"Err"`
}

// ErrorInfo describes a request the Data-API refused.
type ErrorInfo struct {
	// Type is the vendor's public error code.
	Type      int32                    `json:"type"`
	Message   string                   `json:"message"`
	OtherInfo Optional[ErrorOtherInfo] `json:"other_info"`
}

// ErrorOtherInfo names the parameter and values responsible for an error.
type ErrorOtherInfo struct {
	Param  *string  `json:"param"`
	Values []string `json:"values,omitempty"`
}

// MinResponse is the envelope of every Min-API response.
type MinResponse[T any] struct {
	Response   string              `json:"Response"`
	Message    string              `json:"Message"`
	HasWarning bool                `json:"HasWarning"`
	Type       int32               `json:"Type"`
	Data       Optional[T]         `json:"Data"`
	RateLimit  Optional[RateLimit] `json:"RateLimit"`
}

// MinWrapper is the inner time-range wrapper some Min-API endpoints put
// around their records.
type MinWrapper[T any] struct {
	Aggregated *bool       `json:"Aggregated"`
	TimeFrom   *int64      `json:"TimeFrom"`
	TimeTo     *int64      `json:"TimeTo"`
	Data       Optional[T] `json:"Data"`
}

// RateLimit reports the caller's Min-API usage. The client surfaces it and
// never acts on it.
type RateLimit struct {
	CallsMade *CallsMade `json:"calls_made"`
	MaxCalls  *MaxCalls  `json:"max_calls"`
}

// CallsMade counts the calls made in each window.
type CallsMade struct {
	Second     int32 `json:"second"`
	Minute     int32 `json:"minute"`
	Hour       int32 `json:"hour"`
	Day        int32 `json:"day"`
	Month      int32 `json:"month"`
	TotalCalls int32 `json:"total_calls"`
}

// MaxCalls is the call allowance of each window.
type MaxCalls struct {
	Second int32 `json:"second"`
	Minute int32 `json:"minute"`
	Hour   int32 `json:"hour"`
	Day    int32 `json:"day"`
	Month  int32 `json:"month"`
}

// VendorError returns the Data-API error message, if the response carries one.
func (r *DataResponse[T]) VendorError() (string, bool) {
	if r == nil {
		return "", false
	}
	info, ok := r.Err.Get()
	if !ok {
		return "", false
	}
	return info.Message, true
}

// VendorError returns the Min-API message when the response reports an error.
func (r *MinResponse[T]) VendorError() (string, bool) {
	if r == nil || r.Response != "Error" {
		return "", false
	}
	return r.Message, true
}
