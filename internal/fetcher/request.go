package fetcher

import (
	"strings"

	"ccdata/internal/endpoint"
	"ccdata/internal/params"
)

const redacted = "REDACTED"

// Request fully describes one call. It carries no credential; the key is
// supplied when the URL is built.
type Request struct {
	Endpoint endpoint.Endpoint
	Unit     endpoint.Unit
	// Params are encoded in order after the api_key parameter.
	Params []params.Param
	// Extra is appended verbatim after the encoded params, e.g. "&groups=ID,OHLC".
	Extra string
}

// BuildURL assembles
//
//	<base><path>[/days|/hours|/minutes]?api_key=<key><params><extra>
func (r Request) BuildURL(bases endpoint.BaseURLs, apiKey string) string {
	var b strings.Builder
	b.WriteString(r.Endpoint.URLOn(bases, r.Unit))
	b.WriteString("?api_key=")
	b.WriteString(apiKey)
	b.WriteString(params.Encode(r.Params...))
	b.WriteString(r.Extra)
	return b.String()
}

// RedactedURL is BuildURL with the key masked, for logs.
func (r Request) RedactedURL(bases endpoint.BaseURLs) string {
	return r.BuildURL(bases, redacted)
}
