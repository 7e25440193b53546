package ccdata

import "ccdata/internal/fetcher"

// Error is returned by every endpoint method. Use errors.As to inspect it.
type Error = fetcher.FetchError

// ErrorKind tells configuration, transport and decode failures apart.
type ErrorKind = fetcher.ErrorKind

const (
	KindConfiguration = fetcher.KindConfiguration
	KindTransport     = fetcher.KindTransport
	KindDecode        = fetcher.KindDecode
)

// ErrNoAPIKey is returned, wrapped in a configuration Error, by calls made
// before an API key is set.
var ErrNoAPIKey = fetcher.ErrNoAPIKey

// IsConfigurationError reports whether err means the request was never sent
// because no API key was set.
func IsConfigurationError(err error) bool {
	return fetcher.IsKind(err, KindConfiguration)
}

// IsTransportError reports whether err is a connection failure, a timeout or
// a non-2xx response.
func IsTransportError(err error) bool {
	return fetcher.IsKind(err, KindTransport)
}

// IsDecodeError reports whether the response body did not match the
// expected envelope.
func IsDecodeError(err error) bool {
	return fetcher.IsKind(err, KindDecode)
}
