package fetcher

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/pkg/errors"
)

// ErrNoAPIKey is the cause of every configuration error.
var ErrNoAPIKey = errors.New("no API key configured")

// ErrorKind separates failures the caller handles differently.
type ErrorKind string

const (
	// KindConfiguration means the request was never sent (no credential).
	KindConfiguration ErrorKind = "configuration"
	// KindTransport covers connection failures, timeouts and non-2xx responses.
	KindTransport ErrorKind = "transport"
	// KindDecode means the body did not match the expected envelope.
	KindDecode ErrorKind = "decode"
)

// ErrorType refines the kind of a failure
type ErrorType string

const (
	// ErrorTypeCredential indicates no API key was available
	ErrorTypeCredential ErrorType = "credential"
	// ErrorTypeNetwork indicates a network-level error (connection refused, DNS, etc.)
	ErrorTypeNetwork ErrorType = "network"
	// ErrorTypeRateLimit indicates the request was rejected due to rate limiting (HTTP 429)
	ErrorTypeRateLimit ErrorType = "rate_limit"
	// ErrorTypeServer indicates a server error (HTTP 5xx)
	ErrorTypeServer ErrorType = "server"
	// ErrorTypeClient indicates a client error (HTTP 4xx except 429)
	ErrorTypeClient ErrorType = "client"
	// ErrorTypeValidation indicates the response was received but did not decode
	ErrorTypeValidation ErrorType = "validation"
	// ErrorTypeTimeout indicates the request timed out
	ErrorTypeTimeout ErrorType = "timeout"
	// ErrorTypeUnknown indicates an error of unknown type
	ErrorTypeUnknown ErrorType = "unknown"
)

// FetchError is the error returned by every request. Neither the message nor
// the cause ever contains the API key.
type FetchError struct {
	Kind       ErrorKind
	Type       ErrorType
	Endpoint   string
	StatusCode int
	// TypeName is the Go type a decode error was decoding into.
	TypeName string
	// Retryable reports whether the same request may succeed later. The
	// client itself never retries.
	Retryable bool
	Message   string
	Cause     error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Kind))
	b.WriteString(" error")
	if e.Endpoint != "" {
		b.WriteString(" on ")
		b.WriteString(e.Endpoint)
	}
	if e.StatusCode > 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a FetchError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}

// NewConfigurationError reports a request that could not be built.
func NewConfigurationError(endpoint string) *FetchError {
	return &FetchError{
		Kind:      KindConfiguration,
		Type:      ErrorTypeCredential,
		Endpoint:  endpoint,
		Retryable: false,
		Message:   "request not sent",
		Cause:     ErrNoAPIKey,
	}
}

// NewNetworkError creates a network error
func NewNetworkError(endpoint string, cause error) *FetchError {
	return &FetchError{
		Kind:      KindTransport,
		Type:      ErrorTypeNetwork,
		Endpoint:  endpoint,
		Retryable: true,
		Message:   "network request failed",
		Cause:     cause,
	}
}

// NewTimeoutError creates a timeout error
func NewTimeoutError(endpoint string, cause error) *FetchError {
	return &FetchError{
		Kind:      KindTransport,
		Type:      ErrorTypeTimeout,
		Endpoint:  endpoint,
		Retryable: true,
		Message:   "request timed out",
		Cause:     cause,
	}
}

// NewDecodeError reports a body that did not decode into typeName.
func NewDecodeError(endpoint, typeName string, cause error) *FetchError {
	return &FetchError{
		Kind:      KindDecode,
		Type:      ErrorTypeValidation,
		Endpoint:  endpoint,
		TypeName:  typeName,
		Retryable: false,
		Message:   "unexpected response shape for " + typeName,
		Cause:     cause,
	}
}

// ClassifyHTTPError classifies a non-2xx status code into a transport error
func ClassifyHTTPError(endpoint string, statusCode int) *FetchError {
	fe := &FetchError{
		Kind:       KindTransport,
		Endpoint:   endpoint,
		StatusCode: statusCode,
	}
	switch {
	case statusCode == 429:
		fe.Type, fe.Retryable, fe.Message = ErrorTypeRateLimit, true, "rate limit exceeded"
	case statusCode >= 500:
		fe.Type, fe.Retryable, fe.Message = ErrorTypeServer, true, "server returned an error"
	case statusCode >= 400:
		fe.Type, fe.Message = ErrorTypeClient, fmt.Sprintf("client error: HTTP %d", statusCode)
	default:
		fe.Type, fe.Message = ErrorTypeUnknown, fmt.Sprintf("unexpected status code: %d", statusCode)
	}
	return fe
}

// classifyTransportError maps a failed round trip to a network or timeout
// error with the request URL removed from the cause.
func classifyTransportError(endpoint string, err error, secret string) *FetchError {
	cause := scrub(stripURL(err), secret)
	if isTimeout(err) {
		return NewTimeoutError(endpoint, cause)
	}
	return NewNetworkError(endpoint, cause)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// stripURL drops the *url.Error layer, whose message carries the full
// request URL including the api_key query value.
func stripURL(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err
	}
	return err
}

// minScrubLen is the shortest key redacted where it appears on its own.
// Shorter keys are only redacted in the api_key=<key> form.
const minScrubLen = 6

// scrub replaces err with a flat copy of its message when the message still
// contains secret.
func scrub(err error, secret string) error {
	if err == nil {
		return err
	}
	msg := err.Error()
	if cleaned := scrubString(msg, secret); cleaned != msg {
		return errors.New(cleaned)
	}
	return err
}

func scrubString(s, secret string) string {
	if secret == "" {
		return s
	}
	s = strings.ReplaceAll(s, "api_key="+secret, "api_key="+redacted)
	if len(secret) < minScrubLen {
		return s
	}
	return strings.ReplaceAll(s, secret, redacted)
}
