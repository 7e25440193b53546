// Package fetcher executes requests against the vendor API: it builds the
// URL, issues a single GET and strictly decodes the body into the caller's
// envelope type.
package fetcher

import (
	"context"
	"reflect"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"resty.dev/v3"

	"ccdata/internal/endpoint"
	"ccdata/schemas"
)

// Executor sends requests. It is safe for concurrent use.
type Executor struct {
	client *resty.Client
	bases  endpoint.BaseURLs
	log    *logrus.Entry
}

// NewExecutor creates an Executor. A nil client gets NewHTTPClient defaults
// and a nil log falls back to the standard logger.
func NewExecutor(client *resty.Client, bases endpoint.BaseURLs, log *logrus.Entry) *Executor {
	if client == nil {
		client = NewHTTPClient(DefaultTimeout)
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Executor{client: client, bases: bases, log: log}
}

// Execute sends req with apiKey and decodes the response body into T.
//
// An empty apiKey fails with a configuration error before any network I/O.
// Non-2xx responses and round-trip failures are transport errors; a body
// that does not match T is a decode error.
func Execute[T any](ctx context.Context, e *Executor, apiKey string, req Request) (*T, error) {
	name := req.Endpoint.String()
	log := e.log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"endpoint":   name,
		"unit":       req.Unit.String(),
	})

	if apiKey == "" {
		err := NewConfigurationError(name)
		log.WithError(err).Debug("request not sent")
		return nil, err
	}

	// The URL is fixed here; later key changes do not affect this call.
	fullURL := req.BuildURL(e.bases, apiKey)
	log = log.WithField("url", req.RedactedURL(e.bases))

	start := time.Now()
	resp, err := e.client.R().
		SetContext(ctx).
		Get(fullURL)
	if err != nil {
		fe := classifyTransportError(name, err, apiKey)
		log.WithError(fe).WithField("duration", time.Since(start)).Debug("request failed")
		return nil, fe
	}

	status := resp.StatusCode()
	body := resp.Bytes()
	log = log.WithFields(logrus.Fields{
		"status":   status,
		"duration": time.Since(start),
	})

	if !resp.IsSuccess() {
		fe := ClassifyHTTPError(name, status)
		if msg := vendorMessage(body); msg != "" {
			fe.Message += ": " + scrubString(msg, apiKey)
		}
		log.WithError(fe).Debug("request rejected")
		return nil, fe
	}

	var out T
	if err := schemas.DecodeStrict(body, &out); err != nil {
		fe := NewDecodeError(name, typeName[T](), scrub(err, apiKey))
		log.WithError(fe).Debug("response did not decode")
		return nil, fe
	}

	log.Debug("request completed")
	return &out, nil
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// vendorMessage extracts the error message of either envelope family from
// an error body. It is lenient: an undecodable body yields "".
func vendorMessage(body []byte) string {
	var probe struct {
		Response string `json:"Response"`
		Message  string `json:"Message"`
		Err      struct {
			Message string `json:"message"`
		} `json:"Err"`
	}
	if err := sonic.Unmarshal(body, &probe); err != nil {
		return ""
	}
	if probe.Err.Message != "" {
		return probe.Err.Message
	}
	if probe.Response == "Error" {
		return probe.Message
	}
	return ""
}
