package scm

import (
	"errors"
	"fmt"
	"time"

	"github.com/proscenium-app/proscenium/httpclient"
)

// Sentinel errors for the contract-level failure taxonomy. All errors
// surfaced by drivers can be classified with errors.Is against these.
// A missing single entity or an empty listing is not an error at all:
// those cases map to a nil value or an empty slice.

// ErrAuth is returned when the provider rejects the request for a
// missing or invalid credential (HTTP 401 or 403).
var ErrAuth = errors.New("authentication failed")

// ErrRateLimited is returned when the provider throttles the request
// (HTTP 429). The wrapping RateLimitError carries the provider's
// retry hint when one was supplied. The core never retries; acting on
// the hint is the caller's responsibility.
var ErrRateLimited = errors.New("rate limited")

// ErrTransport is returned for network failures and for unexpected
// non-2xx statuses outside the taxonomy above.
var ErrTransport = errors.New("transport failure")

// ErrDecode is returned when a delivered response body does not match
// the provider's expected shape.
var ErrDecode = errors.New("malformed provider response")

// ErrUnsupported is returned when the provider's API has no endpoint
// for the requested operation. Capability gaps are surfaced explicitly
// rather than emulated or silently skipped.
var ErrUnsupported = errors.New("operation not supported by provider")

// ErrUnknownKind is returned at construction time for a provider kind
// no driver is registered for.
var ErrUnknownKind = errors.New("unknown provider kind")

// RateLimitError reports provider throttling together with any
// Retry-After hint. RetryAfter is zero when the provider gave none.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
	}
	return "rate limited"
}

// Is classifies the error as ErrRateLimited for errors.Is.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// TransportError reports a network failure or an unexpected status.
// For delivered responses Status is the HTTP status code and Body an
// excerpt of the response body for diagnostics; for network failures
// only Err is set.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Body != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("unexpected status %d", e.Status)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is classifies the error as ErrTransport for errors.Is.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DecodeError reports a response body that failed to decode, retaining
// the operation and repository so the caller can log a diagnosable
// message.
type DecodeError struct {
	Op   string
	Repo string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decode response: %v", e.Op, e.Repo, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is classifies the error as ErrDecode for errors.Is.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while
// preserving the ability to check against sentinel errors using
// errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// maxBodyExcerpt caps the diagnostic body excerpt on transport errors.
const maxBodyExcerpt = 240

// StatusError maps a delivered non-2xx response to the taxonomy. The
// policy is uniform across drivers: 401/403 are authentication
// failures, 429 is rate limiting with the Retry-After hint preserved,
// everything else is a transport error carrying the status and a body
// excerpt. 404 is not handled here; its meaning depends on whether the
// operation lists or looks up, so drivers resolve it first.
func StatusError(op, repo string, res *httpclient.Response) error {
	switch res.Status {
	case 401, 403:
		return WrapErrorf(ErrAuth, "%s %s: status %d", op, repo, res.Status)
	case 429:
		retryAfter, _ := res.RetryAfter()
		return WrapErrorf(&RateLimitError{RetryAfter: retryAfter}, "%s %s", op, repo)
	default:
		return WrapErrorf(&TransportError{Status: res.Status, Body: bodyExcerpt(res.Body)}, "%s %s", op, repo)
	}
}

// TransportFailure wraps a network-level failure (request never
// delivered, timed out, or cancelled) into the taxonomy.
func TransportFailure(op, repo string, err error) error {
	return WrapErrorf(&TransportError{Err: err}, "%s %s", op, repo)
}

func bodyExcerpt(body []byte) string {
	if len(body) > maxBodyExcerpt {
		body = body[:maxBodyExcerpt]
	}
	return string(body)
}
