package cerr

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// Kind classifies a custody error so callers can branch on the failure class
// without string matching. The classification decides retry behavior.
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation marks malformed or out-of-range input, never retried.
	KindValidation
	// KindNetwork marks transport failures talking to a chain gateway, retryable.
	KindNetwork
	// KindInsufficientFunds marks balances too low to cover amount plus fees, not retryable.
	KindInsufficientFunds
	// KindRateLimit marks provider throttling, retryable after backoff.
	KindRateLimit
	// KindBroadcast marks a rejected transaction submission whose on-chain state is uncertain.
	KindBroadcast
	// KindChainRejection marks a transaction included on-chain but reverted/failed.
	KindChainRejection
	// KindConfiguration marks missing or inconsistent operator configuration, not retryable.
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNetwork:
		return "network"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindRateLimit:
		return "rate_limit"
	case KindBroadcast:
		return "broadcast"
	case KindChainRejection:
		return "chain_rejection"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// Retryable reports whether an operation failing with this kind may be retried.
func (k Kind) Retryable() bool {
	switch k {
	case KindNetwork, KindRateLimit:
		return true
	default:
		return false
	}
}

// Error is a classified custody error. Messages must never contain key material,
// passphrases or other secrets as they end up in logs and API responses.
type Error struct {
	kind       Kind
	msg        string
	err        error
	retryAfter time.Duration
}

// WithRetryAfter attaches a provider-supplied minimum wait before retrying,
// typically from an HTTP 429 Retry-After header.
func (e *Error) WithRetryAfter(d time.Duration) *Error {
	e.retryAfter = d
	return e
}

// RetryAfter returns the provider-supplied minimum retry wait, or zero.
func (e *Error) RetryAfter() time.Duration {
	return e.retryAfter
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %s", e.kind, e.msg, e.err)
	}

	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the classification of the error.
func (e *Error) Kind() Kind {
	return e.kind
}

// New creates a classified error with the given message.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an existing error, annotating it with a message.
// Wrapping nil returns nil.
func Wrap(err error, kind Kind, msg string) error {
	if err == nil {
		return nil
	}

	return &Error{kind: kind, msg: msg, err: err}
}

// Wrapf classifies an existing error with a formatted message.
// Wrapping nil returns nil.
func Wrapf(err error, kind Kind, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}

	return &Error{kind: kind, msg: fmt.Sprintf(format, args...), err: err}
}

// KindOf extracts the classification of err, unwrapping as needed.
// Unclassified errors report KindUnknown.
func KindOf(err error) Kind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind()
	}

	return KindUnknown
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// IsRetryable reports whether err may be retried based on its classification.
func IsRetryable(err error) bool {
	return KindOf(err).Retryable()
}

// RetryAfterOf extracts the provider-supplied retry hint, or zero when absent.
func RetryAfterOf(err error) time.Duration {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.RetryAfter()
	}

	return 0
}
