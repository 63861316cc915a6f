package entities

import "errors"

// OutcomeKind tags the result of a single charge attempt.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeFailure
	OutcomeError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	case OutcomeError:
		return "error"
	}
	return "unknown"
}

// ChargeErrorKind classifies errors raised by the payment provider.
type ChargeErrorKind int

const (
	ChargeErrorNone ChargeErrorKind = iota
	ChargeErrorCurrencyMismatch
	ChargeErrorCustomerNotFound
	ChargeErrorNetwork
	ChargeErrorOther
)

func (k ChargeErrorKind) String() string {
	switch k {
	case ChargeErrorNone:
		return "none"
	case ChargeErrorCurrencyMismatch:
		return "currency_mismatch"
	case ChargeErrorCustomerNotFound:
		return "customer_not_found"
	case ChargeErrorNetwork:
		return "network"
	case ChargeErrorOther:
		return "other"
	}
	return "unknown"
}

// ChargeOutcome is Success | Failure | Error(kind).
//
// Cause keeps the original provider error for logging; it never drives the
// status decision, ErrorKind does.
type ChargeOutcome struct {
	Kind      OutcomeKind
	ErrorKind ChargeErrorKind
	Cause     error
}

func ChargeSucceeded() ChargeOutcome {
	return ChargeOutcome{Kind: OutcomeSuccess}
}

func ChargeFailed() ChargeOutcome {
	return ChargeOutcome{Kind: OutcomeFailure}
}

func ChargeErrored(kind ChargeErrorKind, cause error) ChargeOutcome {
	return ChargeOutcome{Kind: OutcomeError, ErrorKind: kind, Cause: cause}
}

// Label is a short metrics/log friendly name: "success", "failure" or the error kind.
func (o ChargeOutcome) Label() string {
	if o.Kind == OutcomeError {
		return o.ErrorKind.String()
	}
	return o.Kind.String()
}

// Provider errors recognised by the classifier. Gateways wrap them with %w.
var (
	ErrCurrencyMismatch = errors.New("currency mismatch")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNetwork          = errors.New("payment provider unreachable")
)

// OutcomeFromCharge turns the (paid, err) pair returned by a gateway into an outcome.
func OutcomeFromCharge(paid bool, err error) ChargeOutcome {
	switch {
	case err == nil && paid:
		return ChargeSucceeded()
	case err == nil:
		return ChargeFailed()
	case errors.Is(err, ErrCurrencyMismatch):
		return ChargeErrored(ChargeErrorCurrencyMismatch, err)
	case errors.Is(err, ErrCustomerNotFound):
		return ChargeErrored(ChargeErrorCustomerNotFound, err)
	case errors.Is(err, ErrNetwork):
		return ChargeErrored(ChargeErrorNetwork, err)
	default:
		return ChargeErrored(ChargeErrorOther, err)
	}
}
