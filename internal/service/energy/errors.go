package energy

import (
	"fmt"

	"github.com/ougirez/energy-dashboard/internal/domain"
	"github.com/ougirez/energy-dashboard/internal/pkg/constants"
)

type FetchErrorKind string

const (
	KindTransport     FetchErrorKind = "transport"
	KindBackendStatus FetchErrorKind = "backend_status"
	KindMissingField  FetchErrorKind = "missing_field"
)

const (
	MsgBackendError       = "Backend returned error. Using demo data."
	MsgBackendUnreachable = "Unable to connect to backend. Using demo data."
)

// FetchError tells the three ways resolving the dataset can fail apart.
// Transport and backend-status failures are recovered with the synthetic
// dataset; a missing field is not.
type FetchError struct {
	Kind       FetchErrorKind
	StatusCode int
	Field      string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing '%s' column in backend data", e.Field)
	case KindBackendStatus:
		if e.Err != nil {
			return fmt.Sprintf("backend error (status %d): %s", e.StatusCode, e.Err)
		}
		return fmt.Sprintf("backend error (status %d)", e.StatusCode)
	default:
		if e.Err != nil {
			return fmt.Sprintf("backend unreachable: %s", e.Err)
		}
		return "backend unreachable"
	}
}

func (e *FetchError) Unwrap() []error {
	errs := []error{e.sentinel()}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func (e *FetchError) sentinel() error {
	switch e.Kind {
	case KindMissingField:
		return constants.ErrMissingField
	case KindBackendStatus:
		return constants.ErrBackendStatus
	default:
		return constants.ErrBackendUnreachable
	}
}

// Recoverable reports whether the synthetic dataset may stand in.
func (e *FetchError) Recoverable() bool {
	return e.Kind != KindMissingField
}

// UserMessage is the text shown to the user for this failure.
func (e *FetchError) UserMessage() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("Missing '%s' column in backend data.", e.Field)
	case KindBackendStatus:
		return MsgBackendError
	default:
		return MsgBackendUnreachable
	}
}

func (e *FetchError) Advisory() *domain.Advisory {
	switch e.Kind {
	case KindBackendStatus:
		return &domain.Advisory{Kind: domain.AdvisoryBackendError, Message: MsgBackendError}
	case KindTransport:
		return &domain.Advisory{Kind: domain.AdvisoryBackendUnreachable, Message: MsgBackendUnreachable}
	default:
		return nil
	}
}
