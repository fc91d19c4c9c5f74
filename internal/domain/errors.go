package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrder          = errors.New("order has no line items")
	ErrInvalidQuantity     = errors.New("quantity must be a positive integer")
	ErrInvalidMenuItem     = errors.New("menu item is not available for ordering")
	ErrInvalidTransition   = errors.New("illegal order status transition")
	ErrOrderNotFound       = errors.New("order not found")
	ErrRestaurantNotFound  = errors.New("restaurant not found")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotOwner            = errors.New("user does not own this restaurant")
	ErrOrderNumberTaken    = errors.New("order number already exists")
	ErrUnsupportedLanguage = errors.New("unsupported target language")
	ErrProviderUnavailable = errors.New("translation provider unavailable")
)

type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindConflict
	KindUpstream
	KindPersistence
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUpstream:
		return "upstream"
	default:
		return "persistence"
	}
}

// Error attaches a kind to an underlying sentinel so callers can branch with
// errors.Is on either the sentinel or the kind.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func WrapError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf reports the kind of err, defaulting to persistence for untyped errors.
func KindOf(err error) ErrorKind {
	for err != nil {
		if de, ok := err.(*Error); ok {
			return de.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return KindPersistence
}
