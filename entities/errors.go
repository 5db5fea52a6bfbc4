package entities

import (
	"errors"
	"fmt"
)

var ErrInvalidPurchase = errors.New("invalid purchase")

type InvalidPurchaseError struct {
	Reason string
}

func NewInvalidPurchaseError(reason string) *InvalidPurchaseError {
	return &InvalidPurchaseError{Reason: reason}
}

func (e *InvalidPurchaseError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidPurchase, e.Reason)
}

func (e *InvalidPurchaseError) Unwrap() error {
	return ErrInvalidPurchase
}

// PermanentError marks failures that retrying will not fix.
type PermanentError interface {
	error
	IsPermanent() bool
}

func IsPermanent(err error) bool {
	var permanent PermanentError
	return errors.As(err, &permanent) && permanent.IsPermanent()
}

type GatewayRejectedError struct {
	Operation  string
	StatusCode int
}

func (e GatewayRejectedError) Error() string {
	return fmt.Sprintf("gateway rejected %s: status code %d", e.Operation, e.StatusCode)
}

func (e GatewayRejectedError) IsPermanent() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
