package services

import "github.com/pkg/errors"

// Sentinel errors surfaced to the HTTP layer for status mapping.
var (
	// ErrInvalidSignature indicates a webhook body failed signature
	// verification and must be rejected without processing.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrInvoiceNotFound indicates no invoice matched the requested id.
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrBillerNotFound indicates no biller matched the requested id.
	ErrBillerNotFound = errors.New("biller not found")
)
