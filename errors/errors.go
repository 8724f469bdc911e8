package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic       = fmt.Errorf("worker panic")
	ErrMissingLink       = fmt.Errorf("missing download link")
	ErrInvalidLink       = fmt.Errorf("invalid download link")
	ErrUnexpectedStatus  = fmt.Errorf("unexpected http status")
	ErrMissingAttachment = fmt.Errorf("missing attachment")
	ErrMissingName       = fmt.Errorf("missing file name")
	ErrInsufficientSpace = fmt.Errorf("insufficient disk space")
	ErrQueueFull         = fmt.Errorf("upload queue unavailable")
	ErrTransferNotFound  = fmt.Errorf("transfer not found")
)

// Kind classifies transfer failures by the layer that produced them.
type Kind string

const (
	KindLink     Kind = "LINK_ERROR"
	KindIO       Kind = "IO_ERROR"
	KindDelivery Kind = "DELIVERY_ERROR"
	KindUsage    Kind = "USAGE_ERROR"
	KindUnknown  Kind = "UNKNOWN"
)

// TransferError is returned by every transfer phase.
type TransferError struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *TransferError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

func Link(op string, err error) error {
	return &TransferError{Kind: KindLink, Op: op, Err: err}
}

func IO(op string, err error) error {
	return &TransferError{Kind: KindIO, Op: op, Err: err}
}

func Delivery(op string, err error) error {
	return &TransferError{Kind: KindDelivery, Op: op, Err: err}
}

func Usage(op string, err error) error {
	return &TransferError{Kind: KindUsage, Op: op, Err: err}
}

// KindOf returns the kind of the outermost TransferError in the chain.
func KindOf(err error) Kind {
	var te *TransferError
	if stderrors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}

// Is and As are re-exported so callers do not need both errors packages.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}
