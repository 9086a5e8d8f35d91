package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	InternalServerError ErrorCode = "InternalServerError"
	ValidationError     ErrorCode = "ValidationError"
	NotFound            ErrorCode = "NotFound"
	ProductNotFound     ErrorCode = "ProductNotFound"
	InvalidProductID    ErrorCode = "InvalidProductID"
	InvalidSortKey      ErrorCode = "InvalidSortKey"
	InvalidSize         ErrorCode = "InvalidSize"
	SellerNotFound      ErrorCode = "SellerNotFound"
	JobNotFound         ErrorCode = "JobNotFound"
)

// AppError is an application error carrying a machine-readable code.
type AppError struct {
	Code    ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func WrapError(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, cause: err}
}

// GetCode extracts the code of the first AppError in err's chain.
func GetCode(err error) (ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// DataError reports an enumerated field holding a value outside its set.
type DataError struct {
	ProductID int
	Field     string
	Value     string
}

func (e *DataError) Error() string {
	if e.ProductID != 0 {
		return fmt.Sprintf("product %d: invalid %s %q", e.ProductID, e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

// EmptyAggregationError is returned when prices are aggregated over no offers.
type EmptyAggregationError struct{}

func (*EmptyAggregationError) Error() string { return "no price data" }

var ErrNoPriceData error = &EmptyAggregationError{}
