package order

import "fmt"

// ValidationKind 标识校验失败的类别，便于上层按类别计数/分支。
type ValidationKind string

const (
	KindInvalidSymbol    ValidationKind = "InvalidSymbol"
	KindInvalidSide      ValidationKind = "InvalidSide"
	KindInvalidOrderType ValidationKind = "InvalidOrderType"
	KindInvalidQuantity  ValidationKind = "InvalidQuantity"
	KindInvalidPrice     ValidationKind = "InvalidPrice"
	KindUnexpectedPrice  ValidationKind = "UnexpectedPrice"
)

// ValidationError carries a machine-readable kind plus the human message
// shown to the user. Validation errors never reach the network layer.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalidf(kind ValidationKind, format string, args ...any) *ValidationError {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
