package request

import "fmt"

// ParseError is the reason a request line was rejected.
type ParseError int

const (
	ErrInvalidRequest ParseError = iota
	ErrInvalidEncoding
	ErrInvalidProtocol
	ErrInvalidMethod
)

func (e ParseError) Error() string {
	switch e {
	case ErrInvalidRequest:
		return "invalid request"
	case ErrInvalidEncoding:
		return "invalid encoding"
	case ErrInvalidProtocol:
		return "invalid protocol"
	case ErrInvalidMethod:
		return "invalid method"
	default:
		return fmt.Sprintf("unknown parse error: %d", int(e))
	}
}
