package errors

import "fmt"

var (
	ErrMissingToken  = fmt.Errorf("no token provided")
	ErrInvalidToken  = fmt.Errorf("invalid token")
	ErrSessionClosed = fmt.Errorf("session closed")
	ErrSlowConsumer  = fmt.Errorf("send buffer full")
)
