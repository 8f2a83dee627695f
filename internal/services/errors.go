package services

import "errors"

// Sentinel errors for business-rule failures. Handlers match these with
// errors.Is and translate them to the HTTP error taxonomy; anything else
// coming out of a service is an internal error.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyCart       = errors.New("cart is empty")

	ErrGatewayOrderExists = errors.New("gateway order already created for this order")
	ErrGateway            = errors.New("payment gateway request failed")
	ErrInvalidSignature   = errors.New("invalid payment signature")

	ErrInvalidStage    = errors.New("invalid shipment stage")
	ErrStageNotForward = errors.New("order already at or past the requested stage")
	ErrOrderTerminal   = errors.New("order is in a terminal state")
)
