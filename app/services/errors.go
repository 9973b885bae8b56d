package services

import "errors"

// ErrInvalidCredentials is returned by Login when no registry holds a
// matching username and password.
var ErrInvalidCredentials = errors.New("invalid username or password")
