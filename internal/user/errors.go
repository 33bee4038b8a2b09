package user

import "errors"

// ErrWrongPassword is returned when the supplied current password does
// not match the stored hash.
var ErrWrongPassword = errors.New("current password is incorrect")
