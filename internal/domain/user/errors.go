package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrReviewerAccessRequired = errors.New("leave review requires HR or Admin role")
)
