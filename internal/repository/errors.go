package repository

import "errors"

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrUserNotFound   = errors.New("user not found")
	ErrInputNotFound  = errors.New("student input not found")
	ErrPlanNotFound   = errors.New("plan not found")
)
