package domain

import "errors"

var (
	ErrMemberAlreadyExists  = errors.New("member already exists")
	ErrMemberNotFound       = errors.New("member not found")
	ErrContributionNotFound = errors.New("contribution not found")
	ErrMalformedID          = errors.New("malformed id")
)
