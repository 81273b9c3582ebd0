package domain

import "github.com/pkg/errors"

var (
	ErrNotConfirmed   = errors.New("action was not confirmed")
	ErrNoRelationship = errors.New("no relationship available for this account")
	ErrSuperseded     = errors.New("profile view switched to another account")
	ErrNotLoaded      = errors.New("profile is not loaded")
	ErrNotFollowing   = errors.New("lists are only available for followed accounts")
	ErrEmptyReference = errors.New("account reference has neither account nor id")
	ErrUnknownAction  = errors.New("unknown relationship action")
)
