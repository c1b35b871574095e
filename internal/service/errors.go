package service

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyMember      = errors.New("user is already a member")
	ErrAlreadyInvited     = errors.New("user is already invited")
	ErrInvitationResolved = errors.New("invitation already resolved")
	ErrNotGroupBudget     = errors.New("budget is not a group budget")
	ErrOwnerRemoval       = errors.New("owner cannot be removed")
	ErrInvalidShare       = errors.New("share must be between 0 and 100")
	ErrInvalidTemplate    = errors.New("invalid recurring template")
)
