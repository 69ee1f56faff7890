package user

import "errors"

var (
	ErrUnknownRole          = errors.New("unknown role")
	ErrForbidden            = errors.New("insufficient permissions")
	ErrEmployeeLinkRequired = errors.New("no employee record is linked to this account")
)
