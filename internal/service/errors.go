package service

import "errors"

var (
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrGroupNotFound       = errors.New("group not found")
)
