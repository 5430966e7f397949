package eft

import "errors"

var ErrInvalid = errors.New("invalid element field template")
