package config

import "errors"

var ErrUnknownMode = errors.New("unknown mode")
