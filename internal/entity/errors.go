package entity

import "errors"

var ErrUnknownGameStatus = errors.New("unknown game status")
