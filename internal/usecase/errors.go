package usecase

import "errors"

var ErrPlayersSwapped = errors.New("player X must play as X and player O as O")
