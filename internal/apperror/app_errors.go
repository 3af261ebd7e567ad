package apperror

import "errors"

var (
	ErrGameFinished      = errors.New("game is already finished")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrNoAvailableMoves  = errors.New("no available moves")
	ErrPositionNotFound  = errors.New("position not found in move database")
	ErrMalformedDatabase = errors.New("malformed move database")
	ErrUnknownPlayerKind = errors.New("unknown player kind")
)
