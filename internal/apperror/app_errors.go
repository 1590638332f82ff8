package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidInput = errors.New("input is not a number")
)
