package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""
)

// WinCombos lists the 8 winning lines in evaluation order:
// rows top to bottom, columns left to right, main diagonal, anti-diagonal.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Game holds the 3x3 board (row-major), the mark whose turn it is,
// and the winner once a line is complete.
type Game struct {
	ID     string
	Board  [9]string
	Turn   string
	Winner string
	Status string
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  [9]string{},
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// Place - writes the current turn's mark into the given cell.
// It neither toggles the turn nor evaluates the outcome; the driver
// invokes those as separate steps. A failed call leaves the game unchanged.
func (that *Game) Place(cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Board[cell] != EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	that.Board[cell] = that.Turn

	return nil
}

// DetermineWinner - scans all 8 lines and returns the mark holding a
// complete one, or an empty string. Every combo is checked; when several
// lines are complete at once the last one in WinCombos order decides.
func (that *Game) DetermineWinner() string {
	winner := EmptyCell

	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			winner = a
		}
	}

	// A full board with no complete line is not a result of its own.
	return winner
}

// UpdateGameState - writes the evaluation result into the game.
// The turn is left as is: once a winner exists it must not change again.
func (that *Game) UpdateGameState() {
	if winner := that.DetermineWinner(); winner != EmptyCell {
		that.Winner = winner
		that.Status = StatusFinished
	}
}

// ToggleTurn - flips the turn between X and O; the driver calls it only
// when the game is still ongoing after evaluation.
func (that *Game) ToggleTurn() {
	if that.Turn == PlayerX {
		that.Turn = PlayerO
	} else {
		that.Turn = PlayerX
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
