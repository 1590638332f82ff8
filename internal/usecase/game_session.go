package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type gameConsole interface {
	PrintWelcome() error
	PromptTurn(mark string) error
	ReadSquare() (int, error)
	PrintBoard(board [9]string) error
	PrintWinner(mark string) error
}

type GameSession struct {
	logger *slog.Logger

	game    *entity.Game
	console gameConsole
}

func NewGameSession(logger *slog.Logger, game *entity.Game, console gameConsole) *GameSession {
	return &GameSession{
		logger: logger,

		game:    game,
		console: console,
	}
}

// Run - executes the turn loop: prompt, read, place, print the board,
// evaluate, toggle. A rejected line re-prompts the same player without
// any feedback; a failing read or write aborts the session.
func (that *GameSession) Run() error {
	log := that.logger.With("component", "session", "gameID", that.game.ID)

	if err := that.console.PrintWelcome(); err != nil {
		return fmt.Errorf("failed to print welcome: %w", err)
	}

	for that.game.IsOngoing() {
		if err := that.console.PromptTurn(that.game.Turn); err != nil {
			return fmt.Errorf("failed to prompt turn: %w", err)
		}

		cell, err := that.console.ReadSquare()
		if errors.Is(err, apperror.ErrInvalidInput) {
			log.Debug("discarded input", "turn", that.game.Turn, "error", err)
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to read square: %w", err)
		}

		if err = that.game.Place(cell); err != nil {
			if errors.Is(err, apperror.ErrInvalidCell) || errors.Is(err, apperror.ErrCellOccupied) {
				log.Debug("rejected move", "turn", that.game.Turn, "cell", cell, "error", err)
				continue
			}

			return fmt.Errorf("failed to place mark: %w", err)
		}

		if err = that.console.PrintBoard(that.game.Board); err != nil {
			return fmt.Errorf("failed to print board: %w", err)
		}

		that.game.UpdateGameState()
		if that.game.IsOngoing() {
			that.game.ToggleTurn()
		}
	}

	if err := that.console.PrintWinner(that.game.Winner); err != nil {
		return fmt.Errorf("failed to print winner: %w", err)
	}

	log.Info("game finished", "winner", that.game.Winner)

	return nil
}
