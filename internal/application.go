package application

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// RunApp - runs the application: one game on one terminal, both players
// sharing os.Stdin. The session blocks until the game is decided or the
// input stream fails.
func RunApp(logger *slog.Logger) error {
	log := logger.With("component", "app")

	game := entity.NewGame(uuid.New().String())
	cons := console.New(os.Stdin, os.Stdout)
	session := usecase.NewGameSession(logger, game, cons)

	log.Info("starting game", "gameID", game.ID)

	if err := session.Run(); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Info("game over", "winner", game.Winner)

	return nil
}
