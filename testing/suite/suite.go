package suite

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Console *console.Console
	Output  *bytes.Buffer
}

// New - wires a console over a scripted player input, one entered line per
// element. Everything the game prints is captured in Output; after the last
// line the input hits EOF, the way a closed stdin would.
func New(t *testing.T, script ...string) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	input := strings.NewReader(strings.Join(script, "\n") + "\n")
	output := &bytes.Buffer{}

	return &Suite{
		T:       t,
		Logger:  logger,
		Console: console.New(input, output),
		Output:  output,
	}
}
