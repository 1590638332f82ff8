package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSinkClosed = errors.New("sink closed")

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errSinkClosed
}

func TestConsole_PrintWelcome(t *testing.T) {
	out := &bytes.Buffer{}
	cons := New(strings.NewReader(""), out)

	err := cons.PrintWelcome()

	require.NoError(t, err)

	expected := "tic tac toe!\n" +
		"Board squares are numbered as follows:\n" +
		"------------\n" +
		"| 1 | 2 | 3 |\n" +
		"-------------\n" +
		"| 4 | 5 | 6 |\n" +
		"-------------\n" +
		"| 7 | 8 | 9 |\n" +
		"-------------\n"
	assert.Equal(t, expected, out.String())
}

func TestConsole_PromptTurn(t *testing.T) {
	out := &bytes.Buffer{}
	cons := New(strings.NewReader(""), out)

	err := cons.PromptTurn(entity.PlayerX)

	require.NoError(t, err)

	// No trailing newline: the cursor stays on the prompt line.
	assert.Equal(t, "Player X, enter a square>>", out.String())
}

func TestConsole_PrintBoard(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		out := &bytes.Buffer{}
		cons := New(strings.NewReader(""), out)

		err := cons.PrintBoard([9]string{})

		require.NoError(t, err)

		expected := "-------------\n" +
			"|   |   |   |\n" +
			"-------------\n" +
			"|   |   |   |\n" +
			"-------------\n" +
			"|   |   |   |\n" +
			"-------------\n"
		assert.Equal(t, expected, out.String())
	})

	t.Run("Board mid-game", func(t *testing.T) {
		out := &bytes.Buffer{}
		cons := New(strings.NewReader(""), out)

		err := cons.PrintBoard([9]string{
			entity.PlayerX, "", entity.PlayerO,
			"", entity.PlayerX, "",
			entity.PlayerO, "", "",
		})

		require.NoError(t, err)

		expected := "-------------\n" +
			"| X |   | O |\n" +
			"-------------\n" +
			"|   | X |   |\n" +
			"-------------\n" +
			"| O |   |   |\n" +
			"-------------\n"
		assert.Equal(t, expected, out.String())
	})
}

func TestConsole_PrintWinner(t *testing.T) {
	out := &bytes.Buffer{}
	cons := New(strings.NewReader(""), out)

	err := cons.PrintWinner(entity.PlayerO)

	require.NoError(t, err)

	// No trailing newline after the terminal message.
	assert.Equal(t, "O wins", out.String())
}

func TestConsole_ReadSquare(t *testing.T) {
	t.Run("Parses a square number into a cell index", func(t *testing.T) {
		cons := New(strings.NewReader("5\n"), &bytes.Buffer{})

		cell, err := cons.ReadSquare()

		require.NoError(t, err)
		assert.Equal(t, 4, cell)
	})

	t.Run("Trims surrounding whitespace", func(t *testing.T) {
		cons := New(strings.NewReader("  7  \n"), &bytes.Buffer{})

		cell, err := cons.ReadSquare()

		require.NoError(t, err)
		assert.Equal(t, 6, cell)
	})

	t.Run("Reads lines in sequence", func(t *testing.T) {
		cons := New(strings.NewReader("1\n9\n"), &bytes.Buffer{})

		first, err := cons.ReadSquare()
		require.NoError(t, err)

		second, err := cons.ReadSquare()
		require.NoError(t, err)

		assert.Equal(t, 0, first)
		assert.Equal(t, 8, second)
	})

	t.Run("Returns ErrInvalidInput for a non-numeric line", func(t *testing.T) {
		cons := New(strings.NewReader("abc\n"), &bytes.Buffer{})

		_, err := cons.ReadSquare()

		require.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("Returns ErrInvalidInput for an empty line", func(t *testing.T) {
		cons := New(strings.NewReader("\n"), &bytes.Buffer{})

		_, err := cons.ReadSquare()

		require.ErrorIs(t, err, apperror.ErrInvalidInput)
	})

	t.Run("Zero maps below the board and is left to the core to reject", func(t *testing.T) {
		cons := New(strings.NewReader("0\n"), &bytes.Buffer{})

		cell, err := cons.ReadSquare()

		require.NoError(t, err)
		assert.Equal(t, -1, cell)
	})

	t.Run("Returns EOF when the input stream is exhausted", func(t *testing.T) {
		cons := New(strings.NewReader(""), &bytes.Buffer{})

		_, err := cons.ReadSquare()

		require.ErrorIs(t, err, io.EOF)
	})
}

func TestConsole_FlushFailure(t *testing.T) {
	// Writes are buffered, so a broken sink surfaces on the flush.
	cons := New(strings.NewReader(""), brokenWriter{})

	err := cons.PrintWelcome()

	require.Error(t, err)
	require.ErrorIs(t, err, errSinkClosed)
	assert.ErrorContains(t, err, "failed to flush output")
}
