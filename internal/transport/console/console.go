package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const rowSeparator = "-------------"

// squareNumbering is printed once at startup; squares are numbered 1 to 9,
// left to right, top to bottom. The first rule is intentionally one dash
// short.
const squareNumbering = "------------\n" +
	"| 1 | 2 | 3 |\n" +
	rowSeparator + "\n" +
	"| 4 | 5 | 6 |\n" +
	rowSeparator + "\n" +
	"| 7 | 8 | 9 |\n" +
	rowSeparator

// Console - is the text transport of the game: it prompts the players,
// reads their moves and renders the board. Output is buffered and flushed
// after every message; a flush failure is returned to the caller.
type Console struct {
	scanner *bufio.Scanner
	writer  *bufio.Writer
}

func New(input io.Reader, output io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(input),
		writer:  bufio.NewWriter(output),
	}
}

// PrintWelcome - prints the banner and the square numbering diagram.
func (that *Console) PrintWelcome() error {
	fmt.Fprintln(that.writer, "tic tac toe!")
	fmt.Fprintln(that.writer, "Board squares are numbered as follows:")
	fmt.Fprintln(that.writer, squareNumbering)

	return that.flush()
}

// PromptTurn - asks the given mark for a square, without a trailing
// newline, and flushes before the caller blocks on input.
func (that *Console) PromptTurn(mark string) error {
	fmt.Fprintf(that.writer, "Player %s, enter a square>>", mark)

	return that.flush()
}

// ReadSquare - reads one line, trims it and parses the entered square
// number, returning the zero-based cell index. A line that is not a number
// yields ErrInvalidInput; a closed or failing input stream yields the read
// error itself, which the caller must treat as fatal.
func (that *Console) ReadSquare() (int, error) {
	line, err := that.readLine()
	if err != nil {
		return 0, err
	}

	number, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
	}

	return number - 1, nil
}

// PrintBoard - renders the board between separator rules, one line per row.
func (that *Console) PrintBoard(board [9]string) error {
	fmt.Fprintln(that.writer, rowSeparator)

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			fmt.Fprintf(that.writer, "|%s", renderCell(board[row*3+col]))
		}
		fmt.Fprintln(that.writer, "|")
		fmt.Fprintln(that.writer, rowSeparator)
	}

	return that.flush()
}

// PrintWinner - prints the terminal message, without a trailing newline.
func (that *Console) PrintWinner(mark string) error {
	fmt.Fprintf(that.writer, "%s wins", mark)

	return that.flush()
}

func (that *Console) readLine() (string, error) {
	if that.scanner.Scan() {
		return that.scanner.Text(), nil
	}

	if err := that.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return "", io.EOF
}

// flush - reports the first write error of the batch, if any.
func (that *Console) flush() error {
	if err := that.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

func renderCell(mark string) string {
	if mark == entity.EmptyCell {
		return "   "
	}

	return " " + mark + " "
}
