// Package console plays a human against the engine over a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/board"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
)

var (
	errInvalidSide   = errors.New("invalid side")
	errInvalidAnswer = errors.New("inappropriate answer")
)

// stateFn is one state of the game loop. A nil next state ends the session.
type stateFn func(ctx context.Context) (stateFn, error)

type Console struct {
	logger  *slog.Logger
	in      *bufio.Scanner
	out     *termenv.Output
	maxSize int
	delay   time.Duration
	profile *termenv.Profile

	board  *board.Board
	engine *minimax.Engine
}

type Option func(*Console)

// WithDelay pauses before every engine move so the human can follow the game.
func WithDelay(d time.Duration) Option {
	return func(c *Console) {
		c.delay = d
	}
}

// WithProfile forces a colour profile instead of detecting it from the writer.
func WithProfile(profile termenv.Profile) Option {
	return func(c *Console) {
		c.profile = &profile
	}
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, maxSize int, opts ...Option) *Console {
	c := &Console{
		logger:  logger.With("component", "console"),
		in:      bufio.NewScanner(in),
		maxSize: maxSize,
	}

	for _, opt := range opts {
		opt(c)
	}

	var outOpts []termenv.OutputOption
	if c.profile != nil {
		outOpts = append(outOpts, termenv.WithProfile(*c.profile))
	}

	c.out = termenv.NewOutput(out, outOpts...)

	return c
}

// Run drives the state machine until the player declines another game, the input ends or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	state := that.startup

	for state != nil {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("console stopped: %w", err)
		}

		next, err := state(ctx)
		if errors.Is(err, io.EOF) {
			that.println("Bye!")
			return nil
		}

		if err != nil {
			return err
		}

		state = next
	}

	return nil
}

func (that *Console) startup(_ context.Context) (stateFn, error) {
	that.println("")
	that.println("Welcome to Tic-Tac-Toe")

	size, err := that.promptSize()
	if err != nil {
		return that.complain(err, that.startup)
	}

	that.println(fmt.Sprintf("Grid size is %d", size))

	machine, err := that.promptSide()
	if err != nil {
		return that.complain(err, that.startup)
	}

	that.println("AI side is " + that.mark(machine))

	if that.board != nil && that.board.Size() == size {
		that.board.Clear()
	} else {
		that.board = board.New(size)
	}

	that.engine = minimax.New(machine)
	that.render()

	that.logger.Debug("new game", "size", size, "machine", machine.String())

	if machine == board.Cross {
		return that.aiTurn, nil
	}

	return that.playerTurn, nil
}

func (that *Console) playerTurn(_ context.Context) (stateFn, error) {
	that.println("Make your move!")

	col, err := that.promptIndex("column")
	if err != nil {
		return that.complain(err, that.playerTurn)
	}

	row, err := that.promptIndex("row")
	if err != nil {
		return that.complain(err, that.playerTurn)
	}

	if err = that.board.Set(that.board.Index(row, col), that.engine.OpponentSide()); err != nil {
		var occupied *board.OccupiedError
		if errors.As(err, &occupied) {
			err = fmt.Errorf("square already contains %s", occupied.Mark)
		}

		return that.complain(err, that.playerTurn)
	}

	that.render()

	return that.aiTurn, nil
}

func (that *Console) aiTurn(ctx context.Context) (stateFn, error) {
	if that.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("console stopped: %w", ctx.Err())
		case <-time.After(that.delay):
		}
	}

	started := time.Now()
	if that.engine.SelectAndApplyMove(that.board) {
		that.logger.Debug("engine moved", "elapsed", time.Since(started))
		that.render()
	}

	return that.outcomeCheck, nil
}

func (that *Console) outcomeCheck(_ context.Context) (stateFn, error) {
	switch winner := that.board.Winner(); {
	case winner == that.engine.MachineSide():
		that.println("Condolences, you lost")
	case winner != board.None:
		that.println("Congratulations, you won!")
	case that.board.IsFull():
		that.println("It's a draw!")
	default:
		return that.playerTurn, nil
	}

	return that.continuePrompt, nil
}

func (that *Console) continuePrompt(_ context.Context) (stateFn, error) {
	that.println("One more game? [Y/N]:")

	answer, err := that.readLine()
	if err != nil {
		return nil, err
	}

	switch strings.ToUpper(answer) {
	case "Y":
		return that.startup, nil
	case "N":
		return nil, nil
	default:
		return that.complain(errInvalidAnswer, that.continuePrompt)
	}
}

// complain reports a recoverable input error and repeats state. Read failures are returned as is.
func (that *Console) complain(err error, state stateFn) (stateFn, error) {
	if errors.Is(err, io.EOF) || errors.Is(err, bufio.ErrTooLong) {
		return nil, err
	}

	that.println(that.out.String(capitalize(err.Error()) + "!").Foreground(that.out.Color("9")).String())

	return state, nil
}

func (that *Console) promptSize() (int, error) {
	that.println(fmt.Sprintf("Enter grid side length (%d..%d):", board.MinSize, that.maxSize))

	line, err := that.readLine()
	if err != nil {
		return 0, err
	}

	size, err := strconv.Atoi(leadingDigits(line))
	if err != nil || size < board.MinSize || size > that.maxSize {
		return 0, apperror.ErrInvalidBoardSize
	}

	return size, nil
}

// promptSide asks for the human's side and returns the engine's.
func (that *Console) promptSide() (board.Mark, error) {
	that.println("Choose side [X/O]:")

	line, err := that.readLine()
	if err != nil {
		return board.None, err
	}

	human, err := board.ParseMark(line)
	if err != nil {
		return board.None, errInvalidSide
	}

	return human.Opponent(), nil
}

func (that *Console) promptIndex(name string) (int, error) {
	that.println(fmt.Sprintf("Enter %s index for your next move:", name))

	line, err := that.readLine()
	if err != nil {
		return 0, err
	}

	index, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid %s index", name)
	}

	if index < 0 || index >= that.board.Size() {
		return 0, fmt.Errorf("invalid %s index %d", name, index)
	}

	return index, nil
}

func (that *Console) readLine() (string, error) {
	if !that.in.Scan() {
		if err := that.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return strings.TrimSpace(that.in.Text()), nil
}

func (that *Console) println(s string) {
	_, _ = that.out.WriteString(s + "\n")
}

func leadingDigits(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		return s
	}

	return s[:end]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
