package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/leofalp/opcalc/core/calculator"
	"github.com/leofalp/opcalc/core/parse"
	"github.com/leofalp/opcalc/internal/utils"
	"github.com/leofalp/opcalc/providers/listener"
	"github.com/leofalp/opcalc/providers/observability"
	"github.com/leofalp/opcalc/providers/operation"
)

// Messages printed by the session.
const (
	MenuHeader     = "Please type in the math operation you would like to complete:"
	MenuFooter     = "Type your operation here (scroll up to see all the available operations): "
	ShortPrompt    = "Operation: "
	NumberPrompt   = "Please enter a number: "
	AnotherPrompt  = "Do you want to enter another number? (Y/N): "
	AgainPrompt    = "Do you want to calculate again? (Y/N): "
	InvalidNumber  = "Invalid input! Please enter a valid number."
	Goodbye        = "See you later."
	NoHistory      = "No results yet."
	historyCommand = "history"
	listCommand    = "list"
)

// errEOF ends the session quietly when the input runs out.
var errEOF = errors.New("end of input")

// Session is one interactive run over an input and an output stream.
type Session struct {
	calc      *calculator.Calculator
	in        *bufio.Reader
	out       io.Writer
	history   *listener.History
	observer  observability.Provider
	id        string
	menu      bool
	precision int
}

// Option configures a Session.
type Option func(*Session)

// WithHistory enables the history command. The history must also be
// subscribed to the calculator to receive results.
func WithHistory(history *listener.History) Option {
	return func(s *Session) {
		s.history = history
	}
}

// WithObserver logs session events.
func WithObserver(observer observability.Provider) Option {
	return func(s *Session) {
		s.observer = observer
	}
}

// WithMenu controls whether the full menu is printed before each symbol
// prompt. Without it a short prompt is used and "list" shows the menu.
func WithMenu(enabled bool) Option {
	return func(s *Session) {
		s.menu = enabled
	}
}

// WithPrecision sets the decimals used by the history command.
func WithPrecision(precision int) Option {
	return func(s *Session) {
		s.precision = precision
	}
}

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession returns a session reading from in and writing to out.
func NewSession(calc *calculator.Calculator, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		calc:      calc,
		in:        bufio.NewReader(in),
		out:       out,
		id:        uuid.NewString(),
		menu:      true,
		precision: listener.ShortestPrecision,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session id attached to every log record.
func (s *Session) ID() string {
	return s.id
}

// Run loops until the user declines another calculation, types quit or the
// input ends. Only read failures are returned.
func (s *Session) Run(ctx context.Context) error {
	if s.observer != nil {
		ctx = observability.ContextWithObserver(ctx, s.observer)
	}
	s.log(ctx, "session started", observability.Int(observability.AttrCatalogSize, len(s.calc.Symbols())))

	err := s.loop(ctx)
	if errors.Is(err, errEOF) {
		err = nil
	}
	s.log(ctx, "session ended")
	return err
}

func (s *Session) loop(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.menu {
			s.printMenu()
		} else {
			s.print(ShortPrompt)
		}
		line, err := s.readLine()
		if err != nil {
			return err
		}
		symbol := strings.TrimSpace(line)

		switch strings.ToLower(symbol) {
		case "":
			continue
		case "quit", "exit":
			s.println(Goodbye)
			return nil
		case listCommand:
			if !s.menu {
				s.printMenu()
				s.println("")
			}
			continue
		case historyCommand:
			s.printHistory()
			continue
		}

		op, ok := s.calc.Lookup(symbol)
		if !ok {
			s.println((&operation.UnknownOperationError{Symbol: symbol}).Error())
			s.log(ctx, "unknown operation", observability.String(observability.AttrCalcSymbol, utils.TruncateString(symbol, 0)))
			continue
		}

		operands, err := s.readOperands(op)
		if err != nil {
			return err
		}

		if _, err := s.calc.Calculate(ctx, symbol, operands); err != nil {
			s.println(err.Error())
			continue
		}

		s.print(AgainPrompt)
		answer, err := s.readLine()
		if err != nil {
			return err
		}
		if !yes(answer) {
			s.println(Goodbye)
			return nil
		}
	}
}

func (s *Session) readOperands(op *operation.Operation) ([]float64, error) {
	if op.Arity.Variadic() || len(op.Operands) == 0 {
		return s.readList(op.Arity)
	}

	operands := make([]float64, 0, len(op.Operands))
	for _, operand := range op.Operands {
		value, err := s.readNumber(operandPrompt(operand))
		if err != nil {
			return nil, err
		}
		operands = append(operands, value)
	}
	return operands, nil
}

// readList gathers numbers until the user stops answering Y. A single line
// may hold several numbers. Fixed arities without operand names stop as soon
// as enough numbers were entered.
func (s *Session) readList(arity operation.Arity) ([]float64, error) {
	var operands []float64
	for {
		s.print(NumberPrompt)
		line, err := s.readLine()
		if err != nil {
			return nil, err
		}
		values, err := parse.Operands(line)
		if err != nil {
			s.println(InvalidNumber)
			continue
		}
		operands = append(operands, values...)

		if !arity.Variadic() && len(operands) >= arity.Min {
			return operands, nil
		}

		s.print(AnotherPrompt)
		answer, err := s.readLine()
		if err != nil {
			return nil, err
		}
		if !yes(answer) {
			return operands, nil
		}
	}
}

func (s *Session) readNumber(prompt string) (float64, error) {
	for {
		s.print(prompt)
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		value, err := parse.Number(line)
		if err == nil {
			return value, nil
		}
		s.println(InvalidNumber)
	}
}

func operandPrompt(operand operation.Operand) string {
	if operand.Description != "" {
		return fmt.Sprintf("Please enter %s (%s): ", operand.Name, operand.Description)
	}
	return fmt.Sprintf("Please enter %s: ", operand.Name)
}

func (s *Session) printMenu() {
	s.println(MenuHeader)
	for _, op := range s.calc.Operations() {
		s.println(op.Symbol + " for " + op.Description)
	}
	s.print(MenuFooter)
}

func (s *Session) printHistory() {
	if s.history == nil || s.history.Count() == 0 {
		s.println(NoHistory)
		return
	}
	for i, result := range s.history.All() {
		s.println(fmt.Sprintf("%d: %s", i+1, listener.FormatResult(result, s.precision)))
	}
}

// readLine returns the next line without its terminator. Lines have no
// length limit, so a long pasted list reaches the parser like any other input.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			return "", errEOF
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Session) log(ctx context.Context, msg string, attrs ...observability.Attribute) {
	if s.observer == nil {
		return
	}
	s.observer.Debug(ctx, msg, append(attrs, observability.String(observability.AttrSessionID, s.id))...)
}

func yes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "Y")
}
