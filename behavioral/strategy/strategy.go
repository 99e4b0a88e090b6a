package strategy

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sghaida/patterns/internal/numfmt"
)

// ErrUnknownStrategy is returned by Lookup for names outside the known set.
var ErrUnknownStrategy = errors.New("strategy: unknown strategy")

// UnknownStrategyError carries the rejected name and matches ErrUnknownStrategy.
type UnknownStrategyError struct{ Name string }

// Error implements the error interface.
func (e UnknownStrategyError) Error() string {
	// Example: strategy: unknown strategy "modulo"
	return ErrUnknownStrategy.Error() + " " + strconv.Quote(e.Name)
}

// Is lets errors.Is(err, ErrUnknownStrategy) match.
func (e UnknownStrategyError) Is(target error) bool { return target == ErrUnknownStrategy }

// Strategy is a single binary numeric operation.
type Strategy interface {
	Execute(first, second float64) float64
}

// Func adapts an ordinary function to Strategy.
type Func func(first, second float64) float64

// Execute calls f(first, second).
func (f Func) Execute(first, second float64) float64 { return f(first, second) }

// Add returns first + second.
type Add struct{}

func (Add) Execute(first, second float64) float64 { return first + second }

// Subtract returns first - second.
type Subtract struct{}

func (Subtract) Execute(first, second float64) float64 { return first - second }

// Multiply returns first * second.
type Multiply struct{}

func (Multiply) Execute(first, second float64) float64 { return first * second }

// Divide returns first / second. A zero divisor follows IEEE 754.
type Divide struct{}

func (Divide) Execute(first, second float64) float64 { return first / second }

// Context holds the currently active strategy.
type Context struct {
	strategy Strategy
}

// NewContext returns a Context that starts with s.
func NewContext(s Strategy) *Context {
	return &Context{strategy: s}
}

// Calculate runs the active strategy.
func (c *Context) Calculate(first, second float64) float64 {
	return c.strategy.Execute(first, second)
}

// SetStrategy replaces the active strategy. s is not validated.
func (c *Context) SetStrategy(s Strategy) {
	c.strategy = s
}

// Names lists the names Lookup understands, in display order.
func Names() []string {
	return []string{"add", "subtract", "multiply", "divide"}
}

// Lookup resolves a strategy by name (case-insensitive).
func Lookup(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "add":
		return Add{}, nil
	case "subtract":
		return Subtract{}, nil
	case "multiply":
		return Multiply{}, nil
	case "divide":
		return Divide{}, nil
	}
	return nil, UnknownStrategyError{Name: name}
}

// Demo switches strategies on one context and prints each result:
// 4, 2, 6 and 4, one per line.
func Demo(w io.Writer) error {
	ctx := NewContext(Add{})
	steps := []struct {
		s    Strategy
		a, b float64
	}{
		{Add{}, 2, 2},
		{Subtract{}, 4, 2},
		{Multiply{}, 3, 2},
		{Divide{}, 4, 1},
	}

	for _, step := range steps {
		ctx.SetStrategy(step.s)
		if _, err := fmt.Fprintln(w, numfmt.Format(ctx.Calculate(step.a, step.b))); err != nil {
			return err
		}
	}
	return nil
}
