// Package shapes is a small domain for exercising ice from the command line:
// a Shape interface with two implementations, selected and parameterized by
// jsonconfig, and a Canvas that wires itself up through the Injectable hook.
package shapes

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/twitter/goice/ice"
)

type Shape interface {
	Area() float64
	fmt.Stringer
}

type Circle struct {
	Radius float64
}

func (c *Circle) Area() float64  { return math.Pi * c.Radius * c.Radius }
func (c *Circle) String() string { return fmt.Sprintf("circle(r=%g)", c.Radius) }

type Square struct {
	Side float64
}

func (s *Square) Area() float64  { return s.Side * s.Side }
func (s *Square) String() string { return fmt.Sprintf("square(s=%g)", s.Side) }

// Canvas is never bound; ice builds a fresh one per request and its hook
// fills it in from whatever the registry binds Shape to.
type Canvas struct {
	Main      Shape
	Highlight Shape
}

// HighlightName is the name of the optional Shape drawn over Main.
const HighlightName = "highlight"

func (c *Canvas) InitInjected(r *ice.Registry) error {
	main, err := ice.Get[Shape](r)
	if err != nil {
		return err
	}
	c.Main = main

	highlight, err := ice.GetNamed[Shape](r, HighlightName)
	switch {
	case err == nil:
		c.Highlight = highlight
	case !errors.Is(err, ice.ErrUnresolvable):
		return err
	}
	return nil
}

func (c *Canvas) String() string {
	if c.Highlight == nil {
		return fmt.Sprintf("canvas[%v]", c.Main)
	}
	return fmt.Sprintf("canvas[%v + %v]", c.Main, c.Highlight)
}
