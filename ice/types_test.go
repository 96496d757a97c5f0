package ice

import (
	"errors"
	"math"
	"sync/atomic"
)

type Shape interface {
	Area() float64
}

type Circle struct {
	Radius float64
}

func (c *Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

type Square struct {
	Side float64
}

func (s *Square) Area() float64 { return s.Side * s.Side }

// shapes is the module most tests start from:
//   Shape        -> *Circle, singleton
//   Shape["sq"]  -> *Square, dynamic
type shapes struct {
	BaseModule
}

func (m *shapes) Init(r *Registry) {
	BindSingleton[Shape, *Circle](m)
	BindDynamicNamed[Shape, *Square](m, "sq")
}

// funcModule runs an arbitrary Init, and counts how often it ran.
type funcModule struct {
	BaseModule
	init  func(m *funcModule, r *Registry)
	inits int
}

func newFuncModule(init func(m *funcModule, r *Registry)) *funcModule {
	return &funcModule{init: init}
}

func (m *funcModule) Init(r *Registry) {
	m.inits++
	if m.init != nil {
		m.init(m, r)
	}
}

// counter is a Provider that counts calls and hands out fresh values.
type counter struct {
	calls int32
	make  func(n int32) (Shape, error)
}

func (c *counter) Get() (Shape, error) {
	n := atomic.AddInt32(&c.calls, 1)
	if c.make != nil {
		return c.make(n)
	}
	return &Square{Side: float64(n)}, nil
}

func (c *counter) Calls() int { return int(atomic.LoadInt32(&c.calls)) }

// hooked counts InitInjected calls.
type hooked struct {
	hooks int32
	fail  error
}

func (h *hooked) InitInjected(r *Registry) error {
	atomic.AddInt32(&h.hooks, 1)
	return h.fail
}

func (h *hooked) Hooks() int { return int(atomic.LoadInt32(&h.hooks)) }

// Evener and Odder need each other; the hook ties them together once both
// singletons exist.
type Evener struct {
	odder *Odder
}

func (e *Evener) InitInjected(r *Registry) (err error) {
	e.odder, err = Get[*Odder](r)
	return err
}

func (e *Evener) IsEven(i int) bool {
	if i == 0 {
		return true
	}
	return e.odder.IsOdd(i - 1)
}

type Odder struct {
	evener *Evener
}

func (o *Odder) InitInjected(r *Registry) (err error) {
	o.evener, err = Get[*Evener](r)
	return err
}

func (o *Odder) IsOdd(i int) bool {
	if i == 0 {
		return false
	}
	return o.evener.IsEven(i - 1)
}

// built only through a registered constructor
type Config struct {
	Name string
}

type broken struct{}

var errBroken = errors.New("broken on purpose")

func init() {
	RegisterConstructor(func() (*Config, error) { return &Config{Name: "registered"}, nil })
	RegisterConstructor(func() (*broken, error) { return nil, errBroken })
}
