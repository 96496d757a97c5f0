package shapes

import (
	"github.com/twitter/goice/config/jsonconfig"
	"github.com/twitter/goice/ice"
)

// CircleConfig binds Shape (or the Shape called Name) to a Circle.
type CircleConfig struct {
	ice.BaseModule
	Type      string
	Name      string `json:",omitempty"`
	Radius    float64
	Singleton bool
}

func (c *CircleConfig) Init(r *ice.Registry) {
	provide(c, c.Name, c.Singleton, func() (Shape, error) {
		return &Circle{Radius: c.Radius}, nil
	})
}

// SquareConfig binds Shape (or the Shape called Name) to a Square.
type SquareConfig struct {
	ice.BaseModule
	Type      string
	Name      string `json:",omitempty"`
	Side      float64
	Singleton bool
}

func (c *SquareConfig) Init(r *ice.Registry) {
	provide(c, c.Name, c.Singleton, func() (Shape, error) {
		return &Square{Side: c.Side}, nil
	})
}

func provide(m ice.Module, name string, singleton bool, f func() (Shape, error)) {
	p := ice.ProviderFunc[Shape](f)
	switch {
	case name == "" && singleton:
		ice.ProvideSingleton[Shape](m, p)
	case name == "":
		ice.ProvideDynamic[Shape](m, p)
	case singleton:
		ice.ProvideSingletonNamed[Shape](m, name, p)
	default:
		ice.ProvideDynamicNamed[Shape](m, name, p)
	}
}

// NoHighlightConfig binds nothing.
type NoHighlightConfig struct {
	ice.BaseModule
	Type string
}

func (c *NoHighlightConfig) Init(r *ice.Registry) {}

// Schema returns the configuration options of the shapes domain:
//   - "Shape": the main shape, a singleton circle of radius 1 by default
//   - "Highlight": a named shape drawn over it, none by default
func Schema() jsonconfig.Schema {
	return jsonconfig.Schema(map[string]jsonconfig.Implementations{
		"Shape": {
			"circle": &CircleConfig{},
			"square": &SquareConfig{},
			"":       &CircleConfig{Type: "circle", Radius: 1, Singleton: true},
		},
		"Highlight": {
			"none":   &NoHighlightConfig{},
			"circle": &CircleConfig{Name: HighlightName},
			"square": &SquareConfig{Name: HighlightName},
			"":       &NoHighlightConfig{Type: "none"},
		},
	})
}
