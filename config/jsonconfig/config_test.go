package jsonconfig_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twitter/goice/config/jsonconfig"
	"github.com/twitter/goice/ice"
)

// Foo and Bar are what the configured modules bind.
type Foo interface {
	Kind() string
}

type Bar struct {
	Arg1 int
	Arg3 string
}

type defaultFoo struct{}

func (defaultFoo) Kind() string { return "default" }

type noargFoo struct{}

func (noargFoo) Kind() string { return "noarg" }

type fooDefaultConfig struct {
	ice.BaseModule
	Type string
}

func (c *fooDefaultConfig) Init(r *ice.Registry) {
	ice.ProvideSingleton[Foo](c, ice.ProviderFunc[Foo](func() (Foo, error) { return defaultFoo{}, nil }))
}

type fooNoargConfig struct {
	ice.BaseModule
	Type string
}

func (c *fooNoargConfig) Init(r *ice.Registry) {
	ice.ProvideSingleton[Foo](c, ice.ProviderFunc[Foo](func() (Foo, error) { return noargFoo{}, nil }))
}

type barDefaultConfig struct {
	ice.BaseModule
	Type string
	Arg3 string
	Arg4 map[string]string
}

func (c *barDefaultConfig) Init(r *ice.Registry) {
	ice.ProvideDynamic[*Bar](c, ice.ProviderFunc[*Bar](func() (*Bar, error) { return &Bar{Arg3: c.Arg3}, nil }))
}

type barTwoargConfig struct {
	ice.BaseModule
	Type string
	Arg1 int
	Arg2 []int
}

func (c *barTwoargConfig) Init(r *ice.Registry) {
	ice.ProvideDynamic[*Bar](c, ice.ProviderFunc[*Bar](func() (*Bar, error) { return &Bar{Arg1: c.Arg1}, nil }))
}

func makeSchema() jsonconfig.Schema {
	return jsonconfig.Schema(map[string]jsonconfig.Implementations{
		"Foo": {
			"default": &fooDefaultConfig{},
			"noarg":   &fooNoargConfig{},
			"":        &fooDefaultConfig{Type: "default"},
		},
		"Bar": {
			"default": &barDefaultConfig{},
			"twoarg":  &barTwoargConfig{},
			"": &barDefaultConfig{
				Type: "default",
				Arg3: "3",
				Arg4: map[string]string{"a": "b"},
			},
		},
	})
}

const (
	defaultConfig = `{
 "Bar": {
  "Type": "default",
  "Arg3": "3",
  "Arg4": {
   "a": "b"
  }
 },
 "Foo": {
  "Type": "default"
 }
}`
	config1 = `{
 "Bar": {
  "Type": "twoarg",
  "Arg1": 1,
  "Arg2": [
   1,
   2,
   3
  ]
 },
 "Foo": {
  "Type": "noarg"
 }
}`
	config2 = `{
 "Bar": {
  "Type": "twoarg",
  "Arg1": 1,
  "Arg2": [
   1,
   2,
   3,
   4
  ]
 },
 "Foo": {
  "Type": "default"
 }
}`
	config3 = `{
 "Bar": {
  "Type": "twoarg",
  "Arg1": 1,
  "Arg2": [1,2,3,4]
 }
}`
)

type parsedAndMarshaled struct {
	input  string
	output string
}

func TestParse(t *testing.T) {
	tests := []parsedAndMarshaled{
		{defaultConfig, defaultConfig},
		{"", defaultConfig},
		{config1, config1},
		{config2, config2},
		{config3, config2},
	}
	for _, test := range tests {
		m, err := makeSchema().Parse([]byte(test.input))
		if err != nil {
			t.Fatalf("Error parsing input %v: %v", test.input, err)
		}
		bytes, err := json.MarshalIndent(m, "", " ")
		if err != nil {
			t.Fatalf("Error marshaling %v from input %v: %v", m, test.input, err)
		}
		actual := string(bytes)
		if actual != test.output {
			t.Fatalf("unexpected output:\n%v\n######\n%v$", actual, test.output)
		}
	}
}

func TestConfigurationIsAModule(t *testing.T) {
	conf, err := makeSchema().Parse([]byte(config1))
	require.NoError(t, err)

	r, err := ice.NewRegistry(conf)
	require.NoError(t, err)
	assert.Equal(t, 2, conf.Len())

	foo, err := ice.Get[Foo](r)
	require.NoError(t, err)
	assert.Equal(t, "noarg", foo.Kind())

	bar := ice.MustGet[*Bar](r)
	assert.Equal(t, 1, bar.Arg1)
	assert.NotSame(t, bar, ice.MustGet[*Bar](r))
}

func TestDefaultsAreModules(t *testing.T) {
	conf, err := makeSchema().Parse(nil)
	require.NoError(t, err)

	r, err := ice.NewRegistry(conf)
	require.NoError(t, err)
	assert.Equal(t, "default", ice.MustGet[Foo](r).Kind())
	assert.Equal(t, "3", ice.MustGet[*Bar](r).Arg3)
}

func TestParseErrors(t *testing.T) {
	_, err := makeSchema().Parse([]byte(`{"Foo": {"Type": "nope"}}`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), `"nope" is not a valid Implementation of [default noarg]`)

	_, err = makeSchema().Parse([]byte(`{"Foo": `))
	assert.Error(t, err)

	_, err = makeSchema().Parse([]byte(`{"Bar": {"Type": "twoarg", "Arg1": "one"}}`))
	assert.Error(t, err)
}

func TestGetConfigText(t *testing.T) {
	asset := func(name string) ([]byte, error) {
		if name == "config/local.json" {
			return []byte(config1), nil
		}
		return nil, assert.AnError
	}

	text, err := jsonconfig.GetConfigText("local.json", asset)
	require.NoError(t, err)
	assert.Equal(t, config1, string(text))

	_, err = jsonconfig.GetConfigText("missing.json", asset)
	assert.Error(t, err)

	text, err = jsonconfig.GetConfigText(config3, asset)
	require.NoError(t, err)
	assert.Equal(t, config3, string(text))
}
