package jsonconfig

import (
	"encoding/json"
	"path"
	"regexp"
	"sort"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/twitter/goice/ice"
)

// Schema holds the different Implementations's the client wants to configure
type Schema map[string]Implementations

// EmptySchema returns an empty Schema, needed if you don't allow configuration
func EmptySchema() Schema {
	return map[string]Implementations{}
}

// Implementations maps the the names of implementations to the Implementation
// As a special case, "" maps to a default implementation that will not be unmarshal'ed,
// and so the Implementation will be used as-is.
type Implementations map[string]Implementation

type Implementation interface {
	// The Implementation needs to do 3 things:
	// 1) parse the JSON config
	// 2) register its bindings with an ice Registry
	// 3) print its configuration
	// 1 & 3 are handled implicitly by json.(Un)marshal
	// 2 is handled by being an ice Module
	ice.Module
}

// Configuration is itself a Module, that merges each Implementation in
// (in Design Patterns terminology, it's a Composite)
type Configuration struct {
	ice.BaseModule
	Impls map[string]ice.Module
}

// Init merges the Implementations into the Configuration, in name order.
func (c *Configuration) Init(r *ice.Registry) {
	names := make([]string, 0, len(c.Impls))
	for name := range c.Impls {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := c.Merge(r, c.Impls[name]); err != nil {
			panic(errors.WithMessagef(err, "jsonconfig: installing %v", name))
		}
	}
}

// MarshalJSON prints the configuration that was parsed.
func (c *Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Impls)
}

var emptyJson = []byte("{}")

func (schema Schema) Parse(text []byte) (*Configuration, error) {
	var parsedConfig map[string]json.RawMessage
	if len(text) == 0 {
		text = emptyJson
	}
	err := json.Unmarshal(text, &parsedConfig)
	if err != nil {
		return nil, errors.Wrap(err, "Couldn't parse top-level config")
	}
	log.Debugf("config parsed to:%+v", parsedConfig)

	for optionName := range parsedConfig {
		if _, ok := schema[optionName]; !ok {
			log.Warnf("config has %v, which nothing reads", optionName)
		}
	}

	result := &Configuration{Impls: make(map[string]ice.Module)}
	// Parse each option (aka Implementations, which isn't a valid variable name)
	for optionName, impls := range schema {
		optionText := parsedConfig[optionName]
		// Parse this Implementations's JSON just enough to get the type
		implName, err := parseType(optionText)
		if err != nil {
			return nil, errors.Wrapf(err, "Error parsing type for Implementations %v", optionName)
		}
		impl, ok := impls[implName]
		if !ok {
			return nil, errors.Errorf("Error parsing Implementations %v: %q is not a valid Implementation of %v", optionName, implName, implNames(impls))
		}
		if len(optionText) > 0 {
			// Now parse it fully, with the right Implementation
			err = json.Unmarshal(optionText, &impl)
			if err != nil {
				return nil, errors.Wrapf(err, "Error parsing variable %v", optionName)
			}
		}
		result.Impls[optionName] = impl
	}
	return result, nil
}

func implNames(impls Implementations) []string {
	names := make([]string, 0, len(impls))
	for name := range impls {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Find the type, which is simply the string value for the key "Type"
func parseType(data json.RawMessage) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var t struct{ Type string }
	err := json.Unmarshal(data, &t)
	if err != nil {
		return "", err
	}
	return t.Type, nil
}

// GetConfigText finds the right text for a configFlag.
// If configFlag looks like a filename (of the form foo.bar where foo and bar are just alphanumeric),
// read it as an asset.
// Otherwise, assume it's the literal json text.
func GetConfigText(configFlag string, asset func(string) ([]byte, error)) ([]byte, error) {
	if matched, _ := regexp.Match(`^[[:alnum:]]*\.[[:alnum:]]*$`, []byte(configFlag)); matched {
		configFileName := path.Join("config", configFlag)
		log.Infof("reading config filename %v", configFileName)
		configText, err := asset(configFileName)
		if err != nil {
			return nil, errors.Wrapf(err, "Error Loading Config File %v", configFileName)
		}
		return configText, nil
	}
	log.Infof("using -config as JSON config: %v", configFlag)
	return []byte(configFlag), nil
}
