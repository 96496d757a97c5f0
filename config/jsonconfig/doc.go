/*
Jsonconfig implements configuration, reading json into an ice Module.

To use:

 1. Create the Schema. List your configurable Implementations. Each Implementations
    can be backed by several named Implementations.
 2. Schema.Parse parses bytes and creates a Configuration.
    a) for each Implementations, pick which Implementation.
    b) json.Unmarshal the json into that Implementation
    c) Implementation can now be used as a Module or json.Marshal'ed to print its configuration
 3. Configuration is an ice Module that merges each Implementation

Example:
1) Create the Schema

	schema := jsonconfig.Schema(map[string]jsonconfig.Implementations{
	 "Shape": {
	  "circle": &CircleConfig{},
	  "square": &SquareConfig{},
	  "": &CircleConfig{Type: "circle", Radius: 1},
	 },
	})

2) Parse

	conf, _ := schema.Parse([]byte(`{
	 "Shape": {
	  "Type": "square",
	  "Side": 2
	 }
	}`))

3) Build a Registry from the Configuration

	r, err := ice.NewRegistry(conf)

# Notes

Implementations are unmarshaled in place, so a Schema should be built fresh
for each Parse.
*/
package jsonconfig
