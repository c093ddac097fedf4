package utils

import "github.com/invopop/jsonschema"

// GenerateSchema describes the JSON documents S is decoded from. Properties
// not declared on S are rejected.
func GenerateSchema[S any](title, description string) jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	jsonSchema := reflector.Reflect(new(S))
	jsonSchema.Title = title
	jsonSchema.Description = description

	return *jsonSchema
}
