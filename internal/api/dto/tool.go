package dto

import "github.com/invopop/jsonschema"

// FunctionDeclaration is the shape agent frameworks expect for a callable function.
type FunctionDeclaration struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters"`
}

type ListToolsResponse struct {
	Tools []FunctionDeclaration `json:"tools"`
}
