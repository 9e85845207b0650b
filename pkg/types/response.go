package types

import "time"

// RulesVersion identifies the rule catalog revision carried in every response.
const RulesVersion = "2.0.0"

// StandardResponse is the envelope for all MCP tool responses. Reports stay
// timestamp-free so repeated runs compare byte for byte; the envelope carries
// the call time instead.
type StandardResponse struct {
	RulesVersion string      `json:"rulesVersion"`
	Timestamp    string      `json:"timestamp"`
	Tool         string      `json:"tool"`
	Data         interface{} `json:"data"`
}

// NewStandardResponse creates a new StandardResponse for the given tool.
func NewStandardResponse(tool string, data interface{}) *StandardResponse {
	return &StandardResponse{
		RulesVersion: RulesVersion,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Tool:         tool,
		Data:         data,
	}
}
