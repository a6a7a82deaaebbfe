package serve

import (
	"encoding/json"

	"github.com/praetorian-inc/strmatch/pkg/selector"
	"github.com/praetorian-inc/strmatch/pkg/types"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "search" | "select" | "algorithms" | "close"
	Payload json.RawMessage `json:"payload"`
}

// SearchPayload is the payload for "search" requests.
// Algorithm is optional; when empty the server's selector decides.
type SearchPayload struct {
	Text      string              `json:"text"`
	Pattern   string              `json:"pattern"`
	Algorithm types.AlgorithmName `json:"algorithm,omitempty"`
}

// SelectPayload is the payload for "select" requests
type SelectPayload struct {
	Text    string `json:"text"`
	Pattern string `json:"pattern"`
}

// SelectData is the data field for "select" responses.
// Features and Scores are only set by the score strategy.
type SelectData struct {
	Algorithm types.AlgorithmName     `json:"algorithm,omitempty"`
	Chosen    bool                    `json:"chosen"`
	Strategy  string                  `json:"strategy"`
	Features  *selector.FeatureVector `json:"features,omitempty"`
	Scores    selector.ScoreTable     `json:"scores,omitempty"`
}

// AlgorithmsData is the data field for "algorithms" responses
type AlgorithmsData struct {
	Algorithms []types.AlgorithmName `json:"algorithms"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" | "search" | "select" | "algorithms" | request type on error
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version  string `json:"version"`
	Strategy string `json:"strategy"`
}
