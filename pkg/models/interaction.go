package models

// Interaction is one human-readable user action extracted from a flow,
// in document order.
type Interaction struct {
	Index   int    `json:"index"`
	Kind    string `json:"kind"`
	Action  string `json:"action"`
	Details string `json:"details,omitempty"`
	URL     string `json:"url,omitempty"`
}
