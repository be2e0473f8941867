package models

// FlowDocument is a recorded user-interaction flow as exported by Arcade.
// The analyzer only reads it; unknown fields are ignored.
type FlowDocument struct {
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	UseCase        string          `json:"useCase"`
	CreatedWith    string          `json:"createdWith"`
	UploadID       string          `json:"uploadId"`
	Steps          []Step          `json:"steps"`
	CapturedEvents []CapturedEvent `json:"capturedEvents"`
}

// Step is one recorded step. Type is CHAPTER, IMAGE, or VIDEO.
type Step struct {
	Type         string       `json:"type"`
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	ClickContext ClickContext `json:"clickContext"`
	PageContext  PageContext  `json:"pageContext"`
	Hotspots     []Hotspot    `json:"hotspots"`
}

// Hotspot is one recorded user action within a step.
// Kind is click, type, scroll, or drag when the recorder captured it.
type Hotspot struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Text  string `json:"text"`
}

// ClickContext describes the DOM element the user clicked.
type ClickContext struct {
	Text        string `json:"text"`
	ElementType string `json:"elementType"`
}

// PageContext describes the page a step was recorded on.
type PageContext struct {
	URL string `json:"url"`
}

// CapturedEvent is a motion event (typing, scrolling) recorded alongside steps.
type CapturedEvent struct {
	Type string `json:"type"`
}
