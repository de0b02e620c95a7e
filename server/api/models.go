package api

type ChatRequest struct {
	Message *string `json:"message"`
	Voice   *string `json:"voice,omitempty"`
}

type ChatResponse struct {
	Text string `json:"text"`

	// base64 encoded audio/mpeg
	Audio string `json:"audio"`
}

type HealthResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type VoicesResponse struct {
	Voices  []string `json:"voices"`
	Default string   `json:"default"`
}

type ProbeStatus string

const (
	ProbeStatusSuccess ProbeStatus = "success"
	ProbeStatusError   ProbeStatus = "error"
)

type CompletionProbeResponse struct {
	Status ProbeStatus `json:"status"`

	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

type SynthesisProbeResponse struct {
	Status ProbeStatus `json:"status"`

	AudioLength *int   `json:"audio_length,omitempty"`
	Error       string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}
