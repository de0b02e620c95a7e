package api

import (
	"net/http"

	"github.com/adrianliechti/avatar/pkg/voice"
)

const probeInput = "Hello, this is a test."

// Probe endpoints report upstream failures in the body with status 200 so
// they can be checked by hand.

func (h *Handler) handleTestCompletion(w http.ResponseWriter, r *http.Request) {
	text, err := h.relay.Complete(r.Context(), probeInput)

	if err != nil {
		writeJson(w, CompletionProbeResponse{
			Status: ProbeStatusError,
			Error:  err.Error(),
		})

		return
	}

	writeJson(w, CompletionProbeResponse{
		Status:   ProbeStatusSuccess,
		Response: text,
	})
}

func (h *Handler) handleTestSynthesis(w http.ResponseWriter, r *http.Request) {
	audio, err := h.relay.Synthesize(r.Context(), probeInput, voice.DefaultName)

	if err != nil {
		writeJson(w, SynthesisProbeResponse{
			Status: ProbeStatusError,
			Error:  err.Error(),
		})

		return
	}

	length := len(audio)

	writeJson(w, SynthesisProbeResponse{
		Status:      ProbeStatusSuccess,
		AudioLength: &length,
	})
}
