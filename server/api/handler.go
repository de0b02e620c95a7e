package api

import (
	"encoding/json"
	"net/http"

	"github.com/adrianliechti/avatar/pkg/relay"
	"github.com/adrianliechti/avatar/pkg/voice"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	relay  *relay.Relay
	voices *voice.Map
}

func New(r *relay.Relay, voices *voice.Map) (*Handler, error) {
	if voices == nil {
		voices = voice.New(nil)
	}

	h := &Handler{
		relay:  r,
		voices: voices,
	}

	return h, nil
}

// AttachHealth registers the liveness route, which stays reachable without
// authentication.
func (h *Handler) AttachHealth(r chi.Router) {
	r.Get("/", h.handleHealth)
}

func (h *Handler) Attach(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/voices", h.handleVoices)

	r.Get("/test/groq", h.handleTestCompletion)
	r.Get("/test/elevenlabs", h.handleTestSynthesis)
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	text := http.StatusText(code)

	if err != nil {
		text = err.Error()
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	enc.Encode(ErrorResponse{
		Detail: text,
	})
}
