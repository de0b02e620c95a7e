package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/adrianliechti/avatar/pkg/relay"
	"github.com/adrianliechti/avatar/pkg/voice"
)

const maxRequestSize = 1 << 20

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	message, voiceName, err := readChatRequest(w, r)

	if err != nil {
		var maxErr *http.MaxBytesError

		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}

		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	reply, err := h.relay.Chat(r.Context(), message, voiceName)

	if err != nil {
		writeRelayError(w, err)
		return
	}

	writeJson(w, ChatResponse{
		Text:  reply.Text,
		Audio: reply.Audio,
	})
}

func readChatRequest(w http.ResponseWriter, r *http.Request) (string, string, error) {
	var req ChatRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestSize))

	if err := dec.Decode(&req); err != nil {
		return "", "", decodeError(err)
	}

	// the body must hold exactly one JSON value
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			err = errors.New("unexpected data after JSON value")
		}

		return "", "", decodeError(err)
	}

	if req.Message == nil {
		return "", "", errors.New("message: field required")
	}

	if strings.TrimSpace(*req.Message) == "" {
		return "", "", errors.New("message: must not be empty")
	}

	voiceName := voice.DefaultName

	if req.Voice != nil && *req.Voice != "" {
		voiceName = *req.Voice
	}

	return *req.Message, voiceName, nil
}

func decodeError(err error) error {
	var maxErr *http.MaxBytesError

	if errors.As(err, &maxErr) {
		return err
	}

	return errors.New("invalid request body: " + err.Error())
}

func writeRelayError(w http.ResponseWriter, err error) {
	var completionErr *relay.CompletionError
	var synthesisErr *relay.SynthesisError

	if errors.As(err, &completionErr) || errors.As(err, &synthesisErr) {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeError(w, http.StatusInternalServerError, errors.New("Unexpected error: "+err.Error()))
}
