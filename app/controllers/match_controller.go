package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/josecleiton/dominosim/app/game"
	"github.com/josecleiton/dominosim/app/utils"
	"github.com/sirupsen/logrus"
)

// MatchHandler simulates one match per request. The optional seed query
// parameter makes the response reproducible; a missing or zero seed picks a
// random one, as on the command line.
func MatchHandler(opts game.SimulationOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		w.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
			return
		}

		seed, err := seedFromRequest(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		transcript := NewTranscript(seed)
		if _, err := game.Simulate(game.NewRandomness(seed), transcript, opts); err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		jsonResp, err := json.Marshal(transcript)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		w.Write(jsonResp)
	}
}

func seedFromRequest(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return utils.NewSeed()
	}

	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("seed must be an unsigned integer, not %q", raw)
	}
	if seed == 0 {
		return utils.NewSeed()
	}

	return seed, nil
}

func writeError(w http.ResponseWriter, status int, err error) {
	errorMap := map[string]interface{}{
		"error":  err.Error(),
		"status": http.StatusText(status),
		"code":   status,
	}

	w.WriteHeader(status)

	jsonResp, marshalErr := json.Marshal(errorMap)
	if marshalErr != nil {
		utils.Log.WithError(marshalErr).Error("error happened in JSON marshal")
		w.Write([]byte(err.Error()))
	} else {
		w.Write(jsonResp)
	}

	utils.Log.WithFields(logrus.Fields{"status": status}).WithError(err).Warn("match request failed")
}
