package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"learndash/internal/models"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = models.Invalid("Invalid request body")

// decodeBody rejects a missing, null or malformed JSON body with "Invalid request body".
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return errInvalidBody
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return errInvalidBody
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return errInvalidBody
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// pathID reads the {id} route variable. Routes restrict it to digits; anything
// outside the id column's range cannot name a row, so it reports missing.
func pathID(r *http.Request, missing string) (int, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		return 0, models.NotFound(missing)
	}
	return int(id), nil
}
