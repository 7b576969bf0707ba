package handler

import (
	"encoding/json"
	"net/http"
)

func Bad(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, "bad", http.StatusBadRequest) // want "use the JSON error writer instead of http.Error"
}

func Good(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "bad"})
}
