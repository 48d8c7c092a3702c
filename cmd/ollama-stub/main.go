// Command ollama-stub is a tiny development stand-in for an Ollama
// server. It answers /api/generate with a canned cover letter shaped by
// the incoming prompt, so the CLI can be exercised end to end without a
// model.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
)

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "gemma:2b"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":11434"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"models": []map[string]any{{"name": model}},
		})
	})
	mux.HandleFunc("/api/generate", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		var response string
		switch {
		case strings.Contains(req.Prompt, "professional resume formatter"):
			response = "---\nJane Doe\njane@example.com\n\nExperience\nSoftware Engineer, Example Oy\n\nSkills\nGo, SQL\n---"
		case strings.Contains(req.Prompt, "requested the following personalization"):
			response = "Subject: Application (revised)\n\nDear Hiring Team,\n\nThis revision follows your request.\n\nBest regards,\nJane Doe"
		default:
			response = "Subject: Application for the advertised role\n\nDear Hiring Team,\n\nMy experience matches the technologies named in your posting, and I am eager to learn the rest.\n\nBest regards,\nJane Doe"
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"model":    req.Model,
			"response": response,
			"done":     true,
		})
	})

	log.Printf("ollama-stub listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
