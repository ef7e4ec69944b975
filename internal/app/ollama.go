package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"silas_rag/internal/config"
)

// ensureEmbedModel проверяет, что Ollama запущена и модель эмбеддингов
// доступна; при необходимости скачивает её
func ensureEmbedModel(cfg *config.Config) error {
	type ollamaPullRequest struct {
		Name   string `json:"name"`
		Stream bool   `json:"stream"`
	}

	// 1. Проверяем, что Ollama отвечает
	resp, err := http.Get(cfg.OllamaURL + "/api/tags")
	if err != nil || resp.StatusCode != 200 {
		return fmt.Errorf("ollama is not running or not reachable at %s", cfg.OllamaURL)
	}
	defer resp.Body.Close()

	// 2. Проверяем наличие модели эмбеддингов
	body, _ := io.ReadAll(resp.Body)
	if bytes.Contains(body, []byte(cfg.OllamaEmbedModel)) {
		log.Printf("Model %s is available", cfg.OllamaEmbedModel)
		return nil
	}

	log.Printf("Model %s not found, pulling...", cfg.OllamaEmbedModel)
	b, _ := json.Marshal(ollamaPullRequest{Name: cfg.OllamaEmbedModel, Stream: false})
	pullResp, err := http.Post(cfg.OllamaURL+"/api/pull", "application/json", bytes.NewBuffer(b))
	if err != nil {
		return fmt.Errorf("failed to pull model %s: %v", cfg.OllamaEmbedModel, err)
	}
	defer pullResp.Body.Close()

	if pullResp.StatusCode != 200 {
		return fmt.Errorf("failed to pull model %s: status %d", cfg.OllamaEmbedModel, pullResp.StatusCode)
	}

	log.Printf("Model %s pulled successfully", cfg.OllamaEmbedModel)
	return nil
}
