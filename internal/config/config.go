package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
)

type AspireConfig struct {
	BaseURL  string `json:"base_url"`
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
}

type AppConfig struct {
	// Базовый URL для именованных удаленных вызовов (frappe-style methods).
	// По умолчанию — собственный адрес сервера, см. cmd/server.
	MethodBaseURL string       `json:"method_base_url"`
	Aspire        AspireConfig `json:"aspire"`
}

func findConfigFile() (string, error) {
	paths := []string{"config.json", "../config.json", "../../config.json"}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			log.Printf("[INFO] Using config file: %s", p)
			return p, nil
		}
	}
	return "", os.ErrNotExist
}

// Load читает config.json (поиск по соседним директориям, как запускали — так и найдет)
func Load() (*AppConfig, error) {
	path, err := findConfigFile()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bytes, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var cfg AppConfig
	if err := json.Unmarshal(bytes, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}
