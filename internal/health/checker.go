package health

import (
	"github.com/Ayash-Bera/fortaleza/internal/config"
	"github.com/Ayash-Bera/fortaleza/internal/models"
)

const (
	Provider = "Google Gemini"

	ModeGemini    = "gemini"
	ModeSimulator = "simulator"

	statusActive    = "active"
	statusSimulated = "simulated"
)

// Checker reports service state derived only from startup configuration, so
// repeated calls return identical reports.
type Checker struct {
	health models.HealthResponse
	info   models.InfoResponse
}

func NewChecker(cfg *config.Config) *Checker {
	mode, status := ModeGemini, statusActive
	message := "Servidor funcionando com Gemini API"
	if !cfg.HasAPIKey() {
		mode, status = ModeSimulator, statusSimulated
		message = "Servidor funcionando em modo simulador"
	}

	return &Checker{
		health: models.HealthResponse{
			Status:      "OK",
			Message:     message,
			Model:       cfg.Gemini.Model,
			Mode:        mode,
			Environment: cfg.Server.Environment,
		},
		info: models.InfoResponse{
			Provider:   Provider,
			Model:      cfg.Gemini.Model,
			Status:     status,
			APIVersion: cfg.Gemini.APIVersion,
		},
	}
}

func (h *Checker) Check() models.HealthResponse {
	return h.health
}

func (h *Checker) Info() models.InfoResponse {
	return h.info
}
