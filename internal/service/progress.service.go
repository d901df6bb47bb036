package service

import (
	"sync"
)

// ProgressService receives stage-level status updates from concurrent ticker
// runs. It is purely observational: nothing in the pipeline reads it to make
// decisions, and a slow or absent observer never blocks analysis.
type ProgressService interface {
	Update(agent string, ticker string, status string)
	Status(ticker string) (string, bool)
	Snapshot() map[string]string
}

type progressServiceHandler struct {
	mu       sync.RWMutex
	statuses map[string]string
}

func NewProgressService() ProgressService {
	return &progressServiceHandler{
		statuses: map[string]string{},
	}
}

func (h *progressServiceHandler) Update(agent string, ticker string, status string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ticker == "" {
		h.statuses[agent] = status
		return
	}
	h.statuses[ticker] = status
}

func (h *progressServiceHandler) Status(ticker string) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	status, ok := h.statuses[ticker]
	return status, ok
}

// Snapshot copies the current statuses; callers get a stable view even while
// updates keep arriving.
func (h *progressServiceHandler) Snapshot() map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make(map[string]string, len(h.statuses))
	for k, v := range h.statuses {
		out[k] = v
	}
	return out
}
