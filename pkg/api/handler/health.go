package handler

import (
	"net/http"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/api/response"
)

type health struct{}

func NewHealth() *health {
	return &health{}
}

func (h *health) Check(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{"status": "ok"})
}
