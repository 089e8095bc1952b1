package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/application/ports"
	"github.com/jhoicas/laundry-api/internal/domain"
)

// chatTimeout tope por mensaje: las llamadas al LLM pueden demorar varios
// segundos y no deben retener goroutines del servidor.
const chatTimeout = 10 * time.Second

// ChatUseCase orquesta el widget de chat de la landing. El servidor no guarda
// historial: cada petición trae los turnos previos que el cliente conserva.
type ChatUseCase struct {
	llm ports.ChatService
}

// NewChatUseCase construye el caso de uso inyectando el puerto ChatService.
func NewChatUseCase(llm ports.ChatService) *ChatUseCase {
	return &ChatUseCase{llm: llm}
}

// Send valida el mensaje y delega al asistente con timeout de 10 s.
func (uc *ChatUseCase) Send(ctx context.Context, in dto.ChatRequest) (*dto.ChatResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, chatTimeout)
	defer cancel()

	reply, err := uc.llm.Reply(ctx, in.Message, in.History)
	if err != nil {
		return nil, fmt.Errorf("chat: %w", err)
	}
	return &dto.ChatResponse{Reply: reply}, nil
}
