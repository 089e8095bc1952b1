package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/domain"
)

// fakeChatService implementación de prueba del puerto ChatService.
type fakeChatService struct {
	lastMessage string
	lastHistory []dto.ChatTurn
	reply       string
	err         error
}

func (f *fakeChatService) Reply(ctx context.Context, message string, history []dto.ChatTurn) (string, error) {
	f.lastMessage = message
	f.lastHistory = history
	if f.err != nil {
		return "", f.err
	}
	// El contexto debe llegar con deadline (timeout del caso de uso).
	if _, ok := ctx.Deadline(); !ok {
		return "", errors.New("se esperaba contexto con deadline")
	}
	return f.reply, nil
}

func TestChatSend(t *testing.T) {
	llm := &fakeChatService{reply: "Wash & Fold cuesta ₱50 por kg."}
	uc := NewChatUseCase(llm)

	history := []dto.ChatTurn{{Role: "user", Content: "Hola"}}
	out, err := uc.Send(context.Background(), dto.ChatRequest{
		Message: "¿Cuánto cuesta Wash & Fold?",
		History: history,
	})
	require.NoError(t, err)
	assert.Equal(t, llm.reply, out.Reply)
	assert.Equal(t, "¿Cuánto cuesta Wash & Fold?", llm.lastMessage)
	assert.Equal(t, history, llm.lastHistory)
}

func TestChatSend_MensajeVacio(t *testing.T) {
	uc := NewChatUseCase(&fakeChatService{})
	_, err := uc.Send(context.Background(), dto.ChatRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChatSend_ErrorDelLLM(t *testing.T) {
	llm := &fakeChatService{err: errors.New("AI: Anthropic HTTP 500")}
	uc := NewChatUseCase(llm)
	_, err := uc.Send(context.Background(), dto.ChatRequest{Message: "hola"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat:")
}
