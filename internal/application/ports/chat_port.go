package ports

import (
	"context"

	"github.com/jhoicas/laundry-api/internal/application/dto"
)

// ChatService define el puerto de salida hacia el asistente conversacional.
// Cualquier adaptador (Anthropic, OpenAI, Ollama, mock) debe implementar esta
// interfaz; la aplicación solo conoce este contrato, no la implementación.
type ChatService interface {
	// Reply envía el mensaje del visitante junto con el historial que el
	// cliente conserva y devuelve el texto de respuesta del asistente.
	// El contexto debe llevar un timeout para evitar bloqueos en la llamada externa.
	Reply(ctx context.Context, message string, history []dto.ChatTurn) (string, error)
}
