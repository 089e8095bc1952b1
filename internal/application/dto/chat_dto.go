package dto

// ChatTurn un turno previo de la conversación. El cliente conserva su propio
// historial; el servidor no guarda estado de conversación.
type ChatTurn struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// ChatRequest mensaje del widget de chat de la landing.
type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history,omitempty"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply string `json:"reply"`
}
