package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/laundry-api/internal/application/dto"
	"github.com/jhoicas/laundry-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa ChatService.
var _ ports.ChatService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	anthropicSystemPrompt = `Eres el asistente virtual de una lavandería (laundry shop).
Respondes preguntas de clientes sobre los servicios, precios y horarios de la tienda.

Servicios y tarifas (por unidad/kg, en pesos):
- Wash & Fold: ₱50
- Ironing & Pressing: ₱30
- Dry Cleaning: ₱150

Reglas:
- Responde en el idioma del cliente, de forma breve y amable.
- Si te preguntan el total, multiplica tarifa por cantidad.
- Si no sabes algo (estado de una orden concreta, reclamos), indica al cliente
  que contacte a la tienda directamente. No inventes datos.`
)

// AnthropicService adaptador que implementa ChatService usando la API REST de Anthropic (Claude).
// Usa net/http de la librería estándar de Go; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey:  apiKey,
		model:   model,
		baseURL: anthropicMessagesURL,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Reply envía el mensaje del cliente (más el historial que mantiene el
// front-end) a Claude y devuelve el texto de la respuesta. El servidor no
// guarda estado de conversación.
func (s *AnthropicService) Reply(ctx context.Context, message string, history []dto.ChatTurn) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    anthropicSystemPrompt,
		Messages:  buildMessages(message, history),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	// Manejar errores HTTP de la API de Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}

	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: Claude devolvió respuesta vacía")
	}

	reply := strings.TrimSpace(anthResp.Content[0].Text)
	if reply == "" {
		return "", fmt.Errorf("AI: Claude devolvió texto vacío")
	}
	return reply, nil
}

// buildMessages arma la lista de turnos para la API: historial primero,
// luego el mensaje actual. La API exige roles "user"/"assistant"; cualquier
// rol desconocido del front-end se normaliza a "user".
func buildMessages(message string, history []dto.ChatTurn) []anthropicMessage {
	msgs := make([]anthropicMessage, 0, len(history)+1)
	for _, turn := range history {
		role := turn.Role
		if role != "assistant" {
			role = "user"
		}
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		msgs = append(msgs, anthropicMessage{Role: role, Content: content})
	}
	msgs = append(msgs, anthropicMessage{Role: "user", Content: message})
	return msgs
}
