package services

import (
	"context"
	"log"
	"os"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Groq expone una API compatible con OpenAI, por eso se reutiliza el cliente
// de chat completions apuntando a su endpoint
const (
	groqBaseURL = "https://api.groq.com/openai/v1"
	groqModel   = "llama-3.3-70b-versatile"
)

// Respuesta amigable que reemplaza cualquier falla del gateway
const groqApology = "I'm having trouble connecting right now. Please try again in a moment."

const beaconSystemPrompt = `You are Beacon, the AI advisor for Zelcry - a sustainable crypto investment platform.
You help beginners understand cryptocurrencies, focusing on sustainability and responsible investing.
Be friendly, informative, and encourage eco-friendly choices. Keep responses concise and helpful.`

// GetGroqResponse consulta el modelo de lenguaje con el mensaje del usuario,
// un contexto opcional y los turnos previos de la conversación. Ante
// cualquier falla (auth, red, timeout) devuelve un texto de disculpa en
// lugar de propagar el error.
func GetGroqResponse(message, contextInfo string, history []ChatTurn) string {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Println("GROQ_API_KEY no configurada, se devuelve respuesta por defecto")
		return groqApology
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	client := openai.NewClientWithConfig(config)

	systemMessage := beaconSystemPrompt
	if contextInfo != "" {
		systemMessage += "\n\nContext: " + contextInfo
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
	}

	for _, turn := range history {
		messages = append(messages,
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: turn.Message},
			openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: turn.Response},
		)
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       groqModel,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		log.Printf("Fallo en la llamada a Groq, se devuelve respuesta por defecto: %v", err)
		return groqApology
	}

	if len(resp.Choices) == 0 {
		log.Println("Groq devolvió una respuesta sin opciones, se devuelve respuesta por defecto")
		return groqApology
	}

	return resp.Choices[0].Message.Content
}

// ChatTurn es un intercambio previo que se reenvía como contexto de conversación
type ChatTurn struct {
	Message  string
	Response string
}
