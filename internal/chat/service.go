package chat

import (
	"context"
	"log"
	"strings"
)

// Disclaimer accompanies every chat response.
const Disclaimer = "Informational guidance only. Not medical advice."

// fallbackAnswer is returned when the model is unavailable. The user always
// gets a supportive response, never an error.
const fallbackAnswer = "I'm here to support you. It seems the AI service is temporarily unavailable. " +
	"Please try again in a moment, or reach out to one of the crisis resources listed on this platform. " +
	"You are not alone. Help is always available."

// Response is one chat exchange result.
type Response struct {
	Answer     string `json:"answer"`
	Disclaimer string `json:"disclaimer"`
	Fallback   bool   `json:"fallback,omitempty"`
}

// Service wraps a Client with the degrade-to-fallback policy.
type Service struct {
	client Client
}

// NewService returns a chat service over the given client. A nil client is
// allowed; every request then gets the fallback answer.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// Ask answers one user message. Provider errors and a missing client both
// produce the fallback response with Fallback set.
func (s *Service) Ask(ctx context.Context, message string) Response {
	message = strings.TrimSpace(message)

	if s.client == nil {
		return Response{Answer: fallbackAnswer, Disclaimer: Disclaimer, Fallback: true}
	}

	answer, err := s.client.Reply(ctx, message)
	if err != nil {
		log.Printf("chat: falling back to static answer: %v", err)
		return Response{Answer: fallbackAnswer, Disclaimer: Disclaimer, Fallback: true}
	}

	return Response{Answer: answer, Disclaimer: Disclaimer}
}
