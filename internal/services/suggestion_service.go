package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

const maxSuggestions = 5

// ChatCompleter is the slice of the OpenAI client the suggestion service
// needs; tests substitute a fake.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type SuggestionServiceInterface interface {
	// SuggestForTrip asks the chat model for up to five further
	// destinations fitting the trip's existing ones. Nothing is persisted.
	// Returns ErrSuggestionsDisabled when no provider is configured or the
	// provider fails.
	SuggestForTrip(ctx context.Context, ownerID uint, tripID uint) ([]response_models.SuggestionResponse, error)
}

type SuggestionService struct {
	tripRepo repositories.TripRepository
	client   ChatCompleter
}

func NewSuggestionService(tripRepo repositories.TripRepository, client ChatCompleter) SuggestionServiceInterface {
	return &SuggestionService{
		tripRepo: tripRepo,
		client:   client,
	}
}

func (s *SuggestionService) SuggestForTrip(ctx context.Context, ownerID uint, tripID uint) ([]response_models.SuggestionResponse, error) {
	trip, err := s.tripRepo.FindByIDWithDestinations(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}
	if err := RequireOwnsTrip(ownerID, trip); err != nil {
		return nil, err
	}

	if s.client == nil {
		return nil, utils.ErrSuggestionsDisabled
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Trip %q currently visits, in order:\n", trip.Name)
	for _, dest := range trip.Destinations {
		fmt.Fprintf(&sb, "- %s (%.4f, %.4f)\n", dest.Name, dest.Lat, dest.Lng)
	}
	fmt.Fprintf(&sb,
		"Suggest up to %d further destinations that fit this trip. "+
			"Answer with a JSON array of objects with fields \"name\" and \"reason\", nothing else.",
		maxSuggestions)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a travel planning assistant."},
			{Role: openai.ChatMessageRoleUser, Content: sb.String()},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		return nil, utils.ErrSuggestionsDisabled
	}

	var suggestions []response_models.SuggestionResponse
	if err := json.Unmarshal([]byte(stripCodeFence(resp.Choices[0].Message.Content)), &suggestions); err != nil {
		return nil, utils.ErrSuggestionsDisabled
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

// stripCodeFence unwraps ```json ... ``` answers some models insist on.
func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
