package suggestion_fx

import (
	"os"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/fx"

	"roamio/internal/repositories"
	"roamio/internal/services"
)

var Module = fx.Provide(
	provideChatClient, provideSuggestionService)

// provideChatClient returns nil when OPENAI_API_KEY is unset; the service
// then reports suggestions as unavailable instead of failing at startup.
func provideChatClient() services.ChatCompleter {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil
	}
	return openai.NewClient(apiKey)
}

func provideSuggestionService(
	tripRepo repositories.TripRepository,
	client services.ChatCompleter,
) services.SuggestionServiceInterface {
	return services.NewSuggestionService(tripRepo, client)
}
