package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openai "github.com/sashabaranov/go-openai"

	"roamio/internal/repositories"
	"roamio/internal/testutil"
	"roamio/pkg/utils"
)

type fakeChatCompleter struct {
	content string
	err     error
}

func (f *fakeChatCompleter) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func newSuggestionFixture(t *testing.T, client ChatCompleter) (SuggestionServiceInterface, TripServiceInterface) {
	t.Helper()
	db := testutil.NewGormDB(t)
	tripRepo := repositories.NewTripRepository(db)
	return NewSuggestionService(tripRepo, client), NewTripService(tripRepo)
}

func TestSuggestForTripParsesModelAnswer(t *testing.T) {
	client := &fakeChatCompleter{content: "```json\n[{\"name\":\"Husavik\",\"reason\":\"whale watching\"}]\n```"}
	svc, trips := newSuggestionFixture(t, client)
	ctx := context.Background()

	trip, err := trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)

	suggestions, err := svc.SuggestForTrip(ctx, 1, trip.ID)
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Husavik", suggestions[0].Name)
	assert.Equal(t, "whale watching", suggestions[0].Reason)
}

func TestSuggestForTripCapsResultCount(t *testing.T) {
	client := &fakeChatCompleter{content: `[
		{"name":"a","reason":"r"},{"name":"b","reason":"r"},{"name":"c","reason":"r"},
		{"name":"d","reason":"r"},{"name":"e","reason":"r"},{"name":"f","reason":"r"}]`}
	svc, trips := newSuggestionFixture(t, client)
	ctx := context.Background()

	trip, err := trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)

	suggestions, err := svc.SuggestForTrip(ctx, 1, trip.ID)
	require.NoError(t, err)
	assert.Len(t, suggestions, maxSuggestions)
}

func TestSuggestForTripGuards(t *testing.T) {
	svc, trips := newSuggestionFixture(t, &fakeChatCompleter{content: "[]"})
	ctx := context.Background()

	trip, err := trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)

	_, err = svc.SuggestForTrip(ctx, 2, trip.ID)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	_, err = svc.SuggestForTrip(ctx, 1, 9999)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestSuggestForTripWithoutClient(t *testing.T) {
	svc, trips := newSuggestionFixture(t, nil)
	ctx := context.Background()

	trip, err := trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)

	_, err = svc.SuggestForTrip(ctx, 1, trip.ID)
	assert.ErrorIs(t, err, utils.ErrSuggestionsDisabled)
}

func TestSuggestForTripProviderFailure(t *testing.T) {
	svc, trips := newSuggestionFixture(t, &fakeChatCompleter{err: errors.New("rate limited")})
	ctx := context.Background()

	trip, err := trips.CreateTrip(ctx, 1, "Iceland")
	require.NoError(t, err)

	_, err = svc.SuggestForTrip(ctx, 1, trip.ID)
	assert.ErrorIs(t, err, utils.ErrSuggestionsDisabled)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `[{"name":"x"}]`, stripCodeFence("```json\n[{\"name\":\"x\"}]\n```"))
	assert.Equal(t, `[{"name":"x"}]`, stripCodeFence("```\n[{\"name\":\"x\"}]\n```"))
	assert.Equal(t, `[{"name":"x"}]`, stripCodeFence(`[{"name":"x"}]`))
}
