package logic

import (
	"context"

	"github.com/ryanchien8125/dalin-ai-fuder/pkg"
)

// GenerativeClient is the seam between business logic and the external
// generation service, satisfied by *pkg.GeminiClient.
type GenerativeClient interface {
	GenerateContent(ctx context.Context, request pkg.GenerateContentRequest) (*pkg.GenerateContentResponse, error)
	StreamGenerateContent(ctx context.Context, request pkg.GenerateContentRequest, handler func(*pkg.GenerateContentResponse) error) error
}
