package logic

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ryanchien8125/dalin-ai-fuder/models"
	"github.com/ryanchien8125/dalin-ai-fuder/pkg"
)

// mockGenerative implements GenerativeClient for tests. GenerateContent
// answers classification calls with a canned JSON body; streaming emits the
// configured tokens one chunk at a time, in order.
type mockGenerative struct {
	generateText  string
	generateErr   error
	generateCalls int

	streamTokens  []string
	streamErr     error
	lastStreamReq *pkg.GenerateContentRequest
}

func (m *mockGenerative) GenerateContent(_ context.Context, _ pkg.GenerateContentRequest) (*pkg.GenerateContentResponse, error) {
	m.generateCalls++
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return &pkg.GenerateContentResponse{
		Candidates: []pkg.Candidate{{
			Content: pkg.Content{Role: "model", Parts: []pkg.Part{{Text: m.generateText}}},
		}},
	}, nil
}

func (m *mockGenerative) StreamGenerateContent(_ context.Context, req pkg.GenerateContentRequest, handler func(*pkg.GenerateContentResponse) error) error {
	m.lastStreamReq = &req
	for _, token := range m.streamTokens {
		resp := &pkg.GenerateContentResponse{
			Candidates: []pkg.Candidate{{
				Content: pkg.Content{Role: "model", Parts: []pkg.Part{{Text: token}}},
			}},
		}
		if err := handler(resp); err != nil {
			return err
		}
	}
	return m.streamErr
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Conversation{}, &models.Message{}))
	return db
}
