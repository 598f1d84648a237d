package logic

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_QueryStick(t *testing.T) {
	gemini := &mockGenerative{generateText: `{"action": "QUERY_STICK", "number": 5}`}
	c := NewIntentClassifier(gemini)

	result := c.Classify(context.Background(), "我要解第五籤")
	assert.Equal(t, ActionQueryStick, result.Action)
	require.NotNil(t, result.Number)
	assert.Equal(t, 5, *result.Number)
}

func TestClassify_DrawStick(t *testing.T) {
	gemini := &mockGenerative{generateText: `{"action": "DRAW_STICK", "number": null}`}
	c := NewIntentClassifier(gemini)

	result := c.Classify(context.Background(), "我想求個籤")
	assert.Equal(t, ActionDrawStick, result.Action)
	assert.Nil(t, result.Number)
}

func TestClassify_None(t *testing.T) {
	gemini := &mockGenerative{generateText: `{"action": "NONE", "number": null}`}
	c := NewIntentClassifier(gemini)

	result := c.Classify(context.Background(), "土地公你好")
	assert.Equal(t, ActionNone, result.Action)
	assert.Nil(t, result.Number)
}

func TestClassify_OutOfRangeDowngradesToNone(t *testing.T) {
	for _, n := range []int{0, 61, -3, 999} {
		gemini := &mockGenerative{generateText: fmt.Sprintf(`{"action": "QUERY_STICK", "number": %d}`, n)}
		c := NewIntentClassifier(gemini)

		result := c.Classify(context.Background(), "解籤")
		assert.Equal(t, ActionNone, result.Action, "number %d", n)
		assert.Nil(t, result.Number)
	}
}

func TestClassify_QueryWithoutNumberDowngradesToNone(t *testing.T) {
	gemini := &mockGenerative{generateText: `{"action": "QUERY_STICK", "number": null}`}
	c := NewIntentClassifier(gemini)

	result := c.Classify(context.Background(), "解籤")
	assert.Equal(t, ActionNone, result.Action)
}

func TestClassify_FailsSoft(t *testing.T) {
	tests := []struct {
		name   string
		gemini *mockGenerative
	}{
		{"transport error", &mockGenerative{generateErr: fmt.Errorf("connection refused")}},
		{"malformed json", &mockGenerative{generateText: "抱歉，我無法判斷。"}},
		{"empty response", &mockGenerative{generateText: ""}},
		{"unknown action", &mockGenerative{generateText: `{"action": "EXPLODE", "number": 1}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewIntentClassifier(tt.gemini)
			result := c.Classify(context.Background(), "嗨")
			assert.Equal(t, ActionNone, result.Action)
			assert.Nil(t, result.Number)
		})
	}
}
