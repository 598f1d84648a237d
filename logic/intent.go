package logic

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/ryanchien8125/dalin-ai-fuder/fortune"
	"github.com/ryanchien8125/dalin-ai-fuder/pkg"
)

// Intent actions recognized by the classifier.
const (
	ActionQueryStick = "QUERY_STICK"
	ActionDrawStick  = "DRAW_STICK"
	ActionNone       = "NONE"
)

// IntentResult is the structured outcome of one classification call.
// Number is only set for QUERY_STICK.
type IntentResult struct {
	Action string `json:"action"`
	Number *int   `json:"number"`
}

const intentPromptTemplate = `### Role
You are an intent classification engine for a Fuder Fortune Stick (福德爺文財神靈籤) application. Your task is to analyze the user's input and extract structured data in JSON format.

### Stick Number Range
- The valid range for fortune stick numbers is **1 to 60**.
- The numbers correspond to the traditional "Sixty Jiazi" (六十甲子) cycle.

### Output Format (JSON)
You must output a single valid JSON object with the following structure:
` + "```json" + `
{
  "action": "QUERY_STICK" | "DRAW_STICK" | "NONE",
  "number": integer | null
}
` + "```" + `

### Classification Rules

1.  **QUERY_STICK (Specific Number Intent)**
    *   **Trigger:** The user explicitly mentions a number (1-60), a specific stick (e.g., "The 5th stick", "Number 10", "Ten", "甲子").
    *   **Action:** Set ` + "`action`" + ` to "QUERY_STICK".
    *   **Number:** Extract the integer value (1-60). Convert Chinese numerals (一, 二, 十...) or Stems/Branches (甲子, 乙丑...) to the corresponding integer 1-60.
    *   **Constraint:** If the number is outside 1-60, categorize as "NONE".

2.  **DRAW_STICK (Random Draw Intent)**
    *   **Trigger:** The user expresses a desire to "draw a lot", "ask for a stick", "fortune telling", "seek advice from Fuder", "help me pick", "抽籤", "求籤", "博杯".
    *   **Action:** Set ` + "`action`" + ` to "DRAW_STICK".
    *   **Number:** Set ` + "`number`" + ` to ` + "`null`" + `. (The system will randomly generate one).

3.  **NONE (Irrelevant/Chat)**
    *   **Trigger:** General conversation ("Hello", "Thank you"), unrelated questions ("Weather", "Stock price"), or incomplete/unclear inputs that don't match the above.
    *   **Action:** Set ` + "`action`" + ` to "NONE".
    *   **Number:** Set ` + "`number`" + ` to ` + "`null`" + `.

### Few-Shot Examples

User: "我要解第五籤"
JSON: {"action": "QUERY_STICK", "number": 5}

User: "解籤 32"
JSON: {"action": "QUERY_STICK", "number": 32}

User: "第60首"
JSON: {"action": "QUERY_STICK", "number": 60}

User: "信徒孫悟空求籤"
JSON: {"action": "DRAW_STICK", "number": null}

User: "我想求個籤"
JSON: {"action": "DRAW_STICK", "number": null}

User: "土地公你好"
JSON: {"action": "NONE", "number": null}

User: "今天天氣如何"
JSON: {"action": "NONE", "number": null}

User: "%s"
`

// IntentClassifier extracts the fortune-stick intent from user text
type IntentClassifier struct {
	gemini GenerativeClient
}

func NewIntentClassifier(gemini GenerativeClient) *IntentClassifier {
	return &IntentClassifier{gemini: gemini}
}

// Classify sends the user text to the generation service constrained to the
// IntentResult JSON schema. Classification must never block the chat flow,
// so any transport or parse failure degrades to {NONE, nil}.
func (c *IntentClassifier) Classify(ctx context.Context, userMessage string) IntentResult {
	none := IntentResult{Action: ActionNone}

	req := pkg.GenerateContentRequest{
		Contents: []pkg.Content{
			{Role: "user", Parts: []pkg.Part{{Text: fmt.Sprintf(intentPromptTemplate, userMessage)}}},
		},
		GenerationConfig: &pkg.GenerationConfig{ResponseMIMEType: "application/json"},
	}

	resp, err := c.gemini.GenerateContent(ctx, req)
	if err != nil {
		log.Printf("[Fuder] Extract Number Error: %v", err)
		return none
	}

	text := resp.Text()
	if text == "" {
		return none
	}
	log.Printf("[Fuder] Extract Intent Raw: %s", text)

	var result IntentResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		log.Printf("[Fuder] Extract Number Error: %v", err)
		return none
	}

	switch result.Action {
	case ActionQueryStick:
		if result.Number == nil || *result.Number < 1 || *result.Number > fortune.StickCount {
			return none
		}
		return result
	case ActionDrawStick:
		return IntentResult{Action: ActionDrawStick}
	default:
		return none
	}
}
