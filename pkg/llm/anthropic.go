package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/relay-agents/relay/pkg/models"
)

// AnthropicClient streams model turns through the Anthropic Messages API.
type AnthropicClient struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropicClient creates an Anthropic-backed Client. baseURL is
// optional and overrides the default endpoint (used by tests and proxies).
func NewAnthropicClient(apiKey, baseURL, model string, maxTokens int) *AnthropicClient {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if strings.TrimSpace(baseURL) != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if maxTokens <= 0 {
		maxTokens = 4096
	}
	return &AnthropicClient{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

// Stream sends one turn and converts the SSE events into Chunks.
func (c *AnthropicClient) Stream(ctx context.Context, req Request) (<-chan Chunk, error) {
	messages, err := convertAnthropicMessages(req.Messages)
	if err != nil {
		return nil, fmt.Errorf("anthropic: failed to convert messages: %w", err)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		Messages:  messages,
		MaxTokens: c.maxTokens,
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Type: "text", Text: req.System}}
	}
	if len(req.Tools) > 0 {
		tools, err := convertAnthropicTools(req.Tools)
		if err != nil {
			return nil, fmt.Errorf("anthropic: failed to convert tools: %w", err)
		}
		params.Tools = tools
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		c.processStream(ctx, params, out)
	}()

	return out, nil
}

// processStream consumes the SSE stream and assembles the final
// assistant message. Text deltas are forwarded immediately; tool input
// JSON is accumulated across delta events and finalized on block stop.
func (c *AnthropicClient) processStream(ctx context.Context, params anthropic.MessageNewParams, out chan<- Chunk) {
	stream := c.client.Messages.NewStreaming(ctx, params)

	var (
		content      []models.ContentBlock
		usage        models.Usage
		text         strings.Builder
		thinking     strings.Builder
		toolInput    strings.Builder
		curBlockType string
		curToolID    string
		curToolName  string
	)

	for stream.Next() {
		event := stream.Current()

		switch event.Type {
		case "message_start":
			messageStart := event.AsMessageStart()
			usage.InputTokens = int(messageStart.Message.Usage.InputTokens)

		case "content_block_start":
			contentBlockStart := event.AsContentBlockStart()
			curBlockType = string(contentBlockStart.ContentBlock.Type)
			if curBlockType == "tool_use" {
				toolUse := contentBlockStart.ContentBlock.AsToolUse()
				curToolID = toolUse.ID
				curToolName = toolUse.Name
				toolInput.Reset()
			}

		case "content_block_delta":
			delta := event.AsContentBlockDelta().Delta
			switch delta.Type {
			case "text_delta":
				if delta.Text != "" {
					text.WriteString(delta.Text)
					out <- Chunk{TextDelta: delta.Text}
				}
			case "thinking_delta":
				thinking.WriteString(delta.Thinking)
			case "input_json_delta":
				toolInput.WriteString(delta.PartialJSON)
			}

		case "content_block_stop":
			switch curBlockType {
			case "text":
				if text.Len() > 0 {
					content = append(content, models.ContentBlock{Type: models.ContentText, Text: text.String()})
					text.Reset()
				}
			case "thinking":
				if thinking.Len() > 0 {
					content = append(content, models.ContentBlock{Type: models.ContentReasoning, Text: thinking.String()})
					thinking.Reset()
				}
			case "tool_use":
				args := toolInput.String()
				if args == "" {
					args = "{}"
				}
				content = append(content, models.ContentBlock{
					Type: models.ContentToolCall,
					ToolCall: &models.ToolCall{
						CallID:    curToolID,
						ToolName:  curToolName,
						Arguments: json.RawMessage(args),
					},
				})
				curToolID, curToolName = "", ""
			}
			curBlockType = ""

		case "message_delta":
			messageDelta := event.AsMessageDelta()
			if messageDelta.Usage.OutputTokens > 0 {
				usage.OutputTokens = int(messageDelta.Usage.OutputTokens)
			}
		}
	}

	if err := stream.Err(); err != nil {
		out <- Chunk{Err: fmt.Errorf("anthropic: stream failed: %w", err)}
		return
	}

	usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	msg := models.NewAssistantMessage("")
	msg.Content = content
	msg.Usage = &usage
	out <- Chunk{Message: &msg, Usage: &usage}
}

// convertAnthropicMessages maps the internal history onto Anthropic's
// format. Consecutive tool_result messages collapse into one user
// message, matching the API's requirement that results for a turn
// arrive together.
func convertAnthropicMessages(messages []models.Message) ([]anthropic.MessageParam, error) {
	var result []anthropic.MessageParam

	for i := 0; i < len(messages); i++ {
		msg := messages[i]

		switch msg.Role {
		case models.RoleUser:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Text())))

		case models.RoleAssistant:
			var content []anthropic.ContentBlockParamUnion
			for _, block := range msg.Content {
				switch block.Type {
				case models.ContentText:
					if block.Text != "" {
						content = append(content, anthropic.NewTextBlock(block.Text))
					}
				case models.ContentToolCall:
					var input map[string]interface{}
					if err := json.Unmarshal(block.ToolCall.Arguments, &input); err != nil {
						return nil, fmt.Errorf("invalid tool call arguments: %w", err)
					}
					content = append(content, anthropic.NewToolUseBlock(
						block.ToolCall.CallID,
						input,
						block.ToolCall.ToolName,
					))
				}
			}
			result = append(result, anthropic.NewAssistantMessage(content...))

		case models.RoleToolResult:
			var content []anthropic.ContentBlockParamUnion
			for ; i < len(messages) && messages[i].Role == models.RoleToolResult; i++ {
				tr := messages[i]
				content = append(content, anthropic.NewToolResultBlock(tr.CallID, tr.Text(), tr.IsError))
			}
			i--
			result = append(result, anthropic.NewUserMessage(content...))
		}
	}

	return result, nil
}

func convertAnthropicTools(tools []ToolDefinition) ([]anthropic.ToolUnionParam, error) {
	var result []anthropic.ToolUnionParam

	for _, tool := range tools {
		var schema anthropic.ToolInputSchemaParam
		if err := json.Unmarshal(tool.Schema, &schema); err != nil {
			return nil, fmt.Errorf("invalid tool schema for %s: %w", tool.Name, err)
		}

		toolParam := anthropic.ToolUnionParamOfTool(schema, tool.Name)
		if toolParam.OfTool == nil {
			return nil, fmt.Errorf("invalid tool schema for %s: missing tool definition", tool.Name)
		}
		toolParam.OfTool.Description = anthropic.String(tool.Description)

		result = append(result, toolParam)
	}

	return result, nil
}
