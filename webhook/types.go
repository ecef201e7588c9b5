package webhook

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/inference-gateway/voice-scheduling-agent/booking"
)

// MessageTypeToolCalls is the only message type that is dispatched
const MessageTypeToolCalls = "tool-calls"

// Payload is the webhook envelope sent by the voice platform
type Payload struct {
	Message *Message `json:"message"`
}

// Message is one voice platform event
type Message struct {
	Type         string     `json:"type"`
	ToolCalls    []ToolCall `json:"toolCalls"`
	ToolCallList []ToolCall `json:"toolCallList"`
}

// Calls returns the tool calls of the message. Some platform versions only
// send toolCallList.
func (m *Message) Calls() []ToolCall {
	if len(m.ToolCalls) > 0 {
		return m.ToolCalls
	}
	return m.ToolCallList
}

// ToolCall is a single function invocation requested by the agent
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type,omitempty"`
	Function FunctionCall `json:"function"`
}

// FunctionCall names the function and carries its arguments, either as a
// JSON encoded string or as an object.
type FunctionCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolCallResult is the answer to one ToolCall
type ToolCallResult struct {
	ToolCallID string `json:"toolCallId"`
	Result     string `json:"result"`
}

// Response is the body returned for a tool-calls message
type Response struct {
	Results []ToolCallResult `json:"results"`
}

// ErrorResponse is the body returned when the payload cannot be read
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeArguments accepts a JSON object or a string holding a JSON object.
// Anything else wraps booking.ErrInvalidArguments.
func DecodeArguments(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: arguments are missing", booking.ErrInvalidArguments)
	}

	switch trimmed[0] {
	case '"':
		var encoded string
		if err := json.Unmarshal(trimmed, &encoded); err != nil {
			return nil, fmt.Errorf("%w: %v", booking.ErrInvalidArguments, err)
		}
		return decodeObject([]byte(encoded))
	case '{':
		return decodeObject(trimmed)
	default:
		return nil, fmt.Errorf("%w: arguments must be an object or a JSON encoded object", booking.ErrInvalidArguments)
	}
}

func decodeObject(data []byte) (map[string]any, error) {
	var args map[string]any
	if err := json.Unmarshal(data, &args); err != nil {
		return nil, fmt.Errorf("%w: %v", booking.ErrInvalidArguments, err)
	}
	if args == nil {
		return nil, fmt.Errorf("%w: arguments are null", booking.ErrInvalidArguments)
	}
	return args, nil
}
