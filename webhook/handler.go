package webhook

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inference-gateway/voice-scheduling-agent/booking"
)

// ToolExecutor runs registered tools by function name
type ToolExecutor interface {
	HasTool(name string) bool
	ExecuteTool(ctx context.Context, name string, args map[string]any) (string, error)
}

// Handler receives voice platform webhooks and answers tool calls
type Handler struct {
	tools  ToolExecutor
	logger *zap.Logger
}

// NewHandler creates a webhook handler dispatching to tools
func NewHandler(tools ToolExecutor, logger *zap.Logger) *Handler {
	return &Handler{
		tools:  tools,
		logger: logger,
	}
}

// Handle is the gin handler for POST /webhook
func (h *Handler) Handle(c *gin.Context) {
	var payload Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn("webhook payload too large",
				zap.String("component", "webhook"),
				zap.Int64("limit", tooLarge.Limit))
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "Request Entity Too Large"})
			return
		}
		h.logger.Error("failed to decode webhook payload",
			zap.String("component", "webhook"),
			zap.String("operation", "decode"),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}
	if payload.Message == nil {
		h.logger.Error("webhook payload has no message",
			zap.String("component", "webhook"),
			zap.String("operation", "decode"))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal Server Error"})
		return
	}

	if payload.Message.Type != MessageTypeToolCalls {
		h.logger.Debug("ignoring webhook message",
			zap.String("component", "webhook"),
			zap.String("messageType", payload.Message.Type))
		c.String(http.StatusOK, "OK")
		return
	}

	calls := payload.Message.Calls()
	names := make([]string, 0, len(calls))
	for _, call := range calls {
		names = append(names, call.Function.Name)
	}
	h.logger.Info("received tool calls",
		zap.String("component", "webhook"),
		zap.Strings("functions", names))

	c.JSON(http.StatusOK, Response{Results: h.Dispatch(c.Request.Context(), calls)})
}

// Dispatch answers every call in order. It always returns exactly one result
// per call.
func (h *Handler) Dispatch(ctx context.Context, calls []ToolCall) []ToolCallResult {
	results := make([]ToolCallResult, 0, len(calls))
	for _, call := range calls {
		results = append(results, ToolCallResult{
			ToolCallID: call.ID,
			Result:     h.dispatchOne(ctx, call),
		})
	}
	return results
}

func (h *Handler) dispatchOne(ctx context.Context, call ToolCall) string {
	name := call.Function.Name
	if !h.tools.HasTool(name) {
		h.logger.Warn("unknown function",
			zap.String("component", "webhook"),
			zap.String("toolCallId", call.ID),
			zap.String("function", name))
		return booking.FunctionNotFound(name)
	}

	args, err := DecodeArguments(call.Function.Arguments)
	if err != nil {
		h.logger.Error("failed to decode tool call arguments",
			zap.String("component", "webhook"),
			zap.String("toolCallId", call.ID),
			zap.String("function", name),
			zap.Error(err))
		return booking.ErrorResult(err)
	}

	result, err := h.tools.ExecuteTool(ctx, name, args)
	if err != nil {
		h.logger.Error("tool execution failed",
			zap.String("component", "webhook"),
			zap.String("toolCallId", call.ID),
			zap.String("function", name),
			zap.Error(err))
		return booking.ErrorResult(err)
	}
	return result
}
