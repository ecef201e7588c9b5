package skills

import (
	"time"

	server "github.com/inference-gateway/adk/server"
	zap "go.uber.org/zap"

	booking "github.com/inference-gateway/voice-scheduling-agent/booking"
)

// NewRegistry registers every skill against the active provider
func NewRegistry(logger *zap.Logger, provider booking.Provider, timeout time.Duration) *server.DefaultToolBox {
	toolBox := server.NewToolBox()
	toolBox.AddTool(NewCreateCalendarEventSkill(logger, provider, timeout))
	return toolBox
}
