package mcp

import (
	"context"
	"log/slog"

	"github.com/okrause/storyline/internal/domain/catalog"
	"github.com/okrause/storyline/internal/domain/report"
	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/domain/task"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// StoryService defines story operations needed by MCP.
type StoryService interface {
	Split(ctx context.Context, req story.SplitRequest) (*story.SplitResult, error)
	Get(ctx context.Context, id int64) (*story.Story, error)
}

// ReportService defines report operations needed by MCP.
type ReportService interface {
	Build(ctx context.Context, req report.Request) (*report.Report, error)
}

// TaskService defines task operations needed by MCP.
type TaskService interface {
	List(ctx context.Context, opts task.ListOptions) ([]task.Task, error)
}

// MilestoneService defines milestone operations needed by MCP.
type MilestoneService interface {
	List(ctx context.Context, projectID int64) ([]catalog.Milestone, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Stories    StoryService
	Reports    ReportService
	Tasks      TaskService
	Milestones MilestoneService
}

// Config contains server configuration.
type Config struct {
	Services      Services
	Resolver      UserResolver
	AuthEnabled   bool
	TransportMode string // "stdio" or "http"
	DefaultUserID int64
	Logger        *slog.Logger
}

const serverInstructions = `Storyline tracks stories, their tasks, and the time spent per workflow phase.
Use split_story to carry a story's remaining work into another sprint,
get_story_report for the full per-story breakdown, and list_tasks /
list_milestones to browse a story or project.`

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "storyline",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	defaultUser := cfg.DefaultUserID
	if defaultUser == 0 {
		defaultUser = 1
	}

	// Add middleware. Stdio mode always runs without auth (local dev only).
	if cfg.TransportMode == "stdio" || !cfg.AuthEnabled {
		server.AddReceivingMiddleware(noAuthMiddleware(defaultUser))
	} else {
		server.AddReceivingMiddleware(authMiddleware(cfg.Resolver))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
