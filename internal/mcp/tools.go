package mcp

import (
	"context"

	"github.com/okrause/storyline/internal/domain/report"
	"github.com/okrause/storyline/internal/domain/story"
	"github.com/okrause/storyline/internal/domain/task"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools registers all tools on the server.
func registerTools(server *sdkmcp.Server, svcs Services) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "split_story",
		Description: "Split a story: create a linked follow-up story in the target sprint, move the source's tasks in open phases onto it, close the source and open the new story",
	}, splitStoryHandler(svcs.Stories))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_story",
		Description: "Get a single story by id",
	}, getStoryHandler(svcs.Stories))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_story_report",
		Description: "Get the full report for a story: its tasks resolved against users, types and phases, the per-phase time breakdown with percentages, and the completion ratio",
	}, getStoryReportHandler(svcs.Reports))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks, optionally filtered by story and phases",
	}, listTasksHandler(svcs.Tasks))

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_milestones",
		Description: "List a project's milestones ordered by due date",
	}, listMilestonesHandler(svcs.Milestones))
}

func splitStoryHandler(svc StoryService) func(context.Context, *sdkmcp.CallToolRequest, SplitStoryInput) (*sdkmcp.CallToolResult, *story.SplitResult, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in SplitStoryInput) (*sdkmcp.CallToolResult, *story.SplitResult, error) {
		result, err := svc.Split(ctx, story.SplitRequest{
			SourceStoryID: in.StoryID,
			SprintID:      in.SprintID,
			ProjectID:     in.ProjectID,
		})
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, result, nil
	}
}

func getStoryHandler(svc StoryService) func(context.Context, *sdkmcp.CallToolRequest, GetStoryInput) (*sdkmcp.CallToolResult, *story.Story, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetStoryInput) (*sdkmcp.CallToolResult, *story.Story, error) {
		st, err := svc.Get(ctx, in.StoryID)
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, st, nil
	}
}

func getStoryReportHandler(svc ReportService) func(context.Context, *sdkmcp.CallToolRequest, GetStoryReportInput) (*sdkmcp.CallToolResult, *report.Report, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in GetStoryReportInput) (*sdkmcp.CallToolResult, *report.Report, error) {
		rep, err := svc.Build(ctx, report.Request{
			UserID:  getUserID(ctx),
			StoryID: in.StoryID,
		})
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, rep, nil
	}
}

func listTasksHandler(svc TaskService) func(context.Context, *sdkmcp.CallToolRequest, ListTasksInput) (*sdkmcp.CallToolResult, *ListTasksResult, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in ListTasksInput) (*sdkmcp.CallToolResult, *ListTasksResult, error) {
		tasks, err := svc.List(ctx, task.ListOptions{
			StoryID:  in.StoryID,
			PhaseIDs: in.PhaseIDs,
		})
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, &ListTasksResult{Tasks: tasks, Total: len(tasks)}, nil
	}
}

func listMilestonesHandler(svc MilestoneService) func(context.Context, *sdkmcp.CallToolRequest, ListMilestonesInput) (*sdkmcp.CallToolResult, *ListMilestonesResult, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, in ListMilestonesInput) (*sdkmcp.CallToolResult, *ListMilestonesResult, error) {
		milestones, err := svc.List(ctx, in.ProjectID)
		if err != nil {
			return nil, nil, toolError(err)
		}
		return nil, &ListMilestonesResult{Milestones: milestones, Total: len(milestones)}, nil
	}
}
