package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/adsun-ai/adsun/internal/matcher"
	"github.com/adsun-ai/adsun/internal/process"
)

// handleAskKnowledge routes a question through the assistant engine.
func (s *Server) handleAskKnowledge(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	return mcp.NewToolResultText(s.engine.Answer(ctx, query)), nil
}

// handleSearchProcesses performs keyword search over the active records.
func (s *Server) handleSearchProcesses(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	limit := request.GetInt("limit", 5)
	if limit <= 0 {
		limit = 5
	}

	records, err := s.store.GetActiveProcesses(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	candidates := matcher.Search(query, records)
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	if len(candidates) == 0 {
		return mcp.NewToolResultText("No matching processes found. Document processes with `adsun document` first."), nil
	}

	return mcp.NewToolResultText(formatCandidates(candidates)), nil
}

// handleProcessStatistics returns the aggregate counts.
func (s *Server) handleProcessStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	counts, err := s.store.AggregateCounts(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("statistics failed: %v", err)), nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Processes: %d\nCategories: %d\nOwners: %d\n",
		counts.Total, len(counts.Categories), len(counts.Owners))
	if top := counts.TopCategories(3); len(top) > 0 {
		sb.WriteString("\nTop categories:\n")
		for _, g := range top {
			fmt.Fprintf(&sb, "- %s (%d)\n", g.Name, g.Count)
		}
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetProcess returns one full record by ID.
func (s *Server) handleGetProcess(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: id"), nil
	}

	record, err := s.store.Get(ctx, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	if record == nil {
		return mcp.NewToolResultError(fmt.Sprintf("no process with ID %q", id)), nil
	}

	return mcp.NewToolResultText(formatRecord(*record)), nil
}

// formatCandidates renders search hits as text for agent consumption.
func formatCandidates(candidates []matcher.Candidate) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d result(s):\n", len(candidates))

	for i, c := range candidates {
		fmt.Fprintf(&sb, "\n--- Result %d ---\n", i+1)
		fmt.Fprintf(&sb, "Confidence: %.0f%%\n", c.Confidence*100)
		sb.WriteString(formatRecord(c.Record))
	}

	return sb.String()
}

func formatRecord(r process.Record) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ID: %s\nName: %s\n", r.ID, r.Name)
	if r.Category != "" {
		fmt.Fprintf(&sb, "Category: %s\n", r.Category)
	}
	if r.Owner != "" {
		fmt.Fprintf(&sb, "Owner: %s\n", r.Owner)
	}
	if r.Description != "" {
		fmt.Fprintf(&sb, "Description: %s\n", r.Description)
	}
	if r.Steps != "" {
		fmt.Fprintf(&sb, "Steps:\n%s\n", r.Steps)
	}
	if r.Tools != "" {
		fmt.Fprintf(&sb, "Tools: %s\n", r.Tools)
	}
	if r.CommonProblems != "" {
		fmt.Fprintf(&sb, "Common problems: %s\n", r.CommonProblems)
	}
	if r.AutomationReadiness > 0 {
		fmt.Fprintf(&sb, "Automation readiness: %d/5\n", r.AutomationReadiness)
	}
	return sb.String()
}
