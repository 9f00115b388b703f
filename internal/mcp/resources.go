// ABOUTME: MCP resource implementations for HRV data.
// ABOUTME: Provides hrv://recent and hrv://summary resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vinprj/hrmconnect/internal/hrv"
)

func (s *Server) registerResources() {
	// hrv://recent - last 10 sessions and 10 morning tests
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "hrv://recent",
		Name:        "Recent HRV Data",
		Description: "Last 10 monitoring sessions and morning tests",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// hrv://summary - readiness, recovery, and trend dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "hrv://summary",
		Name:        "HRV Summary Dashboard",
		Description: "Latest readiness, 7-day recovery score, and 30-day trend direction",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions, err := s.repo.ListSessions(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	tests, err := s.repo.ListMorningTests(10)
	if err != nil {
		return nil, fmt.Errorf("failed to list morning tests: %w", err)
	}

	result := map[string]interface{}{
		"sessions":      sessions,
		"morning_tests": tests,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "hrv://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	sessions, err := s.repo.ListSessions(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	tests, err := s.repo.ListMorningTests(0)
	if err != nil {
		return nil, fmt.Errorf("failed to list morning tests: %w", err)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"counts": map[string]int{
			"sessions":      len(sessions),
			"morning_tests": len(tests),
		},
	}

	if len(sessions) > 0 {
		latest := sessions[0]
		baseline, err := s.personalBaseline()
		if err != nil {
			return nil, err
		}
		result["latest_session"] = map[string]interface{}{
			"id":         latest.ID.String()[:8],
			"start_time": latest.StartTime.Format(time.RFC3339),
			"stats":      latest.Stats,
			"readiness":  hrv.SessionReadiness(latest.Stats, latest.Advanced, baseline),
		}
	}

	result["recovery"] = hrv.RecoveryScore(sessions, tests, hrv.DefaultRecoveryDays, hrv.SystemClock)

	points := hrv.TrendPoints(sessions, tests, 30, hrv.SystemClock)
	if len(points) > 0 {
		rmssd := make([]float64, 0, len(points))
		for _, p := range points {
			rmssd = append(rmssd, p.RMSSD)
		}
		result["trend"] = map[string]interface{}{
			"days":      30,
			"points":    len(points),
			"direction": hrv.TrendDirection(rmssd),
		}
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "hrv://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
