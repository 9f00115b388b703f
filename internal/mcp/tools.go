// ABOUTME: MCP tool implementations for HRV data.
// ABOUTME: Exposes sessions, morning tests, readiness, recovery, and trends.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/vinprj/hrmconnect/internal/hrv"
	"github.com/vinprj/hrmconnect/internal/models"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List recent HRV monitoring sessions with their statistics",
	}, s.handleListSessions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_session",
		Description: "Get a session with its full statistics by ID or ID prefix",
	}, s.handleGetSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_session",
		Description: "Delete a session by ID or ID prefix",
	}, s.handleDeleteSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_morning_test",
		Description: "Record a morning orthostatic test (lying and standing phases)",
	}, s.handleRecordMorningTest)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_morning_tests",
		Description: "List recent morning orthostatic test results",
	}, s.handleListMorningTests)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_morning_test",
		Description: "Delete a morning test by ID or ID prefix",
	}, s.handleDeleteMorningTest)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_readiness",
		Description: "Score a session's readiness against the personal baseline (latest session by default)",
	}, s.handleGetReadiness)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_recovery",
		Description: "Get the composite recovery score over a trailing window of days",
	}, s.handleGetRecovery)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Get daily HRV trend points and the RMSSD trend direction",
	}, s.handleGetTrend)
}

// Tool input/output types

type listInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"Record ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type recordMorningTestInput struct {
	LyingAvgHR    float64 `json:"lying_avg_hr" jsonschema:"Average HR while lying down (BPM)"`
	StandingAvgHR float64 `json:"standing_avg_hr" jsonschema:"Average HR while standing (BPM)"`
	LyingRMSSD    float64 `json:"lying_rmssd" jsonschema:"RMSSD while lying down (ms)"`
	StandingRMSSD float64 `json:"standing_rmssd,omitempty" jsonschema:"RMSSD while standing (ms)"`
	Timestamp     string  `json:"timestamp,omitempty" jsonschema:"Test time (ISO 8601), defaults to now"`
}

type morningTestOutput struct {
	ID             string  `json:"id"`
	ReadinessScore int     `json:"readiness_score"`
	HRDelta        float64 `json:"hr_delta"`
	Message        string  `json:"message"`
}

type getReadinessInput struct {
	SessionID string `json:"session_id,omitempty" jsonschema:"Session ID or prefix, defaults to the most recent session"`
}

type daysInput struct {
	Days int `json:"days,omitempty" jsonschema:"Trailing window in days (default 7 for recovery, 30 for trend)"`
}

// Tool handlers

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	sessions, err := s.repo.ListSessions(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	if len(sessions) == 0 {
		return nil, map[string]interface{}{"message": "No sessions found."}, nil
	}

	return nil, sessions, nil
}

func (s *Server) handleGetSession(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, any, error) {
	session, err := s.repo.GetSession(input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("session not found: %s", input.ID)
	}

	return nil, session, nil
}

func (s *Server) handleDeleteSession(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteSession(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete session: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted session: %s", input.ID),
	}, nil
}

func (s *Server) handleRecordMorningTest(ctx context.Context, req *mcp.CallToolRequest, input recordMorningTestInput) (*mcp.CallToolResult, morningTestOutput, error) {
	if input.LyingAvgHR <= 0 || input.StandingAvgHR <= 0 {
		return nil, morningTestOutput{}, fmt.Errorf("lying and standing HR must be positive")
	}

	readiness := hrv.MorningReadiness(input.LyingRMSSD, input.LyingAvgHR, input.StandingAvgHR)
	m := models.NewMorningTestResult(input.LyingAvgHR, input.StandingAvgHR,
		input.LyingRMSSD, input.StandingRMSSD, readiness)

	if input.Timestamp != "" {
		if t, err := time.Parse(time.RFC3339, input.Timestamp); err == nil {
			m.WithTimestamp(t)
		}
	}

	if err := s.repo.CreateMorningTest(m); err != nil {
		return nil, morningTestOutput{}, fmt.Errorf("failed to record morning test: %w", err)
	}

	return nil, morningTestOutput{
		ID:             m.ID.String()[:8],
		ReadinessScore: readiness,
		HRDelta:        m.HRDelta,
		Message:        fmt.Sprintf("Recorded morning test: readiness %d (ID: %s)", readiness, m.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListMorningTests(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	tests, err := s.repo.ListMorningTests(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list morning tests: %w", err)
	}

	if len(tests) == 0 {
		return nil, map[string]interface{}{"message": "No morning tests found."}, nil
	}

	return nil, tests, nil
}

func (s *Server) handleDeleteMorningTest(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteMorningTest(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete morning test: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted morning test: %s", input.ID),
	}, nil
}

func (s *Server) handleGetReadiness(ctx context.Context, req *mcp.CallToolRequest, input getReadinessInput) (*mcp.CallToolResult, any, error) {
	var session *models.Session
	var err error

	if input.SessionID != "" {
		session, err = s.repo.GetSession(input.SessionID)
		if err != nil {
			return nil, nil, fmt.Errorf("session not found: %s", input.SessionID)
		}
	} else {
		sessions, err := s.repo.ListSessions(1)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			return nil, map[string]interface{}{"message": "No sessions found."}, nil
		}
		session = sessions[0]
	}

	baseline, err := s.personalBaseline()
	if err != nil {
		return nil, nil, err
	}

	readiness := hrv.SessionReadiness(session.Stats, session.Advanced, baseline)

	return nil, map[string]interface{}{
		"session_id": session.ID.String()[:8],
		"start_time": session.StartTime.Format(time.RFC3339),
		"readiness":  readiness,
		"baseline":   baseline,
	}, nil
}

func (s *Server) handleGetRecovery(ctx context.Context, req *mcp.CallToolRequest, input daysInput) (*mcp.CallToolResult, any, error) {
	sessions, err := s.repo.ListSessions(0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	tests, err := s.repo.ListMorningTests(0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list morning tests: %w", err)
	}

	recovery := hrv.RecoveryScore(sessions, tests, input.Days, hrv.SystemClock)

	return nil, recovery, nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input daysInput) (*mcp.CallToolResult, any, error) {
	days := input.Days
	if days <= 0 {
		days = 30
	}

	sessions, err := s.repo.ListSessions(0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	tests, err := s.repo.ListMorningTests(0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list morning tests: %w", err)
	}

	points := hrv.TrendPoints(sessions, tests, days, hrv.SystemClock)
	if len(points) == 0 {
		return nil, map[string]interface{}{"message": "No data in trend window."}, nil
	}

	rmssd := make([]float64, 0, len(points))
	for _, p := range points {
		rmssd = append(rmssd, p.RMSSD)
	}

	return nil, map[string]interface{}{
		"days":      days,
		"points":    points,
		"direction": hrv.TrendDirection(rmssd),
	}, nil
}

// personalBaseline derives the scoring baseline from recent history,
// falling back to population defaults when there is none.
func (s *Server) personalBaseline() (models.Baseline, error) {
	sessions, err := s.repo.ListSessions(30)
	if err != nil {
		return models.Baseline{}, fmt.Errorf("failed to list sessions: %w", err)
	}
	return models.BaselineFromSessions(sessions), nil
}
