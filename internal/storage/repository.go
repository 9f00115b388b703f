// ABOUTME: Repository interface for HRV session and test storage.
// ABOUTME: Defines the contract the CLI, MCP server, and sync layer share.
package storage

import "github.com/vinprj/hrmconnect/internal/models"

// Repository defines the storage interface for HRV data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Session operations
	CreateSession(s *models.Session) error
	GetSession(idOrPrefix string) (*models.Session, error)
	ListSessions(limit int) ([]*models.Session, error)
	DeleteSession(idOrPrefix string) error

	// Morning test operations
	CreateMorningTest(m *models.MorningTestResult) error
	ListMorningTests(limit int) ([]*models.MorningTestResult, error)
	DeleteMorningTest(idOrPrefix string) error

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
