// ABOUTME: Session and morning test operations for Charm KV sync.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"

	"github.com/vinprj/hrmconnect/internal/models"
	"github.com/vinprj/hrmconnect/internal/storage"
)

// CreateSession stores a session in the KV store.
func (c *Client) CreateSession(s *models.Session) error {
	key := SessionPrefix + s.ID.String()
	data, err := marshalJSON(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return c.set(key, data)
}

// GetSession retrieves a session by ID or ID prefix.
func (c *Client) GetSession(idOrPrefix string) (*models.Session, error) {
	data, err := c.getByIDPrefix(SessionPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	session, err := unmarshalJSON[models.Session](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}

	return session, nil
}

// ListSessions retrieves sessions sorted by StartTime descending.
func (c *Client) ListSessions(limit int) ([]*models.Session, error) {
	allData, err := c.listByPrefix(SessionPrefix)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var sessions []*models.Session
	for _, data := range allData {
		s, err := unmarshalJSON[models.Session](data)
		if err != nil {
			continue // Skip invalid entries
		}
		sessions = append(sessions, s)
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})

	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}

	return sessions, nil
}

// DeleteSession removes a session by ID or prefix.
func (c *Client) DeleteSession(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(SessionPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CreateMorningTest stores a morning test result in the KV store.
func (c *Client) CreateMorningTest(m *models.MorningTestResult) error {
	key := MorningTestPrefix + m.ID.String()
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal morning test: %w", err)
	}
	return c.set(key, data)
}

// ListMorningTests retrieves tests sorted by Timestamp descending.
func (c *Client) ListMorningTests(limit int) ([]*models.MorningTestResult, error) {
	allData, err := c.listByPrefix(MorningTestPrefix)
	if err != nil {
		return nil, fmt.Errorf("list morning tests: %w", err)
	}

	var tests []*models.MorningTestResult
	for _, data := range allData {
		m, err := unmarshalJSON[models.MorningTestResult](data)
		if err != nil {
			continue // Skip invalid entries
		}
		tests = append(tests, m)
	}

	sort.Slice(tests, func(i, j int) bool {
		return tests[i].Timestamp.After(tests[j].Timestamp)
	})

	if limit > 0 && len(tests) > limit {
		tests = tests[:limit]
	}

	return tests, nil
}

// DeleteMorningTest removes a test by ID or prefix.
func (c *Client) DeleteMorningTest(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(MorningTestPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete morning test: %w", err)
	}
	return nil
}

// PushAll mirrors all local repository data into the KV store.
// Returns the number of records pushed.
func (c *Client) PushAll(repo storage.Repository) (int, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return 0, fmt.Errorf("read local data: %w", err)
	}

	pushed := 0
	for _, s := range data.Sessions {
		if err := c.CreateSession(s); err != nil {
			return pushed, err
		}
		pushed++
	}
	for _, m := range data.MorningTests {
		if err := c.CreateMorningTest(m); err != nil {
			return pushed, err
		}
		pushed++
	}
	return pushed, nil
}

// PullAll copies cloud records missing locally into the repository.
// Existing local records are left untouched. Returns the number of
// records added.
func (c *Client) PullAll(repo storage.Repository) (int, error) {
	sessions, err := c.ListSessions(0)
	if err != nil {
		return 0, err
	}
	tests, err := c.ListMorningTests(0)
	if err != nil {
		return 0, err
	}

	local, err := repo.GetAllData()
	if err != nil {
		return 0, fmt.Errorf("read local data: %w", err)
	}

	haveSession := make(map[string]bool, len(local.Sessions))
	for _, s := range local.Sessions {
		haveSession[s.ID.String()] = true
	}
	haveTest := make(map[string]bool, len(local.MorningTests))
	for _, m := range local.MorningTests {
		haveTest[m.ID.String()] = true
	}

	pulled := 0
	for _, s := range sessions {
		if haveSession[s.ID.String()] {
			continue
		}
		if err := repo.CreateSession(s); err != nil {
			return pulled, err
		}
		pulled++
	}
	for _, m := range tests {
		if haveTest[m.ID.String()] {
			continue
		}
		if err := repo.CreateMorningTest(m); err != nil {
			return pulled, err
		}
		pulled++
	}
	return pulled, nil
}
