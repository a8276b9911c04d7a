package sqlite

import "database/sql"

const statsPasswordKey = "stats_password_hash"

// GetStatsPasswordHash retrieves the stored stats password hash.
// Returns "" when no password has been configured.
func (s *Storage) GetStatsPasswordHash() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", ErrStorageClosed
	}

	var hash string
	err := s.db.QueryRow(
		"SELECT value FROM admin_settings WHERE key = ?",
		statsPasswordKey,
	).Scan(&hash)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return hash, nil
}

// SetStatsPasswordHash stores the stats password hash
func (s *Storage) SetStatsPasswordHash(hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStorageClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO admin_settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = ?, updated_at = CURRENT_TIMESTAMP
	`, statsPasswordKey, hash, hash)

	return err
}

// HasStatsPassword checks if a stats password has been configured
func (s *Storage) HasStatsPassword() (bool, error) {
	hash, err := s.GetStatsPasswordHash()
	if err != nil {
		return false, err
	}
	return hash != "", nil
}
