package matches

import (
	"database/sql"

	"github.com/charmbracelet/log"
)

// New creates a new MatchStore.
func New(db *sql.DB) MatchStore {
	return &store{
		db: db,
	}
}

// ReplaceAll replaces the entire dataset in a single transaction. There is no
// incremental update path; a refresh reloads the dataset wholesale.
func (s *store) ReplaceAll(records []Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO matches (player1, player2, goals_player1, goals_player2, match_date, tournament_name)
		VALUES (?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, record := range records {
		_, err = stmt.Exec(record.Player1, record.Player2, string(record.GoalsPlayer1), string(record.GoalsPlayer2), record.Date, record.TournamentName)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// scanRecord is a helper function to scan a single match row.
func (s *store) scanRecord(scanner interface{ Scan(...any) error }) (Record, error) {
	var record Record
	var goals1, goals2 string

	err := scanner.Scan(&record.Player1, &record.Player2, &goals1, &goals2, &record.Date, &record.TournamentName)
	if err != nil {
		return Record{}, err
	}
	record.GoalsPlayer1 = RawValue(goals1)
	record.GoalsPlayer2 = RawValue(goals2)
	return record, nil
}

// All retrieves every match in source order.
func (s *store) All() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT player1, player2, goals_player1, goals_player2, match_date, tournament_name
		FROM matches ORDER BY seq
	`)
	if err != nil {
		log.Error("Failed to query all matches", "error", err)
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := s.scanRecord(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// ForPlayer retrieves the matches where the player appears on either side,
// preserving source order. The comparison is case-insensitive, matching the
// identity rule used by the player index.
func (s *store) ForPlayer(name string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT player1, player2, goals_player1, goals_player2, match_date, tournament_name
		FROM matches
		WHERE player1 = ? COLLATE NOCASE OR player2 = ? COLLATE NOCASE
		ORDER BY seq
	`, name, name)
	if err != nil {
		log.Error("Failed to query matches for player", "error", err, "player", name)
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := s.scanRecord(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Count returns the number of matches currently loaded.
func (s *store) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM matches").Scan(&count)
	if err != nil {
		log.Error("Failed to count matches", "error", err)
		return 0, err
	}
	return count, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		log.Error("Failed to clear matches table", "error", err)
	}
}
