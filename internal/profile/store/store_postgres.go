package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ainadeul/internal/profile/models"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

// PostgresStore persists profiles in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) FindByUserID(ctx context.Context, userID domain.UserID) (*models.Profile, error) {
	p := &models.Profile{UserID: userID}
	var lat, lng sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT home_lat, home_lng, address, created_at, updated_at
		FROM profiles WHERE user_id = $1
	`, uuid.UUID(userID)).Scan(&lat, &lng, &p.Address, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("profile not found: %w", sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if lat.Valid && lng.Valid {
		p.Home = &domain.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, nickname, birth_year, birth_month, created_at
		FROM children WHERE user_id = $1
		ORDER BY created_at, id
	`, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list children: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			childID uuid.UUID
			c       models.ChildRecord
		)
		if err := rows.Scan(&childID, &c.Nickname, &c.BirthYear, &c.BirthMonth, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan child: %w", err)
		}
		c.ID = domain.ChildID(childID)
		p.Children = append(p.Children, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate children: %w", err)
	}
	return p, nil
}

// Create inserts the profile row if absent and returns what is stored.
func (s *PostgresStore) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO profiles (user_id, address, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
		ON CONFLICT (user_id) DO NOTHING
	`, uuid.UUID(profile.UserID), profile.Address, profile.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return s.FindByUserID(ctx, profile.UserID)
}

func (s *PostgresStore) UpdateHome(ctx context.Context, userID domain.UserID, home domain.Coordinate, address string, at time.Time) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE profiles SET home_lat = $2, home_lng = $3, address = $4, updated_at = $5
		WHERE user_id = $1
	`, uuid.UUID(userID), home.Lat, home.Lng, address, at)
	if err != nil {
		return fmt.Errorf("update home: %w", err)
	}
	return requireRow(res, "profile")
}

func (s *PostgresStore) AddChild(ctx context.Context, userID domain.UserID, child models.ChildRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO children (id, user_id, nickname, birth_year, birth_month, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.UUID(child.ID), uuid.UUID(userID), child.Nickname, child.BirthYear, child.BirthMonth, child.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("profile not found: %w", sentinel.ErrNotFound)
		}
		return fmt.Errorf("add child: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteChild(ctx context.Context, userID domain.UserID, childID domain.ChildID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM children WHERE id = $1 AND user_id = $2`,
		uuid.UUID(childID), uuid.UUID(userID))
	if err != nil {
		return fmt.Errorf("delete child: %w", err)
	}
	return requireRow(res, "child")
}

// ToggleSavedPlace deletes the bookmark if present, otherwise inserts it, in one transaction.
func (s *PostgresStore) ToggleSavedPlace(ctx context.Context, userID domain.UserID, placeID domain.PlaceID, at time.Time) (bool, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin toggle tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback after commit is no-op
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM saved_places WHERE user_id = $1 AND place_id = $2`,
		uuid.UUID(userID), uuid.UUID(placeID))
	if err != nil {
		return false, fmt.Errorf("remove saved place: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove saved place rows: %w", err)
	}

	saved := removed == 0
	if saved {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO saved_places (user_id, place_id, saved_at) VALUES ($1, $2, $3)
		`, uuid.UUID(userID), uuid.UUID(placeID), at); err != nil {
			if isForeignKeyViolation(err) {
				return false, fmt.Errorf("place not found: %w", sentinel.ErrNotFound)
			}
			return false, fmt.Errorf("insert saved place: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit toggle: %w", err)
	}
	return saved, nil
}

func (s *PostgresStore) ListSavedPlaces(ctx context.Context, userID domain.UserID) ([]models.SavedPlace, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT place_id, saved_at FROM saved_places
		WHERE user_id = $1 ORDER BY saved_at DESC
	`, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list saved places: %w", err)
	}
	defer rows.Close()

	var out []models.SavedPlace
	for rows.Next() {
		var (
			placeID uuid.UUID
			sp      models.SavedPlace
		)
		if err := rows.Scan(&placeID, &sp.SavedAt); err != nil {
			return nil, fmt.Errorf("scan saved place: %w", err)
		}
		sp.PlaceID = domain.PlaceID(placeID)
		out = append(out, sp)
	}
	return out, rows.Err()
}

func (s *PostgresStore) AddVisit(ctx context.Context, visit models.Visit) error {
	var rating sql.NullInt32
	if visit.Rating > 0 {
		rating = sql.NullInt32{Int32: int32(visit.Rating), Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (id, user_id, place_id, visited_on, rating, memo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, uuid.UUID(visit.ID), uuid.UUID(visit.UserID), uuid.UUID(visit.PlaceID), visit.VisitedOn, rating, visit.Memo, visit.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("place not found: %w", sentinel.ErrNotFound)
		}
		return fmt.Errorf("add visit: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListVisits(ctx context.Context, userID domain.UserID) ([]models.Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, place_id, visited_on, rating, memo, created_at FROM visits
		WHERE user_id = $1 ORDER BY visited_on DESC, created_at DESC
	`, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list visits: %w", err)
	}
	defer rows.Close()

	var out []models.Visit
	for rows.Next() {
		var (
			visitID, placeID uuid.UUID
			rating           sql.NullInt32
			v                = models.Visit{UserID: userID}
		)
		if err := rows.Scan(&visitID, &placeID, &v.VisitedOn, &rating, &v.Memo, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.ID = domain.VisitID(visitID)
		v.PlaceID = domain.PlaceID(placeID)
		v.Rating = int(rating.Int32)
		out = append(out, v)
	}
	return out, rows.Err()
}
