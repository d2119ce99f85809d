package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"ainadeul/internal/event/models"
	"ainadeul/pkg/domain"
)

// PostgresStore reads events joined with their organizer and venue.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const listByStatusQuery = `
SELECT e.id, e.title, e.description, e.event_type, e.status, e.start_date, e.end_date,
       e.target_age_min, e.target_age_max, e.target_age_note, e.is_free, e.registration_url, e.created_at,
       o.id, o.name, o.category,
       p.id, p.name, p.address, p.region
FROM events e
LEFT JOIN event_organizers o ON o.id = e.organizer_id
LEFT JOIN places p ON p.id = e.place_id
WHERE e.status = $1
ORDER BY e.start_date, e.id`

func (s *PostgresStore) ListByStatus(ctx context.Context, status models.Status) ([]*models.Event, error) {
	rows, err := s.db.QueryContext(ctx, listByStatusQuery, string(status))
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func scanEvent(rows *sql.Rows) (*models.Event, error) {
	var (
		e                       models.Event
		eventID                 uuid.UUID
		status                  string
		endDate                 pgtype.Date
		ageMin, ageMax          pgtype.Int4
		orgID, placeID          pgtype.UUID
		orgName, orgCategory    pgtype.Text
		placeName, placeAddress pgtype.Text
		placeRegion             pgtype.Text
	)
	err := rows.Scan(&eventID, &e.Title, &e.Description, &e.Type, &status, &e.StartDate, &endDate,
		&ageMin, &ageMax, &e.TargetAgeNote, &e.IsFree, &e.RegistrationURL, &e.CreatedAt,
		&orgID, &orgName, &orgCategory,
		&placeID, &placeName, &placeAddress, &placeRegion)
	if err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	e.ID = domain.EventID(eventID)
	e.Status = models.Status(status)
	e.StartDate = utcDate(e.StartDate)
	if endDate.Valid {
		end := utcDate(endDate.Time)
		e.EndDate = &end
	}
	if ageMin.Valid {
		v := int(ageMin.Int32)
		e.TargetAgeMin = &v
	}
	if ageMax.Valid {
		v := int(ageMax.Int32)
		e.TargetAgeMax = &v
	}
	if orgID.Valid {
		e.Organizer = &models.Organizer{
			ID:       domain.OrganizerID(orgID.Bytes),
			Name:     orgName.String,
			Category: orgCategory.String,
		}
	}
	if placeID.Valid {
		e.Place = &models.PlaceSummary{
			ID:      domain.PlaceID(placeID.Bytes),
			Name:    placeName.String,
			Address: placeAddress.String,
			Region:  placeRegion.String,
		}
	}
	return &e, nil
}

func (s *PostgresStore) ListOrganizers(ctx context.Context) ([]models.Organizer, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, category FROM event_organizers ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list organizers: %w", err)
	}
	defer rows.Close()

	organizers := []models.Organizer{}
	for rows.Next() {
		var (
			id  uuid.UUID
			org models.Organizer
		)
		if err := rows.Scan(&id, &org.Name, &org.Category); err != nil {
			return nil, fmt.Errorf("scan organizer: %w", err)
		}
		org.ID = domain.OrganizerID(id)
		organizers = append(organizers, org)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate organizers: %w", err)
	}
	return organizers, nil
}

func (s *PostgresStore) SaveOrganizer(ctx context.Context, org models.Organizer) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO event_organizers (id, name, category) VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, category = EXCLUDED.category`,
		uuid.UUID(org.ID), org.Name, org.Category)
	if err != nil {
		return fmt.Errorf("save organizer: %w", err)
	}
	return nil
}

// Save upserts an event. Only the IDs of its organizer and place are stored.
func (s *PostgresStore) Save(ctx context.Context, e *models.Event) error {
	var orgID, placeID pgtype.UUID
	if e.Organizer != nil {
		orgID = pgtype.UUID{Bytes: [16]byte(e.Organizer.ID), Valid: true}
	}
	if e.Place != nil {
		placeID = pgtype.UUID{Bytes: [16]byte(e.Place.ID), Valid: true}
	}
	var endDate pgtype.Date
	if e.EndDate != nil {
		endDate = pgtype.Date{Time: *e.EndDate, Valid: true}
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, title, description, event_type, status, start_date, end_date,
			target_age_min, target_age_max, target_age_note, organizer_id, place_id,
			is_free, registration_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, description = EXCLUDED.description,
			event_type = EXCLUDED.event_type, status = EXCLUDED.status,
			start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date,
			target_age_min = EXCLUDED.target_age_min, target_age_max = EXCLUDED.target_age_max,
			target_age_note = EXCLUDED.target_age_note, organizer_id = EXCLUDED.organizer_id,
			place_id = EXCLUDED.place_id, is_free = EXCLUDED.is_free,
			registration_url = EXCLUDED.registration_url`,
		uuid.UUID(e.ID), e.Title, e.Description, e.Type, string(e.Status),
		pgtype.Date{Time: e.StartDate, Valid: true}, endDate,
		nullInt(e.TargetAgeMin), nullInt(e.TargetAgeMax), e.TargetAgeNote, orgID, placeID,
		e.IsFree, e.RegistrationURL, createdAt)
	if err != nil {
		return fmt.Errorf("save event: %w", err)
	}
	return nil
}

func nullInt(v *int) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(*v), Valid: true}
}

// utcDate drops the session time zone pgx attaches to DATE values.
func utcDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
