package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/sync/errgroup"

	"ainadeul/internal/place/models"
	"ainadeul/internal/recommend"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

// PostgresStore reads places and their side tables from PostgreSQL.
type PostgresStore struct {
	db     *sql.DB
	typMap *pgtype.Map
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, typMap: pgtype.NewMap()}
}

const placeColumns = `id, name, category, region, address, lat, lng, is_indoor, is_outdoor, is_active, phone, homepage, operating_hours, created_at`

// ListActive loads every active place, ordered by name, with its side records.
func (s *PostgresStore) ListActive(ctx context.Context) ([]*models.Place, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+placeColumns+` FROM places WHERE is_active ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	var places []*models.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate places: %w", err)
	}
	if len(places) == 0 {
		return []*models.Place{}, nil
	}

	if err := s.attachSideRecords(ctx, places); err != nil {
		return nil, err
	}
	return places, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, placeID domain.PlaceID) (*models.Place, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+placeColumns+` FROM places WHERE id = $1`, uuid.UUID(placeID))
	p, err := scanPlace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("place not found: %w", sentinel.ErrNotFound)
		}
		return nil, err
	}
	if err := s.attachSideRecords(ctx, []*models.Place{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostgresStore) Exists(ctx context.Context, placeID domain.PlaceID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM places WHERE id = $1)`, uuid.UUID(placeID)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check place exists: %w", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlace(row rowScanner) (*models.Place, error) {
	var (
		placeID uuid.UUID
		hours   []byte
		p       models.Place
	)
	err := row.Scan(&placeID, &p.Name, &p.Category, &p.Region, &p.Address,
		&p.Location.Lat, &p.Location.Lng, &p.IsIndoor, &p.IsOutdoor, &p.IsActive,
		&p.Phone, &p.Homepage, &hours, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan place: %w", err)
	}
	p.ID = domain.PlaceID(placeID)
	if len(hours) > 0 {
		if err := json.Unmarshal(hours, &p.Hours); err != nil {
			return nil, fmt.Errorf("decode operating hours: %w", err)
		}
	}
	return &p, nil
}

// attachSideRecords loads the one-to-one side tables and blog mentions in
// parallel. Each query writes only to its own field of each place.
func (s *PostgresStore) attachSideRecords(ctx context.Context, places []*models.Place) error {
	byID := make(map[uuid.UUID]*models.Place, len(places))
	ids := make([]string, 0, len(places))
	for _, p := range places {
		byID[uuid.UUID(p.ID)] = p
		ids = append(ids, p.ID.String())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.loadDetails(gctx, ids, byID) })
	g.Go(func() error { return s.loadAmenities(gctx, ids, byID) })
	g.Go(func() error { return s.loadScores(gctx, ids, byID) })
	g.Go(func() error { return s.loadSuitability(gctx, ids, byID) })
	g.Go(func() error { return s.loadBlogMentions(gctx, ids, byID) })
	return g.Wait()
}

func (s *PostgresStore) loadDetails(ctx context.Context, ids []string, byID map[uuid.UUID]*models.Place) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT place_id, description, features, is_free, price_adult, price_child, price_note
		FROM place_details WHERE place_id = ANY($1::uuid[])
	`, ids)
	if err != nil {
		return fmt.Errorf("load place details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			placeID    uuid.UUID
			d          models.Details
			priceAdult sql.NullInt32
			priceChild sql.NullInt32
		)
		if err := rows.Scan(&placeID, &d.Description, s.typMap.SQLScanner(&d.Features), &d.IsFree, &priceAdult, &priceChild, &d.PriceNote); err != nil {
			return fmt.Errorf("scan place details: %w", err)
		}
		if priceAdult.Valid {
			v := int(priceAdult.Int32)
			d.PriceAdult = &v
		}
		if priceChild.Valid {
			v := int(priceChild.Int32)
			d.PriceChild = &v
		}
		byID[placeID].Details = &d
	}
	return rows.Err()
}

func (s *PostgresStore) loadAmenities(ctx context.Context, ids []string, byID map[uuid.UUID]*models.Place) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT place_id, parking_available, parking_free, parking_note, nursing_room, diaper_table, stroller_access, baby_chair
		FROM place_amenities WHERE place_id = ANY($1::uuid[])
	`, ids)
	if err != nil {
		return fmt.Errorf("load place amenities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			placeID uuid.UUID
			a       models.Amenities
		)
		if err := rows.Scan(&placeID, &a.ParkingAvailable, &a.ParkingFree, &a.ParkingNote, &a.NursingRoom, &a.DiaperTable, &a.StrollerAccess, &a.BabyChair); err != nil {
			return fmt.Errorf("scan place amenities: %w", err)
		}
		byID[placeID].Amenities = &a
	}
	return rows.Err()
}

func (s *PostgresStore) loadScores(ctx context.Context, ids []string, byID map[uuid.UUID]*models.Place) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT place_id, parent_energy_required::float8, child_energy_consumption::float8
		FROM place_filter_scores WHERE place_id = ANY($1::uuid[])
	`, ids)
	if err != nil {
		return fmt.Errorf("load place filter scores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			placeID uuid.UUID
			sc      models.FilterScores
		)
		if err := rows.Scan(&placeID, &sc.ParentEnergyRequired, &sc.ChildEnergyConsumption); err != nil {
			return fmt.Errorf("scan place filter scores: %w", err)
		}
		byID[placeID].Scores = &sc
	}
	return rows.Err()
}

func (s *PostgresStore) loadSuitability(ctx context.Context, ids []string, byID map[uuid.UUID]*models.Place) error {
	columns := make([]string, 0, len(domain.AgeBands))
	for _, band := range domain.AgeBands {
		columns = append(columns, band.Column()+"::float8")
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT place_id, `+strings.Join(columns, ", ")+`
		FROM place_age_suitability WHERE place_id = ANY($1::uuid[])
	`, ids)
	if err != nil {
		return fmt.Errorf("load place age suitability: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var placeID uuid.UUID
		scores := make([]sql.NullFloat64, len(domain.AgeBands))
		dest := []any{&placeID}
		for i := range scores {
			dest = append(dest, &scores[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("scan place age suitability: %w", err)
		}
		suitability := make(recommend.Suitability, len(domain.AgeBands))
		for i, band := range domain.AgeBands {
			if scores[i].Valid && scores[i].Float64 > 0 {
				suitability[band] = scores[i].Float64
			}
		}
		byID[placeID].Suitability = suitability
	}
	return rows.Err()
}

func (s *PostgresStore) loadBlogMentions(ctx context.Context, ids []string, byID map[uuid.UUID]*models.Place) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, place_id, blog_title, blog_description, blog_link, blogger_name, post_date
		FROM place_blog_mentions WHERE place_id = ANY($1::uuid[])
		ORDER BY post_date DESC NULLS LAST, id
	`, ids)
	if err != nil {
		return fmt.Errorf("load blog mentions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			mentionID uuid.UUID
			placeID   uuid.UUID
			postDate  sql.NullTime
			m         models.BlogMention
		)
		if err := rows.Scan(&mentionID, &placeID, &m.Title, &m.Description, &m.Link, &m.BloggerName, &postDate); err != nil {
			return fmt.Errorf("scan blog mention: %w", err)
		}
		m.ID = mentionID.String()
		if postDate.Valid {
			m.PostDate = postDate.Time
		}
		p := byID[placeID]
		p.BlogMentions = append(p.BlogMentions, m)
	}
	return rows.Err()
}

// Save upserts a place and replaces its side records in one transaction.
func (s *PostgresStore) Save(ctx context.Context, p *models.Place) error {
	if p == nil {
		return fmt.Errorf("place is required")
	}
	hours, err := json.Marshal(p.Hours)
	if err != nil {
		return fmt.Errorf("encode operating hours: %w", err)
	}
	if p.Hours == nil {
		hours = []byte("{}")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save place: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	placeID := uuid.UUID(p.ID)
	_, err = tx.ExecContext(ctx, `
		INSERT INTO places (id, name, category, region, address, lat, lng, is_indoor, is_outdoor, is_active, phone, homepage, operating_hours, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, category = EXCLUDED.category, region = EXCLUDED.region,
			address = EXCLUDED.address, lat = EXCLUDED.lat, lng = EXCLUDED.lng,
			is_indoor = EXCLUDED.is_indoor, is_outdoor = EXCLUDED.is_outdoor, is_active = EXCLUDED.is_active,
			phone = EXCLUDED.phone, homepage = EXCLUDED.homepage, operating_hours = EXCLUDED.operating_hours
	`, placeID, p.Name, p.Category, p.Region, p.Address, p.Location.Lat, p.Location.Lng,
		p.IsIndoor, p.IsOutdoor, p.IsActive, p.Phone, p.Homepage, string(hours), p.CreatedAt)
	if err != nil {
		return fmt.Errorf("upsert place: %w", err)
	}

	for _, table := range []string{"place_details", "place_amenities", "place_filter_scores", "place_age_suitability", "place_blog_mentions"} {
		if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE place_id = $1`, placeID); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	if d := p.Details; d != nil {
		features := d.Features
		if features == nil {
			features = []string{}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO place_details (place_id, description, features, is_free, price_adult, price_child, price_note)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, placeID, d.Description, features, d.IsFree, d.PriceAdult, d.PriceChild, d.PriceNote)
		if err != nil {
			return fmt.Errorf("insert place details: %w", err)
		}
	}
	if a := p.Amenities; a != nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO place_amenities (place_id, parking_available, parking_free, parking_note, nursing_room, diaper_table, stroller_access, baby_chair)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, placeID, a.ParkingAvailable, a.ParkingFree, a.ParkingNote, a.NursingRoom, a.DiaperTable, a.StrollerAccess, a.BabyChair)
		if err != nil {
			return fmt.Errorf("insert place amenities: %w", err)
		}
	}
	if sc := p.Scores; sc != nil {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO place_filter_scores (place_id, parent_energy_required, child_energy_consumption)
			VALUES ($1, $2, $3)
		`, placeID, sc.ParentEnergyRequired, sc.ChildEnergyConsumption)
		if err != nil {
			return fmt.Errorf("insert place filter scores: %w", err)
		}
	}
	if len(p.Suitability) > 0 {
		columns := []string{"place_id"}
		placeholders := []string{"$1"}
		args := []any{placeID}
		for _, band := range domain.AgeBands {
			columns = append(columns, band.Column())
			args = append(args, nullScore(p.Suitability[band]))
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		_, err = tx.ExecContext(ctx, `INSERT INTO place_age_suitability (`+strings.Join(columns, ", ")+`) VALUES (`+strings.Join(placeholders, ", ")+`)`, args...)
		if err != nil {
			return fmt.Errorf("insert place age suitability: %w", err)
		}
	}
	for _, m := range p.BlogMentions {
		mentionID, err := uuid.Parse(m.ID)
		if err != nil {
			mentionID = uuid.New()
		}
		var postDate sql.NullTime
		if !m.PostDate.IsZero() {
			postDate = sql.NullTime{Time: m.PostDate, Valid: true}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO place_blog_mentions (id, place_id, blog_title, blog_description, blog_link, blogger_name, post_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, mentionID, placeID, m.Title, m.Description, m.Link, m.BloggerName, postDate)
		if err != nil {
			return fmt.Errorf("insert blog mention: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save place: %w", err)
	}
	return nil
}

func nullScore(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: v > 0}
}
