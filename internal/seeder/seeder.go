package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	authmodels "ainadeul/internal/auth/models"
	eventmodels "ainadeul/internal/event/models"
	placemodels "ainadeul/internal/place/models"
	"ainadeul/internal/recommend"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/platform/sentinel"
)

// UserStore defines methods for seeding users
type UserStore interface {
	Create(ctx context.Context, user *authmodels.User) error
}

// PlaceStore defines methods for seeding places
type PlaceStore interface {
	Save(ctx context.Context, place *placemodels.Place) error
}

// EventStore defines methods for seeding organizers and events
type EventStore interface {
	SaveOrganizer(ctx context.Context, org eventmodels.Organizer) error
	Save(ctx context.Context, event *eventmodels.Event) error
}

// DemoEmail and DemoPassword sign in the seeded parent account.
const (
	DemoEmail    = "parent@example.com"
	DemoPassword = "daejeon-kids"
)

// Seeder populates stores with Daejeon demo data. IDs are derived from
// names so seeding twice upserts the same rows.
type Seeder struct {
	users  UserStore
	places PlaceStore
	events EventStore
	logger *slog.Logger
	now    func() time.Time
}

// New creates a new seeder
func New(users UserStore, places PlaceStore, events EventStore, logger *slog.Logger) *Seeder {
	return &Seeder{
		users:  users,
		places: places,
		events: events,
		logger: logger,
		now:    time.Now,
	}
}

var namespace = uuid.MustParse("6f0c9a38-93a4-4b8e-9d7e-8a3c1f2b5d10")

func stableID(kind, name string) uuid.UUID {
	return uuid.NewSHA1(namespace, []byte(kind+":"+name))
}

// SeedAll populates all stores with demo data
func (s *Seeder) SeedAll(ctx context.Context) error {
	s.logger.Info("seeding demo data...")

	if err := s.seedUser(ctx); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	places, err := s.seedPlaces(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed places: %w", err)
	}

	events, err := s.seedEvents(ctx, places)
	if err != nil {
		return fmt.Errorf("failed to seed events: %w", err)
	}

	s.logger.Info("demo data seeded successfully",
		"places", len(places),
		"events", events,
	)
	return nil
}

func (s *Seeder) seedUser(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := s.now()
	user := &authmodels.User{
		ID:           domain.UserID(stableID("user", DemoEmail)),
		Email:        DemoEmail,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil && !errors.Is(err, sentinel.ErrConflict) {
		return err
	}
	return nil
}

func ptr[T any](v T) *T { return &v }

func weekdays(open, closeAt string, closed ...placemodels.Weekday) placemodels.OperatingHours {
	hours := make(placemodels.OperatingHours, len(placemodels.Weekdays))
	for _, d := range placemodels.Weekdays {
		hours[d] = placemodels.DayHours{Open: open, Close: closeAt}
	}
	for _, d := range closed {
		hours[d] = placemodels.DayHours{Closed: true}
	}
	return hours
}

func (s *Seeder) seedPlaces(ctx context.Context) (map[string]*placemodels.Place, error) {
	now := s.now()
	demo := []*placemodels.Place{
		{
			Name:     "국립중앙과학관",
			Category: "과학관",
			Region:   "유성구",
			Address:  "대전 유성구 대덕대로 481",
			Location: domain.Coordinate{Lat: 36.3758, Lng: 127.3760},
			IsIndoor: true,
			Phone:    "042-601-7894",
			Homepage: "https://www.science.go.kr",
			Hours:    weekdays("09:30", "17:50", placemodels.Monday),
			Details: &placemodels.Details{
				Description: "전시관, 천체관, 어린이과학관을 갖춘 국립 과학관",
				Features:    []string{"어린이과학관", "천체관", "자기부상열차", "야외 공룡공원"},
				PriceChild:  ptr(1000),
				PriceAdult:  ptr(2000),
			},
			Amenities: &placemodels.Amenities{ParkingAvailable: true, NursingRoom: true, DiaperTable: true, StrollerAccess: true},
			Scores:    &placemodels.FilterScores{ParentEnergyRequired: 3.0, ChildEnergyConsumption: 3.5},
			Suitability: recommend.Suitability{
				domain.Band25To48: 4.2, domain.Band49To72: 4.8, domain.Band73To84: 4.9, domain.BandOver84: 4.7,
			},
			BlogMentions: []placemodels.BlogMention{{
				Title:       "주말 과학관 나들이 후기",
				Link:        "https://blog.example.com/science-museum",
				BloggerName: "대전맘",
				PostDate:    now.AddDate(0, -1, 0),
			}},
		},
		{
			Name:      "한밭수목원",
			Category:  "공원",
			Region:    "서구",
			Address:   "대전 서구 둔산대로 169",
			Location:  domain.Coordinate{Lat: 36.3671, Lng: 127.3886},
			IsOutdoor: true,
			Hours:     weekdays("06:00", "21:00"),
			Details: &placemodels.Details{
				Description: "도심 속 대규모 수목원",
				Features:    []string{"잔디광장", "열대식물원", "산책로"},
				IsFree:      true,
			},
			Amenities: &placemodels.Amenities{ParkingAvailable: true, ParkingNote: "엑스포시민광장 주차장 이용", StrollerAccess: true},
			Scores:    &placemodels.FilterScores{ParentEnergyRequired: 3.5, ChildEnergyConsumption: 4.5},
			Suitability: recommend.Suitability{
				domain.Band0To12: 3.8, domain.Band13To24: 4.3, domain.Band25To48: 4.6, domain.Band49To72: 4.5,
			},
		},
		{
			Name:     "대전어린이회관",
			Category: "키즈카페",
			Region:   "유성구",
			Address:  "대전 유성구 월드컵대로 32",
			Location: domain.Coordinate{Lat: 36.3653, Lng: 127.3250},
			IsIndoor: true,
			Hours:    weekdays("10:00", "17:00", placemodels.Monday),
			Details: &placemodels.Details{
				Description: "영유아 놀이 체험 공간",
				Features:    []string{"영유아 놀이실", "키즈 클라이밍", "창의 놀이터"},
				PriceChild:  ptr(3000),
			},
			Amenities: &placemodels.Amenities{ParkingAvailable: true, ParkingFree: true, NursingRoom: true, DiaperTable: true, BabyChair: true},
			Scores:    &placemodels.FilterScores{ParentEnergyRequired: 4.5, ChildEnergyConsumption: 4.0},
			Suitability: recommend.Suitability{
				domain.Band13To24: 4.5, domain.Band25To48: 4.9, domain.Band49To72: 4.4,
			},
		},
		{
			Name:     "대전시립미술관",
			Category: "미술관",
			Region:   "서구",
			Address:  "대전 서구 둔산대로 155",
			Location: domain.Coordinate{Lat: 36.3665, Lng: 127.3845},
			IsIndoor: true,
			Hours:    weekdays("10:00", "19:00", placemodels.Monday),
			Details: &placemodels.Details{
				Description: "어린이 체험 전시를 운영하는 시립 미술관",
				Features:    []string{"어린이 미술 체험", "야외 조각공원"},
				IsFree:      true,
			},
			Amenities: &placemodels.Amenities{ParkingAvailable: true, StrollerAccess: true},
			Scores:    &placemodels.FilterScores{ParentEnergyRequired: 4.2, ChildEnergyConsumption: 2.0},
			Suitability: recommend.Suitability{
				domain.Band49To72: 3.9, domain.Band73To84: 4.3, domain.BandOver84: 4.5,
			},
		},
		{
			Name:      "대청호 자연수변공원",
			Category:  "공원",
			Region:    "대덕구",
			Address:   "대전 대덕구 대청로 618",
			Location:  domain.Coordinate{Lat: 36.4746, Lng: 127.4810},
			IsOutdoor: true,
			Hours:     weekdays("00:00", "24:00"),
			Details: &placemodels.Details{
				Description: "호숫가 산책과 피크닉",
				Features:    []string{"수변 산책로", "피크닉장"},
				IsFree:      true,
			},
			Scores: &placemodels.FilterScores{ParentEnergyRequired: 2.5, ChildEnergyConsumption: 4.2},
			Suitability: recommend.Suitability{
				domain.Band25To48: 3.8, domain.Band49To72: 4.1, domain.Band73To84: 4.0,
			},
		},
	}

	byName := make(map[string]*placemodels.Place, len(demo))
	for _, p := range demo {
		p.ID = domain.PlaceID(stableID("place", p.Name))
		p.IsActive = true
		p.CreatedAt = now
		for i := range p.BlogMentions {
			p.BlogMentions[i].ID = stableID("blog", p.BlogMentions[i].Link).String()
		}
		if err := s.places.Save(ctx, p); err != nil {
			return nil, err
		}
		byName[p.Name] = p
	}
	return byName, nil
}

func (s *Seeder) seedEvents(ctx context.Context, places map[string]*placemodels.Place) (int, error) {
	organizers := map[string]eventmodels.Organizer{}
	for _, o := range []struct{ name, category string }{
		{"국립중앙과학관", "과학관"},
		{"대전시립미술관", "미술관"},
		{"대전광역시", "지자체"},
	} {
		org := eventmodels.Organizer{ID: domain.OrganizerID(stableID("organizer", o.name)), Name: o.name, Category: o.category}
		if err := s.events.SaveOrganizer(ctx, org); err != nil {
			return 0, err
		}
		organizers[o.name] = org
	}

	today := eventmodels.Date(s.now(), time.UTC)
	demo := []struct {
		title, eventType, organizer, place string
		status                             eventmodels.Status
		startIn, days                      int
		minAge, maxAge                     *int
		note                               string
		free                               bool
	}{
		{"주말 어린이 과학교실", eventmodels.TypeRegular, "국립중앙과학관", "국립중앙과학관", eventmodels.StatusUpcoming, 5, 0, ptr(60), ptr(96), "", false},
		{"공룡 특별전", eventmodels.TypeSpecial, "국립중앙과학관", "국립중앙과학관", eventmodels.StatusOngoing, -10, 40, nil, nil, "", false},
		{"손으로 보는 미술전", eventmodels.TypeExhibition, "대전시립미술관", "대전시립미술관", eventmodels.StatusOngoing, -3, 30, ptr(36), nil, "", true},
		{"가족 인형극", eventmodels.TypePerformance, "대전광역시", "한밭수목원", eventmodels.StatusUpcoming, 12, 1, nil, nil, "보호자 동반 전연령", true},
		{"아기 숲 놀이", eventmodels.TypeRegular, "대전광역시", "한밭수목원", eventmodels.StatusUpcoming, 2, 0, ptr(12), ptr(36), "", true},
	}

	for _, d := range demo {
		start := today.AddDate(0, 0, d.startIn)
		e := &eventmodels.Event{
			ID:            domain.EventID(stableID("event", d.title)),
			Title:         d.title,
			Type:          d.eventType,
			Status:        d.status,
			StartDate:     start,
			TargetAgeMin:  d.minAge,
			TargetAgeMax:  d.maxAge,
			TargetAgeNote: d.note,
			IsFree:        d.free,
			CreatedAt:     s.now(),
		}
		if d.days > 0 {
			e.EndDate = ptr(start.AddDate(0, 0, d.days))
		}
		if org, ok := organizers[d.organizer]; ok {
			e.Organizer = &org
		}
		if p, ok := places[d.place]; ok {
			e.Place = &eventmodels.PlaceSummary{ID: p.ID, Name: p.Name, Address: p.Address, Region: p.Region}
		}
		if err := s.events.Save(ctx, e); err != nil {
			return 0, err
		}
	}
	return len(demo), nil
}
