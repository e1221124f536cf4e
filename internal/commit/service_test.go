package commit

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepsportshq/preps-extract/constants"
	"github.com/prepsportshq/preps-extract/internal/entity"
	"github.com/prepsportshq/preps-extract/internal/extraction"
	"github.com/prepsportshq/preps-extract/internal/repository"
	"github.com/prepsportshq/preps-extract/internal/schools"
)

type memStore struct {
	schools []*entity.School
	aliases map[string]*entity.School
}

func newMemStore() *memStore { return &memStore{aliases: map[string]*entity.School{}} }

func (m *memStore) GetByName(_ context.Context, name string) (*entity.School, error) {
	for _, s := range m.schools {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memStore) GetByAlias(_ context.Context, alias string) (*entity.School, error) {
	if s, ok := m.aliases[strings.ToLower(alias)]; ok {
		return s, nil
	}
	return nil, nil
}

func (m *memStore) ListNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(m.schools))
	for _, s := range m.schools {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *memStore) Create(_ context.Context, req schools.CreateSchool) (*entity.School, error) {
	for _, s := range m.schools {
		if s.Key == req.Key {
			return nil, schools.ErrKeyExists
		}
	}
	s := &entity.School{ID: uuid.New(), Key: req.Key, Name: req.Name, City: req.City}
	m.schools = append(m.schools, s)
	return s, nil
}

func (m *memStore) AddAlias(_ context.Context, schoolID uuid.UUID, alias string) error {
	key := strings.ToLower(alias)
	if _, ok := m.aliases[key]; ok {
		return schools.ErrAliasExists
	}
	for _, s := range m.schools {
		if s.ID == schoolID {
			m.aliases[key] = s
		}
	}
	return nil
}

type memPlayers struct {
	rows []*entity.Player
}

func (m *memPlayers) Find(_ context.Context, req *repository.CreatePlayerRequest) (*entity.Player, error) {
	for _, p := range m.rows {
		if p.SchoolID == req.SchoolID && p.Sport == req.Sport && p.Gender == req.Gender &&
			p.Season == req.Season &&
			strings.EqualFold(p.FirstName, req.FirstName) && strings.EqualFold(p.LastName, req.LastName) {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPlayers) Create(_ context.Context, req *repository.CreatePlayerRequest) (*entity.Player, error) {
	p := &entity.Player{
		ID:           uuid.New(),
		SchoolID:     req.SchoolID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		JerseyNumber: req.JerseyNumber,
		Grade:        req.Grade,
		Sport:        req.Sport,
		Gender:       req.Gender,
		Season:       req.Season,
	}
	m.rows = append(m.rows, p)
	return p, nil
}

func (m *memPlayers) Update(_ context.Context, id uuid.UUID, req *repository.CreatePlayerRequest) (*entity.Player, error) {
	for _, p := range m.rows {
		if p.ID == id {
			p.JerseyNumber = req.JerseyNumber
			p.Grade = req.Grade
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPlayers) ListRoster(_ context.Context, schoolID uuid.UUID, sport, gender, season string) ([]*entity.Player, error) {
	out := []*entity.Player{}
	for _, p := range m.rows {
		if p.SchoolID == schoolID && p.Sport == sport && p.Gender == gender && p.Season == season {
			out = append(out, p)
		}
	}
	return out, nil
}

type memGames struct {
	rows []*entity.Game
}

func (m *memGames) Exists(_ context.Context, schoolID uuid.UUID, date time.Time, opponent string) (bool, error) {
	for _, g := range m.rows {
		if g.SchoolID == schoolID && g.Date.Equal(date) && strings.EqualFold(g.Opponent, opponent) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memGames) Create(_ context.Context, req *repository.CreateGameRequest) (*entity.Game, error) {
	g := &entity.Game{
		ID:        uuid.New(),
		SchoolID:  req.SchoolID,
		Sport:     req.Sport,
		Gender:    req.Gender,
		Season:    req.Season,
		Date:      req.Date,
		Opponent:  req.Opponent,
		IsHome:    req.IsHome,
		HomeScore: req.HomeScore,
		AwayScore: req.AwayScore,
	}
	m.rows = append(m.rows, g)
	return g, nil
}

func (m *memGames) ListSeason(_ context.Context, schoolID uuid.UUID, sport, gender, season string) ([]*entity.Game, error) {
	out := []*entity.Game{}
	for _, g := range m.rows {
		if g.SchoolID == schoolID && g.Sport == sport && g.Gender == gender && g.Season == season {
			out = append(out, g)
		}
	}
	return out, nil
}

func newTestService() (*Service, *memStore, *memPlayers, *memGames) {
	store := newMemStore()
	players := &memPlayers{}
	games := &memGames{}
	svc := NewService(schools.NewResolver(store, nil), players, games, nil)
	return svc, store, players, games
}

func gradePtr(s string) *string { return &s }

func testRoster() *extraction.ExtractedRoster {
	return &extraction.ExtractedRoster{
		SchoolName:   "Cannon",
		Sport:        constants.Basketball,
		Gender:       constants.Boys,
		SourceSeason: "2024-25",
		TargetSeason: "2025-26",
		Players: []extraction.ExtractedPlayer{
			{JerseyNumber: "3", FirstName: "Jalen", LastName: "Smith", ProgressedGrade: gradePtr("SO")},
			{JerseyNumber: "24", FirstName: "Tre", LastName: "Brown", ProgressedGrade: gradePtr("SR"), Dropped: true},
			{JerseyNumber: "10", FirstName: "Cam", LastName: "White"},
		},
	}
}

func TestCommitRosterCreatesAndSkipsDropped(t *testing.T) {
	svc, _, players, _ := newTestService()

	summary, err := svc.CommitRoster(context.Background(), testRoster())
	require.NoError(t, err)
	assert.True(t, summary.SchoolCreated)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, players.rows, 2)
	assert.Equal(t, "2025-26", players.rows[0].Season)
}

func TestCommitRosterUpdatesExisting(t *testing.T) {
	svc, _, players, _ := newTestService()

	_, err := svc.CommitRoster(context.Background(), testRoster())
	require.NoError(t, err)

	r := testRoster()
	r.Players[0].JerseyNumber = "5" // same name, new number
	summary, err := svc.CommitRoster(context.Background(), r)
	require.NoError(t, err)
	assert.False(t, summary.SchoolCreated)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Len(t, players.rows, 2)
	assert.Equal(t, "5", players.rows[0].JerseyNumber)
}

func TestCommitRosterRejectsInvalid(t *testing.T) {
	svc, _, players, _ := newTestService()

	r := testRoster()
	r.SchoolName = ""
	_, err := svc.CommitRoster(context.Background(), r)
	require.Error(t, err)
	assert.Empty(t, players.rows)
}

func testSchedule() *extraction.ExtractedSchedule {
	return &extraction.ExtractedSchedule{
		TeamName: "Cannon",
		Sport:    constants.Basketball,
		Gender:   constants.Boys,
		Season:   "2024-25",
		Games: []extraction.ExtractedGame{
			{Date: "2024-12-05", Opponent: "Concord", IsHome: true},
			{Date: "2025-01-09", Opponent: "Hickory Ridge"},
		},
	}
}

func TestCommitScheduleSkipsExistingGames(t *testing.T) {
	svc, _, _, games := newTestService()

	summary, err := svc.CommitSchedule(context.Background(), testSchedule())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 0, summary.Skipped)
	assert.Len(t, games.rows, 2)

	// Re-committing the same document creates nothing.
	summary, err = svc.CommitSchedule(context.Background(), testSchedule())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 2, summary.Skipped)
	assert.Len(t, games.rows, 2)
}

func TestCommitGame(t *testing.T) {
	svc, _, _, games := newTestService()

	game := &extraction.BasketballGame{
		Date: "2025-01-14",
		HomeTeam: extraction.TeamResult{
			Name:    "Eagles",
			Score:   52,
			Players: []extraction.PlayerLine{{Name: "J. Smith", Points: 52, Fouls: 2}},
		},
		AwayTeam: extraction.TeamResult{
			Name:    "Falcons",
			Score:   47,
			Players: []extraction.PlayerLine{{Name: "A. Lee", Points: 47, Fouls: 3}},
		},
	}

	summary, err := svc.CommitGame(context.Background(), CommitGameRequest{Game: game, Gender: "boys", Season: "2024-25"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Created)
	require.Len(t, games.rows, 1)

	row := games.rows[0]
	assert.Equal(t, "BASKETBALL", row.Sport)
	assert.Equal(t, "Boys", row.Gender)
	assert.Equal(t, "Falcons", row.Opponent)
	require.NotNil(t, row.HomeScore)
	assert.Equal(t, 52, *row.HomeScore)
	assert.Equal(t, 47, *row.AwayScore)
}

func TestCommitGameRejectsValidationFailure(t *testing.T) {
	svc, _, _, games := newTestService()

	game := &extraction.BasketballGame{
		Date: "2025-01-14",
		HomeTeam: extraction.TeamResult{
			Name:    "Eagles",
			Score:   52,
			Players: []extraction.PlayerLine{{Name: "J. Smith", Points: 50, Fouls: 2}},
		},
		AwayTeam: extraction.TeamResult{Name: "Falcons", Score: 47},
	}

	_, err := svc.CommitGame(context.Background(), CommitGameRequest{Game: game, Gender: "boys", Season: "2024-25"})
	require.Error(t, err)
	assert.Empty(t, games.rows)
}
