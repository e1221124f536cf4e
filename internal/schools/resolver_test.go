package schools

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepsportshq/preps-extract/internal/entity"
)

// fakeStore is an in-memory Store with the same case-insensitivity and
// uniqueness semantics as the relational implementation.
type fakeStore struct {
	schools []*entity.School
	aliases map[string]*entity.School // lowercased alias -> school
}

func newFakeStore() *fakeStore {
	return &fakeStore{aliases: map[string]*entity.School{}}
}

func (f *fakeStore) seed(name string) *entity.School {
	s := &entity.School{ID: uuid.New(), Key: Slugify(name), Name: name}
	f.schools = append(f.schools, s)
	return s
}

func (f *fakeStore) GetByName(_ context.Context, name string) (*entity.School, error) {
	for _, s := range f.schools {
		if strings.EqualFold(s.Name, name) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByAlias(_ context.Context, alias string) (*entity.School, error) {
	if s, ok := f.aliases[strings.ToLower(alias)]; ok {
		return s, nil
	}
	return nil, nil
}

func (f *fakeStore) ListNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(f.schools))
	for _, s := range f.schools {
		names = append(names, s.Name)
	}
	sort.Strings(names)
	return names, nil
}

func (f *fakeStore) Create(_ context.Context, req CreateSchool) (*entity.School, error) {
	for _, s := range f.schools {
		if s.Key == req.Key {
			return nil, ErrKeyExists
		}
	}
	s := &entity.School{
		ID:             uuid.New(),
		Key:            req.Key,
		Name:           req.Name,
		City:           req.City,
		Classification: req.Classification,
		Conference:     req.Conference,
	}
	f.schools = append(f.schools, s)
	return s, nil
}

func (f *fakeStore) AddAlias(_ context.Context, schoolID uuid.UUID, alias string) error {
	key := strings.ToLower(alias)
	if _, ok := f.aliases[key]; ok {
		return ErrAliasExists
	}
	for _, s := range f.schools {
		if s.ID == schoolID {
			f.aliases[key] = s
			return nil
		}
	}
	return nil
}

func TestResolveExactMatch(t *testing.T) {
	store := newFakeStore()
	cannon := store.seed("Cannon")
	r := NewResolver(store, nil)

	res, err := r.Resolve(context.Background(), "cannon", ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, cannon.ID.String(), res.ID)
	assert.Equal(t, MethodExact, res.Method)
	assert.False(t, res.Created)
	assert.Empty(t, res.AliasAdded)
}

func TestResolveAliasMatch(t *testing.T) {
	store := newFakeStore()
	cannon := store.seed("Cannon")
	require.NoError(t, store.AddAlias(context.Background(), cannon.ID, "Cannon HS"))
	r := NewResolver(store, nil)

	res, err := r.Resolve(context.Background(), "cannon hs", ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, cannon.ID.String(), res.ID)
	assert.Equal(t, "Cannon", res.Name)
	assert.Equal(t, MethodAlias, res.Method)
}

func TestResolveNormalizedMatchRecordsAlias(t *testing.T) {
	store := newFakeStore()
	cannon := store.seed("Cannon")
	r := NewResolver(store, nil)

	res, err := r.Resolve(context.Background(), "Cannon High School", ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, cannon.ID.String(), res.ID)
	assert.Equal(t, MethodNormalized, res.Method)
	assert.Equal(t, "Cannon High School", res.AliasAdded)

	// The next import of the same spelling takes the alias fast path.
	res2, err := r.Resolve(context.Background(), "Cannon High School", ResolveOptions{})
	require.NoError(t, err)
	assert.Equal(t, cannon.ID.String(), res2.ID)
	assert.Equal(t, MethodAlias, res2.Method)
}

func TestResolveVariantsConvergeOnOneIdentity(t *testing.T) {
	store := newFakeStore()
	store.seed("Cannon")
	r := NewResolver(store, nil)

	ids := map[string]struct{}{}
	for _, input := range []string{"Cannon", "Cannon High School", "Cannon HS", "cannon h.s."} {
		res, err := r.Resolve(context.Background(), input, ResolveOptions{})
		require.NoError(t, err, "input %q", input)
		assert.False(t, res.Created, "input %q", input)
		ids[res.ID] = struct{}{}
	}
	assert.Len(t, ids, 1)
}

func TestResolveCreatesWhenUnknown(t *testing.T) {
	store := newFakeStore()
	r := NewResolver(store, nil)

	res, err := r.Resolve(context.Background(), "Cox Mill", ResolveOptions{City: "Concord", Classification: "4A"})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, MethodCreated, res.Method)
	assert.Equal(t, "Cox Mill", res.Name)

	created, err := store.GetByName(context.Background(), "Cox Mill")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "cox-mill", created.Key)
	assert.Equal(t, "Concord", created.City)
	assert.Equal(t, "4A", created.Classification)
}

func TestResolveSlugCollisionDisambiguates(t *testing.T) {
	store := newFakeStore()
	store.seed("Cox Mill") // key "cox-mill"
	r := NewResolver(store, nil)
	r.now = func() time.Time { return time.Unix(1700000000, 0) }

	// Distinct name, colliding slug.
	res, err := r.Resolve(context.Background(), "Cox-Mill", ResolveOptions{})
	require.NoError(t, err)
	assert.True(t, res.Created)

	created, err := store.GetByName(context.Background(), "Cox-Mill")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "cox-mill-1700000000", created.Key)
}

func TestResolveSuggestsNearMisses(t *testing.T) {
	store := newFakeStore()
	store.seed("Cannon")
	store.seed("Concord")
	r := NewResolver(store, nil)

	// Typo that matches nothing; creation still succeeds and the near-miss
	// canonical name is surfaced for review.
	res, err := r.Resolve(context.Background(), "Canon", ResolveOptions{})
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Contains(t, res.Suggestions, "Cannon")
	assert.NotContains(t, res.Suggestions, "Canon")
}

func TestResolveEmptyNameErrors(t *testing.T) {
	r := NewResolver(newFakeStore(), nil)
	_, err := r.Resolve(context.Background(), "   ", ResolveOptions{})
	assert.Error(t, err)
}
