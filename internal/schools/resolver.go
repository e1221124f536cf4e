package schools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/prepsportshq/preps-extract/internal/entity"
)

// Method records which resolution path produced the identity.
type Method string

const (
	MethodExact      Method = "exact"
	MethodAlias      Method = "alias"
	MethodNormalized Method = "normalized"
	MethodCreated    Method = "created"
)

// Resolution is the guaranteed outcome of a Resolve call: an identity always
// comes back, created if nothing matched. Suggestions list near-miss
// canonical names so a caller can route normalized/created resolutions to a
// confirmation step instead of trusting them blindly.
type Resolution struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Created     bool     `json:"created"`
	Method      Method   `json:"method"`
	AliasAdded  string   `json:"alias_added,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// ResolveOptions carry descriptive fields used only when a new school row
// has to be created.
type ResolveOptions struct {
	City           string
	Classification string
	Conference     string
}

type Resolver struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

func NewResolver(store Store, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, logger: logger, now: time.Now}
}

// Resolve maps a free-text school name to exactly one canonical identity,
// short-circuiting at the first hit: exact name, recorded alias, normalized
// name, then create-new. It only errors on storage faults; ambiguity is
// never an error — worst case a new school is created.
func (r *Resolver) Resolve(ctx context.Context, input string, opts ResolveOptions) (Resolution, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return Resolution{}, fmt.Errorf("resolve school: empty name")
	}

	// 1. Exact canonical match.
	if s, err := r.store.GetByName(ctx, name); err != nil {
		return Resolution{}, fmt.Errorf("lookup by name: %w", err)
	} else if s != nil {
		return Resolution{ID: s.ID.String(), Name: s.Name, Method: MethodExact}, nil
	}

	// 2. Recorded alias.
	if s, err := r.store.GetByAlias(ctx, name); err != nil {
		return Resolution{}, fmt.Errorf("lookup by alias: %w", err)
	} else if s != nil {
		return Resolution{ID: s.ID.String(), Name: s.Name, Method: MethodAlias}, nil
	}

	// 3. Normalized match; on a hit the input spelling becomes an alias so
	// the next import takes the fast path.
	if stripped := StripSchoolWords(name); stripped != "" && !strings.EqualFold(stripped, name) {
		s, err := r.store.GetByName(ctx, stripped)
		if err != nil {
			return Resolution{}, fmt.Errorf("lookup by normalized name: %w", err)
		}
		if s != nil {
			res := Resolution{ID: s.ID.String(), Name: s.Name, Method: MethodNormalized}
			switch err := r.store.AddAlias(ctx, s.ID, name); {
			case err == nil:
				res.AliasAdded = name
			case errors.Is(err, ErrAliasExists):
				r.logger.Debug("schools.resolve.alias_exists", "school_id", s.ID, "alias", name)
			default:
				// Best effort; the resolution itself stands.
				r.logger.Warn("schools.resolve.alias_failed", "school_id", s.ID, "alias", name, "error", err)
			}
			res.Suggestions = r.suggest(ctx, name, s.Name)
			return res, nil
		}
	}

	// 4. Nothing matched: create, disambiguating the slug on collision.
	created, err := r.create(ctx, name, opts)
	if err != nil {
		return Resolution{}, err
	}
	res := Resolution{ID: created.ID.String(), Name: created.Name, Created: true, Method: MethodCreated}
	switch err := r.store.AddAlias(ctx, created.ID, name); {
	case err == nil, errors.Is(err, ErrAliasExists):
	default:
		r.logger.Warn("schools.resolve.alias_failed", "school_id", created.ID, "alias", name, "error", err)
	}
	res.Suggestions = r.suggest(ctx, name, created.Name)

	r.logger.Info("schools.resolve.created",
		"school_id", created.ID,
		"name", created.Name,
		"key", created.Key,
		"suggestions", len(res.Suggestions),
	)
	return res, nil
}

func (r *Resolver) create(ctx context.Context, name string, opts ResolveOptions) (*entity.School, error) {
	req := CreateSchool{
		Key:            Slugify(name),
		Name:           name,
		City:           opts.City,
		Classification: opts.Classification,
		Conference:     opts.Conference,
	}
	s, err := r.store.Create(ctx, req)
	if errors.Is(err, ErrKeyExists) {
		req.Key = fmt.Sprintf("%s-%d", req.Key, r.now().Unix())
		s, err = r.store.Create(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("create school %q: %w", name, err)
	}
	return s, nil
}
