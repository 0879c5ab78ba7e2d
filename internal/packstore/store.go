package packstore

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"server/internal/domain"
	"server/internal/domain/slotcfg"
	"server/internal/infra"
	"server/internal/sqlinline"

	"github.com/rs/zerolog"
)

// Store resolves archetype slot specs from the currently active weekly pack
// in Postgres, degrading to the built-in defaults whenever the pack is
// missing, unreadable, or does not cover the requested archetype. A single
// lookup attempt is made per call; failures never propagate as errors unless
// even the defaults cannot answer.
type Store struct {
	sql      infra.SQLExecutor
	logger   zerolog.Logger
	defaults map[string]slotcfg.ArchetypeSpec
}

// NewStore builds a pack-backed resolver. sql may be nil, in which case the
// store behaves exactly like NewStatic.
func NewStore(sql infra.SQLExecutor, logger zerolog.Logger, defaults map[string]slotcfg.ArchetypeSpec) *Store {
	return &Store{sql: sql, logger: logger, defaults: defaults}
}

// NewStatic builds a defaults-only resolver with no pack lookup.
func NewStatic(logger zerolog.Logger, defaults map[string]slotcfg.ArchetypeSpec) *Store {
	return &Store{logger: logger, defaults: defaults}
}

// Resolve returns the spec for archetype, normalized and validated. The
// fallback order is: active pack entry, built-in default for the archetype,
// built-in energy_montage default.
func (s *Store) Resolve(ctx context.Context, archetype string) (*slotcfg.ArchetypeSpec, error) {
	archetype = strings.TrimSpace(archetype)
	if pack := s.loadActivePack(ctx); pack != nil {
		if spec, ok := pack[archetype]; ok {
			spec.Normalize()
			if err := spec.Validate(); err != nil {
				s.logger.Warn().Err(err).Str("archetype", archetype).Msg("active pack spec invalid, using default")
			} else {
				return &spec, nil
			}
		}
	}
	return s.fallback(archetype)
}

// Archetypes returns every resolvable archetype spec: the defaults overlaid
// with whatever the active pack defines.
func (s *Store) Archetypes(ctx context.Context) map[string]slotcfg.ArchetypeSpec {
	out := make(map[string]slotcfg.ArchetypeSpec, len(s.defaults))
	for name, spec := range s.defaults {
		out[name] = spec
	}
	for name, spec := range s.loadActivePack(ctx) {
		spec.Normalize()
		if err := spec.Validate(); err != nil {
			s.logger.Warn().Err(err).Str("archetype", name).Msg("skipping invalid pack spec")
			continue
		}
		out[name] = spec
	}
	return out
}

// ArchetypeNames returns the resolvable archetype names in sorted order.
func (s *Store) ArchetypeNames(ctx context.Context) []string {
	specs := s.Archetypes(ctx)
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Store) loadActivePack(ctx context.Context) map[string]slotcfg.ArchetypeSpec {
	if s.sql == nil {
		return nil
	}
	row := s.sql.QueryRow(ctx, sqlinline.QSelectActiveWeeklyPack)
	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if infra.IsNoRows(err) {
			s.logger.Warn().Msg("no active weekly pack, using default slot specs")
		} else {
			s.logger.Warn().Err(err).Msg("weekly pack lookup failed, using default slot specs")
		}
		return nil
	}
	var pack map[string]slotcfg.ArchetypeSpec
	if err := json.Unmarshal(raw, &pack); err != nil {
		s.logger.Warn().Err(err).Msg("weekly pack payload malformed, using default slot specs")
		return nil
	}
	return pack
}

func (s *Store) fallback(archetype string) (*slotcfg.ArchetypeSpec, error) {
	spec, ok := s.defaults[archetype]
	if !ok {
		s.logger.Warn().Str("archetype", archetype).Msg("unknown archetype, using energy_montage default")
		spec, ok = s.defaults[slotcfg.ArchetypeEnergyMontage]
		if !ok {
			return nil, domain.ErrSpecUnavailable
		}
	}
	spec.Normalize()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}
