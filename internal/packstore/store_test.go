package packstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"server/internal/domain/slotcfg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

type stubRow struct {
	raw []byte
	err error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if b, ok := dest[0].(*[]byte); ok {
		*b = r.raw
	}
	return nil
}

type stubSQL struct {
	raw []byte
	err error
}

func (s *stubSQL) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("unexpected exec")
}

func (s *stubSQL) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	return stubRow{raw: s.raw, err: s.err}
}

func (s *stubSQL) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("unexpected query")
}

func packJSON(t *testing.T, pack map[string]slotcfg.ArchetypeSpec) []byte {
	t.Helper()
	raw, err := json.Marshal(pack)
	if err != nil {
		t.Fatalf("marshal pack: %v", err)
	}
	return raw
}

func TestResolveUsesActivePack(t *testing.T) {
	pack := map[string]slotcfg.ArchetypeSpec{
		"energy_montage": {
			MinTotal:    3,
			MaxTotal:    6,
			MaxGenerate: 4,
			Slots:       []slotcfg.SlotSpec{{Key: "hero", Required: true}},
		},
	}
	store := NewStore(&stubSQL{raw: packJSON(t, pack)}, zerolog.Nop(), slotcfg.DefaultSpecs())

	spec, err := store.Resolve(context.Background(), "energy_montage")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if spec.MaxGenerate != 4 {
		t.Fatalf("pack spec not used: MaxGenerate = %d", spec.MaxGenerate)
	}
	if spec.Slots[0].Label != "Hero" {
		t.Fatalf("pack spec not normalized: label %q", spec.Slots[0].Label)
	}
}

func TestResolveFallsBackWhenLookupFails(t *testing.T) {
	store := NewStore(&stubSQL{err: pgx.ErrNoRows}, zerolog.Nop(), slotcfg.DefaultSpecs())

	spec, err := store.Resolve(context.Background(), "story_tour")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if spec.MaxGenerate != 6 {
		t.Fatalf("expected story_tour default, got MaxGenerate %d", spec.MaxGenerate)
	}
}

func TestResolveFallsBackOnMalformedPayload(t *testing.T) {
	store := NewStore(&stubSQL{raw: []byte("{not json")}, zerolog.Nop(), slotcfg.DefaultSpecs())

	spec, err := store.Resolve(context.Background(), "energy_montage")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if spec.MaxGenerate != 8 {
		t.Fatalf("expected built-in energy_montage, got MaxGenerate %d", spec.MaxGenerate)
	}
}

func TestResolveFallsBackOnInvalidPackSpec(t *testing.T) {
	pack := map[string]slotcfg.ArchetypeSpec{
		// max_generate above max_total would make the cost guard vacuous.
		"energy_montage": {
			MinTotal:    3,
			MaxTotal:    6,
			MaxGenerate: 10,
			Slots:       []slotcfg.SlotSpec{{Key: "hero", Required: true}},
		},
	}
	store := NewStore(&stubSQL{raw: packJSON(t, pack)}, zerolog.Nop(), slotcfg.DefaultSpecs())

	spec, err := store.Resolve(context.Background(), "energy_montage")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if spec.MaxGenerate != 8 {
		t.Fatalf("invalid pack spec must degrade to the default, got MaxGenerate %d", spec.MaxGenerate)
	}
}

func TestUnknownArchetypeDegradesToEnergyMontage(t *testing.T) {
	store := NewStatic(zerolog.Nop(), slotcfg.DefaultSpecs())

	spec, err := store.Resolve(context.Background(), "does_not_exist")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if spec.MaxGenerate != 8 || spec.MinTotal != 10 {
		t.Fatalf("expected energy_montage default, got %+v", spec)
	}
}

func TestResolveTerminalWhenNoDefaultsAtAll(t *testing.T) {
	store := NewStatic(zerolog.Nop(), map[string]slotcfg.ArchetypeSpec{})

	if _, err := store.Resolve(context.Background(), "anything"); err == nil {
		t.Fatal("expected terminal error with no defaults")
	}
}

func TestArchetypesOverlaysPackOnDefaults(t *testing.T) {
	pack := map[string]slotcfg.ArchetypeSpec{
		"seasonal_special": {
			MinTotal:    2,
			MaxTotal:    4,
			MaxGenerate: 2,
			Slots:       []slotcfg.SlotSpec{{Key: "hero", Required: true}},
		},
		"broken": {MinTotal: 5, MaxTotal: 1, MaxGenerate: 1, Slots: []slotcfg.SlotSpec{{Key: "x"}}},
	}
	store := NewStore(&stubSQL{raw: packJSON(t, pack)}, zerolog.Nop(), slotcfg.DefaultSpecs())

	names := store.ArchetypeNames(context.Background())

	want := map[string]bool{"energy_montage": true, "story_tour": true, "amenity_spotlight": true, "seasonal_special": true}
	if len(names) != len(want) {
		t.Fatalf("unexpected archetype set: %v", names)
	}
	for _, name := range names {
		if !want[name] {
			t.Fatalf("unexpected archetype %q (broken pack entries must be skipped)", name)
		}
	}
}
