package pricing

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dugiahuy/session-billing/billing/model"
)

//go:embed rates.yaml
var defaultTable []byte

type tableFile struct {
	Version           string                      `yaml:"version"`
	PlatformAccountID string                      `yaml:"platform_account_id"`
	Rates             map[string]map[string]int64 `yaml:"rates"`
	Splits            map[string]int32            `yaml:"splits"`
}

// Default parses the rate table shipped with the service.
func Default() (*Snapshot, error) {
	return Parse(defaultTable)
}

// Parse builds a validated Snapshot from a YAML rate table. Every (kind, tier) pair and every split
// context must be configured; a table with gaps is rejected rather than failing sessions later.
func Parse(data []byte) (*Snapshot, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse rate table: %w", err)
	}

	snapshot := &Snapshot{
		version:           file.Version,
		platformAccountID: file.PlatformAccountID,
		rates:             make(map[model.SessionKind]map[model.Tier]int64, len(file.Rates)),
		splits:            make(map[model.SplitContext]int32, len(file.Splits)),
	}
	for kind, tiers := range file.Rates {
		byTier := make(map[model.Tier]int64, len(tiers))
		for tier, rate := range tiers {
			byTier[model.Tier(tier)] = rate
		}
		snapshot.rates[model.SessionKind(kind)] = byTier
	}
	for ctx, bps := range file.Splits {
		snapshot.splits[model.SplitContext(ctx)] = bps
	}

	if err := snapshot.validate(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *Snapshot) validate() error {
	if s.version == "" {
		return fmt.Errorf("rate table: version is required")
	}
	if s.platformAccountID == "" {
		return fmt.Errorf("rate table %s: platform_account_id is required", s.version)
	}
	for _, kind := range model.SessionKinds {
		for _, tier := range model.Tiers {
			if _, err := s.ResolveRate(kind, tier); err != nil {
				return fmt.Errorf("rate table %s: %w", s.version, err)
			}
		}
	}
	for _, ctx := range model.SplitContexts {
		split, err := s.ResolveSplit(ctx)
		if err != nil {
			return fmt.Errorf("rate table %s: %w", s.version, err)
		}
		if split.EarnerShareBps < 0 || split.EarnerShareBps > BasisPoints {
			return fmt.Errorf("rate table %s: split %s must be within 0..%d bps", s.version, ctx, BasisPoints)
		}
		if ctx == model.SplitContextPlatformOnly && split.EarnerShareBps != 0 {
			return fmt.Errorf("rate table %s: split %s cannot pay an earner", s.version, ctx)
		}
	}
	return nil
}
