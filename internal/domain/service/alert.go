package service

import (
	"sync"

	"github.com/diegoclair/corrupted-zone-bot/internal/domain"
	"github.com/diegoclair/corrupted-zone-bot/internal/domain/entity"
)

// alertPolicy remembers the seed of the last occurrence it announced, so each
// window is announced at most once however many ticks observe it.
type alertPolicy struct {
	mu       sync.Mutex
	kind     domain.AlertKind
	lastSeed int64
	hasSeed  bool
}

func newAlertPolicy(kind domain.AlertKind) *alertPolicy {
	return &alertPolicy{kind: kind}
}

// evaluate calls deliver when trigger holds and candidate has not been
// announced yet. The seed is committed only if deliver succeeds, so a failed
// send is retried by the next tick that still satisfies the trigger.
func (p *alertPolicy) evaluate(candidate entity.ZoneInfo, trigger bool, deliver func() error) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !trigger || (p.hasSeed && p.lastSeed == candidate.Seed) {
		return false, nil
	}

	if err := deliver(); err != nil {
		return false, err
	}

	p.lastSeed = candidate.Seed
	p.hasSeed = true
	return true, nil
}

func (p *alertPolicy) last() (int64, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastSeed, p.hasSeed
}
