package tracker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sk21munashe/vitality-daily-sub000/internal/model"
	"github.com/sk21munashe/vitality-daily-sub000/internal/syncer"
)

// SaveHealthProfile stores the AI-coach input and mirrors it.
func (t *Tracker) SaveHealthProfile(health model.HealthProfile) {
	t.store.SaveHealthProfile(health)
	t.mirror()
}

// SavePlan stores a generated plan wholesale and mirrors the latest
// profile+plan record. Local commit always succeeds; the mirror is
// fire and forget.
func (t *Tracker) SavePlan(p model.HealthPlan) {
	t.store.SavePlan(p)
	t.mirror()
}

func (t *Tracker) HealthProfile() *model.HealthProfile {
	return t.store.HealthProfile()
}

func (t *Tracker) Plan() *model.HealthPlan {
	return t.store.Plan()
}

// mirror upserts the remote record on a goroutine. Failures are
// logged and dropped; the next save retries with the newest snapshot.
func (t *Tracker) mirror() {
	if t.remote == nil {
		return
	}

	payload := syncer.Payload{UpdatedAt: time.Now()}
	if health := t.store.HealthProfile(); health != nil {
		if raw, err := json.Marshal(health); err == nil {
			payload.HealthProfile = raw
		}
	}
	if plan := t.store.Plan(); plan != nil {
		if raw, err := json.Marshal(plan); err == nil {
			payload.HealthPlan = raw
		}
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := t.remote.Upsert(ctx, t.userID, payload); err != nil {
			t.logger.Warn("remote mirror failed", "user", t.userID, "error", err)
		}
		select {
		case t.mirrorDone <- struct{}{}:
		default:
		}
	}()
}

// WaitForMirror blocks until one in-flight mirror attempt finishes or
// the context expires. Used by tests and graceful shutdown.
func (t *Tracker) WaitForMirror(ctx context.Context) error {
	select {
	case <-t.mirrorDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
