package services

import (
	"context"
	"errors"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/pkg/composables"
	"github.com/planora/planora/pkg/types"
)

// recordingBus collects published events instead of dispatching them.
type recordingBus struct {
	events []interface{}
}

func (b *recordingBus) Publish(args ...interface{}) { b.events = append(b.events, args...) }
func (b *recordingBus) Subscribe(handler interface{})   {}
func (b *recordingBus) Unsubscribe(handler interface{}) {}
func (b *recordingBus) Clear()                          {}
func (b *recordingBus) SubscribersCount() int           { return 0 }

func (b *recordingBus) eventsOf(match func(interface{}) bool) []interface{} {
	var out []interface{}
	for _, e := range b.events {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

type memProjectRepo struct {
	projects      map[uuid.UUID]project.Project
	updateTypeErr error
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: make(map[uuid.UUID]project.Project)}
}

func (r *memProjectRepo) Create(_ context.Context, p *project.Project) (uuid.UUID, error) {
	id := uuid.New()
	stored := *p
	stored.ID = id
	stored.RegisteredAt = time.Now()
	r.projects[id] = stored
	return id, nil
}

func (r *memProjectRepo) GetByID(_ context.Context, id uuid.UUID) (*project.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, project.ErrNotFound
	}
	return &p, nil
}

func (r *memProjectRepo) UpdateType(_ context.Context, id uuid.UUID, t project.Type) error {
	if r.updateTypeErr != nil {
		return r.updateTypeErr
	}
	p, ok := r.projects[id]
	if !ok {
		return project.ErrNotFound
	}
	p.Type = t
	r.projects[id] = p
	return nil
}

func (r *memProjectRepo) seed(p project.Project) uuid.UUID {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Type == "" {
		p.Type = project.TypeInProgress
	}
	r.projects[p.ID] = p
	return p.ID
}

type memWorkItemRepo struct {
	items map[uuid.UUID]workitem.WorkItem
	seq   []uuid.UUID

	createCalls  int
	failCreateAt int
	createErr    error
	updateErr    error
	countErr     error
}

func newMemWorkItemRepo() *memWorkItemRepo {
	return &memWorkItemRepo{items: make(map[uuid.UUID]workitem.WorkItem)}
}

func (r *memWorkItemRepo) Create(_ context.Context, item *workitem.WorkItem) (uuid.UUID, error) {
	r.createCalls++
	if r.failCreateAt != 0 && r.createCalls >= r.failCreateAt {
		if r.createErr != nil {
			return uuid.Nil, r.createErr
		}
		return uuid.Nil, errors.New("create failed")
	}
	id := uuid.New()
	stored := *item
	stored.ID = id
	stored.RegisteredAt = time.Now()
	r.items[id] = stored
	r.seq = append(r.seq, id)
	return id, nil
}

func (r *memWorkItemRepo) GetByID(_ context.Context, id uuid.UUID) (*workitem.WorkItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, workitem.ErrNotFound
	}
	return &item, nil
}

func (r *memWorkItemRepo) GetByProjectID(_ context.Context, projectID uuid.UUID) ([]workitem.WorkItem, error) {
	var out []workitem.WorkItem
	for _, id := range r.seq {
		item, ok := r.items[id]
		if ok && item.ProjectID == projectID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (r *memWorkItemRepo) Update(_ context.Context, item *workitem.WorkItem) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.items[item.ID]; !ok {
		return workitem.ErrNotFound
	}
	stored := *item
	r.items[item.ID] = stored
	return nil
}

func (r *memWorkItemRepo) UpdateStructure(_ context.Context, projectID uuid.UUID, d workitem.StructureDirective) (int64, error) {
	item, ok := r.items[d.ID]
	if !ok || item.ProjectID != projectID {
		return 0, nil
	}
	item.ParentID = d.ParentID
	item.Order = d.Order
	r.items[d.ID] = item
	return 1, nil
}

func (r *memWorkItemRepo) Delete(_ context.Context, projectID, id uuid.UUID) error {
	item, ok := r.items[id]
	if !ok || item.ProjectID != projectID {
		return workitem.ErrNotFound
	}
	delete(r.items, id)
	for i, sid := range r.seq {
		if sid == id {
			r.seq = append(r.seq[:i], r.seq[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memWorkItemRepo) CountByProject(_ context.Context, projectID uuid.UUID) (workitem.ProjectCounts, error) {
	if r.countErr != nil {
		return workitem.ProjectCounts{}, r.countErr
	}
	var counts workitem.ProjectCounts
	for _, item := range r.items {
		if item.ProjectID != projectID {
			continue
		}
		counts.Total++
		if item.Completed() {
			counts.Done++
		}
	}
	return counts, nil
}

func (r *memWorkItemRepo) seed(item workitem.WorkItem) uuid.UUID {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	r.seq = append(r.seq, item.ID)
	return item.ID
}

type memSnapshot struct {
	items map[uuid.UUID]workitem.WorkItem
	seq   []uuid.UUID
}

func (r *memWorkItemRepo) snapshot() memSnapshot {
	items := make(map[uuid.UUID]workitem.WorkItem, len(r.items))
	for k, v := range r.items {
		items[k] = v
	}
	return memSnapshot{items: items, seq: append([]uuid.UUID(nil), r.seq...)}
}

func (r *memWorkItemRepo) restore(s memSnapshot) {
	r.items = s.items
	r.seq = s.seq
}

// passthroughTx replaces the pool-backed transaction wrapper for tests that
// have no database behind the context.
func passthroughTx(t *testing.T) {
	t.Helper()
	old := inTx
	inTx = func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}
	t.Cleanup(func() { inTx = old })
}

// rollbackTx emulates transactional semantics over the in-memory item repo:
// when the wrapped function fails, every write inside it is undone.
func rollbackTx(t *testing.T, items *memWorkItemRepo) {
	t.Helper()
	old := inTx
	inTx = func(ctx context.Context, fn func(context.Context) error) error {
		snap := items.snapshot()
		if err := fn(ctx); err != nil {
			items.restore(snap)
			return err
		}
		return nil
	}
	t.Cleanup(func() { inTx = old })
}

func actorContext(actor types.Actor) context.Context {
	return composables.WithActor(context.Background(), actor)
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
