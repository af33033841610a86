package featured

import "sync"

// draft is one admin's working selection. busy is held for the duration of a
// save or clear so the same draft cannot be persisted twice concurrently.
type draft struct {
	mu    sync.Mutex
	busy  sync.Mutex
	state State
}

type Drafts struct {
	slotCount int

	mu     sync.Mutex
	drafts map[string]*draft
}

func NewDrafts(slotCount int) *Drafts {
	return &Drafts{slotCount: slotCount, drafts: map[string]*draft{}}
}

func (d *Drafts) get(owner string) *draft {
	d.mu.Lock()
	defer d.mu.Unlock()

	dr, ok := d.drafts[owner]
	if !ok {
		dr = &draft{state: NewState(d.slotCount)}
		d.drafts[owner] = dr
	}
	return dr
}

// Apply runs one event against the owner's draft and stores the result.
func (d *Drafts) Apply(owner string, ev Event) (State, []Effect) {
	dr := d.get(owner)
	dr.mu.Lock()
	defer dr.mu.Unlock()

	next, effects := Reduce(dr.state, ev)
	dr.state = next
	return next, effects
}

func (d *Drafts) Snapshot(owner string) State {
	dr := d.get(owner)
	dr.mu.Lock()
	defer dr.mu.Unlock()
	return dr.state.clone()
}

// TryBegin marks the owner's draft busy. It returns false when another save or
// clear is still running; otherwise the caller must call the returned release.
func (d *Drafts) TryBegin(owner string) (release func(), ok bool) {
	dr := d.get(owner)
	if !dr.busy.TryLock() {
		return nil, false
	}
	return dr.busy.Unlock, true
}

// Forget drops the owner's draft, e.g. on sign-out.
func (d *Drafts) Forget(owner string) {
	d.mu.Lock()
	delete(d.drafts, owner)
	d.mu.Unlock()
}

func (d *Drafts) SlotCount() int {
	return d.slotCount
}
