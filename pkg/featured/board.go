package featured

import (
	"fmt"
	"restaurant-backend/domain"
	"sort"
)

// Assignment puts one dish in one display slot.
type Assignment struct {
	Slot int
	Dish domain.FeaturedDish
}

// State is the in-memory featured selection of one admin. It is a value:
// Reduce never mutates the state it is given.
//
// Invariants: at most one assignment per slot, at most one slot per dish,
// every slot in 1..SlotCount, Assignments sorted by slot, Pending is 0 or an
// empty slot.
type State struct {
	SlotCount   int
	Assignments []Assignment
	Pending     int
}

func NewState(slotCount int) State {
	return State{SlotCount: slotCount, Assignments: []Assignment{}}
}

type (
	Event interface{ isEvent() }

	// Loaded replaces the whole selection with what storage returned.
	Loaded struct{ Assignments []Assignment }
	// SelectSlot marks an empty slot as the target of the next pick.
	SelectSlot struct{ Slot int }
	// PickDish assigns a dish to the pending slot.
	PickDish struct{ Dish domain.FeaturedDish }
	// AssignDish assigns a dish to an explicit slot.
	AssignDish struct {
		Dish domain.FeaturedDish
		Slot int
	}
	RemoveSlot struct{ Slot int }
	Cleared    struct{}
)

func (Loaded) isEvent()     {}
func (SelectSlot) isEvent() {}
func (PickDish) isEvent()   {}
func (AssignDish) isEvent() {}
func (RemoveSlot) isEvent() {}
func (Cleared) isEvent()    {}

// Effect is a notice for whoever drives the board. Err is set when the event
// was rejected and the state did not change.
type Effect struct {
	Notice domain.Notice
	Err    error
}

func info(format string, args ...any) Effect {
	return Effect{Notice: domain.NewNotice(domain.NoticeInfo, fmt.Sprintf(format, args...))}
}

func success(format string, args ...any) Effect {
	return Effect{Notice: domain.NewNotice(domain.NoticeSuccess, fmt.Sprintf(format, args...))}
}

func rejected(err error) Effect {
	return Effect{Notice: domain.NewNotice(domain.NoticeError, err.Error()), Err: err}
}

// hint rejects an event the user simply did out of order.
func hint(err error) Effect {
	return Effect{Notice: domain.NewNotice(domain.NoticeInfo, err.Error()), Err: err}
}

// Reduce applies one event and returns the next state plus the notices it
// produced. It performs no I/O.
func Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Loaded:
		next := NewState(s.SlotCount)
		for _, a := range e.Assignments {
			if !s.validSlot(a.Slot) {
				continue
			}
			next = next.assign(a.Dish, a.Slot)
		}
		return next, nil

	case SelectSlot:
		if !s.validSlot(e.Slot) {
			return s, []Effect{rejected(domain.ErrInvalidSlot)}
		}
		if _, filled := s.At(e.Slot); filled {
			return s, nil
		}
		next := s.clone()
		next.Pending = e.Slot
		return next, []Effect{info("Slot %d selected. Click a dish to add it.", e.Slot)}

	case PickDish:
		if s.Pending == 0 {
			return s, []Effect{hint(domain.ErrNoSlotSelected)}
		}
		slot := s.Pending
		return s.assign(e.Dish, slot), []Effect{success("%s added to slot %d", e.Dish.Name, slot)}

	case AssignDish:
		if !s.validSlot(e.Slot) {
			return s, []Effect{rejected(domain.ErrInvalidSlot)}
		}
		return s.assign(e.Dish, e.Slot), []Effect{success("%s added to slot %d", e.Dish.Name, e.Slot)}

	case RemoveSlot:
		if !s.validSlot(e.Slot) {
			return s, []Effect{rejected(domain.ErrInvalidSlot)}
		}
		next := s.clone()
		next.Assignments = without(next.Assignments, func(a Assignment) bool { return a.Slot == e.Slot })
		return next, []Effect{success("%s", domain.MessageSuccessRemoveSlot)}

	case Cleared:
		return NewState(s.SlotCount), nil
	}
	return s, nil
}

// At returns the dish in slot n, if any.
func (s State) At(slot int) (domain.FeaturedDish, bool) {
	for _, a := range s.Assignments {
		if a.Slot == slot {
			return a.Dish, true
		}
	}
	return domain.FeaturedDish{}, false
}

// SlotOf returns the slot holding the dish, or 0.
func (s State) SlotOf(dishID string) int {
	for _, a := range s.Assignments {
		if a.Dish.ID == dishID {
			return a.Slot
		}
	}
	return 0
}

func (s State) IsEmpty() bool {
	return len(s.Assignments) == 0
}

func (s State) validSlot(slot int) bool {
	return slot >= 1 && slot <= s.SlotCount
}

// assign drops any previous slot of the dish and any previous dish of the
// slot, then places the dish. Pending selection is cleared.
func (s State) assign(dish domain.FeaturedDish, slot int) State {
	next := s.clone()
	next.Assignments = without(next.Assignments, func(a Assignment) bool {
		return a.Dish.ID == dish.ID || a.Slot == slot
	})
	next.Assignments = append(next.Assignments, Assignment{Slot: slot, Dish: dish})
	sort.Slice(next.Assignments, func(i, j int) bool {
		return next.Assignments[i].Slot < next.Assignments[j].Slot
	})
	next.Pending = 0
	return next
}

func (s State) clone() State {
	out := s
	out.Assignments = append([]Assignment(nil), s.Assignments...)
	return out
}

func without(in []Assignment, drop func(Assignment) bool) []Assignment {
	out := make([]Assignment, 0, len(in))
	for _, a := range in {
		if !drop(a) {
			out = append(out, a)
		}
	}
	return out
}

// Slots renders exactly SlotCount views, each filled or empty.
func Slots(s State) []domain.SlotView {
	views := make([]domain.SlotView, 0, s.SlotCount)
	for n := 1; n <= s.SlotCount; n++ {
		view := domain.SlotView{Slot: n, State: domain.SlotEmpty, Pending: s.Pending == n}
		if dish, ok := s.At(n); ok {
			d := dish
			view.State = domain.SlotFilled
			view.Dish = &d
		}
		views = append(views, view)
	}
	return views
}
