package featured

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftsAreIsolatedPerOwner(t *testing.T) {
	d := NewDrafts(3)

	d.Apply("alice", AssignDish{Dish: dish("a"), Slot: 1})
	d.Apply("bob", AssignDish{Dish: dish("b"), Slot: 2})

	assert.Equal(t, 1, d.Snapshot("alice").SlotOf("a"))
	assert.Equal(t, 0, d.Snapshot("alice").SlotOf("b"))
	assert.Equal(t, 2, d.Snapshot("bob").SlotOf("b"))
}

func TestSnapshotIsACopy(t *testing.T) {
	d := NewDrafts(3)
	d.Apply("alice", AssignDish{Dish: dish("a"), Slot: 1})

	snap := d.Snapshot("alice")
	snap.Assignments[0].Slot = 3

	assert.Equal(t, 1, d.Snapshot("alice").SlotOf("a"))
}

func TestTryBeginBlocksSecondCaller(t *testing.T) {
	d := NewDrafts(3)

	release, ok := d.TryBegin("alice")
	require.True(t, ok)

	_, ok = d.TryBegin("alice")
	assert.False(t, ok)

	other, ok := d.TryBegin("bob")
	require.True(t, ok)
	other()

	release()
	again, ok := d.TryBegin("alice")
	require.True(t, ok)
	again()
}

func TestForgetResetsDraft(t *testing.T) {
	d := NewDrafts(3)
	d.Apply("alice", AssignDish{Dish: dish("a"), Slot: 1})

	d.Forget("alice")
	assert.True(t, d.Snapshot("alice").IsEmpty())
}
