package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilephys/internal/core"
)

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     core.Rect
		expected bool
	}{
		{"overlapping", core.NewRect(0, 0, 10, 10), core.NewRect(5, 5, 10, 10), true},
		{"touching right edge", core.NewRect(0, 0, 10, 10), core.NewRect(10, 0, 10, 10), false},
		{"touching bottom edge", core.NewRect(0, 0, 10, 10), core.NewRect(0, 10, 10, 10), false},
		{"touching corner", core.NewRect(0, 0, 10, 10), core.NewRect(10, 10, 10, 10), false},
		{"separated", core.NewRect(0, 0, 10, 10), core.NewRect(30, 30, 10, 10), false},
		{"identical", core.NewRect(3, 3, 4, 4), core.NewRect(3, 3, 4, 4), true},
		{"zero width outside", core.NewRect(10, 0, 0, 10), core.NewRect(0, 0, 10, 10), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Overlaps(tc.a, tc.b))
			assert.Equal(t, Overlaps(tc.a, tc.b), Overlaps(tc.b, tc.a), "overlap must be symmetric")
		})
	}
}

func TestMoveAndCollide(t *testing.T) {
	testCases := []struct {
		name     string
		start    core.Rect
		tiles    []core.Rect
		velX     int
		velY     int
		expected core.Rect
	}{
		{
			name:     "no tiles applies full velocity",
			start:    core.NewRect(0, 0, 10, 10),
			velX:     5,
			velY:     3,
			expected: core.NewRect(5, 3, 10, 10),
		},
		{
			name:     "moving right stops flush against tile",
			start:    core.NewRect(0, 0, 10, 10),
			tiles:    []core.Rect{core.NewRect(20, 0, 10, 10)},
			velX:     15,
			expected: core.NewRect(10, 0, 10, 10),
		},
		{
			name:     "moving left stops flush against tile",
			start:    core.NewRect(50, 0, 10, 10),
			tiles:    []core.Rect{core.NewRect(20, 0, 10, 10)},
			velX:     -25,
			expected: core.NewRect(30, 0, 10, 10),
		},
		{
			name:     "falling lands on tile",
			start:    core.NewRect(0, 0, 10, 10),
			tiles:    []core.Rect{core.NewRect(0, 20, 40, 10)},
			velY:     15,
			expected: core.NewRect(0, 10, 10, 10),
		},
		{
			name:     "rising stops under tile",
			start:    core.NewRect(0, 30, 10, 10),
			tiles:    []core.Rect{core.NewRect(0, 0, 40, 20)},
			velY:     -15,
			expected: core.NewRect(0, 20, 10, 10),
		},
		{
			name:     "move ending exactly at contact is not corrected",
			start:    core.NewRect(0, 0, 10, 10),
			tiles:    []core.Rect{core.NewRect(20, 0, 10, 10)},
			velX:     10,
			expected: core.NewRect(10, 0, 10, 10),
		},
		{
			name:     "zero velocity ignores existing overlap",
			start:    core.NewRect(5, 5, 10, 10),
			tiles:    []core.Rect{core.NewRect(0, 0, 10, 10)},
			expected: core.NewRect(5, 5, 10, 10),
		},
		{
			name:     "discrete step passes through thin tile",
			start:    core.NewRect(0, 0, 10, 10),
			tiles:    []core.Rect{core.NewRect(20, 0, 10, 10)},
			velX:     100,
			expected: core.NewRect(100, 0, 10, 10),
		},
		{
			name:     "x resolves before y at a corner",
			start:    core.NewRect(0, 0, 10, 10),
			tiles:    []core.Rect{core.NewRect(12, 12, 10, 10)},
			velX:     5,
			velY:     5,
			expected: core.NewRect(5, 2, 10, 10),
		},
		{
			name:     "sliding along floor while moving sideways",
			start:    core.NewRect(0, 10, 10, 10),
			tiles:    []core.Rect{core.NewRect(-50, 20, 200, 10)},
			velX:     7,
			velY:     4,
			expected: core.NewRect(7, 10, 10, 10),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.start
			MoveAndCollide(&r, tc.tiles, tc.velX, tc.velY)
			assert.Equal(t, tc.expected, r)
			assert.Equal(t, tc.expected, Moved(tc.start, tc.tiles, tc.velX, tc.velY))
		})
	}
}

func TestMoveAndCollideLastOverlappingTileWins(t *testing.T) {
	behind := core.NewRect(12, 0, 5, 10)
	ahead := core.NewRect(25, 0, 10, 10)

	r := core.NewRect(0, 0, 10, 10)
	MoveAndCollide(&r, []core.Rect{ahead, behind}, 20, 0)
	assert.Equal(t, 2, r.X, "correction against the later tile should overwrite the earlier one")

	r = core.NewRect(0, 0, 10, 10)
	MoveAndCollide(&r, []core.Rect{behind, ahead}, 20, 0)
	assert.Equal(t, 15, r.X, "a tile checked before the correction is not revisited")
}

func TestMoveAndCollideNilIsNoop(t *testing.T) {
	require.NotPanics(t, func() {
		MoveAndCollide(nil, []core.Rect{core.NewRect(0, 0, 1, 1)}, 5, 5)
	})
}

func TestMoveAndCollideDoesNotMutateTiles(t *testing.T) {
	tiles := []core.Rect{core.NewRect(20, 0, 10, 10), core.NewRect(0, 20, 10, 10)}
	snapshot := append([]core.Rect(nil), tiles...)

	r := core.NewRect(0, 0, 10, 10)
	MoveAndCollide(&r, tiles, 15, 15)

	assert.Equal(t, snapshot, tiles)
}

func TestAdjacencyQueries(t *testing.T) {
	r := core.NewRect(10, 10, 10, 10)

	testCases := []struct {
		name    string
		tile    core.Rect
		floor   bool
		ceiling bool
		wall    bool
	}{
		{"tile directly below", core.NewRect(0, 20, 40, 10), true, false, false},
		{"tile below with horizontal gap", core.NewRect(20, 20, 10, 10), false, false, false},
		{"tile below with vertical gap", core.NewRect(0, 21, 40, 10), false, false, false},
		{"tile directly above", core.NewRect(0, 0, 40, 10), false, true, false},
		{"tile above with vertical gap", core.NewRect(0, -1, 40, 10), false, false, false},
		{"tile touching right side", core.NewRect(20, 10, 10, 10), false, false, true},
		{"tile touching left side", core.NewRect(0, 10, 10, 10), false, false, true},
		{"tile one unit to the right", core.NewRect(21, 10, 10, 10), false, false, false},
		{"tile at diagonal corner", core.NewRect(20, 20, 10, 10), false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tiles := []core.Rect{tc.tile}
			assert.Equal(t, tc.floor, IsOnFloor(r, tiles), "floor")
			assert.Equal(t, tc.ceiling, IsOnCeiling(r, tiles), "ceiling")
			assert.Equal(t, tc.wall, IsOnWall(r, tiles), "wall")
			assert.Equal(t, Contact{Floor: tc.floor, Ceiling: tc.ceiling, Wall: tc.wall}, Contacts(r, tiles))
		})
	}
}

func TestAdjacencyQueriesEmptyTiles(t *testing.T) {
	r := core.NewRect(0, 0, 10, 10)
	assert.False(t, IsOnFloor(r, nil))
	assert.False(t, IsOnCeiling(r, nil))
	assert.False(t, IsOnWall(r, nil))
}

func TestAdjacencyQueriesAreIdempotent(t *testing.T) {
	r := core.NewRect(0, 0, 10, 10)
	tiles := []core.Rect{core.NewRect(0, 10, 10, 10), core.NewRect(10, 0, 10, 10)}

	first := Contacts(r, tiles)
	second := Contacts(r, tiles)
	assert.Equal(t, first, second)
	assert.Equal(t, core.NewRect(0, 0, 10, 10), r)
}

func TestProbes(t *testing.T) {
	r := core.NewRect(4, 8, 16, 32)
	assert.Equal(t, core.NewRect(4, 40, 16, 1), FloorProbe(r))
	assert.Equal(t, core.NewRect(4, 7, 16, 1), CeilingProbe(r))
	assert.Equal(t, core.NewRect(3, 8, 18, 32), WallProbe(r))
}

func TestWalkIntoWall(t *testing.T) {
	r := core.NewRect(0, 0, 64, 64)
	tiles := []core.Rect{core.NewRect(128, 0, 64, 64)}

	expectedX := []int{16, 32, 48, 64, 64, 64, 64, 64, 64, 64}
	for i, want := range expectedX {
		MoveAndCollide(&r, tiles, 16, 0)
		require.Equal(t, want, r.X, "step %d", i+1)
		assert.Equal(t, 0, r.Y)
		assert.Equal(t, r.X == 64, IsOnWall(r, tiles), "step %d", i+1)
	}
}
