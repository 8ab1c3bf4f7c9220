package meshing

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// idView is a dense View[uint16] backed by a map, standing in for a
// caller's own chunk storage.
type idView struct {
	cells map[[3]int]uint16
}

func (v idView) Get(x, y, z int) uint16 {
	return v.cells[[3]int{x, y, z}]
}

// idContext treats 0 as empty, any differing id as occluding, and merges
// same-id cells.
type idContext struct{}

func (idContext) IntoInner(v uint16) (uint16, bool) {
	if v == 0 {
		return 0, false
	}
	return v, true
}

func (idContext) IsVisible(inner, adj uint16, adjOK bool) bool {
	if !adjOK {
		return true
	}
	return adj == 0
}

func (idContext) CanMerge(a, b uint16) bool { return a == b }

func (idContext) ShaderID(v uint16, face Face) uint32 { return uint32(v) }

func TestGenericMesherSingleVoxel(t *testing.T) {
	view := idView{cells: map[[3]int]uint16{{10, 10, 10}: 9}}
	gm := NewGenericMesher[uint16, uint16, idContext](view, nil, idContext{})

	mesh := gm.Mesh()
	require.Equal(t, 6, mesh.Len())
	for _, face := range All {
		quads := mesh.Face(face)
		require.Len(t, quads, 1)
		require.EqualValues(t, 9, quads[0].ID())
	}
}

func TestGenericMesherMergesAdjacentRun(t *testing.T) {
	cells := map[[3]int]uint16{}
	for x := 10; x < 15; x++ {
		cells[[3]int{x, 10, 10}] = 1
	}
	view := idView{cells: cells}
	gm := NewGenericMesher[uint16, uint16, idContext](view, nil, idContext{})

	mesh := gm.Mesh()
	top := mesh.Face(PosY)
	require.Len(t, top, 1)
	require.EqualValues(t, 5, top[0].W()*top[0].H())
}

// boundaryAdj reports every cross-chunk neighbour as absent, the documented
// behaviour for an unloaded adjacent chunk.
type boundaryAdj struct{}

func (boundaryAdj) GetAdjacent(offset [3]int, face Face) (uint16, bool) {
	return 0, false
}

func TestGenericMesherOutputIsMonotoneByPrimaryCoordinate(t *testing.T) {
	cells := map[[3]int]uint16{}
	for x := 5; x < 20; x += 2 {
		for y := 5; y < 20; y += 3 {
			for z := 5; z < 20; z += 4 {
				cells[[3]int{x, y, z}] = uint16(1 + (x+y+z)%3)
			}
		}
	}
	view := idView{cells: cells}
	gm := NewGenericMesher[uint16, uint16, idContext](view, nil, idContext{})

	mesh := gm.Mesh()
	for _, face := range All {
		quads := mesh.Face(face)
		require.True(t, isMonotoneByPrimary(face, quads), "face %v quads not monotone in primary coordinate", face)
	}
}

func TestGenericMesherTreatsMissingNeighbourChunkAsNotVisible(t *testing.T) {
	cells := map[[3]int]uint16{{0, 10, 10}: 1}
	view := idView{cells: cells}
	gm := NewGenericMesher[uint16, uint16, idContext](view, boundaryAdj{}, idContext{})

	mesh := gm.Mesh()
	for _, q := range mesh.Face(NegX) {
		require.NotEqualValues(t, 0, q.X(), "boundary face must not be visible against an unloaded neighbour")
	}
}
