// Command meshdemo builds a sphere-shaped voxel chunk, meshes it with both
// the fast and slow paths, and reports the resulting quad counts and
// timings. It is the Go counterpart of the sphere example shipped alongside
// the library this package is modeled on: same sphere, same single
// material id, minus the windowing and rendering layer.
package main

import (
	"flag"
	"fmt"
	"time"

	"greedymesh/internal/profiling"
	"greedymesh/meshing"
)

func main() {
	radius := flag.Int("radius", 16, "sphere radius in voxels")
	material := flag.Int("material", 1, "voxel id assigned to every solid cell")
	topN := flag.Int("top", 5, "number of profiling entries to print")
	flag.Parse()

	voxels := sphereVoxels(uint32(*radius), meshing.Voxel(*material))
	transparents := meshing.NewTransparents()

	profiling.Reset()

	opaque := meshing.ComputeOpaqueMasks(voxels, transparents)
	transparent := meshing.ComputeTransparentMasks(voxels, transparents)

	fastMesher := meshing.NewMesher()
	fast := fastMesher.Mesh(voxels, opaque, transparent)

	slowMesher := meshing.NewMesher()
	slow := slowMesher.SlowMesh(voxels, transparents)

	fmt.Printf("sphere radius=%d material=%d\n", *radius, *material)
	fmt.Printf("fast mesh: %d quads\n", fast.Len())
	fmt.Printf("slow mesh: %d quads\n", slow.Len())
	if fast.Len() != slow.Len() {
		fmt.Println("warning: fast and slow quad counts differ")
	}
	fmt.Printf("profiling: %s\n", profiling.TopN(*topN))

	var changes meshing.MeshChanges
	edits := 0
	start := time.Now()
	for x := uint32(1); x < meshing.LEN-1 && edits < 50; x++ {
		idx := linearize3D(int(x), meshing.LEN/2, meshing.LEN/2)
		if voxels[idx] != 0 {
			voxels[idx] = 0
			changes.Push(x, meshing.LEN/2, meshing.LEN/2)
			edits++
		}
	}
	if !changes.IsEmpty() {
		opaque = meshing.ComputeOpaqueMasks(voxels, transparents)
		transparent = meshing.ComputeTransparentMasks(voxels, transparents)
		fastMesher.Remesh(voxels, opaque, transparent, fast, changes)
		fmt.Printf("remesh of %d edits: %d quads, %s\n", edits, fast.Len(), time.Since(start))
	}
}

// sphereVoxels fills a chunk with material wherever the cell lies inside a
// sphere centered on the chunk, mirroring the reference example's
// inside-sphere test.
func sphereVoxels(radius uint32, material meshing.Voxel) *[meshing.CUBE]meshing.Voxel {
	voxels := new([meshing.CUBE]meshing.Voxel)
	origin := [3]int{meshing.LEN / 2, meshing.LEN / 2, meshing.LEN / 2}

	for x := 0; x < meshing.LEN; x++ {
		for y := 0; y < meshing.LEN; y++ {
			for z := 0; z < meshing.LEN; z++ {
				dx := x - origin[0]
				dy := y - origin[1]
				dz := z - origin[2]
				distSq := dx*dx + dy*dy + dz*dz
				if distSq <= int(radius*radius) {
					voxels[linearize3D(x, y, z)] = material
				}
			}
		}
	}
	return voxels
}

func linearize3D(x, y, z int) int {
	return x | y<<meshing.BITS | z<<(2*meshing.BITS)
}
