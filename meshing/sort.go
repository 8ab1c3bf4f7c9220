package meshing

import "sort"

// sortQuadsByX sorts in place by ascending x. mergeX's outer loops walk z
// then y, so its natural emission order isn't monotone in x and needs this
// explicit sort (spec.md §4.5, §5).
func sortQuadsByX(q []Quad) {
	sort.Slice(q, func(i, j int) bool { return q[i].X() < q[j].X() })
}

// sortQuadsByY sorts in place by ascending y. mergeY's outer loop walks z
// (the forward-merge axis), with y only the inner loop, so — like mergeX —
// its natural emission order isn't monotone in y and needs this explicit
// sort. mergeZ needs no equivalent sort: z is its true outer loop, so
// emission is already monotone in z by construction.
func sortQuadsByY(q []Quad) {
	sort.Slice(q, func(i, j int) bool { return q[i].Y() < q[j].Y() })
}
