package meshing

// BITS is the number of bits needed to index one axis of a chunk (0..LEN-1).
const BITS = 6

// LEN is the side length of a chunk in voxels.
const LEN = 1 << BITS

// SQUARE is the number of (y, z) columns in a chunk.
const SQUARE = LEN * LEN

// CUBE is the total number of voxels in a chunk.
const CUBE = LEN * LEN * LEN

const (
	shiftX3D = 0 * BITS
	shiftY3D = 1 * BITS
	shiftZ3D = 2 * BITS

	strideX3D = 1 << shiftX3D
	strideY3D = 1 << shiftY3D
	strideZ3D = 1 << shiftZ3D

	shiftY2D = 0 * BITS
	shiftZ2D = 1 * BITS

	strideY2D = 1 << shiftY2D
	strideZ2D = 1 << shiftZ2D

	forwardStrideX = strideX3D
	forwardStrideY = strideY3D
	upwardStrideX  = strideX3D
)

// padMask has the shell bits (x=0 and x=LEN-1) set; the concrete path
// clears them with &^ under its caller-guaranteed empty shell convention
// (spec.md §4.1). The generic padded path does not use it.
const padMask uint64 = (1 << (LEN - 1)) | 1

// linearize3D computes the flat index of voxel (x, y, z) in a CUBE-sized
// buffer. Strides are 1, LEN, LEN² along x, y, z.
func linearize3D(x, y, z int) int {
	return (x << shiftX3D) | (y << shiftY3D) | (z << shiftZ3D)
}

// linearize2D computes the flat index of column (y, z) in a SQUARE-sized
// mask array.
func linearize2D(y, z int) int {
	return (y << shiftY2D) | (z << shiftZ2D)
}

// linearize2Dto3D moves from a column index back to the voxel at x within
// that column.
func linearize2Dto3D(x, i2 int) int {
	return (x << shiftX3D) | (i2 << shiftY3D)
}

// offset3D is the signed index delta to the neighbour across the given face.
func offset3D(face Face) int {
	switch face {
	case PosX:
		return strideX3D
	case NegX:
		return -strideX3D
	case PosY:
		return strideY3D
	case NegY:
		return -strideY3D
	case PosZ:
		return strideZ3D
	case NegZ:
		return -strideZ3D
	default:
		panic("meshing: invalid face")
	}
}

// adjOpaque returns the opaque word of the neighbouring column/shift on the
// given face. For ±X the neighbour is a bit-shift of the same word (the
// neighbour column is identical, only x moves); for ±Y/±Z it's the opaque
// word of the adjacent row.
func adjOpaque(face Face, padOpaque uint64, opaqueMasks *[SQUARE]uint64, i2 int) uint64 {
	switch face {
	case PosX:
		return padOpaque >> 1
	case NegX:
		return padOpaque << 1
	case PosY:
		return opaqueMasks[i2+strideY2D]
	case NegY:
		return opaqueMasks[i2-strideY2D]
	case PosZ:
		return opaqueMasks[i2+strideZ2D]
	case NegZ:
		return opaqueMasks[i2-strideZ2D]
	default:
		panic("meshing: invalid face")
	}
}
