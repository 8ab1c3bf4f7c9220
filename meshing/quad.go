package meshing

const (
	mask6  = (1 << 6) - 1
	mask8  = (1 << 8) - 1
	maskID = (1 << 26) - 1

	qShiftX = 0
	qShiftY = 6
	qShiftZ = 12
	qShiftW = 18
	qShiftH = 24
	qShiftA = 30
	qShiftI = 38
)

// Quad is a packed axis-aligned merged rectangle on one face, addressed by
// its lower-coordinate corner with integer size 1..LEN.
//
//	bit   0- 5: x
//	bit   6-11: y
//	bit  12-17: z
//	bit  18-23: w  (extent along the first tangent axis)
//	bit  24-29: h  (extent along the second tangent axis)
//	bit  30-37: ao (reserved, always zero — see spec non-goals)
//	bit  38-63: id (material / shader identifier, 26 bits)
//
// The 64 bits split into two little-endian uint32 words (Word1, Word2);
// that split is part of the public ABI for callers uploading to GPU
// buffers (spec.md §6).
type Quad uint64

// NewQuad packs a quad. Fields are masked to their allotted width before
// shifting; out-of-range inputs are a caller bug and silently truncate
// rather than panic (spec.md §7).
func NewQuad(x, y, z, w, h, id uint32) Quad {
	return Quad(
		(uint64(id) & maskID << qShiftI) |
			(uint64(x) & mask6 << qShiftX) |
			(uint64(y) & mask6 << qShiftY) |
			(uint64(z) & mask6 << qShiftZ) |
			(uint64(w) & mask6 << qShiftW) |
			(uint64(h) & mask6 << qShiftH),
	)
}

// X returns the quad's origin x coordinate.
func (q Quad) X() uint32 { return uint32(q>>qShiftX) & mask6 }

// Y returns the quad's origin y coordinate.
func (q Quad) Y() uint32 { return uint32(q>>qShiftY) & mask6 }

// Z returns the quad's origin z coordinate.
func (q Quad) Z() uint32 { return uint32(q>>qShiftZ) & mask6 }

// W returns the quad's extent along its first tangent axis.
func (q Quad) W() uint32 { return uint32(q>>qShiftW) & mask6 }

// H returns the quad's extent along its second tangent axis.
func (q Quad) H() uint32 { return uint32(q>>qShiftH) & mask6 }

// AO returns the reserved ambient-occlusion bits. Always zero: the mesher
// never populates them (spec.md §1 non-goals).
func (q Quad) AO() uint32 { return uint32(q>>qShiftA) & mask8 }

// ID returns the material/shader identifier.
func (q Quad) ID() uint32 { return uint32(q>>qShiftI) & maskID }

// XYZ returns the origin as a triple.
func (q Quad) XYZ() [3]uint32 { return [3]uint32{q.X(), q.Y(), q.Z()} }

// Word1 and Word2 are the two little-endian uint32 words that make up the
// on-disk/GPU-upload representation of the quad.
func (q Quad) Word1() uint32 { return uint32(q) }
func (q Quad) Word2() uint32 { return uint32(q >> 32) }

// packedXYZ packs an (x, y, z) triple into the same bit positions Quad uses
// for its origin, for use in the corner-offset arithmetic in Vertices.
func packedXYZ(x, y, z uint32) uint32 {
	return (z << qShiftZ) | (y << qShiftY) | (x << qShiftX)
}

func (q Quad) packedXYZ() uint32 {
	return uint32(q) & ((1 << 18) - 1)
}

// Vertices expands the quad into the four corners of its rectangle on the
// given face, in counter-clockwise winding order as seen from outside the
// volume. This is the one documented seam between the mesher and a
// triangulator: the mesher itself never calls this (spec.md §1, "the
// Vertex packing used after meshing ... is deliberately out of scope").
func (q Quad) Vertices(face Face) [4]Vertex {
	w, h := q.W(), q.H()
	xyz := q.packedXYZ()

	switch face {
	case NegX:
		return [4]Vertex{
			vertexFromXYZUV(xyz, h, w),
			vertexFromXYZUV(xyz+packedXYZ(0, 0, h), 0, w),
			vertexFromXYZUV(xyz+packedXYZ(0, w, 0), h, 0),
			vertexFromXYZUV(xyz+packedXYZ(0, w, h), 0, 0),
		}
	case NegY:
		return [4]Vertex{
			vertexFromXYZUV(xyz-packedXYZ(w, 0, 0)+packedXYZ(0, 0, h), w, h),
			vertexFromXYZUV(xyz-packedXYZ(w, 0, 0), w, 0),
			vertexFromXYZUV(xyz+packedXYZ(0, 0, h), 0, h),
			vertexFromXYZUV(xyz, 0, 0),
		}
	case NegZ:
		return [4]Vertex{
			vertexFromXYZUV(xyz, w, h),
			vertexFromXYZUV(xyz+packedXYZ(0, h, 0), w, 0),
			vertexFromXYZUV(xyz+packedXYZ(w, 0, 0), 0, h),
			vertexFromXYZUV(xyz+packedXYZ(w, h, 0), 0, 0),
		}
	case PosX:
		return [4]Vertex{
			vertexFromXYZUV(xyz, 0, 0),
			vertexFromXYZUV(xyz+packedXYZ(0, 0, h), h, 0),
			vertexFromXYZUV(xyz-packedXYZ(0, w, 0), 0, w),
			vertexFromXYZUV(xyz+packedXYZ(0, 0, h)-packedXYZ(0, w, 0), h, w),
		}
	case PosY:
		return [4]Vertex{
			vertexFromXYZUV(xyz+packedXYZ(w, 0, h), w, h),
			vertexFromXYZUV(xyz+packedXYZ(w, 0, 0), w, 0),
			vertexFromXYZUV(xyz+packedXYZ(0, 0, h), 0, h),
			vertexFromXYZUV(xyz, 0, 0),
		}
	case PosZ:
		return [4]Vertex{
			vertexFromXYZUV(xyz-packedXYZ(w, 0, 0)+packedXYZ(0, h, 0), 0, 0),
			vertexFromXYZUV(xyz-packedXYZ(w, 0, 0), 0, h),
			vertexFromXYZUV(xyz+packedXYZ(0, h, 0), w, 0),
			vertexFromXYZUV(xyz, w, h),
		}
	default:
		panic("meshing: invalid face")
	}
}

const (
	vShiftU = 18
	vShiftV = 24
)

// Vertex is a single mesh corner: position plus the (u, v) texture
// coordinate within its quad, all packed into one uint32.
//
//	bit  0- 5: x
//	bit  6-11: y
//	bit 12-17: z
//	bit 18-23: u
//	bit 24-29: v
type Vertex uint32

// NewVertex packs a vertex from its raw fields.
func NewVertex(x, y, z, u, v uint32) Vertex {
	return Vertex(
		(x&mask6)<<qShiftX | (y&mask6)<<qShiftY | (z&mask6)<<qShiftZ |
			(u&mask6)<<vShiftU | (v&mask6)<<vShiftV,
	)
}

func vertexFromXYZUV(xyz, u, v uint32) Vertex {
	return Vertex((v&mask6)<<vShiftV | (u&mask6)<<vShiftU | (xyz & ((1 << 18) - 1)))
}

func (v Vertex) X() uint32 { return uint32(v>>qShiftX) & mask6 }
func (v Vertex) Y() uint32 { return uint32(v>>qShiftY) & mask6 }
func (v Vertex) Z() uint32 { return uint32(v>>qShiftZ) & mask6 }
func (v Vertex) U() uint32 { return uint32(v>>vShiftU) & mask6 }
func (v Vertex) V() uint32 { return uint32(v>>vShiftV) & mask6 }

// XYZ returns the vertex's position.
func (v Vertex) XYZ() [3]uint32 { return [3]uint32{v.X(), v.Y(), v.Z()} }
