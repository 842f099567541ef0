package faces

import (
	"sort"

	"github.com/mdimension/mdim/pkg/geom"
	"github.com/mdimension/mdim/pkg/object"
)

// independenceEpsilon is the residual norm below which a vector counts as
// dependent on the basis built so far.
const independenceEpsilon = 1e-9

// cycleFaces runs the bounded cycle search: 3-cycles become triangles,
// chord-free coplanar 4-cycles become quads. The search length is capped at
// 4 to stay inside the frame budget regardless of dimension.
func cycleFaces(g *object.Geometry) []Face {
	n := len(g.Vertices)
	if n < 3 {
		return nil
	}

	adj := adjacency(n, g.Edges)
	var faces []Face
	faces = append(faces, triangles(g, adj)...)
	faces = append(faces, quads(g, adj)...)
	sortFaces(faces)
	return faces
}

// adjacency builds sorted neighbor lists, dropping self-loops and duplicates.
func adjacency(n int, edges []object.Edge) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v || u < 0 || v < 0 || u >= n || v >= n {
			continue
		}
		if !contains(adj[u], v) {
			adj[u] = append(adj[u], v)
			adj[v] = append(adj[v], u)
		}
	}
	for _, neighbors := range adj {
		sort.Ints(neighbors)
	}
	return adj
}

func contains(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func connected(adj [][]int, u, v int) bool {
	i := sort.SearchInts(adj[u], v)
	return i < len(adj[u]) && adj[u][i] == v
}

// triangles finds all 3-cycles, enforcing v1 < v2 < v3 during the search so
// each triangle appears once. Winding is oriented outward from the centroid
// using the first three coordinates.
func triangles(g *object.Geometry, adj [][]int) []Face {
	var faces []Face
	for v1 := range adj {
		neighbors := adj[v1]
		for i, v2 := range neighbors {
			if v2 <= v1 {
				continue
			}
			for _, v3 := range neighbors[i+1:] {
				if v3 <= v2 || !connected(adj, v2, v3) {
					continue
				}
				if outward(g.Vertices[v1], g.Vertices[v2], g.Vertices[v3]) {
					faces = append(faces, Face{v1, v2, v3})
				} else {
					faces = append(faces, Face{v1, v3, v2})
				}
			}
		}
	}
	return faces
}

// quads finds chord-free 4-cycles v1−v2−v3−v4 whose vertices are coplanar.
// v1 is forced to be the cycle minimum, which both dedupes and bounds the
// search.
func quads(g *object.Geometry, adj [][]int) []Face {
	var faces []Face
	seen := make(map[[4]int]bool)

	for v1 := range adj {
		neighbors := adj[v1]
		for i, v2 := range neighbors {
			if v2 <= v1 {
				continue
			}
			for _, v4 := range neighbors[i+1:] {
				if v4 <= v1 || connected(adj, v2, v4) {
					continue
				}
				// Common neighbors of v2 and v4 close the cycle.
				for _, v3 := range adj[v2] {
					if v3 <= v1 || v3 == v4 || !connected(adj, v4, v3) {
						continue
					}
					if connected(adj, v1, v3) {
						continue // chord, two triangles already cover it
					}
					key := canonicalQuad(v1, v2, v3, v4)
					if seen[key] {
						continue
					}
					if !coplanar(g.Vertices[v1], g.Vertices[v2], g.Vertices[v3], g.Vertices[v4]) {
						continue
					}
					if centralSection(g.Vertices[v1], g.Vertices[v2], g.Vertices[v3], g.Vertices[v4]) {
						continue
					}
					seen[key] = true
					faces = append(faces, Face{v1, v2, v3, v4})
				}
			}
		}
	}
	return faces
}

func canonicalQuad(a, b, c, d int) [4]int {
	q := [4]int{a, b, c, d}
	sort.Ints(q[:])
	return q
}

// centralSection filters 4-cycles whose centroid sits at the origin. Those
// are equatorial cross-sections (opposite vertex pairs through the center,
// common in cross-polytopes and root systems), not boundary faces.
func centralSection(p0, p1, p2, p3 geom.Vector) bool {
	sumSq := 0.0
	for i := range p0 {
		c := (p0[i] + p1[i] + p2[i] + p3[i]) / 4
		sumSq += c * c
	}
	return sumSq < 1e-12
}

// coplanar checks that the difference vectors from the first vertex span at
// most two dimensions, via Gram-Schmidt with a fixed independence epsilon.
func coplanar(p0, p1, p2, p3 geom.Vector) bool {
	return rank([]geom.Vector{
		p1.Sub(p0),
		p2.Sub(p0),
		p3.Sub(p0),
	}) <= 2
}

// rank counts linearly independent vectors by projecting each candidate
// against the orthonormal basis accumulated so far.
func rank(vectors []geom.Vector) int {
	var basis []geom.Vector
	for _, v := range vectors {
		residual := v.Clone()
		for _, b := range basis {
			residual = residual.Sub(b.ScaledBy(residual.Dot(b)))
		}
		if norm := residual.Magnitude(); norm > independenceEpsilon {
			basis = append(basis, residual.ScaledBy(1/norm))
		}
	}
	return len(basis)
}

// outward reports whether the triangle's 3D-projected normal points away
// from the origin, the centroid of every generated object.
func outward(p0, p1, p2 geom.Vector) bool {
	a := first3(p0)
	b := first3(p1)
	c := first3(p2)

	u := [3]float64{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	v := [3]float64{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	normal := [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
	center := [3]float64{
		(a[0] + b[0] + c[0]) / 3,
		(a[1] + b[1] + c[1]) / 3,
		(a[2] + b[2] + c[2]) / 3,
	}
	return normal[0]*center[0]+normal[1]*center[1]+normal[2]*center[2] >= 0
}

func first3(v geom.Vector) [3]float64 {
	var out [3]float64
	for i := 0; i < 3 && i < len(v); i++ {
		out[i] = v[i]
	}
	return out
}
