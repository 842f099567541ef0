package rotation

import (
	"math"
	"testing"
)

func TestAxisName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "X"}, {1, "Y"}, {2, "Z"}, {3, "W"}, {4, "V"}, {5, "U"},
		{6, "A6"}, {7, "A7"}, {10, "A10"},
	}
	for _, tt := range tests {
		if got := AxisName(tt.index); got != tt.want {
			t.Errorf("AxisName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestPlanesCount(t *testing.T) {
	for dim := 2; dim <= 9; dim++ {
		planes := Planes(dim)
		want := dim * (dim - 1) / 2
		if len(planes) != want {
			t.Errorf("Planes(%d) returned %d planes, want %d", dim, len(planes), want)
		}

		// Names are unique, pairs are ordered lexicographically.
		seen := make(map[string]bool)
		for k, p := range planes {
			if p.I >= p.J {
				t.Errorf("Planes(%d)[%d]: I=%d not < J=%d", dim, k, p.I, p.J)
			}
			if seen[p.Name] {
				t.Errorf("Planes(%d): duplicate name %q", dim, p.Name)
			}
			seen[p.Name] = true
			if k > 0 {
				prev := planes[k-1]
				if prev.I > p.I || (prev.I == p.I && prev.J >= p.J) {
					t.Errorf("Planes(%d): order violated at %d: %v before %v", dim, k, prev, p)
				}
			}
		}
	}
}

func TestPlaneNames4D(t *testing.T) {
	planes := Planes(4)
	want := []string{"XY", "XZ", "XW", "YZ", "YW", "ZW"}
	if len(planes) != len(want) {
		t.Fatalf("Planes(4) returned %d planes, want %d", len(planes), len(want))
	}
	for i, name := range want {
		if planes[i].Name != name {
			t.Errorf("Planes(4)[%d].Name = %q, want %q", i, planes[i].Name, name)
		}
	}
}

func TestParsePlane(t *testing.T) {
	tests := []struct {
		name  string
		wantI int
		wantJ int
	}{
		{"XY", 0, 1},
		{"XZ", 0, 2},
		{"YZ", 1, 2},
		{"XW", 0, 3},
		{"ZW", 2, 3},
		{"WX", 0, 3}, // reversed input normalizes to I < J
		{"A6A7", 6, 7},
		{"XA6", 0, 6},
	}
	for _, tt := range tests {
		p, err := ParsePlane(tt.name)
		if err != nil {
			t.Errorf("ParsePlane(%q) error: %v", tt.name, err)
			continue
		}
		if p.I != tt.wantI || p.J != tt.wantJ {
			t.Errorf("ParsePlane(%q) = (%d, %d), want (%d, %d)", tt.name, p.I, p.J, tt.wantI, tt.wantJ)
		}
	}

	for _, bad := range []string{"", "X", "XX", "XYZ", "QQ", "A2A3"} {
		if _, err := ParsePlane(bad); err == nil {
			t.Errorf("ParsePlane(%q) = nil error, want failure", bad)
		}
	}
}

func TestGroups4D(t *testing.T) {
	groups := Groups(4)
	if len(groups) != 2 {
		t.Fatalf("Groups(4) returned %d groups, want 2", len(groups))
	}

	threeD := groups[0]
	if threeD.Label != "3D Rotations" {
		t.Errorf("first group label = %q", threeD.Label)
	}
	if !threeD.Expanded {
		t.Error("3D group should be expanded by default")
	}
	if threeD.Color != ColorBlue {
		t.Errorf("3D group color = %q, want blue", threeD.Color)
	}
	assertPlaneNames(t, threeD.Planes, []string{"XY", "XZ", "YZ"})

	fourth := groups[1]
	if fourth.Label != "4th Dimension (W)" {
		t.Errorf("fourth group label = %q", fourth.Label)
	}
	if fourth.Expanded {
		t.Error("higher-dimension groups should be collapsed by default")
	}
	if fourth.Color != ColorPurple {
		t.Errorf("W group color = %q, want purple", fourth.Color)
	}
	assertPlaneNames(t, fourth.Planes, []string{"XW", "YW", "ZW"})
}

func TestGroupColors(t *testing.T) {
	groups := Groups(8)
	wantColors := []string{ColorBlue, ColorPurple, ColorOrange, ColorGreen, ColorPink, ColorPink}
	if len(groups) != len(wantColors) {
		t.Fatalf("Groups(8) returned %d groups, want %d", len(groups), len(wantColors))
	}
	for i, want := range wantColors {
		if groups[i].Color != want {
			t.Errorf("Groups(8)[%d].Color = %q, want %q", i, groups[i].Color, want)
		}
	}

	// Every plane appears in exactly one group.
	total := 0
	for _, g := range groups {
		total += len(g.Planes)
	}
	if want := 8 * 7 / 2; total != want {
		t.Errorf("planes across groups = %d, want %d", total, want)
	}
}

func assertPlaneNames(t *testing.T, planes []Plane, want []string) {
	t.Helper()
	if len(planes) != len(want) {
		t.Fatalf("got %d planes, want %d", len(planes), len(want))
	}
	for i, name := range want {
		if planes[i].Name != name {
			t.Errorf("plane[%d] = %q, want %q", i, planes[i].Name, name)
		}
	}
}

func TestComposeIdentity(t *testing.T) {
	m := Compose(4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if math.Abs(m.At(i, j)-want) > 1e-9 {
				t.Errorf("Compose(4, nil)[%d][%d] = %g, want %g", i, j, m.At(i, j), want)
			}
		}
	}
}

func TestComposeSingle(t *testing.T) {
	m := Compose(3, []Angle{{Plane: "XY", Value: math.Pi / 2}})
	// cos(90°)=0, sin(90°)=1: top-left 2×2 block is [0 −1; 1 0].
	if math.Abs(m.At(0, 0)) > 1e-9 || math.Abs(m.At(0, 1)+1) > 1e-9 ||
		math.Abs(m.At(1, 0)-1) > 1e-9 || math.Abs(m.At(1, 1)) > 1e-9 {
		t.Errorf("unexpected XY rotation block: %v", m.Data[:6])
	}
}

func TestComposeSkipsInvalid(t *testing.T) {
	// "ZW" needs dimension 4; in 3D it must be skipped, leaving only "XY".
	withInvalid := Compose(3, []Angle{{Plane: "ZW", Value: 1}, {Plane: "XY", Value: 0.5}})
	only := Compose(3, []Angle{{Plane: "XY", Value: 0.5}})
	for i := range only.Data {
		if math.Abs(withInvalid.Data[i]-only.Data[i]) > 1e-9 {
			t.Fatalf("invalid plane affected composition at %d: %g vs %g", i, withInvalid.Data[i], only.Data[i])
		}
	}

	// Garbage names are skipped too.
	garbage := Compose(3, []Angle{{Plane: "??", Value: 2}})
	id := Compose(3, nil)
	for i := range id.Data {
		if garbage.Data[i] != id.Data[i] {
			t.Fatal("garbage plane name should leave identity untouched")
		}
	}
}

func TestComposeOrderMatters(t *testing.T) {
	a := []Angle{{Plane: "XY", Value: 0.7}, {Plane: "XZ", Value: 1.1}}
	b := []Angle{{Plane: "XZ", Value: 1.1}, {Plane: "XY", Value: 0.7}}

	ma := Compose(3, a)
	mb := Compose(3, b)

	same := true
	for i := range ma.Data {
		if math.Abs(ma.Data[i]-mb.Data[i]) > 1e-9 {
			same = false
			break
		}
	}
	if same {
		t.Error("rotation composition should be order-dependent")
	}
}
