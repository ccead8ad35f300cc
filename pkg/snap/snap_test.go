package snap

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceSketch/pkg/component"
	"github.com/OpenTraceLab/OpenTraceSketch/pkg/geom"
)

func TestAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{44.9, 0},
		{45.1, 90},
		{134, 90},
		{136, 180},
		{269, 270},
		{316, 0},
		{359.9, 0},
		{360, 0},
	}
	for _, tt := range tests {
		if got := Angle(tt.in); got != tt.want {
			t.Errorf("Angle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 50},
		{53, 50},
		{74, 50},
		{76, 100},
		{120, 100},
		{125, 100},
		{175, 150},
		{500, 200},
	}
	for _, tt := range tests {
		if got := Length(tt.in); got != tt.want {
			t.Errorf("Length(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEndpoint(t *testing.T) {
	start := geom.Pt(400, 300)
	tests := []struct {
		angle, dist float64
		want        geom.Point
	}{
		{0, 53, geom.Pt(450, 300)},
		{90, 53, geom.Pt(400, 350)},
		{180, 120, geom.Pt(300, 300)},
		{270, 190, geom.Pt(400, 100)},
		{45, 100, start},
	}
	for _, tt := range tests {
		if got := Endpoint(start, tt.angle, tt.dist); got != tt.want {
			t.Errorf("Endpoint(%v, %v, %v) = %v, want %v", start, tt.angle, tt.dist, got, tt.want)
		}
	}
}

func nodeComponents(t *testing.T) []component.Component {
	t.Helper()
	var comps []component.Component
	for i, x := range []float64{0, 100, 200} {
		c, err := component.Build(component.Params{
			Kind:   component.LabelGround,
			Anchor: geom.Pt(x, 0),
			Angle:  90,
			Seed:   int64(i + 1),
		})
		if err != nil {
			t.Fatalf("Failed to build component: %v", err)
		}
		c.ID = component.ID(i + 1)
		comps = append(comps, c)
	}
	return comps
}

func TestNearestNode(t *testing.T) {
	comps := nodeComponents(t)
	query := geom.Pt(105, 5)

	got, ok := NearestNode(query, comps, component.NoID, 20)
	if !ok {
		t.Fatal("Expected a node within threshold 20")
	}
	if got != geom.Pt(100, 0) {
		t.Errorf("Expected node (100,0), got %v", got)
	}

	// (105,5) is sqrt(50) ~ 7.07 from (100,0)
	if got, ok := NearestNode(query, comps, component.NoID, 10); !ok || got != geom.Pt(100, 0) {
		t.Errorf("Expected node (100,0) within threshold 10, got %v (ok=%v)", got, ok)
	}
	if got, ok := NearestNode(query, comps, component.NoID, 7); ok {
		t.Errorf("Expected no node within threshold 7, got %v", got)
	}
}

func TestNearestNodeStrictThreshold(t *testing.T) {
	comps := nodeComponents(t)
	// exactly 10 from (100,0)
	query := geom.Pt(106, 8)
	if got, ok := NearestNode(query, comps, component.NoID, 10); ok {
		t.Errorf("Expected a node at exactly the threshold to be rejected, got %v", got)
	}
	if _, ok := NearestNode(query, comps, component.NoID, 10.001); !ok {
		t.Error("Expected a node just inside the threshold")
	}
}

func TestNearestNodeExclude(t *testing.T) {
	comps := nodeComponents(t)
	got, ok := NearestNode(geom.Pt(105, 5), comps, comps[1].ID, 200)
	if !ok {
		t.Fatal("Expected a node with a wide threshold")
	}
	if got == geom.Pt(100, 0) {
		t.Error("Excluded component's node was returned")
	}
	if got != geom.Pt(0, 0) && got != geom.Pt(200, 0) {
		t.Errorf("Unexpected node %v", got)
	}
}

func TestNearestNodeResistorTerminals(t *testing.T) {
	r, err := component.Build(component.Params{
		Kind:  component.ResistorRectangle,
		Node1: geom.Pt(100, 100),
		Node2: geom.Pt(200, 100),
		Seed:  7,
	})
	if err != nil {
		t.Fatalf("Failed to build resistor: %v", err)
	}
	r.ID = 1
	comps := []component.Component{r}

	if got, ok := NearestNode(geom.Pt(190, 104), comps, component.NoID, 50); !ok || got != geom.Pt(200, 100) {
		t.Errorf("Expected node2 (200,100), got %v (ok=%v)", got, ok)
	}
	if _, ok := NearestNode(geom.Pt(150, 100), comps, component.NoID, 50); ok {
		t.Error("Expected the resistor midpoint to be out of reach of both terminals")
	}
}
