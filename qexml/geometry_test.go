package qexml

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/tsawler/espresso/units"
	"github.com/tsawler/espresso/xmldoc"
)

// parseRoot wraps a document body in the espresso root and parses it.
func parseRoot(t *testing.T, body string) *xmldoc.Element {
	t.Helper()
	doc, err := xmldoc.Parse(strings.NewReader("<espresso>" + body + "</espresso>"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc.Root
}

// cubicStructure is a single atom at the center of a cubic cell with
// side 10 Bohr.
const cubicStructure = `<output>
  <atomic_structure alat="10.0" nat="1">
    <atomic_positions>
      <atom name="H">5.0 5.0 5.0</atom>
    </atomic_positions>
    <cell>
      <a1>10.0 0.0 0.0</a1>
      <a2>0.0 10.0 0.0</a2>
      <a3>0.0 0.0 10.0</a3>
    </cell>
  </atomic_structure>
</output>`

func TestExtractStructureCubic(t *testing.T) {
	st, err := extractStructure(parseRoot(t, cubicStructure))
	if err != nil {
		t.Fatalf("extractStructure() error: %v", err)
	}

	if len(st.sites) != 1 {
		t.Fatalf("site count = %d, want 1", len(st.sites))
	}
	site := st.sites[0]
	if site.Label != "H" {
		t.Errorf("label = %q, want %q", site.Label, "H")
	}
	for i, c := range site.Position {
		if math.Abs(c-0.5) > 1e-12 {
			t.Errorf("fractional coordinate %d = %v, want 0.5", i, c)
		}
	}

	wantAlat := 10 * units.BohrToAngstrom
	if math.Abs(st.alat-wantAlat) > 1e-9*wantAlat {
		t.Errorf("alat = %v, want %v", st.alat, wantAlat)
	}
	for i := 0; i < 3; i++ {
		if got := st.lattice.Col(i)[i]; math.Abs(got-wantAlat) > 1e-9*wantAlat {
			t.Errorf("lattice column %d diagonal = %v, want %v", i, got, wantAlat)
		}
	}
}

func TestExtractStructureRoundTrip(t *testing.T) {
	// Triclinic cell with an off-center atom: converting the
	// fractional coordinates back through the output lattice must
	// reproduce the unit-converted Cartesian position.
	root := parseRoot(t, `<output>
  <atomic_structure alat="6.2" nat="1">
    <atomic_positions>
      <atom name="Fe">1.1 2.2 3.3</atom>
    </atomic_positions>
    <cell>
      <a1>6.2 0.1 0.0</a1>
      <a2>-3.1 5.4 0.2</a2>
      <a3>0.0 -0.3 9.8</a3>
    </cell>
  </atomic_structure>
</output>`)

	st, err := extractStructure(root)
	if err != nil {
		t.Fatalf("extractStructure() error: %v", err)
	}

	cart := st.lattice.MulVec(st.sites[0].Position)
	want := [3]float64{1.1, 2.2, 3.3}
	for i := range want {
		expected := want[i] * units.BohrToAngstrom
		if math.Abs(cart[i]-expected) > 1e-8*math.Max(1, math.Abs(expected)) {
			t.Errorf("reconstructed Cartesian[%d] = %v, want %v", i, cart[i], expected)
		}
	}
}

func TestExtractStructureErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{
			"missing atomic_structure",
			`<output/>`,
			ErrNotFound,
		},
		{
			"missing alat",
			`<output><atomic_structure nat="0"><atomic_positions/><cell>
			  <a1>1 0 0</a1><a2>0 1 0</a2><a3>0 0 1</a3></cell>
			</atomic_structure></output>`,
			ErrNotFound,
		},
		{
			"negative nat",
			`<output><atomic_structure alat="1" nat="-1"><atomic_positions/><cell>
			  <a1>1 0 0</a1><a2>0 1 0</a2><a3>0 0 1</a3></cell>
			</atomic_structure></output>`,
			ErrMalformed,
		},
		{
			"two-number position",
			`<output><atomic_structure alat="10" nat="1">
			  <atomic_positions><atom name="H">5.0 5.0</atom></atomic_positions>
			  <cell><a1>10 0 0</a1><a2>0 10 0</a2><a3>0 0 10</a3></cell>
			</atomic_structure></output>`,
			ErrMalformed,
		},
		{
			"unparsable position",
			`<output><atomic_structure alat="10" nat="1">
			  <atomic_positions><atom name="H">5.0 five 5.0</atom></atomic_positions>
			  <cell><a1>10 0 0</a1><a2>0 10 0</a2><a3>0 0 10</a3></cell>
			</atomic_structure></output>`,
			ErrMalformed,
		},
		{
			"atom count mismatch",
			`<output><atomic_structure alat="10" nat="2">
			  <atomic_positions><atom name="H">5 5 5</atom></atomic_positions>
			  <cell><a1>10 0 0</a1><a2>0 10 0</a2><a3>0 0 10</a3></cell>
			</atomic_structure></output>`,
			ErrMalformed,
		},
		{
			"missing atom name",
			`<output><atomic_structure alat="10" nat="1">
			  <atomic_positions><atom>5 5 5</atom></atomic_positions>
			  <cell><a1>10 0 0</a1><a2>0 10 0</a2><a3>0 0 10</a3></cell>
			</atomic_structure></output>`,
			ErrNotFound,
		},
		{
			"missing cell vector",
			`<output><atomic_structure alat="10" nat="1">
			  <atomic_positions><atom name="H">5 5 5</atom></atomic_positions>
			  <cell><a1>10 0 0</a1><a2>0 10 0</a2></cell>
			</atomic_structure></output>`,
			ErrNotFound,
		},
		{
			"singular lattice",
			`<output><atomic_structure alat="10" nat="1">
			  <atomic_positions><atom name="H">5 5 5</atom></atomic_positions>
			  <cell><a1>10 0 0</a1><a2>10 0 0</a2><a3>0 0 10</a3></cell>
			</atomic_structure></output>`,
			ErrInvariant,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := extractStructure(parseRoot(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("extractStructure() error = %v, want %v", err, tt.want)
			}
			if st != nil {
				t.Error("extractStructure() returned a partial result alongside the error")
			}
		})
	}
}

func TestExtractStructureZeroAtoms(t *testing.T) {
	root := parseRoot(t, `<output><atomic_structure alat="10" nat="0">
	  <atomic_positions/>
	  <cell><a1>10 0 0</a1><a2>0 10 0</a2><a3>0 0 10</a3></cell>
	</atomic_structure></output>`)

	st, err := extractStructure(root)
	if err != nil {
		t.Fatalf("extractStructure() error: %v", err)
	}
	if len(st.sites) != 0 {
		t.Errorf("site count = %d, want 0", len(st.sites))
	}
}
