package docs

import "testing"

func Test_generateDiagram(t *testing.T) {
	if err := NewDesignDiagram().SaveAs("design.svg"); err != nil {
		t.Fatal(err)
	}
	if err := NewDrawSequence().SaveAs("draw_sequence.svg"); err != nil {
		t.Fatal(err)
	}
	if err := NewPalette().SaveAs("palette.svg"); err != nil {
		t.Fatal(err)
	}
}
