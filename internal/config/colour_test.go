package config

import "testing"

func TestParseColourTransparent(t *testing.T) {
	for _, v := range []string{"-1", "transparent", "Transparent"} {
		c, err := ParseColour("k", v)
		if err != nil || !c.Transparent {
			t.Fatalf("ParseColour(%q) = %+v, %v", v, c, err)
		}
	}
}

func TestParseColourNamed(t *testing.T) {
	c, err := ParseColour("k", "red")
	if err != nil {
		t.Fatalf("ParseColour(red) error: %v", err)
	}
	if c.Transparent || c.R == 0 {
		t.Fatalf("ParseColour(red) = %+v", c)
	}
}

func TestParseColourTriple(t *testing.T) {
	c, err := ParseColour("k", "10,20,30")
	if err != nil {
		t.Fatalf("ParseColour(triple) error: %v", err)
	}
	if c.R != 10 || c.G != 20 || c.B != 30 {
		t.Fatalf("ParseColour(triple) = %+v", c)
	}
}

func TestParseColourInvalid(t *testing.T) {
	if _, err := ParseColour("k", "notacolour"); err == nil {
		t.Fatal("expected error for unrecognized colour")
	}
	if _, err := ParseColour("k", "300,0,0"); err == nil {
		t.Fatal("expected error for out-of-range component")
	}
	if _, err := ParseColour("k", "1,2"); err == nil {
		t.Fatal("expected error for wrong component count")
	}
}
