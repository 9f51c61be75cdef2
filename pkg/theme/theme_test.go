package theme

import (
	"strings"
	"testing"
)

func TestBuiltinsAreValid(t *testing.T) {
	names := Names()
	if len(names) < 5 {
		t.Fatalf("Names() = %v, want the built-in themes", names)
	}
	for _, name := range names {
		th, ok := Get(name)
		if !ok {
			t.Errorf("Get(%q) not found", name)
			continue
		}
		if err := thValidateTheme(th); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	if _, ok := Get("Nord"); !ok {
		t.Error("Get(Nord) not found")
	}
	if _, ok := Get("solarized"); ok {
		t.Error("Get(solarized) found an unregistered theme")
	}
	if Default().Name != "default" {
		t.Errorf("Default().Name = %q", Default().Name)
	}
}

func TestTOMLRoundTrip(t *testing.T) {
	in := Default()
	in.Name = "custom"
	data, err := SaveToTOML(in)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[colors]") {
		t.Errorf("encoded theme has no colors table:\n%s", data)
	}
	out, err := LoadFromTOML(data)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}

func TestLoadFromTOMLValidates(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"no name", "[colors]\n", `"name"`},
		{"missing color", "name = \"x\"\n[colors]\nforeground = \"#ffffff\"\n", `"dim"`},
		{"bad hex", strings.Replace(mustTOML(t), "#7c3aed", "purple", 1), "invalid hex"},
		{"bad toml", "name = \n", "parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromTOML([]byte(tt.src))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	th := Default()
	th.Name = "Paper"
	if err := Register(th); err != nil {
		t.Fatal(err)
	}
	if _, ok := Get("paper"); !ok {
		t.Error("registered theme not found")
	}
	if err := Register(Theme{Name: "broken"}); err == nil {
		t.Error("expected an error for an incomplete theme")
	}
}

func mustTOML(t *testing.T) string {
	t.Helper()
	data, err := SaveToTOML(Default())
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
