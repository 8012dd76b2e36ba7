package locale

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Language
	}{
		{"en", English},
		{"HI", Hindi},
		{" Ta ", Tamil},
		{"sa", Sanskrit},
		{"", English},
		{"fr", English},
		{"zz", English},
		{"english", English},
	}

	for _, tt := range tests {
		if got := Normalize(tt.raw); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestSupported(t *testing.T) {
	langs := Supported()
	if len(langs) != 15 {
		t.Fatalf("expected 15 supported languages, got %d", len(langs))
	}
	if langs[0] != Default {
		t.Errorf("expected default language first, got %q", langs[0])
	}
	for _, l := range langs {
		if !IsSupported(l) {
			t.Errorf("IsSupported(%q) = false", l)
		}
	}

	// Callers must not be able to mutate the allow-list.
	langs[0] = "xx"
	if Supported()[0] != Default {
		t.Error("Supported() exposed internal slice")
	}
}

func TestResolveText(t *testing.T) {
	name := Text{English: "Physics", Hindi: "भौतिकी", Tamil: ""}

	tests := []struct {
		name string
		text Text
		lang Language
		want string
	}{
		{"requested present", name, Hindi, "भौतिकी"},
		{"requested absent", name, Bengali, "Physics"},
		{"requested empty", name, Tamil, "Physics"},
		{"default requested", name, English, "Physics"},
		{"no default", Text{Hindi: "भौतिकी"}, Tamil, ""},
		{"nil map", nil, Hindi, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveText(tt.text, tt.lang); got != tt.want {
				t.Errorf("ResolveText(%v, %q) = %q, want %q", tt.text, tt.lang, got, tt.want)
			}
		})
	}
}

func TestResolveOptions(t *testing.T) {
	opts := Options{English: {"A", "B"}, Hindi: {"अ", "ब"}, Tamil: {}}

	tests := []struct {
		name string
		opts Options
		lang Language
		want []string
	}{
		{"requested present", opts, Hindi, []string{"अ", "ब"}},
		{"requested absent", opts, Urdu, []string{"A", "B"}},
		{"requested empty", opts, Tamil, []string{"A", "B"}},
		{"no default", Options{Hindi: {"अ"}}, Tamil, []string{}},
		{"nil map", nil, English, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveOptions(tt.opts, tt.lang)
			if got == nil {
				t.Fatal("ResolveOptions returned nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveOptions(%v, %q) = %v, want %v", tt.opts, tt.lang, got, tt.want)
			}
		})
	}
}

func TestTextScan(t *testing.T) {
	var txt Text
	if err := txt.Scan([]byte(`{"en":"Physics","hi":"भौतिकी"}`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if txt[English] != "Physics" || txt[Hindi] != "भौतिकी" {
		t.Errorf("unexpected scan result: %v", txt)
	}

	var empty Text
	if err := empty.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if empty == nil {
		t.Error("Scan(nil) left a nil map")
	}

	if err := txt.Scan(42); err == nil {
		t.Error("expected error scanning int")
	}
}

func TestOptionsScan(t *testing.T) {
	var opts Options
	if err := opts.Scan(`{"en":["A","B"]}`); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if !reflect.DeepEqual(opts[English], []string{"A", "B"}) {
		t.Errorf("unexpected scan result: %v", opts)
	}

	if err := opts.Scan([]byte(`not json`)); err == nil {
		t.Error("expected error scanning invalid JSON")
	}
}

func TestTextLanguages(t *testing.T) {
	txt := Text{Hindi: "x", English: "y", Tamil: "", "fr": "z"}
	got := txt.Languages()
	want := []Language{English, Hindi}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Languages() = %v, want %v", got, want)
	}

	if got := (Text{"fr": "Art"}).Languages(); len(got) != 0 {
		t.Errorf("unsupported-only text reported languages %v", got)
	}
}

func TestDropUnsupported(t *testing.T) {
	txt := Text{English: "Art", "fr": "Art", "de": "Kunst"}
	dropped := txt.DropUnsupported()
	if !reflect.DeepEqual(dropped, []Language{"de", "fr"}) {
		t.Errorf("dropped = %v", dropped)
	}
	if !reflect.DeepEqual(txt, Text{English: "Art"}) {
		t.Errorf("text after drop = %v", txt)
	}

	opts := Options{Hindi: {"अ"}, "xx": {"?"}}
	if dropped := opts.DropUnsupported(); !reflect.DeepEqual(dropped, []Language{"xx"}) {
		t.Errorf("dropped = %v", dropped)
	}
	if _, ok := opts["xx"]; ok {
		t.Error("unsupported options key kept")
	}

	var empty Text
	if dropped := empty.DropUnsupported(); dropped != nil {
		t.Errorf("nil text dropped %v", dropped)
	}
}
