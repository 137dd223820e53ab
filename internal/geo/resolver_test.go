package geo

import (
	"testing"

	"github.com/btoksoz/tatli-panel/internal/model"
)

func TestParseLocationURLAtSegment(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.google.com/maps/@41.0082,28.9784,15z", "41.0082,28.9784"},
		{"https://www.google.com/maps/place/Moda/@40.9795,29.0252,17z", "40.9795,29.0252"},
		{"https://www.google.com/maps/@-33.8688,151.2093,12z", "-33.8688,151.2093"},
	}
	for _, tc := range cases {
		got, ok := ParseLocationURL(tc.url)
		if !ok {
			t.Fatalf("%s: no match", tc.url)
		}
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestParseLocationURLQueryParam(t *testing.T) {
	got, ok := ParseLocationURL("https://maps.google.com/?q=41.0082,28.9784")
	if !ok || got != "41.0082,28.9784" {
		t.Fatalf("coordinate q: got %q ok=%v", got, ok)
	}

	// free-text place name comes back decoded and unchanged
	got, ok = ParseLocationURL("https://maps.google.com/?q=Kadikoy%20Moda")
	if !ok || got != "Kadikoy Moda" {
		t.Fatalf("free-text q: got %q ok=%v", got, ok)
	}
}

func TestParseLocationURLPinnedPlace(t *testing.T) {
	raw := "https://www.google.com/maps/place/Simit/data=!4m5!3m4!8m2!3d41.0351!4d28.9833"
	got, ok := ParseLocationURL(raw)
	if !ok || got != "41.0351,28.9833" {
		t.Fatalf("pinned place: got %q ok=%v", got, ok)
	}
}

func TestParseLocationURLPriority(t *testing.T) {
	// @ segment wins over q=
	raw := "https://www.google.com/maps/@41.0082,28.9784,15z?q=Elsewhere"
	got, ok := ParseLocationURL(raw)
	if !ok || got != "41.0082,28.9784" {
		t.Fatalf("priority: got %q ok=%v", got, ok)
	}
}

func TestParseLocationURLNoMatch(t *testing.T) {
	for _, raw := range []string{
		"",
		"https://maps.example.com/xyz",
		"http://a b.com/",
	} {
		if got, ok := ParseLocationURL(raw); ok {
			t.Fatalf("%q: expected no match, got %q", raw, got)
		}
	}
}

func TestResolveStopFallbackOrder(t *testing.T) {
	if _, ok := ResolveStop(nil); ok {
		t.Fatalf("nil customer should not resolve")
	}

	got, ok := ResolveStop(&model.Customer{MapURL: "https://maps.google.com/?q=Place", Address: "X", Name: "Y"})
	if !ok || got != "Place" {
		t.Fatalf("map link should win: got %q ok=%v", got, ok)
	}

	got, ok = ResolveStop(&model.Customer{Address: "X", Name: "Y"})
	if !ok || got != "X" {
		t.Fatalf("address fallback: got %q ok=%v", got, ok)
	}

	got, ok = ResolveStop(&model.Customer{Name: "Y"})
	if !ok || got != "Y" {
		t.Fatalf("name fallback: got %q ok=%v", got, ok)
	}
}

func TestResolveStopUnparsableMapURL(t *testing.T) {
	// a map link that parses to nothing falls through to address then name,
	// skipping the legacy coordinates
	c := &model.Customer{
		MapURL:  "https://maps.example.com/xyz",
		Address: "Moda Caddesi 5",
		Name:    "Ayse",
		Lat:     41.0,
		Lng:     28.9,
	}
	got, ok := ResolveStop(c)
	if !ok || got != "Moda Caddesi 5" {
		t.Fatalf("unparsable map link: got %q ok=%v", got, ok)
	}

	c.Address = ""
	got, ok = ResolveStop(c)
	if !ok || got != "Ayse" {
		t.Fatalf("unparsable map link without address: got %q ok=%v", got, ok)
	}
}

func TestResolveStopLegacyCoordinates(t *testing.T) {
	got, ok := ResolveStop(&model.Customer{Name: "Y", Lat: 41.0082, Lng: 28.9784})
	if !ok || got != "41.0082,28.9784" {
		t.Fatalf("legacy coordinates: got %q ok=%v", got, ok)
	}

	// zero coordinates are not a location
	got, ok = ResolveStop(&model.Customer{Name: "Y", Lat: 0, Lng: 28.9784})
	if !ok || got != "Y" {
		t.Fatalf("zero lat should fall through: got %q ok=%v", got, ok)
	}
}

func TestPointLookupURL(t *testing.T) {
	base := "https://www.google.com/maps/search/?api=1&query="

	got, ok := PointLookupURL(base, &model.Customer{MapURL: "https://maps.google.com/?q=Place"})
	if !ok || got != "https://maps.google.com/?q=Place" {
		t.Fatalf("stored link should come back verbatim: got %q", got)
	}

	got, ok = PointLookupURL(base, &model.Customer{Address: "Moda Caddesi 5"})
	if !ok || got != base+"Moda+Caddesi+5" {
		t.Fatalf("address lookup: got %q", got)
	}

	if _, ok := PointLookupURL(base, nil); ok {
		t.Fatalf("nil customer should not resolve")
	}
}
