package lang

import (
	"errors"
	"testing"

	"golang.org/x/text/language"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr
}

func TestBuiltinEnglish(t *testing.T) {
	tr := newTranslator(t)
	if got := tr.Translate("hud.infohud.position", 12, 64, -4); got != "XYZ: 12 / 64 / -4" {
		t.Fatalf("position = %q", got)
	}
	if got := tr.Translate("hud.infohud.north"); got != "North" {
		t.Fatalf("north = %q", got)
	}
	if got := tr.Translate("hud.infohud.day", int64(2)); got != "Day 2" {
		t.Fatalf("day = %q", got)
	}
	if got := tr.Translate("hud.infohud.position", 1234567, 0, 0); got != "XYZ: 1234567 / 0 / 0" {
		t.Fatalf("large coordinates must not be grouped, got %q", got)
	}
}

func TestUnknownKeyRendersKey(t *testing.T) {
	tr := newTranslator(t)
	if got := tr.Translate("hud.infohud.missing", 1); got != "hud.infohud.missing" {
		t.Fatalf("got %q", got)
	}
}

func TestLanguagesListsLoaded(t *testing.T) {
	tr := newTranslator(t)
	if err := tr.Load("fr_fr", []byte("hud.infohud.north: Nord\n")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := tr.Languages()
	want := []language.Tag{language.MustParse("de-DE"), language.MustParse("en-US"), language.MustParse("fr-FR")}
	if len(got) != len(want) {
		t.Fatalf("Languages() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Languages() = %v, expected %v", got, want)
		}
	}
	got[0] = language.Japanese
	if tr.Languages()[0] == language.Japanese {
		t.Fatal("Languages must return a copy")
	}
}

func TestUseMatchesLoadedLanguage(t *testing.T) {
	tr := newTranslator(t)
	if got := tr.Use("de_de"); got != language.MustParse("de-DE") {
		t.Fatalf("Use(de_de) = %v", got)
	}
	if got := tr.Translate("hud.infohud.facing", tr.Translate("hud.infohud.north")); got != "Richtung: Norden" {
		t.Fatalf("facing = %q", got)
	}
	if got := tr.Use("ja_jp"); got != Fallback {
		t.Fatalf("Use(ja_jp) = %v, expected fallback", got)
	}
	if got := tr.Use("not a tag!"); got != Fallback {
		t.Fatalf("Use(garbage) = %v, expected fallback", got)
	}
}

func TestMissingKeyFallsBackToEnglish(t *testing.T) {
	tr := newTranslator(t)
	if err := tr.Load("fr_fr", []byte("hud.infohud.north: Nord\n")); err != nil {
		t.Fatalf("Load: %v", err)
	}
	tr.Use("fr_fr")
	if got := tr.Translate("hud.infohud.north"); got != "Nord" {
		t.Fatalf("north = %q", got)
	}
	if got := tr.Translate("hud.infohud.south"); got != "South" {
		t.Fatalf("south = %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	tr := newTranslator(t)
	if err := tr.Load("en_us", []byte("{}")); !errors.Is(err, ErrEmptyLanguage) {
		t.Fatalf("expected ErrEmptyLanguage, got %v", err)
	}
	if err := tr.Load("en_us", []byte("key: [unterminated")); err == nil {
		t.Fatal("expected yaml error")
	}
	if err := tr.Load("!!", []byte("a: b")); err == nil {
		t.Fatal("expected tag error")
	}
}

func TestFuncMatchesTranslate(t *testing.T) {
	tr := newTranslator(t)
	fn := tr.Func()
	if fn("hud.infohud.fps", 60) != tr.Translate("hud.infohud.fps", 60) {
		t.Fatal("Func and Translate disagree")
	}
}
