package models

import "testing"

func TestDecode_NullLikeSpellings(t *testing.T) {
	for _, s := range []string{"N/A", "n/a", "NA", "None", "none", ""} {
		if v := Decode(s); !v.Missing() {
			t.Errorf("Decode(%q).Missing() = false, want true", s)
		}
	}
}

func TestDecode_PresentText(t *testing.T) {
	v := Decode("Mahapola Scholarship")

	if v.Missing() {
		t.Fatal("Decode returned missing for real text")
	}

	if v.Text() != "Mahapola Scholarship" {
		t.Errorf("Text() = %q", v.Text())
	}

	if v.Encode() != "Mahapola Scholarship" {
		t.Errorf("Encode() = %q", v.Encode())
	}
}

func TestValue_EncodeMissing(t *testing.T) {
	if got := None().Encode(); got != Sentinel {
		t.Errorf("None().Encode() = %q, want %q", got, Sentinel)
	}
}

func TestSome_EmptyIsMissing(t *testing.T) {
	if !Some("").Missing() {
		t.Error("Some(\"\") should be missing; present values are never empty")
	}
}

func TestDecode_NAVariantCaseSensitive(t *testing.T) {
	// Only the exact null-like spellings fold to missing; "na" the
	// word does not.
	if Decode("na").Missing() {
		t.Error("Decode(\"na\") should be present")
	}
}
