package domain

import "testing"

func TestNewBotTag(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "known tag", input: "music", want: "music"},
		{name: "uppercase is normalized", input: "Fun", want: "fun"},
		{name: "nsfw is a valid bot tag", input: "nsfw", want: "nsfw"},
		{name: "server-only tag rejected", input: "gaming", wantErr: true},
		{name: "unknown tag rejected", input: "banana", wantErr: true},
		{name: "empty rejected", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag, err := NewBotTag(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewBotTag(%q) expected error, got %q", tt.input, tag.Name())
				}
				return
			}
			if err != nil {
				t.Fatalf("NewBotTag(%q) unexpected error: %v", tt.input, err)
			}
			if tag.Name() != tt.want {
				t.Errorf("NewBotTag(%q) = %q, want %q", tt.input, tag.Name(), tt.want)
			}
		})
	}
}

func TestNewServerTag(t *testing.T) {
	// The upstream typo "programing" is part of the vocabulary alongside the
	// correct spelling.
	for _, name := range []string{"programming", "programing", "nsfw", "politics"} {
		if _, err := NewServerTag(name); err != nil {
			t.Errorf("NewServerTag(%q) unexpected error: %v", name, err)
		}
	}
	if _, err := NewServerTag("music"); err == nil {
		t.Error("NewServerTag(\"music\") expected error, bot-only tag")
	}
}

func TestNewTemplateTag(t *testing.T) {
	for _, name := range []string{"community", "gaming", "anime", "art", "nsfw"} {
		if _, err := NewTemplateTag(name); err != nil {
			t.Errorf("NewTemplateTag(%q) unexpected error: %v", name, err)
		}
	}
	if _, err := NewTemplateTag("hangout"); err == nil {
		t.Error("NewTemplateTag(\"hangout\") expected error, server-only tag")
	}
}

func TestTagEquality(t *testing.T) {
	a, _ := NewBotTag("fun")
	b, _ := NewBotTag("FUN")
	if a != b {
		t.Error("tags with the same normalized name should compare equal")
	}
}
