package intent_test

import (
	"reflect"
	"testing"

	"unibot/internal/intent"
)

func TestDetector_Detect(t *testing.T) {
	d := intent.NewDetector(intent.DefaultTable())

	t.Run("empty message returns nil", func(t *testing.T) {
		if got := d.Detect(""); got != nil {
			t.Fatalf("Detect(\"\") = %+v, want nil", got)
		}
		if got := d.Detect("   \t  "); got != nil {
			t.Fatalf("Detect(whitespace) = %+v, want nil", got)
		}
	})

	t.Run("no phrase matches returns nil", func(t *testing.T) {
		if got := d.Detect("xyz123"); got != nil {
			t.Fatalf("Detect(%q) = %+v, want nil", "xyz123", got)
		}
	})

	t.Run("classifies simple phrases", func(t *testing.T) {
		cases := []struct {
			message string
			want    intent.Name
		}{
			{"halo", intent.NameGreetings},
			{"Selamat pagi semuanya", intent.NameGreetings},
			{"tolong dong", intent.NameHelp},
			{"daftar", intent.NameRegister},
			{"lihat jadwal", intent.NameSchedule},
			{"ada deadline?", intent.NameAssignment},
			{"pengingat", intent.NameReminder},
			{"apa itu unibot", intent.NameAbout},
			{"makasih ya", intent.NameThanks},
		}

		for _, tc := range cases {
			got := d.Detect(tc.message)
			if got == nil {
				t.Errorf("Detect(%q) = nil, want %s", tc.message, tc.want)
				continue
			}
			if got.Name != tc.want {
				t.Errorf("Detect(%q).Name = %s, want %s", tc.message, got.Name, tc.want)
			}
		}
	})

	t.Run("confidence stays within bounds", func(t *testing.T) {
		messages := []string{
			"halo",
			"jadwal",
			"jadwal kuliah hari ini dong tolong banget ya kak",
			"hi",
			"anggota kelompok",
			"thank you so much for everything you have done for us",
		}

		for _, msg := range messages {
			got := d.Detect(msg)
			if got == nil {
				t.Errorf("Detect(%q) = nil, want a match", msg)
				continue
			}
			if got.Confidence < 0.6 || got.Confidence > 1.0 {
				t.Errorf("Detect(%q).Confidence = %v, want within [0.6, 1.0]", msg, got.Confidence)
			}
		}
	})

	t.Run("full coverage caps confidence at one", func(t *testing.T) {
		got := d.Detect("jadwal besok")
		if got == nil {
			t.Fatal("Detect returned nil")
		}
		if got.Name != intent.NameSchedule {
			t.Fatalf("Name = %s, want %s", got.Name, intent.NameSchedule)
		}
		if got.MatchedPhrase != "jadwal besok" {
			t.Errorf("MatchedPhrase = %q, want %q", got.MatchedPhrase, "jadwal besok")
		}
		if got.Confidence != 1.0 {
			t.Errorf("Confidence = %v, want 1.0", got.Confidence)
		}
	})

	t.Run("longer coverage beats shorter phrase", func(t *testing.T) {
		// "anggota kelompok" contains the group phrase "kelompok" too,
		// but the longer groupMembers phrase covers more of the message.
		got := d.Detect("anggota kelompok")
		if got == nil {
			t.Fatal("Detect returned nil")
		}
		if got.Name != intent.NameGroupMembers {
			t.Errorf("Name = %s, want %s", got.Name, intent.NameGroupMembers)
		}
	})

	t.Run("equal confidence keeps first table entry", func(t *testing.T) {
		// "halo" (greetings) and "menu" (help) are the same length, so
		// both score identically on this message.
		got := d.Detect("halo menu")
		if got == nil {
			t.Fatal("Detect returned nil")
		}
		if got.Name != intent.NameGreetings {
			t.Errorf("Name = %s, want %s (first table entry wins ties)", got.Name, intent.NameGreetings)
		}
		if got.MatchedPhrase != "halo" {
			t.Errorf("MatchedPhrase = %q, want %q", got.MatchedPhrase, "halo")
		}
	})

	t.Run("matching is case insensitive", func(t *testing.T) {
		got := d.Detect("JADWAL Besok")
		if got == nil {
			t.Fatal("Detect returned nil")
		}
		if got.Name != intent.NameSchedule {
			t.Errorf("Name = %s, want %s", got.Name, intent.NameSchedule)
		}
	})

	t.Run("non filterable intents never carry filters", func(t *testing.T) {
		got := d.Detect("halo besok")
		if got == nil {
			t.Fatal("Detect returned nil")
		}
		if got.Name != intent.NameGreetings {
			t.Fatalf("Name = %s, want %s", got.Name, intent.NameGreetings)
		}
		if got.Filters != nil {
			t.Errorf("Filters = %+v, want nil", got.Filters)
		}
	})

	t.Run("detect is pure", func(t *testing.T) {
		first := d.Detect("tugas basis data minggu ini")
		second := d.Detect("tugas basis data minggu ini")
		if !reflect.DeepEqual(first, second) {
			t.Errorf("repeated Detect differs: %+v vs %+v", first, second)
		}
	})
}
