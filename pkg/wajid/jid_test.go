package wajid

import "testing"

func TestIsGroupJID(t *testing.T) {
	if !IsGroupJID("120363021234567890@g.us") {
		t.Errorf("group jid not recognized")
	}
	if IsGroupJID("628123456789@s.whatsapp.net") {
		t.Errorf("user jid misclassified as group")
	}
}

func TestDisplay(t *testing.T) {
	if got := Display("628123456789@s.whatsapp.net"); got != "628123456789" {
		t.Errorf("Display = %q", got)
	}
	if got := Display("no-at-sign"); got != "no-at-sign" {
		t.Errorf("Display fallback = %q", got)
	}
}

func TestNormalizePhone(t *testing.T) {
	cases := []struct{ in, want string }{
		{"+62 812-3456-789", "628123456789"},
		{"08123456789", "628123456789"},
		{"8123456789", "628123456789"},
		{"628123456789", "628123456789"},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPhoneFromJID(t *testing.T) {
	if got := PhoneFromJID("628123456789:12@s.whatsapp.net"); got != "628123456789" {
		t.Errorf("device suffix not stripped: %q", got)
	}
	if got := PhoneFromJID(""); got != "" {
		t.Errorf("empty jid should yield empty phone, got %q", got)
	}
}

func TestUserJID(t *testing.T) {
	if got := UserJID("0812-3456789"); got != "08123456789@s.whatsapp.net" {
		t.Errorf("UserJID = %q", got)
	}
	if got := UserJID("x@s.whatsapp.net"); got != "x@s.whatsapp.net" {
		t.Errorf("existing jid should pass through, got %q", got)
	}
}

func TestStripMention(t *testing.T) {
	bot := "628999@s.whatsapp.net"

	got := StripMention("@628999 jadwal besok", bot)
	if got != "jadwal besok" {
		t.Errorf("StripMention = %q", got)
	}

	got = StripMention("halo @628999  apa kabar @628999", bot)
	if got != "halo apa kabar" {
		t.Errorf("StripMention = %q", got)
	}

	got = StripMention("@628999", bot)
	if got != "" {
		t.Errorf("mention-only text should strip to empty, got %q", got)
	}
}
