// Package wajid holds WhatsApp JID and phone-number helpers shared by the
// chat worker and the dashboard API.
package wajid

import (
	"regexp"
	"strings"
)

const (
	groupSuffix     = "@g.us"
	userSuffix      = "@s.whatsapp.net"
	statusBroadcast = "status@broadcast"
)

var (
	nonDigits  = regexp.MustCompile(`[^0-9]`)
	whitespace = regexp.MustCompile(`\s+`)
)

// IsGroupJID reports whether the JID addresses a WhatsApp group.
func IsGroupJID(jid string) bool {
	return strings.HasSuffix(jid, groupSuffix)
}

// IsStatusBroadcast reports whether the JID is the status broadcast channel.
func IsStatusBroadcast(jid string) bool {
	return jid == statusBroadcast
}

// Display returns the bare identifier part of a JID, used for @-mention text.
func Display(jid string) string {
	identifier, _, found := strings.Cut(jid, "@")
	if !found || identifier == "" {
		return jid
	}
	return identifier
}

// NormalizePhone canonicalizes an Indonesian phone number to its
// international form without the plus sign (e.g. "0812..." → "62812...").
func NormalizePhone(input string) string {
	digits := nonDigits.ReplaceAllString(input, "")
	if digits == "" {
		return ""
	}

	switch {
	case strings.HasPrefix(digits, "62"):
		return digits
	case strings.HasPrefix(digits, "0"):
		return "62" + digits[1:]
	case strings.HasPrefix(digits, "8"):
		return "62" + digits
	}

	return digits
}

// PhoneFromJID extracts the normalized phone number from a user JID.
// Device suffixes ("628...:12@s.whatsapp.net") are stripped.
func PhoneFromJID(jid string) string {
	if jid == "" {
		return ""
	}

	identifier, _, _ := strings.Cut(jid, "@")
	if identifier == "" {
		return ""
	}
	identifier, _, _ = strings.Cut(identifier, ":")

	return NormalizePhone(identifier)
}

// UserJID returns a full user JID for the given phone number or JID.
func UserJID(identifier string) string {
	if strings.Contains(identifier, "@") {
		return identifier
	}
	return nonDigits.ReplaceAllString(identifier, "") + userSuffix
}

// StripMention removes every @-mention of the bot from the text and
// collapses the leftover whitespace.
func StripMention(text, botJID string) string {
	identifier := Display(botJID)

	mentionPattern := regexp.MustCompile(`(?i)@` + regexp.QuoteMeta(identifier))
	jidPattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(botJID))

	text = mentionPattern.ReplaceAllString(text, " ")
	text = jidPattern.ReplaceAllString(text, " ")

	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}
