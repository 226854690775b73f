package record

import "strings"

const (
	// SettingsSuffix marks configuration fields, which never leave the
	// dashboard.
	SettingsSuffix = "_settings"
	// LadderInfoMarker marks per-candidate ladder info fields. Matching is
	// case-insensitive.
	LadderInfoMarker = "ladder_info"
	// LaddersPrefix is shared by every pipeline stage field.
	LaddersPrefix = "ladders_"
)

// KeyIdentifier pairs a key identifier field with its display label.
type KeyIdentifier struct {
	Field string
	Label string
}

// KeyIdentifiers lists the identifier fields in display order.
var KeyIdentifiers = []KeyIdentifier{
	{Field: "vid", Label: "Video ID"},
	{Field: "item_id", Label: "Item ID"},
	{Field: "device_id", Label: "Device ID"},
	{Field: "user_id", Label: "User ID"},
}

// IsKeyIdentifier reports whether name is one of the fixed identifier fields.
func IsKeyIdentifier(name string) bool {
	for _, k := range KeyIdentifiers {
		if k.Field == name {
			return true
		}
	}
	return false
}

// IsSettingsField reports whether name is a configuration field.
func IsSettingsField(name string) bool {
	return strings.HasSuffix(name, SettingsSuffix)
}

// IsLadderInfoField reports whether name carries ladder info.
func IsLadderInfoField(name string) bool {
	return strings.Contains(strings.ToLower(name), LadderInfoMarker)
}

// Shareable returns the record minus configuration fields.
func Shareable(r Record) Record {
	return r.Without(IsSettingsField)
}
