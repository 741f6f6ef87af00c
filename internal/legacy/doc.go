// Package legacy decodes pre-release binary saves into the release save model.
//
// The old game build serialized saves with Godot's variant encoding: a 4-byte
// stream header followed by one marker-tagged value. Every marker and length
// is 4 bytes little-endian and string payloads are zero-padded to a 4-byte
// boundary. Decoding is a structural re-interpretation only; item codes and
// other field values pass through untouched, apart from a small static table
// of field identifiers the release build renamed.
package legacy
