// Package savefile models one Hardcoded save slot in its release JSON form.
//
// A save file is a JSON document `{"version": 1, "save_data_key": {...}}`.
// Parse and Serialize form a lossless round trip: scalar fields the tool does
// not understand are carried through untouched, numbers keep their original
// textual form, and object keys are written in sorted order the way the game
// writes them.
//
// The package also owns the closed set of worn-part slots (hair, face,
// accessory, shirt, jacket) and the accessors the outfit and organiser code
// use to read worn items and owned-item lists.
package savefile
