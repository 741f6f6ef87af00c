// Command hctool is a save-file multitool for the game Hardcoded. It
// converts pre-release binary saves to the release JSON format, tidies the
// inventory lists inside a save, and manages a library of named outfits.
package main
