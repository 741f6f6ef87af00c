// Package organiser reorders and deduplicates the messy list fields inside a
// save: wardrobe lists and the furniture inventory are grouped by base item
// (colour and graphic variants of one item stay together, groups keep
// first-acquisition order), the PC and Journal stay pinned to the head of the
// furniture list, and content-identical email duplicates collapse to their
// oldest copy. Every other field passes through untouched and the whole
// transformation is idempotent.
package organiser
