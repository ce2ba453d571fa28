// Package truthtable stores and renders multi-output truth tables.
//
// A table maps every combination of its input variables to one entry
// per output variable. Entries are two-bit values: low, high, don't
// care or undefined. The first input variable carries the highest bit
// weight, so row index 6 of a three-input table means A=1 B=1 C=0.
//
// Tables are built from expressions, parsed from tab- or
// whitespace-separated text, parsed from the compact colon notation, or
// generated randomly. Five output renderings are supported: plain text,
// a box-drawn grid, TeX, the compact notation and a Logisim-compatible
// listing.
package truthtable
