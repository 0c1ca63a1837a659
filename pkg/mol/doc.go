// Package mol reads a molecule in MDL mol (V2000) format.
//
// A mol file is positional. The first three lines are a header
// (title, program/timestamp line, comment), the fourth is the counts
// line and then come the atom block and the bond block. Every field
// lives in fixed columns, so we never tokenise, we just cut lines.
//
//   Glycine
//     ChemDraw  03/14/24
//
//     5  4  0  0  0  0  0  0  0  0999 V2000
//       0.0000    0.0000    0.0000 N   0  0  0  0  0  0  0  0  0  0  0  0
//       ...
//     1  2  1  0
//
// Parse takes the whole record as one string and returns a Document or
// a *ParseError. Nothing is kept between calls, so Parse can be called
// from as many goroutines as you like.
//
// Coordinates stay as the decimal text from the file. If you want
// numbers, call Xyz, Coords or BondLengths. They do the conversion when
// asked and can fail on their own.
//
// Things we ignore: anything after the bond block (the "M  END"
// property lines, sdf data items), V3000 blocks, and the atom
// columns past the element symbol.
package mol
