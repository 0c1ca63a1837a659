// Package depict draws a quick 2D picture of a parsed mol file.
//
// Only x and y are used. The molecule is scaled to fit the image,
// bonds are drawn with the freetype rasteriser and every atom that is
// not a carbon gets its element symbol, written in the Go font.
// It is a picture for checking that a file is what you think it is,
// not something for a publication.
package depict
