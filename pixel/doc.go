// Package pixel implements the color models and lookup tables used by compressed LED pixel streams.
//
// This module provides hue/lightness and 3-3-2 packed RGB color models, compatible with Go's
// native [color.Color] and [image.Image] / [draw.Image] interfaces. The lookup tables behind
// them are built once when the package is initialized and are read-only afterwards.
package pixel
