// Package draw provides the image composition and resampling used to turn source images into LED pixel streams.
package draw
