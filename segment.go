package ledcodec

import "github.com/BeatGlow/ledcodec/pixel"

// Segment display geometry.
const (
	// SegmentsPerDigit is the number of segments addressed per digit.
	SegmentsPerDigit = 32

	// DigitPixels is the number of pixels wired per digit.
	DigitPixels = 188

	// DigitBytes is the byte stride between consecutive digits in a pixel buffer.
	DigitBytes = DigitPixels * BytesPerPixel
)

// Segment is a run of consecutive pixels within a digit that lights up as one unit.
type Segment struct {
	// Start pixel, relative to the first pixel of the digit.
	Start uint8

	// Count of pixels in the run.
	Count uint8
}

// End is the pixel just past the segment, relative to the digit.
func (s Segment) End() int {
	return int(s.Start) + int(s.Count)
}

// segmentTable is the pixel layout of one digit, in segment order.
var segmentTable = [SegmentsPerDigit]Segment{
	{38, 10}, {31, 7}, {24, 7}, {14, 10},
	{7, 7}, {0, 7}, {65, 4}, {86, 4},
	{48, 5}, {53, 6}, {59, 6}, {69, 6},
	{75, 6}, {81, 5}, {94, 2}, {90, 2},
	{92, 2}, {110, 10}, {120, 7}, {127, 7},
	{134, 10}, {96, 7}, {103, 7}, {156, 4},
	{177, 4}, {160, 5}, {165, 6}, {171, 6},
	{150, 6}, {144, 6}, {181, 5}, {186, 2},
}

// segmentReach[i] is the furthest pixel end of segments 0 through i.
var segmentReach = func() (reach [SegmentsPerDigit]int) {
	var end int
	for i, s := range segmentTable {
		end = max(end, s.End())
		reach[i] = end
	}
	return
}()

// Segments returns the pixel layout of a single digit, indexed by segment.
func Segments() [SegmentsPerDigit]Segment {
	return segmentTable
}

// SegmentRegion returns the byte range written for segment s, counting segments over
// all digits. Segment s belongs to digit s/32 and uses layout entry s%32.
func SegmentRegion(s int) (offset, length int) {
	var (
		digit = s / SegmentsPerDigit
		seg   = segmentTable[s%SegmentsPerDigit]
	)
	return digit*DigitBytes + int(seg.Start)*BytesPerPixel, int(seg.Count) * BytesPerPixel
}

// SegmentBufferLen returns the minimum buffer length that can hold the first n segments.
func SegmentBufferLen(n int) int {
	if n <= 0 {
		return 0
	}
	last := n - 1
	return last/SegmentsPerDigit*DigitBytes + segmentReach[last%SegmentsPerDigit]*BytesPerPixel
}

// ScatterSegments decodes a stream of hue, lightness byte pairs, one pair per segment
// starting at segment 0, and fills every pixel of each segment with its color.
//
// Pixels that do not belong to a decoded segment are left unchanged. The same dst is
// returned so calls can be chained.
//
// An odd length source returns [ErrInvalidLength]; if dst is shorter than
// [SegmentBufferLen] for the number of pairs, [ErrBounds] is returned. In both cases
// dst is not touched.
func ScatterSegments(dst, src []byte) ([]byte, error) {
	if len(src)&1 != 0 {
		return nil, ErrInvalidLength
	}
	n := len(src) >> 1
	if len(dst) < SegmentBufferLen(n) {
		return nil, ErrBounds
	}

	for s := 0; s < n; s++ {
		var (
			r, g, b        = pixel.HL{H: src[s*2], L: src[s*2+1]}.RGB()
			offset, length = SegmentRegion(s)
			out            = dst[offset : offset+length]
		)
		for j := 0; j < len(out); j += BytesPerPixel {
			out[j], out[j+1], out[j+2] = r, g, b
		}
	}
	return dst, nil
}
