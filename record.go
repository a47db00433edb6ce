// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lcpsort

// AS (Annotated String) pairs a string handle with the length of the prefix
// it shares with its predecessor in the Stream it belongs to.
//
// Text is caller-owned and never mutated or copied by lcpsort; only the
// handle itself (the slice header) is moved around during the merge. A Text
// value is treated as if it were a NUL-terminated C string: a 0x00 byte,
// wherever it occurs, ends the portion of Text that participates in
// comparisons. Text containing no NUL byte is compared up to its full
// length.
type AS struct {
	Text []byte
	LCP  uint32
}

// Stream is a contiguous, already-sorted, LCP-annotated run of strings
// participating as one input to a merge. It is a plain Go slice: slicing a
// Stream (e.g. s[1:]) yields a Stream that shares the same backing array,
// which is exactly the "(offset, length) into a shared base array" view the
// merge algorithm needs — advancing a stream is just re-slicing it.
//
// Within a Stream, LCP[0] is the prefix the stream's first element shares
// with whatever preceded it in a larger context (the merge resets this to a
// known base depth before using it); for i>0, LCP[i] is the common-prefix
// length between element i and element i-1.
type Stream []AS

func (s Stream) empty() bool { return len(s) == 0 }

// head returns the LCP of the stream's first element, or 0 for an empty
// stream (the value is never consulted in that case).
func (s Stream) head() uint32 {
	if len(s) == 0 {
		return 0
	}
	return s[0].LCP
}
