/*
 * MIT License
 *
 * Copyright (c) 2026 Mathieu Juhel
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

//go:build cgo

package codec

/*
#cgo LDFLAGS: -llzfse
#include <stdlib.h>
#include <lzfse.h>
*/
import "C"

import (
	"errors"
	"unsafe"
)

// lzfseEncode calls into liblzfse's one-shot buffer API. The destination
// buffer is sized at src-length-plus-a-margin, the same heuristic
// lzfse's own command-line tool uses, since LZFSE does not expose a
// bound-computation function for the encode direction.
func lzfseEncode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	scratchSize := C.lzfse_encode_scratch_size()
	scratch := C.malloc(scratchSize)
	if scratch == nil {
		return nil, errors.New("lzfse: scratch allocation failed")
	}
	defer C.free(scratch)

	dstCap := len(src) + len(src)/2 + 512
	dst := make([]byte, dstCap)

	n := C.lzfse_encode_buffer(
		(*C.uint8_t)(unsafe.Pointer(&dst[0])), C.size_t(len(dst)),
		(*C.uint8_t)(unsafe.Pointer(&src[0])), C.size_t(len(src)),
		scratch)
	if n == 0 {
		return nil, errors.New("lzfse: encode_buffer reported zero bytes (destination too small or encode failure)")
	}
	return dst[:n], nil
}

// lzfseDecode calls lzfse_decode_buffer. Unlike encode, LZFSE gives no
// way to learn the decoded size up front; this grows the destination
// buffer and retries, the approach liblzfse's own test harness uses.
func lzfseDecode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	scratchSize := C.lzfse_decode_scratch_size()
	scratch := C.malloc(scratchSize)
	if scratch == nil {
		return nil, errors.New("lzfse: scratch allocation failed")
	}
	defer C.free(scratch)

	dstCap := len(src) * 4
	if dstCap < 4096 {
		dstCap = 4096
	}

	for attempt := 0; attempt < 8; attempt++ {
		dst := make([]byte, dstCap)
		n := C.lzfse_decode_buffer(
			(*C.uint8_t)(unsafe.Pointer(&dst[0])), C.size_t(len(dst)),
			(*C.uint8_t)(unsafe.Pointer(&src[0])), C.size_t(len(src)),
			scratch)
		if int(n) < len(dst) {
			return dst[:n], nil
		}
		dstCap *= 2
	}
	return nil, errors.New("lzfse: decoded size exceeds retry bound; input likely corrupted")
}
