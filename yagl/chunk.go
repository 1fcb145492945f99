package yagl

import "github.com/newgrf/yagl/yagl/internal/wire"

// chunk codec: per-row run-length encoding for sprites with large
// transparent regions (§4.2). Each row is scanned for opaque pixel
// runs ("chunks"); only those runs are stored, each tagged with its
// starting column and length.

// rowChunk is one opaque run within a single row.
type rowChunk struct {
	offset int // starting column
	length int // pixel count
}

// minGap is the smallest inter-chunk gap, in pixels, that keeps two
// opaque runs apart: runs separated by fewer than minGap transparent
// pixels are coalesced into a single chunk. This mirrors the original encoder and
// is required for decode(encode(x)) == x: a decoder that didn't also
// know to treat small gaps as "still one chunk" would produce a
// different (but pixel-identical) chunk list on the next encode, which
// is fine per §4.2, but the gap itself must be honoured on first
// encode for outputs to match known-good fixtures.
const minGap = 3

// scanRowChunks walks the transparency-test byte of row every bpp
// bytes and produces the coalesced chunk list for that row.
func scanRowChunks(row []byte, width int, f pixelFormat) []rowChunk {
	if f.ato < 0 {
		if width == 0 {
			return nil
		}
		return []rowChunk{{offset: 0, length: width}}
	}

	var bounds []int
	opaque := false
	for px := 0; px < width; px++ {
		isOpaque := f.pixelOpaque(row, px)
		if isOpaque && !opaque {
			bounds = append(bounds, px)
			opaque = true
		} else if !isOpaque && opaque {
			bounds = append(bounds, px)
			opaque = false
		}
	}
	if len(bounds)%2 == 1 {
		bounds = append(bounds, width)
	}

	var chunks []rowChunk
	for i := 0; i < len(bounds); i += 2 {
		start, end := bounds[i], bounds[i+1]
		if len(chunks) > 0 {
			prev := &chunks[len(chunks)-1]
			gap := start - (prev.offset + prev.length)
			if gap < minGap {
				prev.length = end - prev.offset
				continue
			}
		}
		chunks = append(chunks, rowChunk{offset: start, length: end - start})
	}
	return chunks
}

// longRegime reports whether a row's chunk length/offset fields are
// 16-bit (true) or 8-bit (false), per §4.2: width > 256 forces the
// long regime.
func longRegime(width int) bool {
	return width > 256
}

// lastChunkBit is OR'd into the length field of a row's final chunk.
func lastChunkBit(long bool) int {
	if long {
		return 0x8000
	}
	return 0x80
}

// encodeChunked writes the chunked payload (row-offset table followed
// by per-row chunk streams) for an image of the given dimensions and
// pixel format. pixels is a flat width*height*bpp buffer, row-major.
func encodeChunked(pixels []byte, width, height int, f pixelFormat) []byte {
	long := longRegime(width)

	rows := make([][]rowChunk, height)
	rowData := make([][]byte, height)
	for y := 0; y < height; y++ {
		row := pixels[y*width*f.bpp : (y+1)*width*f.bpp]
		chunks := scanRowChunks(row, width, f)
		rows[y] = chunks

		w := wire.NewWriter()
		for i, c := range chunks {
			length := c.length
			if i == len(chunks)-1 {
				length |= lastChunkBit(long)
			}
			if long {
				w.U16(uint16(length))
				w.U16(uint16(c.offset))
			} else {
				w.U8(byte(length))
				w.U8(byte(c.offset))
			}
			w.Write(row[c.offset*f.bpp : (c.offset+c.length)*f.bpp])
		}
		if len(chunks) == 0 {
			// empty row: a single zero-length chunk keeps the
			// per-row stream well-formed.
			if long {
				w.U16(uint16(lastChunkBit(long)))
				w.U16(0)
			} else {
				w.U8(byte(lastChunkBit(long)))
				w.U8(0)
			}
		}
		rowData[y] = w.Bytes()
	}

	dataSize := 0
	for _, d := range rowData {
		dataSize += len(d)
	}

	// The row-offset table width depends on whether table+data fits in
	// 65536 bytes; the table itself contributes to that total, so try
	// the short form first and fall back to long (§4.2, boundary
	// behaviour: exactly 65536 is short, 65537 is long).
	shortTable := height * 2
	longTable := height * 4
	useLongOffsets := shortTable+dataSize > 65536

	out := wire.NewWriter()
	tableSize := shortTable
	if useLongOffsets {
		tableSize = longTable
	}
	offset := 0
	for y := 0; y < height; y++ {
		if useLongOffsets {
			out.U32(uint32(tableSize + offset))
		} else {
			out.U16(uint16(tableSize + offset))
		}
		offset += len(rowData[y])
	}
	for y := 0; y < height; y++ {
		out.Write(rowData[y])
	}
	return out.Bytes()
}

// decodeChunked reverses encodeChunked, reconstructing a flat
// width*height*bpp pixel buffer. totalSize is the full chunked payload
// size as reported by the framer/record header; it decides whether the
// row-offset table is 16- or 32-bit, since that regime is otherwise
// encoded nowhere in the stream (§4.2).
func decodeChunked(payload []byte, width, height int, f pixelFormat, totalSize int) ([]byte, error) {
	long := longRegime(width)
	useLongOffsets := totalSize > 65536

	r := wire.NewReader(payload)
	tableSize := height * 2
	if useLongOffsets {
		tableSize = height * 4
	}
	offsets := make([]int, height)
	for y := 0; y < height; y++ {
		if useLongOffsets {
			v, err := r.U32()
			if err != nil {
				return nil, err
			}
			offsets[y] = int(v)
		} else {
			v, err := r.U16()
			if err != nil {
				return nil, err
			}
			offsets[y] = int(v)
		}
	}

	pixels := make([]byte, width*height*f.bpp)
	for y := 0; y < height; y++ {
		pos := offsets[y]
		if pos < tableSize || pos > len(payload) {
			return nil, newFormatError(pos, "chunk row %d offset out of range", y)
		}
		row := pixels[y*width*f.bpp : (y+1)*width*f.bpp]
		rr := wire.NewReader(payload[pos:])
		for {
			var length, off int
			if long {
				l, err := rr.U16()
				if err != nil {
					return nil, err
				}
				o, err := rr.U16()
				if err != nil {
					return nil, err
				}
				length, off = int(l), int(o)
			} else {
				l, err := rr.U8()
				if err != nil {
					return nil, err
				}
				o, err := rr.U8()
				if err != nil {
					return nil, err
				}
				length, off = int(l), int(o)
			}
			last := length&lastChunkBit(long) != 0
			length &^= lastChunkBit(long)

			if length > 0 {
				data, err := rr.Bytes(length * f.bpp)
				if err != nil {
					return nil, err
				}
				copy(row[off*f.bpp:(off+length)*f.bpp], data)
			}
			if last {
				break
			}
		}
	}
	return pixels, nil
}
