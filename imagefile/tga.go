// seehuhn.de/go/tinyrender - a software triangle rasterizer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package imagefile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"math"

	"seehuhn.de/go/tinyrender/framebuf"
)

// tgaHeader is the 18 byte header of a TGA file.
type tgaHeader struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapFirst   uint16
	ColorMapLength  uint16
	ColorMapEntry   uint8
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	BitsPerPixel    uint8
	ImageDescriptor uint8 // 0: origin in the bottom-left corner
}

const tgaUncompressedTrueColor = 2

var errTGATooLarge = errors.New("tga: image dimensions exceed 65535")

// encodeTGA writes an uncompressed 24 bit TGA file.
func encodeTGA(w io.Writer, fb *framebuf.FrameBuffer) error {
	width, height := fb.Width(), fb.Height()
	if width > math.MaxUint16 || height > math.MaxUint16 {
		return errTGATooLarge
	}

	bw := bufio.NewWriter(w)
	hdr := tgaHeader{
		ImageType:    tgaUncompressedTrueColor,
		Width:        uint16(width),
		Height:       uint16(height),
		BitsPerPixel: 24,
	}
	if err := binary.Write(bw, binary.LittleEndian, &hdr); err != nil {
		return err
	}

	img := fb.Image()
	row := make([]byte, 3*width)
	for y := range height {
		src := img.Pix[y*img.Stride:]
		for x := range width {
			row[3*x] = src[4*x+2]   // B
			row[3*x+1] = src[4*x+1] // G
			row[3*x+2] = src[4*x]   // R
		}
		if _, err := bw.Write(row); err != nil {
			return err
		}
	}
	return bw.Flush()
}
