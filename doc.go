// Package digitize demonstrates the three stages of image digitization:
// spatial sampling, amplitude quantization and binary coding.
//
// # Overview
//
// A square source image (usually the test figure rendered by the canvas
// sub-package) is reduced to an R×R grid of average intensities, each
// cell is assigned one of G evenly spaced gray levels, and the level
// indices are written out as fixed-width binary fields.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/digitize"
//	    "github.com/gogpu/digitize/canvas"
//	)
//
//	fig, _ := canvas.Figure(256)
//	s, _ := digitize.NewSession(fig, digitize.WithResolution(8), digitize.WithLevels(4))
//	s.AutoQuantize()
//	code, _ := s.Code() // 64 fields of 2 bits
//
// # Pipeline
//
// The stages are plain functions and can be used without a Session:
//   - [Downsample]: image → [IntensityGrid] (block means of the red channel)
//   - [NewPalette]: G → [Palette], level i = floor(i/(G-1)·255)
//   - [Quantize] or manual edits: → [SelectionGrid]
//   - [Encode]: [SelectionGrid] → row-major string of log2(G)-bit fields
//
// # Wizard
//
// [Session] walks the four [Step] values (Sampling, Quantization, Coding,
// Result) and recomputes derived grids explicitly when an input changes.
// Changing the gradation count snaps every selection that is no longer a
// palette level to the lowest level.
//
// # Sub-packages
//
//   - canvas: test figure and grid views drawn with gogpu/gg
//   - source: loading learners' own pictures as square grayscale sources
//   - bitstream: packed, zstd-compressed export of the code
package digitize
