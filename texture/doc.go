// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package texture prepares decoded TGA images for GPU upload.
//
// A decoded [tga.Image] is already laid out as a tightly packed BGRA8
// texture: 4 bytes per pixel, row stride width*4. This package describes
// that layout with gputypes values and hands the pixels to a queue or a
// gpucontext texture creator.
//
// Example:
//
//	img, err := tga.LoadFile("brick.tga")
//	if err != nil {
//	    return err
//	}
//	desc, err := texture.Upload(queue, "brick", img)
//
// Consumers whose native format is red-first get an explicit swizzled copy
// from [Pixels]. Nothing in this package creates devices or queues; those
// belong to the caller.
package texture
