package bitstream

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

func mustNewEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

// encoderPool holds EncodeAll-only encoders; they carry no stream state.
var encoderPool = sync.Pool{
	New: func() any {
		return mustNewEncoder()
	},
}
