package store

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// 페르소나 페이로드(5x12 오퍼)는 반복 구조가 많아 압축 효율이 좋다.
// 압축 여부는 값 앞의 매직 프리픽스로 구분한다.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// 싱글톤 encoder/decoder - goroutine-safe 재사용
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
	initOnce    sync.Once
	errInit     error
)

func initZstd() error {
	initOnce.Do(func() {
		var err error
		zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			errInit = fmt.Errorf("create zstd encoder: %w", err)
			return
		}
		zstdDecoder, err = zstd.NewReader(nil)
		if err != nil {
			errInit = fmt.Errorf("create zstd decoder: %w", err)
		}
	})
	return errInit
}

// encodePayload 는 설정에 따라 페이로드를 zstd 로 압축한다.
func encodePayload(src []byte, compress bool) ([]byte, error) {
	if !compress {
		return src, nil
	}
	if err := initZstd(); err != nil {
		return nil, err
	}
	dst := make([]byte, 0, len(src))
	return zstdEncoder.EncodeAll(src, dst), nil
}

// decodePayload 는 zstd 매직이 감지되면 압축을 풀고 아니면 그대로 반환한다.
func decodePayload(src []byte) ([]byte, error) {
	if !bytes.HasPrefix(src, zstdMagic) {
		return src, nil
	}
	if err := initZstd(); err != nil {
		return nil, err
	}
	decoded, err := zstdDecoder.DecodeAll(src, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	return decoded, nil
}
