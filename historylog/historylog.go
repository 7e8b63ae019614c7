// Package historylog is a structured, append-only NDJSON log of
// encrypt/decrypt calls, built on go.uber.org/zap. Every Record call
// appends one JSON object, never containing raw key material - only a
// fingerprint of it.
package historylog

import (
	"crypto/sha256"
	"encoding/hex"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Direction distinguishes an encrypt call from a decrypt call in a log entry.
type Direction string

const (
	// Encrypt marks a log entry produced by an encryption call.
	Encrypt Direction = "encrypt"
	// Decrypt marks a log entry produced by a decryption call.
	Decrypt Direction = "decrypt"
)

// Log appends one structured record per StreamXOR invocation to an
// underlying io.Writer, one JSON object per line.
type Log struct {
	logger *zap.Logger
}

// New builds a Log that writes NDJSON records to w. Closing w, if it needs
// closing, is the caller's responsibility.
func New(w io.Writer) *Log {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(w),
		zapcore.InfoLevel,
	)

	return &Log{logger: zap.New(core)}
}

// Record appends one entry describing a StreamXOR call. key and nonce are
// hashed/hex-encoded rather than stored verbatim, so the log itself never
// becomes a source of key material disclosure.
func (l *Log) Record(dir Direction, key, nonce []byte, initialBlock uint64, dataLen int) {
	fingerprint := sha256.Sum256(key)

	l.logger.Info("stream_xor",
		zap.String("direction", string(dir)),
		zap.String("key_fingerprint", hex.EncodeToString(fingerprint[:])),
		zap.String("nonce", hex.EncodeToString(nonce)),
		zap.Uint64("initial_block", initialBlock),
		zap.Int("bytes", dataLen),
	)
}

// Sync flushes any buffered log entries.
func (l *Log) Sync() error {
	return l.logger.Sync()
}
