package historylog_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nmetens/salsa20-go/historylog"
)

func TestRecordWritesOneJSONLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	log := historylog.New(&buf)

	key := make([]byte, 32)
	nonce := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	log.Record(historylog.Encrypt, key, nonce, 0, 27)
	log.Record(historylog.Decrypt, key, nonce, 0, 27)

	if err := log.Sync(); err != nil {
		// Syncing a bytes.Buffer-backed sink can return an error on some
		// platforms because it isn't a real file descriptor; only fail
		// the test if the buffered output itself is wrong.
		t.Logf("Sync: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("want 2 log lines, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("entry is not valid JSON: %v", err)
	}

	if entry["direction"] != string(historylog.Encrypt) {
		t.Errorf("direction: want %q, got %v", historylog.Encrypt, entry["direction"])
	}
	if entry["bytes"] != float64(27) {
		t.Errorf("bytes: want 27, got %v", entry["bytes"])
	}
	if entry["nonce"] != "0102030405060708" {
		t.Errorf("nonce: want 0102030405060708, got %v", entry["nonce"])
	}
	fingerprint, ok := entry["key_fingerprint"].(string)
	if !ok || fingerprint == "" {
		t.Errorf("key_fingerprint missing or not a string")
	}
	if strings.Contains(buf.String(), strings.Repeat("00", 32)) {
		t.Errorf("log output must not contain the raw key bytes")
	}
}
