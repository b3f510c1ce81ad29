// Package testutil holds small test-support helpers shared across this
// module's packages and commands: loading fixture files relative to the
// calling test, and a scriptable io.Reader stand-in for exercising
// reader loops (cmd/aisdump's serial/stdin path) without a real device.
package testutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// LoadBytes reads a file from the calling test's testdata directory.
func LoadBytes(t *testing.T, name string) []byte {
	t.Helper()
	_, caller, _, _ := runtime.Caller(1)
	path := filepath.Join(filepath.Dir(caller), "testdata", name)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(fmt.Errorf("testutil.LoadBytes: %w", err))
	}
	return b
}

// ReadResult is one scripted return value for MockReaderWriter.Read.
type ReadResult struct {
	Read []byte
	Err  error
}

// MockReaderWriter replays a fixed sequence of Read results, for tests
// that drive a reader loop without opening a real serial port or pipe.
type MockReaderWriter struct {
	Reads     []ReadResult
	readIndex int
}

func (m *MockReaderWriter) Read(p []byte) (int, error) {
	if m.readIndex >= len(m.Reads) {
		return 0, io.EOF
	}
	r := m.Reads[m.readIndex]
	m.readIndex++
	if r.Err != nil {
		return len(r.Read), r.Err
	}
	return copy(p, r.Read), nil
}
