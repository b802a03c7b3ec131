package infrastructure

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floodaware.app/internal/ports"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry), scanner.Text())
		lines = append(lines, entry)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestFileLoggerAdapter_New(t *testing.T) {
	_, err := NewFileLoggerAdapter("", nil)
	assert.ErrorContains(t, err, "log file path cannot be empty")

	path := filepath.Join(t.TempDir(), "nested", "deep", "location.log")
	logger, err := NewFileLoggerAdapter(path, nil)
	require.NoError(t, err)
	defer logger.Close()

	assert.FileExists(t, path)
}

func TestFileLoggerAdapter_LogLevels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.log")
	clock := clockwork.NewFakeClockAt(time.Date(2024, 7, 14, 9, 30, 0, 0, time.UTC))
	logger, err := NewFileLoggerAdapter(path, clock)
	require.NoError(t, err)

	logger.Debug("Location lookup started", ports.F("provider", "ipinfo"))
	logger.Info("Location lookup complete", ports.F("duration", 150*time.Millisecond))
	logger.Warn("Location lookup failed", ports.F("error", fmt.Errorf("status 429")))
	logger.Error("Weather fetch failed", ports.F("lat", 6.52))
	require.NoError(t, logger.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 4)

	assert.Equal(t, map[string]interface{}{
		"timestamp": "2024-07-14T09:30:00Z",
		"level":     "DEBUG",
		"message":   "Location lookup started",
		"provider":  "ipinfo",
	}, lines[0])
	assert.Equal(t, "150ms", lines[1]["duration"])
	assert.Equal(t, "WARN", lines[2]["level"])
	assert.Equal(t, "status 429", lines[2]["error"])
	assert.Equal(t, 6.52, lines[3]["lat"])
}

func TestFileLoggerAdapter_ReservedKeysWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.log")
	logger, err := NewFileLoggerAdapter(path, clockwork.NewFakeClock())
	require.NoError(t, err)

	logger.Info("real message", ports.F("message", "spoofed"), ports.F("level", "DEBUG"))
	require.NoError(t, logger.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "real message", lines[0]["message"])
	assert.Equal(t, "INFO", lines[0]["level"])
}

func TestFileLoggerAdapter_UnencodableField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.log")
	logger, err := NewFileLoggerAdapter(path, clockwork.NewFakeClock())
	require.NoError(t, err)

	logger.Info("bad field", ports.F("ch", make(chan int)))
	require.NoError(t, logger.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "failed to marshal log entry", lines[0]["message"])
	assert.Equal(t, "ERROR", lines[0]["level"])
}

func TestFileLoggerAdapter_AppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.log")

	first, err := NewFileLoggerAdapter(path, nil)
	require.NoError(t, err)
	first.Info("first")
	require.NoError(t, first.Close())

	second, err := NewFileLoggerAdapter(path, nil)
	require.NoError(t, err)
	second.Info("second")
	require.NoError(t, second.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "first", lines[0]["message"])
	assert.Equal(t, "second", lines[1]["message"])
}

func TestFileLoggerAdapter_WriteAfterCloseIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.log")
	logger, err := NewFileLoggerAdapter(path, nil)
	require.NoError(t, err)
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())

	logger.Info("dropped")
	assert.Empty(t, readLogLines(t, path))
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.log")
	logger, err := NewFileLoggerAdapter(path, nil)
	require.NoError(t, err)

	const goroutines, perGoroutine = 8, 25
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Info("entry", ports.F("goroutine", id), ports.F("i", i))
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	assert.Len(t, readLogLines(t, path), goroutines*perGoroutine)
}

func BenchmarkFileLoggerAdapter_Info(b *testing.B) {
	logger, err := NewFileLoggerAdapter(filepath.Join(b.TempDir(), "bench.log"), nil)
	require.NoError(b, err)
	defer logger.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("Weather fetch complete", ports.F("provider", "openweathermap"), ports.F("iteration", i))
	}
}
