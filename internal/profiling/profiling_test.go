package profiling

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	mu.Unlock()
}

func TestTopNAndPrefix(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	record("scene.Evaluate", 1500*time.Microsecond)
	record("session.Input", 200*time.Microsecond)
	record("scene.Light", 500*time.Microsecond)

	assert.Equal(t, "scene.Evaluate:1.5ms, scene.Light:0.5ms", TopN(2))
	assert.Equal(t, 2*time.Millisecond, SumWithPrefix("scene."))
	assert.Len(t, strings.Split(TopN(10), ", "), 3)

	ResetFrame()
	assert.Empty(t, Snapshot())
	assert.Equal(t, "", TopN(3))
}

func TestTrack(t *testing.T) {
	ResetFrame()
	t.Cleanup(ResetFrame)

	stop := Track("camera.Update")
	time.Sleep(time.Millisecond)
	stop()

	assert.GreaterOrEqual(t, Snapshot()["camera.Update"], time.Millisecond)
}
