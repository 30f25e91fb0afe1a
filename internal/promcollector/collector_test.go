package promcollector

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAccumulate(t *testing.T) {
	c := New()

	c.RecordAccumulate("lazy", 4, 20*time.Nanosecond)
	c.RecordAccumulate("lazy", 4, 30*time.Nanosecond)
	c.RecordAccumulate("program", 4, 10*time.Nanosecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.accumulateTotal.WithLabelValues("lazy")))
	assert.Equal(t, 8.0, testutil.ToFloat64(c.accumulateElements.WithLabelValues("lazy")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.accumulateTotal.WithLabelValues("program")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.accumulateDuration))
}

func TestRecordRun(t *testing.T) {
	c := New()

	c.RecordRun("eager", 100, time.Millisecond, nil)
	c.RecordRun("eager", 100, 0, errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.runsTotal.WithLabelValues("eager", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.runsTotal.WithLabelValues("eager", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.runIteration))
}

func TestWriteText(t *testing.T) {
	c := New()
	c.RecordRun("lazy", 10, time.Microsecond, nil)

	var buf bytes.Buffer
	require.NoError(t, c.WriteText(&buf))

	out := buf.String()
	assert.Contains(t, out, "# TYPE vecexpr_runs_total counter")
	assert.Contains(t, out, `vecexpr_runs_total{status="success",strategy="lazy"} 1`)
	assert.Contains(t, out, "vecexpr_run_iteration_seconds_count{strategy=\"lazy\"} 1")
}
