package modulea

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_StartsAtZero(t *testing.T) {
	a := New(WithOutput(&bytes.Buffer{}))
	assert.Equal(t, 0, a.Value())
}

func TestFoo_CountsToTen(t *testing.T) {
	var out bytes.Buffer
	a := New(WithOutput(&out))

	a.Foo()

	assert.Equal(t, Increments, a.Value())
	assert.Equal(t, "Launch process...\nValue: 10\n", out.String())
}

func TestFoo_AccumulatesAcrossCalls(t *testing.T) {
	var out bytes.Buffer
	a := New(WithOutput(&out))

	for i := 1; i <= 3; i++ {
		a.Foo()
		assert.Equal(t, i*Increments, a.Value())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{
		LaunchMessage, "Value: 10",
		LaunchMessage, "Value: 20",
		LaunchMessage, "Value: 30",
	}, lines)
}

func TestFoo_NoGoroutineOutlivesCall(t *testing.T) {
	defer goleak.VerifyNone(t)

	a := New(WithOutput(&bytes.Buffer{}))
	a.Foo()
}

func TestFoo_LogsLaunchAndJoin(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	a := New(WithOutput(&bytes.Buffer{}), WithLogger(zap.New(core)))

	a.Foo()

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Launching worker", entries[0].Message)
	assert.Equal(t, "Worker joined", entries[1].Message)
	assert.Equal(t, "modulea", entries[0].LoggerName)

	launchID := entries[0].ContextMap()["launch_id"]
	assert.NotEmpty(t, launchID)
	assert.Equal(t, launchID, entries[1].ContextMap()["launch_id"])
	assert.EqualValues(t, 10, entries[1].ContextMap()["value"])
}

func TestOptions_IgnoreNil(t *testing.T) {
	a := New(WithOutput(nil), WithLogger(nil))
	assert.NotNil(t, a.out)
	assert.NotNil(t, a.logger)
}
