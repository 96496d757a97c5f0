package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twitter/goice/ice"
)

const circleConfig = `{"Shape": {"Type": "circle", "Radius": 2, "Singleton": true}}`

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	asset := func(name string) ([]byte, error) {
		if name == "config/test.circle" {
			return []byte(circleConfig), nil
		}
		return nil, errors.Errorf("no asset %v", name)
	}
	cl := NewCLIClient(asset, &out)
	SetArgs(cl, args)
	err := cl.Exec()
	return out.String(), err
}

func TestResolveSingleton(t *testing.T) {
	out, err := run(t, "resolve", "Shape", "--times", "3", "--config", "test.circle")
	require.NoError(t, err)
	assert.Equal(t, "0: circle(r=2) (instance #0)\n1: circle(r=2) (instance #0)\n2: circle(r=2) (instance #0)\n", out)
}

func TestResolveDynamicNamed(t *testing.T) {
	config := `{"Highlight": {"Type": "square", "Side": 1}}`
	out, err := run(t, "resolve", "Shape", "--name", "highlight", "--times", "2", "--config", config)
	require.NoError(t, err)
	assert.Equal(t, "0: square(s=1) (instance #0)\n1: square(s=1) (instance #1)\n", out)
}

func TestResolveCanvas(t *testing.T) {
	out, err := run(t, "resolve", "Canvas", "--config", "test.circle")
	require.NoError(t, err)
	assert.Equal(t, "0: canvas[circle(r=2)] (instance #0)\n", out)
}

func TestResolveErrors(t *testing.T) {
	_, err := run(t, "resolve", "Triangle", "--config", "test.circle")
	var usage *UsageError
	assert.True(t, errors.As(err, &usage), "%v", err)

	_, err = run(t, "resolve", "Shape", "--name", "nope", "--config", "test.circle")
	assert.True(t, errors.Is(err, ice.ErrUnresolvable), "%v", err)

	_, err = run(t, "resolve", "Shape", "--config", "missing.circle")
	var conf *ConfigError
	assert.True(t, errors.As(err, &conf), "%v", err)

	_, err = run(t, "resolve", "Shape", "--config", `{"Shape": {"Type": "hexagon"}}`)
	assert.True(t, errors.As(err, &conf), "%v", err)
}

func TestBindings(t *testing.T) {
	out, err := run(t, "bindings", "--config", "test.circle")
	require.NoError(t, err)
	assert.Contains(t, out, "ProviderBinding shapes.Shape (singleton)")
	assert.Contains(t, out, "cached (0):")
}

func TestStats(t *testing.T) {
	out, err := run(t, "stats", "--times", "2", "--config", "test.circle")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), out)
	assert.Contains(t, out, `"ice/instanceCacheHitCounter"`)
	assert.Contains(t, out, `"ice/constructLatency_ms.count"`)
}

func setupFor(t *testing.T, args ...string) *simpleCLIClient {
	cl := NewCLIClient(func(string) ([]byte, error) { return []byte(circleConfig), nil }, &bytes.Buffer{}).(*simpleCLIClient)
	cmd, rest, err := cl.rootCmd.Find(args)
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags(rest))
	require.NoError(t, cl.setup(cmd, nil))
	t.Cleanup(cl.cancelStats)
	return cl
}

func TestServeStatsAreLatched(t *testing.T) {
	cl := setupFor(t, "serve", "--stats_latch", "1h")
	cl.stat.Counter("scraped").Inc(1)

	// renders come from the last snapshot, taken before the counter moved
	first := string(cl.stat.Render(false))
	assert.NotContains(t, first, "scraped")
	assert.Equal(t, first, string(cl.stat.Render(false)))
}

func TestStatsCommandIsNotLatched(t *testing.T) {
	cl := setupFor(t, "stats")
	cl.stat.Counter("scraped").Inc(1)

	assert.Contains(t, string(cl.stat.Render(false)), `"scraped":1`)
	assert.NotContains(t, string(cl.stat.Render(false)), `"scraped":1`)
}
