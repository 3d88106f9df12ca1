package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	govalues "github.com/reoring/govalues"
	"github.com/reoring/govalues/dsl"
	"github.com/reoring/govalues/loader"
	"github.com/reoring/govalues/metrics"
)

func TestObserver_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := metrics.NewObserver(reg)
	require.NoError(t, err)

	name, err := dsl.String(govalues.Config{govalues.KeyID: "name", govalues.KeyRequired: true})
	require.NoError(t, err)
	frozen, err := dsl.String(govalues.Config{govalues.KeyID: "frozen", govalues.KeySkip: true})
	require.NoError(t, err)

	c := govalues.NewCollection([]*govalues.Value{
		govalues.NewValue("a", name),
		govalues.NewValue("b", frozen),
	}, govalues.WithObserver(obs))

	_, err = c.UpdateValues(map[string]any{"name": "x"})
	require.NoError(t, err)
	_, err = c.UpdateValues(map[string]any{})
	require.Error(t, err)

	vec := obs.Collector()
	require.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues("name", "valid")))
	require.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues("name", "invalid")))
	// "frozen" sorts before "name" and is visited on both updates.
	require.Equal(t, 2.0, testutil.ToFloat64(vec.WithLabelValues("frozen", "skipped")))
}

func TestNewObserver_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.NewObserver(reg)
	require.NoError(t, err)
	_, err = metrics.NewObserver(reg)
	require.Error(t, err)
}

func TestObserver_WiredThroughLoader(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := metrics.NewObserver(reg)
	require.NoError(t, err)

	defs, err := loader.Parse([]byte(`
values:
  - {id: email, kind: string, required: true}
  - {id: plan, kind: string, skip: true, value: free}
`))
	require.NoError(t, err)
	c, err := defs.Collection(loader.WithCollectionOptions(govalues.WithObserver(obs)))
	require.NoError(t, err)

	next, err := c.UpdateValues(map[string]any{"email": "a@b.c", "plan": "pro"})
	require.NoError(t, err)
	// the observer carries over to derived collections
	_, err = next.Patch(map[string]any{"email": ""})
	require.Error(t, err)

	vec := obs.Collector()
	require.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues("email", "valid")))
	require.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues("email", "invalid")))
	require.Equal(t, 1.0, testutil.ToFloat64(vec.WithLabelValues("plan", "skipped")))
	require.Equal(t, 3, testutil.CollectAndCount(vec))

	n, err := testutil.GatherAndCount(reg, "govalues_update_outcomes_total")
	require.NoError(t, err)
	require.Equal(t, 3, n)
}
