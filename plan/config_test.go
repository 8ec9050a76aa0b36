package plan_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"injection-planner/plan"
)

func TestDefaultConfig(t *testing.T) {
	cfg := plan.DefaultConfig()

	assert.True(t, cfg.PruneLessSpecific)
	assert.Equal(t, plan.DefaultMaxDepth, cfg.MaxDepth)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Parallelism)
	assert.False(t, cfg.StrictMode)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want func(plan.Config) plan.Config
	}{
		{
			name: "empty keeps defaults",
			yaml: "",
			want: func(c plan.Config) plan.Config { return c },
		},
		{
			name: "partial override",
			yaml: "max_depth: 8\nstrict_mode: true\n",
			want: func(c plan.Config) plan.Config {
				c.MaxDepth = 8
				c.StrictMode = true

				return c
			},
		},
		{
			name: "disable pruning",
			yaml: "prune_less_specific: false\nparallelism: 3\n",
			want: func(c plan.Config) plan.Config {
				c.PruneLessSpecific = false
				c.Parallelism = 3

				return c
			},
		},
		{
			name: "out of range values fall back",
			yaml: "max_depth: -1\nparallelism: 0\n",
			want: func(c plan.Config) plan.Config { return c },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := plan.ParseConfig([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want(plan.DefaultConfig()), cfg)
		})
	}
}

func TestParseConfigInvalid(t *testing.T) {
	_, err := plan.ParseConfig([]byte("max_depth: [1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse planner config YAML")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "planner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_depth: 4\n"), 0o600))

	cfg, err := plan.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxDepth)
	assert.True(t, cfg.PruneLessSpecific)

	_, err = plan.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithConfigAppliesDefaults(t *testing.T) {
	m := newModel(t)

	p := plan.NewPlanner(m.g, nil, plan.WithConfig(plan.Config{}))

	assert.Equal(t, plan.DefaultMaxDepth, p.Config().MaxDepth)
	assert.Equal(t, runtime.GOMAXPROCS(0), p.Config().Parallelism)
	assert.False(t, p.Config().PruneLessSpecific)
}
