package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResult(t *testing.T) {
	raw := json.RawMessage(`{"teams":[{"teamNumber":50},{"teamNumber":12345}],"teamCountTotal":2}`)

	t.Run("indents without filter", func(t *testing.T) {
		out, err := renderResult(raw, "")
		require.NoError(t, err)
		assert.JSONEq(t, string(raw), out)
		assert.Contains(t, out, "\n  \"teams\"")
	})

	t.Run("applies filter expression", func(t *testing.T) {
		out, err := renderResult(raw, "teamNumber > 100")
		require.NoError(t, err)
		assert.JSONEq(t, `{"teams":[{"teamNumber":12345}],"teamCountTotal":2}`, out)
	})

	t.Run("rejects invalid filter expression", func(t *testing.T) {
		_, err := renderResult(raw, "teamNumber >")
		require.Error(t, err)
	})

	t.Run("non-JSON body passes through verbatim", func(t *testing.T) {
		out, err := renderResult(json.RawMessage("not json"), "")
		require.NoError(t, err)
		assert.Equal(t, "not json", out)
	})
}

func TestCommandWiring(t *testing.T) {
	want := []string{
		"teams", "events", "matches", "rankings", "scores",
		"schedule", "hybrid", "awards", "award-list",
		"alliances", "selections", "season", "seasons",
		"index", "snapshot", "version",
	}

	registered := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		assert.True(t, registered[name], "command %q should be registered", name)
	}
}

func TestPositionalArgValidation(t *testing.T) {
	// Commands with required positionals must reject wrong arities
	// before PersistentPreRunE ever builds a client.
	for _, cmd := range []struct {
		name string
		args []string
	}{
		{"matches", nil},
		{"rankings", nil},
		{"scores", []string{"USACMP"}},
		{"hybrid", []string{"USACMP"}},
		{"snapshot", nil},
	} {
		t.Run(cmd.name, func(t *testing.T) {
			c, _, err := rootCmd.Find([]string{cmd.name})
			require.NoError(t, err)
			assert.Error(t, c.Args(c, cmd.args))
		})
	}
}
