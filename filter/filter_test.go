package filter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Run("valid expression", func(t *testing.T) {
		f, err := Compile("teamNumber > 100")
		require.NoError(t, err)
		assert.Equal(t, "teamNumber > 100", f.Expression())
	})

	t.Run("empty expression", func(t *testing.T) {
		_, err := Compile("   ")
		require.Error(t, err)

		var compErr *CompilationError
		require.ErrorAs(t, err, &compErr)
		assert.Equal(t, "empty expression", compErr.Reason)
	})

	t.Run("non-boolean expression", func(t *testing.T) {
		_, err := Compile("1 + 2")
		require.Error(t, err)

		var compErr *CompilationError
		require.ErrorAs(t, err, &compErr)
	})
}

func TestMatch(t *testing.T) {
	f, err := Compile(`teamNumber > 100 && nameShort startsWith "Robo"`)
	require.NoError(t, err)

	match, err := f.Match(map[string]any{"teamNumber": 12345, "nameShort": "RoboRaiders"})
	require.NoError(t, err)
	assert.True(t, match)

	match, err = f.Match(map[string]any{"teamNumber": 50, "nameShort": "RoboRaiders"})
	require.NoError(t, err)
	assert.False(t, match)
}

func TestApplyTopLevelArray(t *testing.T) {
	f, err := Compile("teamNumber > 100")
	require.NoError(t, err)

	raw := json.RawMessage(`[{"teamNumber":50},{"teamNumber":12345}]`)
	filtered, err := f.Apply(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"teamNumber":12345}]`, string(filtered))
}

func TestApplyEnvelopeObject(t *testing.T) {
	f, err := Compile(`state == "CA"`)
	require.NoError(t, err)

	raw := json.RawMessage(`{
		"teams": [{"teamNumber":1,"state":"CA"},{"teamNumber":2,"state":"TX"}],
		"teamCountTotal": 2
	}`)

	filtered, err := f.Apply(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"teams": [{"teamNumber":1,"state":"CA"}],
		"teamCountTotal": 2
	}`, string(filtered))
}

func TestApplyKeepsNonObjectRows(t *testing.T) {
	f, err := Compile("true")
	require.NoError(t, err)

	raw := json.RawMessage(`[1, 2, 3]`)
	filtered, err := f.Apply(raw)
	require.NoError(t, err)
	assert.JSONEq(t, `[1, 2, 3]`, string(filtered))
}

func TestApplyScalarPassesThrough(t *testing.T) {
	f, err := Compile("true")
	require.NoError(t, err)

	raw := json.RawMessage(`"just a string"`)
	filtered, err := f.Apply(raw)
	require.NoError(t, err)
	assert.Equal(t, string(raw), string(filtered))
}
