package validator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaims(t *testing.T) {
	source := map[string]any{
		"sub":   "johnd",
		"roles": []any{"USER"},
		"profile": map[string]any{
			"firstname": "John",
		},
	}
	claims := NewClaims(source)

	t.Run("it exposes the subject", func(t *testing.T) {
		assert.Equal(t, "johnd", claims.Subject())
		assert.Equal(t, "", Claims{}.Subject())
		assert.Equal(t, "", NewClaims(map[string]any{"sub": 42}).Subject())
	})

	t.Run("it is not affected by changes to the source map", func(t *testing.T) {
		src := map[string]any{"sub": "johnd"}
		c := NewClaims(src)
		src["sub"] = "janed"
		assert.Equal(t, "johnd", c.Subject())
	})

	t.Run("it hands out copies", func(t *testing.T) {
		m := claims.Map()
		m["sub"] = "janed"
		m["roles"].([]any)[0] = "ADMIN"
		m["profile"].(map[string]any)["firstname"] = "Jane"

		roles, ok := claims.Get("roles")
		require.True(t, ok)
		assert.Equal(t, []any{"USER"}, roles)

		profile, _ := claims.Get("profile")
		assert.Equal(t, map[string]any{"firstname": "John"}, profile)
		assert.Equal(t, "johnd", claims.Subject())
		assert.Equal(t, 3, claims.Len())
	})

	t.Run("it reports missing claims", func(t *testing.T) {
		_, ok := claims.Get("missing")
		assert.False(t, ok)
	})

	t.Run("it marshals to a JSON object", func(t *testing.T) {
		b, err := json.Marshal(claims)
		require.NoError(t, err)
		assert.JSONEq(t, `{"sub":"johnd","roles":["USER"],"profile":{"firstname":"John"}}`, string(b))

		b, err = json.Marshal(Claims{})
		require.NoError(t, err)
		assert.Equal(t, "{}", string(b))
	})
}
