package sortedmap_test

import (
	"testing"

	"github.com/amp-labs/amp-sortedmap/hashing"
	"github.com/amp-labs/amp-sortedmap/sortedmap"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	m := sortedmap.NewFromPairs([]sortedmap.Pair[int]{
		{Key: "AWS", Value: 1},
		{Key: "Action", Value: 2},
		{Key: "Auckland", Value: 4},
	})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Action":2,"Auckland":4,"AWS":1}`, string(data))
	assert.Equal(t, `{"Action":2,"Auckland":4,"AWS":1}`, string(data))

	empty, err := json.Marshal(sortedmap.New[int](nil))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(empty))
}

func TestMarshalJSON_NestedValues(t *testing.T) {
	t.Parallel()

	m := sortedmap.New(map[string][]string{"b": {"x"}, "a": nil, "c\"q": {}})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"a":null,"b":["x"],"c\"q":[]}`, string(data))
}

func TestUnmarshalJSON(t *testing.T) {
	t.Parallel()

	m := sortedmap.New[int](nil, sortedmap.WithIgnoreCase(false))
	m.Set("keep", 0)

	require.NoError(t, json.Unmarshal([]byte(`{"b":2,"B":3,"a":1}`), m))

	assert.Equal(t, []string{"B", "a", "b", "keep"}, m.Keys())
	assert.False(t, m.IgnoreCase())

	require.Error(t, json.Unmarshal([]byte(`{"a":"not a number"}`), m))
}

func TestYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	m := sortedmap.New(map[string]string{"zulu": "z", "Alpha": "a", "mike": "m"})

	data, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "Alpha: a\nmike: m\nzulu: z\n", string(data))

	decoded := sortedmap.New[string](nil)
	require.NoError(t, yaml.Unmarshal(data, decoded))
	assert.Equal(t, m.ToMap(), decoded.ToMap())
}

func TestUnmarshalYAML_DocumentOrderWins(t *testing.T) {
	t.Parallel()

	doc := `
America: 5
AWS: 1
america: 3
`

	m := sortedmap.New[int](nil)
	require.NoError(t, yaml.Unmarshal([]byte(doc), m))

	assert.Equal(t, []string{"america", "AWS"}, m.Keys())
	assert.Equal(t, []int{3, 1}, m.Values())
}

func TestUnmarshalYAML_Errors(t *testing.T) {
	t.Parallel()

	m := sortedmap.New[int](nil)

	err := yaml.Unmarshal([]byte("- a\n- b\n"), m)
	require.ErrorIs(t, err, sortedmap.ErrNotMapping)

	err = yaml.Unmarshal([]byte("a: [1, 2]\n"), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `key "a"`)
}

func TestDigest(t *testing.T) {
	t.Parallel()

	ci := sortedmap.New(map[string]int{"b": 1, "a": 2})
	other := sortedmap.New(map[string]string{"a": "x", "b": "y"})
	different := sortedmap.New(map[string]int{"ab": 1})

	for name, fn := range map[string]hashing.HashFunc{
		"sha256": hashing.Sha256,
		"xxh3":   hashing.XXH3,
		"xxh64":  hashing.XXH64,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			first, err := ci.Digest(fn)
			require.NoError(t, err)

			second, err := other.Digest(fn)
			require.NoError(t, err)

			third, err := different.Digest(fn)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.NotEqual(t, first, third)
		})
	}

	t.Run("spelling matters", func(t *testing.T) {
		t.Parallel()

		upper, err := sortedmap.New(map[string]int{"A": 1}).Digest(hashing.Sha256)
		require.NoError(t, err)

		lower, err := sortedmap.New(map[string]int{"a": 1}).Digest(hashing.Sha256)
		require.NoError(t, err)

		assert.NotEqual(t, upper, lower)
	})
}
