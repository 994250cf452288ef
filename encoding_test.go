package newstr_test

import (
	"database/sql/driver"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/newstr"
)

type jsonDoc struct {
	Name newstr.Str[checkedIdentifier] `json:"name"`
}

func TestJSONRoundTrip(t *testing.T) {
	t.Parallel()

	doc := jsonDoc{Name: newstr.MustParse[checkedIdentifier]("hello_world")}

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"hello_world"}`, string(data))

	var decoded jsonDoc
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, doc, decoded)
}

func TestJSONDecodeValidates(t *testing.T) {
	t.Parallel()

	var decoded jsonDoc
	err := json.Unmarshal([]byte(`{"name":"not valid!"}`), &decoded)
	require.ErrorIs(t, err, newstr.ErrInvalid)
}

func TestJSONDecodeNormalizes(t *testing.T) {
	t.Parallel()

	var doc struct {
		Title newstr.Str[normalized] `json:"title"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Hello World"}`), &doc))
	assert.Equal(t, "helloworld", doc.Title.String())
}

type yamlDoc struct {
	Name newstr.Str[checkedIdentifier] `yaml:"name"`
}

func TestYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	doc := yamlDoc{Name: newstr.MustParse[checkedIdentifier]("hello_world")}

	data, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "name: hello_world\n", string(data))

	var decoded yamlDoc
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, doc, decoded)
}

func TestYAMLDecodeValidates(t *testing.T) {
	t.Parallel()

	var decoded yamlDoc
	err := yaml.Unmarshal([]byte("name: 'not valid!'\n"), &decoded)
	require.ErrorIs(t, err, newstr.ErrInvalid)
}

func TestSQLValue(t *testing.T) {
	t.Parallel()

	v := newstr.MustParse[checkedIdentifier]("hello_world")
	dv, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, driver.Value("hello_world"), dv)
}

func TestSQLScan(t *testing.T) {
	t.Parallel()

	t.Run("string source", func(t *testing.T) {
		t.Parallel()
		var v newstr.Str[checkedIdentifier]
		require.NoError(t, v.Scan("hello_world"))
		assert.Equal(t, "hello_world", v.String())
	})

	t.Run("byte slice source", func(t *testing.T) {
		t.Parallel()
		var v newstr.Str[checkedIdentifier]
		require.NoError(t, v.Scan([]byte("hello_world")))
		assert.Equal(t, "hello_world", v.String())
	})

	t.Run("invalid payload", func(t *testing.T) {
		t.Parallel()
		var v newstr.Str[checkedIdentifier]
		require.ErrorIs(t, v.Scan("not valid!"), newstr.ErrInvalid)
	})

	t.Run("unsupported source type", func(t *testing.T) {
		t.Parallel()
		var v newstr.Str[checkedIdentifier]
		assert.Error(t, v.Scan(int64(42)))
	})

	t.Run("null rejected", func(t *testing.T) {
		t.Parallel()
		var v newstr.Str[checkedIdentifier]
		assert.Error(t, v.Scan(nil))
	})
}
