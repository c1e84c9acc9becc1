package codec

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/dailies/pkg/types"
)

func TestExport(t *testing.T) {
	t.Run("pretty prints with two space indent", func(t *testing.T) {
		c := types.Collection{{ID: "1", Name: "Sam", URL: "https://www.cluesbysam.com/"}}
		got, err := Export(c)
		require.NoError(t, err)
		want := "[\n  {\n    \"id\": \"1\",\n    \"name\": \"Sam\",\n    \"url\": \"https://www.cluesbysam.com/\"\n  }\n]"
		assert.Equal(t, want, got)
	})

	t.Run("does not escape HTML characters", func(t *testing.T) {
		c := types.Collection{{ID: "1", Name: "<A&B>", URL: "https://x.test/?a=1&b=2"}}
		got, err := Export(c)
		require.NoError(t, err)
		assert.Contains(t, got, "https://x.test/?a=1&b=2")
		assert.Contains(t, got, "<A&B>")
	})

	t.Run("nil collection exports an empty array", func(t *testing.T) {
		got, err := Export(nil)
		require.NoError(t, err)
		assert.Equal(t, "[]", got)
	})
}

func TestEncode(t *testing.T) {
	got, err := Encode(types.Collection{{ID: "1", Name: "N", URL: "u"}})
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1","name":"N","url":"u"}]`, string(got))
}

func TestImport_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr error
		wantMsg string
	}{
		{"empty", "", types.ErrParse, "empty input"},
		{"whitespace only", "  \n\t ", types.ErrParse, "empty input"},
		{"not json", "links please", types.ErrParse, "malformed"},
		{"truncated", `[{"id":"1"`, types.ErrParse, "malformed"},
		{"trailing garbage", `[] []`, types.ErrParse, "malformed"},
		{"object instead of list", `{"id":"1","name":"a","url":"b"}`, types.ErrShape, "an object"},
		{"string", `"hello"`, types.ErrShape, "a string"},
		{"null", `null`, types.ErrShape, "null"},
		{"number", `42`, types.ErrShape, "a number"},
		{"missing id", `[{"name":"a","url":"b"}]`, types.ErrRecord, "record 0: missing id"},
		{"empty name", `[{"id":"1","name":"","url":"b"}]`, types.ErrRecord, "record 0: missing name"},
		{"null url", `[{"id":"1","name":"a","url":null}]`, types.ErrRecord, "record 0: missing url"},
		{"numeric id", `[{"id":0,"name":"a","url":"b"}]`, types.ErrRecord, "missing id"},
		{"numeric nonzero id", `[{"id":7,"name":"a","url":"b"}]`, types.ErrRecord, "missing id"},
		{"second record bad", `[{"id":"1","name":"a","url":"b"},{"id":"2","name":"c"}]`, types.ErrRecord, "record 1: missing url"},
		{"element is null", `[null]`, types.ErrRecord, "record 0 is null"},
		{"element is string", `["x"]`, types.ErrRecord, "record 0 is a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Import(tt.text)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, types.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestImport_Accepts(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		got, err := Import("\n  [{\"id\":\"1\",\"name\":\"a\",\"url\":\"b\"}]  \n")
		require.NoError(t, err)
		assert.Equal(t, types.Collection{{ID: "1", Name: "a", URL: "b"}}, got)
	})

	t.Run("keeps duplicate ids", func(t *testing.T) {
		got, err := Import(`[{"id":"1","name":"a","url":"b"},{"id":"1","name":"c","url":"d"}]`)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "1"}, got.IDs())
	})

	t.Run("ignores unknown fields", func(t *testing.T) {
		got, err := Import(`[{"id":"1","name":"a","url":"b","color":"red"}]`)
		require.NoError(t, err)
		assert.Equal(t, types.Collection{{ID: "1", Name: "a", URL: "b"}}, got)
	})

	t.Run("empty array", func(t *testing.T) {
		got, err := Import(`[]`)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("whitespace-only field values are not blank", func(t *testing.T) {
		got, err := Import(`[{"id":" ","name":"a","url":"b"}]`)
		require.NoError(t, err)
		assert.Equal(t, " ", got[0].ID)
	})
}

func TestDecode(t *testing.T) {
	got, err := Decode([]byte(`[{"id":"1","name":"a","url":"b"}]` + "\n"))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = Decode([]byte("{not json"))
	assert.ErrorIs(t, err, types.ErrParse)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(types.DefaultLinks()))
	assert.NoError(t, Validate(nil))

	err := Validate(types.Collection{{ID: "1", Name: "a", URL: "b"}, {ID: "2", Name: "", URL: "c"}})
	assert.ErrorIs(t, err, types.ErrRecord)
	assert.Contains(t, err.Error(), "record 1: missing name")

	assert.ErrorIs(t, Validate(types.Collection{{Name: "a", URL: "b"}}), types.ErrRecord)
	assert.ErrorIs(t, Validate(types.Collection{{ID: "1", Name: "a"}}), types.ErrRecord)

	err = Validate(types.Collection{{ID: "1", Name: "a", URL: "b"}, {ID: "2", Name: "bad\xffname", URL: "c"}})
	assert.ErrorIs(t, err, types.ErrRecord)
	assert.Contains(t, err.Error(), "record 1: name is not valid UTF-8")
	assert.ErrorIs(t, Validate(types.Collection{{ID: "\xc3", Name: "a", URL: "b"}}), types.ErrRecord)
}

func TestImport_InvalidUTF8BecomesReplacementChar(t *testing.T) {
	got, err := Import("[{\"id\":\"1\",\"name\":\"bad\xffname\",\"url\":\"u\"}]")
	require.NoError(t, err)
	assert.Equal(t, "bad\uFFFDname", got[0].Name)
	assert.NoError(t, Validate(got), "decoded records always pass Validate")
}

func TestRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	linkGen := gen.Struct(reflect.TypeOf(types.Link{}), map[string]gopter.Gen{
		"ID":   gen.Identifier(),
		"Name": gen.AlphaString().Map(func(s string) string { return "n" + s }),
		"URL":  gen.Identifier().Map(func(s string) string { return "https://" + s + ".test/?q=<x>&y=\"z\"" }),
	})

	properties.Property("import(export(c)) == c", prop.ForAll(
		func(links []types.Link) bool {
			c := types.Collection(links)
			text, err := Export(c)
			if err != nil {
				return false
			}
			got, err := Import(text)
			if err != nil || len(got) != len(c) {
				return false
			}
			for i := range c {
				if got[i] != c[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(linkGen),
	))

	properties.Property("decode(encode(c)) == c", prop.ForAll(
		func(links []types.Link) bool {
			c := types.Collection(links)
			data, err := Encode(c)
			if err != nil || strings.Contains(string(data), "\n") {
				return false
			}
			got, err := Decode(data)
			if err != nil || len(got) != len(c) {
				return false
			}
			for i := range c {
				if got[i] != c[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(linkGen),
	))

	properties.TestingRun(t)
}
