package codec

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForTagResolvesPrimitives(t *testing.T) {
	for tag, goType := range map[string]reflect.Type{
		"bool":   reflect.TypeOf(false),
		"int":    reflect.TypeOf(int(0)),
		"long":   reflect.TypeOf(int64(0)),
		"float":  reflect.TypeOf(float64(0)),
		"string": reflect.TypeOf(""),
	} {
		c, err := ForTag(tag)
		require.NoError(t, err, tag)
		assert.Equal(t, tag, c.Tag)
		assert.Equal(t, goType, c.GoType)
	}
}

func TestForTagResolvesNestedLists(t *testing.T) {
	c, err := ForTag("list<list<string>>")
	require.NoError(t, err)
	assert.Equal(t, "list<list<string>>", c.Tag)
	assert.Equal(t, reflect.TypeOf([][]string{}), c.GoType)
}

func TestForTagRejectsUnknownTags(t *testing.T) {
	for _, tag := range []string{"", "complex", "list<complex>", "list<int", "map<int,int>"} {
		_, err := ForTag(tag)
		var unsupported *UnsupportedTypeError
		require.True(t, errors.As(err, &unsupported), "tag %q", tag)
	}
}

func TestForTypeDerivesCanonicalTags(t *testing.T) {
	c, err := ForType(reflect.TypeOf([][]int{}))
	require.NoError(t, err)
	assert.Equal(t, "list<list<int>>", c.Tag)
}

type customInt int

func TestForTypeRejectsUnsupportedTypes(t *testing.T) {
	for _, v := range []interface{}{customInt(0), int32(0), map[string]int{}, struct{}{}, []customInt{}} {
		_, err := ForType(reflect.TypeOf(v))
		var unsupported *UnsupportedTypeError
		require.True(t, errors.As(err, &unsupported), "type %T", v)
	}
}

func TestParseAndSerializeRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		tag   string
		field string
		want  interface{}
	}{
		{"bool", "true", true},
		{"int", "-42", -42},
		{"long", "9000000000", int64(9000000000)},
		{"float", "2.5", 2.5},
		{"string", "hello world", "hello world"},
		{"list<int>", "[1, 2, 3]", []int{1, 2, 3}},
		{"list<string>", `["a", "b"]`, []string{"a", "b"}},
		{"list<bool>", "[true, false]", []bool{true, false}},
		{"list<long>", "[1, 2]", []int64{1, 2}},
		{"list<long>", "[9223372036854775807, -9223372036854775808]",
			[]int64{9223372036854775807, -9223372036854775808}},
		{"list<float>", "[0.5, 1.5]", []float64{0.5, 1.5}},
		{"list<list<int>>", "[[1], [], [2, 3]]", [][]int{{1}, {}, {2, 3}}},
	} {
		c, err := ForTag(tc.tag)
		require.NoError(t, err, tc.tag)

		v, err := c.Parse(tc.field)
		require.NoError(t, err, tc.tag)
		assert.Equal(t, tc.want, v, tc.tag)

		reparsed, err := c.Parse(c.Serialize(v))
		require.NoError(t, err, tc.tag)
		assert.Equal(t, v, reparsed, tc.tag)
	}
}

// Integers beyond float64's 53-bit mantissa must come through container
// parsing untouched; going via a float64 representation would silently
// alter them.
func TestParseListKeepsLargeIntegersExact(t *testing.T) {
	c, err := ForTag("list<long>")
	require.NoError(t, err)

	v, err := c.Parse("[9007199254740993, -9007199254740993]")
	require.NoError(t, err)
	assert.Equal(t, []int64{9007199254740993, -9007199254740993}, v)

	reparsed, err := c.Parse(c.Serialize(v))
	require.NoError(t, err)
	assert.Equal(t, v, reparsed)
}

func TestSerializeStringQuotesReinterpretedForms(t *testing.T) {
	c, err := ForTag("string")
	require.NoError(t, err)

	// A value that Parse would strip as a JSON-quoted form has to be
	// quoted on the way out.
	assert.Equal(t, `"\"hi\""`, c.Serialize(`"hi"`))
	assert.Equal(t, "plain", c.Serialize("plain"))

	for _, s := range []string{`"hi"`, `""`, `"a b"`, "plain", `"`, `"unterminated`, `"a"b"`} {
		v, err := c.Parse(c.Serialize(s))
		require.NoError(t, err, "%q", s)
		assert.Equal(t, s, v, "%q", s)
	}
}

func TestParseStringAcceptsQuotedForm(t *testing.T) {
	c, err := ForTag("string")
	require.NoError(t, err)

	v, err := c.Parse(`"hi there"`)
	require.NoError(t, err)
	assert.Equal(t, "hi there", v)

	v, err = c.Parse("plain text")
	require.NoError(t, err)
	assert.Equal(t, "plain text", v)
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct{ tag, field string }{
		{"int", "abc"},
		{"int", "2.5"},
		{"bool", "yes"},
		{"long", "12.0"},
		{"float", "x"},
		{"list<int>", "5"},
		{"list<int>", `[1, "two"]`},
		{"list<int>", "[1.5]"},
		{"list<int>", "not json"},
		{"list<int>", "[1] extra"},
		{"list<int>", "[99999999999999999999]"},
		{"list<long>", "[9223372036854775808]"},
	} {
		c, err := ForTag(tc.tag)
		require.NoError(t, err, tc.tag)

		_, err = c.Parse(tc.field)
		var deserialization *DeserializationError
		require.True(t, errors.As(err, &deserialization), "%s %q", tc.tag, tc.field)
		assert.Equal(t, tc.field, deserialization.Field)
	}
}
