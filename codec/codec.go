// Package codec maps the type tags used in test vector files ("int",
// "list<string>", and so on) to the parse and serialize capabilities the
// harness needs for each supported value type.
//
// Primitive fields are plain literals; container fields are JSON. Container
// parsing keeps JSON numbers as their exact source text (json.Number) so
// that integers beyond float64 precision parse exactly or fail, and the
// decoded tree is coerced element-wise to the concrete Go type for the tag,
// so arbitrarily nested lists come for free. Serialization builds an
// ldvalue.Value tree, with integer elements embedded as raw JSON to keep
// them exact.
package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Codec converts between the string encoding used in vector file fields and
// one concrete Go type. Instances are shared and immutable; get one from
// ForTag or ForType.
type Codec struct {
	// Tag is the canonical type tag, e.g. "int" or "list<list<string>>".
	Tag string
	// GoType is the Go type this codec produces and consumes.
	GoType reflect.Type

	parse     func(field string) (interface{}, error)
	serialize func(v interface{}) string
	fromJSON  func(v interface{}) (interface{}, error)
	toValue   func(v interface{}) ldvalue.Value
}

// Parse converts a raw vector file field into the codec's Go type. The
// returned error is always a *DeserializationError.
func (c *Codec) Parse(field string) (interface{}, error) {
	return c.parse(field)
}

// Serialize renders a value of the codec's Go type in the same form a vector
// file field would use. It is used for diagnostics and round-tripping.
func (c *Codec) Serialize(v interface{}) string {
	return c.serialize(v)
}

// parseJSON decodes one JSON value, keeping numbers as their exact source
// text rather than float64.
func parseJSON(field string) (interface{}, error) {
	dec := json.NewDecoder(strings.NewReader(field))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var trailing interface{}
	if err := dec.Decode(&trailing); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON value")
	}
	return v, nil
}

func jsonText(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

// unquoteJSONString reports whether field is a complete JSON string
// literal, returning its value if so. The string codec uses it on both
// sides so that Parse and Serialize reinterpret exactly the same forms.
func unquoteJSONString(field string) (string, bool) {
	if len(field) < 2 || !strings.HasPrefix(field, `"`) || !strings.HasSuffix(field, `"`) {
		return "", false
	}
	var s string
	if err := json.Unmarshal([]byte(field), &s); err != nil {
		return "", false
	}
	return s, true
}

var primitives = map[string]*Codec{}

func register(c *Codec) *Codec {
	primitives[c.Tag] = c
	return c
}

var boolCodec = register(&Codec{
	Tag:    "bool",
	GoType: reflect.TypeOf(false),
	parse: func(field string) (interface{}, error) {
		b, err := strconv.ParseBool(field)
		if err != nil {
			return nil, &DeserializationError{Tag: "bool", Field: field}
		}
		return b, nil
	},
	serialize: func(v interface{}) string { return strconv.FormatBool(v.(bool)) },
	fromJSON: func(v interface{}) (interface{}, error) {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%s is not a bool", jsonText(v))
		}
		return b, nil
	},
	toValue: func(v interface{}) ldvalue.Value { return ldvalue.Bool(v.(bool)) },
})

var intCodec = register(&Codec{
	Tag:    "int",
	GoType: reflect.TypeOf(int(0)),
	parse: func(field string) (interface{}, error) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, &DeserializationError{Tag: "int", Field: field}
		}
		return n, nil
	},
	serialize: func(v interface{}) string { return strconv.Itoa(v.(int)) },
	fromJSON: func(v interface{}) (interface{}, error) {
		num, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%s is not an int", jsonText(v))
		}
		n, err := strconv.ParseInt(num.String(), 10, strconv.IntSize)
		if err != nil {
			return nil, fmt.Errorf("%s is not an int", num)
		}
		return int(n), nil
	},
	toValue: func(v interface{}) ldvalue.Value {
		return ldvalue.Raw(json.RawMessage(strconv.Itoa(v.(int))))
	},
})

var longCodec = register(&Codec{
	Tag:    "long",
	GoType: reflect.TypeOf(int64(0)),
	parse: func(field string) (interface{}, error) {
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, &DeserializationError{Tag: "long", Field: field}
		}
		return n, nil
	},
	serialize: func(v interface{}) string { return strconv.FormatInt(v.(int64), 10) },
	fromJSON: func(v interface{}) (interface{}, error) {
		num, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%s is not a long", jsonText(v))
		}
		n, err := strconv.ParseInt(num.String(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s is not a long", num)
		}
		return n, nil
	},
	toValue: func(v interface{}) ldvalue.Value {
		return ldvalue.Raw(json.RawMessage(strconv.FormatInt(v.(int64), 10)))
	},
})

var floatCodec = register(&Codec{
	Tag:    "float",
	GoType: reflect.TypeOf(float64(0)),
	parse: func(field string) (interface{}, error) {
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, &DeserializationError{Tag: "float", Field: field}
		}
		return f, nil
	},
	serialize: func(v interface{}) string { return strconv.FormatFloat(v.(float64), 'g', -1, 64) },
	fromJSON: func(v interface{}) (interface{}, error) {
		num, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("%s is not a float", jsonText(v))
		}
		f, err := num.Float64()
		if err != nil {
			return nil, fmt.Errorf("%s is not a float", num)
		}
		return f, nil
	},
	toValue: func(v interface{}) ldvalue.Value {
		return ldvalue.Raw(json.RawMessage(strconv.FormatFloat(v.(float64), 'g', -1, 64)))
	},
})

var stringCodec = register(&Codec{
	Tag:    "string",
	GoType: reflect.TypeOf(""),
	parse: func(field string) (interface{}, error) {
		// A top-level string field is normally taken verbatim, but a
		// JSON-quoted form is also accepted so that container-style
		// serializations round-trip.
		if s, ok := unquoteJSONString(field); ok {
			return s, nil
		}
		return field, nil
	},
	serialize: func(v interface{}) string {
		// Values that Parse would reinterpret as a quoted form must be
		// quoted themselves, or they would not survive a round trip.
		s := v.(string)
		if _, ok := unquoteJSONString(s); ok {
			data, _ := json.Marshal(s)
			return string(data)
		}
		return s
	},
	fromJSON: func(v interface{}) (interface{}, error) {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%s is not a string", jsonText(v))
		}
		return s, nil
	},
	toValue: func(v interface{}) ldvalue.Value { return ldvalue.String(v.(string)) },
})

func listCodec(elem *Codec) *Codec {
	c := &Codec{
		Tag:    "list<" + elem.Tag + ">",
		GoType: reflect.SliceOf(elem.GoType),
	}
	c.fromJSON = func(v interface{}) (interface{}, error) {
		arr, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s is not a list", jsonText(v))
		}
		out := reflect.MakeSlice(c.GoType, len(arr), len(arr))
		for i, ev := range arr {
			parsed, err := elem.fromJSON(ev)
			if err != nil {
				return nil, fmt.Errorf("element %d: %s", i, err)
			}
			out.Index(i).Set(reflect.ValueOf(parsed))
		}
		return out.Interface(), nil
	}
	c.toValue = func(v interface{}) ldvalue.Value {
		rv := reflect.ValueOf(v)
		b := ldvalue.ArrayBuild()
		for i := 0; i < rv.Len(); i++ {
			b.Add(elem.toValue(rv.Index(i).Interface()))
		}
		return b.Build()
	}
	c.parse = func(field string) (interface{}, error) {
		tree, err := parseJSON(field)
		if err != nil {
			return nil, &DeserializationError{Tag: c.Tag, Field: field}
		}
		out, err := c.fromJSON(tree)
		if err != nil {
			return nil, &DeserializationError{Tag: c.Tag, Field: field, Err: err}
		}
		return out, nil
	}
	c.serialize = func(v interface{}) string { return c.toValue(v).JSONString() }
	return c
}

// ForTag resolves a type tag to its codec. List tags nest to any depth.
func ForTag(tag string) (*Codec, error) {
	tag = strings.TrimSpace(tag)
	if c, ok := primitives[tag]; ok {
		return c, nil
	}
	if inner, ok := listElementTag(tag); ok {
		elem, err := ForTag(inner)
		if err != nil {
			return nil, &UnsupportedTypeError{Tag: tag}
		}
		return listCodec(elem), nil
	}
	return nil, &UnsupportedTypeError{Tag: tag}
}

func listElementTag(tag string) (string, bool) {
	if strings.HasPrefix(tag, "list<") && strings.HasSuffix(tag, ">") {
		return tag[len("list<") : len(tag)-1], true
	}
	return "", false
}

// ForType resolves a Go type to its codec, deriving the canonical tag. This
// is how the harness turns a reflected function signature into type tags.
// Named types are rejected even when their underlying type is supported,
// since decoded values must match the function's parameter types exactly.
func ForType(t reflect.Type) (*Codec, error) {
	var c *Codec
	switch t.Kind() {
	case reflect.Bool:
		c = boolCodec
	case reflect.Int:
		c = intCodec
	case reflect.Int64:
		c = longCodec
	case reflect.Float64:
		c = floatCodec
	case reflect.String:
		c = stringCodec
	case reflect.Slice:
		elem, err := ForType(t.Elem())
		if err != nil {
			return nil, &UnsupportedTypeError{Type: t}
		}
		c = listCodec(elem)
	default:
		return nil, &UnsupportedTypeError{Type: t}
	}
	if c.GoType != t {
		return nil, &UnsupportedTypeError{Type: t}
	}
	return c, nil
}
