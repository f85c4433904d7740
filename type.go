// File: cascade/type.go
package cascade

import (
	"fmt"
	"reflect"
	"strconv"
)

// GetString retrieves a scalar attribute as a string, converting common
// types when the stored value isn't already one.
func (c *Configuration) GetString(name string) (string, error) {
	val, ok := c.Get(name)
	if !ok {
		return "", configErrorf("unknown attribute %q", name)
	}
	if val == nil {
		return "", nil
	}

	if s, isString := val.(string); isString {
		return s, nil
	}

	switch v := val.(type) {
	case fmt.Stringer:
		return v.String(), nil
	case []byte:
		return string(v), nil
	case bool:
		return strconv.FormatBool(v), nil
	case int, int8, int16, int32, int64:
		return strconv.FormatInt(reflect.ValueOf(val).Int(), 10), nil
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for attribute %s", val, name)
	}
}

// GetBool retrieves a scalar attribute as a bool. Parsable strings and
// numeric values (0 = false) convert.
func (c *Configuration) GetBool(name string) (bool, error) {
	val, ok := c.Get(name)
	if !ok {
		return false, configErrorf("unknown attribute %q", name)
	}
	if val == nil {
		return false, nil
	}

	v := reflect.ValueOf(val)
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		b, err := strconv.ParseBool(v.String())
		if err != nil {
			return false, fmt.Errorf("cannot convert %q to bool for attribute %s: %w", v.String(), name, err)
		}
		return b, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() != 0, nil
	case reflect.Float32, reflect.Float64:
		return v.Float() != 0, nil
	}

	return false, fmt.Errorf("cannot convert type %T to bool for attribute %s", val, name)
}

// GetStrings retrieves a list attribute with every entry rendered as a
// string, in inheritance order.
func (c *Configuration) GetStrings(name string) ([]string, error) {
	spec, ok := schema[name]
	if !ok {
		return nil, configErrorf("unknown attribute %q", name)
	}
	if spec.kind != attrList {
		return nil, configErrorf("attribute %q is not list-valued", name)
	}

	values := c.listValue(name, spec)
	out := make([]string, 0, len(values))
	for _, v := range values {
		if s, isString := v.(string); isString {
			out = append(out, s)
			continue
		}
		out = append(out, fmt.Sprintf("%v", v))
	}
	return out, nil
}
