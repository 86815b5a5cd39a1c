package graphql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/vektah/gqlparser/v2/ast"
)

const typenameField = "__typename"

// collectedField is a response key with every field merged under it
type collectedField struct {
	key          string
	field        *ast.Field
	selectionSet ast.SelectionSet
}

// collectFields flattens fragments of set into response keys in query order.
// Fields sharing a response key have their selections merged.
func (e *execution) collectFields(set ast.SelectionSet, typeName string) []*collectedField {
	var out []*collectedField
	index := map[string]*collectedField{}

	var walk func(set ast.SelectionSet)
	walk = func(set ast.SelectionSet) {
		for _, sel := range set {
			switch s := sel.(type) {
			case *ast.Field:
				if e.skipped(s.Directives) {
					continue
				}
				key := s.Alias
				if key == "" {
					key = s.Name
				}
				if cf, ok := index[key]; ok {
					cf.selectionSet = append(cf.selectionSet, s.SelectionSet...)
					continue
				}
				cf := &collectedField{key: key, field: s, selectionSet: append(ast.SelectionSet{}, s.SelectionSet...)}
				index[key] = cf
				out = append(out, cf)
			case *ast.InlineFragment:
				if e.skipped(s.Directives) || (s.TypeCondition != "" && s.TypeCondition != typeName) {
					continue
				}
				walk(s.SelectionSet)
			case *ast.FragmentSpread:
				if e.skipped(s.Directives) {
					continue
				}
				def := s.Definition
				if def == nil {
					def = e.doc.Fragments.ForName(s.Name)
				}
				if def == nil || def.TypeCondition != typeName {
					continue
				}
				walk(def.SelectionSet)
			}
		}
	}
	walk(set)

	return out
}

// skipped applies @skip and @include
func (e *execution) skipped(directives ast.DirectiveList) bool {
	if d := directives.ForName("skip"); d != nil {
		if skip, _ := d.ArgumentMap(e.vars)["if"].(bool); skip {
			return true
		}
	}
	if d := directives.ForName("include"); d != nil {
		if include, _ := d.ArgumentMap(e.vars)["if"].(bool); !include {
			return true
		}
	}
	return false
}

// project keeps the selected fields of a decoded JSON value
func (e *execution) project(value interface{}, def *ast.FieldDefinition, set ast.SelectionSet) interface{} {
	if len(set) == 0 || value == nil {
		return value
	}

	switch v := value.(type) {
	case []interface{}:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			out = append(out, e.project(item, def, set))
		}
		return out
	case map[string]interface{}:
		typeName := namedType(def.Type)
		obj := newObject()
		for _, cf := range e.collectFields(set, typeName) {
			if cf.field.Name == typenameField {
				obj.set(cf.key, typeName)
				continue
			}
			obj.set(cf.key, e.project(v[jsonName(cf.field.Name)], cf.field.Definition, cf.selectionSet))
		}
		return obj
	}
	return value
}

func namedType(t *ast.Type) string {
	for t != nil && t.NamedType == "" {
		t = t.Elem
	}
	if t == nil {
		return ""
	}
	return t.NamedType
}

// jsonName maps a schema field name to the DTO JSON key, e.g. chainTokenId to chain_token_id
func jsonName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// toJSONValue converts a DTO to its decoded JSON form. Numbers stay exact.
func toJSONValue(v interface{}) (interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	var out interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return out, nil
}

// object is a JSON object that keeps the order of the query
type object struct {
	keys   []string
	values map[string]interface{}
}

func newObject() *object {
	return &object{values: map[string]interface{}{}}
}

func (o *object) set(key string, value interface{}) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// MarshalJSON writes the fields in query order
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
