package debugui

import "reflect"

type fieldInfo struct {
	Name  string
	Index int
	Kind  reflect.Kind
}

// fieldCache memoizes the exported fields of struct types shown in the inspector.
type fieldCache map[reflect.Type][]fieldInfo

func (c fieldCache) fields(t reflect.Type) []fieldInfo {
	if cached, ok := c[t]; ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, fieldInfo{
				Name:  field.Name,
				Index: i,
				Kind:  field.Type.Kind(),
			})
		}
	}

	c[t] = fields
	return fields
}
