package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hooklist/hooks"
)

// HookInspector shows every hook of the selected scope and lets scalar
// fields be edited in place.
type HookInspector struct {
	fields fieldCache
}

func NewHookInspector() HookInspector {
	return HookInspector{fields: make(fieldCache)}
}

func (hi *HookInspector) Render(rt *hooks.Runtime, selected hooks.ScopeId) {
	if !imgui.BeginV("Hook Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if selected == 0 {
		imgui.Text("No scope selected")
		imgui.End()
		return
	}

	scope := rt.Scope(selected)
	if scope == nil {
		imgui.Text(fmt.Sprintf("Scope %d is not mounted", selected))
		imgui.End()
		return
	}

	list := scope.Hooks()
	imgui.Text(fmt.Sprintf("Scope: %s (%d)", scope.Name(), scope.ID()))
	imgui.Text(fmt.Sprintf("Hooks: %d  Cursor: %d  Generation: %d", list.Len(), list.Position(), list.Generation()))
	imgui.Separator()

	for pos, value := range list.All() {
		val := reflect.ValueOf(value).Elem()
		if imgui.TreeNodeStr(fmt.Sprintf("#%d %s", pos, val.Type())) {
			hi.renderValue("value", val)
			imgui.TreePop()
		}
	}

	imgui.End()
}

func (hi *HookInspector) renderValue(name string, val reflect.Value) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetInt(int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 && val.CanSet() {
			val.SetUint(uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) && val.CanSet() {
			val.SetFloat(float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) && val.CanSet() {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) && val.CanSet() {
			val.SetString(v)
		}

	case reflect.Pointer:
		if val.IsNil() {
			imgui.Text(fmt.Sprintf("%s: nil", name))
			return
		}
		hi.renderValue(name, val.Elem())

	case reflect.Struct:
		fields := hi.fields.fields(val.Type())
		if len(fields) == 0 {
			imgui.Text(fmt.Sprintf("%s: %s", name, describe(val)))
			return
		}
		if imgui.TreeNodeStr(name) {
			for _, field := range fields {
				hi.renderValue(field.Name, val.Field(field.Index))
			}
			imgui.TreePop()
		}

	case reflect.Slice:
		imgui.Text(fmt.Sprintf("%s: [%d items]", name, val.Len()))

	case reflect.Map:
		imgui.Text(fmt.Sprintf("%s: map[%d items]", name, val.Len()))

	default:
		imgui.Text(fmt.Sprintf("%s: %s", name, describe(val)))
	}
}

// describe formats values whose fields cannot be edited, such as hook
// states with unexported fields.
func describe(val reflect.Value) string {
	if !val.CanInterface() {
		return val.Type().String()
	}
	return fmt.Sprintf("%+v", val.Interface())
}
