package debugui

import (
	"reflect"
	"testing"

	"github.com/plus3/hooklist/hooks"
	"github.com/stretchr/testify/assert"
)

type inspected struct {
	Count  int
	Label  string
	Next   *inspected
	hidden bool
}

func TestFieldCache(t *testing.T) {
	cache := make(fieldCache)
	typ := reflect.TypeOf(inspected{})

	fields := cache.fields(typ)
	assert.Len(t, fields, 3)
	assert.Equal(t, "Count", fields[0].Name)
	assert.Equal(t, reflect.Int, fields[0].Kind)
	assert.Equal(t, "Next", fields[2].Name)
	assert.Equal(t, 2, fields[2].Index)
	assert.Equal(t, reflect.Pointer, fields[2].Kind)

	assert.Len(t, cache, 1)
	cache.fields(typ)
	assert.Len(t, cache, 1)

	assert.Empty(t, cache.fields(reflect.TypeOf(0)))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "{Count:1 Label:a Next:<nil> hidden:false}", describe(reflect.ValueOf(inspected{Count: 1, Label: "a"})))

	hidden := reflect.ValueOf(inspected{}).Field(3)
	assert.Equal(t, "bool", describe(hidden))
}

func testScopes() []hooks.ScopeStats {
	return []hooks.ScopeStats{
		{ID: 1, Name: "header", Hooks: hooks.ListStats{Len: 2, Types: []string{"int", "string"}}, RenderCount: 5},
		{ID: 2, Name: "list", Hooks: hooks.ListStats{Len: 1, Types: []string{"hooks.State[int]"}}, RenderCount: 9},
		{ID: 3, Name: "footer", Hooks: hooks.ListStats{Len: 0}, RenderCount: 1},
	}
}

func TestFilterScopes(t *testing.T) {
	scopes := testScopes()

	assert.Len(t, filterScopes(scopes, ""), 3)

	byName := filterScopes(scopes, "HEAD")
	assert.Len(t, byName, 1)
	assert.Equal(t, hooks.ScopeId(1), byName[0].ID)

	byType := filterScopes(scopes, "state")
	assert.Len(t, byType, 1)
	assert.Equal(t, "list", byType[0].Name)
}

func TestSortScopes(t *testing.T) {
	scopes := testScopes()

	sortScopes(scopes, 3, true)
	assert.Equal(t, []string{"footer", "header", "list"}, names(scopes))

	sortScopes(scopes, 3, false)
	assert.Equal(t, []string{"list", "header", "footer"}, names(scopes))

	sortScopes(scopes, 1, true)
	assert.Equal(t, []string{"footer", "header", "list"}, names(scopes))

	sortScopes(scopes, 0, false)
	assert.Equal(t, []string{"footer", "list", "header"}, names(scopes))
}

func names(scopes []hooks.ScopeStats) []string {
	out := make([]string, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, s.Name)
	}
	return out
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		total, page, perPage int
		start, end           int
	}{
		{10, 0, 4, 0, 4},
		{10, 2, 4, 8, 10},
		{10, 5, 4, 10, 10},
		{3, 0, 0, 0, 3},
	}
	for _, tt := range tests {
		start, end := pageBounds(tt.total, tt.page, tt.perPage)
		assert.Equal(t, tt.start, start)
		assert.Equal(t, tt.end, end)
	}
}

func TestRenderStatsHistory(t *testing.T) {
	rs := NewRenderStatsWindow(4)
	rs.record(0.010)
	rs.record(0.020)

	assert.InDelta(t, 7.5, rs.average(), 0.001)

	for i := 0; i < 4; i++ {
		rs.record(0.016)
	}
	assert.InDelta(t, 16.0, rs.average(), 0.001)
	assert.Equal(t, 2, rs.frameIndex)
}
