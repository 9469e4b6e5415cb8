package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hooklist/hooks"
)

// ScopeBrowser lists mounted scopes in a sortable, filterable table.
type ScopeBrowser struct {
	selected         hooks.ScopeId
	filterText       string
	sortColumn       int
	sortAscending    bool
	maxScopesPerPage int
	currentPage      int
}

func NewScopeBrowser(maxScopesPerPage int) ScopeBrowser {
	return ScopeBrowser{
		sortAscending:    true,
		maxScopesPerPage: maxScopesPerPage,
	}
}

// Selected returns the id of the selected scope, or 0.
func (sb *ScopeBrowser) Selected() hooks.ScopeId {
	return sb.selected
}

func (sb *ScopeBrowser) Render(stats hooks.RuntimeStats) {
	if !imgui.BeginV("Scope Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
	}

	scopes := filterScopes(stats.Scopes, sb.filterText)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ScopeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Scope ID")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Hooks")
		imgui.TableSetupColumn("Renders")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sb.sortColumn = int(spec.ColumnIndex())
			sb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortSpecs.SetSpecsDirty(false)
		}
		sortScopes(scopes, sb.sortColumn, sb.sortAscending)

		start, end := pageBounds(len(scopes), sb.currentPage, sb.maxScopesPerPage)
		for _, scope := range scopes[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", scope.ID), sb.selected == scope.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sb.selected = scope.ID
			}

			imgui.TableNextColumn()
			imgui.Text(scope.Name)

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", scope.Hooks.Len))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", scope.RenderCount))
		}

		imgui.EndTable()
	}

	if len(scopes) > sb.maxScopesPerPage {
		totalPages := (len(scopes) + sb.maxScopesPerPage - 1) / sb.maxScopesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d scopes)", sb.currentPage+1, totalPages, len(scopes)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.currentPage > 0 {
			sb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.currentPage < totalPages-1 {
			sb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d scopes", len(scopes)))
	}

	imgui.End()
}

func filterScopes(scopes []hooks.ScopeStats, filter string) []hooks.ScopeStats {
	if filter == "" {
		return scopes
	}
	filter = strings.ToLower(filter)

	var out []hooks.ScopeStats
	for _, scope := range scopes {
		if strings.Contains(strings.ToLower(scope.Name), filter) ||
			strings.Contains(strings.ToLower(strings.Join(scope.Hooks.Types, ",")), filter) {
			out = append(out, scope)
		}
	}
	return out
}

func sortScopes(scopes []hooks.ScopeStats, column int, ascending bool) {
	less := func(a, b hooks.ScopeStats) bool {
		switch column {
		case 1:
			return a.Name < b.Name
		case 2:
			return a.Hooks.Len < b.Hooks.Len
		case 3:
			return a.RenderCount < b.RenderCount
		default:
			return a.ID < b.ID
		}
	}
	sort.SliceStable(scopes, func(i, j int) bool {
		if !ascending {
			return less(scopes[j], scopes[i])
		}
		return less(scopes[i], scopes[j])
	})
}

func pageBounds(total, page, perPage int) (int, int) {
	if perPage <= 0 {
		return 0, total
	}
	start := page * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return start, end
}
