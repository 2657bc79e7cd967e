package debugui

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/minefx/fx"
)

type EffectInfo struct {
	Handle fx.Handle
	Kind   string
	Detail string
}

// DescribeEffect names an effect and summarizes its live state.
func DescribeEffect(h fx.Handle, e fx.Effect) EffectInfo {
	info := EffectInfo{Handle: h, Kind: kindOf(e)}
	switch v := e.(type) {
	case *fx.RingWave:
		info.Detail = fmt.Sprintf("r=%.1f (%.0f..%.0f) at %.0f,%.0f", v.Radius(), v.StartRadius, v.EndRadius, v.X, v.Y)
	case *fx.ScreenFlash:
		info.Detail = fmt.Sprintf("%d frames", v.TotalFrames())
	case *fx.ExplosionSound:
		if err := v.Err(); err != nil {
			info.Detail = err.Error()
		} else {
			info.Detail = "playing"
		}
	}
	return info
}

func kindOf(e fx.Effect) string {
	t := reflect.TypeOf(e)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// SnapshotEffects lists the manager's live effects in spawn order.
func SnapshotEffects(m *fx.Manager) []EffectInfo {
	infos := make([]EffectInfo, 0, m.Len())
	for h, e := range m.All() {
		infos = append(infos, DescribeEffect(h, e))
	}
	return infos
}

// FilterEffects keeps the entries whose handle, kind or detail contains
// text, case-insensitively.
func FilterEffects(infos []EffectInfo, text string) []EffectInfo {
	if text == "" {
		return infos
	}

	filterLower := strings.ToLower(text)
	filtered := make([]EffectInfo, 0, len(infos))
	for _, info := range infos {
		if strings.Contains(fmt.Sprint(info.Handle), filterLower) ||
			strings.Contains(strings.ToLower(info.Kind), filterLower) ||
			strings.Contains(strings.ToLower(info.Detail), filterLower) {
			filtered = append(filtered, info)
		}
	}
	return filtered
}

// EffectBrowser lists live effects with paging and lets the selected one be
// cancelled.
type EffectBrowser struct {
	effects     *fx.Manager
	filterText  string
	selected    fx.Handle
	currentPage int
	perPage     int
}

func NewEffectBrowser(effects *fx.Manager, perPage int) *EffectBrowser {
	return &EffectBrowser{
		effects: effects,
		perPage: max(perPage, 1),
	}
}

func (eb *EffectBrowser) Render() {
	if !imgui.BeginV("Effects", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
	}

	infos := FilterEffects(SnapshotEffects(eb.effects), eb.filterText)
	totalPages := max((len(infos)+eb.perPage-1)/eb.perPage, 1)
	eb.currentPage = min(eb.currentPage, totalPages-1)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EffectTable", 3, tableFlags, imgui.NewVec2(0, 240), 0) {
		imgui.TableSetupColumn("Handle")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("State")
		imgui.TableHeadersRow()

		start := eb.currentPage * eb.perPage
		end := min(start+eb.perPage, len(infos))
		for _, info := range infos[start:end] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			if imgui.SelectableBoolV(fmt.Sprintf("%d", info.Handle), eb.selected == info.Handle, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = info.Handle
			}

			imgui.TableNextColumn()
			imgui.Text(info.Kind)

			imgui.TableNextColumn()
			imgui.Text(info.Detail)
		}

		imgui.EndTable()
	}

	imgui.Text(fmt.Sprintf("Page %d / %d (%d effects)", eb.currentPage+1, totalPages, len(infos)))
	imgui.SameLine()
	if imgui.Button("Prev") && eb.currentPage > 0 {
		eb.currentPage--
	}
	imgui.SameLine()
	if imgui.Button("Next") && eb.currentPage < totalPages-1 {
		eb.currentPage++
	}

	if eb.selected != 0 && eb.effects.Active(eb.selected) {
		if imgui.Button(fmt.Sprintf("Cancel %d", eb.selected)) {
			eb.effects.Cancel(eb.selected)
			eb.selected = 0
		}
	}

	imgui.End()
}
