package debugui

import (
	"fmt"
	"strconv"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/kinet/tween"
)

// Render draws the inspector window for m's current population. deltaTime is
// the wall-clock frame time in seconds, fed into the rolling graph.
func (in *InspectorComponent) Render(m *tween.Manager, deltaTime float32) {
	if !imgui.BeginV("Tween Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	in.frameHistory[in.frameIndex] = deltaTime * 1000.0
	in.frameIndex = (in.frameIndex + 1) % in.historyFrames

	stats := m.GetStats()

	imgui.Text(fmt.Sprintf("Active Tweens: %d", stats.TweenCount))
	imgui.Text(fmt.Sprintf("Total Updates: %d", stats.TotalUpdates))

	var avgFrameTime float32
	for _, ft := range in.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(in.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &in.frameHistory[0], int32(len(in.frameHistory)))

	if imgui.TreeNodeStr("Instance Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
		if imgui.BeginTableV("TweenTable", 6, tableFlags, imgui.NewVec2(0, 260), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Channels")
			imgui.TableSetupColumn("Iteration")
			imgui.TableSetupColumn("Position")
			imgui.TableSetupColumn("Repeats")
			imgui.TableSetupColumn("Progress")
			imgui.TableHeadersRow()

			for _, ts := range stats.Tweens {
				imgui.TableNextRow()

				imgui.TableNextColumn()
				imgui.Text(strconv.Itoa(ts.Kind))

				imgui.TableNextColumn()
				imgui.Text(strconv.Itoa(ts.ChannelCount))

				imgui.TableNextColumn()
				imgui.Text(strconv.Itoa(ts.Iteration))

				imgui.TableNextColumn()
				if ts.InGap {
					imgui.Text(fmt.Sprintf("%d / %d ms (gap)", ts.PositionMillis, ts.RepeatDelayMillis))
				} else {
					imgui.Text(fmt.Sprintf("%d / %d ms", ts.PositionMillis, ts.DurationMillis))
				}

				imgui.TableNextColumn()
				imgui.Text(repeatLabel(ts))

				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%3.0f%%", ts.Progress*100))
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				barWidth := float32(ts.Progress) * 80.0
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func repeatLabel(ts tween.TweenStats) string {
	label := strconv.Itoa(ts.RepeatCount)
	if ts.RepeatCount < 0 {
		label = "inf"
	}
	if ts.Yoyo {
		label += " yoyo"
	}
	return label
}
