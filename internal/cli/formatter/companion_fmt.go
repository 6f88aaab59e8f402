package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/cropcal/internal/contract"
)

// FormatCompanions renders the companion guide of one crop as a tree.
func FormatCompanions(resp *contract.CompanionResponse) string {
	items := []TreeItem{{Title: cropTitle(resp.Crop)}}
	items = append(items, TreeItem{Title: StyleGreen.Render("Grows well with"), Level: 1})
	items = append(items, companionItems(resp.Good)...)
	items = append(items, TreeItem{Title: StyleRed.Render("Keep away from"), Level: 1, IsLast: true})
	items = append(items, companionItems(resp.Bad)...)
	return RenderBox("Companions", RenderTree(items))
}

// FormatConflicts renders companion conflicts in the garden.
func FormatConflicts(conflicts []contract.CompanionConflict) string {
	if len(conflicts) == 0 {
		return StyleGreen.Render("No companion conflicts in your garden.") + "\n"
	}
	return Header("Companion conflicts") + "\n" + conflictLines(conflicts)
}

func companionItems(refs []contract.CompanionRef) []TreeItem {
	if len(refs) == 0 {
		return []TreeItem{{Title: Dim("none listed"), Level: 2, IsLast: true}}
	}
	items := make([]TreeItem, len(refs))
	for i, r := range refs {
		items[i] = TreeItem{Title: r.Name, Level: 2, IsLast: i == len(refs)-1}
		if r.CropID == "" {
			items[i].Detail = "not in catalog"
		}
	}
	return items
}

func conflictLines(conflicts []contract.CompanionConflict) string {
	var b strings.Builder
	for _, c := range conflicts {
		b.WriteString(fmt.Sprintf("  %s %s and %s should not share a bed\n",
			StyleRed.Render("✖"), c.CropA, c.CropB))
	}
	return b.String()
}
