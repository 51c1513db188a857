package web

import (
	"html/template"

	"github.com/mrigtrishna/core/internal/models"
)

// skillIconSVG maps each icon identifier to its inline SVG. This is the only
// place icon names are interpreted; everywhere else they are opaque strings.
var skillIconSVG = map[models.SkillIcon]template.HTML{
	models.IconBox:     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M21 16V8a2 2 0 0 0-1-1.73l-7-4a2 2 0 0 0-2 0l-7 4A2 2 0 0 0 3 8v8a2 2 0 0 0 1 1.73l7 4a2 2 0 0 0 2 0l7-4A2 2 0 0 0 21 16z"/><path d="M3.27 6.96 12 12.01l8.73-5.05"/><path d="M12 22.08V12"/></svg>`,
	models.IconCode:    `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="m16 18 6-6-6-6"/><path d="m8 6-6 6 6 6"/></svg>`,
	models.IconPen:     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M17 3a2.85 2.83 0 1 1 4 4L7.5 20.5 2 22l1.5-5.5Z"/></svg>`,
	models.IconCpu:     `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><rect x="4" y="4" width="16" height="16" rx="2"/><rect x="9" y="9" width="6" height="6"/><path d="M15 2v2M15 20v2M2 15h2M2 9h2M20 15h2M20 9h2M9 2v2M9 20v2"/></svg>`,
	models.IconLayers:  `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="m12 2 8.5 4.72L12 11.44 3.5 6.72Z"/><path d="m3.5 12 8.5 4.72L20.5 12"/><path d="m3.5 17.28 8.5 4.72 8.5-4.72"/></svg>`,
	models.IconPalette: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="13.5" cy="6.5" r=".5"/><circle cx="17.5" cy="10.5" r=".5"/><circle cx="8.5" cy="7.5" r=".5"/><circle cx="6.5" cy="12.5" r=".5"/><path d="M12 2C6.5 2 2 6.5 2 12s4.5 10 10 10c.93 0 1.68-.75 1.68-1.68 0-.44-.16-.84-.43-1.14-.27-.3-.43-.7-.43-1.13a1.68 1.68 0 0 1 1.68-1.68h1.98A5.51 5.51 0 0 0 22 10.86C21.94 5.94 17.47 2 12 2z"/></svg>`,
}

// iconSVG resolves an icon identifier, falling back to the box icon for
// anything outside the known set.
func iconSVG(icon models.SkillIcon) template.HTML {
	if svg, ok := skillIconSVG[icon]; ok {
		return svg
	}
	return skillIconSVG[models.IconBox]
}
