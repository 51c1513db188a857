package models

// SkillIcon is the closed set of icon identifiers a skill group may carry.
// The presentation layer resolves these through a lookup table; unknown
// values fall back to IconBox.
type SkillIcon string

const (
	IconBox     SkillIcon = "Box"
	IconCode    SkillIcon = "Code"
	IconPen     SkillIcon = "Pen"
	IconCpu     SkillIcon = "Cpu"
	IconLayers  SkillIcon = "Layers"
	IconPalette SkillIcon = "Palette"
)

// SkillIcons lists every valid icon identifier, in display order.
var SkillIcons = []SkillIcon{IconBox, IconCode, IconPen, IconCpu, IconLayers, IconPalette}

// Valid reports whether the icon is one of the known identifiers.
func (i SkillIcon) Valid() bool {
	for _, known := range SkillIcons {
		if i == known {
			return true
		}
	}
	return false
}

// SkillModel stores a titled group of tool names, e.g. "Core Stack" with
// ["Blender", "Unity"].
type SkillModel struct {
	Base     `bson:",inline"`
	Title    string    `json:"title"    bson:"title"`
	Category string    `json:"category" bson:"category"`
	Icon     SkillIcon `json:"icon"     bson:"icon"`
	Tools    []string  `json:"tools"    bson:"tools"`
}

func (SkillModel) CollectionName() string { return "skills" }
