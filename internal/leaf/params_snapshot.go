package leaf

import (
	"strconv"

	"leaf-morphogenesis/internal/core"
)

// Parameters reports the leaf's constants and mesh size for display.
func (l *Leaf) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Seed",
			Params: []core.Parameter{
				{Key: "seed", Label: "Seed", Type: core.ParamTypeString, Value: l.name},
			},
		},
		{
			Name:    "Growth",
			Summary: "Fixed when the leaf is built.",
			Params: []core.Parameter{
				floatParam("vein_growth_rate", "Vein growth rate", l.params.VeinGrowthRate,
					"Distance a vein tip advances per time unit."),
				floatParam("new_vein_proportion", "New vein proportion", l.params.NewVeinProportion,
					"Share of a splitting edge that becomes the new tip segment."),
			},
		},
		{
			Name: "Mesh",
			Params: []core.Parameter{
				intParam("steps", "Steps", l.steps),
				intParam("vertices", "Vertices", len(l.vertices)),
				intParam("edges", "Edges", len(l.edges)),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64, description string) core.Parameter {
	return core.Parameter{
		Key:         key,
		Label:       label,
		Type:        core.ParamTypeFloat,
		Value:       strconv.FormatFloat(value, 'f', -1, 64),
		Description: description,
	}
}
