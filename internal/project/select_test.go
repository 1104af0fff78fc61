package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(projects []Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.Name
	}
	return out
}

func TestSelector_NoCriteriaKeepsAll(t *testing.T) {
	sel, err := NewSelector(nil, "")
	require.NoError(t, err)

	all := Resolve(Samples)
	got, err := sel.Select(all)
	require.NoError(t, err)
	assert.Equal(t, all, got)
}

func TestSelector_GlobKeepsIndices(t *testing.T) {
	sel, err := NewSelector([]string{"shaders/**"}, "")
	require.NoError(t, err)

	all := Resolve(Samples)
	got, err := sel.Select(all)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for _, p := range got {
		assert.Equal(t, "shaders", p.Category())
		assert.Equal(t, all[p.Index-1], p)
	}
}

func TestSelector_Filter(t *testing.T) {
	sel, err := NewSelector(nil, `"rlights" in tags`)
	require.NoError(t, err)

	got, err := sel.Select(Resolve(Samples))
	require.NoError(t, err)
	assert.Equal(t, []string{"shaders_basic_lighting", "shaders_fog"}, names(got))
}

func TestSelector_FilterOnIndex(t *testing.T) {
	sel, err := NewSelector(nil, `category == "core" && index <= 2`)
	require.NoError(t, err)

	got, err := sel.Select(Resolve(Samples))
	require.NoError(t, err)
	assert.Equal(t, []string{"core_2d_camera", "core_2d_camera_mouse_zoom"}, names(got))
}

func TestSelector_GlobAndFilter(t *testing.T) {
	sel, err := NewSelector([]string{"core/*", "shapes/*"}, `len(tags) > 0`)
	require.NoError(t, err)

	got, err := sel.Select(Resolve(Samples))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"core_loading_thread",
		"shapes_easings_ball_anim",
		"shapes_easings_box_anim",
		"shapes_easings_rectangle_array",
	}, names(got))
}

func TestSelector_Invalid(t *testing.T) {
	_, err := NewSelector(nil, `name ==`)
	assert.Error(t, err)

	_, err = NewSelector(nil, `name`)
	assert.Error(t, err, "non-boolean filters are rejected")

	_, err = NewSelector([]string{"core/[a"}, "")
	assert.Error(t, err)
}
