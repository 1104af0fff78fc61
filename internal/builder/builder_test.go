package builder

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pasraylib/projgen/internal/builder/gen"
	"github.com/pasraylib/projgen/internal/msg"
	"github.com/pasraylib/projgen/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	msg.Output = io.Discard
}

// makeDirs creates the directory of every project under root
func makeDirs(t *testing.T, root string, projects []project.Project) {
	t.Helper()
	for _, p := range projects {
		require.NoError(t, os.MkdirAll(filepath.Join(root, p.Dir), 0o755))
	}
}

func newBuilder(t *testing.T, root, generator string, out io.Writer) *Builder {
	t.Helper()
	b, err := New(Options{Root: root, Generator: generator, Out: out})
	require.NoError(t, err)
	return b
}

func TestBuild_WritesAllFiles(t *testing.T) {
	root := t.TempDir()
	projects := project.Resolve([]project.Descriptor{
		{Path: "core/core_basic_window"},
		{Path: "shaders/shaders_basic_lighting", Tags: project.Tags(project.TagRlights)},
	})
	makeDirs(t, root, projects)

	var out bytes.Buffer
	b := newBuilder(t, root, gen.GeneratorAll, &out)
	require.NoError(t, b.Build(projects))

	assert.Equal(t, "work with: \"core_basic_window\"\nwork with: \"shaders_basic_lighting\"\n", out.String())

	for _, p := range projects {
		for _, ext := range []string{".lpi", ".lpr", ".dproj", ".dpr"} {
			path := filepath.Join(root, p.Dir, p.Name+ext)
			data, err := os.ReadFile(path)
			require.NoError(t, err, path)
			assert.NotEmpty(t, data)
		}
	}

	lpi, err := os.ReadFile(filepath.Join(root, "shaders", "shaders_basic_lighting", "shaders_basic_lighting.lpi"))
	require.NoError(t, err)
	assert.Contains(t, string(lpi), "rlights.pas")
	assert.Contains(t, string(lpi), project.DefaultLibName)
}

func TestBuild_MatchesRender(t *testing.T) {
	root := t.TempDir()
	projects := project.Resolve([]project.Descriptor{{Path: "core/core_loading_thread", Tags: project.Tags(project.TagCthreads)}})
	makeDirs(t, root, projects)

	b := newBuilder(t, root, gen.GeneratorAll, io.Discard)
	require.NoError(t, b.Build(projects))

	for _, f := range b.Render(projects[0]) {
		data, err := os.ReadFile(filepath.Join(root, projects[0].Dir, f.Name))
		require.NoError(t, err)
		assert.Equal(t, f.Content, string(data), f.Name)
	}
}

func TestBuild_Overwrites(t *testing.T) {
	root := t.TempDir()
	projects := project.Resolve([]project.Descriptor{{Path: "core/core_basic_window"}})
	makeDirs(t, root, projects)

	path := filepath.Join(root, "core", "core_basic_window", "core_basic_window.lpr")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte("stale "), 1000), 0o644))

	b := newBuilder(t, root, gen.GeneratorLazarus, io.Discard)
	require.NoError(t, b.Build(projects))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, gen.RenderLPR(gen.NewParams(projects[0], project.DefaultLibName)), string(data))
}

func TestBuild_LazarusOnly(t *testing.T) {
	root := t.TempDir()
	projects := project.Resolve([]project.Descriptor{{Path: "core/core_basic_window"}})
	makeDirs(t, root, projects)

	b := newBuilder(t, root, gen.GeneratorLazarus, io.Discard)
	require.NoError(t, b.Build(projects))

	dir := filepath.Join(root, "core", "core_basic_window")
	assert.FileExists(t, filepath.Join(dir, "core_basic_window.lpi"))
	assert.FileExists(t, filepath.Join(dir, "core_basic_window.lpr"))
	assert.NoFileExists(t, filepath.Join(dir, "core_basic_window.dproj"))
	assert.NoFileExists(t, filepath.Join(dir, "core_basic_window.dpr"))
}

func TestBuild_StopsAtMissingDirectory(t *testing.T) {
	root := t.TempDir()
	projects := project.Resolve([]project.Descriptor{
		{Path: "core/core_2d_camera"},
		{Path: "core/core_missing"},
		{Path: "core/core_basic_window"},
	})
	makeDirs(t, root, []project.Project{projects[0], projects[2]})

	var out bytes.Buffer
	b := newBuilder(t, root, gen.GeneratorAll, &out)
	err := b.Build(projects)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "core_missing")

	assert.FileExists(t, filepath.Join(root, "core", "core_2d_camera", "core_2d_camera.dpr"))
	assert.NoFileExists(t, filepath.Join(root, "core", "core_basic_window", "core_basic_window.lpi"))
	assert.NoDirExists(t, filepath.Join(root, "core", "core_missing"))
	assert.Equal(t, "work with: \"core_2d_camera\"\nwork with: \"core_missing\"\n", out.String())
}

func TestNew_UnknownGenerator(t *testing.T) {
	_, err := New(Options{Root: t.TempDir(), Generator: "vs2022"})
	assert.Error(t, err)
}

func TestNew_LibName(t *testing.T) {
	p := project.Descriptor{Path: "core/core_basic_window"}.Resolve(1)

	b := newBuilder(t, ".", gen.GeneratorLazarus, io.Discard)
	assert.Contains(t, b.Render(p)[0].Content, project.DefaultLibName)

	b, err := New(Options{Root: ".", Generator: gen.GeneratorLazarus, LibName: "libraylib.so.5"})
	require.NoError(t, err)
	assert.Contains(t, b.Render(p)[0].Content, "output/osx/libraylib.so.5 -rpath")
}
