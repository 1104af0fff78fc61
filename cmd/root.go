// projgen [flags], projgen generate [flags]
package cmd

import (
	"fmt"
	"os"

	"github.com/pasraylib/projgen/internal/builder"
	"github.com/pasraylib/projgen/internal/builder/gen"
	"github.com/pasraylib/projgen/internal/msg"
	"github.com/pasraylib/projgen/internal/project"
	"github.com/spf13/cobra"
)

var (
	flagRoot      string
	flagManifest  string
	flagOnly      []string
	flagFilter    string
	flagRepo      bool
	flagLib       string
	flagGenerator EnumValue = NewEnumValue(gen.GeneratorAll, gen.Generators)
)

// resolveRoot returns the directory project paths are relative to
func resolveRoot() (string, error) {
	if flagRepo {
		return project.FindExamplesRoot(flagRoot)
	}
	return flagRoot, nil
}

// selectProjects loads the descriptor list (built-in or --manifest), resolves
// it and applies --only and --filter. The second result is the library name
// from the manifest, if any.
func selectProjects() ([]project.Project, string, error) {
	list := project.Samples
	var manifestLib string
	if flagManifest != "" {
		var err error
		list, manifestLib, err = project.LoadManifest(flagManifest)
		if err != nil {
			return nil, "", err
		}
	}

	sel, err := project.NewSelector(flagOnly, flagFilter)
	if err != nil {
		return nil, "", err
	}
	projects, err := sel.Select(project.Resolve(list))
	if err != nil {
		return nil, "", err
	}
	return projects, manifestLib, nil
}

func doGenerate(cmd *cobra.Command, args []string) {
	root, err := resolveRoot()
	if err != nil {
		msg.Fatal("%v", err)
	}
	projects, manifestLib, err := selectProjects()
	if err != nil {
		msg.Fatal("%v", err)
	}
	if len(projects) == 0 {
		msg.Warn("no projects selected")
		return
	}

	lib := flagLib
	if manifestLib != "" && !cmd.Flags().Changed("lib") {
		lib = manifestLib
	}

	b, err := builder.New(builder.Options{
		Root:      root,
		Generator: flagGenerator.Value(),
		LibName:   lib,
	})
	if err != nil {
		msg.Fatal("%v", err)
	}
	if err := b.Build(projects); err != nil {
		msg.Fatal("%v", err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "projgen",
	Short: "Generate Lazarus and Delphi project files for the raylib examples",
	Long: `Generate Lazarus (.lpi/.lpr) and Delphi (.dproj/.dpr) project files for the
raylib example programs. Existing project files are overwritten.`,
	Args: cobra.NoArgs,
	Run:  doGenerate,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate project files (same as running without a subcommand)",
	Args:  cobra.NoArgs,
	Run:   doGenerate,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagRoot, "root", "C", ".", "Directory the project paths are relative to")
	pf.StringVarP(&flagManifest, "manifest", "m", "", "Read the project list from a TOML manifest instead of the built-in list")
	pf.StringSliceVar(&flagOnly, "only", nil, "Only projects whose path matches one of these globs, e.g. 'shaders/**'")
	pf.StringVar(&flagFilter, "filter", "", `Only projects for which this expression is true, e.g. 'category == "core" || "rlights" in tags'`)
	pf.BoolVar(&flagRepo, "repo", false, "Resolve paths against the examples/ directory of the enclosing git repository")

	addGenerateFlags(rootCmd)

	// projgen generate subcommand
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLib, "lib", project.DefaultLibName, "Native library the macOS build links against")
	cmd.Flags().VarP(&flagGenerator, "gen", "g", "Generator to use, one of "+flagGenerator.HelpString())
	cmd.RegisterFlagCompletionFunc("gen", flagGenerator.CompletionFunc())
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
