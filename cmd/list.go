// projgen list
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/pasraylib/projgen/internal/msg"
	"github.com/pasraylib/projgen/internal/project"
	"github.com/spf13/cobra"
)

func printProjects(projects []project.Project) {
	for _, p := range projects {
		fmt.Fprintf(msg.Output, "%4d  %s", p.Index, filepath.ToSlash(p.Dir))
		if len(p.Tags) > 0 {
			fmt.Fprintf(msg.Output, "  %s", color.HiCyanString("[%s]", p.Tags))
		}
		fmt.Fprintln(msg.Output)
	}
}

func doList(cmd *cobra.Command, args []string) {
	projects, _, err := selectProjects()
	if err != nil {
		msg.Fatal("%v", err)
	}
	printProjects(projects)
	msg.Info("%d projects", len(projects))
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the selected projects without writing anything",
	Args:  cobra.NoArgs,
	Run:   doList,
}

func init() {
	// projgen list subcommand
	rootCmd.AddCommand(listCmd)
}
