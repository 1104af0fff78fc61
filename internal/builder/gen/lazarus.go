package gen

import (
	"strings"

	"github.com/pasraylib/projgen/internal/project"
)

// paths as seen from a project directory, e.g. examples/core/core_basic_window
const (
	bindingsDir  = "../../../raylib"
	reasingsPath = "../../reasings.pas"
	rlightsPath  = "rlights.pas"
	outputDir    = "../../output"
)

var coreUnits = []string{
	bindingsDir + "/raylib.pas",
	bindingsDir + "/raymath.pas",
	bindingsDir + "/rlgl.pas",
}

// extraUnits returns the helper units selected by tags, easing before lighting
func extraUnits(tags project.TagSet) []string {
	var units []string
	if tags.Has(project.TagReasings) {
		units = append(units, reasingsPath)
	}
	if tags.Has(project.TagRlights) {
		units = append(units, rlightsPath)
	}
	return units
}

// LazarusGen renders the Lazarus project (.lpi) and program (.lpr)
type LazarusGen struct{}

func (LazarusGen) Files(p Params) []File {
	return []File{
		{Name: p.Name + ".lpi", Content: RenderLPI(p)},
		{Name: p.Name + ".lpr", Content: RenderLPR(p)},
	}
}

func RenderLPI(p Params) string {
	var sb strings.Builder

	writeln(&sb, `<?xml version="1.0" encoding="UTF-8"?>`)
	writeln(&sb, `<CONFIG>`)
	writeln(&sb, `  <ProjectOptions>`)
	write(&sb, `    <Version Value="12"/>
    <General>
      <Flags>
        <MainUnitHasCreateFormStatements Value="False"/>
        <MainUnitHasTitleStatement Value="False"/>
        <MainUnitHasScaledStatement Value="False"/>
      </Flags>
      <SessionStorage Value="InProjectDir"/>
`)
	writeln(&sb, `      <Title Value="`, p.Name, `"/>`)
	write(&sb, `      <UseAppBundle Value="False"/>
      <ResourceType Value="res"/>
    </General>
    <BuildModes>
      <Item Name="Default" Default="True"/>
    </BuildModes>
    <PublishOptions>
      <Version Value="2"/>
      <UseFileFilters Value="True"/>
    </PublishOptions>
    <RunParams>
      <FormatVersion Value="2"/>
    </RunParams>
`)

	// units
	units := []string{p.Name + ".lpr", p.Name + "_src.pas"}
	units = append(units, coreUnits...)
	units = append(units, extraUnits(p.Tags)...)
	writeln(&sb, `    <Units>`)
	for _, unit := range units {
		writeln(&sb, `      <Unit>`)
		writeln(&sb, `        <Filename Value="`, unit, `"/>`)
		writeln(&sb, `        <IsPartOfProject Value="True"/>`)
		writeln(&sb, `      </Unit>`)
	}
	writeln(&sb, `    </Units>`)
	writeln(&sb, `  </ProjectOptions>`)

	// compiler options
	writeln(&sb, `  <CompilerOptions>`)
	writeln(&sb, `    <Version Value="11"/>`)
	writeln(&sb, `    <SearchPaths>`)
	writeln(&sb, `      <IncludeFiles Value="$(ProjOutDir)"/>`)
	writeln(&sb, `      <OtherUnitFiles Value="`, bindingsDir, `"/>`)
	writeln(&sb, `      <UnitOutputDirectory Value="lib/$(TargetCPU)-$(TargetOS)"/>`)
	writeln(&sb, `    </SearchPaths>`)
	writeln(&sb, `    <Conditionals Value="// libs`)
	writeln(&sb, `if TargetOS = &apos;darwin&apos; then`)
	writeln(&sb, `begin`)
	writeln(&sb, `  LinkerOptions += &apos; `, outputDir, `/osx/`, p.LibName, ` -rpath @executable_path/&apos;;`)
	writeln(&sb, `  OutputDir := &apos;`, outputDir, `/osx/&apos;;`)
	writeln(&sb, `end;`)
	writeln(&sb, `if TargetOS = &apos;win64&apos; then`)
	writeln(&sb, `begin`)
	writeln(&sb, `  OutputDir := &apos;`, outputDir, `/win64/&apos;;`)
	writeln(&sb, `end;`)
	writeln(&sb, `if TargetOS = &apos;win32&apos; then`)
	writeln(&sb, `begin`)
	writeln(&sb, `  OutputDir := &apos;`, outputDir, `/win32/&apos;;`)
	writeln(&sb, `end;"/>`)
	write(&sb, `    <Linking>
      <Debugging>
        <DebugInfoType Value="dsDwarf2Set"/>
      </Debugging>
      <Options>
        <PassLinkerOptions Value="True"/>
      </Options>
    </Linking>
  </CompilerOptions>
  <Debugging>
    <Exceptions>
      <Item>
        <Name Value="EAbort"/>
      </Item>
      <Item>
        <Name Value="ECodetoolError"/>
      </Item>
      <Item>
        <Name Value="EFOpenError"/>
      </Item>
    </Exceptions>
  </Debugging>
</CONFIG>
`)

	return sb.String()
}

func RenderLPR(p Params) string {
	var sb strings.Builder

	writeln(&sb, "program ", p.Name, ";")
	writeln(&sb)
	writeln(&sb, "uses")
	if p.Tags.Has(project.TagCthreads) {
		writeln(&sb, "  {$IFDEF UNIX}")
		writeln(&sb, "  cmem, cthreads,")
		writeln(&sb, "  {$ENDIF}")
	}
	writeln(&sb, "  SysUtils,")
	writeln(&sb, "  ", p.Name, "_src;")
	writeln(&sb)
	writeMainBlock(&sb)
	writeln(&sb)

	return sb.String()
}

// writeMainBlock writes the program body: Main wrapped in a handler that
// prints the exception and swallows it
func writeMainBlock(sb *strings.Builder) {
	writeln(sb, "begin")
	writeln(sb, "  try")
	writeln(sb, "    Main();")
	writeln(sb, "  except")
	writeln(sb, "    on E: Exception do")
	writeln(sb, "      Writeln(E.ClassName, ': ', E.Message);")
	writeln(sb, "  end;")
	writeln(sb, "end.")
}
