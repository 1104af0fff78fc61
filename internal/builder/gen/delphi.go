package gen

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

//
// structures for .dproj
//

type DProject struct {
	XMLName           xml.Name           `xml:"Project"`
	XMLNS             string             `xml:"xmlns,attr"`
	PropertyGroups    []DPropertyGroup   `xml:"PropertyGroup"`
	ItemGroup         DItemGroup         `xml:"ItemGroup"`
	ProjectExtensions DProjectExtensions `xml:"ProjectExtensions"`
	Imports           []DImport          `xml:"Import"`
}

// DPropertyGroup holds free-form properties, the element name of each comes
// from its XMLName
type DPropertyGroup struct {
	Condition string      `xml:"Condition,attr,omitempty"`
	Props     []DProperty `xml:",any"`
}

type DProperty struct {
	XMLName   xml.Name
	Condition string `xml:"Condition,attr,omitempty"`
	Value     string `xml:",chardata"`
}

type DItemGroup struct {
	DelphiCompile       DDelphiCompile        `xml:"DelphiCompile"`
	DCCReferences       []DDCCReference       `xml:"DCCReference"`
	BuildConfigurations []DBuildConfiguration `xml:"BuildConfiguration"`
}

type DDelphiCompile struct {
	Include    string `xml:"Include,attr"`
	MainSource string `xml:"MainSource"`
}

type DDCCReference struct {
	Include string `xml:"Include,attr"`
}

type DBuildConfiguration struct {
	Include   string `xml:"Include,attr"`
	Key       string `xml:"Key"`
	CfgParent string `xml:"CfgParent,omitempty"`
}

type DProjectExtensions struct {
	Personality        string          `xml:"Borland.Personality"`
	ProjectType        string          `xml:"Borland.ProjectType"`
	BorlandProject     DBorlandProject `xml:"BorlandProject"`
	ProjectFileVersion int             `xml:"ProjectFileVersion"`
}

type DBorlandProject struct {
	Sources   []DSource   `xml:"Delphi.Personality>Source>Source"`
	Platforms []DPlatform `xml:"Platforms>Platform"`
}

type DSource struct {
	Name  string `xml:"Name,attr"`
	Value string `xml:",chardata"`
}

type DPlatform struct {
	Value   string `xml:"value,attr"`
	Enabled string `xml:",chardata"`
}

type DImport struct {
	Project   string `xml:"Project,attr"`
	Condition string `xml:"Condition,attr,omitempty"`
}

//
// generator
//

// DelphiGen renders the Delphi project (.dproj) and program (.dpr)
type DelphiGen struct{}

func (DelphiGen) Files(p Params) []File {
	return []File{
		{Name: p.Name + ".dproj", Content: RenderDPROJ(p)},
		{Name: p.Name + ".dpr", Content: RenderDPR(p)},
	}
}

const (
	projectGUIDPrefix = "7C46D4E1-4B5A-4F3C-8A0E-"
	maxGUIDIndex      = 999_999_999_999
)

// ProjectGUID returns the project GUID for a sequence index: a fixed prefix
// followed by the index as 12 zero-padded decimal digits
func ProjectGUID(index int) string {
	if index < 1 || index > maxGUIDIndex {
		panic(fmt.Sprintf("ProjectGUID: index %d out of range", index))
	}
	id := uuid.MustParse(fmt.Sprintf("%s%012d", projectGUIDPrefix, index))
	return "{" + strings.ToUpper(id.String()) + "}"
}

var (
	dprojPlatforms = []string{"Win32", "Win64"}
	dprojConfigs   = []struct{ key, name string }{
		{"Cfg_1", "Debug"},
		{"Cfg_2", "Release"},
	}
)

func prop(name, value string) DProperty {
	return DProperty{XMLName: xml.Name{Local: name}, Value: value}
}

func condProp(name, condition, value string) DProperty {
	return DProperty{XMLName: xml.Name{Local: name}, Condition: condition, Value: value}
}

// winPath converts a slash separated relative path to the form Delphi stores
func winPath(path string) string {
	return strings.ReplaceAll(path, "/", `\`)
}

func RenderDPROJ(p Params) string {
	var groups []DPropertyGroup
	groups = append(groups, DPropertyGroup{Props: []DProperty{
		prop("ProjectGuid", ProjectGUID(p.Index)),
		prop("ProjectVersion", "19.5"),
		prop("FrameworkType", "None"),
		prop("AppType", "Console"),
		prop("MainSource", p.Name+".dpr"),
		prop("Base", "True"),
		condProp("Config", "'$(Config)'==''", "Debug"),
		condProp("Platform", "'$(Platform)'==''", "Win64"),
		prop("TargetedPlatforms", "3"),
	}})
	groups = append(groups, createLatticeGroups()...)
	groups = append(groups, createSettingGroups(p)...)

	references := make([]DDCCReference, 0, len(coreUnits)+3)
	for _, unit := range coreUnits {
		references = append(references, DDCCReference{Include: winPath(unit)})
	}
	for _, unit := range extraUnits(p.Tags) {
		references = append(references, DDCCReference{Include: winPath(unit)})
	}
	references = append(references, DDCCReference{Include: p.Name + "_src.pas"})

	buildConfigs := []DBuildConfiguration{{Include: "Base", Key: "Base"}}
	for _, cfg := range dprojConfigs {
		buildConfigs = append(buildConfigs, DBuildConfiguration{Include: cfg.name, Key: cfg.key, CfgParent: "Base"})
	}

	platforms := make([]DPlatform, 0, len(dprojPlatforms))
	for _, plat := range dprojPlatforms {
		platforms = append(platforms, DPlatform{Value: plat, Enabled: "True"})
	}

	project := DProject{
		XMLNS:          "http://schemas.microsoft.com/developer/msbuild/2003",
		PropertyGroups: groups,
		ItemGroup: DItemGroup{
			DelphiCompile:       DDelphiCompile{Include: "$(MainSource)", MainSource: "MainSource"},
			DCCReferences:       references,
			BuildConfigurations: buildConfigs,
		},
		ProjectExtensions: DProjectExtensions{
			Personality: "Delphi.Personality.12",
			ProjectType: "Application",
			BorlandProject: DBorlandProject{
				Sources:   []DSource{{Name: "MainSource", Value: p.Name + ".dpr"}},
				Platforms: platforms,
			},
			ProjectFileVersion: 12,
		},
		Imports: []DImport{
			{
				Project:   `$(BDS)\Bin\CodeGear.Delphi.Targets`,
				Condition: `Exists('$(BDS)\Bin\CodeGear.Delphi.Targets')`,
			},
			{
				Project:   `$(APPDATA)\Embarcadero\$(BDSAPPDATABASEDIR)\$(PRODUCTVERSION)\UserTools.proj`,
				Condition: `Exists('$(APPDATA)\Embarcadero\$(BDSAPPDATABASEDIR)\$(PRODUCTVERSION)\UserTools.proj')`,
			},
		},
	}

	return xml.Header + mustMarshalXML(project) + "\n"
}

func mustMarshalXML(v any) string {
	b, err := xml.MarshalIndent(v, "", "    ")
	if err != nil {
		panic(err)
	}
	return string(b)
}

// createLatticeGroups declares the configuration keys: Base, Base_<platform>,
// Cfg_n and Cfg_n_<platform>, each switched on together with its parents
func createLatticeGroups() []DPropertyGroup {
	groups := []DPropertyGroup{
		{
			Condition: "'$(Config)'=='Base' or '$(Base)'!=''",
			Props:     []DProperty{prop("Base", "true")},
		},
	}
	for _, plat := range dprojPlatforms {
		key := "Base_" + plat
		groups = append(groups, DPropertyGroup{
			Condition: fmt.Sprintf("('$(Platform)'=='%s' and '$(Base)'=='true') or '$(%s)'!=''", plat, key),
			Props: []DProperty{
				prop(key, "true"),
				prop("CfgParent", "Base"),
				prop("Base", "true"),
			},
		})
	}
	for _, cfg := range dprojConfigs {
		groups = append(groups, DPropertyGroup{
			Condition: fmt.Sprintf("'$(Config)'=='%s' or '$(%s)'!=''", cfg.name, cfg.key),
			Props: []DProperty{
				prop(cfg.key, "true"),
				prop("CfgParent", "Base"),
				prop("Base", "true"),
			},
		})
		for _, plat := range dprojPlatforms {
			key := cfg.key + "_" + plat
			groups = append(groups, DPropertyGroup{
				Condition: fmt.Sprintf("('$(Platform)'=='%s' and '$(%s)'=='true') or '$(%s)'!=''", plat, cfg.key, key),
				Props: []DProperty{
					prop(key, "true"),
					prop("CfgParent", cfg.key),
					prop(cfg.key, "true"),
					prop("Base", "true"),
				},
			})
		}
	}
	return groups
}

func createSettingGroups(p Params) []DPropertyGroup {
	groups := []DPropertyGroup{
		{
			Condition: "'$(Base)'!=''",
			Props: []DProperty{
				prop("SanitizedProjectName", p.Name),
				prop("DCC_DcuOutput", `.\$(Platform)\$(Config)`),
				prop("DCC_UnitSearchPath", winPath(bindingsDir)+";$(DCC_UnitSearchPath)"),
				prop("DCC_Namespace", "System;Xml;Data;Datasnap;Web;Soap;$(DCC_Namespace)"),
				prop("DCC_E", "false"),
				prop("DCC_F", "false"),
				prop("DCC_K", "false"),
				prop("DCC_N", "false"),
				prop("DCC_S", "false"),
			},
		},
	}
	for _, plat := range dprojPlatforms {
		groups = append(groups, DPropertyGroup{
			Condition: fmt.Sprintf("'$(Base_%s)'!=''", plat),
			Props: []DProperty{
				prop("DCC_Namespace", "Winapi;System.Win;Data.Win;$(DCC_Namespace)"),
				prop("DCC_ExeOutput", winPath(outputDir+"/"+strings.ToLower(plat)+"/")),
				prop("Manifest_File", "(None)"),
			},
		})
	}
	groups = append(groups, DPropertyGroup{
		Condition: "'$(Cfg_1)'!=''",
		Props: []DProperty{
			prop("DCC_Define", "DEBUG;$(DCC_Define)"),
			prop("DCC_DebugDCUs", "true"),
			prop("DCC_Optimize", "false"),
			prop("DCC_GenerateStackFrames", "true"),
			prop("DCC_DebugInfoInExe", "true"),
		},
	})
	groups = append(groups, DPropertyGroup{
		Condition: "'$(Cfg_2)'!=''",
		Props: []DProperty{
			prop("DCC_LocalDebugSymbols", "false"),
			prop("DCC_Define", "RELEASE;$(DCC_Define)"),
			prop("DCC_SymbolReferenceInfo", "0"),
			prop("DCC_DebugInformation", "0"),
		},
	})
	return groups
}

func RenderDPR(p Params) string {
	var sb strings.Builder

	writeln(&sb, "program ", p.Name, ";")
	writeln(&sb)
	writeln(&sb, "{$APPTYPE CONSOLE}")
	writeln(&sb)
	writeln(&sb, "uses")
	writeln(&sb, "  SysUtils,")
	units := append(append([]string{}, coreUnits...), extraUnits(p.Tags)...)
	for _, unit := range units {
		writeln(&sb, "  ", pascalUnit(unit), " in '", winPath(unit), "',")
	}
	writeln(&sb, "  ", p.Name, "_src in '", p.Name, "_src.pas';")
	writeln(&sb)
	writeMainBlock(&sb)
	writeln(&sb)

	return sb.String()
}
