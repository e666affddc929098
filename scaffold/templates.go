package scaffold

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

type (
	tailwindConfigData struct {
		Plugins string
	}

	appData struct {
		ProjectName string
	}
)

const (
	tailwindConfigFile = "tailwind.config.js"
	indexCSSFile       = "src/index.css"
	appFile            = "src/App.jsx"

	daisyUIPlugins = `[require("daisyui")]`
	noPlugins      = "[]"
)

var (
	//go:embed "data/*"
	dataFS embed.FS

	// JSX is full of braces, hence the custom delimiters.
	templates = template.Must(template.New("data").Delims("{%", "%}").ParseFS(dataFS, "data/*.tmplt"))

	indexCSS = mustReadData("data/index.css")
)

func mustReadData(name string) string {
	contents, err := dataFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("embedded data file %q is missing: %s", name, err))
	}

	return string(contents)
}

func render(name string, data any) (string, error) {
	var b strings.Builder

	if err := templates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}

	return b.String(), nil
}

// RenderTailwindConfig returns the whole of tailwind.config.js. Only the plugins list depends on useDaisyUI.
func RenderTailwindConfig(useDaisyUI bool) (string, error) {
	data := tailwindConfigData{Plugins: noPlugins}

	if useDaisyUI {
		data.Plugins = daisyUIPlugins
	}

	return render("tailwind.config.js.tmplt", data)
}

// RenderIndexCSS returns the Tailwind directives that replace src/index.css.
func RenderIndexCSS() string {
	return indexCSS
}

// RenderApp returns the whole of src/App.jsx with projectName in its heading.
// projectName is inserted as is, without any escaping.
func RenderApp(useDaisyUI bool, projectName string) (string, error) {
	name := "App.jsx.tmplt"

	if useDaisyUI {
		name = "App.daisyui.jsx.tmplt"
	}

	return render(name, appData{ProjectName: projectName})
}
