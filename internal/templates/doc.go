// Package templates provides project scaffolding templates.
//
// # Available Templates
//
//   - minimal: ftd.json and a single page
//   - full: ftd.yaml with publish and metrics settings, and example pages
//     using cells, conditionals, lists and click actions
//
// # Usage
//
//	tmpl, err := templates.Get("full")
//	if err != nil {
//	    return err
//	}
//	if err := tmpl.Create(projectDir, cfg); err != nil {
//	    return err
//	}
//
// # Template Variables
//
//	{{.ProjectName}}     - Name of the project
//	{{.Description}}     - Project description
//	{{.Bucket}}          - Publish bucket (full template)
package templates
