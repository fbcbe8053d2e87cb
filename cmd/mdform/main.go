package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/hgrecco/mdform"
	"github.com/hgrecco/mdform/pkg/export"
	"github.com/hgrecco/mdform/pkg/prompt"
	"github.com/hgrecco/mdform/pkg/render"
)

type renderCmd struct {
	Path     string `arg:"" type:"existingfile" help:"Markdown document with form declarations."`
	Format   string `default:"html" enum:"html,markdown" help:"Output format."`
	Sanitize bool   `help:"Sanitise the HTML output."`
	Output   string `short:"o" placeholder:"FILE" help:"Write to FILE instead of stdout."`
}

func (c *renderCmd) Run() error {
	text, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}

	var opts []mdform.Option
	if c.Sanitize {
		opts = append(opts, mdform.WithRenderOptions(render.WithPolicy(render.DefaultPolicy())))
	}

	var result mdform.Result
	if c.Format == "markdown" {
		result, err = mdform.Preprocess(string(text), opts...)
	} else {
		result, err = mdform.Parse(string(text), opts...)
	}
	if err != nil {
		return err
	}
	reportWarnings(result.Warnings)

	out := result.HTML
	if c.Format == "markdown" {
		out = result.Text
	}
	return write(c.Output, []byte(out))
}

type exportCmd struct {
	Path      string `arg:"" type:"existingfile" help:"Markdown document with form declarations."`
	Format    string `default:"json" enum:"json,yaml,openapi" help:"Definition format."`
	Title     string `default:"Form submission" help:"OpenAPI document title."`
	Operation string `default:"submitForm" help:"OpenAPI operation id."`
	Output    string `short:"o" placeholder:"FILE" help:"Write to FILE instead of stdout."`
}

func (c *exportCmd) Run() error {
	text, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}

	result, err := mdform.Preprocess(string(text))
	if err != nil {
		return err
	}
	reportWarnings(result.Warnings)

	var out []byte
	switch c.Format {
	case "yaml":
		out, err = export.YAML(result.Form)
	case "openapi":
		doc, docErr := export.OpenAPI(result.Form,
			export.WithTitle(c.Title),
			export.WithOperationID(c.Operation),
		)
		if docErr != nil {
			return docErr
		}
		out, err = json.MarshalIndent(doc, "", "  ")
	default:
		out, err = export.JSON(result.Form)
	}
	if err != nil {
		return err
	}
	return write(c.Output, append(out, '\n'))
}

type fillCmd struct {
	Path   string `arg:"" type:"existingfile" help:"Markdown document with form declarations."`
	Output string `short:"o" placeholder:"FILE" help:"Write answers to FILE instead of stdout."`
}

func (c *fillCmd) Run() error {
	text, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}

	result, err := mdform.Preprocess(string(text))
	if err != nil {
		return err
	}
	reportWarnings(result.Warnings)

	values, err := prompt.Fill(context.Background(), result.Form, nil)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	return write(c.Output, append(out, '\n'))
}

func reportWarnings(warnings []mdform.Warning) {
	for _, warning := range warnings {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}
}

func write(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

var cli struct {
	Render renderCmd `cmd:"" help:"Convert a form document to HTML or preprocessed markdown."`
	Export exportCmd `cmd:"" help:"Emit the parsed form definition."`
	Fill   fillCmd   `cmd:"" help:"Fill the form interactively and print the answers."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("mdform"),
		kong.Description("Parse markdown documents with embedded form declarations."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
