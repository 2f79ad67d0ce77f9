package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/daylight/internal/client"
	"github.com/standardbeagle/daylight/internal/wire/common"
	"github.com/standardbeagle/daylight/internal/wire/html"
	"github.com/standardbeagle/daylight/internal/wire/spans"
)

func clientFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Aliases: []string{"a"},
			Usage:   "Server address",
			Value:   "127.0.0.1:8080",
		},
		&cli.StringFlag{
			Name:    "language",
			Aliases: []string{"l"},
			Usage:   "Force a language instead of inferring from extensions",
		},
		&cli.Uint64Flag{
			Name:  "timeout-ms",
			Usage: "Per-file timeout (0 = server default)",
		},
		&cli.BoolFlag{
			Name:  "injections",
			Usage: "Highlight embedded languages inside host documents",
		},
	}
}

func gatherFiles(c *cli.Context) ([]client.FileSpec, error) {
	if c.NArg() == 0 {
		return nil, fmt.Errorf("no files given")
	}
	lang := common.LanguageUnspecified
	if name := c.String("language"); name != "" {
		var err error
		if lang, err = client.ResolveLanguageName(name); err != nil {
			return nil, err
		}
	}
	paths, err := client.CollectPaths(c.Args().Slice())
	if err != nil {
		return nil, err
	}
	return client.ReadFiles(paths, lang, c.Bool("injections"))
}

func highlightCommand() *cli.Command {
	return &cli.Command{
		Name:      "highlight",
		Usage:     "Highlight files as HTML",
		ArgsUsage: "PATH...",
		Flags:     clientFlags(),
		Action: func(c *cli.Context) error {
			files, err := gatherFiles(c)
			if err != nil {
				return err
			}
			resp, err := client.New(c.String("addr")).HTML(c.Context, files, c.Uint64("timeout-ms"))
			if err != nil {
				return err
			}

			var doc html.Document
			for i := 0; i < resp.DocumentsLength(); i++ {
				if !resp.Documents(&doc, i) {
					continue
				}
				fmt.Printf("==> %s [%s] %s\n", doc.Filename(), doc.Language(), doc.ErrorCode())
				for j := 0; j < doc.LinesLength(); j++ {
					fmt.Print(string(doc.Lines(j)))
				}
			}
			return nil
		},
	}
}

func spansCommand() *cli.Command {
	return &cli.Command{
		Name:      "spans",
		Usage:     "Highlight files as numeric span tuples",
		ArgsUsage: "PATH...",
		Flags:     clientFlags(),
		Action: func(c *cli.Context) error {
			files, err := gatherFiles(c)
			if err != nil {
				return err
			}
			resp, err := client.New(c.String("addr")).Spans(c.Context, files, c.Uint64("timeout-ms"))
			if err != nil {
				return err
			}

			names := make([]string, resp.HighlightNamesLength())
			for i := range names {
				names[i] = string(resp.HighlightNames(i))
			}

			var doc spans.Document
			var span spans.Span
			for i := 0; i < resp.DocumentsLength(); i++ {
				if !resp.Documents(&doc, i) {
					continue
				}
				fmt.Printf("==> %s [%s] %s\n", doc.Filename(), doc.Language(), doc.ErrorCode())
				for j := 0; j < doc.SpansLength(); j++ {
					if !doc.Spans(&span, j) {
						continue
					}
					name := "?"
					if int(span.Index()) < len(names) {
						name = names[span.Index()]
					}
					fmt.Printf("%8d..%-8d %s\n", span.Start(), span.End(), name)
				}
			}
			return nil
		},
	}
}
