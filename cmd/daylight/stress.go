package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/daylight/internal/client"
	"github.com/standardbeagle/daylight/internal/wire/common"
	"github.com/standardbeagle/daylight/internal/wire/html"
)

func stressCommand() *cli.Command {
	return &cli.Command{
		Name:      "stress",
		Usage:     "Stress test a server with every file matching the patterns",
		ArgsUsage: "PATTERN...",
		Flags:     clientFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("no glob patterns given")
			}
			paths, err := client.CollectPaths(c.Args().Slice())
			if err != nil {
				return err
			}
			fmt.Printf("Found %d files\n", len(paths))

			files, err := client.ReadFiles(paths, common.LanguageUnspecified, c.Bool("injections"))
			if err != nil {
				return err
			}

			start := time.Now()
			resp, err := client.New(c.String("addr")).HTML(c.Context, files, c.Uint64("timeout-ms"))
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			var success, timedOut, unknownLang, other int
			var doc html.Document
			for i := 0; i < resp.DocumentsLength(); i++ {
				if !resp.Documents(&doc, i) {
					continue
				}
				switch doc.ErrorCode() {
				case common.ErrorCodeNoError:
					success++
				case common.ErrorCodeTimedOut:
					timedOut++
				case common.ErrorCodeUnknownLanguage:
					unknownLang++
				default:
					other++
				}
			}
			total := success + timedOut + unknownLang + other

			fmt.Println("\n=== Stress Test Results ===")
			fmt.Printf("Total files:           %d\n", total)
			if total > 0 {
				fmt.Printf("Successful:            %d (%.1f%%)\n", success, float64(success)/float64(total)*100)
			}
			fmt.Printf("Failed (timeout):      %d\n", timedOut)
			fmt.Printf("Failed (unknown lang): %d\n", unknownLang)
			fmt.Printf("Failed (other):        %d\n", other)
			fmt.Printf("Time elapsed:          %v\n", elapsed)
			if elapsed > 0 {
				fmt.Printf("Throughput:            %.1f files/sec\n", float64(total)/elapsed.Seconds())
			}
			return nil
		},
	}
}
