package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dssvels/invoicer/config"
	"github.com/dssvels/invoicer/invoice"
	"github.com/dssvels/invoicer/models"
)

func main() {
	app := &cli.App{
		Name:  "invoicer",
		Usage: "build invoice lines and emit PDF/CSV invoices",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the config file",
				Value: config.DefaultPath,
			},
		},
		Commands: []*cli.Command{
			generateCommand(),
			configCommand(),
			{
				Name:  "languages",
				Usage: "list supported invoice languages",
				Action: func(c *cli.Context) error {
					for _, lang := range invoice.Languages() {
						fmt.Println(lang)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "emit an invoice from the given lines",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "recipient", Usage: "recipient name (required unless --test-data)"},
			&cli.StringFlag{Name: "title", Usage: "invoice title (defaults to the localized title)"},
			&cli.StringFlag{Name: "description", Usage: "invoice description (defaults to the configured one)"},
			&cli.StringSliceFlag{Name: "line", Usage: "invoice line as 'description|quantity|price' (repeatable)"},
			&cli.StringFlag{Name: "import", Usage: "read tab-separated lines from FILE, or - for stdin"},
			&cli.BoolFlag{Name: "test-data", Usage: "fill the ledger with demo lines"},
			&cli.StringFlag{Name: "out", Value: "invoices", Usage: "output directory"},
			&cli.StringFlag{Name: "logo", Usage: "optional logo image placed on the invoice"},
		},
		Action: runGenerate,
	}
}

func runGenerate(c *cli.Context) error {
	store := config.Open(c.String("config"))
	cfg, err := store.Load()
	if err != nil {
		return err
	}

	var ledger invoice.Ledger
	recipient := c.String("recipient")

	if c.Bool("test-data") {
		demo := ledger.LoadTestData()
		if recipient == "" {
			recipient = demo
		}
	}
	if path := c.String("import"); path != "" {
		if err := importLines(&ledger, path); err != nil {
			return err
		}
	}
	for _, raw := range c.StringSlice("line") {
		parts := strings.SplitN(raw, "|", 3)
		if len(parts) != 3 {
			return fmt.Errorf("malformed --line %q: want 'description|quantity|price'", raw)
		}
		if _, err := ledger.Add(parts[0], parts[1], parts[2]); err != nil {
			return err
		}
	}

	description := c.String("description")
	if description == "" {
		description = cfg.Description
	}

	emitter := &invoice.Emitter{
		Store:     store,
		Renderer:  &invoice.Renderer{LogoPath: c.String("logo")},
		OutputDir: c.String("out"),
	}
	result, err := emitter.Emit(models.InvoiceInput{
		RecipientName: recipient,
		Title:         c.String("title"),
		Description:   description,
	}, &ledger)
	if err != nil {
		return err
	}

	fmt.Printf("invoice %d emitted (total € %s)\n", result.Number, result.Total.StringFixed(2))
	fmt.Println("  " + result.PDFPath)
	fmt.Println("  " + result.CSVPath)
	return nil
}

func importLines(ledger *invoice.Ledger, path string) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	inputs, err := invoice.ParseTabular(r)
	if err != nil {
		return err
	}
	for _, in := range inputs {
		if _, err := ledger.Add(in.Description, in.Quantity, in.Price); err != nil {
			return err
		}
	}
	return nil
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "show or change the persisted configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "print the current configuration",
				Action: func(c *cli.Context) error {
					cfg, err := config.Open(c.String("config")).Load()
					if err != nil {
						return err
					}
					out, err := json.MarshalIndent(cfg, "", "  ")
					if err != nil {
						return err
					}
					fmt.Println(string(out))
					return nil
				},
			},
			{
				Name:  "set",
				Usage: "change one or more configuration fields",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "payment-terms", Usage: "payment term in days"},
					&cli.StringFlag{Name: "language", Usage: "invoice language (nl or en)"},
					&cli.StringFlag{Name: "description", Usage: "default invoice description"},
				},
				Action: func(c *cli.Context) error {
					store := config.Open(c.String("config"))
					cfg, err := store.Load()
					if err != nil {
						return err
					}
					if c.IsSet("payment-terms") {
						cfg.PaymentTermsDays = c.Int("payment-terms")
					}
					if c.IsSet("language") {
						cfg.Language = c.String("language")
					}
					if c.IsSet("description") {
						cfg.Description = c.String("description")
					}
					if msg := cfg.Validate(); msg != "" {
						return fmt.Errorf("invalid config: %s", msg)
					}
					return store.Save(cfg)
				},
			},
		},
	}
}
