// davetiyectl davetiye token'larını sunucu olmadan üretir, çözer ve tarih
// seçicinin ay ızgarasını terminalde gösterir.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"davetiye.link/configs/configslog"
	"davetiye.link/pkg/calendar"
	"davetiye.link/pkg/eventcodec"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	configslog.InitLogger()
	defer configslog.SyncLogger()

	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		configslog.Log.Error("davetiyectl başarısız", zap.Error(err))
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	app := &cli.App{
		Name:      "davetiyectl",
		Usage:     "Encode, decode and inspect davetiye.link invitations.",
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			encodeCommand(),
			decodeCommand(),
			calendarCommand(),
		},
	}
	// Çıkış kodunu main belirler; testlerde süreç sonlanmamalı.
	app.ExitErrHandler = func(*cli.Context, error) {}
	return app
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:  "encode",
		Usage: "Build an invitation token from event details.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "names", Usage: "Event name, e.g. \"Anu & Raj\"", Required: true},
			&cli.StringFlag{Name: "host", Usage: "Host name", Required: true},
			&cli.StringFlag{Name: "date", Usage: "Event date (YYYY-MM-DD)", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Optional message"},
			&cli.StringFlag{Name: "template", Value: "classic", Usage: "Theme code"},
			&cli.StringSliceFlag{Name: "gift", Usage: "Gift code (repeatable)"},
			&cli.StringFlag{Name: "base-url", EnvVars: []string{"APP_BASE_URL"}, Usage: "Print share URLs under this base URL"},
		},
		Action: func(c *cli.Context) error {
			if _, err := calendar.ParseDate(c.String("date")); err != nil {
				return cli.Exit(fmt.Sprintf("invalid --date %q: expected YYYY-MM-DD", c.String("date")), 2)
			}
			gifts := c.StringSlice("gift")
			if gifts == nil {
				gifts = []string{}
			}
			token, err := eventcodec.Encode(eventcodec.EventRecord{
				Names:       c.String("names"),
				HostName:    c.String("host"),
				Date:        c.String("date"),
				Description: c.String("description"),
				TemplateID:  c.String("template"),
				Gifts:       gifts,
			})
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			w := c.App.Writer
			fmt.Fprintln(w, token)
			if base := strings.TrimRight(c.String("base-url"), "/"); base != "" {
				intro := base + "/intro/" + token
				fmt.Fprintf(w, "intro:    %s\n", intro)
				fmt.Fprintf(w, "event:    %s\n", base+"/event/"+token)
				fmt.Fprintf(w, "whatsapp: %s\n", "https://wa.me/?text="+url.QueryEscape(intro))
			}
			return nil
		},
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode an invitation token and print its record as JSON.",
		ArgsUsage: "<token>",
		Action: func(c *cli.Context) error {
			token := strings.TrimSpace(c.Args().First())
			// Tam link yapıştırıldıysa son path parçasını al.
			if i := strings.LastIndex(token, "/"); i >= 0 {
				token = token[i+1:]
			}
			rec, err := eventcodec.Decode(token)
			if err != nil {
				return cli.Exit(fmt.Sprintf("invitation unavailable (%s)", eventcodec.KindOf(err)), 1)
			}
			enc := json.NewEncoder(c.App.Writer)
			enc.SetEscapeHTML(false)
			enc.SetIndent("", "  ")
			return enc.Encode(rec)
		},
	}
}

func calendarCommand() *cli.Command {
	return &cli.Command{
		Name:  "calendar",
		Usage: "Print the 6x7 date picker grid for a month.",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Usage: "Year (default: current)"},
			&cli.IntFlag{Name: "month", Usage: "Month 1-12 (default: current)"},
			&cli.StringFlag{Name: "selected", Usage: "Highlight this date (YYYY-MM-DD)"},
		},
		Action: func(c *cli.Context) error {
			selected := c.String("selected")
			picker := calendar.NewPicker(selected, time.Now(), nil)
			if c.IsSet("year") || c.IsSet("month") {
				year, month := picker.View()
				if c.IsSet("year") {
					year = c.Int("year")
				}
				if c.IsSet("month") {
					if c.Int("month") < 1 || c.Int("month") > 12 {
						return cli.Exit("--month must be between 1 and 12", 2)
					}
					month = c.Int("month") - 1
				}
				picker = calendar.PickerAt(year, month, selected, nil)
			}
			printGrid(c.App.Writer, picker)
			return nil
		},
	}
}

// printGrid ayı yazdırır: komşu ay günleri parantez, seçili gün köşeli parantez içinde.
func printGrid(w io.Writer, p *calendar.Picker) {
	fmt.Fprintln(w, p.Title())
	fmt.Fprintln(w, " Su   Mo   Tu   We   Th   Fr   Sa")
	for i, cell := range p.Grid() {
		switch {
		case p.IsSelected(cell):
			fmt.Fprintf(w, "[%2d]", cell.Day)
		case !cell.InViewedMonth:
			fmt.Fprintf(w, "(%2d)", cell.Day)
		default:
			fmt.Fprintf(w, " %2d ", cell.Day)
		}
		if i%7 == 6 {
			fmt.Fprintln(w)
		} else {
			fmt.Fprint(w, " ")
		}
	}
}
