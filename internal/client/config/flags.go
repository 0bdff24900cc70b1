package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/hacksnooze/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the stories API
//	-d string   path of the local session database
//	-t int      request timeout in seconds
//	-n int      maximum number of stories to fetch (0 = server default)
//	-r string   render mode: text or html
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs so that -c/-config and unknown
// flags do not reach this FlagSet.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-n", "-r", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the stories API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.IntVar(&cfg.StoryLimit, "n", cfg.StoryLimit, "maximum number of stories to fetch")
	fs.StringVar(&cfg.RenderMode, "r", cfg.RenderMode, "render mode: text or html")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
