package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/josephlewis42/chainsh/core"
	"github.com/josephlewis42/chainsh/core/config"
	"github.com/josephlewis42/chainsh/core/logger"
	"github.com/josephlewis42/chainsh/core/vos"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgPath string
	debug   bool

	// exitCode is the status the shell finished with.
	exitCode int
)

func loadConfig() (*config.Configuration, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}

	configuration, err := config.Load(afero.NewOsFs(), cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}

	return configuration, err
}

func newAppLogger(w io.Writer) *log.Logger {
	if !debug {
		w = io.Discard
	}
	return log.New(w, "[chainsh] ", log.LstdFlags)
}

func shouldColor(setting string) bool {
	switch setting {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chainsh",
	Short: "Command chain shell",
	Long: `An interactive shell that runs commands chained with ;, &&, || and !.

Commands are separated by single spaces; there is no quoting, globbing,
redirection or piping.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		appLog := newAppLogger(cmd.ErrOrStderr())

		hostOS := vos.NewHostOS(vos.NewHostIO())
		if configuration.Path != "" {
			if err := hostOS.Setenv(vos.EnvPath, configuration.Path); err != nil {
				return err
			}
		}

		events := logger.NewNopLogger()
		if configuration.EventLogPath() != "" {
			logFd, err := configuration.OpenEventLog()
			if err != nil {
				return err
			}
			defer logFd.Close()

			appLog.Printf("Recording events to %s", configuration.EventLogPath())
			events = logger.NewJsonLinesLogRecorder(logFd)
		}

		shell, err := core.NewShell(
			hostOS,
			core.WithLogger(appLog),
			core.WithEvents(events.NewSession()),
			core.WithPrompt(configuration.Prompt),
			core.WithColor(shouldColor(configuration.Color)),
		)
		if err != nil {
			return err
		}

		rl, err := core.NewReadline(shell, configuration.HistoryPath())
		if err != nil {
			return err
		}
		defer rl.Close()

		exitCode = shell.Run(rl)
		appLog.Printf("Exiting with status %d", exitCode)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitCode)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config path, the built-in defaults are used if empty")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write debug logs to stderr")
}
