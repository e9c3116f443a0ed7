package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"regiontrip/internal/app"
)

var (
	configPath string
	appKey     string
	lang       string
	dataset    string
	seed       uint64
	verbose    bool

	appCtx *app.App
	logger *zap.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:   "regiontrip",
		Short: "Browse Korean regions and get a random travel recommendation",
		Long: `regiontrip walks the province → district hierarchy interactively.

Enter a 2-digit province code to load its districts, a full district code to
see its attractions, "~" to go back, "q" to quit, or an empty line to confirm
and get one random destination from the listed districts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, required := configPath, true
			if path == "" {
				p, err := app.DefaultPath()
				if err != nil {
					return err
				}
				path, required = p, false
			}
			cfg, err := app.LoadConfig(path, required)
			if err != nil {
				return err
			}
			cfg.ApplyEnv(os.Getenv)
			if appKey != "" {
				cfg.AppKey = appKey
			}
			if lang != "" {
				cfg.Language = lang
			}
			if dataset != "" {
				cfg.Dataset = dataset
			}

			logger, err = app.NewLogger(cfg.Log.Level, verbose)
			if err != nil {
				return err
			}
			logger = logger.With(zap.String("session", uuid.NewString()))

			w, err := app.NewWire(cfg, logger)
			if err != nil {
				return err
			}
			appCtx = app.New(w, cmd.InOrStdin(), cmd.OutOrStdout())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := appCtx.Explore(cmd.Context(), app.NewRand(seed))
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.regiontrip/config.yaml)")
	root.PersistentFlags().StringVar(&appKey, "appkey", "", "SK Open API app key (or $"+app.EnvAppKey+")")
	root.PersistentFlags().StringVar(&lang, "lang", "", "message language: ko or en")
	root.PersistentFlags().StringVar(&dataset, "dataset", "", "regions YAML replacing the built-in tables")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")
	root.Flags().Uint64Var(&seed, "seed", 0, "random seed for the recommendation (0 picks one)")

	root.AddCommand(provincesCmd(), spotsCmd(), districtsCmd())

	err := root.Execute()
	// A missing app key has already been reported on the console.
	if err != nil && !errors.Is(err, app.ErrMissingAppKey) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
