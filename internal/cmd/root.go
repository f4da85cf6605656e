package cmd

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rhartono/fitout-tracker/config"
	"github.com/rhartono/fitout-tracker/internal/items"
	"github.com/rhartono/fitout-tracker/internal/items/repository"
	"github.com/rhartono/fitout-tracker/internal/items/usecase"
	"github.com/rhartono/fitout-tracker/internal/logger"
	"github.com/rhartono/fitout-tracker/internal/tracking"
)

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Procurement tracking dashboard for hotel fit-out items",
	Long: `Tracker follows fit-out items (drapery, casegoods, lighting) through
purchase approval, fabrication, and delivery against a REST backend,
flagging the stages that have slipped past their target dates.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// wiring built once per invocation and shared by the subcommands
var (
	cfg *config.Config
	log logger.ZapLogger
	uc  items.UseCase
)

func init() {
	cobra.OnInitialize(initApp)
}

func initApp() {
	_ = godotenv.Load() // .env is optional
	cfg = config.LoadEnv()

	log = logger.NewZapLogger(&logger.ZapLoggerConfig{
		IsDevelopment:     cfg.App.Env == "development",
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	tracking.SetLogger(log)

	repo := repository.NewRESTRepository(
		cfg.API.BaseURL,
		time.Duration(cfg.API.TimeoutSeconds)*time.Second,
		log,
	)
	uc = usecase.NewItemUseCase(repo, cfg.UI.RowsPerPage, log)
}
