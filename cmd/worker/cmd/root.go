package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/erpcore/go-fin-ledger/cmd/setup"
	helperFlag "github.com/erpcore/go-fin-ledger/internal/common/flag"
	"github.com/erpcore/go-fin-ledger/internal/common/graceful"
	"github.com/erpcore/go-fin-ledger/internal/common/xlog"
	"github.com/erpcore/go-fin-ledger/internal/config"
	"github.com/erpcore/go-fin-ledger/internal/deliveries/job"
	"github.com/erpcore/go-fin-ledger/internal/services"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)
	rootCmd.AddCommand(migrateCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	// routes are static, no connection is needed to list them
	j := job.New(config.Config{}, &services.Services{}, nil)
	for _, name := range j.List() {
		fmt.Fprintln(ccmd.OutOrStdout(), name)
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version} -d={job-date}",
		Run:     runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdDate    = "date"
)

func runJob(ccmd *cobra.Command, args []string) {
	var (
		ctx = context.Background()
	)

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)

	s, stoppers, err := setup.Init("job")
	if err != nil {
		graceful.StopProcess(5*time.Second, stoppers...)
		xlog.Fatalf(ctx, "failed to setup app: %v", err)
	}
	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stoppers...)

	j := job.New(s.Config, s.Service, s.RepoLock)
	err = j.Start(ctx, helperFlag.Job{
		JobName: name,
		Version: version,
		Date:    date,
	})
	if err != nil {
		xlog.Warn(ctx, "job finished with error", xlog.Err(err))
	}
	xlog.Info(ctx, "job server stopped!")
}

var (
	migrateCmd = &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or roll back one step of the database migrations",
		Long:      ``,
		Example:   "worker migrate up",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{setup.MigrateUp, setup.MigrateDown},
		RunE: func(ccmd *cobra.Command, args []string) error {
			return setup.Migrate(ccmd.Context(), args[0])
		},
	}
)
