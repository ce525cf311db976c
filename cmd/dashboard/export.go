package main

import (
	"fmt"
	"os"

	"github.com/ougirez/energy-dashboard/internal/api"
	"github.com/ougirez/energy-dashboard/internal/domain/dto"
	"github.com/ougirez/energy-dashboard/internal/pkg/logger"
	"github.com/ougirez/energy-dashboard/internal/service/dashboard"
	"github.com/ougirez/energy-dashboard/internal/service/energy"
	"github.com/ougirez/energy-dashboard/internal/service/report"
	"github.com/spf13/cobra"
)

func exportCmd(configFile *string) *cobra.Command {
	var out string
	req := dto.NewDashboardRequest()

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Compute the dashboard once and write the PDF report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, *configFile)
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := api.NewValidator().Validate(req); err != nil {
				return err
			}
			profile, financials, err := req.ToDomain()
			if err != nil {
				return err
			}

			source := energy.NewService(energy.Config{
				APIURL:        cfg.APIURL,
				Timeout:       cfg.Fetch.Timeout,
				Retries:       cfg.Fetch.Retries,
				RetryInterval: cfg.Fetch.RetryInterval,
			})
			reports := report.NewService(report.Config{
				FileName:           cfg.Report.FileName,
				PaybackPlaceholder: cfg.Report.PaybackPlaceholder,
				Compress:           cfg.Report.Compress,
			})

			export, err := dashboard.NewService(source, reports).Export(cmd.Context(), profile, financials)
			if err != nil {
				return err
			}
			if export.Advisory != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", export.Advisory.Message)
			}

			if out == "" {
				out = export.FileName
			}
			if err := os.WriteFile(out, export.Content, 0o644); err != nil {
				return fmt.Errorf("os.WriteFile: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "report %s written to %s\n", export.Report.ID, out)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "output path (defaults to the configured report file name)")
	f.StringVar(&req.Profile.Type, "type", req.Profile.Type, "building type: Office, School, Hospital or Retail")
	f.StringVar(&req.Profile.Address, "address", req.Profile.Address, "building address")
	f.Float64Var(&req.Profile.FloorAreaSqft, "area", req.Profile.FloorAreaSqft, "floor area in sqft")
	f.Float64Var(&req.Profile.OccupancyRate, "occupancy", req.Profile.OccupancyRate, "occupancy rate in [0,1]")
	f.IntVar(&req.Profile.OperationHoursPerDay, "hours", req.Profile.OperationHoursPerDay, "operation hours per day")
	f.Float64Var(&req.Financials.InvestmentCost, "cost", req.Financials.InvestmentCost, "investment cost in $")
	f.Float64Var(&req.Financials.ElectricityPrice, "price", req.Financials.ElectricityPrice, "electricity price in $/kWh")

	return cmd
}
