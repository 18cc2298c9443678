package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/heartmarshall/carbonfootprint-backend/internal/domain"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint"
	"github.com/heartmarshall/carbonfootprint-backend/internal/service/footprint/engine"
)

// estimateOutput is what `calc` prints. Nothing is stored.
type estimateOutput[E any] struct {
	Calculations E                   `json:"calculations" yaml:"calculations"`
	Forecast     domain.Forecast     `json:"forecast"     yaml:"forecast"`
	Suggestions  []domain.Suggestion `json:"suggestions"  yaml:"suggestions"`
	Insights     domain.Insights     `json:"insights"     yaml:"insights"`
}

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Estimate a footprint offline",
		Long:  "Runs the emission calculator on flag values and prints the breakdown, forecast, suggestions and insights. Nothing is stored.",
	}
	cmd.AddCommand(newCalcPersonalCmd(), newCalcIndustrialCmd())
	return cmd
}

// estimator builds a service with no stores; estimates never persist.
func estimator(cmd *cobra.Command) *footprint.Service {
	return footprint.NewService(newLogger(cmd), engine.NewStandardCalculator(), nil, nil)
}

// ---------------------------------------------------------------------------
// calc personal
// ---------------------------------------------------------------------------

func newCalcPersonalCmd() *cobra.Command {
	var (
		country, transport, diet                   string
		electricity, driving, flights, shop, waste float64
	)

	cmd := &cobra.Command{
		Use:   "personal",
		Short: "Estimate a household footprint",
		Example: `  carbonctl calc personal --country "United States" --electricity-kwh 800 \
    --weekly-driving-km 200 --annual-flight-hours 20 --public-transport rarely \
    --diet mixed --monthly-shopping 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			input := footprint.PersonalInput{
				Country:              stringFlag(f, "country", country),
				ElectricityKwh:       floatFlag(f, "electricity-kwh", electricity),
				WeeklyDrivingKm:      floatFlag(f, "weekly-driving-km", driving),
				AnnualFlightHours:    floatFlag(f, "annual-flight-hours", flights),
				PublicTransportUsage: stringFlag(f, "public-transport", transport),
				DietType:             stringFlag(f, "diet", diet),
				MonthlyShopping:      floatFlag(f, "monthly-shopping", shop),
				WeeklyWasteKg:        floatFlag(f, "weekly-waste-kg", waste),
			}

			result, err := estimator(cmd).EstimatePersonal(input)
			if err != nil {
				return describeInvalid(err)
			}

			return writeOutput(cmd, estimateOutput[domain.PersonalEmissions]{
				Calculations: result.Calculations,
				Forecast:     result.Forecast,
				Suggestions:  result.Suggestions,
				Insights:     result.Insights,
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&country, "country", "", "country name, keys the electricity factor (unknown names use the default)")
	f.Float64Var(&electricity, "electricity-kwh", 0, "monthly electricity use in kWh")
	f.Float64Var(&driving, "weekly-driving-km", 0, "weekly car travel in km")
	f.Float64Var(&flights, "annual-flight-hours", 0, "flight hours per year")
	f.StringVar(&transport, "public-transport", "", "public transport usage (informational)")
	f.StringVar(&diet, "diet", "", "vegetarian, pescatarian, mixed or meat-heavy")
	f.Float64Var(&shop, "monthly-shopping", 0, "monthly shopping spend in currency units")
	f.Float64Var(&waste, "weekly-waste-kg", 0, "weekly household waste in kg (optional)")

	return cmd
}

// ---------------------------------------------------------------------------
// calc industrial
// ---------------------------------------------------------------------------

func newCalcIndustrialCmd() *cobra.Command {
	var (
		industry, size                                       string
		revenue, gas, diesel, grid, renewable, travel, waste float64
		water                                                float64
	)

	cmd := &cobra.Command{
		Use:   "industrial",
		Short: "Estimate a company footprint by GHG scope",
		Example: `  carbonctl calc industrial --industry-type manufacturing --company-size medium \
    --annual-revenue 50000000 --natural-gas 50000 --diesel-fuel 10000 \
    --grid-electricity 500000 --renewable-energy 25 --business-travel 100000 \
    --waste-generated 50 --water-usage 5000 --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := cmd.Flags()
			input := footprint.IndustrialInput{
				IndustryType:    stringFlag(f, "industry-type", industry),
				CompanySize:     stringFlag(f, "company-size", size),
				AnnualRevenue:   floatFlag(f, "annual-revenue", revenue),
				NaturalGas:      floatFlag(f, "natural-gas", gas),
				DieselFuel:      floatFlag(f, "diesel-fuel", diesel),
				GridElectricity: floatFlag(f, "grid-electricity", grid),
				RenewableEnergy: floatFlag(f, "renewable-energy", renewable),
				BusinessTravel:  floatFlag(f, "business-travel", travel),
				WasteGenerated:  floatFlag(f, "waste-generated", waste),
				WaterUsage:      floatFlag(f, "water-usage", water),
			}

			result, err := estimator(cmd).EstimateIndustrial(input)
			if err != nil {
				return describeInvalid(err)
			}

			return writeOutput(cmd, estimateOutput[domain.IndustrialEmissions]{
				Calculations: result.Calculations,
				Forecast:     result.Forecast,
				Suggestions:  result.Suggestions,
				Insights:     result.Insights,
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&industry, "industry-type", "", "industry (informational)")
	f.StringVar(&size, "company-size", "", "company size (informational)")
	f.Float64Var(&revenue, "annual-revenue", 0, "annual revenue, used for carbon intensity")
	f.Float64Var(&gas, "natural-gas", 0, "natural gas in m3 per year")
	f.Float64Var(&diesel, "diesel-fuel", 0, "diesel in litres per year")
	f.Float64Var(&grid, "grid-electricity", 0, "grid electricity in kWh per year")
	f.Float64Var(&renewable, "renewable-energy", 0, "renewable share of electricity, percent 0-100")
	f.Float64Var(&travel, "business-travel", 0, "business travel in km per year")
	f.Float64Var(&waste, "waste-generated", 0, "waste in tonnes per year")
	f.Float64Var(&water, "water-usage", 0, "water in m3 per year")

	return cmd
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// Unset flags stay nil so that validation reports them as missing.
func stringFlag(f *pflag.FlagSet, name, v string) *string {
	if !f.Changed(name) {
		return nil
	}
	return &v
}

func floatFlag(f *pflag.FlagSet, name string, v float64) *float64 {
	if !f.Changed(name) {
		return nil
	}
	return &v
}

// describeInvalid spells out field errors; unlike the HTTP API the CLI user
// is the operator.
func describeInvalid(err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	parts := make([]string, len(verr.Errors))
	for i, fe := range verr.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, "; "))
}
