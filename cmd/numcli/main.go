package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"numero-bot/internal/numerology"
)

// numcli corre el motor de cálculo sin base de datos ni servicio de
// interpretación: útil para verificar cálculos a mano.
func main() {
	rootCmd := &cobra.Command{
		Use:           "numcli",
		Short:         "Motor de cálculo numerológico en línea de comandos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(compatibilityCmd())
	rootCmd.AddCommand(personalYearCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func profileCmd() *cobra.Command {
	var asJSON bool
	var dumpDir string

	cmd := &cobra.Command{
		Use:   "profile <birthdate> <full-name>",
		Short: "Calcula el perfil de una persona",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := numerology.ComputeProfile(args[0], args[1])
			if err != nil {
				return err
			}

			if dumpDir != "" {
				logger, _ := zap.NewDevelopment()
				defer logger.Sync()
				numerology.NewDumper(dumpDir, logger).DumpProfile(profile)
			}

			if asJSON {
				return printJSON(cmd, profile)
			}
			fmt.Fprintln(cmd.OutOrStdout(), profile.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "imprimir el perfil como JSON")
	cmd.Flags().StringVar(&dumpDir, "dump", "", "directorio para el volcado de depuración")
	return cmd
}

func compatibilityCmd() *cobra.Command {
	var asJSON bool
	var dumpDir string

	cmd := &cobra.Command{
		Use:   "compatibility <birthdate1> <name1> <birthdate2> <name2>",
		Short: "Calcula la compatibilidad de una pareja",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := numerology.ComputeCompatibility(
				numerology.Person{Birthdate: args[0], FullName: args[1]},
				numerology.Person{Birthdate: args[2], FullName: args[3]},
			)
			if err != nil {
				return err
			}

			if dumpDir != "" {
				logger, _ := zap.NewDevelopment()
				defer logger.Sync()
				numerology.NewDumper(dumpDir, logger).DumpCompatibility(result)
			}

			if asJSON {
				return printJSON(cmd, result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Summary())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "imprimir el resultado como JSON")
	cmd.Flags().StringVar(&dumpDir, "dump", "", "directorio para el volcado de depuración")
	return cmd
}

func personalYearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personal-year <birthdate> [year]",
		Short: "Calcula el arcano del año personal",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year := time.Now().Year()
			if len(args) == 2 {
				parsed, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("invalid year %q: %w", args[1], err)
				}
				year = parsed
			}

			arcane, err := numerology.PersonalYear(args[0], year)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d: аркан %d (%.1f%%)\n",
				year, arcane, numerology.ArcanePercent(arcane))
			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
