package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Agere98/orbits"
	"github.com/Agere98/orbits/scenario"
)

func printerOf(cmd *cobra.Command) (*printer, error) {
	format, _ := cmd.Flags().GetString("output")
	return newPrinter(format, cmd.OutOrStdout())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			if commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "orbits %s (%s)\n", version, commit)
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "orbits %s\n", version)
		},
	}
}

// Transfer between two orbits around the same primary
func newSimpleCmd() *cobra.Command {
	var p orbits.SimpleParams
	cmd := &cobra.Command{
		Use:   "simple",
		Short: "Transfer between two orbits around the same primary body",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := p.Transfer()
			if err != nil {
				return err
			}
			logrus.WithField("transfer", t).Debug("computed")
			pr, err := printerOf(cmd)
			if err != nil {
				return err
			}
			return pr.result(orbits.NewResult(t))
		},
	}
	simpleFlags(cmd, &p)
	return cmd
}

func simpleFlags(cmd *cobra.Command, p *orbits.SimpleParams) {
	cmd.Flags().Float64Var(&p.PrimaryBodyMass, "mass", 0, "mass of the primary body (kg)")
	cmd.Flags().Float64Var(&p.StartingOrbitRadius, "from", 0, "radius of the starting orbit (m)")
	cmd.Flags().Float64Var(&p.DestinationOrbitRadius, "to", 0, "radius of the destination orbit (m)")
	_ = cmd.MarkFlagRequired("mass")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

// Transfer between orbits around two planets of the same primary
func newInterplanetaryCmd() *cobra.Command {
	var p orbits.InterplanetaryParams
	cmd := &cobra.Command{
		Use:   "interplanetary",
		Short: "Transfer between orbits around two planets of the same primary body",
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := p.Transfer()
			if err != nil {
				return err
			}
			logrus.WithField("transfer", t).Debug("computed")
			pr, err := printerOf(cmd)
			if err != nil {
				return err
			}
			return pr.result(orbits.NewResult(t))
		},
	}
	simpleFlags(cmd, &p.SimpleParams)
	cmd.Flags().Float64Var(&p.StartingPlanetMass, "from-planet-mass", 0, "mass of the starting planet (kg)")
	cmd.Flags().Float64Var(&p.StartingPlanetOrbitRadius, "from-planet-orbit", 0, "orbit radius of the starting planet (m)")
	cmd.Flags().Float64Var(&p.DestinationPlanetMass, "to-planet-mass", 0, "mass of the destination planet (kg)")
	cmd.Flags().Float64Var(&p.DestinationPlanetOrbitRadius, "to-planet-orbit", 0, "orbit radius of the destination planet (m)")
	for _, name := range []string{"from-planet-mass", "from-planet-orbit", "to-planet-mass", "to-planet-orbit"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

// Transfer between two bodies of the solar system catalog
func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog <from> <to>",
		Short: "Transfer between two bodies of the solar system catalog",
		Long:  "Without an altitude, the orbit each body follows is used. With an altitude, the circular orbit at that altitude above the body is used.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := orbits.NewSolarSystem()
			if err != nil {
				return err
			}
			start, err := catalog.Orbit(args[0], altitudeFlag(cmd, "from-altitude"))
			if err != nil {
				return err
			}
			dest, err := catalog.Orbit(args[1], altitudeFlag(cmd, "to-altitude"))
			if err != nil {
				return err
			}
			t, err := orbits.NewTransfer(start, dest)
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"from": start, "to": dest}).Info("transfer computed")
			pr, err := printerOf(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("phase") {
				phase, _ := cmd.Flags().GetFloat64("phase")
				return pr.details(orbits.NewDetailsAt(t, phase))
			}
			return pr.details(orbits.NewDetails(t))
		},
	}
	cmd.Flags().Float64("from-altitude", 0, "altitude above the starting body (m)")
	cmd.Flags().Float64("to-altitude", 0, "altitude above the destination body (m)")
	cmd.Flags().Float64("phase", 0, "current lead angle of the destination body over the starting body (deg)")
	return cmd
}

func altitudeFlag(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

type bodyRow struct {
	Name        string  `json:"name" yaml:"name"`
	Mass        float64 `json:"mass" yaml:"mass"`
	Radius      float64 `json:"radius" yaml:"radius"`
	Primary     string  `json:"primary,omitempty" yaml:"primary,omitempty"`
	OrbitRadius float64 `json:"orbitRadius,omitempty" yaml:"orbitRadius,omitempty"`
}

// List the catalog
func newBodiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bodies",
		Short: "List the bodies of the solar system catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := orbits.NewSolarSystem()
			if err != nil {
				return err
			}
			var rows []bodyRow
			for _, b := range catalog.Bodies() {
				row := bodyRow{Name: b.Name, Mass: b.Mass(), Radius: b.Radius}
				if o := b.Orbit(); o != nil {
					row.Primary = o.Primary().Name
					row.OrbitRadius = o.Radius()
				}
				rows = append(rows, row)
			}
			pr, err := printerOf(cmd)
			if err != nil {
				return err
			}
			return pr.print(rows, func(w io.Writer) {
				fmt.Fprintln(w, "NAME\tMASS (kg)\tRADIUS (m)\tPRIMARY\tORBIT (m)")
				for _, r := range rows {
					fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%s\t%.4g\n", r.Name, r.Mass, r.Radius, r.Primary, r.OrbitRadius)
				}
			})
		},
	}
}

type outcomeRow struct {
	Name    string          `json:"name" yaml:"name"`
	Error   string          `json:"error,omitempty" yaml:"error,omitempty"`
	Details *orbits.Details `json:"details,omitempty" yaml:"details,omitempty"`
}

// Evaluate a scenario file
func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario <file>",
		Short: "Evaluate the transfers of a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.LoadFile(args[0])
			if err != nil {
				return err
			}
			outcomes := s.Run()
			rows := make([]outcomeRow, len(outcomes))
			failed := 0
			for i, o := range outcomes {
				rows[i].Name = o.Name
				if o.Err != nil {
					failed++
					rows[i].Error = o.Err.Error()
					logrus.WithField("transfer", o.Name).WithError(o.Err).Warn("transfer failed")
					continue
				}
				d := orbits.NewDetails(o.Transfer)
				rows[i].Details = &d
			}
			pr, err := printerOf(cmd)
			if err != nil {
				return err
			}
			err = pr.print(rows, func(w io.Writer) {
				fmt.Fprintln(w, "TRANSFER\tPRIMARY\tTIME (days)\tINSERTION Δv (m/s)\tARRIVAL Δv (m/s)\tTOTAL Δv (m/s)")
				for _, r := range rows {
					if r.Details == nil {
						fmt.Fprintf(w, "%s\terror: %s\n", r.Name, r.Error)
						continue
					}
					fmt.Fprintf(w, "%s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\n", r.Name, r.Details.Primary, r.Details.TransferTime/86400, r.Details.InsertionDeltaV, r.Details.ArrivalDeltaV, r.Details.TotalDeltaV)
				}
			})
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d transfers failed", failed, len(rows))
			}
			return nil
		},
	}
}
