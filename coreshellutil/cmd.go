/*
Copyright © 2026 the coreshell authors.
This file is part of coreshell.

coreshell is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

coreshell is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with coreshell.  If not, see <http://www.gnu.org/licenses/>.
*/

package coreshellutil

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/coreshell"
	"github.com/spatialmodel/coreshell/science/mie"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

// Log receives progress messages. Results are written to the command
// output instead.
var Log = logrus.New()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	modeFlags := []*pflag.FlagSet{modeCmd.Flags(), sweepCmd.Flags(), batchCmd.Flags(), plotCmd.Flags()}

	// Options are the configuration options available to coreshell.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel sets the verbosity of progress messages: one of
              debug, info, warning, or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "Radius",
			usage: `
              Radius is the total (core plus shell) radius of the particle
              in μm.`,
			shorthand:  "r",
			defaultVal: 0.1,
			flagsets:   []*pflag.FlagSet{particleCmd.Flags()},
		},
		{
			name: "CoreFraction",
			usage: `
              CoreFraction is the ratio of core radius to total particle
              radius. It must be between 0 and 1.`,
			shorthand:  "f",
			defaultVal: 0.5,
			flagsets:   append([]*pflag.FlagSet{particleCmd.Flags()}, modeFlags...),
		},
		{
			name: "Wavelength",
			usage: `
              Wavelength is the wavelength of the incident light in μm.`,
			shorthand:  "w",
			defaultVal: 0.55,
			flagsets:   []*pflag.FlagSet{particleCmd.Flags(), modeCmd.Flags(), plotCmd.Flags()},
		},
		{
			name: "Wavelengths",
			usage: `
              Wavelengths is the list of wavelengths in μm at which bulk
              optical properties are calculated. Modes in a batch file may
              override it.`,
			defaultVal: []string{"0.4", "0.55", "0.7"},
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "NShell",
			usage: `
              NShell is the complex refractive index of the particle shell,
              written like 1.33 or 1.53+0.01i.`,
			defaultVal: "1.33",
			flagsets:   append([]*pflag.FlagSet{particleCmd.Flags()}, modeFlags...),
		},
		{
			name: "NCore",
			usage: `
              NCore is the complex refractive index of the particle core,
              written like 1.95+0.79i.`,
			defaultVal: "1.95+0.79i",
			flagsets:   append([]*pflag.FlagSet{particleCmd.Flags()}, modeFlags...),
		},
		{
			name: "ModeRadius",
			usage: `
              ModeRadius is the geometric mean radius of the lognormal
              size distribution in μm.`,
			defaultVal: 0.1,
			flagsets:   modeFlags,
		},
		{
			name: "ModeSigma",
			usage: `
              ModeSigma is the geometric standard deviation of the
              lognormal size distribution. It must be greater than 1.`,
			defaultVal: 1.6,
			flagsets:   modeFlags,
		},
		{
			name: "RMin",
			usage: `
              RMin is the smallest radius in the integration grid in μm.`,
			defaultVal: coreshell.DefaultRMin,
			flagsets:   modeFlags,
		},
		{
			name: "RMax",
			usage: `
              RMax is the largest radius in the integration grid in μm.`,
			defaultVal: coreshell.DefaultRMax,
			flagsets:   modeFlags,
		},
		{
			name: "NPoints",
			usage: `
              NPoints is the number of radii in the integration grid.`,
			defaultVal: coreshell.DefaultNPoints,
			flagsets:   modeFlags,
		},
		{
			name: "Workers",
			usage: `
              Workers is the number of particles to calculate concurrently.
              Zero means one per processor.`,
			defaultVal: 0,
			flagsets:   modeFlags,
		},
		{
			name: "CacheSize",
			usage: `
              CacheSize is the number of single-particle results to keep in
              memory for reuse across wavelengths and modes. Zero disables
              the cache.`,
			defaultVal: 10000,
			flagsets:   modeFlags,
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path where results are written. Files ending
              in .xlsx are written as spreadsheets and any other name as
              CSV. If empty, CSV is written to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{sweepCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "BatchFile",
			usage: `
              BatchFile is a TOML file with one [[mode]] table per
              aerosol mode to be calculated.`,
			shorthand:  "b",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path of the image file to create. The format
              is determined by the extension, for example .png or .svg.`,
			defaultVal: "coreshell.png",
			flagsets:   []*pflag.FlagSet{plotCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("CORESHELL")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	Log.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(particleCmd)
	Root.AddCommand(modeCmd)
	Root.AddCommand(sweepCmd)
	Root.AddCommand(batchCmd)
	Root.AddCommand(plotCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("coreshell: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("coreshell: invalid LogLevel: %v", err)
	}
	Log.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "coreshell",
	Short: "Optical properties of core-shell aerosol particles.",
	Long: `coreshell calculates the scattering and absorption of light by spherical
particles made of an absorbing core inside a concentric shell, and the bulk
mass-specific optical properties of lognormal populations of such particles.
Use the subcommands specified below to access the functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'CORESHELL_VAR' where 'VAR' is the
upper-case name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	SilenceUsage:      true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of coreshell.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "coreshell v%s\n", coreshell.Version)
	},
	DisableAutoGenTag: true,
}

var particleCmd = &cobra.Command{
	Use:   "particle",
	Short: "Calculate the efficiencies of a single particle",
	Long: `particle calculates the scattering and absorption efficiencies and the
asymmetry parameter of a single core-shell particle with the given Radius,
CoreFraction, refractive indices, and Wavelength. Scattering efficiency is
capped at the extinction efficiency.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		nShell, nCore, err := refractiveIndices(Cfg)
		if err != nil {
			return err
		}
		radius, cf, wavelength := Cfg.GetFloat64("Radius"), Cfg.GetFloat64("CoreFraction"), Cfg.GetFloat64("Wavelength")
		if err := checkCoreFraction(cf); err != nil {
			return err
		}
		e, err := coreshell.Scatter(mie.CoreShell{}, radius, cf, wavelength, nShell, nCore)
		if err != nil {
			return err
		}
		Log.WithFields(logrus.Fields{
			"radius":       radius,
			"coreFraction": cf,
			"wavelength":   wavelength,
		}).Debug("calculated particle efficiencies")
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Qsca: %g\n", e.Qsca)
		fmt.Fprintf(w, "Qabs: %g\n", e.Qabs)
		fmt.Fprintf(w, "Asym: %g\n", e.Asym)
		return nil
	},
	DisableAutoGenTag: true,
}

var modeCmd = &cobra.Command{
	Use:   "mode",
	Short: "Calculate bulk optical properties of a lognormal mode",
	Long: `mode integrates single-particle efficiencies over a lognormal size
distribution with geometric mean radius ModeRadius and geometric standard
deviation ModeSigma, and prints the mass-specific scattering and absorption
cross sections per kilogram of particle water-equivalent mass and the
asymmetry parameter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := modeConfig(Cfg)
		if err != nil {
			return err
		}
		nShell, nCore, err := refractiveIndices(Cfg)
		if err != nil {
			return err
		}
		cf := Cfg.GetFloat64("CoreFraction")
		it := integrator(Cfg)
		b, err := it.Integrate(mode, cf, coreshell.Medium{
			NShell: nShell, NCore: nCore, Wavelength: Cfg.GetFloat64("Wavelength"),
		})
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "SpecificScattering: %g m²/kg\n", b.SpecificScattering)
		fmt.Fprintf(w, "SpecificAbsorption: %g m²/kg\n", b.SpecificAbsorption)
		fmt.Fprintf(w, "Asymmetry: %g\n", b.Asymmetry)
		return nil
	},
	DisableAutoGenTag: true,
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Calculate bulk optical properties over a range of wavelengths",
	Long: `sweep calculates the bulk optical properties of one lognormal mode at each
of the Wavelengths and writes a table of the results to OutputFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, err := modeSpec(Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		rows, err := Sweep(integrator(Cfg), spec)
		if err != nil {
			return err
		}
		return WriteResults(cmd.OutOrStdout(), outputFile, rows)
	},
	DisableAutoGenTag: true,
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate bulk optical properties of several modes",
	Long: `batch reads a list of aerosol modes from the TOML file BatchFile and
calculates the bulk optical properties of each of them at each of its
wavelengths, writing a table of the results to OutputFile. Each mode is
specified in its own table, for example:

	[[mode]]
	Name = "accumulation"
	Radius = 0.1
	Sigma = 1.6
	CoreFraction = 0.3
	NShell = "1.33"
	NCore = "1.95+0.79i"
	Wavelengths = [0.55, 1.0]

Fields that are left out take the values of the corresponding global
configuration options (Radius and Sigma default to ModeRadius and
ModeSigma).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := modeSpec(Cfg)
		if err != nil {
			return err
		}
		specs, err := ReadBatch(os.ExpandEnv(Cfg.GetString("BatchFile")), defaults)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		rows, err := Sweep(integrator(Cfg), specs...)
		if err != nil {
			return err
		}
		return WriteResults(cmd.OutOrStdout(), outputFile, rows)
	},
	DisableAutoGenTag: true,
}

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Plot the size-resolved contributions of a mode",
	Long: `plot integrates one lognormal mode at Wavelength and draws the
contribution of each particle size to total scattering and absorption
(efficiency times lognormal weight) against particle radius. The figure is
saved to PlotFile.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := modeConfig(Cfg)
		if err != nil {
			return err
		}
		nShell, nCore, err := refractiveIndices(Cfg)
		if err != nil {
			return err
		}
		plotFile, err := checkOutputFile(Cfg.GetString("PlotFile"))
		if err != nil {
			return err
		}
		it := integrator(Cfg)
		in, err := it.Detail(mode, Cfg.GetFloat64("CoreFraction"), coreshell.Medium{
			NShell: nShell, NCore: nCore, Wavelength: Cfg.GetFloat64("Wavelength"),
		})
		if err != nil {
			return err
		}
		if err := PlotIntegrand(in, plotFile); err != nil {
			return err
		}
		Log.WithField("file", plotFile).Info("saved plot")
		return nil
	},
	DisableAutoGenTag: true,
}

// integrator returns an Integrator using the Mie solver, optionally
// behind a cache, with the configured number of workers.
func integrator(cfg *viper.Viper) *coreshell.Integrator {
	var s coreshell.Solver = mie.CoreShell{}
	if n := cfg.GetInt("CacheSize"); n > 0 {
		s = coreshell.NewCachedSolver(s, n)
	}
	workers := cfg.GetInt("Workers")
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &coreshell.Integrator{Solver: s, Workers: workers}
}
