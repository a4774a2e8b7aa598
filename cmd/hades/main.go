// Command hades compiles HADES test-stand geometries into GDML files.
package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vbiancacci/legend-pygeom-hades/assembly"
	"github.com/vbiancacci/legend-pygeom-hades/config"
	"github.com/vbiancacci/legend-pygeom-hades/crystal"
	"github.com/vbiancacci/legend-pygeom-hades/gdml"
	"github.com/vbiancacci/legend-pygeom-hades/metadata"
	"github.com/vbiancacci/legend-pygeom-hades/registry"
	"github.com/vbiancacci/legend-pygeom-hades/runs"
)

var (
	flagConfig          string
	flagDetector        string
	flagMeasurement     string
	flagRun             string
	flagTable           int
	flagAssemblies      []string
	flagAllowUnverified bool
	flagOutput          string
	flagDebug           bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hades",
		Short: "compile HADES test-stand geometries",
		Long:  "compiles germanium detector test-stand geometries into GDML files",
	}
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file")
	rootCmd.PersistentFlags().StringVar(&flagDetector, "detector", "", "detector name")
	rootCmd.PersistentFlags().StringVar(&flagMeasurement, "measurement", "", "measurement identifier")
	rootCmd.PersistentFlags().StringVar(&flagRun, "run", "", "source run id")
	rootCmd.PersistentFlags().IntVar(&flagTable, "table", 0, "lead castle measurement table, 1 or 2")
	rootCmd.PersistentFlags().StringSliceVar(&flagAssemblies, "assemblies", nil,
		"assemblies to build: hpge, lead_castle, source")
	rootCmd.PersistentFlags().BoolVar(&flagAllowUnverified, "allow-unverified", false,
		"build geometry branches not verified for production")
	rootCmd.AddCommand(cmdDump, cmdVolumes, cmdTemplates, cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var cmdDump = &cobra.Command{
	Use:   "dump",
	Short: "construct the geometry and write it as GDML",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		reg, err := construct(conf)
		if err != nil {
			return err
		}
		if flagDebug {
			spew.Fdump(os.Stderr, reg.LogicalNames(), reg.PhysicalNames())
		}
		if conf.Output == "" {
			return gdml.Write(reg, os.Stdout)
		}
		if err := gdml.WriteFile(reg, conf.Output); err != nil {
			return err
		}
		log.WithField("path", conf.Output).Info("wrote geometry")
		return nil
	},
}

var cmdVolumes = &cobra.Command{
	Use:   "volumes",
	Short: "construct the geometry and list its volumes",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		reg, err := construct(conf)
		if err != nil {
			return err
		}
		fmt.Println("logical volumes:")
		for _, name := range reg.LogicalNames() {
			fmt.Println("  " + name)
		}
		fmt.Println("placements:")
		for _, name := range reg.PhysicalNames() {
			fmt.Println("  " + name)
		}
		return nil
	},
}

// version is overridden at build time with -ldflags.
var version = "dev"

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "print the version",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hades " + version)
	},
}

var cmdTemplates = &cobra.Command{
	Use:   "templates",
	Short: "list the bundled geometry templates",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range gdml.TemplateNames() {
			fmt.Println(name)
		}
	},
}

func init() {
	cmdDump.Flags().StringVarP(&flagOutput, "output", "o", "", "output GDML file, stdout if empty")
	cmdDump.Flags().BoolVar(&flagDebug, "debug", false, "dump the registry contents to stderr")
}

// loadConfig reads the config file and applies the command line overrides
// on top.
func loadConfig() (config.Config, error) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	if flagDetector != "" {
		conf.Detector = flagDetector
	}
	if flagMeasurement != "" {
		conf.Measurement = flagMeasurement
	}
	if flagRun != "" {
		conf.Run = flagRun
	}
	if flagTable != 0 {
		conf.LeadCastleTable = flagTable
	}
	if len(flagAssemblies) > 0 {
		conf.Assemblies = flagAssemblies
	}
	if flagAllowUnverified {
		conf.AllowUnverified = true
	}
	if flagOutput != "" {
		conf.Output = flagOutput
	}

	if err := conf.Validate(); err != nil {
		return config.Config{}, err
	}
	if err := config.SetupLogging(conf); err != nil {
		return config.Config{}, err
	}
	return conf, nil
}

// construct wires the configured stores into the assembler and runs it.
func construct(conf config.Config) (*registry.Registry, error) {
	store, closeStore, err := openStore(conf)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	hades, err := metadata.DefaultHADESTable()
	if err != nil {
		return nil, err
	}
	db, err := openRunDB(conf)
	if err != nil {
		return nil, err
	}

	return assembly.Construct(assembly.Options{
		Detector:        conf.Detector,
		Measurement:     conf.Measurement,
		Assemblies:      conf.Assemblies,
		LeadCastleTable: conf.LeadCastleTable,
		AllowUnverified: conf.AllowUnverified,
		Campaign:        conf.Campaign,
		Run:             runs.Request{Run: conf.Run, Position: conf.Position},
		Store:           store,
		HADES:           hades,
		RunDB:           db,
		Shapes:          crystal.PolyconeProvider{},
	})
}

func openStore(conf config.Config) (metadata.Store, func(), error) {
	if conf.PublicMetadata {
		store, err := metadata.NewPublicStore()
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
	store, err := metadata.NewMongoStore(conf.MetadataURL)
	if err != nil {
		return nil, nil, err
	}
	return store, store.Close, nil
}

func openRunDB(conf config.Config) (*runs.DB, error) {
	if conf.RunDBPath != "" {
		return runs.LoadFile(conf.RunDBPath)
	}
	return runs.SampleDB()
}
