package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"routeopt/internal/errors"
)

// Supported subcommands:
// - validate: Validate a road graph directory
// - metadata: Write metadata.json with counts and checksums
// - route:    Run one local routing query against a graph directory

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	metadataCmd := flag.NewFlagSet("metadata", flag.ExitOnError)
	routeCmd := flag.NewFlagSet("route", flag.ExitOnError)

	validateDir := validateCmd.String("dir", "./data/routing", "Graph directory to validate")

	metadataDir := metadataCmd.String("dir", "./data/routing", "Graph directory to describe")
	metadataRegion := metadataCmd.String("region", "sousse", "Region covered by the graph")
	metadataSource := metadataCmd.String("source", "", "Where the graph was extracted from")

	routeDir := routeCmd.String("dir", "./data/routing", "Graph directory")
	routePoints := routeCmd.String("points", "", "Waypoints as lat,lng;lat,lng;...")
	routeSpeed := routeCmd.Float64("speed", 30, "Average speed in km/h")
	routeSnap := routeCmd.Float64("snap", 1.0, "Max snap distance in km")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	flags := routingFlags{
		Validate: validateFlags{
			cmd: validateCmd,
			dir: validateDir,
		},
		Metadata: metadataFlags{
			cmd:    metadataCmd,
			dir:    metadataDir,
			region: metadataRegion,
			source: metadataSource,
		},
		Route: routeFlags{
			cmd:    routeCmd,
			dir:    routeDir,
			points: routePoints,
			speed:  routeSpeed,
			snap:   routeSnap,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type routingFlags struct {
	Validate validateFlags
	Metadata metadataFlags
	Route    routeFlags
}

type validateFlags struct {
	cmd *flag.FlagSet
	dir *string
}

type metadataFlags struct {
	cmd    *flag.FlagSet
	dir    *string
	region *string
	source *string
}

type routeFlags struct {
	cmd    *flag.FlagSet
	dir    *string
	points *string
	speed  *float64
	snap   *float64
}

func runSubcommand(ctx context.Context, flags *routingFlags) error {
	switch os.Args[1] {
	case "validate":
		return handleValidate(flags)
	case "metadata":
		return handleMetadata(flags)
	case "route":
		return handleRoute(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleValidate(flags *routingFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	return runValidate(os.Stdout, *flags.Validate.dir)
}

func handleMetadata(flags *routingFlags) error {
	if err := flags.Metadata.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse metadata flags")
	}

	return runMetadata(os.Stdout, *flags.Metadata.dir, *flags.Metadata.region, *flags.Metadata.source)
}

func handleRoute(ctx context.Context, flags *routingFlags) error {
	if err := flags.Route.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse route flags")
	}

	if *flags.Route.points == "" {
		return errors.New("--points flag is required for route command")
	}

	return runRoute(ctx, os.Stdout, routeOptions{
		dir:      *flags.Route.dir,
		points:   *flags.Route.points,
		speedKmh: *flags.Route.speed,
		snapKm:   *flags.Route.snap,
	})
}

func printUsage() {
	fmt.Println("Usage: routing <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  validate    Validate a road graph directory")
	fmt.Println("  metadata    Write metadata.json for a road graph directory")
	fmt.Println("  route       Run a local routing query")
	fmt.Println("")
	fmt.Println("Use 'routing <command> -h' for more information about a command.")
}
