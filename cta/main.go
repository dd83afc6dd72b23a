package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/nahueld/cartera/cmd"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// the .env file is optional, the environment always wins
	godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(subcommands.HelpCommand(), "")
	commander.Register(subcommands.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
