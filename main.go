package main

import (
	"flag"
	"log"
	"os"

	"github.com/srct/whats-open/cmd"
)

// set at build time with -ldflags "-X main.apiVersion=..."
var apiVersion = "dev"

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	composeFile := flag.String("check-compose", "", "Validate a docker-compose file and exit")
	flag.Parse()

	if *composeFile != "" {
		if err := cmd.RunComposeCheck(*composeFile, os.Stdout, os.Environ()); err != nil {
			log.Println(err)
			os.Exit(1)
		}
		return
	}

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}
	if *shouldRunServer {
		if err := cmd.RunServer(apiVersion); err != nil {
			log.Fatal(err)
		}
	}
	if !*shouldRunMigrations && !*shouldRunServer {
		flag.Usage()
		os.Exit(2)
	}
}
