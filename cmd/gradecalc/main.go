package main

import (
	"context"
	"log"
	"os"

	"github.com/mind-engage/mindengage-grades/internal/config"
)

func main() {
	cfg := config.FromEnv()
	app := &app{cfg: cfg, in: os.Stdin, out: os.Stdout, errOut: os.Stderr}

	if err := newRootCommand(app).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
