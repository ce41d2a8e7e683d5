package main

import (
	"log"
	"os"

	"github.com/acadinfo/backend/core"
	docstore "github.com/acadinfo/backend/storage/document"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up the accounts document store
	store, err := docstore.Open(core.Conf.Store.Path)
	errAndDie(err)

	// start CLI
	cli := commandLine{repo: store}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
