package main

import (
	"log"
	"os"

	"github.com/acadly/spams/core"
	"github.com/acadly/spams/core/academic"
	emailsvc "github.com/acadly/spams/services/email"
	logsvc "github.com/acadly/spams/services/logger"
	"github.com/acadly/spams/storage/kv"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.LoadConfig()

	appLogger := logsvc.NewRollbarLogger(logger, conf)
	appLogger.Enable(conf.RollbarToken != "")

	kvs, err := kv.OpenFileStore(conf.StorageDir)
	errAndDie(err)

	store := academic.NewStore(kvs, conf, appLogger)
	svc := academic.NewService(store, emailsvc.NewConsoleService(conf), appLogger, conf)

	cli := commandLine{svc: svc}
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
