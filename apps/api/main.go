package main

import (
	"log"
	"os"

	echoapi "github.com/acadinfo/backend/apps/api/echo"
	"github.com/acadinfo/backend/core"
	"github.com/acadinfo/backend/core/account"
	"github.com/acadinfo/backend/core/booking"
	"github.com/acadinfo/backend/core/catalog"
	emailsvc "github.com/acadinfo/backend/services/email"
	logsvc "github.com/acadinfo/backend/services/logger"
	docstore "github.com/acadinfo/backend/storage/document"
)

func main() {
	logger := logsvc.NewRollbarLogger(log.New(os.Stdout, "", log.LstdFlags), core.Conf)
	logger.Enable(!core.Conf.Debug)

	// set up the accounts document store
	store, err := docstore.Open(core.Conf.Store.Path)
	errAndDie(err)

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}
	acctSvc := account.NewService(store, mailSvc)
	ctl := catalog.NewProvider()
	ledger := booking.NewLedger(acctSvc, ctl)

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Address:    core.Conf.ServerAddress(),
			Logger:     logger,
			AccountSvc: acctSvc,
			Catalog:    ctl,
			Ledger:     ledger,
		},
	)
	app.Start()
}

func errAndDie(err error) {
	if err != nil {
		log.Fatalf("%+v", err)
	}
}
