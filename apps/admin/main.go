package main

import (
	"log"
	"os"

	"github.com/trezcool/learnhub/core"
	"github.com/trezcool/learnhub/core/course"
	"github.com/trezcool/learnhub/core/enrollment"
	"github.com/trezcool/learnhub/core/user"
	emailsvc "github.com/trezcool/learnhub/services/email"
	logsvc "github.com/trezcool/learnhub/services/logger"
	"github.com/trezcool/learnhub/storage/bootstrap"
	"github.com/trezcool/learnhub/storage/kv/filedb"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	var appLog core.Logger
	if core.Conf.GetString("rollbarToken") != "" {
		appLog = logsvc.NewRollbarLogger(logger, os.Getenv("ENV"))
	} else {
		appLog = logsvc.NewConsoleLogger(logger)
	}

	var mailSvc core.EmailService
	if core.Conf.GetString("sendgridApiKey") != "" {
		mailSvc = emailsvc.NewSendgridService(appLog)
	} else {
		mailSvc = emailsvc.NewConsoleService()
	}

	// set up the store
	store, err := filedb.NewStore(core.Conf.GetString("dataDir"))
	errAndDie(err)
	errAndDie(bootstrap.Run(store, appLog))

	courseSvc := course.NewService(store, appLog)

	// start CLI
	cli := commandLine{
		store:     store,
		log:       appLog,
		usrSvc:    user.NewService(store, mailSvc),
		courseSvc: courseSvc,
		enrSvc:    enrollment.NewService(store, courseSvc),
	}
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
