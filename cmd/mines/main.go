package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func main() {
	if err := newRootCmd(&options{}).Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
