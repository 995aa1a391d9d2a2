package main

import (
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/hyperryzen/Ochered/utils/collections"
)

func main() {
	capacity := flag.Int("capacity", collections.DefaultRingBufferCapacity, "initial capacity of the ring buffer queues")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	logger := newLogger(*verbose)
	if err := runDemo(os.Stdout, logger, *capacity); err != nil {
		logger.WithError(err).Fatal("demo failed")
	}
}

func newLogger(verbose bool) *log.Entry {
	logger := log.WithFields(log.Fields{"component": "demo"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Logger.SetOutput(os.Stderr)
	logger.Logger.SetLevel(log.InfoLevel)
	if verbose {
		logger.Logger.SetLevel(log.DebugLevel)
	}
	return logger
}
