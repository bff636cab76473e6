package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-logr/stdr"

	"github.com/tonewheel/mediatick"
)

// A minimal metronome: one beat per tick, printed with the service time.
type beatCounter struct {
	beats atomic.Int64
}

func main() {
	stdr.SetVerbosity(4)
	log := stdr.NewWithOptions(stdlog.New(os.Stderr, "", stdlog.LstdFlags), stdr.Options{LogCaller: stdr.All})

	s := mediatick.New(log)

	counter := &beatCounter{}
	err := s.Start(500*time.Millisecond, func(now mediatick.Timestamp, userData any) {
		c := userData.(*beatCounter)
		fmt.Printf("beat %d at %dms\n", c.beats.Add(1), now)
	}, counter)
	if err != nil {
		panic(err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	<-stop

	elapsed := s.Now().Duration()
	if err := s.Stop(); err != nil {
		panic(err)
	}
	fmt.Printf("stopped after %d beats, service ran for %v\n", counter.beats.Load(), elapsed)
}
