/*
This is an example of application that will use the
gl package to test things out
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/opal/core"
	"github.com/spaghettifunk/opal/testbed"
)

func main() {
	app := testbed.New(testbed.Config{
		Title:    "Opal Testbed",
		LogLevel: core.DebugLevel,
	})

	if err := app.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// start shutdown goroutine
	go func() {
		// capture sigterm and other system call here
		<-sigCh
		_ = app.Shutdown()
	}()

	// run the demo
	if err := app.Run(); err != nil {
		panic(err)
	}
}
