package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"ledgerdesk/internal/devserver"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	secret := flag.String("secret", "", "token signing secret (random per run when empty)")
	logLevel := flag.String("log-level", "info", "debug, info, warn, error or off")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := devserver.New(devserver.Options{
		Secret:   []byte(*secret),
		LogLevel: *logLevel,
	})

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		log.Printf("listening on %s", *addr)
		if err := e.Start(*addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal(err)
	}
}
