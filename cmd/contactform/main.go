package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	theme "github.com/goliatone/go-theme"
	log "github.com/sirupsen/logrus"

	"github.com/goliatone/go-contactform/components/contactform"
	"github.com/goliatone/go-contactform/pkg/config"
	"github.com/goliatone/go-contactform/pkg/intake"
	"github.com/goliatone/go-contactform/pkg/notify"
)

const usage = `usage: contactform <command> [flags]

commands:
  serve   run the contact form server
  send    submit a contact message from the terminal
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:])
	case "send":
		err = runSend(os.Args[2:])
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", os.Args[1], usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("contactform: %v", err)
	}
}

func runServe(args []string) error {
	flags := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	listen := flags.String("listen", "", "listen address (overrides config)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *listen != "" {
		cfg.Listen = *listen
	}
	configureLogging(cfg.LogLevel)

	component := contactform.New(componentOptions(cfg)...)
	mux := http.NewServeMux()
	routes, err := component.RegisterRoutes(mux, cfg.BasePath)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"page":   routes.Page,
		"submit": routes.Submit,
		"listen": cfg.Listen,
	}).Info("contact form server ready")

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Infof("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

func runSend(args []string) error {
	flags := flag.NewFlagSet("send", flag.ExitOnError)
	configPath := flags.String("config", "", "path to a YAML config file")
	endpoint := flags.String("endpoint", "", "intake endpoint URL (overrides config)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *endpoint != "" {
		cfg.IntakeEndpoint = *endpoint
	}
	configureLogging(cfg.LogLevel)

	sub, err := promptSubmission()
	if err != nil {
		return err
	}

	var opts []intake.OptionFn
	if cfg.IntakeEndpoint != "" {
		opts = append(opts, intake.WithEndpoint(cfg.IntakeEndpoint))
	}
	client := intake.New(opts...)
	notifier := notify.NewLogNotifier(log.StandardLogger())

	notifier.Notify(notify.Loading())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := client.Submit(ctx, sub); err != nil {
		var verr *intake.ValidationError
		if errors.As(err, &verr) {
			for field, message := range verr.Fields {
				log.WithField("field", field).Error(message)
			}
			return errors.New("submission is invalid")
		}
		notifier.Notify(notify.Error())
		return err
	}

	notifier.Notify(notify.Success())
	return nil
}

func componentOptions(cfg config.Config) []contactform.OptionFn {
	opts := []contactform.OptionFn{
		contactform.WithNotifier(notify.NewLogNotifier(log.StandardLogger())),
	}
	if cfg.Title != "" {
		opts = append(opts, contactform.WithTitle(cfg.Title))
	}
	if cfg.MapEmbedURL != "" {
		opts = append(opts, contactform.WithMapEmbedURL(cfg.MapEmbedURL))
	}
	if cfg.IntakeEndpoint != "" {
		opts = append(opts, contactform.WithIntakeClient(intake.New(intake.WithEndpoint(cfg.IntakeEndpoint))))
	}
	if cfg.Theme.Name != "" {
		opts = append(opts, contactform.WithTheme(&theme.RendererConfig{
			Theme:   cfg.Theme.Name,
			Variant: cfg.Theme.Variant,
		}))
	}
	return opts
}

func configureLogging(level string) {
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}
