package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-kit/kit/log"
	"github.com/xmidt-org/servicecheck/logging"
	"github.com/xmidt-org/servicecheck/properties"
	"github.com/xmidt-org/servicecheck/servicecheck"
	"github.com/xmidt-org/servicecheck/xconfig"
)

const applicationName = "servicecheck"

// requestLogging is an alice constructor that logs each probe request.
func requestLogging(logger log.Logger) alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			logging.Debug(logger).Log(
				logging.MessageKey(), "probe request",
				"method", request.Method,
				"uri", request.RequestURI,
				"remoteAddr", request.RemoteAddr,
			)

			next.ServeHTTP(response, request)
		})
	}
}

func printProperties(logger log.Logger, confDir string) error {
	parsed, err := properties.ReadServerProperties(confDir)
	if err != nil {
		return err
	}

	for _, key := range parsed.Keys() {
		logging.Info(logger).Log(
			logging.MessageKey(), "server property",
			"key", key,
			"value", parsed.GetString(key),
		)
	}

	return nil
}

func servicecheckMain(arguments []string) int {
	flagSet := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	flagSet.StringP(xconfig.DefaultFileFlag, "f", "", "the fully-qualified configuration file")
	flagSet.StringP(xconfig.DefaultNameFlag, "n", "", "the configuration file name to search for, without extension")
	flagSet.String("service", "kafka", "the name of the managed component being checked")
	flagSet.String("conf-dir", "/etc/kafka", "the managed component's configuration directory")
	flagSet.String("listen", "", "when set, serve check results over HTTP on this address")
	showProperties := flagSet.Bool("print-properties", false, "parse and log <conf-dir>/server.properties before checking")

	if err := flagSet.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}

		fmt.Fprintf(os.Stderr, "unable to parse command line: %s\n", err)
		return 1
	}

	v, err := xconfig.New(
		xconfig.StdOptions(applicationName, flagSet),
		xconfig.BindConfigName(flagSet, xconfig.DefaultNameFlag),
		xconfig.BindConfigFile(flagSet, xconfig.DefaultFileFlag),
	)

	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to configure viper: %s\n", err)
		return 1
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "unable to read configuration: %s\n", err)
			return 1
		}
	}

	config, err := xconfig.Unmarshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to unmarshal configuration: %s\n", err)
		return 1
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", err)
		return 1
	}

	if len(config.Log.Level) == 0 {
		// an unconfigured level filters everything below ERROR, which would
		// swallow the property listing and check outcomes
		config.Log.Level = "INFO"
	}

	logger := logging.New(&config.Log)
	logging.Info(logger).Log(
		logging.MessageKey(), "configuration loaded",
		"service", config.Service,
		"confDir", config.ConfDir,
		"configFile", v.ConfigFileUsed(),
	)

	if *showProperties {
		if err := printProperties(logger, config.ConfDir); err != nil {
			logging.Error(logger).Log(
				logging.MessageKey(), "unable to read server properties",
				"confDir", config.ConfDir,
				logging.ErrorKey(), err,
			)

			return 1
		}
	}

	registry := prometheus.NewRegistry()
	runner := servicecheck.NewRunner(
		logger,
		servicecheck.WithCheck(config.Service, servicecheck.AlwaysHealthy),
		servicecheck.WithRegisterer(registry),
	)

	if len(config.Listen) > 0 {
		router := mux.NewRouter()
		router.Handle(
			"/health",
			alice.New(requestLogging(logger)).Then(servicecheck.Handler{Runner: runner}),
		)
		router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		logging.Info(logger).Log(logging.MessageKey(), "serving check results", "listen", config.Listen)
		if err := http.ListenAndServe(config.Listen, router); err != nil {
			logging.Error(logger).Log(logging.MessageKey(), "server exited", logging.ErrorKey(), err)
			return 1
		}

		return 0
	}

	if results := runner.Run(context.Background()); !results.Healthy() {
		return 1
	}

	return 0
}

func main() {
	os.Exit(servicecheckMain(os.Args[1:]))
}
