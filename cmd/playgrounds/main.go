package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/diwise/playgrounds/internal/pkg/application/exercises"
	"github.com/diwise/playgrounds/internal/pkg/infrastructure/router"
	"github.com/diwise/playgrounds/internal/pkg/presentation/api"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/servicerunner"
)

const serviceName string = "playgrounds"

var webserver = servicerunner.WithHTTPServeMux[AppConfig]
var listen = servicerunner.WithListenAddr[AppConfig]
var port = servicerunner.WithPort[AppConfig]
var muxinit = servicerunner.OnMuxInit[AppConfig]
var liveness = servicerunner.WithK8SLivenessProbe[AppConfig]
var onstarting = servicerunner.OnStarting[AppConfig]
var onshutdown = servicerunner.OnShutdown[AppConfig]

func defaultFlags() FlagMap {
	return FlagMap{
		listenAddress: "",     // listen on all ipv4 and ipv6 interfaces
		servicePort:   "8080", //
		controlPort:   "",     // control port disabled by default

		exercisesPath: "",
		opaPath:       "/opt/diwise/config/authz.rego",

		logFormat: "json",
	}
}

func main() {
	ctx, flags := parseExternalConfig(context.Background(), defaultFlags())

	serviceVersion := buildinfo.SourceVersion()
	ctx, logger, cleanup := o11y.Init(ctx, serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	policies, err := os.Open(flags[opaPath])
	exitIf(err, logger.Error, "unable to open opa policy file", "path", flags[opaPath])

	cfg, err := loadExercises(flags[exercisesPath])
	exitIf(err, logger.Error, "unable to load exercises configuration")

	runner, err := initialize(ctx, flags, &AppConfig{
		exercisesConfig: cfg,
		opaConfig:       policies,
	})
	exitIf(err, logger.Error, "failed to initialize service runner")

	err = runner.Run(ctx)
	exitIf(err, logger.Error, "service runner failed")

	logger.Info("shutting down")
}

// initialize creates a service runner that serves the api on the public port
// and, if a control port is configured, liveness probes on the control port.
// The exercise transcript is written to the log when the service starts.
func initialize(ctx context.Context, flags FlagMap, cfg *AppConfig) (servicerunner.Runner[AppConfig], error) {
	transcript, err := exercises.New(cfg.exercisesConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create exercise runner: %w", err)
	}

	_, runner := servicerunner.New(ctx, *cfg,
		webserver("public", listen(flags[listenAddress]), port(flags[servicePort]),
			muxinit(func(ctx context.Context, identifier, port string, appCfg *AppConfig, handler *http.ServeMux) error {
				appCfg.publicPort = port

				r := router.New(serviceName)

				err := api.RegisterHandlers(ctx, r, appCfg.opaConfig)
				if err != nil {
					return err
				}

				handler.Handle("/", r)
				return nil
			}),
		),
		servicerunner.IfNot(flags[controlPort] == "",
			webserver("control", listen(flags[listenAddress]), port(flags[controlPort]),
				liveness(func() error { return nil }),
				muxinit(func(ctx context.Context, identifier, port string, appCfg *AppConfig, handler *http.ServeMux) error {
					appCfg.controlPort = port
					return nil
				}),
			),
		),
		onstarting(func(ctx context.Context, appCfg *AppConfig) error {
			buf := &bytes.Buffer{}

			err := transcript.Run(ctx, buf)
			if err != nil {
				return fmt.Errorf("exercises failed: %w", err)
			}

			logging.GetFromContext(ctx).Info("exercise transcript", "transcript", buf.String())
			return nil
		}),
		onshutdown(func(ctx context.Context, appCfg *AppConfig) error {
			return appCfg.opaConfig.Close()
		}),
	)

	return runner, nil
}

func loadExercises(path string) (*exercises.Config, error) {
	if path == "" {
		return exercises.DefaultConfiguration()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return exercises.LoadConfiguration(f)
}

func parseExternalConfig(ctx context.Context, flags FlagMap) (context.Context, FlagMap) {

	// Allow environment variables to override certain defaults
	envOrDef := env.GetVariableOrDefault
	flags[listenAddress] = envOrDef(ctx, "LISTEN_ADDRESS", flags[listenAddress])
	flags[servicePort] = envOrDef(ctx, "SERVICE_PORT", flags[servicePort])
	flags[controlPort] = envOrDef(ctx, "CONTROL_PORT", flags[controlPort])
	flags[exercisesPath] = envOrDef(ctx, "EXERCISES_CONFIG_PATH", flags[exercisesPath])
	flags[opaPath] = envOrDef(ctx, "OPA_POLICIES_PATH", flags[opaPath])
	flags[logFormat] = envOrDef(ctx, "LOG_FORMAT", flags[logFormat])

	apply := func(f FlagType) func(string) error {
		return func(value string) error {
			flags[f] = value
			return nil
		}
	}

	// Allow command line arguments to override defaults and environment variables
	flag.Func("exercises", "path to an exercises configuration file", apply(exercisesPath))
	flag.Func("policies", "an authorization policy file", apply(opaPath))
	flag.Parse()

	return ctx, flags
}

func exitIf(err error, logger func(string, ...any), msg string, args ...any) {
	if err != nil {
		logger(msg, append(args, "err", err.Error())...)
		os.Exit(1)
	}
}
