package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/swoga/huawei-exporter/api"
	"github.com/swoga/huawei-exporter/cache"
	"github.com/swoga/huawei-exporter/collector"
	"github.com/swoga/huawei-exporter/config"
	"github.com/swoga/huawei-exporter/extract"
	"github.com/swoga/huawei-exporter/version"
)

var (
	configFile string
	sc         *config.SafeConfig
	docCache   = cache.New()
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as exporter, scraping the configured targets on every probe",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configFile, "config.file", "huawei-exporter.yml", "Path to the configuration file")
}

func runServe(cmd *cobra.Command, args []string) error {
	log.Info().Str("version", version.Version).Str("revision", version.Revision).Msg("starting huawei-exporter")

	// inital config load
	sc = config.New(configFile)
	err := sc.LoadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// setup config reload
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	reloadRequest := make(chan chan error)
	go func() {
		for {
			var err error
			select {
			case <-hup:
				log.Debug().Msg("config reload triggerd by SIGHUP")
				err = sc.LoadConfig()
			case reloadResult := <-reloadRequest:
				log.Debug().Msg("config reload triggerd by API")
				err = sc.LoadConfig()
				reloadResult <- err
			}
			if err != nil {
				log.Error().Err(err).Msg("error reloading config")
			} else {
				log.Info().Msg("reloaded config file")
			}
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/-/reload", func(w http.ResponseWriter, r *http.Request) {
		reloadResult := make(chan error)
		reloadRequest <- reloadResult
		err := <-reloadResult
		if err != nil {
			http.Error(w, fmt.Sprintf("failed to reload config: %s", err), http.StatusInternalServerError)
		}
	})

	// start http server
	config := sc.Get()
	mux.Handle(config.MetricsPath, promhttp.Handler())
	mux.HandleFunc(config.ProbePath, handleProbe)
	mux.HandleFunc(config.JSONPath, handleJSON)

	log.Info().Str("metrics_path", config.MetricsPath).Str("probe_path", config.ProbePath).Str("json_path", config.JSONPath).Str("listen", config.Listen).Msg("starting http server")

	server := &http.Server{
		Addr:    config.Listen,
		Handler: mux,
	}
	go func() {
		<-cmd.Context().Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error starting http server: %w", err)
	}
	return nil
}

func lookupTarget(w http.ResponseWriter, r *http.Request) (string, *config.Target, bool) {
	target := r.URL.Query().Get("target")
	if target == "" {
		log.Error().Msg("request with missing target")
		http.Error(w, "?target= missing", http.StatusBadRequest)
		return "", nil, false
	}

	t, ok := sc.Get().Targets[target]
	if !ok {
		log.Error().Str("target", target).Msg("unknown target")
		http.Error(w, "unknown target", http.StatusBadRequest)
		return "", nil, false
	}
	return target, t, true
}

func handleProbe(w http.ResponseWriter, r *http.Request) {
	config := sc.Get()
	target, t, ok := lookupTarget(w, r)
	if !ok {
		return
	}
	log := log.With().Str("target", target).Logger()

	timeout := getTimeout(config, r)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(timeout*float64(time.Second)))
	defer cancel()
	r = r.WithContext(ctx)

	start := time.Now()
	registry := prometheus.NewRegistry()
	exporterRegistry := prometheus.WrapRegistererWithPrefix(collector.Namespace, registry)

	err := probeTarget(ctx, log, target, *t, exporterRegistry)
	var success float64 = 1
	if err != nil {
		log.Error().Err(err).Msg("error probing target")
		success = 0
	}

	probeDurationGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "probe_duration_seconds",
		Help: "Returns how long the probe took to complete in seconds",
	})
	registry.MustRegister(probeDurationGauge)
	duration := time.Since(start).Seconds()
	probeDurationGauge.Set(duration)

	probeSuccessGauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "probe_success",
		Help: "Displays whether or not the probe was a success",
	})
	registry.MustRegister(probeSuccessGauge)
	probeSuccessGauge.Set(success)

	h := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	h.ServeHTTP(w, r)
}

// handleJSON serves the document of the last probe, a failed probe
// removes it.
func handleJSON(w http.ResponseWriter, r *http.Request) {
	target, _, ok := lookupTarget(w, r)
	if !ok {
		return
	}
	doc, ok := docCache.Get(target)
	if !ok {
		http.Error(w, "target not probed yet", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(doc)
}

func getTimeout(config *config.Config, r *http.Request) float64 {
	value := r.Header.Get("X-Prometheus-Scrape-Timeout-Seconds")
	if value != "" {
		timeout, err := strconv.ParseFloat(value, 64)
		if err == nil && timeout > 0 {
			return timeout
		}
	}
	return config.Timeout
}

func probeTarget(ctx context.Context, log zerolog.Logger, name string, target config.Target, registry prometheus.Registerer) error {
	information, management, err := api.GetPages(ctx, log, target)
	if err != nil {
		docCache.Remove(name)
		return err
	}

	result, err := extract.Run(ctx, log, information, management)
	if err != nil {
		docCache.Remove(name)
		return err
	}

	options := config.DefaultOptions()
	if target.Options != nil {
		options = *target.Options
	}

	fields := result.Fields
	if !options.IncludeHidden {
		fields = fields.Visible()
	}

	doc, err := collector.MarshalDocument(log, fields, result.Devices)
	if err != nil {
		return err
	}
	docCache.Set(name, doc)

	if options.ExportDevices {
		err = collector.AddMetricsDevices(registry, result.Devices)
		if err != nil {
			return err
		}
	}
	if options.ExportFields {
		collector.AddMetricsFields(registry, log, fields)
	}
	return nil
}
