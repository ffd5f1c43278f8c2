// Command server runs the Sankhya conversion web service.
//
// Configuration comes from a JSON file by default, or from a Rigel schema in
// etcd with -configSource rigel.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/remiges-tech/sankhya/cache"
	"github.com/remiges-tech/sankhya/config"
	"github.com/remiges-tech/sankhya/convsvc"
	"github.com/remiges-tech/sankhya/metrics"
	"github.com/remiges-tech/sankhya/router"
	"github.com/remiges-tech/sankhya/service"
	"github.com/remiges-tech/sankhya/vocab"
	"github.com/remiges-tech/sankhya/wscutils"
)

// AppConfig is the application configuration, loadable from either config
// source.
type AppConfig struct {
	ServerPort    int    `json:"server_port"`
	RedisAddr     string `json:"redis_addr"`
	RedisPassword string `json:"redis_password"`
	RedisDB       int    `json:"redis_db"`
	CacheTTLMins  int    `json:"cache_ttl_mins"`

	// VocabDir holds additional vocabulary JSON files registered at
	// startup, one language per file.
	VocabDir string `json:"vocab_dir"`

	// ErrorTypesFile is an optional YAML catalog remapping error codes to
	// message IDs.
	ErrorTypesFile string `json:"error_types_file"`
}

func main() {
	configSource := flag.String("configSource", "file", "configuration source (file or rigel)")
	configFilePath := flag.String("configFile", "./config.json", "path to the JSON configuration file")
	etcdEndpoints := flag.String("etcdEndpoints", "localhost:2379", "comma-separated etcd endpoints for rigel")
	rigelApp := flag.String("appName", "sankhya", "rigel app name")
	rigelModule := flag.String("moduleName", "convsvc", "rigel module name")
	rigelVersion := flag.Int("schemaVersion", 1, "rigel schema version")
	rigelConfigName := flag.String("configName", "dev", "rigel config name")
	flag.Parse()

	var source config.Config
	switch *configSource {
	case "file":
		source = &config.File{ConfigFilePath: *configFilePath}
	case "rigel":
		client, err := config.NewRigelClient(strings.Split(*etcdEndpoints, ","),
			*rigelApp, *rigelModule, *rigelVersion, *rigelConfigName)
		if err != nil {
			log.Fatalf("Failed to create rigel client: %v", err)
		}
		source = &config.Rigel{Client: client}
	default:
		log.Fatalf("Unknown config source: %s", *configSource)
	}

	var appConfig AppConfig
	if err := config.Load(source, &appConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if appConfig.ServerPort == 0 {
		appConfig.ServerPort = 8080
	}

	fallbackWriter := logharbour.NewFallbackWriter(os.Stdout, os.Stdout)
	lctx := logharbour.NewLoggerContext(logharbour.DefaultPriority)
	logger := logharbour.NewLogger(lctx, "SankhyaService", fallbackWriter)

	if appConfig.ErrorTypesFile != "" {
		f, err := os.Open(appConfig.ErrorTypesFile)
		if err != nil {
			log.Fatalf("Failed to open error types file: %v", err)
		}
		err = wscutils.LoadErrorTypes(f)
		f.Close()
		if err != nil {
			log.Fatalf("Failed to load error types: %v", err)
		}
	}

	registry := vocab.NewRegistry()
	if appConfig.VocabDir != "" {
		if err := registerVocabDir(registry, appConfig.VocabDir, logger); err != nil {
			log.Fatalf("Failed to load vocabularies: %v", err)
		}
	}

	conversionMetrics := metrics.NewConversionMetrics()

	r := gin.Default()
	r.Use(router.RequestID())
	r.Use(router.LogRequest(router.NewLogHarbourAdapter(logger)))
	r.GET("/metrics", gin.WrapH(conversionMetrics.Handler()))

	s := service.NewService(r).
		WithConfig(source).
		WithLogger(logger).
		WithRegistry(registry).
		WithMetrics(conversionMetrics)

	if appConfig.RedisAddr != "" {
		ttl := time.Duration(appConfig.CacheTTLMins) * time.Minute
		s.WithCache(cache.NewRedisResultCache(appConfig.RedisAddr, appConfig.RedisPassword, appConfig.RedisDB, ttl))
		logger.Info().LogActivity("conversion cache enabled", map[string]any{"addr": appConfig.RedisAddr})
	}

	s.RegisterRoute(http.MethodPost, "/convert", convsvc.HandleConvertRequest)
	s.RegisterRoute(http.MethodGet, "/languages", convsvc.HandleListLanguagesRequest)
	s.RegisterRoute(http.MethodPost, "/amount", convsvc.HandleAmountRequest)

	serverAddr := fmt.Sprintf(":%d", appConfig.ServerPort)
	logger.Info().LogActivity("starting server", map[string]any{
		"addr":      serverAddr,
		"languages": registry.Codes(),
	})
	if err := r.Run(serverAddr); err != nil {
		log.Fatal("Error starting server: ", err)
	}
}

// registerVocabDir registers every *.json vocabulary file in dir.
func registerVocabDir(registry *vocab.Registry, dir string, logger *logharbour.Logger) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := registry.RegisterFile(path); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		logger.Info().LogActivity("registered vocabulary", map[string]any{"file": path})
	}
	return nil
}
