package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	compsapi "cre_underwriting/pkg/api/comps"
	dealapi "cre_underwriting/pkg/api/deal"
	"cre_underwriting/pkg/core/decision"
	"cre_underwriting/pkg/core/store"
)

func main() {
	// Load environment variables
	godotenv.Load()

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Strategy thresholds: shipped defaults, overridable per deployment.
	thresholds := decision.DefaultThresholds()
	configPath := os.Getenv("STRATEGY_CONFIG")
	if configPath == "" {
		configPath = "config/strategies.yaml"
	}
	if loaded, err := decision.LoadThresholds(configPath); err != nil {
		log.WithError(err).Warnf("Using built-in strategy thresholds (no config at %s)", configPath)
	} else {
		thresholds = loaded
		log.Infof("Loaded strategy thresholds from %s", configPath)
	}

	// The deal store is optional: without DATABASE_URL the evaluate and
	// goal-seek endpoints still work, save/load return 503.
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(context.Background()); err != nil {
			log.WithError(err).Fatal("Failed to initialize deal store")
		}
		defer store.Close()
		log.Info("Deal store connected")
	} else {
		log.Warn("DATABASE_URL not set; deal persistence disabled")
	}

	dealapi.InitHandler(thresholds)

	r := mux.NewRouter()
	r.HandleFunc("/api/deal/evaluate", dealapi.HandleEvaluate).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/deal/goalseek", dealapi.HandleGoalSeek).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/deal/save", dealapi.HandleSave).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/deal/list", dealapi.HandleList).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/deal/{id}", dealapi.HandleGet).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/comps/suggest", compsapi.HandleSuggest).Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Infof("API server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.WithError(err).Fatal("Server failed to start")
	}
}
