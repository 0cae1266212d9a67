package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"expo-patch-backend/cmd/expo-patch/apis"
	"expo-patch-backend/cmd/expo-patch/codec"
	"expo-patch-backend/cmd/expo-patch/repository"
	"expo-patch-backend/cmd/expo-patch/state"

	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type EnvCfg struct {
	Port   int    `envconfig:"PORT" default:"8390"`
	DBPath string `envconfig:"DB_PATH"`
}

func main() {

	err := os.Setenv("TZ", "UTC")
	if err != nil {
		panic(err)
	}

	var cfg EnvCfg
	err = envconfig.Process("EXPO_PATCH", &cfg)
	if err != nil {
		panic(err)
	}

	store := repository.NewStore()

	// Failing to open a database at startup is the one fatal error; the
	// process must not come up without an active store.
	path, err := store.Initialize(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	log.Printf("database ready: %s", path)

	eventRepo := repository.NewEventRepo(store)
	patchRepo := repository.NewPatchDataRepo(store)

	adapter := state.NewAdapter(store, eventRepo)
	if err := adapter.Reload(context.Background()); err != nil {
		log.Fatalf("load events: %v", err)
	}

	transferCodec := codec.New(eventRepo, patchRepo)

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	rootg := e.Group("")
	v1g := rootg.Group("/api/v1")

	apis.
		NewHealthCheckAPI(store).
		Setup(rootg)

	apis.
		NewEventAPI(adapter).
		Setup(v1g)

	apis.
		NewPatchDataAPI(patchRepo).
		Setup(v1g)

	apis.
		NewTransferAPI(transferCodec).
		Setup(v1g)

	apis.
		NewDatabaseAPI(adapter).
		Setup(v1g)

	// Loopback only: the backend serves the local desktop shell.
	e.Start(fmt.Sprintf("127.0.0.1:%d", cfg.Port))

}
