package main

import (
	"log"

	"github.com/verdantlab/treewatch-backend/api"
	"github.com/verdantlab/treewatch-backend/garden"
	"github.com/verdantlab/treewatch-backend/state"
)

func main() {
	settings, err := garden.LoadSettings("settings.yml")
	if err != nil {
		log.Fatalln("loading settings:", err)
	}

	controller, err := garden.NewController(settings)
	if err != nil {
		log.Fatalln("starting controller:", err)
	}

	stateStore := state.NewStore(settings.StatePath)
	if err := stateStore.EnsureFile("AUTO"); err != nil {
		log.Fatalln("preparing state file:", err)
	}

	router := api.NewRouter(controller, stateStore)

	log.Println("listening on", settings.ListenAddr)
	if err := router.Run(settings.ListenAddr); err != nil {
		log.Fatalln(err)
	}
}
