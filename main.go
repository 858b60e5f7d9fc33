package main

import (
	"context"

	"remainder-service/internal/config"
	"remainder-service/internal/database"
	"remainder-service/internal/handlers"
	"remainder-service/internal/store"
)

func main() {
	config.Load()
	log := config.Logger()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	db := client.Database(config.AppEnv.DBName)
	log.Infoln("MongoDB connected to:", db.Name())

	if err := database.EnsureRemainderIndexes(db); err != nil {
		log.Warnf("remainder index warning: %v", err)
	}

	r := handlers.NewRouter(store.NewMongoStore(db))

	log.Infof("Server running in %s mode on port %s", config.AppEnv.Env, config.AppEnv.Port)
	if err := r.Run(":" + config.AppEnv.Port); err != nil {
		log.Fatal(err)
	}
}
