package main

import (
	"log"
	"os"
	"simcompare/cmd"
)

func main() {
	apiHandler, secrets, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	apiHandler.Logger.Infow("starting api", "port", secrets.Port, "commitHash", os.Getenv("commit_hash"))
	err = apiHandler.StartApi(secrets.Port)
	if err != nil {
		apiHandler.Logger.Fatal(err)
	}
}
