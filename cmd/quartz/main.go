package main

import (
	"fmt"
	"os"

	"github.com/quartzui/quartz-cli/internal/cli"
	"github.com/quartzui/quartz-cli/internal/utils"
)

// main is the entry point for the quartz command.
func main() {
	verboseLogging := os.Getenv("QUARTZ_DEBUG") != ""
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger(verboseLogging)
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(loggerInstance); applicationExecutionError != nil {
		loggerInstance.Fatal(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
	}
}
