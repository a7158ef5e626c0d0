package main

import (
	"fmt"
	"net/http"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/enums"
	"kitchenbook-go-server/router"
	"kitchenbook-go-server/services"
	"kitchenbook-go-server/services/activity"
	"kitchenbook-go-server/services/events"
	"kitchenbook-go-server/services/rabbitmq"
	"kitchenbook-go-server/services/trackLog"
	"kitchenbook-go-server/utils"
)

func main() {

	var envService utils.EnvService
	envService.InitEnv()
	fmt.Println("config loaded...")

	database.InitDatabasePool()
	defer database.Mysql.Close()
	fmt.Println("database pool ready...")

	trackLog.LogTrackInit()

	if utils.EnvConfig.RabbitMQ.Enable == 1 {
		conn := rabbitmq.NewConnection(events.ConnectionName, []string{utils.EnvConfig.RabbitMQ.Queue})
		if err := conn.Connect(); err != nil {
			trackLog.Error(err.Error(), true)
		} else if err := conn.BindQueue(); err != nil {
			trackLog.Error(err.Error(), true)
		} else {
			trackLog.Info("rabbitmq ready...", false)
		}
	}

	activity.Record(0, enums.ActionInit, "server", 0)

	defer func() {
		if r := recover(); r != nil {
			trackLog.Error(fmt.Sprintf("server crashed: %v", r), true)
			crashEmailAlert()
			panic(r)
		}
	}()

	route := router.Router()
	if err := route.Run(fmt.Sprintf(":%d", utils.EnvConfig.Router.Port)); err != nil {
		trackLog.Error(err.Error(), true)
		crashEmailAlert()
	}
}

func crashEmailAlert() {
	if utils.EnvConfig.Email.APIUrl == "" {
		return
	}
	if _, err := services.HttpRequest(http.MethodPost, utils.EnvConfig.Email.APIUrl, nil, map[string]string{
		"subject": "kitchenbook-go-server shutdown",
		"body":    "kitchenbook-go-server stopped serving",
	}); err != nil {
		fmt.Println(err.Error())
	}
}
