package check

import (
	"fmt"
	"net/http"
	"runtime"

	"kitchenbook-go-server/database"
	"kitchenbook-go-server/services/events"
	"kitchenbook-go-server/services/rabbitmq"
	"kitchenbook-go-server/services/trackLog"
	"kitchenbook-go-server/utils"

	"github.com/gin-gonic/gin"
)

type AliveResponse struct {
	Success  bool      `json:"success"`
	Messsage string    `json:"message"`
	Info     CheckInfo `json:"info"`
}

type CheckInfo struct {
	Database   string `json:"database"`
	RabbitMQ   string `json:"rabbitmq"`
	RoutineNum int    `json:"routine_num"`
}

func CheckAlive(c *gin.Context) {
	resMsg := "main thread alive"
	success := true
	checkInfo := CheckInfo{RabbitMQ: "disabled"}

	if err := database.Mysql.DB().Ping(); err != nil {
		success = false
		resMsg = fmt.Sprintf("database ping fail: %s", err.Error())
		trackLog.Error(resMsg, false)
		checkInfo.Database = "down"
	} else {
		checkInfo.Database = "up"
	}

	if utils.EnvConfig.RabbitMQ.Enable == 1 {
		rabbitConn := rabbitmq.GetConnection(events.ConnectionName)
		if rabbitConn == nil || rabbitConn.Conn == nil {
			resMsg = "rabbitmq connection lost, reconnecting.."
			trackLog.Error(resMsg, false)
			checkInfo.RabbitMQ = "down"
			if rabbitConn != nil {
				if err := rabbitConn.Reconnect(); err != nil {
					resMsg = fmt.Sprintf("reconnect rabbit fail: %s", err.Error())
					trackLog.Error(resMsg, false)
				} else {
					checkInfo.RabbitMQ = "up"
				}
			}
		} else {
			checkInfo.RabbitMQ = "up"
		}
	}

	checkInfo.RoutineNum = runtime.NumGoroutine()

	c.JSON(http.StatusOK, AliveResponse{success, resMsg, checkInfo})
	return
}
