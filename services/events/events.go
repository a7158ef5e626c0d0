package events

import (
	"encoding/json"
	"errors"
	"fmt"

	"kitchenbook-go-server/services/rabbitmq"
	"kitchenbook-go-server/services/trackLog"
	"kitchenbook-go-server/utils"
)

const ConnectionName = "kitchenbook"

type Event struct {
	Type    string `json:"type"`
	Entity  string `json:"entity"`
	ID      int64  `json:"id"`
	ActorID int64  `json:"actor_id"`
}

// Send delivers one marshalled event to the queue. Package variable so
// tests can capture events without a broker.
var Send = func(queue string, body []byte) error {
	conn := rabbitmq.GetConnection(ConnectionName)
	if conn == nil {
		return errors.New("rabbitmq connection not ready")
	}
	return conn.Publish(queue, body)
}

// Enabled reports whether mutation events are configured.
func Enabled() bool {
	return utils.EnvConfig != nil && utils.EnvConfig.RabbitMQ.Enable == 1
}

// Publish pushes one mutation event to the configured queue. Disabled
// or broken messaging never fails the mutation that triggered it.
func Publish(eventType, entity string, id, actorID int64) {
	if !Enabled() {
		return
	}

	body, err := json.Marshal(Event{Type: eventType, Entity: entity, ID: id, ActorID: actorID})
	if err != nil {
		trackLog.Error(fmt.Sprintf("event marshal fail: %s", err.Error()), false)
		return
	}
	if err := Send(utils.EnvConfig.RabbitMQ.Queue, body); err != nil {
		trackLog.Error(fmt.Sprintf("event publish fail: %s", err.Error()), false)
	}
}
