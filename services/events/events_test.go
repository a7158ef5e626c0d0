package events

import (
	"encoding/json"
	"testing"

	"kitchenbook-go-server/structs"
	"kitchenbook-go-server/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDisabledSendsNothing(t *testing.T) {
	oldSend := Send
	called := false
	Send = func(queue string, body []byte) error {
		called = true
		return nil
	}
	defer func() { Send = oldSend }()

	utils.EnvConfig = nil
	Publish("create", "recipe", 1, 2)
	assert.False(t, called)

	// config present but the enable flag off
	var cfg structs.EnviromentModel
	utils.EnvConfig = &cfg
	defer func() { utils.EnvConfig = nil }()
	Publish("create", "recipe", 1, 2)
	assert.False(t, called)
}

func TestPublishEnabledSendsMarshalledEvent(t *testing.T) {
	var cfg structs.EnviromentModel
	cfg.RabbitMQ.Enable = 1
	cfg.RabbitMQ.Queue = "kitchenbook-events"
	utils.EnvConfig = &cfg
	defer func() { utils.EnvConfig = nil }()

	oldSend := Send
	var gotQueue string
	var gotEvent Event
	Send = func(queue string, body []byte) error {
		gotQueue = queue
		require.NoError(t, json.Unmarshal(body, &gotEvent))
		return nil
	}
	defer func() { Send = oldSend }()

	Publish("delete", "ingredient", 5, 9)
	assert.Equal(t, "kitchenbook-events", gotQueue)
	assert.Equal(t, Event{Type: "delete", Entity: "ingredient", ID: 5, ActorID: 9}, gotEvent)
}
