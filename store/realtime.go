package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AaronIsserow/penguin-patrol-alert-system2/configs"
	"github.com/AaronIsserow/penguin-patrol-alert-system2/log"
)

const (
	EventInsert = "INSERT"
	EventUpdate = "UPDATE"
	EventDelete = "DELETE"

	connectTimeout = 10 * time.Second
)

// PerimeterEvent is one change notification on the perimeters resource.
// Row holds the new row for inserts and updates and the old row for
// deletes.
type PerimeterEvent struct {
	Type string    `json:"type"`
	Row  Perimeter `json:"row"`
}

// AlarmState is published (retained) so the physical sounder and any
// attached dashboard follow the console's alarm.
type AlarmState struct {
	Active    bool   `json:"active"`
	Location  string `json:"location,omitempty"`
	Detection string `json:"detection_id,omitempty"`
}

// Notifier is the live side channel of the data API: change notifications
// in, alarm state out. A nil broker URL disables it and the console falls
// back to poll-only perimeter state.
type Notifier interface {
	SubscribePerimeters(handler func(PerimeterEvent)) error
	PublishAlarm(state AlarmState) error
	Close()
}

type mqttNotifier struct {
	client mqtt.Client
	prefix string
	logger zerolog.Logger
}

func NewNotifier(cfg configs.RealtimeConfig) (Notifier, error) {
	logger := log.Logger("realtime")

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "patrol-console-" + uuid.NewString()[:8]
	}

	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetOrderMatters(true)
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		logger.Warn().Err(err).Msg("realtime connection lost, reconnecting")
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("realtime connect timed out after %s", connectTimeout)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("realtime connect: %w", err)
	}

	prefix := strings.TrimSuffix(cfg.TopicPrefix, "/")
	if prefix == "" {
		prefix = "store"
	}
	return &mqttNotifier{client: client, prefix: prefix, logger: logger}, nil
}

// SubscribePerimeters attaches the handler to every change event on the
// perimeters resource. The event type is the topic leaf, the payload is
// the affected row.
func (n *mqttNotifier) SubscribePerimeters(handler func(PerimeterEvent)) error {
	topic := n.prefix + "/perimeters/+"
	token := n.client.Subscribe(topic, 1, func(_ mqtt.Client, msg mqtt.Message) {
		parts := strings.Split(msg.Topic(), "/")
		eventType := strings.ToUpper(parts[len(parts)-1])
		switch eventType {
		case EventInsert, EventUpdate, EventDelete:
		default:
			n.logger.Warn().Str("topic", msg.Topic()).Msg("unknown perimeter event type")
			return
		}

		var row Perimeter
		if err := json.Unmarshal(msg.Payload(), &row); err != nil {
			n.logger.Error().Err(err).Str("topic", msg.Topic()).Msg("bad perimeter event payload")
			return
		}
		handler(PerimeterEvent{Type: eventType, Row: row})
	})
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("subscribe %s timed out", topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}
	n.logger.Info().Str("topic", topic).Msg("subscribed to perimeter changes")
	return nil
}

func (n *mqttNotifier) PublishAlarm(state AlarmState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	token := n.client.Publish(n.prefix+"/console/alarm", 1, true, payload)
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("publish alarm state timed out")
	}
	return token.Error()
}

func (n *mqttNotifier) Close() {
	n.client.Disconnect(250)
}
