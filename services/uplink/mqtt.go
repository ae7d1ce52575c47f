package uplink

import (
	"encoding/json"
	"errors"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"envlogger-go/errcode"
	"envlogger-go/types"
)

// recordMessage mirrors one appended CSV record onto the broker so
// dashboards see readings without polling the FTP drop.
type recordMessage struct {
	Device string `json:"device"`
	File   string `json:"file"`
	CSV    string `json:"csv"`
}

// MQTTUploader publishes each record as JSON. One broker session per
// upload; the radio is powered down between cycles so a persistent
// session would never survive anyway.
type MQTTUploader struct {
	cfg    types.MQTTConfig
	device string

	newClient func(*mqtt.ClientOptions) mqtt.Client
}

func NewMQTT(cfg types.MQTTConfig, device string) *MQTTUploader {
	return &MQTTUploader{cfg: cfg, device: device, newClient: mqtt.NewClient}
}

// UploadAppend publishes the record at QoS 1. basePath and
// createHeader only matter to file backends and are ignored here.
func (u *MQTTUploader) UploadAppend(basePath, filename, content string, createHeader bool) error {
	opts := mqtt.NewClientOptions().
		AddBroker(u.cfg.Broker).
		SetClientID(u.cfg.ClientID).
		SetConnectTimeout(dialTimeout)

	client := u.newClient(opts)
	if err := wait(client.Connect()); err != nil {
		return &errcode.E{C: errcode.Upload, Op: "mqtt.connect", Msg: u.cfg.Broker, Err: err}
	}
	defer client.Disconnect(250)

	payload, err := json.Marshal(recordMessage{
		Device: u.device,
		File:   filename,
		CSV:    content,
	})
	if err != nil {
		return &errcode.E{C: errcode.Upload, Op: "mqtt.encode", Err: err}
	}

	if err := wait(client.Publish(u.cfg.Topic, 1, false, payload)); err != nil {
		return &errcode.E{C: errcode.Upload, Op: "mqtt.publish", Msg: u.cfg.Topic, Err: err}
	}
	log.Infof("published record to %s", u.cfg.Topic)
	return nil
}

func wait(tok mqtt.Token) error {
	if !tok.WaitTimeout(dialTimeout) {
		return errors.New("token timeout")
	}
	return tok.Error()
}
