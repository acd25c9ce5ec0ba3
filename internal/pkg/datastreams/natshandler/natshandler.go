// Package natshandler streams conversion diagnostics to a NATS server so
// an operator can watch a long interchange run without tailing logs.
package natshandler

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/gridworks/gdfconv/internal/pkg/msg"

	nats "github.com/nats-io/nats.go"
)

type Handler struct {
	mux    *sync.Mutex
	inbox  <-chan msg.Msg
	pid    uuid.UUID
	config config
	stop   chan bool
}

type config struct {
	Server  string `json:"Server"`
	Subject string `json:"Subject"`
}

func (h Handler) PID() uuid.UUID {
	return h.pid
}

func redirectMsg(chIn <-chan msg.Msg, chOut chan<- msg.Msg) {
	for m := range chIn {
		chOut <- m
	}
}

func New(configPath string, session msg.Publisher) (Handler, error) {
	jsonConfig, err := ioutil.ReadFile(configPath)
	if err != nil {
		return Handler{}, err
	}
	cfg := config{}
	if err := json.Unmarshal(jsonConfig, &cfg); err != nil {
		return Handler{}, err
	}

	pid, _ := uuid.NewUUID()

	inbox := make(chan msg.Msg, 50)

	chDiagnostic, err := session.Subscribe(pid, msg.Diagnostic)
	if err != nil {
		return Handler{}, err
	}
	go redirectMsg(chDiagnostic, inbox)

	// buffered so Stop never blocks when Process has already returned
	stop := make(chan bool, 1)

	return Handler{
		mux:    &sync.Mutex{},
		inbox:  inbox,
		pid:    pid,
		config: cfg,
		stop:   stop,
	}, nil
}

func (h *Handler) Stop() {
	h.stop <- true
}

func (h Handler) Process() {
	log.Println("[NATS client] Process Started")
	server := h.config.Server
	if server == "" {
		server = nats.DefaultURL
	}
	nc, err := nats.Connect(server)
	if err != nil {
		log.Printf("[NATS client] connect failed: %v", err)
		return
	}
	defer nc.Close()

	subject := h.config.Subject
	if subject == "" {
		subject = "gdfconv.diagnostics"
	}

loop:
	for {
		select {
		case m := <-h.inbox:
			data, err := json.Marshal(m.Payload())
			if err != nil {
				continue
			}
			if err = nc.Publish(subject+"."+m.PID().String(), data); err != nil {
				log.Printf("unable to publish to nats server: %v", err)
			}

		case <-h.stop:
			break loop
		}
	}
	log.Println("[NATS client] Process Shutdown")
}
