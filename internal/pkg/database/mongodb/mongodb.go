// Package mongodb archives conversion outcomes, one document per
// converted component, so interchange runs can be audited after the fact.
package mongodb

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"log"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gridworks/gdfconv/internal/pkg/convert"
	"github.com/gridworks/gdfconv/internal/pkg/msg"
)

type Handler struct {
	mux    *sync.Mutex
	inbox  <-chan msg.Msg
	pid    uuid.UUID
	config config
	stop   chan bool
}

type config struct {
	URI      string `json:"URI"`
	Database string `json:"Database"`
	Port     string `json:"Port"`
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

	chRecord, err := session.Subscribe(pid, msg.Record)
	if err != nil {
		return Handler{}, err
	}
	go redirectMsg(chRecord, inbox)

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

func recordToBSON(r convert.ConversionRecord) bson.D {
	return bson.D{
		{Key: "$set", Value: bson.M{
			"component": r.Component.String(),
			"name":      r.Name,
			"kind":      r.Kind,
			"table":     r.Table,
		}},
	}
}

func (h *Handler) Stop() {
	h.stop <- true
}

func (h Handler) Process() {
	client, err := mongo.NewClient(options.Client().ApplyURI(h.config.URI + ":" + h.config.Port))
	if err != nil {
		log.Println(err)
		return
	}

	ctx := context.TODO()
	err = client.Connect(ctx)
	if err != nil {
		log.Println(err)
		return
	}
	defer client.Disconnect(ctx)

	records := client.Database(h.config.Database).Collection("conversionRecords")

loop:
	for {
		select {
		case m := <-h.inbox:
			record, ok := m.Payload().(convert.ConversionRecord)
			if !ok {
				continue
			}
			opts := options.Update().SetUpsert(true)
			_, err = records.UpdateOne(
				ctx,
				bson.M{"component": record.Component.String()},
				recordToBSON(record),
				opts,
			)
			if err != nil {
				log.Printf("[Mongo] upsert failed: %v", err)
			}

		case <-h.stop:
			break loop
		}
	}
	log.Println("[Mongo] Process Shutdown")
}
