package main

import (
	"encoding/json"
	"flag"
	"io/ioutil"
	"log"
	"time"

	"github.com/gridworks/gdfconv/internal/pkg/convert"
	"github.com/gridworks/gdfconv/internal/pkg/database/mongodb"
	"github.com/gridworks/gdfconv/internal/pkg/datastreams/natshandler"
	"github.com/gridworks/gdfconv/internal/pkg/defaults"
	"github.com/gridworks/gdfconv/internal/pkg/gdf"
	"github.com/gridworks/gdfconv/internal/pkg/pandanet"
)

type systemConfig struct {
	ModelPath    string `json:"ModelPath"`
	NetworkName  string `json:"NetworkName"`
	Platform     string `json:"Platform"`
	DefaultsPath string `json:"DefaultsPath"`
	NatsConfig   string `json:"NatsConfig"`
	MongoConfig  string `json:"MongoConfig"`
}

func main() {
	configPath := flag.String("config", "./settings.json", "path to the system config file")
	flag.Parse()

	config, err := readSystemConfig(*configPath)
	if err != nil {
		panic(err)
	}

	model, err := gdf.LoadCoreModel(config.ModelPath)
	if err != nil {
		panic(err)
	}
	if err := model.Validate(); err != nil {
		panic(err)
	}

	policy := defaults.NewPolicy()
	if config.DefaultsPath != "" {
		if err := policy.LoadFile(config.DefaultsPath); err != nil {
			panic(err)
		}
	}

	network := pandanet.New(config.NetworkName)
	session, err := convert.NewSession(network, defaults.Platform(config.Platform), policy)
	if err != nil {
		panic(err)
	}

	stopHandlers, err := launchHandlers(config, session)
	if err != nil {
		panic(err)
	}

	converted, failed := convertModel(session, model)
	log.Printf("[gdfconv] converted %d components, %d failed, %d elements in network",
		converted, failed, network.Count())

	time.Sleep(time.Duration(1) * time.Second)
	stopHandlers()
}

// convertModel runs the conversion loop: buses first so every later
// element can resolve its bus references, then the remaining components.
// Failures are skipped and logged; none is fatal to the run.
func convertModel(session *convert.Session, model *gdf.CoreModel) (int, int) {
	converted, failed := 0, 0

	for _, c := range model.Components() {
		if bus, ok := c.(*gdf.Bus); ok {
			if f := session.ConvertBus(bus); f != nil {
				failed++
				log.Printf("[gdfconv] %v", f)
			} else {
				converted++
			}
		}
	}

	for _, c := range model.Components() {
		if c.Kind() == gdf.KindBus || c.Kind() == gdf.KindLink {
			continue
		}
		if f := session.Convert(model, c); f != nil {
			failed++
			log.Printf("[gdfconv] %v", f)
		} else {
			converted++
		}
	}

	return converted, failed
}

func launchHandlers(config systemConfig, session *convert.Session) (func(), error) {
	stops := make([]func(), 0)

	if config.NatsConfig != "" {
		h, err := natshandler.New(config.NatsConfig, session)
		if err != nil {
			return nil, err
		}
		go h.Process()
		stops = append(stops, h.Stop)
	}

	if config.MongoConfig != "" {
		h, err := mongodb.New(config.MongoConfig, session)
		if err != nil {
			return nil, err
		}
		go h.Process()
		stops = append(stops, h.Stop)
	}

	return func() {
		for _, stop := range stops {
			stop()
		}
	}, nil
}

func readSystemConfig(path string) (systemConfig, error) {
	c := systemConfig{}
	jsonFile, err := ioutil.ReadFile(path)
	if err != nil {
		return c, err
	}
	err = json.Unmarshal(jsonFile, &c)
	if err != nil {
		return c, err
	}
	return c, nil
}
