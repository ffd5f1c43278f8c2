// Package config loads application configuration for the Sankhya service
// from one of two sources: a local JSON file, or a Rigel schema stored in
// etcd. Both sources implement the Config interface, so the server wiring
// picks a source from a command-line flag and the rest of the code does not
// care where configuration came from.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/remiges-tech/rigel"
	"github.com/remiges-tech/rigel/etcd"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// Config is a source from which application configuration can be loaded.
type Config interface {
	// Check verifies the source is usable before any load is attempted.
	Check() error

	// LoadConfig unmarshals the configuration into c.
	LoadConfig(c any) error
}

// Load ensures the config source is valid and accessible, then loads the
// configuration into c.
func Load(cs Config, c any) error {
	if err := cs.Check(); err != nil {
		return err
	}
	return cs.LoadConfig(c)
}

// File loads configuration from a JSON file.
type File struct {
	ConfigFilePath string
}

func (f *File) Check() error {
	if f.ConfigFilePath == "" {
		return fmt.Errorf("configFilePath cannot be empty")
	}
	info, err := os.Stat(f.ConfigFilePath)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a config file", f.ConfigFilePath)
	}
	return nil
}

func (f *File) LoadConfig(appConfig any) error {
	file, err := os.Open(f.ConfigFilePath)
	if err != nil {
		return err
	}
	defer file.Close()
	return json.NewDecoder(file).Decode(appConfig)
}

// Rigel loads configuration from a Rigel schema in etcd. The schema
// identity (app, module, version, config name) is bound into the client at
// construction, so loading takes only the destination struct.
type Rigel struct {
	Client *rigel.Rigel
}

func (r *Rigel) Check() error {
	if r.Client == nil {
		return fmt.Errorf("rigel client is not set")
	}
	return nil
}

func (r *Rigel) LoadConfig(appConfig any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.Client.LoadConfig(ctx, appConfig)
}

// NewRigelClient connects to etcd and returns a Rigel client bound to the
// given schema and named config.
func NewRigelClient(etcdEndpoints []string, appName, moduleName string, version int, configName string) (*rigel.Rigel, error) {
	cli, err := clientv3.New(clientv3.Config{
		Endpoints:   etcdEndpoints,
		DialTimeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("create etcd client: %w", err)
	}
	etcdStorage := &etcd.EtcdStorage{Client: cli}
	return rigel.New(etcdStorage, appName, moduleName, version, configName), nil
}
