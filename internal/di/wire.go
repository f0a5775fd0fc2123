//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"viztube/internal/config"
)

// InitializeMySQL wires the API over the relational store.
func InitializeMySQL(cfg *config.Config) (*API, func(), error) {
	wire.Build(MySQLSet)
	return nil, nil, nil
}

// InitializeMongo wires the API over the document store and GridFS.
func InitializeMongo(cfg *config.Config) (*API, func(), error) {
	wire.Build(MongoSet)
	return nil, nil, nil
}
