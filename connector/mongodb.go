//go:build !no_mongodb

package connector

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	registerProvider(MongoDB, newMongoDBConnector)
}

type mongoConnector struct {
	client *mongo.Client
}

func newMongoDBConnector(ctx context.Context, url string) (Connector, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}
	return &mongoConnector{client: client}, nil
}

func (c *mongoConnector) Name() string     { return "mongodb" }
func (c *mongoConnector) Dialect() Dialect { return MongoDialect{} }
func (c *mongoConnector) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}
