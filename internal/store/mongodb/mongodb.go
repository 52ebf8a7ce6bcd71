// Package mongodb implements store.Store on MongoDB. Each entity lives in its
// own collection keyed by a string _id.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"bizsite-api/internal/store"
)

const (
	DefaultDatabase = "bizsite"
	connectTimeout  = 10 * time.Second
)

type Store struct {
	client       *mongo.Client
	appointments collection[appointmentDoc]
	messages     collection[messageDoc]
	blogs        collection[blogDoc]
	openHours    collection[openHourDoc]
}

var _ store.Store = (*Store)(nil)

// New connects to uri and prepares the collections. database overrides the
// database named in the uri; when both are empty DefaultDatabase is used.
func New(ctx context.Context, uri, database string) (*Store, error) {
	if database == "" {
		cs, err := connstring.ParseAndValidate(uri)
		if err != nil {
			return nil, fmt.Errorf("mongo uri: %w", err)
		}
		database = cs.Database
	}
	if database == "" {
		database = DefaultDatabase
	}

	opts := options.Client().ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetMinPoolSize(1).
		SetMaxPoolSize(20)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	db := client.Database(database)
	s := &Store{
		client:       client,
		appointments: collection[appointmentDoc]{db.Collection("appointments")},
		messages:     collection[messageDoc]{db.Collection("messages")},
		blogs:        collection[blogDoc]{db.Collection("blogs")},
		openHours:    collection[openHourDoc]{db.Collection("openhours")},
	}
	if err := s.Ping(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	recent := mongo.IndexModel{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}
	for _, c := range []*mongo.Collection{s.appointments.c, s.messages.c, s.blogs.c} {
		if _, err := c.Indexes().CreateOne(ctx, recent); err != nil {
			return fmt.Errorf("index %s: %w", c.Name(), err)
		}
	}
	_, err := s.openHours.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "day", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("index openhours: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return store.Wrap("ping", s.client.Ping(ctx, readpref.Primary()))
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// collection is the per-entity document contract shared by every entity.
type collection[T any] struct {
	c *mongo.Collection
}

var newestFirst = bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}

func (c collection[T]) insert(ctx context.Context, doc *T) error {
	_, err := c.c.InsertOne(ctx, doc)
	return err
}

func (c collection[T]) findAll(ctx context.Context, sort bson.D) ([]T, error) {
	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}
	cur, err := c.c.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c collection[T]) findByID(ctx context.Context, id string) (*T, error) {
	var doc T
	err := c.c.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// updateByID applies $set and returns the document after the update.
func (c collection[T]) updateByID(ctx context.Context, id string, set bson.D) (*T, error) {
	if len(set) == 0 {
		return c.findByID(ctx, id)
	}
	var doc T
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := c.c.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c collection[T]) deleteByID(ctx context.Context, id string) error {
	res, err := c.c.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// upsert updates the document matching filter or inserts one built from
// filter, set and setOnInsert. It returns the stored document.
func (c collection[T]) upsert(ctx context.Context, filter, set, setOnInsert bson.D) (*T, error) {
	var doc T
	update := bson.D{{Key: "$set", Value: set}, {Key: "$setOnInsert", Value: setOnInsert}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	if err := c.c.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
